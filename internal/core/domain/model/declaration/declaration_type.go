package declaration

import (
	"fmt"

	"brokerage/internal/pkg/errs"
)

// Type is the customs regime the declaration is filed under.
type Type string

const (
	TypeImport  Type = "import"
	TypeExport  Type = "export"
	TypeTransit Type = "transit"
)

// Validate checks that the type is one of the known regimes.
func (t Type) Validate() error {
	switch t {
	case TypeImport, TypeExport, TypeTransit:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"declaration type", fmt.Errorf("%q is not a valid declaration type", string(t)))
	}
}

// String implements fmt.Stringer.
func (t Type) String() string {
	return string(t)
}

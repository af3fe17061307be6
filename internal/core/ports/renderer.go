package ports

import (
	"brokerage/internal/core/domain/model/declaration"
)

// DocumentRenderer produces a printable document for a declaration. The
// shipped implementation renders an HTML document from a template.
type DocumentRenderer interface {
	Render(d *declaration.Declaration) ([]byte, error)
}

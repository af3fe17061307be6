package kernel

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"time"

	"brokerage/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrBusinessNumberIsNotConstructed indicates a zero-value BusinessNumber.
var ErrBusinessNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"business number must be created via NewBusinessNumber, NewSequencedBusinessNumber, or BusinessNumberFromString")

var businessNumberPrefixPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// BusinessNumber is the human-readable identifier of an aggregate, generated
// exactly once at first persistence and immutable thereafter.
//
// Two schemes exist:
//   - random: <PREFIX>-YYYYMMDD-<8 random uppercase hex chars>, used for
//     orders (ORD) and declarations (DEC). Collisions are astronomically
//     unlikely; the unique constraint catches them and callers regenerate.
//   - sequenced: <PREFIX>-YYYYMMDD-<sequence>, used for support tickets
//     (TKT). The sequence is only known after the row is inserted, so the
//     repository assigns the number in a second step of the same
//     transaction.
type BusinessNumber struct {
	value string
}

// NewBusinessNumber generates a random-suffix business number for the given
// three-letter uppercase prefix, dated today (UTC).
func NewBusinessNumber(prefix string) (BusinessNumber, error) {
	if err := validatePrefix(prefix); err != nil {
		return BusinessNumber{}, err
	}

	raw := uuid.New()
	suffix := strings.ToUpper(hex.EncodeToString(raw[:4]))
	return BusinessNumber{
		value: fmt.Sprintf("%s-%s-%s", prefix, time.Now().UTC().Format("20060102"), suffix),
	}, nil
}

// NewSequencedBusinessNumber builds a business number from a database
// sequence value. The sequence must be positive.
func NewSequencedBusinessNumber(prefix string, seq int64) (BusinessNumber, error) {
	if err := validatePrefix(prefix); err != nil {
		return BusinessNumber{}, err
	}
	if seq <= 0 {
		return BusinessNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"sequence", fmt.Errorf("%d is not greater than 0", seq))
	}

	return BusinessNumber{
		value: fmt.Sprintf("%s-%s-%d", prefix, time.Now().UTC().Format("20060102"), seq),
	}, nil
}

// BusinessNumberFromString restores a persisted business number.
func BusinessNumberFromString(s string) (BusinessNumber, error) {
	if s == "" {
		return BusinessNumber{}, errs.NewValueIsRequiredError("business number")
	}
	return BusinessNumber{value: s}, nil
}

func validatePrefix(prefix string) error {
	if !businessNumberPrefixPattern.MatchString(prefix) {
		return errs.NewValueIsInvalidErrorWithCause(
			"prefix", fmt.Errorf("%q is not three uppercase letters", prefix))
	}
	return nil
}

// String returns the formatted number, e.g. "ORD-20250115-9F2C41AB".
func (n BusinessNumber) String() string {
	return n.value
}

// IsEqual compares two business numbers.
func (n BusinessNumber) IsEqual(other BusinessNumber) bool {
	return n.value == other.value
}

// Validate returns ErrBusinessNumberIsNotConstructed for the zero value.
func (n BusinessNumber) Validate() error {
	if n.value == "" {
		return ErrBusinessNumberIsNotConstructed
	}
	return nil
}

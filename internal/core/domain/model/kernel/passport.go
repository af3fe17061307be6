package kernel

import (
	"fmt"
	"regexp"
	"time"

	"brokerage/internal/pkg/errs"
)

var (
	passportSeriesPattern = regexp.MustCompile(`^[A-Z]{2}$`)
	passportNumberPattern = regexp.MustCompile(`^[0-9]{7}$`)
)

// Passport holds the identity-document details required on customs
// declarations: a two-letter series, a seven-digit number, and the validity
// window. Malformed passports are rejected before any persistence happens.
type Passport struct {
	series           string
	number           string
	issueDate        time.Time
	expiryDate       time.Time
	issuingAuthority string
}

// NewPassport validates and creates a passport value object.
func NewPassport(series, number string, issueDate, expiryDate time.Time, issuingAuthority string) (Passport, error) {
	if !passportSeriesPattern.MatchString(series) {
		return Passport{}, errs.NewValueIsInvalidErrorWithCause(
			"passport series", fmt.Errorf("%q is not two uppercase letters", series))
	}
	if !passportNumberPattern.MatchString(number) {
		return Passport{}, errs.NewValueIsInvalidErrorWithCause(
			"passport number", fmt.Errorf("%q is not seven digits", number))
	}
	if issueDate.IsZero() {
		return Passport{}, errs.NewValueIsRequiredError("passport issue date")
	}
	if !expiryDate.After(issueDate) {
		return Passport{}, errs.NewValueIsInvalidErrorWithCause(
			"passport expiry date", fmt.Errorf("expiry %s is not after issue %s",
				expiryDate.Format("2006-01-02"), issueDate.Format("2006-01-02")))
	}
	if issuingAuthority == "" {
		return Passport{}, errs.NewValueIsRequiredError("passport issuing authority")
	}

	return Passport{
		series:           series,
		number:           number,
		issueDate:        issueDate,
		expiryDate:       expiryDate,
		issuingAuthority: issuingAuthority,
	}, nil
}

// Series returns the two-letter series.
func (p Passport) Series() string {
	return p.series
}

// Number returns the seven-digit number.
func (p Passport) Number() string {
	return p.number
}

// IssueDate returns the date the passport was issued.
func (p Passport) IssueDate() time.Time {
	return p.issueDate
}

// ExpiryDate returns the date the passport expires.
func (p Passport) ExpiryDate() time.Time {
	return p.expiryDate
}

// IssuingAuthority returns the issuing body.
func (p Passport) IssuingAuthority() string {
	return p.issuingAuthority
}

// FullNumber returns the concatenated series and number, e.g. "AB1234567".
func (p Passport) FullNumber() string {
	return p.series + p.number
}

// Validate returns an error for the zero-value passport.
func (p Passport) Validate() error {
	if p.series == "" || p.number == "" {
		return errs.NewValueIsRequiredError("passport must be created via NewPassport")
	}
	return nil
}

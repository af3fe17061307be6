package account

import (
	"crypto/rand"
	"errors"
	"fmt"
	"regexp"
	"time"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/errs"
	"brokerage/internal/pkg/guard"
)

const clientCodeLength = 8

// clientCodeAlphabet excludes easily confused characters (0/O, 1/I).
const clientCodeAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ErrAccountIsNotConstructed is returned when an Account instance was not
// created through the NewAccount or RestoreAccount factory methods.
var ErrAccountIsNotConstructed = errors.New("account must be created via NewAccount or RestoreAccount")

// Account is the aggregate root for a registered user. The client code is an
// 8-character handle customers quote on parcels; it is generated once at
// registration and never changes. The password is stored as a bcrypt hash
// produced by the auth package, never in the clear.
type Account struct {
	guard guard.ConstructorGuard

	id           kernel.UUID
	email        string
	username     string
	phone        string
	firstName    string
	lastName     string
	passwordHash string
	clientCode   string

	staff         bool
	emailVerified bool

	country string
	city    string
	address string

	createdAt time.Time
}

// NewAccount registers an account. A client code is generated immediately;
// the repository regenerates it on a uniqueness collision.
func NewAccount(
	id kernel.UUID,
	email string,
	username string,
	phone string,
	firstName string,
	lastName string,
	passwordHash string,
) (*Account, error) {
	code, err := generateClientCode()
	if err != nil {
		return nil, err
	}

	a := &Account{
		guard:      guard.NewConstructorGuard(),
		clientCode: code,
		createdAt:  time.Now().UTC(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setEmail(email),
		a.setUsername(username),
		a.setPhone(phone),
		a.setName(firstName, lastName),
		a.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAccountParams carries the persisted state of an account.
type RestoreAccountParams struct {
	ID            kernel.UUID
	Email         string
	Username      string
	Phone         string
	FirstName     string
	LastName      string
	PasswordHash  string
	ClientCode    string
	Staff         bool
	EmailVerified bool
	Country       string
	City          string
	Address       string
	CreatedAt     time.Time
}

// RestoreAccount recreates an account from persistence.
func RestoreAccount(params RestoreAccountParams) (*Account, error) {
	if err := errors.Join(
		params.ID.Validate(),
	); err != nil {
		return nil, err
	}
	if params.Email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}
	if params.ClientCode == "" {
		return nil, errs.NewValueIsRequiredError("client code")
	}

	return &Account{
		guard:         guard.NewConstructorGuard(),
		id:            params.ID,
		email:         params.Email,
		username:      params.Username,
		phone:         params.Phone,
		firstName:     params.FirstName,
		lastName:      params.LastName,
		passwordHash:  params.PasswordHash,
		clientCode:    params.ClientCode,
		staff:         params.Staff,
		emailVerified: params.EmailVerified,
		country:       params.Country,
		city:          params.City,
		address:       params.Address,
		createdAt:     params.CreatedAt,
	}, nil
}

// Validate ensures the account was created through a factory method.
func (a *Account) Validate() error {
	if a == nil {
		return ErrAccountIsNotConstructed
	}
	return a.guard.Validate(ErrAccountIsNotConstructed)
}

// IsEqual compares two accounts by identifier.
func (a *Account) IsEqual(other *Account) bool {
	return other != nil && a.id.IsEqual(other.id)
}

func (a *Account) ID() kernel.UUID      { return a.id }
func (a *Account) Email() string        { return a.email }
func (a *Account) Username() string     { return a.username }
func (a *Account) Phone() string        { return a.phone }
func (a *Account) FirstName() string    { return a.firstName }
func (a *Account) LastName() string     { return a.lastName }
func (a *Account) PasswordHash() string { return a.passwordHash }
func (a *Account) ClientCode() string   { return a.clientCode }
func (a *Account) IsStaff() bool        { return a.staff }
func (a *Account) EmailVerified() bool  { return a.emailVerified }
func (a *Account) Country() string      { return a.country }
func (a *Account) City() string         { return a.city }
func (a *Account) Address() string      { return a.address }
func (a *Account) CreatedAt() time.Time { return a.createdAt }

// DisplayName returns the name used in history notes and emails: the full
// name when present, otherwise the username.
func (a *Account) DisplayName() string {
	if a.firstName == "" && a.lastName == "" {
		return a.username
	}
	if a.lastName == "" {
		return a.firstName
	}
	return a.firstName + " " + a.lastName
}

// Actor converts the account into the acting party for domain operations.
func (a *Account) Actor() (kernel.Actor, error) {
	return kernel.NewActor(a.id, a.DisplayName(), a.staff)
}

// RegenerateClientCode replaces the client code with a fresh one. The
// repository calls this when the first insert hits a uniqueness collision.
func (a *Account) RegenerateClientCode() error {
	code, err := generateClientCode()
	if err != nil {
		return err
	}
	a.clientCode = code
	return nil
}

// MarkEmailVerified flips the verification flag. Idempotent.
func (a *Account) MarkEmailVerified() {
	a.emailVerified = true
}

// PromoteToStaff grants the staff capability. Only existing staff may grant it.
func (a *Account) PromoteToStaff(actor kernel.Actor) error {
	if !actor.IsStaff() {
		return errs.NewForbiddenError("promote account to staff")
	}
	a.staff = true
	return nil
}

// ChangePasswordHash replaces the stored bcrypt hash.
func (a *Account) ChangePasswordHash(hash string) error {
	return a.setPasswordHash(hash)
}

// UpdateProfile replaces the editable profile fields. Email, username and the
// client code are immutable after registration.
func (a *Account) UpdateProfile(phone, firstName, lastName, country, city, address string) error {
	if err := errors.Join(
		a.setPhone(phone),
		a.setName(firstName, lastName),
	); err != nil {
		return err
	}

	a.country = country
	a.city = city
	a.address = address
	return nil
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !emailPattern.MatchString(email) {
		return errs.NewValueIsInvalidErrorWithCause(
			"email", fmt.Errorf("%q is not a valid email address", email))
	}
	a.email = email
	return nil
}

func (a *Account) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	a.username = username
	return nil
}

func (a *Account) setPhone(phone string) error {
	a.phone = phone
	return nil
}

func (a *Account) setName(firstName, lastName string) error {
	a.firstName = firstName
	a.lastName = lastName
	return nil
}

func (a *Account) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password hash")
	}
	a.passwordHash = hash
	return nil
}

func generateClientCode() (string, error) {
	buf := make([]byte, clientCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = clientCodeAlphabet[int(b)%len(clientCodeAlphabet)]
	}
	return string(buf), nil
}

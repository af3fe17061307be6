package queries

import (
	"context"
	"errors"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/errs"
	"brokerage/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetAccountByEmailQueryIsNotConstructed = errors.New(
	"GetAccountByEmailQuery must be created via NewGetAccountByEmailQuery constructor",
)

// GetAccountByEmailQuery retrieves the credential read model for login. It is
// the one query that carries no actor: it runs before authentication.
type GetAccountByEmailQuery struct {
	email string

	guard guard.ConstructorGuard
}

// NewGetAccountByEmailQuery creates a credential lookup query.
func NewGetAccountByEmailQuery(email string) (GetAccountByEmailQuery, error) {
	if email == "" {
		return GetAccountByEmailQuery{}, errs.NewValueIsRequiredError("email")
	}
	return GetAccountByEmailQuery{email: email, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAccountByEmailQuery) Validate() error {
	return q.guard.Validate(ErrGetAccountByEmailQueryIsNotConstructed)
}

func (q GetAccountByEmailQuery) Email() string { return q.email }

// GetAccountByEmailQueryResponse carries what the login flow needs: identity,
// the bcrypt hash to compare against and the staff flag for the token claims.
type GetAccountByEmailQueryResponse struct {
	ID            kernel.UUID
	Email         string
	Username      string
	FirstName     string
	LastName      string
	PasswordHash  string
	Staff         bool
	EmailVerified bool
}

// DisplayName mirrors the aggregate's naming rule for token claims.
func (r GetAccountByEmailQueryResponse) DisplayName() string {
	if r.FirstName == "" && r.LastName == "" {
		return r.Username
	}
	if r.LastName == "" {
		return r.FirstName
	}
	return r.FirstName + " " + r.LastName
}

// GetAccountByEmailQueryHandler retrieves login credentials with direct SQL.
type GetAccountByEmailQueryHandler struct {
	db *gorm.DB
}

// NewGetAccountByEmailQueryHandler creates a handler for credential lookups.
func NewGetAccountByEmailQueryHandler(db *gorm.DB) GetAccountByEmailQueryHandler {
	return GetAccountByEmailQueryHandler{db: db}
}

// Handle executes the query.
func (h GetAccountByEmailQueryHandler) Handle(
	ctx context.Context,
	query GetAccountByEmailQuery,
) (GetAccountByEmailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAccountByEmailQueryResponse{}, err
	}

	type row struct {
		ID            uuid.UUID
		Email         string
		Username      string
		FirstName     string
		LastName      string
		PasswordHash  string
		Staff         bool
		EmailVerified bool
	}

	var rows []row
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			email,
			username,
			first_name,
			last_name,
			password_hash,
			staff,
			email_verified
		FROM accounts
		WHERE email = ?
	`, query.Email()).Scan(&rows).Error
	if err != nil {
		return GetAccountByEmailQueryResponse{}, err
	}
	if len(rows) == 0 {
		return GetAccountByEmailQueryResponse{}, errs.NewObjectNotFoundError("account", query.Email())
	}

	r := rows[0]
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return GetAccountByEmailQueryResponse{}, err
	}

	return GetAccountByEmailQueryResponse{
		ID:            id,
		Email:         r.Email,
		Username:      r.Username,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		PasswordHash:  r.PasswordHash,
		Staff:         r.Staff,
		EmailVerified: r.EmailVerified,
	}, nil
}

package queries

import (
	"context"
	"errors"
	"time"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/errs"
	"brokerage/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetAccountQueryIsNotConstructed = errors.New(
	"GetAccountQuery must be created via NewGetAccountQuery constructor",
)

// GetAccountQuery retrieves one account profile. Customers read their own
// profile; staff may read anyone's.
type GetAccountQuery struct {
	actor     kernel.Actor
	accountID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAccountQuery creates a query to retrieve an account profile.
func NewGetAccountQuery(actor kernel.Actor, accountID kernel.UUID) (GetAccountQuery, error) {
	if err := errors.Join(actor.Validate(), accountID.Validate()); err != nil {
		return GetAccountQuery{}, err
	}
	return GetAccountQuery{actor: actor, accountID: accountID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAccountQuery) Validate() error {
	return q.guard.Validate(ErrGetAccountQueryIsNotConstructed)
}

func (q GetAccountQuery) Actor() kernel.Actor    { return q.actor }
func (q GetAccountQuery) AccountID() kernel.UUID { return q.accountID }

// GetAccountQueryResponse is the profile read model. No password hash here.
type GetAccountQueryResponse struct {
	ID            kernel.UUID
	Email         string
	Username      string
	Phone         string
	FirstName     string
	LastName      string
	ClientCode    string
	Staff         bool
	EmailVerified bool
	Country       string
	City          string
	Address       string
	CreatedAt     time.Time
}

// GetAccountQueryHandler retrieves account profiles with direct SQL.
type GetAccountQueryHandler struct {
	db *gorm.DB
}

// NewGetAccountQueryHandler creates a handler for profile queries.
func NewGetAccountQueryHandler(db *gorm.DB) GetAccountQueryHandler {
	return GetAccountQueryHandler{db: db}
}

// Handle executes the query. A foreign profile reads as not found.
func (h GetAccountQueryHandler) Handle(
	ctx context.Context,
	query GetAccountQuery,
) (GetAccountQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAccountQueryResponse{}, err
	}

	if !query.Actor().CanActOn(query.AccountID()) {
		return GetAccountQueryResponse{}, errs.NewObjectNotFoundError("account", query.AccountID())
	}

	type row struct {
		ID            uuid.UUID
		Email         string
		Username      string
		Phone         string
		FirstName     string
		LastName      string
		ClientCode    string
		Staff         bool
		EmailVerified bool
		Country       string
		City          string
		Address       string
		CreatedAt     time.Time
	}

	var rows []row
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			email,
			username,
			phone,
			first_name,
			last_name,
			client_code,
			staff,
			email_verified,
			country,
			city,
			address,
			created_at
		FROM accounts
		WHERE id = ?
	`, query.AccountID().Bytes()).Scan(&rows).Error
	if err != nil {
		return GetAccountQueryResponse{}, err
	}
	if len(rows) == 0 {
		return GetAccountQueryResponse{}, errs.NewObjectNotFoundError("account", query.AccountID())
	}

	r := rows[0]
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return GetAccountQueryResponse{}, err
	}

	return GetAccountQueryResponse{
		ID:            id,
		Email:         r.Email,
		Username:      r.Username,
		Phone:         r.Phone,
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		ClientCode:    r.ClientCode,
		Staff:         r.Staff,
		EmailVerified: r.EmailVerified,
		Country:       r.Country,
		City:          r.City,
		Address:       r.Address,
		CreatedAt:     r.CreatedAt,
	}, nil
}

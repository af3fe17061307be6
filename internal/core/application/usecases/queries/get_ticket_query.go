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

var ErrGetTicketQueryIsNotConstructed = errors.New(
	"GetTicketQuery must be created via NewGetTicketQuery constructor",
)

// GetTicketQuery retrieves a single support ticket. Non-staff callers
// addressing a foreign ticket get a not-found error.
type GetTicketQuery struct {
	actor    kernel.Actor
	ticketID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTicketQuery creates a query to retrieve one ticket.
func NewGetTicketQuery(actor kernel.Actor, ticketID kernel.UUID) (GetTicketQuery, error) {
	if err := errors.Join(actor.Validate(), ticketID.Validate()); err != nil {
		return GetTicketQuery{}, err
	}
	return GetTicketQuery{actor: actor, ticketID: ticketID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTicketQuery) Validate() error {
	return q.guard.Validate(ErrGetTicketQueryIsNotConstructed)
}

func (q GetTicketQuery) Actor() kernel.Actor   { return q.actor }
func (q GetTicketQuery) TicketID() kernel.UUID { return q.ticketID }

// GetTicketQueryResponse is the full ticket detail read model.
type GetTicketQueryResponse struct {
	ID            kernel.UUID
	Number        string
	CustomerID    kernel.UUID
	Subject       string
	Description   string
	TicketType    string
	Priority      string
	Status        string
	AssignedTo    *kernel.UUID
	OrderID       *kernel.UUID
	DeclarationID *kernel.UUID
	ResolvedAt    *time.Time
	ClosedAt      *time.Time
	CreatedAt     time.Time
}

// GetTicketQueryHandler retrieves ticket details with direct SQL.
type GetTicketQueryHandler struct {
	db *gorm.DB
}

// NewGetTicketQueryHandler creates a handler for ticket detail queries.
func NewGetTicketQueryHandler(db *gorm.DB) GetTicketQueryHandler {
	return GetTicketQueryHandler{db: db}
}

// Handle executes the query.
func (h GetTicketQueryHandler) Handle(
	ctx context.Context,
	query GetTicketQuery,
) (GetTicketQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTicketQueryResponse{}, err
	}

	type row struct {
		ID            uuid.UUID
		Number        string
		CustomerID    uuid.UUID
		Subject       string
		Description   string
		TicketType    string
		Priority      string
		Status        string
		AssignedTo    *uuid.UUID
		OrderID       *uuid.UUID
		DeclarationID *uuid.UUID
		ResolvedAt    *time.Time
		ClosedAt      *time.Time
		CreatedAt     time.Time
	}

	var rows []row
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			customer_id,
			subject,
			description,
			ticket_type,
			priority,
			status,
			assigned_to,
			order_id,
			declaration_id,
			resolved_at,
			closed_at,
			created_at
		FROM tickets
		WHERE id = ?
	`, query.TicketID().Bytes()).Scan(&rows).Error
	if err != nil {
		return GetTicketQueryResponse{}, err
	}
	if len(rows) == 0 {
		return GetTicketQueryResponse{}, errs.NewObjectNotFoundError("ticket", query.TicketID())
	}

	r := rows[0]
	customerID, err := kernel.UUIDFromBytes(r.CustomerID[:])
	if err != nil {
		return GetTicketQueryResponse{}, err
	}
	if !query.Actor().CanActOn(customerID) {
		return GetTicketQueryResponse{}, errs.NewObjectNotFoundError("ticket", query.TicketID())
	}

	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return GetTicketQueryResponse{}, err
	}

	toKernel := func(src *uuid.UUID) (*kernel.UUID, error) {
		if src == nil {
			return nil, nil
		}
		converted, convErr := kernel.UUIDFromBytes(src[:])
		if convErr != nil {
			return nil, convErr
		}
		return &converted, nil
	}

	assignedTo, err := toKernel(r.AssignedTo)
	if err != nil {
		return GetTicketQueryResponse{}, err
	}
	orderID, err := toKernel(r.OrderID)
	if err != nil {
		return GetTicketQueryResponse{}, err
	}
	declarationID, err := toKernel(r.DeclarationID)
	if err != nil {
		return GetTicketQueryResponse{}, err
	}

	return GetTicketQueryResponse{
		ID:            id,
		Number:        r.Number,
		CustomerID:    customerID,
		Subject:       r.Subject,
		Description:   r.Description,
		TicketType:    r.TicketType,
		Priority:      r.Priority,
		Status:        r.Status,
		AssignedTo:    assignedTo,
		OrderID:       orderID,
		DeclarationID: declarationID,
		ResolvedAt:    r.ResolvedAt,
		ClosedAt:      r.ClosedAt,
		CreatedAt:     r.CreatedAt,
	}, nil
}

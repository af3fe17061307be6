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

var ErrGetTicketMessagesQueryIsNotConstructed = errors.New(
	"GetTicketMessagesQuery must be created via NewGetTicketMessagesQuery constructor",
)

// GetTicketMessagesQuery retrieves the conversation thread of one ticket,
// oldest first.
type GetTicketMessagesQuery struct {
	actor    kernel.Actor
	ticketID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTicketMessagesQuery creates a query for a ticket's messages.
func NewGetTicketMessagesQuery(actor kernel.Actor, ticketID kernel.UUID) (GetTicketMessagesQuery, error) {
	if err := errors.Join(actor.Validate(), ticketID.Validate()); err != nil {
		return GetTicketMessagesQuery{}, err
	}
	return GetTicketMessagesQuery{actor: actor, ticketID: ticketID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTicketMessagesQuery) Validate() error {
	return q.guard.Validate(ErrGetTicketMessagesQueryIsNotConstructed)
}

func (q GetTicketMessagesQuery) Actor() kernel.Actor   { return q.actor }
func (q GetTicketMessagesQuery) TicketID() kernel.UUID { return q.ticketID }

// GetTicketMessagesQueryResponse is one message in the thread read model.
type GetTicketMessagesQueryResponse struct {
	ID         kernel.UUID
	AuthorName string
	AuthorKind string
	Body       string
	CreatedAt  time.Time
}

// GetTicketMessagesQueryHandler retrieves ticket threads with direct SQL.
type GetTicketMessagesQueryHandler struct {
	db *gorm.DB
}

// NewGetTicketMessagesQueryHandler creates a handler for ticket thread queries.
func NewGetTicketMessagesQueryHandler(db *gorm.DB) GetTicketMessagesQueryHandler {
	return GetTicketMessagesQueryHandler{db: db}
}

// Handle executes the query. A foreign ticket reads as not found.
func (h GetTicketMessagesQueryHandler) Handle(
	ctx context.Context,
	query GetTicketMessagesQuery,
) ([]GetTicketMessagesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var owners []struct{ CustomerID uuid.UUID }
	err := h.db.WithContext(ctx).Raw(
		`SELECT customer_id FROM tickets WHERE id = ?`, query.TicketID().Bytes(),
	).Scan(&owners).Error
	if err != nil {
		return nil, err
	}
	if len(owners) == 0 {
		return nil, errs.NewObjectNotFoundError("ticket", query.TicketID())
	}
	customerID, err := kernel.UUIDFromBytes(owners[0].CustomerID[:])
	if err != nil {
		return nil, err
	}
	if !query.Actor().CanActOn(customerID) {
		return nil, errs.NewObjectNotFoundError("ticket", query.TicketID())
	}

	type row struct {
		ID         uuid.UUID
		AuthorName string
		AuthorKind string
		Body       string
		CreatedAt  time.Time
	}

	var rows []row
	err = h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			author_name,
			author_kind,
			body,
			created_at
		FROM ticket_messages
		WHERE ticket_id = ?
		ORDER BY created_at, id
	`, query.TicketID().Bytes()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	messages := make([]GetTicketMessagesQueryResponse, 0, len(rows))
	for _, r := range rows {
		id, idErr := kernel.UUIDFromBytes(r.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		messages = append(messages, GetTicketMessagesQueryResponse{
			ID:         id,
			AuthorName: r.AuthorName,
			AuthorKind: r.AuthorKind,
			Body:       r.Body,
			CreatedAt:  r.CreatedAt,
		})
	}

	return messages, nil
}

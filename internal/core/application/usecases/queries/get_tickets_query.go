package queries

import (
	"context"
	"errors"
	"strings"
	"time"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/core/domain/model/ticket"
	"brokerage/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrGetTicketsQueryIsNotConstructed = errors.New(
	"GetTicketsQuery must be created via NewGetTicketsQuery constructor",
)

// GetTicketsQuery retrieves the support ticket list. Staff see every ticket;
// customers see their own. An optional status filter narrows the result.
type GetTicketsQuery struct {
	actor  kernel.Actor
	status *ticket.Status

	guard guard.ConstructorGuard
}

// NewGetTicketsQuery creates a query to list tickets.
func NewGetTicketsQuery(actor kernel.Actor, status *ticket.Status) (GetTicketsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetTicketsQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetTicketsQuery{}, err
		}
	}
	return GetTicketsQuery{actor: actor, status: status, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTicketsQuery) Validate() error {
	return q.guard.Validate(ErrGetTicketsQueryIsNotConstructed)
}

func (q GetTicketsQuery) Actor() kernel.Actor    { return q.actor }
func (q GetTicketsQuery) Status() *ticket.Status { return q.status }

// GetTicketsQueryResponse is one row of the ticket list read model.
type GetTicketsQueryResponse struct {
	ID         kernel.UUID
	Number     string
	CustomerID kernel.UUID
	Subject    string
	TicketType string
	Priority   string
	Status     string
	CreatedAt  time.Time
}

// GetTicketsQueryHandler retrieves ticket lists with direct SQL.
type GetTicketsQueryHandler struct {
	db *gorm.DB
}

// NewGetTicketsQueryHandler creates a handler for ticket list queries.
func NewGetTicketsQueryHandler(db *gorm.DB) GetTicketsQueryHandler {
	return GetTicketsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted newest first.
func (h GetTicketsQueryHandler) Handle(
	ctx context.Context,
	query GetTicketsQuery,
) ([]GetTicketsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			number,
			customer_id,
			subject,
			ticket_type,
			priority,
			status,
			created_at
		FROM tickets`

	var (
		conds []string
		args  []any
	)
	if !query.Actor().IsStaff() {
		conds = append(conds, "customer_id = ?")
		args = append(args, query.Actor().ID().Bytes())
	}
	if query.Status() != nil {
		conds = append(conds, "status = ?")
		args = append(args, query.Status().String())
	}
	if len(conds) > 0 {
		sql += " WHERE " + strings.Join(conds, " AND ")
	}
	sql += " ORDER BY created_at DESC"

	type row struct {
		ID         uuid.UUID
		Number     string
		CustomerID uuid.UUID
		Subject    string
		TicketType string
		Priority   string
		Status     string
		CreatedAt  time.Time
	}

	var rows []row
	if err := h.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	tickets := make([]GetTicketsQueryResponse, 0, len(rows))
	for _, r := range rows {
		id, err := kernel.UUIDFromBytes(r.ID[:])
		if err != nil {
			return nil, err
		}
		customerID, err := kernel.UUIDFromBytes(r.CustomerID[:])
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, GetTicketsQueryResponse{
			ID:         id,
			Number:     r.Number,
			CustomerID: customerID,
			Subject:    r.Subject,
			TicketType: r.TicketType,
			Priority:   r.Priority,
			Status:     r.Status,
			CreatedAt:  r.CreatedAt,
		})
	}

	return tickets, nil
}

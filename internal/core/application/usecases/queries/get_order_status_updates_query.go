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

var ErrGetOrderStatusUpdatesQueryIsNotConstructed = errors.New(
	"GetOrderStatusUpdatesQuery must be created via NewGetOrderStatusUpdatesQuery constructor",
)

// GetOrderStatusUpdatesQuery retrieves the status history of one order,
// oldest first.
type GetOrderStatusUpdatesQuery struct {
	actor   kernel.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderStatusUpdatesQuery creates a query for an order's history.
func NewGetOrderStatusUpdatesQuery(actor kernel.Actor, orderID kernel.UUID) (GetOrderStatusUpdatesQuery, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate()); err != nil {
		return GetOrderStatusUpdatesQuery{}, err
	}
	return GetOrderStatusUpdatesQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatusUpdatesQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusUpdatesQueryIsNotConstructed)
}

func (q GetOrderStatusUpdatesQuery) Actor() kernel.Actor  { return q.actor }
func (q GetOrderStatusUpdatesQuery) OrderID() kernel.UUID { return q.orderID }

// GetOrderStatusUpdatesQueryResponse is one history record in the read model.
type GetOrderStatusUpdatesQueryResponse struct {
	ID             kernel.UUID
	Status         string
	DeliveryStatus string
	Note           string
	UpdatedByName  string
	CreatedAt      time.Time
}

// GetOrderStatusUpdatesQueryHandler retrieves order history with direct SQL.
type GetOrderStatusUpdatesQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatusUpdatesQueryHandler creates a handler for order history queries.
func NewGetOrderStatusUpdatesQueryHandler(db *gorm.DB) GetOrderStatusUpdatesQueryHandler {
	return GetOrderStatusUpdatesQueryHandler{db: db}
}

// Handle executes the query. The owner check runs against the parent order;
// a foreign order reads as not found.
func (h GetOrderStatusUpdatesQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatusUpdatesQuery,
) ([]GetOrderStatusUpdatesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var owners []struct{ CustomerID uuid.UUID }
	err := h.db.WithContext(ctx).Raw(
		`SELECT customer_id FROM orders WHERE id = ?`, query.OrderID().Bytes(),
	).Scan(&owners).Error
	if err != nil {
		return nil, err
	}
	if len(owners) == 0 {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	customerID, err := kernel.UUIDFromBytes(owners[0].CustomerID[:])
	if err != nil {
		return nil, err
	}
	if !query.Actor().CanActOn(customerID) {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	type row struct {
		ID             uuid.UUID
		Status         string
		DeliveryStatus string
		Note           string
		UpdatedByName  string
		CreatedAt      time.Time
	}

	var rows []row
	err = h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			delivery_status,
			note,
			updated_by_name,
			created_at
		FROM order_status_updates
		WHERE order_id = ?
		ORDER BY created_at, id
	`, query.OrderID().Bytes()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	updates := make([]GetOrderStatusUpdatesQueryResponse, 0, len(rows))
	for _, r := range rows {
		id, idErr := kernel.UUIDFromBytes(r.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		updates = append(updates, GetOrderStatusUpdatesQueryResponse{
			ID:             id,
			Status:         r.Status,
			DeliveryStatus: r.DeliveryStatus,
			Note:           r.Note,
			UpdatedByName:  r.UpdatedByName,
			CreatedAt:      r.CreatedAt,
		})
	}

	return updates, nil
}

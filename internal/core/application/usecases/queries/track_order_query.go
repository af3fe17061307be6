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

var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// TrackOrderQuery retrieves the tracking view of one order: current statuses,
// carrier tracking details and delivery estimates. No pricing or admin fields.
type TrackOrderQuery struct {
	actor   kernel.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a query for order tracking.
func NewTrackOrderQuery(actor kernel.Actor, orderID kernel.UUID) (TrackOrderQuery, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate()); err != nil {
		return TrackOrderQuery{}, err
	}
	return TrackOrderQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

func (q TrackOrderQuery) Actor() kernel.Actor  { return q.actor }
func (q TrackOrderQuery) OrderID() kernel.UUID { return q.orderID }

// TrackOrderQueryResponse is the tracking read model.
type TrackOrderQueryResponse struct {
	Number            string
	Status            string
	DeliveryStatus    string
	TrackingNumber    string
	TrackingURL       string
	EstimatedDelivery *time.Time
	ActualDelivery    *time.Time
}

// TrackOrderQueryHandler retrieves tracking details with direct SQL.
type TrackOrderQueryHandler struct {
	db *gorm.DB
}

// NewTrackOrderQueryHandler creates a handler for tracking queries.
func NewTrackOrderQueryHandler(db *gorm.DB) TrackOrderQueryHandler {
	return TrackOrderQueryHandler{db: db}
}

// Handle executes the query.
func (h TrackOrderQueryHandler) Handle(
	ctx context.Context,
	query TrackOrderQuery,
) (TrackOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackOrderQueryResponse{}, err
	}

	type row struct {
		CustomerID        uuid.UUID
		Number            string
		Status            string
		DeliveryStatus    string
		TrackingNumber    string
		TrackingURL       string
		EstimatedDelivery *time.Time
		ActualDelivery    *time.Time
	}

	var rows []row
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			customer_id,
			number,
			status,
			delivery_status,
			tracking_number,
			tracking_url,
			estimated_delivery,
			actual_delivery
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Scan(&rows).Error
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}
	if len(rows) == 0 {
		return TrackOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	r := rows[0]
	customerID, err := kernel.UUIDFromBytes(r.CustomerID[:])
	if err != nil {
		return TrackOrderQueryResponse{}, err
	}
	if !query.Actor().CanActOn(customerID) {
		return TrackOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	return TrackOrderQueryResponse{
		Number:            r.Number,
		Status:            r.Status,
		DeliveryStatus:    r.DeliveryStatus,
		TrackingNumber:    r.TrackingNumber,
		TrackingURL:       r.TrackingURL,
		EstimatedDelivery: r.EstimatedDelivery,
		ActualDelivery:    r.ActualDelivery,
	}, nil
}

package queries

import (
	"context"
	"errors"
	"time"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/errs"
	"brokerage/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order. Non-staff callers addressing a
// foreign order get a not-found error so existence is not leaked.
type GetOrderQuery struct {
	actor   kernel.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order.
func NewGetOrderQuery(actor kernel.Actor, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Actor() kernel.Actor  { return q.actor }
func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }

// GetOrderQueryResponse is the full order detail read model.
type GetOrderQueryResponse struct {
	ID                 kernel.UUID
	Number             string
	CustomerID         kernel.UUID
	ProductName        string
	ProductDescription string
	Quantity           int
	UnitPrice          decimal.Decimal
	TotalPrice         decimal.Decimal
	Status             string
	DeliveryStatus     string
	TrackingNumber     string
	TrackingURL        string
	DeliveryAddress    string
	DeliveryPhone      string
	DeliveryNotes      string
	OrderDate          time.Time
	EstimatedDelivery  *time.Time
	ActualDelivery     *time.Time
	AdminNotes         string
}

// GetOrderQueryHandler retrieves order details with direct SQL.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Admin notes are blanked for non-staff callers.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	type row struct {
		ID                 uuid.UUID
		Number             string
		CustomerID         uuid.UUID
		ProductName        string
		ProductDescription string
		Quantity           int
		UnitPrice          decimal.Decimal
		TotalPrice         decimal.Decimal
		Status             string
		DeliveryStatus     string
		TrackingNumber     string
		TrackingURL        string
		DeliveryAddress    string
		DeliveryPhone      string
		DeliveryNotes      string
		OrderDate          time.Time
		EstimatedDelivery  *time.Time
		ActualDelivery     *time.Time
		AdminNotes         string
	}

	var rows []row
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			number,
			customer_id,
			product_name,
			product_description,
			quantity,
			unit_price,
			total_price,
			status,
			delivery_status,
			tracking_number,
			tracking_url,
			delivery_address,
			delivery_phone,
			delivery_notes,
			order_date,
			estimated_delivery,
			actual_delivery,
			admin_notes
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Scan(&rows).Error
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	if len(rows) == 0 {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	r := rows[0]
	customerID, err := kernel.UUIDFromBytes(r.CustomerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	if !query.Actor().CanActOn(customerID) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp := GetOrderQueryResponse{
		ID:                 id,
		Number:             r.Number,
		CustomerID:         customerID,
		ProductName:        r.ProductName,
		ProductDescription: r.ProductDescription,
		Quantity:           r.Quantity,
		UnitPrice:          r.UnitPrice,
		TotalPrice:         r.TotalPrice,
		Status:             r.Status,
		DeliveryStatus:     r.DeliveryStatus,
		TrackingNumber:     r.TrackingNumber,
		TrackingURL:        r.TrackingURL,
		DeliveryAddress:    r.DeliveryAddress,
		DeliveryPhone:      r.DeliveryPhone,
		DeliveryNotes:      r.DeliveryNotes,
		OrderDate:          r.OrderDate,
		EstimatedDelivery:  r.EstimatedDelivery,
		ActualDelivery:     r.ActualDelivery,
		AdminNotes:         r.AdminNotes,
	}
	if !query.Actor().IsStaff() {
		resp.AdminNotes = ""
	}
	return resp, nil
}

// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases and never load
// full aggregates. Every query carries the acting party; non-staff callers
// only ever see their own rows.
package queries

import (
	"context"
	"errors"
	"strings"
	"time"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/core/domain/model/order"
	"brokerage/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves the order list. Staff see every order; customers
// see their own. An optional status filter narrows the result.
type GetOrdersQuery struct {
	actor  kernel.Actor
	status *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to list orders.
func NewGetOrdersQuery(actor kernel.Actor, status *order.Status) (GetOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}
	return GetOrdersQuery{actor: actor, status: status, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) Actor() kernel.Actor   { return q.actor }
func (q GetOrdersQuery) Status() *order.Status { return q.status }

// GetOrdersQueryResponse is one row of the order list read model.
type GetOrdersQueryResponse struct {
	ID             kernel.UUID
	Number         string
	CustomerID     kernel.UUID
	ProductName    string
	Quantity       int
	TotalPrice     decimal.Decimal
	Status         string
	DeliveryStatus string
	OrderDate      time.Time
}

// GetOrdersQueryHandler retrieves order lists with direct SQL for optimal
// read performance.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted newest first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			number,
			customer_id,
			product_name,
			quantity,
			total_price,
			status,
			delivery_status,
			order_date
		FROM orders`

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
	sql += " ORDER BY order_date DESC"

	type row struct {
		ID             uuid.UUID
		Number         string
		CustomerID     uuid.UUID
		ProductName    string
		Quantity       int
		TotalPrice     decimal.Decimal
		Status         string
		DeliveryStatus string
		OrderDate      time.Time
	}

	var rows []row
	if err := h.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	orders := make([]GetOrdersQueryResponse, 0, len(rows))
	for _, r := range rows {
		id, err := kernel.UUIDFromBytes(r.ID[:])
		if err != nil {
			return nil, err
		}
		customerID, err := kernel.UUIDFromBytes(r.CustomerID[:])
		if err != nil {
			return nil, err
		}
		orders = append(orders, GetOrdersQueryResponse{
			ID:             id,
			Number:         r.Number,
			CustomerID:     customerID,
			ProductName:    r.ProductName,
			Quantity:       r.Quantity,
			TotalPrice:     r.TotalPrice,
			Status:         r.Status,
			DeliveryStatus: r.DeliveryStatus,
			OrderDate:      r.OrderDate,
		})
	}

	return orders, nil
}

package queries

import (
	"context"
	"errors"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/guard"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrGetOrderStatisticsQueryIsNotConstructed = errors.New(
	"GetOrderStatisticsQuery must be created via NewGetOrderStatisticsQuery constructor",
)

// GetOrderStatisticsQuery retrieves per-status order counts and the total
// order value. Staff see global figures; customers see their own.
type GetOrderStatisticsQuery struct {
	actor kernel.Actor

	guard guard.ConstructorGuard
}

// NewGetOrderStatisticsQuery creates a query for order statistics.
func NewGetOrderStatisticsQuery(actor kernel.Actor) (GetOrderStatisticsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrderStatisticsQuery{}, err
	}
	return GetOrderStatisticsQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatisticsQueryIsNotConstructed)
}

func (q GetOrderStatisticsQuery) Actor() kernel.Actor { return q.actor }

// GetOrderStatisticsQueryResponse aggregates order counts by status.
type GetOrderStatisticsQueryResponse struct {
	TotalOrders int
	ByStatus    map[string]int
	TotalValue  decimal.Decimal
}

// GetOrderStatisticsQueryHandler computes order statistics with direct SQL.
type GetOrderStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatisticsQueryHandler creates a handler for order statistics.
func NewGetOrderStatisticsQueryHandler(db *gorm.DB) GetOrderStatisticsQueryHandler {
	return GetOrderStatisticsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetOrderStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatisticsQuery,
) (GetOrderStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatisticsQueryResponse{}, err
	}

	sql := `
		SELECT
			status,
			COUNT(*) AS count,
			COALESCE(SUM(total_price), 0) AS total
		FROM orders`
	var args []any
	if !query.Actor().IsStaff() {
		sql += " WHERE customer_id = ?"
		args = append(args, query.Actor().ID().Bytes())
	}
	sql += " GROUP BY status"

	type row struct {
		Status string
		Count  int
		Total  decimal.Decimal
	}

	var rows []row
	if err := h.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return GetOrderStatisticsQueryResponse{}, err
	}

	resp := GetOrderStatisticsQueryResponse{
		ByStatus:   make(map[string]int, len(rows)),
		TotalValue: decimal.Zero,
	}
	for _, r := range rows {
		resp.ByStatus[r.Status] = r.Count
		resp.TotalOrders += r.Count
		resp.TotalValue = resp.TotalValue.Add(r.Total)
	}

	return resp, nil
}

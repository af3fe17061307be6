package queries

import (
	"context"
	"errors"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetSupportStatisticsQueryIsNotConstructed = errors.New(
	"GetSupportStatisticsQuery must be created via NewGetSupportStatisticsQuery constructor",
)

// GetSupportStatisticsQuery retrieves per-status ticket counts. Staff see
// global figures; customers see their own.
type GetSupportStatisticsQuery struct {
	actor kernel.Actor

	guard guard.ConstructorGuard
}

// NewGetSupportStatisticsQuery creates a query for support statistics.
func NewGetSupportStatisticsQuery(actor kernel.Actor) (GetSupportStatisticsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetSupportStatisticsQuery{}, err
	}
	return GetSupportStatisticsQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSupportStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetSupportStatisticsQueryIsNotConstructed)
}

func (q GetSupportStatisticsQuery) Actor() kernel.Actor { return q.actor }

// GetSupportStatisticsQueryResponse aggregates ticket counts by status.
type GetSupportStatisticsQueryResponse struct {
	TotalTickets int
	ByStatus     map[string]int
}

// GetSupportStatisticsQueryHandler computes support statistics with direct SQL.
type GetSupportStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetSupportStatisticsQueryHandler creates a handler for support statistics.
func NewGetSupportStatisticsQueryHandler(db *gorm.DB) GetSupportStatisticsQueryHandler {
	return GetSupportStatisticsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetSupportStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetSupportStatisticsQuery,
) (GetSupportStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSupportStatisticsQueryResponse{}, err
	}

	sql := `
		SELECT
			status,
			COUNT(*) AS count
		FROM tickets`
	var args []any
	if !query.Actor().IsStaff() {
		sql += " WHERE customer_id = ?"
		args = append(args, query.Actor().ID().Bytes())
	}
	sql += " GROUP BY status"

	type row struct {
		Status string
		Count  int
	}

	var rows []row
	if err := h.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return GetSupportStatisticsQueryResponse{}, err
	}

	resp := GetSupportStatisticsQueryResponse{
		ByStatus: make(map[string]int, len(rows)),
	}
	for _, r := range rows {
		resp.ByStatus[r.Status] = r.Count
		resp.TotalTickets += r.Count
	}

	return resp, nil
}

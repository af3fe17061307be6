package queries

import (
	"context"
	"errors"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetDeclarationStatisticsQueryIsNotConstructed = errors.New(
	"GetDeclarationStatisticsQuery must be created via NewGetDeclarationStatisticsQuery constructor",
)

// GetDeclarationStatisticsQuery retrieves per-status declaration counts.
// Staff see global figures; customers see their own.
type GetDeclarationStatisticsQuery struct {
	actor kernel.Actor

	guard guard.ConstructorGuard
}

// NewGetDeclarationStatisticsQuery creates a query for declaration statistics.
func NewGetDeclarationStatisticsQuery(actor kernel.Actor) (GetDeclarationStatisticsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetDeclarationStatisticsQuery{}, err
	}
	return GetDeclarationStatisticsQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeclarationStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeclarationStatisticsQueryIsNotConstructed)
}

func (q GetDeclarationStatisticsQuery) Actor() kernel.Actor { return q.actor }

// GetDeclarationStatisticsQueryResponse aggregates declaration counts by status.
type GetDeclarationStatisticsQueryResponse struct {
	TotalDeclarations int
	ByStatus          map[string]int
}

// GetDeclarationStatisticsQueryHandler computes declaration statistics with
// direct SQL.
type GetDeclarationStatisticsQueryHandler struct {
	db *gorm.DB
}

// NewGetDeclarationStatisticsQueryHandler creates a handler for declaration
// statistics.
func NewGetDeclarationStatisticsQueryHandler(db *gorm.DB) GetDeclarationStatisticsQueryHandler {
	return GetDeclarationStatisticsQueryHandler{db: db}
}

// Handle executes the query.
func (h GetDeclarationStatisticsQueryHandler) Handle(
	ctx context.Context,
	query GetDeclarationStatisticsQuery,
) (GetDeclarationStatisticsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeclarationStatisticsQueryResponse{}, err
	}

	sql := `
		SELECT
			status,
			COUNT(*) AS count
		FROM declarations`
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
		return GetDeclarationStatisticsQueryResponse{}, err
	}

	resp := GetDeclarationStatisticsQueryResponse{
		ByStatus: make(map[string]int, len(rows)),
	}
	for _, r := range rows {
		resp.ByStatus[r.Status] = r.Count
		resp.TotalDeclarations += r.Count
	}

	return resp, nil
}

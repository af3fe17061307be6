package queries

import (
	"context"
	"errors"
	"strings"
	"time"

	"brokerage/internal/core/domain/model/declaration"
	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrGetDeclarationsQueryIsNotConstructed = errors.New(
	"GetDeclarationsQuery must be created via NewGetDeclarationsQuery constructor",
)

// GetDeclarationsQuery retrieves the declaration list. Staff see every
// declaration; customers see their own. An optional status filter narrows
// the result.
type GetDeclarationsQuery struct {
	actor  kernel.Actor
	status *declaration.Status

	guard guard.ConstructorGuard
}

// NewGetDeclarationsQuery creates a query to list declarations.
func NewGetDeclarationsQuery(actor kernel.Actor, status *declaration.Status) (GetDeclarationsQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetDeclarationsQuery{}, err
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return GetDeclarationsQuery{}, err
		}
	}
	return GetDeclarationsQuery{actor: actor, status: status, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeclarationsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeclarationsQueryIsNotConstructed)
}

func (q GetDeclarationsQuery) Actor() kernel.Actor         { return q.actor }
func (q GetDeclarationsQuery) Status() *declaration.Status { return q.status }

// GetDeclarationsQueryResponse is one row of the declaration list read model.
type GetDeclarationsQueryResponse struct {
	ID              kernel.UUID
	Number          string
	CustomerID      kernel.UUID
	DeclarationType string
	ProductName     string
	ProductValue    decimal.Decimal
	Currency        string
	Status          string
	SubmittedAt     *time.Time
	CreatedAt       time.Time
}

// GetDeclarationsQueryHandler retrieves declaration lists with direct SQL.
type GetDeclarationsQueryHandler struct {
	db *gorm.DB
}

// NewGetDeclarationsQueryHandler creates a handler for declaration list queries.
func NewGetDeclarationsQueryHandler(db *gorm.DB) GetDeclarationsQueryHandler {
	return GetDeclarationsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted newest first.
func (h GetDeclarationsQueryHandler) Handle(
	ctx context.Context,
	query GetDeclarationsQuery,
) ([]GetDeclarationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			number,
			customer_id,
			declaration_type,
			product_name,
			product_value,
			currency,
			status,
			submitted_at,
			created_at
		FROM declarations`

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
		ID              uuid.UUID
		Number          string
		CustomerID      uuid.UUID
		DeclarationType string
		ProductName     string
		ProductValue    decimal.Decimal
		Currency        string
		Status          string
		SubmittedAt     *time.Time
		CreatedAt       time.Time
	}

	var rows []row
	if err := h.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	declarations := make([]GetDeclarationsQueryResponse, 0, len(rows))
	for _, r := range rows {
		id, err := kernel.UUIDFromBytes(r.ID[:])
		if err != nil {
			return nil, err
		}
		customerID, err := kernel.UUIDFromBytes(r.CustomerID[:])
		if err != nil {
			return nil, err
		}
		declarations = append(declarations, GetDeclarationsQueryResponse{
			ID:              id,
			Number:          r.Number,
			CustomerID:      customerID,
			DeclarationType: r.DeclarationType,
			ProductName:     r.ProductName,
			ProductValue:    r.ProductValue,
			Currency:        r.Currency,
			Status:          r.Status,
			SubmittedAt:     r.SubmittedAt,
			CreatedAt:       r.CreatedAt,
		})
	}

	return declarations, nil
}

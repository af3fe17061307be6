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

var ErrGetDeclarationStatusUpdatesQueryIsNotConstructed = errors.New(
	"GetDeclarationStatusUpdatesQuery must be created via NewGetDeclarationStatusUpdatesQuery constructor",
)

// GetDeclarationStatusUpdatesQuery retrieves the status history of one
// declaration, oldest first.
type GetDeclarationStatusUpdatesQuery struct {
	actor         kernel.Actor
	declarationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeclarationStatusUpdatesQuery creates a query for a declaration's history.
func NewGetDeclarationStatusUpdatesQuery(
	actor kernel.Actor,
	declarationID kernel.UUID,
) (GetDeclarationStatusUpdatesQuery, error) {
	if err := errors.Join(actor.Validate(), declarationID.Validate()); err != nil {
		return GetDeclarationStatusUpdatesQuery{}, err
	}
	return GetDeclarationStatusUpdatesQuery{
		actor:         actor,
		declarationID: declarationID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeclarationStatusUpdatesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeclarationStatusUpdatesQueryIsNotConstructed)
}

func (q GetDeclarationStatusUpdatesQuery) Actor() kernel.Actor        { return q.actor }
func (q GetDeclarationStatusUpdatesQuery) DeclarationID() kernel.UUID { return q.declarationID }

// GetDeclarationStatusUpdatesQueryResponse is one history record.
type GetDeclarationStatusUpdatesQueryResponse struct {
	ID            kernel.UUID
	Status        string
	Note          string
	UpdatedByName string
	CreatedAt     time.Time
}

// GetDeclarationStatusUpdatesQueryHandler retrieves declaration history with
// direct SQL.
type GetDeclarationStatusUpdatesQueryHandler struct {
	db *gorm.DB
}

// NewGetDeclarationStatusUpdatesQueryHandler creates a handler for declaration
// history queries.
func NewGetDeclarationStatusUpdatesQueryHandler(db *gorm.DB) GetDeclarationStatusUpdatesQueryHandler {
	return GetDeclarationStatusUpdatesQueryHandler{db: db}
}

// Handle executes the query. A foreign declaration reads as not found.
func (h GetDeclarationStatusUpdatesQueryHandler) Handle(
	ctx context.Context,
	query GetDeclarationStatusUpdatesQuery,
) ([]GetDeclarationStatusUpdatesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var owners []struct{ CustomerID uuid.UUID }
	err := h.db.WithContext(ctx).Raw(
		`SELECT customer_id FROM declarations WHERE id = ?`, query.DeclarationID().Bytes(),
	).Scan(&owners).Error
	if err != nil {
		return nil, err
	}
	if len(owners) == 0 {
		return nil, errs.NewObjectNotFoundError("declaration", query.DeclarationID())
	}
	customerID, err := kernel.UUIDFromBytes(owners[0].CustomerID[:])
	if err != nil {
		return nil, err
	}
	if !query.Actor().CanActOn(customerID) {
		return nil, errs.NewObjectNotFoundError("declaration", query.DeclarationID())
	}

	type row struct {
		ID            uuid.UUID
		Status        string
		Note          string
		UpdatedByName string
		CreatedAt     time.Time
	}

	var rows []row
	err = h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			note,
			updated_by_name,
			created_at
		FROM declaration_status_updates
		WHERE declaration_id = ?
		ORDER BY created_at, id
	`, query.DeclarationID().Bytes()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	updates := make([]GetDeclarationStatusUpdatesQueryResponse, 0, len(rows))
	for _, r := range rows {
		id, idErr := kernel.UUIDFromBytes(r.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		updates = append(updates, GetDeclarationStatusUpdatesQueryResponse{
			ID:            id,
			Status:        r.Status,
			Note:          r.Note,
			UpdatedByName: r.UpdatedByName,
			CreatedAt:     r.CreatedAt,
		})
	}

	return updates, nil
}

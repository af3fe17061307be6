package queries

import (
	"context"
	"errors"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/core/ports"
	"brokerage/internal/pkg/errs"
	"brokerage/internal/pkg/guard"
)

var ErrGetDeclarationDocumentQueryIsNotConstructed = errors.New(
	"GetDeclarationDocumentQuery must be created via NewGetDeclarationDocumentQuery constructor",
)

// GetDeclarationDocumentQuery produces the printable document for one
// declaration. The owner and staff may download it.
type GetDeclarationDocumentQuery struct {
	actor         kernel.Actor
	declarationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeclarationDocumentQuery creates a query for a declaration document.
func NewGetDeclarationDocumentQuery(
	actor kernel.Actor,
	declarationID kernel.UUID,
) (GetDeclarationDocumentQuery, error) {
	if err := errors.Join(actor.Validate(), declarationID.Validate()); err != nil {
		return GetDeclarationDocumentQuery{}, err
	}
	return GetDeclarationDocumentQuery{
		actor:         actor,
		declarationID: declarationID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeclarationDocumentQuery) Validate() error {
	return q.guard.Validate(ErrGetDeclarationDocumentQueryIsNotConstructed)
}

func (q GetDeclarationDocumentQuery) Actor() kernel.Actor        { return q.actor }
func (q GetDeclarationDocumentQuery) DeclarationID() kernel.UUID { return q.declarationID }

// GetDeclarationDocumentQueryHandler loads the declaration aggregate and
// renders it. This query goes through the repository rather than raw SQL
// because the renderer works on the full aggregate.
type GetDeclarationDocumentQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	renderer   ports.DocumentRenderer
}

// NewGetDeclarationDocumentQueryHandler creates a handler for document queries.
func NewGetDeclarationDocumentQueryHandler(
	uowFactory ports.UnitOfWorkFactory,
	renderer ports.DocumentRenderer,
) GetDeclarationDocumentQueryHandler {
	return GetDeclarationDocumentQueryHandler{uowFactory: uowFactory, renderer: renderer}
}

// Handle executes the query. A foreign declaration reads as not found.
func (h GetDeclarationDocumentQueryHandler) Handle(
	ctx context.Context,
	query GetDeclarationDocumentQuery,
) ([]byte, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.uowFactory.Create().DeclarationRepository().Get(ctx, query.DeclarationID())
	if err != nil {
		return nil, err
	}

	if !query.Actor().CanActOn(aggregate.CustomerID()) {
		return nil, errs.NewObjectNotFoundError("declaration", query.DeclarationID())
	}

	return h.renderer.Render(aggregate)
}

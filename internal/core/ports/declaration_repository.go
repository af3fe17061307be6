package ports

import (
	"context"

	"brokerage/internal/core/domain/model/declaration"
	"brokerage/internal/core/domain/model/kernel"
)

// DeclarationRepository defines the persistence contract for customs
// declaration aggregates.
type DeclarationRepository interface {
	// Add persists a new declaration aggregate. On a business number
	// collision the repository regenerates the number and retries.
	Add(ctx context.Context, aggregate *declaration.Declaration) error

	// Update persists changes to an existing declaration aggregate,
	// including newly appended status updates.
	Update(ctx context.Context, aggregate *declaration.Declaration) error

	// Get retrieves a declaration aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*declaration.Declaration, error)

	// GetForUpdate retrieves a declaration with a row-level lock for
	// transition handlers.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*declaration.Declaration, error)

	// Delete removes a declaration and its history.
	Delete(ctx context.Context, id kernel.UUID) error
}

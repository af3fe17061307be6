package ports

import (
	"context"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// History records travel with the aggregate and are saved in the same
// transaction.
type OrderRepository interface {
	// Add persists a new order aggregate. On a business number collision
	// the repository regenerates the number and retries before failing.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, including
	// newly appended status updates.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order with a row-level lock. Transition
	// handlers call it inside a transaction so the guard check runs
	// against current state.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order and its history.
	Delete(ctx context.Context, id kernel.UUID) error
}

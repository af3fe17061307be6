package ports

import (
	"context"

	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/core/domain/model/ticket"
)

// TicketRepository defines the persistence contract for support ticket
// aggregates. Ticket numbers depend on a database sequence, so Add inserts
// first, reads the sequence value back, and assigns the number within the
// same transaction.
type TicketRepository interface {
	// Add persists a new ticket aggregate and assigns its sequenced
	// business number.
	Add(ctx context.Context, aggregate *ticket.Ticket) error

	// Update persists changes to an existing ticket aggregate, including
	// newly appended messages.
	Update(ctx context.Context, aggregate *ticket.Ticket) error

	// Get retrieves a ticket aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*ticket.Ticket, error)

	// GetForUpdate retrieves a ticket with a row-level lock for
	// transition handlers.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*ticket.Ticket, error)
}

package ports

import (
	"context"

	"brokerage/internal/core/domain/model/account"
	"brokerage/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for account aggregates.
type AccountRepository interface {
	// Add persists a new account. On a client code collision the
	// repository regenerates the code and retries; a duplicate email is
	// reported to the caller.
	Add(ctx context.Context, aggregate *account.Account) error

	// Update persists changes to an existing account aggregate.
	Update(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetByEmail retrieves an account aggregate by its unique email.
	GetByEmail(ctx context.Context, email string) (*account.Account, error)
}

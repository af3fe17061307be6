package ports

import (
	"context"

	"brokerage/internal/core/domain/model/kernel"
)

// VerificationCodes stores short-lived email verification codes. Codes expire
// on their own; Verify consumes the code on success so it cannot be replayed.
type VerificationCodes interface {
	// Store saves the code for the account, replacing any previous one.
	Store(ctx context.Context, accountID kernel.UUID, code string) error

	// Verify checks the code and consumes it when it matches.
	Verify(ctx context.Context, accountID kernel.UUID, code string) (bool, error)
}

// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"brokerage/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest UoW that covers the repositories it
// touches; the concrete postgres unit of work satisfies all of them.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DeclarationRepoFactory provides access to the declaration repository within a transaction.
	DeclarationRepoFactory interface {
		DeclarationRepository() ports.DeclarationRepository
	}

	// TicketRepoFactory provides access to the ticket repository within a transaction.
	TicketRepoFactory interface {
		TicketRepository() ports.TicketRepository
	}

	// AccountRepoFactory provides access to the account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// ContentRepoFactory provides access to the content repository within a transaction.
	ContentRepoFactory interface {
		ContentRepository() ports.ContentRepository
	}

	// NotificationRepoFactory provides access to the outbox repository within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// OrderUoW manages transactions for order operations. The account
	// repository rides along so handlers can resolve the owner's email
	// for notifications inside the same transaction.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		AccountRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// DeclarationUoW manages transactions for declaration operations.
	DeclarationUoW interface {
		TxManager
		DeclarationRepoFactory
		AccountRepoFactory
	}

	// DeclarationUoWFactory creates new declaration unit of work instances.
	DeclarationUoWFactory interface {
		Create() DeclarationUoW
	}

	// TicketUoW manages transactions for support ticket operations.
	TicketUoW interface {
		TxManager
		TicketRepoFactory
		AccountRepoFactory
	}

	// TicketUoWFactory creates new ticket unit of work instances.
	TicketUoWFactory interface {
		Create() TicketUoW
	}

	// AccountUoW manages transactions for account-only operations.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// ContentUoW manages transactions for article operations.
	ContentUoW interface {
		TxManager
		ContentRepoFactory
	}

	// ContentUoWFactory creates new content unit of work instances.
	ContentUoWFactory interface {
		Create() ContentUoW
	}

	// NotificationUoW manages transactions for outbox operations.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	// NotificationUoWFactory creates new outbox unit of work instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)

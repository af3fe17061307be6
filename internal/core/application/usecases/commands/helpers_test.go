package commands_test

import (
	"testing"

	"brokerage/internal/core/domain/model/account"
	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func staffActor(t *testing.T) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), "Broker Petrov", true)
	require.NoError(t, err)
	return actor
}

func customerActor(t *testing.T, id kernel.UUID) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(id, "Jane Doe", false)
	require.NoError(t, err)
	return actor
}

func testAccount(t *testing.T, id kernel.UUID) *account.Account {
	t.Helper()
	acc, err := account.NewAccount(id, "jane@example.com", "jane", "", "Jane", "Doe", "$2a$10$notarealhash")
	require.NoError(t, err)
	return acc
}

func testOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), customerID, "Wireless headphones",
		2, decimal.NewFromInt(50), "1 Main St")
	require.NoError(t, err)
	return o
}

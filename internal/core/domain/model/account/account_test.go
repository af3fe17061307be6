package account_test

import (
	"testing"

	"brokerage/internal/core/domain/model/account"
	"brokerage/internal/core/domain/model/kernel"
	"brokerage/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAccount(t *testing.T) *account.Account {
	t.Helper()
	a, err := account.NewAccount(kernel.NewUUID(), "jane@example.com", "jane",
		"+12025550123", "Jane", "Doe", "$2a$10$fakehashfakehashfakehash")
	require.NoError(t, err)
	return a
}

func TestNewAccount(t *testing.T) {
	t.Run("should register with a generated client code", func(t *testing.T) {
		a := validAccount(t)

		assert.Regexp(t, `^[2-9A-HJ-NP-Z]{8}$`, a.ClientCode())
		assert.False(t, a.IsStaff())
		assert.False(t, a.EmailVerified())
		require.NoError(t, a.Validate())
	})

	t.Run("client codes differ between registrations", func(t *testing.T) {
		assert.NotEqual(t, validAccount(t).ClientCode(), validAccount(t).ClientCode())
	})

	t.Run("should reject invalid inputs", func(t *testing.T) {
		_, err := account.NewAccount(kernel.NewUUID(), "not-an-email", "jane",
			"", "", "", "hash")
		assert.Error(t, err, "malformed email")

		_, err = account.NewAccount(kernel.NewUUID(), "jane@example.com", "",
			"", "", "", "hash")
		assert.Error(t, err, "empty username")

		_, err = account.NewAccount(kernel.NewUUID(), "jane@example.com", "jane",
			"", "", "", "")
		assert.Error(t, err, "empty password hash")
	})
}

func TestAccount_DisplayName(t *testing.T) {
	a := validAccount(t)
	assert.Equal(t, "Jane Doe", a.DisplayName())

	require.NoError(t, a.UpdateProfile("", "", "", "", "", ""))
	assert.Equal(t, "jane", a.DisplayName())

	require.NoError(t, a.UpdateProfile("", "Jane", "", "", "", ""))
	assert.Equal(t, "Jane", a.DisplayName())
}

func TestAccount_MarkEmailVerified(t *testing.T) {
	a := validAccount(t)

	a.MarkEmailVerified()
	assert.True(t, a.EmailVerified())

	a.MarkEmailVerified()
	assert.True(t, a.EmailVerified())
}

func TestAccount_PromoteToStaff(t *testing.T) {
	a := validAccount(t)

	staff, err := kernel.NewActor(kernel.NewUUID(), "Admin", true)
	require.NoError(t, err)
	customer, err := kernel.NewActor(kernel.NewUUID(), "Customer", false)
	require.NoError(t, err)

	assert.ErrorIs(t, a.PromoteToStaff(customer), errs.ErrForbidden)
	assert.False(t, a.IsStaff())

	require.NoError(t, a.PromoteToStaff(staff))
	assert.True(t, a.IsStaff())
}

func TestAccount_RegenerateClientCode(t *testing.T) {
	a := validAccount(t)
	before := a.ClientCode()

	require.NoError(t, a.RegenerateClientCode())
	assert.NotEqual(t, before, a.ClientCode())
}

func TestAccount_Actor(t *testing.T) {
	a := validAccount(t)

	actor, err := a.Actor()
	require.NoError(t, err)
	assert.True(t, actor.ID().IsEqual(a.ID()))
	assert.Equal(t, "Jane Doe", actor.DisplayName())
	assert.False(t, actor.IsStaff())
}

func TestRestoreAccount(t *testing.T) {
	t.Run("should reject missing client code", func(t *testing.T) {
		_, err := account.RestoreAccount(account.RestoreAccountParams{
			ID:    kernel.NewUUID(),
			Email: "jane@example.com",
		})
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

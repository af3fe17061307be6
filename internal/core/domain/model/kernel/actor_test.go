package kernel_test

import (
	"testing"

	"brokerage/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActor(t *testing.T) {
	t.Run("should create actor", func(t *testing.T) {
		id := kernel.NewUUID()
		actor, err := kernel.NewActor(id, "Jane Doe", true)

		require.NoError(t, err)
		assert.True(t, actor.ID().IsEqual(id))
		assert.Equal(t, "Jane Doe", actor.DisplayName())
		assert.True(t, actor.IsStaff())
	})

	t.Run("should reject zero id", func(t *testing.T) {
		_, err := kernel.NewActor(kernel.UUID{}, "Jane Doe", false)
		assert.Error(t, err)
	})

	t.Run("should reject empty display name", func(t *testing.T) {
		_, err := kernel.NewActor(kernel.NewUUID(), "", false)
		assert.Error(t, err)
	})
}

func TestActor_CanActOn(t *testing.T) {
	ownerID := kernel.NewUUID()

	t.Run("owner can act on own entity", func(t *testing.T) {
		actor, err := kernel.NewActor(ownerID, "Owner", false)
		require.NoError(t, err)

		assert.True(t, actor.CanActOn(ownerID))
	})

	t.Run("non-owner cannot act on foreign entity", func(t *testing.T) {
		actor, err := kernel.NewActor(kernel.NewUUID(), "Stranger", false)
		require.NoError(t, err)

		assert.False(t, actor.CanActOn(ownerID))
	})

	t.Run("staff can act on any entity", func(t *testing.T) {
		actor, err := kernel.NewActor(kernel.NewUUID(), "Staff", true)
		require.NoError(t, err)

		assert.True(t, actor.CanActOn(ownerID))
	})
}

func TestActor_Validate(t *testing.T) {
	var actor kernel.Actor
	assert.Error(t, actor.Validate())
}

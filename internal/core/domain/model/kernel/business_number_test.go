package kernel_test

import (
	"regexp"
	"testing"
	"time"

	"brokerage/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBusinessNumber(t *testing.T) {
	t.Run("should generate number with prefix, date and 8 hex chars", func(t *testing.T) {
		number, err := kernel.NewBusinessNumber("ORD")

		require.NoError(t, err)
		require.NoError(t, number.Validate())

		pattern := regexp.MustCompile(`^ORD-\d{8}-[0-9A-F]{8}$`)
		assert.Regexp(t, pattern, number.String())
		assert.Contains(t, number.String(), time.Now().UTC().Format("20060102"))
	})

	t.Run("should generate distinct numbers", func(t *testing.T) {
		n1, err := kernel.NewBusinessNumber("DEC")
		require.NoError(t, err)
		n2, err := kernel.NewBusinessNumber("DEC")
		require.NoError(t, err)

		assert.False(t, n1.IsEqual(n2))
	})

	t.Run("should reject invalid prefixes", func(t *testing.T) {
		for _, prefix := range []string{"", "or", "ORDER", "or1", "ord"} {
			_, err := kernel.NewBusinessNumber(prefix)
			assert.Error(t, err, "expected error for prefix %q", prefix)
		}
	})
}

func TestNewSequencedBusinessNumber(t *testing.T) {
	t.Run("should embed the sequence value", func(t *testing.T) {
		number, err := kernel.NewSequencedBusinessNumber("TKT", 42)

		require.NoError(t, err)
		assert.Regexp(t, regexp.MustCompile(`^TKT-\d{8}-42$`), number.String())
	})

	t.Run("should reject non-positive sequences", func(t *testing.T) {
		_, err := kernel.NewSequencedBusinessNumber("TKT", 0)
		assert.Error(t, err)

		_, err = kernel.NewSequencedBusinessNumber("TKT", -5)
		assert.Error(t, err)
	})
}

func TestBusinessNumberFromString(t *testing.T) {
	t.Run("should restore persisted value", func(t *testing.T) {
		number, err := kernel.BusinessNumberFromString("ORD-20250115-9F2C41AB")

		require.NoError(t, err)
		assert.Equal(t, "ORD-20250115-9F2C41AB", number.String())
	})

	t.Run("should reject empty value", func(t *testing.T) {
		_, err := kernel.BusinessNumberFromString("")
		assert.Error(t, err)
	})
}

func TestBusinessNumber_Validate(t *testing.T) {
	var number kernel.BusinessNumber
	assert.Equal(t, kernel.ErrBusinessNumberIsNotConstructed, number.Validate())
}

package kernel_test

import (
	"testing"
	"time"

	"brokerage/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPassport(t *testing.T) {
	issue := time.Date(2020, 3, 12, 0, 0, 0, 0, time.UTC)
	expiry := time.Date(2030, 3, 12, 0, 0, 0, 0, time.UTC)

	t.Run("should create valid passport", func(t *testing.T) {
		passport, err := kernel.NewPassport("AB", "1234567", issue, expiry, "State Migration Service")

		require.NoError(t, err)
		assert.Equal(t, "AB", passport.Series())
		assert.Equal(t, "1234567", passport.Number())
		assert.Equal(t, "AB1234567", passport.FullNumber())
		assert.Equal(t, "State Migration Service", passport.IssuingAuthority())
		require.NoError(t, passport.Validate())
	})

	t.Run("should reject malformed series", func(t *testing.T) {
		for _, series := range []string{"", "A", "ABC", "ab", "1B"} {
			_, err := kernel.NewPassport(series, "1234567", issue, expiry, "authority")
			assert.Error(t, err, "expected error for series %q", series)
		}
	})

	t.Run("should reject malformed number", func(t *testing.T) {
		for _, number := range []string{"", "123456", "12345678", "123456a"} {
			_, err := kernel.NewPassport("AB", number, issue, expiry, "authority")
			assert.Error(t, err, "expected error for number %q", number)
		}
	})

	t.Run("should reject expiry before issue", func(t *testing.T) {
		_, err := kernel.NewPassport("AB", "1234567", expiry, issue, "authority")
		assert.Error(t, err)
	})

	t.Run("should reject missing issuing authority", func(t *testing.T) {
		_, err := kernel.NewPassport("AB", "1234567", issue, expiry, "")
		assert.Error(t, err)
	})
}

func TestPassport_Validate(t *testing.T) {
	var passport kernel.Passport
	assert.Error(t, passport.Validate())
}

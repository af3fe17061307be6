package auth_test

import (
	"testing"
	"time"

	"brokerage/internal/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuer_IssuePairAndValidate(t *testing.T) {
	issuer := auth.NewIssuer("test-secret", time.Hour, 24*time.Hour)

	pair, err := issuer.IssuePair("c0ffee00-0000-0000-0000-000000000001", "Jane Doe", true)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	claims, err := issuer.Validate(pair.AccessToken, auth.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "c0ffee00-0000-0000-0000-000000000001", claims.AccountID)
	assert.Equal(t, "Jane Doe", claims.DisplayName)
	assert.True(t, claims.Staff)
}

func TestIssuer_Validate_RejectsWrongKind(t *testing.T) {
	issuer := auth.NewIssuer("test-secret", time.Hour, 24*time.Hour)

	pair, err := issuer.IssuePair("c0ffee00-0000-0000-0000-000000000001", "Jane Doe", false)
	require.NoError(t, err)

	_, err = issuer.Validate(pair.RefreshToken, auth.AccessToken)
	require.Error(t, err)
}

func TestIssuer_Validate_RejectsForeignSecret(t *testing.T) {
	issuer := auth.NewIssuer("test-secret", time.Hour, 24*time.Hour)
	other := auth.NewIssuer("other-secret", time.Hour, 24*time.Hour)

	pair, err := issuer.IssuePair("c0ffee00-0000-0000-0000-000000000001", "Jane Doe", false)
	require.NoError(t, err)

	_, err = other.Validate(pair.AccessToken, auth.AccessToken)
	require.Error(t, err)
}

func TestIssuer_Validate_RejectsExpired(t *testing.T) {
	issuer := auth.NewIssuer("test-secret", -time.Minute, 24*time.Hour)

	pair, err := issuer.IssuePair("c0ffee00-0000-0000-0000-000000000001", "Jane Doe", false)
	require.NoError(t, err)

	_, err = issuer.Validate(pair.AccessToken, auth.AccessToken)
	require.Error(t, err)
}

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := auth.HashPassword("s3cret-password")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-password", hash)

	require.NoError(t, auth.ComparePassword(hash, "s3cret-password"))
	require.Error(t, auth.ComparePassword(hash, "wrong-password"))
}

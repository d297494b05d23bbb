package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestSignAndParse(t *testing.T) {
	signed, err := Sign(testSecret, "admin-123", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := Parse(testSecret, signed)
	require.NoError(t, err)
	require.Equal(t, "admin-123", claims.AdminID)
	require.True(t, claims.IsAdmin)
	require.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestParseExpiredToken(t *testing.T) {
	signed, err := Sign(testSecret, "admin-123", -time.Minute)
	require.NoError(t, err)

	_, err = Parse(testSecret, signed)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestParseWrongSecret(t *testing.T) {
	signed, err := Sign(testSecret, "admin-123", time.Hour)
	require.NoError(t, err)

	_, err = Parse("other-secret", signed)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestParseMalformedToken(t *testing.T) {
	for _, garbage := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := Parse(testSecret, garbage)
		require.ErrorIs(t, err, ErrInvalid, "input %q", garbage)
	}
}

func TestParseRejectsUnsignedToken(t *testing.T) {
	// alg=none must never verify, even with the right claims.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		AdminID: "admin-123",
		IsAdmin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = Parse(testSecret, signed)
	require.ErrorIs(t, err, ErrInvalid)
}

func TestParseRejectsMissingAdminID(t *testing.T) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		IsAdmin: true,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := tok.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = Parse(testSecret, signed)
	require.ErrorIs(t, err, ErrInvalid)
}

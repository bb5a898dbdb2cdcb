package jwtcodec

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/srec-coin/coin-backend/internal/domain/auth"
	apperrors "github.com/srec-coin/coin-backend/internal/errors"
)

var testSecret = []byte("test-secret-please-rotate")

func TestIssueAndVerify_RoundTrip(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	codec := NewWithClock(testSecret, func() time.Time { return issued })

	token, err := codec.Issue("admin-42", "admin@srec.ac.in", domainauth.RoleAdmin)
	require.NoError(t, err)

	claims, err := codec.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-42", claims.Subject)
	assert.Equal(t, "admin@srec.ac.in", claims.Email)
	assert.Equal(t, domainauth.RoleAdmin, claims.Role)
	assert.Equal(t, issued, claims.IssuedAt)
	assert.Equal(t, issued.Add(24*time.Hour), claims.ExpiresAt)
}

func TestVerify_WrongSecret(t *testing.T) {
	token, err := New(testSecret).Issue("s-1", "student@srec.ac.in", domainauth.RoleStudent)
	require.NoError(t, err)

	_, err = New([]byte("different-secret")).Verify(token)
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func TestVerify_CorruptedToken(t *testing.T) {
	codec := New(testSecret)
	token, err := codec.Issue("s-1", "student@srec.ac.in", domainauth.RoleStudent)
	require.NoError(t, err)

	for name, corrupted := range map[string]string{
		"truncated":   token[:len(token)/2],
		"garbage":     "not.a.jwt",
		"empty":       "",
		"tampered":    token[:len(token)-4] + "AAAA",
		"wrong parts": token + ".extra",
	} {
		t.Run(name, func(t *testing.T) {
			_, verifyErr := codec.Verify(corrupted)
			require.Error(t, verifyErr)
			assert.True(t, apperrors.IsUnauthorized(verifyErr))
		})
	}
}

func TestVerify_Expired(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	issuer := NewWithClock(testSecret, func() time.Time { return issued })

	token, err := issuer.Issue("s-1", "student@srec.ac.in", domainauth.RoleStudent)
	require.NoError(t, err)

	// One second past issued_at + 24h.
	verifier := NewWithClock(testSecret, func() time.Time {
		return issued.Add(24*time.Hour + time.Second)
	})
	_, err = verifier.Verify(token)
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
	assert.True(t, IsExpired(err))

	// Just inside the window it still verifies.
	verifier = NewWithClock(testSecret, func() time.Time {
		return issued.Add(24*time.Hour - time.Second)
	})
	_, err = verifier.Verify(token)
	assert.NoError(t, err)
}

func TestVerify_RejectsOtherSigningMethods(t *testing.T) {
	// Only HS256 is acceptable: an unsigned "none" token and an HS512 token
	// signed with the very same secret must both fail verification.
	codec := New(testSecret)
	claims := jwt.MapClaims{
		"sub":   "s-1",
		"email": "student@srec.ac.in",
		"role":  "student",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	}

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).
		SignedString(testSecret)
	require.NoError(t, err)

	for name, token := range map[string]string{"none": unsigned, "HS512": hs512} {
		t.Run(name, func(t *testing.T) {
			_, verifyErr := codec.Verify(token)
			require.Error(t, verifyErr)
			assert.True(t, apperrors.IsUnauthorized(verifyErr))
		})
	}
}

func TestIssue_InvalidRole(t *testing.T) {
	_, err := New(testSecret).Issue("x", "x@srec.ac.in", domainauth.Role("superuser"))
	require.Error(t, err)
}

func TestVerify_NoExpiryClaim(t *testing.T) {
	// A structurally valid HS256 token without exp must be rejected: expiry
	// is mandatory, not optional.
	codec := New(testSecret)
	raw := tokenWithoutExpiry(t)
	_, err := codec.Verify(raw)
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
}

func tokenWithoutExpiry(t *testing.T) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "x",
		"role": "admin",
	})
	signed, err := tok.SignedString(testSecret)
	require.NoError(t, err)
	return signed
}

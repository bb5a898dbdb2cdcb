package jwtcodec

// Package jwtcodec issues and verifies the portal's stateless bearer tokens
// as HMAC-SHA256 signed JWTs. Tokens are self-contained: there is no
// server-side session or revocation state, so a token stays valid until its
// fixed 24-hour expiry.

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainauth "github.com/srec-coin/coin-backend/internal/domain/auth"
	apperrors "github.com/srec-coin/coin-backend/internal/errors"
)

// tokenTTL is the fixed token lifetime. A design constant, not
// per-call configurable.
const tokenTTL = 24 * time.Hour

// tokenClaims is the wire shape of the signed payload.
type tokenClaims struct {
	jwt.RegisteredClaims
	Email string          `json:"email"`
	Role  domainauth.Role `json:"role"`
}

// Codec signs and verifies tokens with a process-wide symmetric secret. The
// secret is read once at construction and never mutated, so a single Codec
// is safe for concurrent use across all request goroutines.
type Codec struct {
	secret []byte
	now    func() time.Time
}

// New creates a Codec signing with the given secret.
func New(secret []byte) *Codec {
	return &Codec{secret: secret, now: time.Now}
}

// NewWithClock creates a Codec with an injectable clock. Test-only.
func NewWithClock(secret []byte, now func() time.Time) *Codec {
	return &Codec{secret: secret, now: now}
}

// Issue encodes subject, email, and role into a signed token expiring
// tokenTTL after issuance.
func (c *Codec) Issue(subject, email string, role domainauth.Role) (string, error) {
	if !role.Valid() {
		return "", apperrors.Internal("cannot issue token for invalid role")
	}

	issuedAt := c.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(tokenTTL)),
		},
		Email: email,
		Role:  role,
	})

	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "sign token")
	}
	return signed, nil
}

// Verify checks the token's signature and expiry against the codec's secret
// and returns the decoded claims unmodified. Any failure — bad signature,
// malformed token, unexpected algorithm, expired — is an Unauthorized error.
func (c *Codec) Verify(token string) (domainauth.Claims, error) {
	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims,
		func(t *jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return domainauth.Claims{}, apperrors.Wrap(err, apperrors.ErrCodeUnauthorized, "invalid token")
	}
	if !parsed.Valid {
		return domainauth.Claims{}, apperrors.Unauthorized("invalid token")
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		return domainauth.Claims{}, apperrors.Unauthorized("invalid token")
	}
	if !claims.Role.Valid() {
		// Role decoding is also enforced by Role.UnmarshalText during
		// parsing; this guards an absent claim.
		return domainauth.Claims{}, apperrors.Unauthorized("invalid token")
	}

	return domainauth.Claims{
		Subject:   claims.Subject,
		Email:     claims.Email,
		Role:      claims.Role,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// IsExpired reports whether verification failed specifically because the
// token's lifetime ended.
func IsExpired(err error) bool {
	return errors.Is(err, jwt.ErrTokenExpired)
}

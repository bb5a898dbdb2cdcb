package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srec-coin/coin-backend/config"
	mockauth "github.com/srec-coin/coin-backend/internal/mocks/auth"
)

func bootstrapDeps() *ServiceDeps {
	return &ServiceDeps{
		Config: &config.AppConfig{
			Auth: config.AuthConfig{
				JWTSecret:              "unit-test-signing-secret",
				BootstrapAdminEmail:    "admin@srec.ac.in",
				BootstrapAdminPassword: "changeme",
				BootstrapAdminName:     "Initial Admin",
			},
		},
	}
}

func TestEnsureBootstrapAdmin_CreatesWhenMissing(t *testing.T) {
	deps := bootstrapDeps()
	admins := mockauth.NewMemoryAdminStore()
	hasher := &mockauth.MockPasswordHasher{}

	require.NoError(t, EnsureBootstrapAdmin(context.Background(), deps, admins, hasher))

	admin, err := admins.FindByEmail(context.Background(), "admin@srec.ac.in")
	require.NoError(t, err)
	assert.Equal(t, "Initial Admin", admin.Name)
	// The stored credential is a digest, never the raw password.
	assert.NotEqual(t, "changeme", admin.PasswordHash)

	ok, err := hasher.Verify("changeme", admin.PasswordHash)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestEnsureBootstrapAdmin_IdempotentWhenPresent(t *testing.T) {
	deps := bootstrapDeps()
	admins := mockauth.NewMemoryAdminStore()
	hasher := &mockauth.MockPasswordHasher{}

	existing, err := admins.Create(context.Background(), "Existing", "admin@srec.ac.in", "hashed:original")
	require.NoError(t, err)

	require.NoError(t, EnsureBootstrapAdmin(context.Background(), deps, admins, hasher))

	// The existing account is left untouched.
	admin, err := admins.FindByEmail(context.Background(), "admin@srec.ac.in")
	require.NoError(t, err)
	assert.Equal(t, existing.ID, admin.ID)
	assert.Equal(t, "hashed:original", admin.PasswordHash)
}

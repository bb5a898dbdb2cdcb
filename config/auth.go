package config

import "errors"

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// JWTSecret signs and verifies bearer tokens. It must be identical
	// across all instances of a horizontally scaled deployment, since token
	// verification is stateless.
	JWTSecret string `env:"JWT_SECRET,required"`

	// Bootstrap admin credentials. On startup, an admin row is created with
	// these credentials if none exists for the email.
	BootstrapAdminEmail    string `env:"ADMIN_BOOTSTRAP_EMAIL"    envDefault:"admin@srec.ac.in"`
	BootstrapAdminPassword string `env:"ADMIN_BOOTSTRAP_PASSWORD" envDefault:"changeme"`
	BootstrapAdminName     string `env:"ADMIN_BOOTSTRAP_NAME"     envDefault:"Initial Admin"`
}

// Validate checks invariants env tags cannot express.
func (a *AuthConfig) Validate() error {
	if len(a.JWTSecret) < 16 {
		return errors.New("JWT_SECRET must be at least 16 bytes")
	}
	return nil
}

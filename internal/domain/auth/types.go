package auth

// Package auth contains domain-level types for authentication and verified
// identity. It is pure and free of framework/adapter concerns.

import (
	"fmt"
	"strings"
	"time"
)

// Role represents an application's authorization role.
// Kept as a string type for easy persistence and token claims.
// Valid values are defined as constants below.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStudent
}

// Label returns the capitalized display form used in authorization errors
// ("Admin", "Student").
func (r Role) Label() string {
	if r == "" {
		return ""
	}
	s := string(r)
	return strings.ToUpper(s[:1]) + s[1:]
}

// UnmarshalText implements encoding.TextUnmarshaler so role values arriving
// from tokens or configuration are validated at the boundary.
func (r *Role) UnmarshalText(text []byte) error {
	v := Role(strings.ToLower(string(text)))
	if !v.Valid() {
		return fmt.Errorf("invalid role: %q", string(text))
	}
	*r = v
	return nil
}

// Claims is the decoded, signature-checked payload of a bearer token. The
// request gate attaches it to the request context for the duration of a
// single request; it is never persisted.
type Claims struct {
	Subject   string    `json:"sub"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
}

// Identity is an authenticable principal as read from the credential tables.
// Repositories map admin/student rows into this shape for the auth service.
type Identity struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
}

package ports

// Package ports defines interfaces (hexagonal ports) for auth-related
// behavior. Implementations live in internal/adapters and internal/data;
// orchestration in internal/service.

import (
	"context"

	domainauth "github.com/srec-coin/coin-backend/internal/domain/auth"
	"github.com/srec-coin/coin-backend/internal/domain/model"
)

// PasswordHasher produces and verifies salted one-way password digests.
type PasswordHasher interface {
	// Hash derives a digest from password with a fresh random salt. Two
	// calls with the same password yield different digests.
	Hash(password string) (string, error)

	// Verify reports whether password matches digest. A mismatch returns
	// (false, nil); a structurally invalid digest returns an error so
	// corrupt stored data is distinguishable from a wrong password.
	Verify(password, digest string) (bool, error)
}

// TokenCodec issues and verifies stateless signed bearer tokens.
type TokenCodec interface {
	// Issue encodes subject, email, and role into a signed token with a
	// fixed 24-hour expiry.
	Issue(subject, email string, role domainauth.Role) (string, error)

	// Verify checks the token's signature and expiry and returns the
	// decoded claims unmodified. No renewal, no sliding expiry.
	Verify(token string) (domainauth.Claims, error)
}

// AdminStore persists and retrieves administrator credentials.
type AdminStore interface {
	FindByEmail(ctx context.Context, email string) (*model.Admin, error)
	Create(ctx context.Context, name, email, passwordHash string) (*model.Admin, error)
}

// StudentStore persists and retrieves student accounts.
type StudentStore interface {
	FindByEmail(ctx context.Context, email string) (*model.Student, error)
	FindByID(ctx context.Context, id string) (*model.Student, error)
	Create(ctx context.Context, req *model.RegisterStudentRequest, passwordHash string) (*model.Student, error)
	Update(ctx context.Context, id string, req *model.UpdateStudentRequest) (*model.Student, error)
}

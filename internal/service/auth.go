package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/srec-coin/coin-backend/internal/data"
	domainauth "github.com/srec-coin/coin-backend/internal/domain/auth"
	"github.com/srec-coin/coin-backend/internal/domain/model"
	apperrors "github.com/srec-coin/coin-backend/internal/errors"
	"github.com/srec-coin/coin-backend/internal/ports"
)

// invalidCredentials is the single message returned for every credential
// failure. Unknown email and wrong password are indistinguishable to callers.
const invalidCredentials = "Invalid credentials"

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Admins   ports.AdminStore
	Students ports.StudentStore
	Hasher   ports.PasswordHasher
	Tokens   ports.TokenCodec
	Logger   *slog.Logger
}

// AuthService orchestrates login, registration, and profile flows for both
// principal kinds.
type AuthService struct {
	admins   ports.AdminStore
	students ports.StudentStore
	hasher   ports.PasswordHasher
	tokens   ports.TokenCodec
	logger   *slog.Logger
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		admins:   opts.Admins,
		students: opts.Students,
		hasher:   opts.Hasher,
		tokens:   opts.Tokens,
		logger:   logger,
	}
}

// LoginAdmin verifies admin credentials and issues a bearer token.
func (s *AuthService) LoginAdmin(ctx context.Context, req *model.LoginRequest) (*model.AdminLoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.BadRequest(err.Error())
	}

	admin, err := s.admins.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, data.ErrAdminNotFound) {
			return nil, apperrors.Unauthorized(invalidCredentials)
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "admin lookup failed")
	}

	if err := s.verifyPassword(req.Password, admin.PasswordHash); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(admin.ID, admin.Email, domainauth.RoleAdmin)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "token issue failed")
	}

	s.logger.Info("admin login", "admin_id", admin.ID)
	return &model.AdminLoginResponse{Token: token, Admin: admin.Public()}, nil
}

// LoginStudent verifies student credentials and issues a bearer token.
func (s *AuthService) LoginStudent(ctx context.Context, req *model.LoginRequest) (*model.StudentLoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.BadRequest(err.Error())
	}

	student, err := s.students.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, data.ErrStudentNotFound) {
			return nil, apperrors.Unauthorized(invalidCredentials)
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "student lookup failed")
	}

	if err := s.verifyPassword(req.Password, student.PasswordHash); err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(student.ID, student.Email, domainauth.RoleStudent)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "token issue failed")
	}

	s.logger.Info("student login", "student_id", student.ID)
	return &model.StudentLoginResponse{Token: token, Student: student.Public()}, nil
}

// RegisterStudent creates a student account and logs it in immediately,
// returning the same contract as LoginStudent.
func (s *AuthService) RegisterStudent(ctx context.Context, req *model.RegisterStudentRequest) (*model.StudentLoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.BadRequest(err.Error())
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperrors.Hashing(err, "failed to process password")
	}

	student, err := s.students.Create(ctx, req, hash)
	if err != nil {
		if errors.Is(err, data.ErrEmailTaken) {
			return nil, apperrors.Conflict("Email already registered")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "student create failed")
	}

	token, err := s.tokens.Issue(student.ID, student.Email, domainauth.RoleStudent)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "token issue failed")
	}

	s.logger.Info("student registered", "student_id", student.ID)
	return &model.StudentLoginResponse{Token: token, Student: student.Public()}, nil
}

// StudentProfile returns the public profile of the student identified by the
// token subject.
func (s *AuthService) StudentProfile(ctx context.Context, id string) (*model.StudentPublic, error) {
	student, err := s.students.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrStudentNotFound) {
			return nil, apperrors.NotFound("Student not found")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "student lookup failed")
	}
	pub := student.Public()
	return &pub, nil
}

// UpdateStudentProfile applies a partial profile update for the token subject.
func (s *AuthService) UpdateStudentProfile(ctx context.Context, id string, req *model.UpdateStudentRequest) (*model.StudentPublic, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.BadRequest(err.Error())
	}

	student, err := s.students.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, data.ErrStudentNotFound) {
			return nil, apperrors.NotFound("Student not found")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "student update failed")
	}
	pub := student.Public()
	return &pub, nil
}

// VerifyToken decodes and validates a bearer token for the request gate.
func (s *AuthService) VerifyToken(token string) (domainauth.Claims, error) {
	return s.tokens.Verify(token)
}

// verifyPassword checks the password against the stored digest, folding both
// a mismatch and an unverifiable digest into the uniform credential error. A
// corrupt digest is logged server-side before being masked.
func (s *AuthService) verifyPassword(password, digest string) error {
	ok, err := s.hasher.Verify(password, digest)
	if err != nil {
		s.logger.Error("stored password digest is unverifiable", "error", err)
		return apperrors.Unauthorized(invalidCredentials)
	}
	if !ok {
		return apperrors.Unauthorized(invalidCredentials)
	}
	return nil
}

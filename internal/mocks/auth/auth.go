package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/srec-coin/coin-backend/internal/data"
	domainauth "github.com/srec-coin/coin-backend/internal/domain/auth"
	"github.com/srec-coin/coin-backend/internal/domain/model"
	"github.com/srec-coin/coin-backend/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.PasswordHasher = (*MockPasswordHasher)(nil)
	_ ports.TokenCodec     = (*MockTokenCodec)(nil)
	_ ports.AdminStore     = (*MemoryAdminStore)(nil)
	_ ports.StudentStore   = (*MemoryStudentStore)(nil)
)

// MockPasswordHasher is a reversible stand-in for the real hasher. Digests
// are "hashed:" + password so tests can assert flows without argon2 cost.
type MockPasswordHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, digest string) (bool, error)
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *MockPasswordHasher) Verify(password, digest string) (bool, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(password, digest)
	}
	return digest == "hashed:"+password, nil
}

// MockTokenCodec issues transparent tokens of the form
// "token|subject|email|role" so tests can inspect what was encoded.
type MockTokenCodec struct {
	IssueFunc  func(subject, email string, role domainauth.Role) (string, error)
	VerifyFunc func(token string) (domainauth.Claims, error)
}

func (m *MockTokenCodec) Issue(subject, email string, role domainauth.Role) (string, error) {
	if m.IssueFunc != nil {
		return m.IssueFunc(subject, email, role)
	}
	return fmt.Sprintf("token|%s|%s|%s", subject, email, role), nil
}

func (m *MockTokenCodec) Verify(token string) (domainauth.Claims, error) {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(token)
	}
	parts := strings.Split(token, "|")
	if len(parts) != 4 || parts[0] != "token" {
		return domainauth.Claims{}, fmt.Errorf("malformed mock token: %q", token)
	}
	now := time.Now()
	return domainauth.Claims{
		Subject:   parts[1],
		Email:     parts[2],
		Role:      domainauth.Role(parts[3]),
		IssuedAt:  now,
		ExpiresAt: now.Add(24 * time.Hour),
	}, nil
}

// MemoryAdminStore is an in-memory AdminStore keyed by email.
type MemoryAdminStore struct {
	mu     sync.Mutex
	nextID int
	admins map[string]*model.Admin
}

// NewMemoryAdminStore creates an empty in-memory admin store.
func NewMemoryAdminStore() *MemoryAdminStore {
	return &MemoryAdminStore{admins: make(map[string]*model.Admin)}
}

func (s *MemoryAdminStore) FindByEmail(_ context.Context, email string) (*model.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	admin, ok := s.admins[email]
	if !ok {
		return nil, data.ErrAdminNotFound
	}
	copied := *admin
	return &copied, nil
}

func (s *MemoryAdminStore) Create(_ context.Context, name, email, passwordHash string) (*model.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.admins[email]; exists {
		return nil, data.ErrEmailTaken
	}
	s.nextID++
	admin := &model.Admin{
		ID:           fmt.Sprintf("admin-%d", s.nextID),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	s.admins[email] = admin
	copied := *admin
	return &copied, nil
}

// MemoryStudentStore is an in-memory StudentStore keyed by email and ID.
type MemoryStudentStore struct {
	mu      sync.Mutex
	nextID  int
	byEmail map[string]*model.Student
	byID    map[string]*model.Student
}

// NewMemoryStudentStore creates an empty in-memory student store.
func NewMemoryStudentStore() *MemoryStudentStore {
	return &MemoryStudentStore{
		byEmail: make(map[string]*model.Student),
		byID:    make(map[string]*model.Student),
	}
}

// copyStudent returns a defensive copy, including the skills slice.
func copyStudent(student *model.Student) *model.Student {
	copied := *student
	copied.Skills = append([]string(nil), student.Skills...)
	return &copied
}

func (s *MemoryStudentStore) FindByEmail(_ context.Context, email string) (*model.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	student, ok := s.byEmail[email]
	if !ok {
		return nil, data.ErrStudentNotFound
	}
	return copyStudent(student), nil
}

func (s *MemoryStudentStore) FindByID(_ context.Context, id string) (*model.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	student, ok := s.byID[id]
	if !ok {
		return nil, data.ErrStudentNotFound
	}
	return copyStudent(student), nil
}

func (s *MemoryStudentStore) Create(_ context.Context, req *model.RegisterStudentRequest, passwordHash string) (*model.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byEmail[req.Email]; exists {
		return nil, data.ErrEmailTaken
	}
	s.nextID++
	student := &model.Student{
		ID:           fmt.Sprintf("student-%d", s.nextID),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: passwordHash,
		Year:         req.Year,
		Branch:       req.Branch,
		Skills:       []string{},
		CreatedAt:    time.Now(),
	}
	s.byEmail[req.Email] = student
	s.byID[student.ID] = student
	return copyStudent(student), nil
}

func (s *MemoryStudentStore) Update(_ context.Context, id string, req *model.UpdateStudentRequest) (*model.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	student, ok := s.byID[id]
	if !ok {
		return nil, data.ErrStudentNotFound
	}
	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.Year != nil {
		student.Year = *req.Year
	}
	if req.Branch != nil {
		student.Branch = *req.Branch
	}
	if req.Bio != nil {
		student.Bio = req.Bio
	}
	if req.Skills != nil {
		student.Skills = append([]string(nil), (*req.Skills)...)
	}
	now := time.Now()
	student.UpdatedAt = &now
	return copyStudent(student), nil
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srec-coin/coin-backend/internal/domain/model"
	apperrors "github.com/srec-coin/coin-backend/internal/errors"
	mockauth "github.com/srec-coin/coin-backend/internal/mocks/auth"
)

func newTestAuthService(t *testing.T) (*AuthService, *mockauth.MemoryAdminStore, *mockauth.MemoryStudentStore) {
	t.Helper()
	admins := mockauth.NewMemoryAdminStore()
	students := mockauth.NewMemoryStudentStore()
	svc := NewAuthService(AuthServiceOptions{
		Admins:   admins,
		Students: students,
		Hasher:   &mockauth.MockPasswordHasher{},
		Tokens:   &mockauth.MockTokenCodec{},
	})
	return svc, admins, students
}

func TestLoginAdmin_Success(t *testing.T) {
	svc, admins, _ := newTestAuthService(t)
	_, err := admins.Create(context.Background(), "Initial Admin", "admin@srec.ac.in", "hashed:changeme")
	require.NoError(t, err)

	resp, err := svc.LoginAdmin(context.Background(), &model.LoginRequest{
		Email:    "admin@srec.ac.in",
		Password: "changeme",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin@srec.ac.in", resp.Admin.Email)
	assert.Equal(t, "Initial Admin", resp.Admin.Name)
}

func TestLoginAdmin_UnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	svc, admins, _ := newTestAuthService(t)
	_, err := admins.Create(context.Background(), "Admin", "admin@srec.ac.in", "hashed:correct")
	require.NoError(t, err)

	_, errUnknown := svc.LoginAdmin(context.Background(), &model.LoginRequest{
		Email:    "nobody@srec.ac.in",
		Password: "whatever",
	})
	_, errWrong := svc.LoginAdmin(context.Background(), &model.LoginRequest{
		Email:    "admin@srec.ac.in",
		Password: "incorrect",
	})

	require.Error(t, errUnknown)
	require.Error(t, errWrong)
	assert.True(t, apperrors.IsUnauthorized(errUnknown))
	assert.True(t, apperrors.IsUnauthorized(errWrong))
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
	assert.Equal(t, "Invalid credentials", errWrong.Error())
}

func TestLoginAdmin_CorruptDigestIsMasked(t *testing.T) {
	svc, admins, _ := newTestAuthService(t)
	_, err := admins.Create(context.Background(), "Admin", "admin@srec.ac.in", "hashed:pw")
	require.NoError(t, err)

	svc.hasher = &mockauth.MockPasswordHasher{
		VerifyFunc: func(_, _ string) (bool, error) {
			return false, errors.New("malformed digest")
		},
	}

	_, loginErr := svc.LoginAdmin(context.Background(), &model.LoginRequest{
		Email:    "admin@srec.ac.in",
		Password: "pw",
	})
	require.Error(t, loginErr)
	assert.True(t, apperrors.IsUnauthorized(loginErr))
	assert.Equal(t, "Invalid credentials", loginErr.Error())
}

func TestLoginAdmin_MissingFields(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.LoginAdmin(context.Background(), &model.LoginRequest{Email: "", Password: "pw"})
	assert.True(t, apperrors.IsBadRequest(err))

	_, err = svc.LoginAdmin(context.Background(), &model.LoginRequest{Email: "a@srec.ac.in", Password: ""})
	assert.True(t, apperrors.IsBadRequest(err))
}

func TestRegisterStudent_Success(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	resp, err := svc.RegisterStudent(context.Background(), &model.RegisterStudentRequest{
		Name:     "Priya",
		Email:    "priya@srec.ac.in",
		Password: "supersecret",
		Year:     2,
		Branch:   "CSE",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "priya@srec.ac.in", resp.Student.Email)
	assert.Equal(t, 2, resp.Student.Year)

	// New account logs in with the same credentials.
	login, err := svc.LoginStudent(context.Background(), &model.LoginRequest{
		Email:    "priya@srec.ac.in",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, resp.Student.ID, login.Student.ID)
}

func TestRegisterStudent_DuplicateEmail(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	req := &model.RegisterStudentRequest{
		Name:     "Priya",
		Email:    "priya@srec.ac.in",
		Password: "supersecret",
		Year:     2,
		Branch:   "CSE",
	}

	_, err := svc.RegisterStudent(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.RegisterStudent(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
	assert.Equal(t, "Email already registered", err.Error())
}

func TestRegisterStudent_Validation(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	tests := []struct {
		name string
		req  model.RegisterStudentRequest
	}{
		{"non-college email", model.RegisterStudentRequest{
			Name: "X", Email: "x@gmail.com", Password: "supersecret", Year: 1, Branch: "IT"}},
		{"short password", model.RegisterStudentRequest{
			Name: "X", Email: "x@srec.ac.in", Password: "short", Year: 1, Branch: "IT"}},
		{"year out of range", model.RegisterStudentRequest{
			Name: "X", Email: "x@srec.ac.in", Password: "supersecret", Year: 5, Branch: "IT"}},
		{"missing branch", model.RegisterStudentRequest{
			Name: "X", Email: "x@srec.ac.in", Password: "supersecret", Year: 1, Branch: ""}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.RegisterStudent(context.Background(), &tc.req)
			assert.True(t, apperrors.IsBadRequest(err), "expected bad request, got %v", err)
		})
	}
}

func TestStudentProfile_RoundTrip(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	reg, err := svc.RegisterStudent(context.Background(), &model.RegisterStudentRequest{
		Name:     "Arun",
		Email:    "arun@srec.ac.in",
		Password: "supersecret",
		Year:     3,
		Branch:   "ECE",
	})
	require.NoError(t, err)

	profile, err := svc.StudentProfile(context.Background(), reg.Student.ID)
	require.NoError(t, err)
	assert.Equal(t, "Arun", profile.Name)

	newName := "Arun K"
	bio := "Builds robots"
	updated, err := svc.UpdateStudentProfile(context.Background(), reg.Student.ID, &model.UpdateStudentRequest{
		Name: &newName,
		Bio:  &bio,
	})
	require.NoError(t, err)
	assert.Equal(t, "Arun K", updated.Name)
	require.NotNil(t, updated.Bio)
	assert.Equal(t, "Builds robots", *updated.Bio)
	// Untouched fields survive a partial update.
	assert.Equal(t, 3, updated.Year)
	assert.Equal(t, "ECE", updated.Branch)
}

func TestStudentProfile_Skills(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	reg, err := svc.RegisterStudent(context.Background(), &model.RegisterStudentRequest{
		Name:     "Meena",
		Email:    "meena@srec.ac.in",
		Password: "supersecret",
		Year:     2,
		Branch:   "CSE",
	})
	require.NoError(t, err)
	// Fresh accounts start with an empty skill set, never null.
	assert.Equal(t, []string{}, reg.Student.Skills)

	skills := []string{"go", "rust"}
	updated, err := svc.UpdateStudentProfile(context.Background(), reg.Student.ID, &model.UpdateStudentRequest{
		Skills: &skills,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "rust"}, updated.Skills)

	// An update that omits skills leaves the stored set alone.
	bio := "Systems tinkerer"
	updated, err = svc.UpdateStudentProfile(context.Background(), reg.Student.ID, &model.UpdateStudentRequest{
		Bio: &bio,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "rust"}, updated.Skills)

	// Login surfaces the stored skills.
	login, err := svc.LoginStudent(context.Background(), &model.LoginRequest{
		Email:    "meena@srec.ac.in",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "rust"}, login.Student.Skills)

	// A provided list replaces the set wholesale, including clearing it.
	empty := []string{}
	updated, err = svc.UpdateStudentProfile(context.Background(), reg.Student.ID, &model.UpdateStudentRequest{
		Skills: &empty,
	})
	require.NoError(t, err)
	assert.Empty(t, updated.Skills)

	// Blank entries are rejected.
	blank := []string{"go", " "}
	_, err = svc.UpdateStudentProfile(context.Background(), reg.Student.ID, &model.UpdateStudentRequest{
		Skills: &blank,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsBadRequest(err))
}

func TestStudentProfile_NotFound(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.StudentProfile(context.Background(), "missing-id")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

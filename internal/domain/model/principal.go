//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

const (
	maxNameLen = 120
	minYear    = 1
	maxYear    = 4
)

// collegeEmailPattern matches institutional addresses; registration is
// restricted to them.
var collegeEmailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@srec\.ac\.in$`)

// ValidateCollegeEmail reports an error unless email is an institutional
// @srec.ac.in address.
func ValidateCollegeEmail(email string) error {
	if !collegeEmailPattern.MatchString(strings.TrimSpace(email)) {
		return errors.New("only @srec.ac.in email addresses are allowed")
	}
	return nil
}

// Admin is a portal administrator row. PasswordHash is never serialized.
type Admin struct {
	ID           string    `json:"id"         db:"id"`
	Name         string    `json:"name"       db:"name"`
	Email        string    `json:"email"      db:"email"`
	PasswordHash string    `json:"-"          db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Student is a registered student row. PasswordHash is never serialized.
// Skills live in the student_skills join table and are loaded alongside the
// row, so they carry no db tag of their own.
type Student struct {
	ID           string     `json:"id"             db:"id"`
	Name         string     `json:"name"           db:"name"`
	Email        string     `json:"email"          db:"email"`
	PasswordHash string     `json:"-"              db:"password_hash"`
	Year         int        `json:"year"           db:"year"`
	Branch       string     `json:"branch"         db:"branch"`
	Bio          *string    `json:"bio,omitempty"  db:"bio"`
	Skills       []string   `json:"skills"         db:"-"`
	CreatedAt    time.Time  `json:"created_at"     db:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}

// AdminPublic is the admin shape returned by the login contract.
type AdminPublic struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public returns the serializable view of an admin.
func (a *Admin) Public() AdminPublic {
	return AdminPublic{ID: a.ID, Name: a.Name, Email: a.Email}
}

// StudentPublic is the student shape returned by login/register/profile.
type StudentPublic struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Year   int      `json:"year"`
	Branch string   `json:"branch"`
	Bio    *string  `json:"bio,omitempty"`
	Skills []string `json:"skills"`
}

// Public returns the serializable view of a student. Skills always serialize
// as an array, never null.
func (s *Student) Public() StudentPublic {
	skills := s.Skills
	if skills == nil {
		skills = []string{}
	}
	return StudentPublic{
		ID:     s.ID,
		Name:   s.Name,
		Email:  s.Email,
		Year:   s.Year,
		Branch: s.Branch,
		Bio:    s.Bio,
		Skills: skills,
	}
}

// LoginRequest carries credentials for admin and student login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate validates LoginRequest.
func (r *LoginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("email is required")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

// RegisterStudentRequest carries parameters for student registration.
type RegisterStudentRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Year     int    `json:"year"`
	Branch   string `json:"branch"`
}

// Validate validates RegisterStudentRequest.
func (r *RegisterStudentRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("name is required")
	}
	if len(r.Name) > maxNameLen {
		return errors.New("name is too long")
	}
	if err := ValidateCollegeEmail(r.Email); err != nil {
		return err
	}
	if len(r.Password) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	if r.Year < minYear || r.Year > maxYear {
		return errors.New("academic year must be between 1 and 4")
	}
	if strings.TrimSpace(r.Branch) == "" {
		return errors.New("branch is required")
	}
	return nil
}

// UpdateStudentRequest carries optional profile updates. A non-nil Skills
// replaces the stored skill set wholesale; nil leaves it untouched.
type UpdateStudentRequest struct {
	Name   *string   `json:"name,omitempty"`
	Year   *int      `json:"year,omitempty"`
	Branch *string   `json:"branch,omitempty"`
	Bio    *string   `json:"bio,omitempty"`
	Skills *[]string `json:"skills,omitempty"`
}

// Validate validates UpdateStudentRequest.
func (r *UpdateStudentRequest) Validate() error {
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return errors.New("name cannot be empty")
	}
	if r.Year != nil && (*r.Year < minYear || *r.Year > maxYear) {
		return errors.New("academic year must be between 1 and 4")
	}
	if r.Branch != nil && strings.TrimSpace(*r.Branch) == "" {
		return errors.New("branch cannot be empty")
	}
	if r.Skills != nil {
		for _, skill := range *r.Skills {
			if strings.TrimSpace(skill) == "" {
				return errors.New("skills cannot contain blank entries")
			}
		}
	}
	return nil
}

// AdminLoginResponse is the admin login contract: the signed token plus
// public principal info. The client echoes the token verbatim in
// Authorization headers.
type AdminLoginResponse struct {
	Token string      `json:"token"`
	Admin AdminPublic `json:"admin"`
}

// StudentLoginResponse is the student login/register contract.
type StudentLoginResponse struct {
	Token   string        `json:"token"`
	Student StudentPublic `json:"student"`
}

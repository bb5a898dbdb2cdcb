package data

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Shared sentinel errors for data-layer repositories.
var (
	ErrAdminNotFound      = errors.New("admin not found")
	ErrStudentNotFound    = errors.New("student not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrHackathonNotFound  = errors.New("hackathon not found")
	ErrHackathonClosed    = errors.New("hackathon registration is closed")
	ErrBlogPostNotFound   = errors.New("blog post not found")
	ErrSlugTaken          = errors.New("blog slug already exists")
	ErrSubmissionNotFound = errors.New("submission not found")
)

// isUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// isForeignKeyViolation reports whether err is a PostgreSQL foreign-key
// violation.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}

package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/srec-coin/coin-backend/internal/data/pgxutil"
	"github.com/srec-coin/coin-backend/internal/domain/model"
)

// StudentRepo provides database operations for student accounts.
type StudentRepo struct {
	DB *sql.DB
}

// NewStudentRepo creates a new StudentRepo.
func NewStudentRepo(db *sql.DB) *StudentRepo {
	return &StudentRepo{DB: db}
}

const studentColumns = `id, name, email, password_hash, year, branch, bio, created_at, updated_at`

// FindByEmail retrieves a student by email. Returns ErrStudentNotFound when
// no row matches.
func (r *StudentRepo) FindByEmail(ctx context.Context, email string) (*model.Student, error) {
	return r.getByQuery(ctx,
		`SELECT `+studentColumns+` FROM students WHERE email = $1`, email)
}

// FindByID retrieves a student by ID.
func (r *StudentRepo) FindByID(ctx context.Context, id string) (*model.Student, error) {
	return r.getByQuery(ctx,
		`SELECT `+studentColumns+` FROM students WHERE id = $1`, id)
}

func (r *StudentRepo) getByQuery(ctx context.Context, query, arg string) (*model.Student, error) {
	var out model.Student
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, arg)
		if err != nil {
			return err
		}
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Student])
		if err != nil {
			return err
		}
		out.Skills, err = fetchSkills(ctx, conn, out.ID)
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("get student: %w", err)
	}
	return &out, nil
}

// pgxQuerier is the query surface shared by *pgx.Conn and pgx.Tx.
type pgxQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// fetchSkills loads a student's skill set from the join table, sorted.
func fetchSkills(ctx context.Context, q pgxQuerier, studentID string) ([]string, error) {
	rows, err := q.Query(ctx,
		`SELECT skill FROM student_skills WHERE student_id = $1 ORDER BY skill`, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// Create inserts a new student row. The caller supplies an already-hashed
// password; plaintext never reaches the data layer. Returns ErrEmailTaken
// when the email is already registered.
func (r *StudentRepo) Create(ctx context.Context, req *model.RegisterStudentRequest, passwordHash string) (*model.Student, error) {
	var out model.Student
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO students (id, name, email, password_hash, year, branch)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING `+studentColumns,
			uuid.NewString(), req.Name, req.Email, passwordHash, req.Year, req.Branch)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Student])
		return err
	}); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create student: %w", err)
	}
	// A fresh account has no skills yet.
	out.Skills = []string{}
	return &out, nil
}

// Update applies a partial profile update and returns the updated row.
// COALESCE keeps columns whose request fields are nil. A non-nil Skills
// replaces the student_skills rows in the same transaction.
func (r *StudentRepo) Update(ctx context.Context, id string, req *model.UpdateStudentRequest) (*model.Student, error) {
	var out model.Student
	if err := pgxutil.WithPgxTx(ctx, r.DB, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, `
			UPDATE students SET
				name    = COALESCE($2, name),
				year    = COALESCE($3, year),
				branch  = COALESCE($4, branch),
				bio     = COALESCE($5, bio),
				updated_at = NOW()
			WHERE id = $1
			RETURNING `+studentColumns,
			id, req.Name, req.Year, req.Branch, req.Bio)
		if err != nil {
			return err
		}
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Student])
		if err != nil {
			return err
		}

		if req.Skills == nil {
			out.Skills, err = fetchSkills(ctx, tx, id)
			return err
		}
		if _, err := tx.Exec(ctx,
			`DELETE FROM student_skills WHERE student_id = $1`, id); err != nil {
			return fmt.Errorf("clear skills: %w", err)
		}
		for _, skill := range *req.Skills {
			if _, err := tx.Exec(ctx,
				`INSERT INTO student_skills (student_id, skill) VALUES ($1, $2)`,
				id, skill); err != nil {
				return fmt.Errorf("insert skill: %w", err)
			}
		}
		out.Skills = append([]string(nil), *req.Skills...)
		return nil
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, fmt.Errorf("update student: %w", err)
	}
	return &out, nil
}

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

// AdminRepo provides database operations for administrator accounts.
type AdminRepo struct {
	DB *sql.DB
}

// NewAdminRepo creates a new AdminRepo.
func NewAdminRepo(db *sql.DB) *AdminRepo {
	return &AdminRepo{DB: db}
}

const adminColumns = `id, name, email, password_hash, created_at`

// FindByEmail retrieves an admin by email. Returns ErrAdminNotFound when no
// row matches.
func (r *AdminRepo) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var out model.Admin
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+adminColumns+` FROM admins WHERE email = $1`, email)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Admin])
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAdminNotFound
		}
		return nil, fmt.Errorf("find admin by email: %w", err)
	}
	return &out, nil
}

// Create inserts a new admin row. The caller supplies an already-hashed
// password; plaintext never reaches the data layer.
func (r *AdminRepo) Create(ctx context.Context, name, email, passwordHash string) (*model.Admin, error) {
	var out model.Admin
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO admins (id, name, email, password_hash)
			VALUES ($1, $2, $3, $4)
			RETURNING `+adminColumns,
			uuid.NewString(), name, email, passwordHash)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Admin])
		return err
	}); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return &out, nil
}

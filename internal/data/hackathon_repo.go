package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/srec-coin/coin-backend/internal/data/pgxutil"
	"github.com/srec-coin/coin-backend/internal/domain/model"
)

// HackathonRepo provides database operations for hackathon listings.
type HackathonRepo struct {
	DB *sql.DB
}

// NewHackathonRepo creates a new HackathonRepo.
func NewHackathonRepo(db *sql.DB) *HackathonRepo {
	return &HackathonRepo{DB: db}
}

const hackathonColumns = `id, name, organizer, description, mode, location, start_date, end_date,
	registration_deadline, official_registration_link, eligibility, status, semester,
	created_at, updated_at, created_by`

// Create inserts a new hackathon listing created by the given admin.
func (r *HackathonRepo) Create(ctx context.Context, req *model.CreateHackathonRequest, createdBy string) (*model.Hackathon, error) {
	status := model.HackathonStatusUpcoming
	if req.Status != nil {
		if parsed, ok := model.ParseHackathonStatus(*req.Status); ok {
			status = parsed
		}
	}
	mode, _ := model.ParseHackathonMode(req.Mode)

	var out model.Hackathon
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO hackathons (
				id, name, organizer, description, mode, location, start_date, end_date,
				registration_deadline, official_registration_link, eligibility, status, semester, created_by
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			RETURNING `+hackathonColumns,
			uuid.NewString(),
			strings.TrimSpace(req.Name),
			req.Organizer,
			req.Description,
			mode,
			req.Location,
			req.StartDate,
			req.EndDate,
			req.RegistrationDeadline,
			req.OfficialRegistrationLink,
			req.Eligibility,
			status,
			req.Semester,
			createdBy,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Hackathon])
		return err
	}); err != nil {
		return nil, fmt.Errorf("create hackathon: %w", err)
	}
	return &out, nil
}

// GetByID retrieves a hackathon by ID.
func (r *HackathonRepo) GetByID(ctx context.Context, id string) (*model.Hackathon, error) {
	var out model.Hackathon
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+hackathonColumns+` FROM hackathons WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Hackathon])
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrHackathonNotFound
		}
		return nil, fmt.Errorf("get hackathon: %w", err)
	}
	return &out, nil
}

// ListPage retrieves one page of hackathons ordered by start date, newest
// first, together with the total row count for the pagination envelope.
func (r *HackathonRepo) ListPage(ctx context.Context, q model.PageQuery) ([]model.Hackathon, int64, error) {
	var (
		out   []model.Hackathon
		total int64
	)
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		if err := conn.QueryRow(ctx,
			`SELECT COUNT(*) FROM hackathons`).Scan(&total); err != nil {
			return err
		}
		rows, err := conn.Query(ctx,
			`SELECT `+hackathonColumns+` FROM hackathons ORDER BY start_date DESC LIMIT $1 OFFSET $2`,
			q.Limit, q.Offset())
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Hackathon])
		return err
	}); err != nil {
		return nil, 0, fmt.Errorf("list hackathons: %w", err)
	}
	return out, total, nil
}

// List retrieves every hackathon for the admin console, newest creations
// first.
func (r *HackathonRepo) List(ctx context.Context) ([]model.Hackathon, error) {
	var out []model.Hackathon
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+hackathonColumns+` FROM hackathons ORDER BY created_at DESC`)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Hackathon])
		return err
	}); err != nil {
		return nil, fmt.Errorf("list hackathons: %w", err)
	}
	return out, nil
}

// Update applies a partial update and returns the updated row.
func (r *HackathonRepo) Update(ctx context.Context, id string, req *model.UpdateHackathonRequest) (*model.Hackathon, error) {
	var mode *model.HackathonMode
	if req.Mode != nil {
		if parsed, ok := model.ParseHackathonMode(*req.Mode); ok {
			mode = &parsed
		}
	}

	var out model.Hackathon
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE hackathons SET
				name                       = COALESCE($2, name),
				organizer                  = COALESCE($3, organizer),
				description                = COALESCE($4, description),
				mode                       = COALESCE($5, mode),
				location                   = COALESCE($6, location),
				start_date                 = COALESCE($7, start_date),
				end_date                   = COALESCE($8, end_date),
				registration_deadline      = COALESCE($9, registration_deadline),
				official_registration_link = COALESCE($10, official_registration_link),
				eligibility                = COALESCE($11, eligibility),
				semester                   = COALESCE($12, semester),
				updated_at                 = NOW()
			WHERE id = $1
			RETURNING `+hackathonColumns,
			id, req.Name, req.Organizer, req.Description, mode, req.Location,
			req.StartDate, req.EndDate, req.RegistrationDeadline,
			req.OfficialRegistrationLink, req.Eligibility, req.Semester)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Hackathon])
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrHackathonNotFound
		}
		return nil, fmt.Errorf("update hackathon: %w", err)
	}
	return &out, nil
}

// UpdateStatus transitions a hackathon's lifecycle status.
func (r *HackathonRepo) UpdateStatus(ctx context.Context, id string, status model.HackathonStatus) (*model.Hackathon, error) {
	var out model.Hackathon
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE hackathons SET status = $2, updated_at = NOW()
			WHERE id = $1
			RETURNING `+hackathonColumns,
			id, status)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Hackathon])
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrHackathonNotFound
		}
		return nil, fmt.Errorf("update hackathon status: %w", err)
	}
	return &out, nil
}

// Delete removes a hackathon. Submissions referencing it cascade per schema.
func (r *HackathonRepo) Delete(ctx context.Context, id string) error {
	return pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		tag, err := conn.Exec(ctx, `DELETE FROM hackathons WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete hackathon: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrHackathonNotFound
		}
		return nil
	})
}

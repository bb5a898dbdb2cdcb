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

// SubmissionRepo provides database operations for team participation records.
type SubmissionRepo struct {
	DB *sql.DB
}

// NewSubmissionRepo creates a new SubmissionRepo.
func NewSubmissionRepo(db *sql.DB) *SubmissionRepo {
	return &SubmissionRepo{DB: db}
}

const submissionColumns = `id, hackathon_id, team_name, participant_count, mentor_count,
	external_registration_confirmed, status, created_at`

// Create inserts a submission together with its participants and mentors in a
// single transaction. The target hackathon must exist and must not be CLOSED;
// violations surface as ErrHackathonNotFound and ErrHackathonClosed.
func (r *SubmissionRepo) Create(ctx context.Context, req *model.SubmitParticipationRequest) (*model.Submission, error) {
	var out model.Submission
	if err := pgxutil.WithPgxTx(ctx, r.DB, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx,
			`SELECT status FROM hackathons WHERE id = $1`, req.HackathonID)
		if err != nil {
			return err
		}
		hackathonStatus, err := pgx.CollectOneRow(rows, pgx.RowTo[model.HackathonStatus])
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return ErrHackathonNotFound
			}
			return err
		}
		if hackathonStatus == model.HackathonStatusClosed {
			return ErrHackathonClosed
		}

		submissionID := uuid.NewString()
		rows, err = tx.Query(ctx, `
			INSERT INTO submissions (
				id, hackathon_id, team_name, participant_count, mentor_count,
				external_registration_confirmed, status
			) VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING `+submissionColumns,
			submissionID,
			req.HackathonID,
			req.TeamName,
			len(req.Participants),
			len(req.Mentors),
			req.ExternalRegistrationConfirmed,
			model.SubmissionStatusSubmitted,
		)
		if err != nil {
			return err
		}
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Submission])
		if err != nil {
			return err
		}

		for _, p := range req.Participants {
			if _, err := tx.Exec(ctx, `
				INSERT INTO participants (id, submission_id, name, email, department, academic_year)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				uuid.NewString(), submissionID, p.Name, p.Email, p.Department, p.AcademicYear); err != nil {
				return fmt.Errorf("insert participant: %w", err)
			}
		}
		for _, m := range req.Mentors {
			if _, err := tx.Exec(ctx, `
				INSERT INTO mentors (id, submission_id, name, department)
				VALUES ($1, $2, $3, $4)`,
				uuid.NewString(), submissionID, m.Name, m.Department); err != nil {
				return fmt.Errorf("insert mentor: %w", err)
			}
		}
		return nil
	}); err != nil {
		if errors.Is(err, ErrHackathonNotFound) || errors.Is(err, ErrHackathonClosed) {
			return nil, err
		}
		if isForeignKeyViolation(err) {
			return nil, ErrHackathonNotFound
		}
		return nil, fmt.Errorf("create submission: %w", err)
	}
	return &out, nil
}

// List retrieves submissions newest first, optionally narrowed to one
// hackathon and one review status. Empty filter values match everything; the
// query stays fixed and fully parameterized either way.
func (r *SubmissionRepo) List(ctx context.Context, hackathonID, status string) ([]model.Submission, error) {
	var out []model.Submission
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+submissionColumns+` FROM submissions
			WHERE ($1 = '' OR hackathon_id::text = $1)
			  AND ($2 = '' OR status::text = $2)
			ORDER BY created_at DESC`,
			hackathonID, status)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Submission])
		return err
	}); err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return out, nil
}

// GetDetail retrieves a submission along with its participants and mentors.
func (r *SubmissionRepo) GetDetail(ctx context.Context, id string) (*model.SubmissionDetail, error) {
	var detail model.SubmissionDetail
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx,
			`SELECT `+submissionColumns+` FROM submissions WHERE id = $1`, id)
		if err != nil {
			return err
		}
		detail.Submission, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Submission])
		if err != nil {
			return err
		}

		rows, err = conn.Query(ctx, `
			SELECT id, submission_id, name, email, department, academic_year
			FROM participants WHERE submission_id = $1 ORDER BY name`, id)
		if err != nil {
			return err
		}
		detail.Participants, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Participant])
		if err != nil {
			return err
		}

		rows, err = conn.Query(ctx, `
			SELECT id, submission_id, name, department
			FROM mentors WHERE submission_id = $1 ORDER BY name`, id)
		if err != nil {
			return err
		}
		detail.Mentors, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Mentor])
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("get submission detail: %w", err)
	}
	return &detail, nil
}

// UpdateStatus transitions a submission's review status.
func (r *SubmissionRepo) UpdateStatus(ctx context.Context, id string, status model.SubmissionStatus) (*model.Submission, error) {
	var out model.Submission
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE submissions SET status = $2
			WHERE id = $1
			RETURNING `+submissionColumns,
			id, status)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Submission])
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("update submission status: %w", err)
	}
	return &out, nil
}

// Delete removes a submission. Participants and mentors cascade per schema.
func (r *SubmissionRepo) Delete(ctx context.Context, id string) error {
	return pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		tag, err := conn.Exec(ctx, `DELETE FROM submissions WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete submission: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrSubmissionNotFound
		}
		return nil
	})
}

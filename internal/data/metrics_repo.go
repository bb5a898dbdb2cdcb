package data

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/srec-coin/coin-backend/internal/data/pgxutil"
	"github.com/srec-coin/coin-backend/internal/domain/model"
)

// MetricsRepo computes portal-wide participation aggregates.
type MetricsRepo struct {
	DB *sql.DB
}

// NewMetricsRepo creates a new MetricsRepo.
func NewMetricsRepo(db *sql.DB) *MetricsRepo {
	return &MetricsRepo{DB: db}
}

// Aggregate computes dashboard totals across all hackathons. When semester is
// non-empty, hackathon and submission counts are restricted to that semester.
func (r *MetricsRepo) Aggregate(ctx context.Context, semester string) (*model.Metrics, error) {
	var out model.Metrics
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		query := `
			SELECT
				(SELECT COUNT(*) FROM hackathons WHERE $1 = '' OR semester = $1)   AS total_hackathons,
				(SELECT COUNT(*) FROM submissions s
					JOIN hackathons h ON h.id = s.hackathon_id
					WHERE $1 = '' OR h.semester = $1)                              AS total_submissions,
				(SELECT COUNT(DISTINCT p.email) FROM participants p
					JOIN submissions s ON s.id = p.submission_id
					JOIN hackathons h ON h.id = s.hackathon_id
					WHERE $1 = '' OR h.semester = $1)                              AS total_students,
				(SELECT COUNT(*) FROM mentors m
					JOIN submissions s ON s.id = m.submission_id
					JOIN hackathons h ON h.id = s.hackathon_id
					WHERE $1 = '' OR h.semester = $1)                              AS total_mentors`
		return conn.QueryRow(ctx, query, semester).Scan(
			&out.TotalHackathons,
			&out.TotalSubmissions,
			&out.TotalStudents,
			&out.TotalMentors,
		)
	}); err != nil {
		return nil, fmt.Errorf("aggregate metrics: %w", err)
	}
	return &out, nil
}

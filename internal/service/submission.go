package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/srec-coin/coin-backend/internal/data"
	"github.com/srec-coin/coin-backend/internal/domain/model"
	apperrors "github.com/srec-coin/coin-backend/internal/errors"
)

// SubmissionServiceOptions groups dependencies for SubmissionService.
type SubmissionServiceOptions struct {
	Repo   *data.SubmissionRepo
	Logger *slog.Logger
}

// SubmissionService manages team participation records.
type SubmissionService struct {
	repo   *data.SubmissionRepo
	logger *slog.Logger
}

// NewSubmissionService constructs a new SubmissionService.
func NewSubmissionService(opts SubmissionServiceOptions) *SubmissionService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &SubmissionService{repo: opts.Repo, logger: logger}
}

// Submit records a team's participation. Open to the public; no account needed.
func (s *SubmissionService) Submit(ctx context.Context, req *model.SubmitParticipationRequest) (*model.Submission, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.BadRequest(err.Error())
	}
	sub, err := s.repo.Create(ctx, req)
	if err != nil {
		if errors.Is(err, data.ErrHackathonNotFound) {
			return nil, apperrors.NotFound("Hackathon not found")
		}
		if errors.Is(err, data.ErrHackathonClosed) {
			return nil, apperrors.BadRequest("Hackathon registration is closed")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "submission create failed")
	}
	s.logger.Info("participation submitted",
		"submission_id", sub.ID,
		"hackathon_id", sub.HackathonID,
		"participants", sub.ParticipantCount)
	return sub, nil
}

// List returns all submissions, optionally narrowed by hackathon and review
// status.
func (s *SubmissionService) List(ctx context.Context, hackathonID, status string) ([]model.Submission, error) {
	if status != "" {
		parsed, ok := model.ParseSubmissionStatus(status)
		if !ok {
			return nil, apperrors.BadRequest("status must be submitted, verified, or archived")
		}
		status = string(parsed)
	}
	out, err := s.repo.List(ctx, hackathonID, status)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "submission list failed")
	}
	return out, nil
}

// GetDetail returns a submission with its participants and mentors.
func (s *SubmissionService) GetDetail(ctx context.Context, id string) (*model.SubmissionDetail, error) {
	detail, err := s.repo.GetDetail(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrSubmissionNotFound) {
			return nil, apperrors.NotFound("Submission not found")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "submission get failed")
	}
	return detail, nil
}

// UpdateStatus transitions a submission's review status.
func (s *SubmissionService) UpdateStatus(ctx context.Context, id, status string) (*model.Submission, error) {
	parsed, ok := model.ParseSubmissionStatus(status)
	if !ok {
		return nil, apperrors.BadRequest("status must be submitted, verified, or archived")
	}
	sub, err := s.repo.UpdateStatus(ctx, id, parsed)
	if err != nil {
		if errors.Is(err, data.ErrSubmissionNotFound) {
			return nil, apperrors.NotFound("Submission not found")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "submission status update failed")
	}
	s.logger.Info("submission status changed", "submission_id", id, "status", parsed)
	return sub, nil
}

// Delete removes a submission and its team roster.
func (s *SubmissionService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, data.ErrSubmissionNotFound) {
			return apperrors.NotFound("Submission not found")
		}
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "submission delete failed")
	}
	s.logger.Info("submission deleted", "submission_id", id)
	return nil
}

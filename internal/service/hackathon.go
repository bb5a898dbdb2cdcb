package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/srec-coin/coin-backend/internal/data"
	"github.com/srec-coin/coin-backend/internal/domain/model"
	apperrors "github.com/srec-coin/coin-backend/internal/errors"
)

// HackathonServiceOptions groups dependencies for HackathonService.
type HackathonServiceOptions struct {
	Repo   *data.HackathonRepo
	Logger *slog.Logger
}

// HackathonService manages hackathon listings.
type HackathonService struct {
	repo   *data.HackathonRepo
	logger *slog.Logger
}

// NewHackathonService constructs a new HackathonService.
func NewHackathonService(opts HackathonServiceOptions) *HackathonService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &HackathonService{repo: opts.Repo, logger: logger}
}

// Create validates and stores a new hackathon, attributing it to the creating admin.
func (s *HackathonService) Create(ctx context.Context, req *model.CreateHackathonRequest, createdBy string) (*model.Hackathon, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.BadRequest(err.Error())
	}
	h, err := s.repo.Create(ctx, req, createdBy)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "hackathon create failed")
	}
	s.logger.Info("hackathon created", "hackathon_id", h.ID, "created_by", createdBy)
	return h, nil
}

// ListPublic returns one page of hackathon listings with the pagination
// envelope the public site renders.
func (s *HackathonService) ListPublic(ctx context.Context, q model.PageQuery) (*model.HackathonPage, error) {
	q = q.Normalize()
	out, total, err := s.repo.ListPage(ctx, q)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "hackathon list failed")
	}
	if out == nil {
		out = []model.Hackathon{}
	}
	return &model.HackathonPage{Data: out, Pagination: q.Paginate(total)}, nil
}

// List returns every hackathon listing for the admin console.
func (s *HackathonService) List(ctx context.Context) ([]model.Hackathon, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "hackathon list failed")
	}
	return out, nil
}

// Get returns a single hackathon by ID.
func (s *HackathonService) Get(ctx context.Context, id string) (*model.Hackathon, error) {
	h, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrHackathonNotFound) {
			return nil, apperrors.NotFound("Hackathon not found")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "hackathon get failed")
	}
	return h, nil
}

// Update applies a partial update to a hackathon.
func (s *HackathonService) Update(ctx context.Context, id string, req *model.UpdateHackathonRequest) (*model.Hackathon, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.BadRequest(err.Error())
	}
	h, err := s.repo.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, data.ErrHackathonNotFound) {
			return nil, apperrors.NotFound("Hackathon not found")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "hackathon update failed")
	}
	return h, nil
}

// UpdateStatus transitions a hackathon's lifecycle status.
func (s *HackathonService) UpdateStatus(ctx context.Context, id, status string) (*model.Hackathon, error) {
	parsed, ok := model.ParseHackathonStatus(status)
	if !ok {
		return nil, apperrors.BadRequest("status must be UPCOMING, ONGOING, or CLOSED")
	}
	h, err := s.repo.UpdateStatus(ctx, id, parsed)
	if err != nil {
		if errors.Is(err, data.ErrHackathonNotFound) {
			return nil, apperrors.NotFound("Hackathon not found")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "hackathon status update failed")
	}
	s.logger.Info("hackathon status changed", "hackathon_id", id, "status", parsed)
	return h, nil
}

// Delete removes a hackathon listing.
func (s *HackathonService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, data.ErrHackathonNotFound) {
			return apperrors.NotFound("Hackathon not found")
		}
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "hackathon delete failed")
	}
	s.logger.Info("hackathon deleted", "hackathon_id", id)
	return nil
}

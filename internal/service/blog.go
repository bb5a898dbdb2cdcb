package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/srec-coin/coin-backend/internal/data"
	"github.com/srec-coin/coin-backend/internal/domain/model"
	apperrors "github.com/srec-coin/coin-backend/internal/errors"
)

// BlogServiceOptions groups dependencies for BlogService.
type BlogServiceOptions struct {
	Repo   *data.BlogRepo
	Logger *slog.Logger
}

// BlogService manages blog posts.
type BlogService struct {
	repo   *data.BlogRepo
	logger *slog.Logger
}

// NewBlogService constructs a new BlogService.
func NewBlogService(opts BlogServiceOptions) *BlogService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &BlogService{repo: opts.Repo, logger: logger}
}

// Create validates and stores a new blog post.
func (s *BlogService) Create(ctx context.Context, req *model.CreateBlogPostRequest) (*model.BlogPost, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.BadRequest(err.Error())
	}
	post, err := s.repo.Create(ctx, req)
	if err != nil {
		if errors.Is(err, data.ErrSlugTaken) {
			return nil, apperrors.Conflict("A post with this title already exists")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "blog post create failed")
	}
	s.logger.Info("blog post created", "post_id", post.ID, "slug", post.Slug)
	return post, nil
}

// ListPublished returns one page of published posts with the pagination
// envelope the public blog renders.
func (s *BlogService) ListPublished(ctx context.Context, q model.PageQuery) (*model.BlogPostPage, error) {
	q = q.Normalize()
	out, total, err := s.repo.ListPublished(ctx, q)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "blog list failed")
	}
	if out == nil {
		out = []model.BlogPost{}
	}
	return &model.BlogPostPage{Data: out, Pagination: q.Paginate(total)}, nil
}

// ListAll returns every post including drafts, for the admin console.
func (s *BlogService) ListAll(ctx context.Context) ([]model.BlogPost, error) {
	out, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "blog list failed")
	}
	return out, nil
}

// GetBySlug returns a published post by slug.
func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	post, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, data.ErrBlogPostNotFound) {
			return nil, apperrors.NotFound("Blog post not found")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "blog get failed")
	}
	return post, nil
}

// Update applies a partial update to a post.
func (s *BlogService) Update(ctx context.Context, id string, req *model.UpdateBlogPostRequest) (*model.BlogPost, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.BadRequest(err.Error())
	}
	post, err := s.repo.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, data.ErrBlogPostNotFound) {
			return nil, apperrors.NotFound("Blog post not found")
		}
		if errors.Is(err, data.ErrSlugTaken) {
			return nil, apperrors.Conflict("A post with this title already exists")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "blog update failed")
	}
	return post, nil
}

// Delete removes a post.
func (s *BlogService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, data.ErrBlogPostNotFound) {
			return apperrors.NotFound("Blog post not found")
		}
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "blog delete failed")
	}
	s.logger.Info("blog post deleted", "post_id", id)
	return nil
}

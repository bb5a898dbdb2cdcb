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

// BlogRepo provides database operations for blog posts.
type BlogRepo struct {
	DB *sql.DB
}

// NewBlogRepo creates a new BlogRepo.
func NewBlogRepo(db *sql.DB) *BlogRepo {
	return &BlogRepo{DB: db}
}

const blogColumns = `id, title, slug, summary, content, category, author,
	related_hackathon, status, created_at, updated_at`

// Create inserts a new blog post. The slug is derived from the title; a
// duplicate slug surfaces as ErrSlugTaken.
func (r *BlogRepo) Create(ctx context.Context, req *model.CreateBlogPostRequest) (*model.BlogPost, error) {
	status := model.BlogStatusDraft
	if req.Status != nil {
		status = model.BlogStatus(strings.ToLower(strings.TrimSpace(*req.Status)))
	}
	category := model.BlogCategory(strings.ToLower(strings.TrimSpace(req.Category)))

	var out model.BlogPost
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO blog_posts (id, title, slug, summary, content, category, author, related_hackathon, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING `+blogColumns,
			uuid.NewString(),
			strings.TrimSpace(req.Title),
			model.Slugify(req.Title),
			req.Summary,
			req.Content,
			category,
			req.Author,
			req.RelatedHackathon,
			status,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.BlogPost])
		return err
	}); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("create blog post: %w", err)
	}
	return &out, nil
}

// GetBySlug retrieves a single published post by slug.
func (r *BlogRepo) GetBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	return r.getByQuery(ctx,
		`SELECT `+blogColumns+` FROM blog_posts WHERE slug = $1 AND status = 'published'`, slug)
}

// GetByID retrieves a post by ID regardless of status.
func (r *BlogRepo) GetByID(ctx context.Context, id string) (*model.BlogPost, error) {
	return r.getByQuery(ctx,
		`SELECT `+blogColumns+` FROM blog_posts WHERE id = $1`, id)
}

func (r *BlogRepo) getByQuery(ctx context.Context, query, arg string) (*model.BlogPost, error) {
	var out model.BlogPost
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, arg)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.BlogPost])
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBlogPostNotFound
		}
		return nil, fmt.Errorf("get blog post: %w", err)
	}
	return &out, nil
}

// ListPublished retrieves one page of published posts for the public blog,
// newest first, with the total published count for the pagination envelope.
func (r *BlogRepo) ListPublished(ctx context.Context, q model.PageQuery) ([]model.BlogPost, int64, error) {
	var (
		out   []model.BlogPost
		total int64
	)
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		if err := conn.QueryRow(ctx,
			`SELECT COUNT(*) FROM blog_posts WHERE status = 'published'`).Scan(&total); err != nil {
			return err
		}
		rows, err := conn.Query(ctx,
			`SELECT `+blogColumns+` FROM blog_posts WHERE status = 'published' ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
			q.Limit, q.Offset())
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.BlogPost])
		return err
	}); err != nil {
		return nil, 0, fmt.Errorf("list blog posts: %w", err)
	}
	return out, total, nil
}

// ListAll retrieves every post including drafts, newest first.
func (r *BlogRepo) ListAll(ctx context.Context) ([]model.BlogPost, error) {
	return r.list(ctx,
		`SELECT `+blogColumns+` FROM blog_posts ORDER BY created_at DESC`)
}

func (r *BlogRepo) list(ctx context.Context, query string) ([]model.BlogPost, error) {
	var out []model.BlogPost
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.BlogPost])
		return err
	}); err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	return out, nil
}

// Update applies a partial update. A title change regenerates the slug.
func (r *BlogRepo) Update(ctx context.Context, id string, req *model.UpdateBlogPostRequest) (*model.BlogPost, error) {
	var slug *string
	if req.Title != nil {
		s := model.Slugify(*req.Title)
		slug = &s
	}
	var category *model.BlogCategory
	if req.Category != nil {
		c := model.BlogCategory(strings.ToLower(strings.TrimSpace(*req.Category)))
		category = &c
	}
	var status *model.BlogStatus
	if req.Status != nil {
		s := model.BlogStatus(strings.ToLower(strings.TrimSpace(*req.Status)))
		status = &s
	}

	var out model.BlogPost
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE blog_posts SET
				title             = COALESCE($2, title),
				slug              = COALESCE($3, slug),
				summary           = COALESCE($4, summary),
				content           = COALESCE($5, content),
				category          = COALESCE($6, category),
				author            = COALESCE($7, author),
				related_hackathon = COALESCE($8, related_hackathon),
				status            = COALESCE($9, status),
				updated_at        = NOW()
			WHERE id = $1
			RETURNING `+blogColumns,
			id, req.Title, slug, req.Summary, req.Content, category,
			req.Author, req.RelatedHackathon, status)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.BlogPost])
		return err
	}); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrBlogPostNotFound
		}
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("update blog post: %w", err)
	}
	return &out, nil
}

// Delete removes a blog post.
func (r *BlogRepo) Delete(ctx context.Context, id string) error {
	return pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		tag, err := conn.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete blog post: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrBlogPostNotFound
		}
		return nil
	})
}

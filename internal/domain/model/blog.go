package model

import (
	"errors"
	"strings"
	"time"
)

// BlogCategory classifies a post.
type BlogCategory string

const (
	BlogCategoryArticle      BlogCategory = "article"
	BlogCategoryWinner       BlogCategory = "winner"
	BlogCategoryAnnouncement BlogCategory = "announcement"
)

// Valid reports whether the category is supported.
func (c BlogCategory) Valid() bool {
	switch c {
	case BlogCategoryArticle, BlogCategoryWinner, BlogCategoryAnnouncement:
		return true
	default:
		return false
	}
}

// BlogStatus is the publication state of a post.
type BlogStatus string

const (
	BlogStatusDraft     BlogStatus = "draft"
	BlogStatusPublished BlogStatus = "published"
)

// Valid reports whether the status is supported.
func (s BlogStatus) Valid() bool {
	return s == BlogStatusDraft || s == BlogStatusPublished
}

// BlogPost is a portal blog entry. Public listings only include published posts.
type BlogPost struct {
	ID               string       `json:"id"                          db:"id"`
	Title            string       `json:"title"                       db:"title"`
	Slug             string       `json:"slug"                        db:"slug"`
	Summary          string       `json:"summary"                     db:"summary"`
	Content          string       `json:"content"                     db:"content"`
	Category         BlogCategory `json:"category"                    db:"category"`
	Author           string       `json:"author"                      db:"author"`
	RelatedHackathon *string      `json:"related_hackathon,omitempty" db:"related_hackathon"`
	Status           BlogStatus   `json:"status"                      db:"status"`
	CreatedAt        time.Time    `json:"created_at"                  db:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"                  db:"updated_at"`
}

// CreateBlogPostRequest represents parameters to create a BlogPost.
type CreateBlogPostRequest struct {
	Title            string  `json:"title"`
	Summary          string  `json:"summary"`
	Content          string  `json:"content"`
	Category         string  `json:"category"`
	Author           string  `json:"author"`
	RelatedHackathon *string `json:"related_hackathon,omitempty"`
	Status           *string `json:"status,omitempty"`
}

// Validate validates CreateBlogPostRequest.
func (r *CreateBlogPostRequest) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("title is required")
	}
	if strings.TrimSpace(r.Content) == "" {
		return errors.New("content is required")
	}
	if !BlogCategory(strings.ToLower(strings.TrimSpace(r.Category))).Valid() {
		return errors.New("category must be article, winner, or announcement")
	}
	if strings.TrimSpace(r.Author) == "" {
		return errors.New("author is required")
	}
	if r.Status != nil && !BlogStatus(strings.ToLower(strings.TrimSpace(*r.Status))).Valid() {
		return errors.New("status must be draft or published")
	}
	return nil
}

// UpdateBlogPostRequest represents partial updates to a BlogPost.
type UpdateBlogPostRequest struct {
	Title            *string `json:"title,omitempty"`
	Summary          *string `json:"summary,omitempty"`
	Content          *string `json:"content,omitempty"`
	Category         *string `json:"category,omitempty"`
	Author           *string `json:"author,omitempty"`
	RelatedHackathon *string `json:"related_hackathon,omitempty"`
	Status           *string `json:"status,omitempty"`
}

// Validate validates UpdateBlogPostRequest.
func (r *UpdateBlogPostRequest) Validate() error {
	if r.Title != nil && strings.TrimSpace(*r.Title) == "" {
		return errors.New("title cannot be empty")
	}
	if r.Category != nil && !BlogCategory(strings.ToLower(strings.TrimSpace(*r.Category))).Valid() {
		return errors.New("category must be article, winner, or announcement")
	}
	if r.Status != nil && !BlogStatus(strings.ToLower(strings.TrimSpace(*r.Status))).Valid() {
		return errors.New("status must be draft or published")
	}
	return nil
}

// Slugify derives a URL slug from a post title: lowercase, alphanumerics
// kept, everything else collapsed into single hyphens.
func Slugify(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune('-')
		}
	}
	parts := strings.FieldsFunc(b.String(), func(r rune) bool { return r == '-' })
	return strings.Join(parts, "-")
}

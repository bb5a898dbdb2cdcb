package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Smart India Hackathon 2026", "smart-india-hackathon-2026"},
		{"  Winners!!  Announced  ", "winners-announced"},
		{"Already-Slugged", "already-slugged"},
		{"C++ & Go: A Retrospective", "c-go-a-retrospective"},
		{"___", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.title), "title %q", tt.title)
	}
}

func TestCreateBlogPostRequest_Validate(t *testing.T) {
	valid := func() CreateBlogPostRequest {
		return CreateBlogPostRequest{
			Title:    "Winners Announced",
			Content:  "body",
			Category: "winner",
			Author:   "Dean",
		}
	}

	req := valid()
	assert.NoError(t, req.Validate())

	// Category comparison is case-insensitive.
	req = valid()
	req.Category = "ANNOUNCEMENT"
	assert.NoError(t, req.Validate())

	req = valid()
	req.Category = "gossip"
	assert.EqualError(t, req.Validate(), "category must be article, winner, or announcement")

	req = valid()
	req.Title = " "
	assert.EqualError(t, req.Validate(), "title is required")

	req = valid()
	bad := "archived"
	req.Status = &bad
	assert.EqualError(t, req.Validate(), "status must be draft or published")
}

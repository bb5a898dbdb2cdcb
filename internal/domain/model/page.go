package model

const (
	defaultPageLimit = 10
	maxPageLimit     = 100
)

// PageQuery is a requested page window over a listing.
type PageQuery struct {
	Page  int
	Limit int
}

// Normalize clamps the window to sane bounds: page starts at 1, limit
// defaults to 10 and is capped at 100.
func (q PageQuery) Normalize() PageQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = defaultPageLimit
	}
	if q.Limit > maxPageLimit {
		q.Limit = maxPageLimit
	}
	return q
}

// Offset returns the row offset of the window. Call Normalize first.
func (q PageQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Paginate builds the response envelope metadata for a total row count.
func (q PageQuery) Paginate(total int64) Pagination {
	return Pagination{
		Page:  q.Page,
		Limit: q.Limit,
		Total: total,
		Pages: (total + int64(q.Limit) - 1) / int64(q.Limit),
	}
}

// Pagination describes the window a listing response covers.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// HackathonPage is one page of public hackathon listings.
type HackathonPage struct {
	Data       []Hackathon `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// BlogPostPage is one page of the public blog.
type BlogPostPage struct {
	Data       []BlogPost `json:"data"`
	Pagination Pagination `json:"pagination"`
}

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageQuery_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   PageQuery
		want PageQuery
	}{
		{"zero value gets defaults", PageQuery{}, PageQuery{Page: 1, Limit: 10}},
		{"negative page clamped", PageQuery{Page: -3, Limit: 20}, PageQuery{Page: 1, Limit: 20}},
		{"limit capped at 100", PageQuery{Page: 2, Limit: 500}, PageQuery{Page: 2, Limit: 100}},
		{"sane window untouched", PageQuery{Page: 4, Limit: 25}, PageQuery{Page: 4, Limit: 25}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestPageQuery_Offset(t *testing.T) {
	assert.Equal(t, 0, PageQuery{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 40, PageQuery{Page: 5, Limit: 10}.Offset())
}

func TestPageQuery_Paginate(t *testing.T) {
	q := PageQuery{Page: 2, Limit: 10}

	assert.Equal(t, Pagination{Page: 2, Limit: 10, Total: 25, Pages: 3}, q.Paginate(25))
	assert.Equal(t, Pagination{Page: 2, Limit: 10, Total: 30, Pages: 3}, q.Paginate(30))
	assert.Equal(t, Pagination{Page: 2, Limit: 10, Total: 0, Pages: 0}, q.Paginate(0))
}

package pagination_test

import (
	"testing"

	"github.com/astrofinance/afs_backend/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name           string
		pageNumber     int
		pageSize       int
		wantPageNumber int
		wantPageSize   int
	}{
		{name: "defaults applied", pageNumber: 0, pageSize: 0, wantPageNumber: 1, wantPageSize: pagination.DefaultPageSize},
		{name: "negative page", pageNumber: -3, pageSize: 25, wantPageNumber: 1, wantPageSize: 25},
		{name: "oversized page size", pageNumber: 2, pageSize: 1000, wantPageNumber: 2, wantPageSize: pagination.DefaultPageSize},
		{name: "valid passthrough", pageNumber: 4, pageSize: 50, wantPageNumber: 4, wantPageSize: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := pagination.Normalize(tt.pageNumber, tt.pageSize)
			assert.Equal(t, tt.wantPageNumber, p.PageNumber)
			assert.Equal(t, tt.wantPageSize, p.PageSize)
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{PageNumber: 1, PageSize: 10}.Offset())
	assert.Equal(t, 30, pagination.Params{PageNumber: 4, PageSize: 10}.Offset())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, pagination.TotalPages(0, 10))
	assert.Equal(t, 1, pagination.TotalPages(1, 10))
	assert.Equal(t, 1, pagination.TotalPages(10, 10))
	assert.Equal(t, 2, pagination.TotalPages(11, 10))
	assert.Equal(t, 5, pagination.TotalPages(41, 10))
}

// Package pagination provides the page-number pagination helpers shared by
// repositories and DTOs.
package pagination

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Params is a normalized 1-indexed page request.
type Params struct {
	PageNumber int
	PageSize   int
}

// Normalize clamps a raw page request into valid bounds. Page numbers below 1
// become 1; page sizes outside (0, MaxPageSize] fall back to the default.
func Normalize(pageNumber, pageSize int) Params {
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageSize <= 0 || pageSize > MaxPageSize {
		pageSize = DefaultPageSize
	}
	return Params{PageNumber: pageNumber, PageSize: pageSize}
}

// Offset returns the SQL offset for the page.
func (p Params) Offset() int {
	return (p.PageNumber - 1) * p.PageSize
}

// TotalPages computes ceil(totalCount / pageSize). A page number beyond this
// is not an error; it simply yields an empty page.
func TotalPages(totalCount int64, pageSize int) int {
	if totalCount <= 0 {
		return 0
	}
	return int((totalCount + int64(pageSize) - 1) / int64(pageSize))
}

package engine

import "math"

// DefaultPageSize is the number of records shown per page.
const DefaultPageSize = 5

// Paginate returns the contiguous slice of records for the 1-based page.
// Out-of-range pages yield as many records as exist, possibly none; page
// values below 1 are clamped so the slice start never goes negative.
func Paginate(records []Record, page, pageSize int) []Record {
	if pageSize <= 0 {
		return []Record{}
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	if start >= len(records) {
		return []Record{}
	}

	end := start + pageSize
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

// TotalPages returns ceil(totalItems/pageSize), or 0 for an empty set.
func TotalPages(totalItems, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return int(math.Ceil(float64(totalItems) / float64(pageSize)))
}

// PageMeta contains metadata about one page of results.
type PageMeta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// NewPageMeta creates pagination metadata for the given page and total
// count. An empty result set still reports one page so the view never
// shows "page 1 of 0".
func NewPageMeta(page, pageSize, totalItems int) PageMeta {
	totalPages := TotalPages(totalItems, pageSize)
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}

	return PageMeta{
		CurrentPage: page,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		HasPrevious: page > 1,
		HasNext:     page < totalPages,
	}
}

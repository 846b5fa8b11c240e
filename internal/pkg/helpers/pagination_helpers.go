package helpers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageSize = 25
	MaxPageSize     = 100
	DefaultPage     = 1 // Default page is 1-based
)

// NormalizePage replaces out-of-range page values with the defaults.
// pageSize is not capped here; the HTTP layer caps it in ParsePaginationParams.
func NormalizePage(page, pageSize, defaultSize int) (int, int) {
	if defaultSize <= 0 {
		defaultSize = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = defaultSize
	}
	return page, pageSize
}

// TotalPages returns ceil(total / pageSize), and 0 when there is nothing to page.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	pages := total / pageSize
	if total%pageSize != 0 {
		pages++
	}
	return pages
}

// CalculateSliceIndices calculates the start and end indices for slicing an array for pagination
func CalculateSliceIndices(page, size, totalItems int) (start, end int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}

	// checked before multiplying: (page-1)*size overflows for huge pages
	if totalItems <= 0 || page-1 >= TotalPages(totalItems, size) {
		return totalItems, totalItems
	}

	start = (page - 1) * size
	end = start + min(size, totalItems-start)
	return start, end
}

// ParsePaginationParams extracts page and pageSize from the query string.
// Malformed values fall back to the defaults instead of failing the request.
func ParsePaginationParams(c *gin.Context) (page, size int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = DefaultPage
	}

	size, err = strconv.Atoi(c.DefaultQuery("pageSize", strconv.Itoa(DefaultPageSize)))
	if err != nil || size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}

	return page, size
}

// Package query filters, searches, sorts and paginates in-memory entity
// collections, and aggregates dashboard statistics over them. Everything in
// this package is a pure function of its inputs.
package query

import (
	"slices"
	"strings"

	"github.com/yigit/admissions-crm/internal/pkg/helpers"
)

// Order is a sort direction
type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// ParseOrder maps a request value to an Order. Anything but "desc" is ascending.
func ParseOrder(s string) Order {
	if strings.EqualFold(strings.TrimSpace(s), string(Desc)) {
		return Desc
	}
	return Asc
}

// anyValue is the filter value a client sends to clear a string filter
const anyValue = "all"

// Predicate reports whether an item is kept
type Predicate[T any] func(T) bool

// Sorter orders items by one field. Items for which Missing returns true
// sort after every item that has the field, in both directions.
type Sorter[T any] struct {
	Compare func(a, b T) int
	Missing func(T) bool
}

func (s Sorter[T]) cmp(order Order) func(a, b T) int {
	return func(a, b T) int {
		if s.Missing != nil {
			ma, mb := s.Missing(a), s.Missing(b)
			switch {
			case ma && mb:
				return 0
			case ma:
				return 1
			case mb:
				return -1
			}
		}
		if order == Desc {
			return s.Compare(b, a)
		}
		return s.Compare(a, b)
	}
}

// Spec is a fully resolved query over a collection of T
type Spec[T any] struct {
	// Filters are exact-match predicates, combined with AND
	Filters []Predicate[T]
	// Search is nil when no search term was given
	Search Predicate[T]
	// Recency is nil when no recency window applies
	Recency Predicate[T]
	// Sort is nil when the collection order is kept
	Sort  *Sorter[T]
	Order Order

	Page            int
	PageSize        int
	DefaultPageSize int
}

// Result is one page of a query
type Result[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// Run applies spec to items: exact-match filters, search, recency, stable
// sort, then pagination. items is never modified.
func Run[T any](items []T, spec Spec[T]) Result[T] {
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item, spec) {
			filtered = append(filtered, item)
		}
	}

	if spec.Sort != nil && spec.Sort.Compare != nil {
		slices.SortStableFunc(filtered, spec.Sort.cmp(spec.Order))
	}

	defaultSize := spec.DefaultPageSize
	if defaultSize < 1 {
		defaultSize = helpers.DefaultPageSize
	}
	page, size := helpers.NormalizePage(spec.Page, spec.PageSize, defaultSize)
	total := len(filtered)
	start, end := helpers.CalculateSliceIndices(page, size, total)

	data := make([]T, end-start)
	copy(data, filtered[start:end])

	return Result[T]{
		Data:       data,
		Total:      total,
		Page:       page,
		PageSize:   size,
		TotalPages: helpers.TotalPages(total, size),
	}
}

func keep[T any](item T, spec Spec[T]) bool {
	for _, f := range spec.Filters {
		if !f(item) {
			return false
		}
	}
	if spec.Search != nil && !spec.Search(item) {
		return false
	}
	if spec.Recency != nil && !spec.Recency(item) {
		return false
	}
	return true
}

// containsFold reports whether any of fields contains term, ignoring case.
// term must already be lower case.
func containsFold(term string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// normalizeTerm trims and lower-cases a search term; "" means no search
func normalizeTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

package dto

import (
	"time"

	"github.com/yigit/admissions-crm/internal/app/query"
)

// APIResponse is the envelope of every successful response
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Message   string       `json:"message,omitempty" example:"Operation completed successfully"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2024-06-15T12:00:00Z"`
}

// NewSuccessResponse wraps data in a successful APIResponse
func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// PageResponse is one page of a list query
type PageResponse struct {
	Data        interface{} `json:"data"`
	Total       int         `json:"total" example:"75"`
	Page        int         `json:"page" example:"1"`
	PageSize    int         `json:"pageSize" example:"25"`
	TotalPages  int         `json:"totalPages" example:"3"`
	GeneratedAt time.Time   `json:"generatedAt" example:"2024-06-15T12:00:00Z"`
}

// NewPageResponse converts a query result into a PageResponse
func NewPageResponse[T any](result query.Result[T], generatedAt time.Time) PageResponse {
	return PageResponse{
		Data:        result.Data,
		Total:       result.Total,
		Page:        result.Page,
		PageSize:    result.PageSize,
		TotalPages:  result.TotalPages,
		GeneratedAt: generatedAt,
	}
}

// ListResponse is a complete, unpaged list
type ListResponse struct {
	Items       interface{} `json:"items"`
	Count       int         `json:"count" example:"2"`
	GeneratedAt time.Time   `json:"generatedAt" example:"2024-06-15T12:00:00Z"`
}

// NewListResponse wraps items in a ListResponse
func NewListResponse[T any](items []T, generatedAt time.Time) ListResponse {
	if items == nil {
		items = []T{}
	}
	return ListResponse{Items: items, Count: len(items), GeneratedAt: generatedAt}
}

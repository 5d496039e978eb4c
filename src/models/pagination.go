package models

import "math"

// PaginationParams hold paging, search and sort query values.
type PaginationParams struct {
	Page   int    `json:"page" query:"page" example:"1"`            // requested page number
	Limit  int    `json:"limit" query:"limit" example:"10"`         // items per page
	Search string `json:"search" query:"search" example:""`         // search term (optional)
	SortBy string `json:"sortBy" query:"sortBy" example:"updatedAt"` // sort field
	Order  string `json:"order" query:"order" example:"desc"`       // sort direction (asc/desc)
}

// PaginatedResponse is the standard paged payload shape.
type PaginatedResponse struct {
	Data        interface{} `json:"data"`
	Total       int64       `json:"total"`
	Page        int         `json:"page"`
	Limit       int         `json:"limit"`
	TotalPages  int         `json:"totalPages"`
	HasNext     bool        `json:"hasNext"`
	HasPrevious bool        `json:"hasPrevious"`
}

// DefaultPagination returns the default paging values.
func DefaultPagination() PaginationParams {
	return PaginationParams{
		Page:   1,
		Limit:  10,
		Search: "",
		SortBy: "updatedAt",
		Order:  "desc",
	}
}

// NewPaginatedResponse wraps data with paging metadata. Page and Limit are
// clamped to at least 1 so a limit of 0 cannot divide by zero.
func NewPaginatedResponse(data interface{}, total int64, params PaginationParams) *PaginatedResponse {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 1
	}
	totalPages := int(math.Ceil(float64(total) / float64(params.Limit)))

	return &PaginatedResponse{
		Data:        data,
		Total:       total,
		Page:        params.Page,
		Limit:       params.Limit,
		TotalPages:  totalPages,
		HasNext:     params.Page < totalPages,
		HasPrevious: params.Page > 1,
	}
}

// GetSkip computes how many documents to skip.
func (p *PaginationParams) GetSkip() int64 {
	return int64((p.Page - 1) * p.Limit)
}

// GetSortOrder maps the params to a Mongo sort document.
func (p *PaginationParams) GetSortOrder() map[string]int {
	order := 1 // 1 = asc, -1 = desc
	if p.Order == "desc" {
		order = -1
	}
	return map[string]int{p.SortBy: order}
}

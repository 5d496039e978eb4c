package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginatedResponseClampsPaging(t *testing.T) {
	t.Run("ZeroLimitDoesNotDivideByZero", func(t *testing.T) {
		params := PaginationParams{Page: 1, Limit: 0}
		result := NewPaginatedResponse([]string{"a"}, 10, params)

		assert.Equal(t, 1, result.Limit)
		assert.Equal(t, 10, result.TotalPages)
		assert.True(t, result.HasNext)
	})

	t.Run("ZeroPageBecomesFirst", func(t *testing.T) {
		params := PaginationParams{Page: 0, Limit: 10}
		result := NewPaginatedResponse(nil, 25, params)

		assert.Equal(t, 1, result.Page)
		assert.Equal(t, 3, result.TotalPages)
		assert.False(t, result.HasPrevious)
	})

	t.Run("NormalPaging", func(t *testing.T) {
		params := PaginationParams{Page: 2, Limit: 10}
		result := NewPaginatedResponse(nil, 25, params)

		assert.Equal(t, 3, result.TotalPages)
		assert.True(t, result.HasNext)
		assert.True(t, result.HasPrevious)
	})
}

func TestGetSortOrder(t *testing.T) {
	desc := PaginationParams{SortBy: "updatedAt", Order: "desc"}
	assert.Equal(t, map[string]int{"updatedAt": -1}, desc.GetSortOrder())

	asc := PaginationParams{SortBy: "title", Order: "asc"}
	assert.Equal(t, map[string]int{"title": 1}, asc.GetSortOrder())
}

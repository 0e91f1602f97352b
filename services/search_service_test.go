package services

import (
	"context"
	"testing"

	"ems/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeSearchInput(t *testing.T) {
	assert.Equal(t, "nguyen van an", normalizeSearchInput("  Nguyễn Văn An "))
	assert.Equal(t, "ann lee", normalizeSearchInput("Ann Lee"))
}

func TestCalculateSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, calculateSimilarity("ann lee", "ann lee"), 0.001)
	assert.Less(t, calculateSimilarity("ann lee", "bob tran"), 0.5)
}

func TestSearchFindsCloseName(t *testing.T) {
	db := newTestDB(t)
	employeeService := NewEmployeeService(EmployeeServiceOptions{DB: db})
	searchService := NewSearchService(SearchServiceOptions{DB: db})

	mustCreateEmployee(t, employeeService, "ann@x.com")

	results, err := searchService.Search(context.Background(), "ann le")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "Ann Lee", results[0].Name)
}

func TestSearchEmptyQuery(t *testing.T) {
	db := newTestDB(t)
	searchService := NewSearchService(SearchServiceOptions{DB: db})

	_, err := searchService.Search(context.Background(), "   ")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeRequiredField))
}

func TestSearchNoEmployees(t *testing.T) {
	db := newTestDB(t)
	searchService := NewSearchService(SearchServiceOptions{DB: db})

	results, err := searchService.Search(context.Background(), "ann")
	require.NoError(t, err)
	assert.Empty(t, results)
}

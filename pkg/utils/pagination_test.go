package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paginationContext(target string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestGetPaginationParamsUsesConfiguredDefault(t *testing.T) {
	// The default page size is configuration, not a constant; whatever the
	// caller passes must win when the query omits a limit.
	params := GetPaginationParams(paginationContext("/v1/products"), 20)

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.PageSize)
	assert.Equal(t, 0, params.Offset)
}

func TestGetPaginationParamsReadsCursorAndLimit(t *testing.T) {
	params := GetPaginationParams(paginationContext("/v1/products?cursor=3&limit=5"), 12)

	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 5, params.PageSize)
	assert.Equal(t, 10, params.Offset)
}

func TestGetPaginationParamsClampsOutOfRange(t *testing.T) {
	params := GetPaginationParams(paginationContext("/v1/products?cursor=-1&limit=500"), 12)

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 12, params.PageSize)
}

func TestNewPageMiddlePage(t *testing.T) {
	page := NewPage([]string{"a", "b"}, 25, 2, 10)

	assert.Equal(t, int64(25), page.TotalDocs)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasPrevPage)
	assert.True(t, page.HasNextPage)
	require.NotNil(t, page.PrevPage)
	require.NotNil(t, page.NextPage)
	assert.Equal(t, 1, *page.PrevPage)
	assert.Equal(t, 3, *page.NextPage)
}

func TestNewPageFirstAndLast(t *testing.T) {
	first := NewPage(nil, 25, 1, 10)
	assert.False(t, first.HasPrevPage)
	assert.Nil(t, first.PrevPage)
	assert.True(t, first.HasNextPage)

	last := NewPage(nil, 25, 3, 10)
	assert.True(t, last.HasPrevPage)
	assert.False(t, last.HasNextPage)
	assert.Nil(t, last.NextPage)
}

func TestNewPagePartialLastPage(t *testing.T) {
	page := NewPage(nil, 11, 1, 10)
	assert.Equal(t, 2, page.TotalPages)
}

func TestEmptyPage(t *testing.T) {
	page := EmptyPage(1, 12)

	assert.Equal(t, int64(0), page.TotalDocs)
	assert.Equal(t, 0, page.TotalPages)
	assert.False(t, page.HasPrevPage)
	assert.False(t, page.HasNextPage)
	assert.Empty(t, page.Docs)
}

func TestEmptyPageBeyondFirst(t *testing.T) {
	page := EmptyPage(3, 12)

	assert.True(t, page.HasPrevPage)
	require.NotNil(t, page.PrevPage)
	assert.Equal(t, 2, *page.PrevPage)
	assert.False(t, page.HasNextPage)
}

package utils

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// PaginationParams represents pagination parameters
type PaginationParams struct {
	Page     int
	PageSize int
	Offset   int
}

// GetPaginationParams extracts pagination parameters from request
func GetPaginationParams(c echo.Context, defaultLimit int) PaginationParams {
	page, _ := strconv.Atoi(c.QueryParam("cursor"))
	pageSize, _ := strconv.Atoi(c.QueryParam("limit"))

	if page <= 0 {
		page = 1
	}

	if pageSize <= 0 || pageSize > 100 {
		pageSize = defaultLimit
	}

	offset := (page - 1) * pageSize

	return PaginationParams{
		Page:     page,
		PageSize: pageSize,
		Offset:   offset,
	}
}

// Page is the envelope every paginated endpoint returns.
type Page struct {
	Docs        interface{} `json:"docs"`
	TotalDocs   int64       `json:"totalDocs"`
	Limit       int         `json:"limit"`
	TotalPages  int         `json:"totalPages"`
	Page        int         `json:"page"`
	HasPrevPage bool        `json:"hasPrevPage"`
	HasNextPage bool        `json:"hasNextPage"`
	PrevPage    *int        `json:"prevPage"`
	NextPage    *int        `json:"nextPage"`
}

// NewPage derives the navigation fields from the total count, the current
// page and the page size.
func NewPage(docs interface{}, total int64, page, limit int) Page {
	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}

	p := Page{
		Docs:        docs,
		TotalDocs:   total,
		Limit:       limit,
		TotalPages:  totalPages,
		Page:        page,
		HasPrevPage: page > 1,
		HasNextPage: page < totalPages,
	}

	if p.HasPrevPage {
		prev := page - 1
		p.PrevPage = &prev
	}
	if p.HasNextPage {
		next := page + 1
		p.NextPage = &next
	}

	return p
}

// EmptyPage is returned when an upstream id set is empty. Issuing a second
// query with an empty "in" predicate could match everything instead of
// nothing, so callers short-circuit to this instead.
func EmptyPage(page, limit int) Page {
	p := Page{
		Docs:        []interface{}{},
		TotalDocs:   0,
		Limit:       limit,
		TotalPages:  0,
		Page:        page,
		HasPrevPage: page > 1,
		HasNextPage: false,
	}

	if p.HasPrevPage {
		prev := page - 1
		p.PrevPage = &prev
	}

	return p
}

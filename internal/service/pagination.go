package service

import (
	"math"
	"net/url"
	"strconv"

	"carlookup/internal/response"
)

// PageQuery is the raw pagination input from the query string.
type PageQuery struct {
	Page         int
	Limit        int
	NameContains string
	Year         *int
}

// PaginationService clamps page inputs to configured bounds and builds
// pagination link metadata.
type PaginationService struct {
	DefaultPageSize int
	MaxPageSize     int
}

func NewPaginationService(defaultPageSize, maxPageSize int) *PaginationService {
	return &PaginationService{
		DefaultPageSize: defaultPageSize,
		MaxPageSize:     maxPageSize,
	}
}

// Clamp floors the page at 1, applies the default limit when the input
// limit is 0, and caps the limit at the configured maximum. Filters pass
// through unchanged.
func (s *PaginationService) Clamp(q PageQuery) PageQuery {
	limit := q.Limit
	if limit == 0 {
		limit = s.DefaultPageSize
	}

	return PageQuery{
		Page:         max(1, q.Page),
		Limit:        min(s.MaxPageSize, max(1, limit)),
		NameContains: q.NameContains,
		Year:         q.Year,
	}
}

// BuildPageInfo computes page counts and next/prev links. The requested
// page clamps to the last page when it overshoots; links preserve every
// non-blank extra filter.
func (s *PaginationService) BuildPageInfo(page, limit int, totalItems int64, basePath string, extraFilters map[string]string) *response.PageInfo {
	totalPages := 0
	if totalItems > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(limit)))
	}

	currentPage := 1
	if totalPages > 0 {
		currentPage = min(page, totalPages)
	}

	info := &response.PageInfo{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		Limit:       limit,
	}

	if totalPages > 0 && currentPage < totalPages {
		link := buildPageURL(basePath, currentPage+1, limit, extraFilters)
		info.NextPage = &link
	}
	if currentPage > 1 {
		link := buildPageURL(basePath, currentPage-1, limit, extraFilters)
		info.PrevPage = &link
	}

	return info
}

func buildPageURL(basePath string, page, limit int, extraFilters map[string]string) string {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("limit", strconv.Itoa(limit))

	for key, value := range extraFilters {
		if value != "" {
			params.Set(key, value)
		}
	}

	return basePath + "?" + params.Encode()
}

package handler

import (
	"strconv"

	"carlookup/internal/apperrors"
	"carlookup/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// parseUUIDParam parses a path parameter as a UUID.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, apperrors.NewValidation(apperrors.FieldError{
			Field:   name,
			Message: "Must be a valid UUID",
		})
	}
	return id, nil
}

// parsePageQuery reads page/limit/nameContains (and optionally year) from
// the query string. Out-of-range clamping happens later in the service.
func parsePageQuery(c *gin.Context, withYear bool) (service.PageQuery, error) {
	var query service.PageQuery

	page, err := parseIntQuery(c, "page")
	if err != nil {
		return query, err
	}
	limit, err := parseIntQuery(c, "limit")
	if err != nil {
		return query, err
	}

	query.Page = page
	query.Limit = limit
	query.NameContains = c.Query("nameContains")

	if withYear {
		if raw := c.Query("year"); raw != "" {
			year, err := strconv.Atoi(raw)
			if err != nil {
				return query, apperrors.NewValidation(apperrors.FieldError{
					Field:   "year",
					Message: "Must be an integer",
				})
			}
			query.Year = &year
		}
	}

	return query, nil
}

func parseIntQuery(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.NewValidation(apperrors.FieldError{
			Field:   name,
			Message: "Must be an integer",
		})
	}
	return value, nil
}

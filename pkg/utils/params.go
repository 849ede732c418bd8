package utils

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage    = 1
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// GetPaginationParams reads 1-indexed `page` and `per_page` (or `limit`) query params.
// Invalid values fall back to the defaults.
func GetPaginationParams(c *gin.Context) (int, int) {
	page := DefaultPage
	perPage := DefaultPerPage

	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}

	pp := c.Query("per_page")
	if pp == "" {
		pp = c.Query("limit")
	}
	if pp != "" {
		if v, err := strconv.Atoi(pp); err == nil && v > 0 {
			perPage = v
		}
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	return page, perPage
}

// GetIDParam reads the non-empty `id` path param
func GetIDParam(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		return "", fmt.Errorf("id parameter is required")
	}
	return id, nil
}

// GetBoolQuery reads a boolean query param with a fallback
func GetBoolQuery(c *gin.Context, key string, fallback bool) bool {
	if v := c.Query(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

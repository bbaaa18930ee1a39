package persistence

import (
	"strings"

	"gorm.io/gorm"

	"github.com/gescom/backend/internal/domain/shared"
)

// applyFilter applies pagination and ordering from a shared.Filter.
// OrderBy is checked against the caller's column whitelist; anything
// else falls back to the default order so filter input can never reach
// the SQL text unchecked.
func applyFilter(query *gorm.DB, filter shared.Filter, allowedOrder map[string]bool, defaultOrder string) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" && allowedOrder[filter.OrderBy] {
		direction := "ASC"
		if strings.EqualFold(filter.OrderDir, "desc") {
			direction = "DESC"
		}
		return query.Order(filter.OrderBy + " " + direction)
	}

	if defaultOrder != "" {
		return query.Order(defaultOrder)
	}
	return query
}

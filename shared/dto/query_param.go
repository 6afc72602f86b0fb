package dto

import (
	"frontdesk/shared/constant"
	"strings"
)

// QueryParams controls the ordering of list reads. Lists are never paginated.
type QueryParams struct {
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

func SortBy(column, dir string) QueryParams {
	dir = strings.ToUpper(dir)
	if dir != constant.SortDirAsc && dir != constant.SortDirDesc {
		dir = constant.SortDirAsc
	}

	return QueryParams{SortBy: column, SortDir: dir}
}

// OrderClause renders the ORDER BY fragment, empty when no column is set.
func (q QueryParams) OrderClause() string {
	if q.SortBy == "" {
		return ""
	}

	dir := q.SortDir
	if dir == "" {
		dir = constant.SortDirAsc
	}

	return "ORDER BY " + q.SortBy + " " + dir
}

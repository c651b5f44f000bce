package postgre

import (
	"fmt"
	"strings"

	repo "library-management-system/internal/book/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneBook.
// All non-zero fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneBookOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != 0 {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.ISBN != "" {
		conditions = append(conditions, fmt.Sprintf("isbn = $%d", idx))
		args = append(args, opt.ISBN)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildFilters builds the shared WHERE conditions for listing and counting.
func (r *implRepository) buildFilters(opt repo.ListBooksOptions, idx int) ([]string, []any, int) {
	var conditions []string
	var args []any

	if opt.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", idx))
		args = append(args, opt.Status)
		idx++
	}
	if opt.Search != "" {
		conditions = append(conditions,
			fmt.Sprintf("(title ILIKE $%d OR author ILIKE $%d OR isbn ILIKE $%d)", idx, idx, idx))
		args = append(args, "%"+opt.Search+"%")
		idx++
	}
	return conditions, args, idx
}

// buildCountQuery builds WHERE clause + args for counting Books (no pagination).
func (r *implRepository) buildCountQuery(opt repo.ListBooksOptions) (string, []any) {
	conditions, args, _ := r.buildFilters(opt, 1)
	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListBooks.
func (r *implRepository) buildListQuery(opt repo.ListBooksOptions) (string, []any) {
	var parts []string

	conditions, args, idx := r.buildFilters(opt, 1)
	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "created_at DESC"
	}
	parts = append(parts, fmt.Sprintf("ORDER BY %s", orderBy))

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}

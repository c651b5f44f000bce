package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	repo "library-management-system/internal/member/repository"
	"library-management-system/internal/model"
	"library-management-system/pkg/postgres"
)

const memberColumns = `id, full_name, email, phone, address, role, created_at, updated_at`

// CreateMember inserts a new Member row and returns the created entity.
func (r *implRepository) CreateMember(ctx context.Context, opt repo.CreateMemberOptions) (model.Member, error) {
	query := fmt.Sprintf(`
		INSERT INTO members (full_name, email, phone, address, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING %s`, memberColumns)

	role := opt.Role
	if role == "" {
		role = model.RoleMember
	}

	var m model.Member
	err := sqlx.GetContext(ctx, postgres.ExtFrom(ctx, r.db), &m, query,
		opt.FullName, opt.Email, opt.Phone, opt.Address, role,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateMember"), err)
		return model.Member{}, repo.ErrFailedToInsert
	}
	return m, nil
}

// GetOneMember retrieves a single Member by the provided filters.
// Returns zero-value Member (ID == 0) when not found.
func (r *implRepository) GetOneMember(ctx context.Context, opt repo.GetOneMemberOptions) (model.Member, error) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != 0 {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Email != "" {
		conditions = append(conditions, fmt.Sprintf("email = $%d", idx))
		args = append(args, opt.Email)
	}
	where := "1=1"
	if len(conditions) > 0 {
		where = strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf("SELECT %s FROM members WHERE %s LIMIT 1", memberColumns, where)

	var m model.Member
	err := sqlx.GetContext(ctx, postgres.ExtFrom(ctx, r.db), &m, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Member{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneMember"), err)
		return model.Member{}, repo.ErrFailedToGet
	}
	return m, nil
}

// ListMembers returns a paginated list of Members (newest first) and the total count.
func (r *implRepository) ListMembers(ctx context.Context, opt repo.ListMembersOptions) ([]model.Member, int, error) {
	ext := postgres.ExtFrom(ctx, r.db)

	var conditions []string
	var args []any
	idx := 1
	if opt.Search != "" {
		conditions = append(conditions,
			fmt.Sprintf("(full_name ILIKE $%d OR email ILIKE $%d)", idx, idx))
		args = append(args, "%"+opt.Search+"%")
		idx++
	}
	where := "1=1"
	if len(conditions) > 0 {
		where = strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM members WHERE %s", where)
	var total int
	if err := sqlx.GetContext(ctx, ext, &total, countQuery, args...); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListMembers"), err)
		return nil, 0, repo.ErrFailedToList
	}

	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "created_at DESC"
	}
	query := fmt.Sprintf("SELECT %s FROM members WHERE %s ORDER BY %s", memberColumns, where, orderBy)
	if opt.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", idx)
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", idx)
		args = append(args, opt.Offset)
	}

	var members []model.Member
	if err := sqlx.SelectContext(ctx, ext, &members, query, args...); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMembers"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return members, total, nil
}

// UpdateMember updates a Member by ID and returns the updated entity.
func (r *implRepository) UpdateMember(ctx context.Context, opt repo.UpdateMemberOptions) (model.Member, error) {
	query := fmt.Sprintf(`
		UPDATE members
		SET full_name = $1, email = $2, phone = $3, address = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING %s`, memberColumns)

	var m model.Member
	err := sqlx.GetContext(ctx, postgres.ExtFrom(ctx, r.db), &m, query,
		opt.FullName, opt.Email, opt.Phone, opt.Address, opt.ID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Member{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateMember"), err)
		return model.Member{}, repo.ErrFailedToUpdate
	}
	return m, nil
}

// DeleteMember removes a Member by ID.
func (r *implRepository) DeleteMember(ctx context.Context, id int64) error {
	const query = `DELETE FROM members WHERE id = $1`
	if _, err := postgres.ExtFrom(ctx, r.db).ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteMember"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

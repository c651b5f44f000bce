package repository

import (
	"context"

	"library-management-system/internal/model"
)

// Repository defines all data access methods for the Member entity.
type Repository interface {
	CreateMember(ctx context.Context, opt CreateMemberOptions) (model.Member, error)
	GetOneMember(ctx context.Context, opt GetOneMemberOptions) (model.Member, error)
	ListMembers(ctx context.Context, opt ListMembersOptions) ([]model.Member, int, error)
	UpdateMember(ctx context.Context, opt UpdateMemberOptions) (model.Member, error)
	DeleteMember(ctx context.Context, id int64) error
}

package member

import "context"

// UseCase manages membership records. Credentials and sessions are owned by
// the identity provider, never by this service.
type UseCase interface {
	Create(ctx context.Context, input CreateMemberInput) (CreateMemberOutput, error)
	List(ctx context.Context, input ListMembersInput) (ListMembersOutput, error)
	Detail(ctx context.Context, id int64) (DetailMemberOutput, error)
	Update(ctx context.Context, input UpdateMemberInput) (UpdateMemberOutput, error)
	Delete(ctx context.Context, id int64) error
}

package repository

// CreateMemberOptions holds parameters for inserting a new Member.
type CreateMemberOptions struct {
	FullName string
	Email    string
	Phone    string
	Address  string
	Role     string
}

// GetOneMemberOptions holds filter parameters for fetching a single Member.
// All non-zero fields are applied as AND conditions.
type GetOneMemberOptions struct {
	ID    int64
	Email string
}

// ListMembersOptions holds filter and pagination parameters for listing Members.
type ListMembersOptions struct {
	Search  string
	Limit   int
	Offset  int
	OrderBy string
}

// UpdateMemberOptions holds parameters for updating an existing Member.
type UpdateMemberOptions struct {
	ID       int64
	FullName string
	Email    string
	Phone    string
	Address  string
}

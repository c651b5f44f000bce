package member

import "library-management-system/internal/model"

// --- UseCase Inputs ---

type CreateMemberInput struct {
	FullName string
	Email    string
	Phone    string
	Address  string
	Role     string
}

type ListMembersInput struct {
	Search string
	Limit  int
	Offset int
}

type UpdateMemberInput struct {
	ID       int64
	FullName string
	Email    string
	Phone    string
	Address  string
}

// --- UseCase Outputs ---

type CreateMemberOutput struct {
	Member model.Member
}

type ListMembersOutput struct {
	Members []model.Member
	Total   int
	Limit   int
	Offset  int
}

type DetailMemberOutput struct {
	Member model.Member
}

type UpdateMemberOutput struct {
	Member model.Member
}

package http

import (
	"time"

	"library-management-system/internal/member"
	"library-management-system/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	FullName string `json:"full_name" binding:"required,min=1,max=255"`
	Email    string `json:"email"     binding:"omitempty,email"`
	Phone    string `json:"phone"     binding:"max=32"`
	Address  string `json:"address"   binding:"max=500"`
	Role     string `json:"role"      binding:"omitempty,oneof=member librarian admin"`
}

func (r createReq) toInput() member.CreateMemberInput {
	return member.CreateMemberInput{
		FullName: r.FullName,
		Email:    r.Email,
		Phone:    r.Phone,
		Address:  r.Address,
		Role:     r.Role,
	}
}

// ---

type listReq struct {
	Search string `form:"search"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) toInput() member.ListMembersInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return member.ListMembersInput{
		Search: r.Search,
		Limit:  limit,
		Offset: offset,
	}
}

// ---

type updateReq struct {
	ID       int64  `json:"-"` // populated from URI param
	FullName string `json:"full_name" binding:"omitempty,min=1,max=255"`
	Email    string `json:"email"     binding:"omitempty,email"`
	Phone    string `json:"phone"     binding:"omitempty,max=32"`
	Address  string `json:"address"   binding:"omitempty,max=500"`
}

func (r updateReq) toInput() member.UpdateMemberInput {
	return member.UpdateMemberInput{
		ID:       r.ID,
		FullName: r.FullName,
		Email:    r.Email,
		Phone:    r.Phone,
		Address:  r.Address,
	}
}

// --- Response DTOs ---

type memberResp struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newMemberResp(m model.Member) memberResp {
	return memberResp{
		ID:        m.ID,
		FullName:  m.FullName,
		Email:     m.Email,
		Phone:     m.Phone,
		Address:   m.Address,
		Role:      m.Role,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

type createResp struct {
	Member memberResp `json:"member"`
}

func (h *handler) newCreateResp(out member.CreateMemberOutput) createResp {
	return createResp{Member: newMemberResp(out.Member)}
}

type listResp struct {
	Members []memberResp `json:"members"`
	Total   int          `json:"total"`
	Limit   int          `json:"limit"`
	Offset  int          `json:"offset"`
}

func (h *handler) newListResp(out member.ListMembersOutput) listResp {
	members := make([]memberResp, len(out.Members))
	for i, m := range out.Members {
		members[i] = newMemberResp(m)
	}
	return listResp{
		Members: members,
		Total:   out.Total,
		Limit:   out.Limit,
		Offset:  out.Offset,
	}
}

type detailResp struct {
	Member memberResp `json:"member"`
}

func (h *handler) newDetailResp(out member.DetailMemberOutput) detailResp {
	return detailResp{Member: newMemberResp(out.Member)}
}

type updateResp struct {
	Member memberResp `json:"member"`
}

func (h *handler) newUpdateResp(out member.UpdateMemberOutput) updateResp {
	return updateResp{Member: newMemberResp(out.Member)}
}

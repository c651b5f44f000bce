package usecase

import (
	"context"

	"library-management-system/internal/member"
	repo "library-management-system/internal/member/repository"
)

// Create registers a new member record.
func (uc *implUseCase) Create(ctx context.Context, input member.CreateMemberInput) (member.CreateMemberOutput, error) {
	created, err := uc.repo.CreateMember(ctx, repo.CreateMemberOptions{
		FullName: input.FullName,
		Email:    input.Email,
		Phone:    input.Phone,
		Address:  input.Address,
		Role:     input.Role,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateMember: %v", err)
		return member.CreateMemberOutput{}, err
	}
	return member.CreateMemberOutput{Member: created}, nil
}

// List returns a paginated list of Members.
func (uc *implUseCase) List(ctx context.Context, input member.ListMembersInput) (member.ListMembersOutput, error) {
	members, total, err := uc.repo.ListMembers(ctx, repo.ListMembersOptions{
		Search: input.Search,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListMembers: %v", err)
		return member.ListMembersOutput{}, err
	}

	return member.ListMembersOutput{
		Members: members,
		Total:   total,
		Limit:   input.Limit,
		Offset:  input.Offset,
	}, nil
}

// Detail retrieves a single Member by ID. Returns ErrMemberNotFound when missing.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (member.DetailMemberOutput, error) {
	found, err := uc.repo.GetOneMember(ctx, repo.GetOneMemberOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneMember: %v", err)
		return member.DetailMemberOutput{}, err
	}
	if found.ID == 0 {
		return member.DetailMemberOutput{}, member.ErrMemberNotFound
	}
	return member.DetailMemberOutput{Member: found}, nil
}

// Update modifies contact fields of an existing Member.
func (uc *implUseCase) Update(ctx context.Context, input member.UpdateMemberInput) (member.UpdateMemberOutput, error) {
	existing, err := uc.repo.GetOneMember(ctx, repo.GetOneMemberOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneMember: %v", err)
		return member.UpdateMemberOutput{}, err
	}
	if existing.ID == 0 {
		return member.UpdateMemberOutput{}, member.ErrMemberNotFound
	}

	updated, err := uc.repo.UpdateMember(ctx, repo.UpdateMemberOptions{
		ID:       input.ID,
		FullName: uc.coalesce(input.FullName, existing.FullName),
		Email:    uc.coalesce(input.Email, existing.Email),
		Phone:    uc.coalesce(input.Phone, existing.Phone),
		Address:  uc.coalesce(input.Address, existing.Address),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateMember: %v", err)
		return member.UpdateMemberOutput{}, err
	}
	return member.UpdateMemberOutput{Member: updated}, nil
}

// Delete removes a Member record by ID.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	existing, err := uc.repo.GetOneMember(ctx, repo.GetOneMemberOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneMember: %v", err)
		return err
	}
	if existing.ID == 0 {
		return member.ErrMemberNotFound
	}
	if err := uc.repo.DeleteMember(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteMember: %v", err)
		return err
	}
	return nil
}

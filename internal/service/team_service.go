package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"mimarfolio/internal/cache"
	"mimarfolio/internal/errors"
	"mimarfolio/internal/model"
	"mimarfolio/internal/repository"
)

const teamCachePrefix = "team:"

// CreateTeamMemberInput is the team member creation payload.
type CreateTeamMemberInput struct {
	Name     string `json:"name" validate:"required,min=1"`
	Title    string `json:"title" validate:"required,min=1"`
	Bio      string `json:"bio"`
	Image    string `json:"image"`
	Email    string `json:"email" validate:"omitempty,email"`
	Linkedin string `json:"linkedin" validate:"omitempty,url"`
	IsActive *bool  `json:"isActive"`
}

// UpdateTeamMemberInput is the partial team member update payload.
type UpdateTeamMemberInput struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Title    *string `json:"title" validate:"omitempty,min=1"`
	Bio      *string `json:"bio"`
	Image    *string `json:"image"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Linkedin *string `json:"linkedin" validate:"omitempty,url"`
	IsActive *bool   `json:"isActive"`
}

// TeamService handles team member operations.
type TeamService interface {
	List(ctx context.Context, filter repository.ActiveFilter) ([]model.TeamMember, error)
	Create(ctx context.Context, in CreateTeamMemberInput) (*model.TeamMember, error)
	Update(ctx context.Context, id uint, in UpdateTeamMemberInput) (*model.TeamMember, error)
	Delete(ctx context.Context, id uint) error
}

type teamService struct {
	members repository.TeamMemberRepository
	cache   *cache.Client
}

// NewTeamService creates a new team service.
func NewTeamService(members repository.TeamMemberRepository, cacheClient *cache.Client) TeamService {
	return &teamService{members: members, cache: cacheClient}
}

func (s *teamService) List(ctx context.Context, filter repository.ActiveFilter) ([]model.TeamMember, error) {
	key := fmt.Sprintf("%slist:%v:%d", teamCachePrefix, boolFilter(filter.Active), filter.Limit)

	var cached []model.TeamMember
	if hit, _ := s.cache.GetJSON(ctx, key, &cached); hit {
		return cached, nil
	}

	members, err := s.members.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list team members: %w", err)
	}

	_ = s.cache.SetJSON(ctx, key, members, cache.ListTTL)
	return members, nil
}

func (s *teamService) Create(ctx context.Context, in CreateTeamMemberInput) (*model.TeamMember, error) {
	member := &model.TeamMember{
		Name:     in.Name,
		Title:    in.Title,
		Bio:      in.Bio,
		Image:    in.Image,
		Email:    in.Email,
		Linkedin: in.Linkedin,
		IsActive: true,
	}
	if in.IsActive != nil {
		member.IsActive = *in.IsActive
	}

	if err := s.members.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("create team member: %w", err)
	}

	_ = s.cache.InvalidatePrefix(ctx, teamCachePrefix)
	return member, nil
}

func (s *teamService) Update(ctx context.Context, id uint, in UpdateTeamMemberInput) (*model.TeamMember, error) {
	member, err := s.members.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrTeamMemberNotFound
		}
		return nil, fmt.Errorf("find team member: %w", err)
	}

	if in.Name != nil {
		member.Name = *in.Name
	}
	if in.Title != nil {
		member.Title = *in.Title
	}
	if in.Bio != nil {
		member.Bio = *in.Bio
	}
	if in.Image != nil {
		member.Image = *in.Image
	}
	if in.Email != nil {
		member.Email = *in.Email
	}
	if in.Linkedin != nil {
		member.Linkedin = *in.Linkedin
	}
	if in.IsActive != nil {
		member.IsActive = *in.IsActive
	}

	if err := s.members.Update(ctx, member); err != nil {
		return nil, fmt.Errorf("update team member: %w", err)
	}

	_ = s.cache.InvalidatePrefix(ctx, teamCachePrefix)
	return member, nil
}

func (s *teamService) Delete(ctx context.Context, id uint) error {
	if err := s.members.Delete(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrTeamMemberNotFound
		}
		return fmt.Errorf("delete team member: %w", err)
	}

	_ = s.cache.InvalidatePrefix(ctx, teamCachePrefix)
	return nil
}

package service

import (
	"context"
	"fmt"

	"mimarfolio/internal/repository"
)

// DashboardStats holds the counts shown on the admin dashboard.
type DashboardStats struct {
	Projects       int64 `json:"projects"`
	Team           int64 `json:"team"`
	Testimonials   int64 `json:"testimonials"`
	Messages       int64 `json:"messages"`
	UnreadMessages int64 `json:"unreadMessages"`
}

// StatsService aggregates entity counts for the admin dashboard.
type StatsService interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
}

type statsService struct {
	projects     repository.ProjectRepository
	team         repository.TeamMemberRepository
	testimonials repository.TestimonialRepository
	messages     repository.ContactMessageRepository
}

// NewStatsService creates a new stats service.
func NewStatsService(
	projects repository.ProjectRepository,
	team repository.TeamMemberRepository,
	testimonials repository.TestimonialRepository,
	messages repository.ContactMessageRepository,
) StatsService {
	return &statsService{
		projects:     projects,
		team:         team,
		testimonials: testimonials,
		messages:     messages,
	}
}

func (s *statsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.Projects, err = s.projects.Count(ctx); err != nil {
		return nil, fmt.Errorf("count projects: %w", err)
	}
	if stats.Team, err = s.team.Count(ctx); err != nil {
		return nil, fmt.Errorf("count team members: %w", err)
	}
	if stats.Testimonials, err = s.testimonials.Count(ctx); err != nil {
		return nil, fmt.Errorf("count testimonials: %w", err)
	}
	if stats.Messages, err = s.messages.Count(ctx); err != nil {
		return nil, fmt.Errorf("count messages: %w", err)
	}
	if stats.UnreadMessages, err = s.messages.CountUnread(ctx); err != nil {
		return nil, fmt.Errorf("count unread messages: %w", err)
	}

	return stats, nil
}

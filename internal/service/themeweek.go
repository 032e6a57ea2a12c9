package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/themeweek/showcase-api/internal/domain"
	"github.com/themeweek/showcase-api/internal/repository"
)

var (
	ErrThemeWeekNotFound = repository.ErrThemeWeekNotFound
	ErrInvalidDateRange  = errors.New("end_date must not be before start_date")
)

type ThemeWeekRepository interface {
	Create(ctx context.Context, week domain.ThemeWeek) (domain.ThemeWeek, error)
	FindAll(ctx context.Context) ([]domain.ThemeWeek, error)
	FindAllWithVideoCounts(ctx context.Context) ([]domain.ThemeWeek, error)
	FindByID(ctx context.Context, id string) (domain.ThemeWeek, error)
	Update(ctx context.Context, week domain.ThemeWeek) (domain.ThemeWeek, error)
	Delete(ctx context.Context, id string) error
}

type ThemeWeekVideoRepository interface {
	FindByThemeWeekID(ctx context.Context, themeWeekID string) ([]domain.Video, error)
}

// ThemeWeekUpdate is a partial update: nil fields keep their stored values.
type ThemeWeekUpdate struct {
	Title       *string
	Description *string
	ResultURL   *string
	ImageURL    *string
	StartDate   *time.Time
	EndDate     *time.Time
}

type ThemeWeekService struct {
	repo      ThemeWeekRepository
	videoRepo ThemeWeekVideoRepository
}

func NewThemeWeekService(repo ThemeWeekRepository, videoRepo ThemeWeekVideoRepository) *ThemeWeekService {
	return &ThemeWeekService{
		repo:      repo,
		videoRepo: videoRepo,
	}
}

func (s *ThemeWeekService) ListThemeWeeks(ctx context.Context) ([]domain.ThemeWeek, error) {
	weeks, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return weeks, nil
}

func (s *ThemeWeekService) ListThemeWeeksWithCounts(ctx context.Context) ([]domain.ThemeWeek, error) {
	weeks, err := s.repo.FindAllWithVideoCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllWithVideoCounts -> %w", err)
	}

	return weeks, nil
}

func (s *ThemeWeekService) GetThemeWeek(ctx context.Context, id string) (domain.ThemeWeek, error) {
	week, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.ThemeWeek{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return week, nil
}

// GetThemeWeekWithVideos returns the week and its full video list for the
// public detail page.
func (s *ThemeWeekService) GetThemeWeekWithVideos(ctx context.Context, id string) (domain.ThemeWeek, []domain.Video, error) {
	week, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.ThemeWeek{}, nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	videos, err := s.videoRepo.FindByThemeWeekID(ctx, id)
	if err != nil {
		return domain.ThemeWeek{}, nil, fmt.Errorf("s.videoRepo.FindByThemeWeekID -> %w", err)
	}

	return week, videos, nil
}

func (s *ThemeWeekService) CreateThemeWeek(ctx context.Context, week domain.ThemeWeek) (domain.ThemeWeek, error) {
	created, err := s.repo.Create(ctx, week)
	if err != nil {
		return domain.ThemeWeek{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ThemeWeekService) UpdateThemeWeek(ctx context.Context, id string, update ThemeWeekUpdate) (domain.ThemeWeek, error) {
	week, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.ThemeWeek{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if update.Title != nil {
		week.Title = *update.Title
	}
	if update.Description != nil {
		week.Description = *update.Description
	}
	if update.ResultURL != nil {
		week.ResultURL = *update.ResultURL
	}
	if update.ImageURL != nil {
		week.ImageURL = *update.ImageURL
	}
	if update.StartDate != nil {
		week.StartDate = *update.StartDate
	}
	if update.EndDate != nil {
		week.EndDate = *update.EndDate
	}

	// Request validation only sees the fields present in the body, so a
	// partial update could invert the stored range. Check the merged dates.
	if week.EndDate.Before(week.StartDate) {
		return domain.ThemeWeek{}, ErrInvalidDateRange
	}

	updated, err := s.repo.Update(ctx, week)
	if err != nil {
		return domain.ThemeWeek{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *ThemeWeekService) DeleteThemeWeek(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/themeweek/showcase-api/internal/domain"
	"github.com/themeweek/showcase-api/internal/repository/dao"
)

var ErrThemeWeekNotFound = dao.ErrThemeWeekNotFound

type ThemeWeekDAO interface {
	Insert(ctx context.Context, week dao.ThemeWeek) (dao.ThemeWeek, error)
	FindAll(ctx context.Context) ([]dao.ThemeWeek, error)
	FindAllWithVideoCounts(ctx context.Context) ([]dao.ThemeWeekWithCount, error)
	FindByID(ctx context.Context, id string) (dao.ThemeWeek, error)
	Update(ctx context.Context, week dao.ThemeWeek) (dao.ThemeWeek, error)
	Delete(ctx context.Context, id string) error
}

type ThemeWeekRepository struct {
	dao ThemeWeekDAO
}

func NewThemeWeekRepository(dao ThemeWeekDAO) *ThemeWeekRepository {
	return &ThemeWeekRepository{
		dao: dao,
	}
}

func (r *ThemeWeekRepository) Create(ctx context.Context, week domain.ThemeWeek) (domain.ThemeWeek, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(week))
	if err != nil {
		return domain.ThemeWeek{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ThemeWeekRepository) FindAll(ctx context.Context) ([]domain.ThemeWeek, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	weeks := make([]domain.ThemeWeek, 0, len(found))
	for _, w := range found {
		weeks = append(weeks, r.daoToDomain(w))
	}

	return weeks, nil
}

func (r *ThemeWeekRepository) FindAllWithVideoCounts(ctx context.Context) ([]domain.ThemeWeek, error) {
	found, err := r.dao.FindAllWithVideoCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllWithVideoCounts -> %w", err)
	}

	weeks := make([]domain.ThemeWeek, 0, len(found))
	for _, w := range found {
		week := r.daoToDomain(w.ThemeWeek)
		week.VideosCount = w.VideosCount
		weeks = append(weeks, week)
	}

	return weeks, nil
}

func (r *ThemeWeekRepository) FindByID(ctx context.Context, id string) (domain.ThemeWeek, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.ThemeWeek{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ThemeWeekRepository) Update(ctx context.Context, week domain.ThemeWeek) (domain.ThemeWeek, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(week))
	if err != nil {
		return domain.ThemeWeek{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ThemeWeekRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ThemeWeekRepository) domainToDAO(w domain.ThemeWeek) dao.ThemeWeek {
	return dao.ThemeWeek{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		ResultURL:   w.ResultURL,
		ImageURL:    w.ImageURL,
		StartDate:   w.StartDate,
		EndDate:     w.EndDate,
		CreatedAt:   w.CreatedAt,
	}
}

func (r *ThemeWeekRepository) daoToDomain(w dao.ThemeWeek) domain.ThemeWeek {
	return domain.ThemeWeek{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		ResultURL:   w.ResultURL,
		ImageURL:    w.ImageURL,
		StartDate:   w.StartDate,
		EndDate:     w.EndDate,
		CreatedAt:   w.CreatedAt,
	}
}

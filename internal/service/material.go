package service

import (
	"context"
	"fmt"

	"github.com/themeweek/showcase-api/internal/domain"
	"github.com/themeweek/showcase-api/internal/repository"
)

var ErrMaterialNotFound = repository.ErrMaterialNotFound

type MaterialRepository interface {
	Create(ctx context.Context, material domain.Material) (domain.Material, error)
	FindAll(ctx context.Context) ([]domain.Material, error)
	FindByID(ctx context.Context, id string) (domain.Material, error)
	Update(ctx context.Context, material domain.Material) (domain.Material, error)
	Delete(ctx context.Context, id string) error
}

// MaterialUpdate is a partial update: nil fields keep their stored values.
type MaterialUpdate struct {
	Title        *string
	Description  *string
	StudentName  *string
	MaterialType *string
	URL          *string
	IsWinner     *bool
	ThemeWeekID  *string
}

type MaterialService struct {
	repo MaterialRepository
}

func NewMaterialService(repo MaterialRepository) *MaterialService {
	return &MaterialService{
		repo: repo,
	}
}

func (s *MaterialService) ListMaterials(ctx context.Context) ([]domain.Material, error) {
	materials, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return materials, nil
}

func (s *MaterialService) GetMaterial(ctx context.Context, id string) (domain.Material, error) {
	material, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Material{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return material, nil
}

func (s *MaterialService) CreateMaterial(ctx context.Context, material domain.Material) (domain.Material, error) {
	created, err := s.repo.Create(ctx, material)
	if err != nil {
		return domain.Material{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *MaterialService) UpdateMaterial(ctx context.Context, id string, update MaterialUpdate) (domain.Material, error) {
	material, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Material{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if update.Title != nil {
		material.Title = *update.Title
	}
	if update.Description != nil {
		material.Description = *update.Description
	}
	if update.StudentName != nil {
		material.StudentName = *update.StudentName
	}
	if update.MaterialType != nil {
		material.MaterialType = *update.MaterialType
	}
	if update.URL != nil {
		material.URL = *update.URL
	}
	if update.IsWinner != nil {
		material.IsWinner = *update.IsWinner
	}
	if update.ThemeWeekID != nil {
		material.ThemeWeekID = *update.ThemeWeekID
	}

	updated, err := s.repo.Update(ctx, material)
	if err != nil {
		return domain.Material{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *MaterialService) DeleteMaterial(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

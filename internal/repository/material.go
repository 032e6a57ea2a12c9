package repository

import (
	"context"
	"fmt"

	"github.com/themeweek/showcase-api/internal/domain"
	"github.com/themeweek/showcase-api/internal/repository/dao"
)

var ErrMaterialNotFound = dao.ErrMaterialNotFound

type MaterialDAO interface {
	Insert(ctx context.Context, material dao.Material) (dao.Material, error)
	FindAll(ctx context.Context) ([]dao.Material, error)
	FindByID(ctx context.Context, id string) (dao.Material, error)
	Update(ctx context.Context, material dao.Material) (dao.Material, error)
	Delete(ctx context.Context, id string) error
}

type MaterialRepository struct {
	dao MaterialDAO
}

func NewMaterialRepository(dao MaterialDAO) *MaterialRepository {
	return &MaterialRepository{
		dao: dao,
	}
}

func (r *MaterialRepository) Create(ctx context.Context, material domain.Material) (domain.Material, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(material))
	if err != nil {
		return domain.Material{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *MaterialRepository) FindAll(ctx context.Context) ([]domain.Material, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	materials := make([]domain.Material, 0, len(found))
	for _, m := range found {
		materials = append(materials, r.daoToDomain(m))
	}

	return materials, nil
}

func (r *MaterialRepository) FindByID(ctx context.Context, id string) (domain.Material, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Material{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *MaterialRepository) Update(ctx context.Context, material domain.Material) (domain.Material, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(material))
	if err != nil {
		return domain.Material{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *MaterialRepository) Delete(ctx context.Context, id string) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *MaterialRepository) domainToDAO(m domain.Material) dao.Material {
	return dao.Material{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		StudentName:  m.StudentName,
		MaterialType: m.MaterialType,
		URL:          m.URL,
		IsWinner:     m.IsWinner,
		ThemeWeekID:  m.ThemeWeekID,
		CreatedAt:    m.CreatedAt,
	}
}

func (r *MaterialRepository) daoToDomain(m dao.Material) domain.Material {
	return domain.Material{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		StudentName:  m.StudentName,
		MaterialType: m.MaterialType,
		URL:          m.URL,
		IsWinner:     m.IsWinner,
		ThemeWeekID:  m.ThemeWeekID,
		CreatedAt:    m.CreatedAt,
	}
}

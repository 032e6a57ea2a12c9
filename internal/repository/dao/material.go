package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrMaterialNotFound = errors.New("material not found")

type Material struct {
	ID string `gorm:"type:uuid;primaryKey"`

	Title        string `gorm:"not null"`
	Description  string
	StudentName  string
	MaterialType string `gorm:"not null"`
	URL          string `gorm:"not null"`
	IsWinner     bool   `gorm:"not null;default:false"`
	ThemeWeekID  string `gorm:"type:uuid;not null"`

	ThemeWeek ThemeWeek `gorm:"foreignKey:ThemeWeekID;constraint:OnDelete:RESTRICT"`

	CreatedAt time.Time `gorm:"not null"`
}

func (m *Material) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	return nil
}

type MaterialDAO struct {
	db *gorm.DB
}

func NewMaterialDAO(db *gorm.DB) *MaterialDAO {
	return &MaterialDAO{
		db: db,
	}
}

func (d *MaterialDAO) Insert(ctx context.Context, material Material) (Material, error) {
	result := d.db.WithContext(ctx).Create(&material)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return Material{}, ErrThemeWeekNotFound
		}

		return Material{}, result.Error
	}

	return material, nil
}

func (d *MaterialDAO) FindAll(ctx context.Context) ([]Material, error) {
	var materials []Material

	result := d.db.WithContext(ctx).Order("created_at").Find(&materials)
	if result.Error != nil {
		return nil, result.Error
	}

	return materials, nil
}

func (d *MaterialDAO) FindByID(ctx context.Context, id string) (Material, error) {
	if !isUUID(id) {
		return Material{}, ErrMaterialNotFound
	}

	var material Material

	result := d.db.WithContext(ctx).First(&material, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Material{}, ErrMaterialNotFound
		}

		return Material{}, result.Error
	}

	return material, nil
}

func (d *MaterialDAO) Update(ctx context.Context, material Material) (Material, error) {
	result := d.db.WithContext(ctx).Save(&material)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return Material{}, ErrThemeWeekNotFound
		}

		return Material{}, result.Error
	}

	return material, nil
}

func (d *MaterialDAO) Delete(ctx context.Context, id string) error {
	if !isUUID(id) {
		return ErrMaterialNotFound
	}

	result := d.db.WithContext(ctx).Delete(&Material{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMaterialNotFound
	}

	return nil
}

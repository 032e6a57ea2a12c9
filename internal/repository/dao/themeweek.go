package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrThemeWeekNotFound = errors.New("theme week not found")

type ThemeWeek struct {
	ID string `gorm:"type:uuid;primaryKey"`

	Title       string `gorm:"not null"`
	Description string
	ResultURL   string
	ImageURL    string
	StartDate   time.Time `gorm:"not null"`
	EndDate     time.Time `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
}

func (w *ThemeWeek) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}

	return nil
}

// ThemeWeekWithCount carries the computed video count for list responses.
type ThemeWeekWithCount struct {
	ThemeWeek
	VideosCount int
}

type ThemeWeekDAO struct {
	db *gorm.DB
}

func NewThemeWeekDAO(db *gorm.DB) *ThemeWeekDAO {
	return &ThemeWeekDAO{
		db: db,
	}
}

func (d *ThemeWeekDAO) Insert(ctx context.Context, week ThemeWeek) (ThemeWeek, error) {
	result := d.db.WithContext(ctx).Create(&week)
	if result.Error != nil {
		return ThemeWeek{}, result.Error
	}

	return week, nil
}

func (d *ThemeWeekDAO) FindAll(ctx context.Context) ([]ThemeWeek, error) {
	var weeks []ThemeWeek

	result := d.db.WithContext(ctx).Order("start_date desc").Find(&weeks)
	if result.Error != nil {
		return nil, result.Error
	}

	return weeks, nil
}

func (d *ThemeWeekDAO) FindAllWithVideoCounts(ctx context.Context) ([]ThemeWeekWithCount, error) {
	var weeks []ThemeWeekWithCount

	result := d.db.WithContext(ctx).
		Model(&ThemeWeek{}).
		Select("theme_weeks.*, count(videos.id) as videos_count").
		Joins("LEFT JOIN videos ON videos.theme_week_id = theme_weeks.id").
		Group("theme_weeks.id").
		Order("theme_weeks.start_date desc").
		Scan(&weeks)
	if result.Error != nil {
		return nil, result.Error
	}

	return weeks, nil
}

func (d *ThemeWeekDAO) FindByID(ctx context.Context, id string) (ThemeWeek, error) {
	if !isUUID(id) {
		return ThemeWeek{}, ErrThemeWeekNotFound
	}

	var week ThemeWeek

	result := d.db.WithContext(ctx).First(&week, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ThemeWeek{}, ErrThemeWeekNotFound
		}

		return ThemeWeek{}, result.Error
	}

	return week, nil
}

func (d *ThemeWeekDAO) Update(ctx context.Context, week ThemeWeek) (ThemeWeek, error) {
	result := d.db.WithContext(ctx).Save(&week)
	if result.Error != nil {
		return ThemeWeek{}, result.Error
	}

	return week, nil
}

// Delete is blocked while videos or materials still reference the week.
func (d *ThemeWeekDAO) Delete(ctx context.Context, id string) error {
	if !isUUID(id) {
		return ErrThemeWeekNotFound
	}

	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var videos int64
		if err := tx.Model(&Video{}).Where("theme_week_id = ?", id).Count(&videos).Error; err != nil {
			return err
		}
		if videos > 0 {
			return &ReferencedError{Entity: "theme week", ReferencedBy: "videos"}
		}

		var materials int64
		if err := tx.Model(&Material{}).Where("theme_week_id = ?", id).Count(&materials).Error; err != nil {
			return err
		}
		if materials > 0 {
			return &ReferencedError{Entity: "theme week", ReferencedBy: "materials"}
		}

		result := tx.Delete(&ThemeWeek{}, "id = ?", id)
		if result.Error != nil {
			if isForeignKeyViolation(result.Error) {
				return &ReferencedError{Entity: "theme week", ReferencedBy: "other records"}
			}

			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrThemeWeekNotFound
		}

		return nil
	})
}

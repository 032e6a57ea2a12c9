package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrVideoNotFound = errors.New("video not found")

// Video rows are created two ways: members submit with UserID set from their
// token, admins enter rows with a free-text StudentName. Both columns are
// nullable and either may be present.
type Video struct {
	ID string `gorm:"type:uuid;primaryKey"`

	Title       string `gorm:"not null"`
	YoutubeURL  string `gorm:"not null"`
	Description string
	StudentName string
	UserID      *string `gorm:"type:uuid"`
	ThemeWeekID string  `gorm:"type:uuid;not null"`

	User      *User     `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	ThemeWeek ThemeWeek `gorm:"foreignKey:ThemeWeekID;constraint:OnDelete:RESTRICT"`

	CreatedAt time.Time `gorm:"not null"`
}

func (v *Video) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}

	return nil
}

// VideoWithMeta carries the computed author username and vote count for
// public list responses.
type VideoWithMeta struct {
	Video
	AuthorUsername string
	VotesCount     int
}

type VideoDAO struct {
	db *gorm.DB
}

func NewVideoDAO(db *gorm.DB) *VideoDAO {
	return &VideoDAO{
		db: db,
	}
}

func (d *VideoDAO) Insert(ctx context.Context, video Video) (Video, error) {
	result := d.db.WithContext(ctx).Create(&video)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return Video{}, ErrThemeWeekNotFound
		}

		return Video{}, result.Error
	}

	return video, nil
}

func (d *VideoDAO) FindAll(ctx context.Context) ([]Video, error) {
	var videos []Video

	result := d.db.WithContext(ctx).Order("created_at").Find(&videos)
	if result.Error != nil {
		return nil, result.Error
	}

	return videos, nil
}

// FindAllWithMeta lists videos with their resolved author username and vote
// count, optionally filtered to one theme week.
func (d *VideoDAO) FindAllWithMeta(ctx context.Context, themeWeekID string) ([]VideoWithMeta, error) {
	var videos []VideoWithMeta

	// A malformed filter value cannot match any week, so it yields an empty
	// list rather than a uuid cast error.
	if themeWeekID != "" && !isUUID(themeWeekID) {
		return []VideoWithMeta{}, nil
	}

	query := d.db.WithContext(ctx).
		Model(&Video{}).
		Select("videos.*, users.username as author_username, count(votes.id) as votes_count").
		Joins("LEFT JOIN users ON users.id = videos.user_id").
		Joins("LEFT JOIN votes ON votes.video_id = videos.id").
		Group("videos.id, users.username").
		Order("videos.created_at")

	if themeWeekID != "" {
		query = query.Where("videos.theme_week_id = ?", themeWeekID)
	}

	result := query.Scan(&videos)
	if result.Error != nil {
		return nil, result.Error
	}

	return videos, nil
}

func (d *VideoDAO) FindByThemeWeekID(ctx context.Context, themeWeekID string) ([]Video, error) {
	var videos []Video

	result := d.db.WithContext(ctx).
		Where("theme_week_id = ?", themeWeekID).
		Order("created_at").
		Find(&videos)
	if result.Error != nil {
		return nil, result.Error
	}

	return videos, nil
}

func (d *VideoDAO) FindByID(ctx context.Context, id string) (Video, error) {
	if !isUUID(id) {
		return Video{}, ErrVideoNotFound
	}

	var video Video

	result := d.db.WithContext(ctx).First(&video, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Video{}, ErrVideoNotFound
		}

		return Video{}, result.Error
	}

	return video, nil
}

func (d *VideoDAO) Update(ctx context.Context, video Video) (Video, error) {
	result := d.db.WithContext(ctx).Save(&video)
	if result.Error != nil {
		if isForeignKeyViolation(result.Error) {
			return Video{}, ErrThemeWeekNotFound
		}

		return Video{}, result.Error
	}

	return video, nil
}

// Delete removes the video and its votes in one transaction. Votes carry no
// meaning without their video, so this is the one cascading delete.
func (d *VideoDAO) Delete(ctx context.Context, id string) error {
	if !isUUID(id) {
		return ErrVideoNotFound
	}

	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&Vote{}, "video_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Delete(&Video{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrVideoNotFound
		}

		return nil
	})
}

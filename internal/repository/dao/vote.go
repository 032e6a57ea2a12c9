package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrAlreadyVoted = errors.New("already voted for this video")

type Vote struct {
	ID string `gorm:"type:uuid;primaryKey"`

	UserID  string `gorm:"type:uuid;not null;uniqueIndex:idx_votes_user_video"`
	VideoID string `gorm:"type:uuid;not null;uniqueIndex:idx_votes_user_video"`

	User  User  `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	Video Video `gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `gorm:"not null"`
}

func (v *Vote) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}

	return nil
}

type VoteDAO struct {
	db *gorm.DB
}

func NewVoteDAO(db *gorm.DB) *VoteDAO {
	return &VoteDAO{
		db: db,
	}
}

// Insert relies on the composite unique index as the authoritative duplicate
// guard. Concurrent inserts for the same (user, video) pair lose the race
// here, not in application code.
func (d *VoteDAO) Insert(ctx context.Context, vote Vote) (Vote, error) {
	if !isUUID(vote.VideoID) {
		return Vote{}, ErrVideoNotFound
	}

	result := d.db.WithContext(ctx).Create(&vote)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "idx_votes_user_video") {
			return Vote{}, ErrAlreadyVoted
		}
		if isForeignKeyViolation(result.Error) {
			return Vote{}, ErrVideoNotFound
		}

		return Vote{}, result.Error
	}

	return vote, nil
}

func (d *VoteDAO) Exists(ctx context.Context, userID, videoID string) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).
		Model(&Vote{}).
		Where("user_id = ? AND video_id = ?", userID, videoID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrUsernameExists = errors.New("username already exists")
	ErrUserNotFound   = errors.New("user not found")
)

type User struct {
	ID string `gorm:"type:uuid;primaryKey"`

	Username     string `gorm:"unique;not null"`
	PasswordHash string `gorm:"not null"`
	IsAdmin      bool   `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}

	return nil
}

type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{
		db: db,
	}
}

func (d *UserDAO) Insert(ctx context.Context, user User) (User, error) {
	result := d.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "uni_users_username") {
			return User{}, ErrUsernameExists
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindAll(ctx context.Context) ([]User, error) {
	var users []User

	result := d.db.WithContext(ctx).Order("created_at").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}

	return users, nil
}

func (d *UserDAO) FindByID(ctx context.Context, id string) (User, error) {
	if !isUUID(id) {
		return User{}, ErrUserNotFound
	}

	var user User

	result := d.db.WithContext(ctx).First(&user, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByUsername(ctx context.Context, username string) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, "username = ?", username)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) Update(ctx context.Context, user User) (User, error) {
	result := d.db.WithContext(ctx).Save(&user)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "uni_users_username") {
			return User{}, ErrUsernameExists
		}

		return User{}, result.Error
	}

	return user, nil
}

// Delete refuses to remove a user that still owns videos or votes. The
// RESTRICT foreign keys are the backstop for races between the count checks
// and the delete.
func (d *UserDAO) Delete(ctx context.Context, id string) error {
	if !isUUID(id) {
		return ErrUserNotFound
	}

	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var videos int64
		if err := tx.Model(&Video{}).Where("user_id = ?", id).Count(&videos).Error; err != nil {
			return err
		}
		if videos > 0 {
			return &ReferencedError{Entity: "user", ReferencedBy: "videos"}
		}

		var votes int64
		if err := tx.Model(&Vote{}).Where("user_id = ?", id).Count(&votes).Error; err != nil {
			return err
		}
		if votes > 0 {
			return &ReferencedError{Entity: "user", ReferencedBy: "votes"}
		}

		result := tx.Delete(&User{}, "id = ?", id)
		if result.Error != nil {
			if isForeignKeyViolation(result.Error) {
				return &ReferencedError{Entity: "user", ReferencedBy: "other records"}
			}

			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrUserNotFound
		}

		return nil
	})
}

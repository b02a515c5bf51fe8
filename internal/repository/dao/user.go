package dao

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	Model

	Name     string `gorm:"not null"`
	Email    string `gorm:"uniqueIndex:idx_users_email;not null"`
	Password string `gorm:"not null"`
	Role     string `gorm:"not null"` // "ADMIN" or "AGENT"
	Active   bool   `gorm:"not null"`
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
		if isUniqueViolation(result.Error, constraintUsersEmail) {
			return User{}, ErrUserEmailExists
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindAll(ctx context.Context) ([]User, error) {
	var users []User

	result := d.db.WithContext(ctx).Order("created_at DESC").Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}

	return users, nil
}

func (d *UserDAO) FindByID(ctx context.Context, id uuid.UUID) (User, error) {
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

func (d *UserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var user User

	result := d.db.WithContext(ctx).First(&user, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return User{}, ErrUserNotFound
		}

		return User{}, result.Error
	}

	return user, nil
}

func (d *UserDAO) FindByRole(ctx context.Context, role string) ([]User, error) {
	var users []User

	result := d.db.WithContext(ctx).Where("role = ?", role).Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}

	return users, nil
}

func (d *UserDAO) Update(ctx context.Context, id uuid.UUID, updates map[string]any) (User, error) {
	if len(updates) > 0 {
		result := d.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			if isUniqueViolation(result.Error, constraintUsersEmail) {
				return User{}, ErrUserEmailExists
			}

			return User{}, result.Error
		}
		if result.RowsAffected == 0 {
			return User{}, ErrUserNotFound
		}
	}

	return d.FindByID(ctx, id)
}

func (d *UserDAO) Delete(ctx context.Context, id uuid.UUID) error {
	result := d.db.WithContext(ctx).Delete(&User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

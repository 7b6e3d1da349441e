package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gopherblog/internal/model"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *model.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("create user failed: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by id failed: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by email failed: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) GetByUsername(username string) (*model.User, error) {
	var user model.User
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query user by username failed: %w", err)
	}
	return &user, nil
}

// UpdateFields applies a partial column update keyed by column name.
func (r *UserRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	if err := r.db.Model(&model.User{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return fmt.Errorf("update user failed: %w", err)
	}
	return nil
}

// ReplaceProfile overwrites all profile columns, clearing any that are
// zero-valued in the given profile.
func (r *UserRepository) ReplaceProfile(id uint, profile model.Profile) error {
	fields := map[string]interface{}{
		"profile_handle":  profile.Handle,
		"profile_bio":     profile.Bio,
		"profile_age":     profile.Age,
		"profile_phone":   profile.Phone,
		"profile_country": profile.Country,
	}
	if err := r.db.Model(&model.User{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return fmt.Errorf("replace profile failed: %w", err)
	}
	return nil
}

func (r *UserRepository) DeleteByID(id uint) (bool, error) {
	result := r.db.Delete(&model.User{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("delete user failed: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

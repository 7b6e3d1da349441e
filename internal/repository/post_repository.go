package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"gopherblog/internal/model"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(post *model.Post) error {
	if err := r.db.Create(post).Error; err != nil {
		return fmt.Errorf("create post failed: %w", err)
	}
	return nil
}

func (r *PostRepository) List() ([]model.Post, error) {
	var posts []model.Post
	if err := r.db.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("list posts failed: %w", err)
	}
	return posts, nil
}

func (r *PostRepository) GetByID(id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query post by id failed: %w", err)
	}
	return &post, nil
}

// likeEscaper neutralizes LIKE metacharacters so a query such as
// "100%" matches literally instead of acting as a wildcard.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search matches content by case-insensitive substring and returns one
// page of results plus the total match count.
func (r *PostRepository) Search(query string, offset, limit int) ([]model.Post, int64, error) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"
	tx := r.db.Model(&model.Post{}).Where("LOWER(content) LIKE ?", pattern)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count posts failed: %w", err)
	}

	var posts []model.Post
	if err := tx.Order("created_at DESC").Offset(offset).Limit(limit).Find(&posts).Error; err != nil {
		return nil, 0, fmt.Errorf("search posts failed: %w", err)
	}
	return posts, total, nil
}

func (r *PostRepository) UpdateContent(post *model.Post, content string) error {
	if err := r.db.Model(post).Update("content", content).Error; err != nil {
		return fmt.Errorf("update post failed: %w", err)
	}
	return nil
}

// DeleteByIDAndUserID removes the post only when the id and owner
// match in the same statement, so a non-owner cannot race past the
// ownership check.
func (r *PostRepository) DeleteByIDAndUserID(id, userID uint) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Post{})
	if result.Error != nil {
		return false, fmt.Errorf("delete post failed: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *PostRepository) DeleteByUserID(userID uint) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&model.Post{}).Error; err != nil {
		return fmt.Errorf("delete posts by user failed: %w", err)
	}
	return nil
}

package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gopherblog/internal/model"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(comment *model.Comment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return fmt.Errorf("create comment failed: %w", err)
	}
	return nil
}

func (r *CommentRepository) ListByPostID(postID uint) ([]model.Comment, error) {
	var comments []model.Comment
	if err := r.db.Where("post_id = ?", postID).Order("created_at ASC").Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("list comments failed: %w", err)
	}
	return comments, nil
}

func (r *CommentRepository) GetByIDAndUserID(id, userID uint) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query comment failed: %w", err)
	}
	return &comment, nil
}

// UpdateByIDAndUserID rewrites the comment content in a single
// owner-filtered statement.
func (r *CommentRepository) UpdateByIDAndUserID(id, userID uint, content string) error {
	result := r.db.Model(&model.Comment{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("content", content)
	if result.Error != nil {
		return fmt.Errorf("update comment failed: %w", result.Error)
	}
	return nil
}

func (r *CommentRepository) DeleteByIDAndUserID(id, userID uint) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&model.Comment{})
	if result.Error != nil {
		return false, fmt.Errorf("delete comment failed: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

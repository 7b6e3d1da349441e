package app

import (
	"context"
	"time"

	"gopherblog/internal/model"
)

// UserStore is the persistence surface the services need for accounts.
type UserStore interface {
	Create(user *model.User) error
	GetByID(id uint) (*model.User, error)
	GetByEmail(email string) (*model.User, error)
	GetByUsername(username string) (*model.User, error)
	UpdateFields(id uint, fields map[string]interface{}) error
	ReplaceProfile(id uint, profile model.Profile) error
	DeleteByID(id uint) (bool, error)
}

type PostStore interface {
	Create(post *model.Post) error
	List() ([]model.Post, error)
	GetByID(id uint) (*model.Post, error)
	Search(query string, offset, limit int) ([]model.Post, int64, error)
	UpdateContent(post *model.Post, content string) error
	DeleteByIDAndUserID(id, userID uint) (bool, error)
	DeleteByUserID(userID uint) error
}

type CommentStore interface {
	Create(comment *model.Comment) error
	ListByPostID(postID uint) ([]model.Comment, error)
	GetByIDAndUserID(id, userID uint) (*model.Comment, error)
	UpdateByIDAndUserID(id, userID uint, content string) error
	DeleteByIDAndUserID(id, userID uint) (bool, error)
}

// TokenRevoker invalidates session tokens ahead of their expiry.
type TokenRevoker interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

package app

import (
	"errors"
	"strings"
	"unicode/utf8"

	"gopherblog/internal/model"
)

var (
	ErrContentLength = errors.New("content must be between 1-280 characters")
	ErrPostNotFound  = errors.New("post not found")
	ErrNotPostOwner  = errors.New("you are not authorized to edit this post")
)

type PostService struct {
	posts PostStore
	users UserStore
}

type CreatePostInput struct {
	UserID   uint
	Username string
	Content  string
}

type SearchInput struct {
	Query string
	Page  int
	Limit int
}

type SearchResult struct {
	Total int64        `json:"total"`
	Page  int          `json:"page"`
	Limit int          `json:"limit"`
	Posts []model.Post `json:"posts"`
}

func NewPostService(posts PostStore, users UserStore) *PostService {
	return &PostService{posts: posts, users: users}
}

func (s *PostService) Create(input CreatePostInput) (*model.Post, error) {
	if input.UserID == 0 {
		return nil, ErrInvalidInput
	}
	if n := utf8.RuneCountInString(input.Content); n == 0 || n > model.MaxContentLength {
		return nil, ErrContentLength
	}

	post := &model.Post{
		Content:  input.Content,
		UserID:   input.UserID,
		Username: input.Username,
	}
	if err := s.posts.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) List() ([]model.Post, error) {
	return s.posts.List()
}

// Get returns one post with the owner's current username resolved, so
// a rename shows through even though posts denormalize the name.
func (s *PostService) Get(id uint) (*model.Post, error) {
	if id == 0 {
		return nil, ErrInvalidInput
	}
	post, err := s.posts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	owner, err := s.users.GetByID(post.UserID)
	if err != nil {
		return nil, err
	}
	if owner != nil {
		post.Username = owner.Username
	}
	return post, nil
}

func (s *PostService) Search(input SearchInput) (*SearchResult, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return nil, ErrInvalidInput
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 {
		limit = 10
	}

	posts, total, err := s.posts.Search(query, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	return &SearchResult{
		Total: total,
		Page:  page,
		Limit: limit,
		Posts: posts,
	}, nil
}

func (s *PostService) Update(userID, postID uint, content string) (*model.Post, error) {
	if userID == 0 || postID == 0 {
		return nil, ErrInvalidInput
	}
	if n := utf8.RuneCountInString(content); n == 0 || n > model.MaxContentLength {
		return nil, ErrContentLength
	}

	post, err := s.posts.GetByID(postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if post.UserID != userID {
		return nil, ErrNotPostOwner
	}

	if err := s.posts.UpdateContent(post, content); err != nil {
		return nil, err
	}
	post.Content = content
	return post, nil
}

// Delete fails closed: the owner filter and the id are applied in one
// statement, so "absent" and "not owned" both come back as not found.
func (s *PostService) Delete(userID, postID uint) error {
	if userID == 0 || postID == 0 {
		return ErrInvalidInput
	}
	found, err := s.posts.DeleteByIDAndUserID(postID, userID)
	if err != nil {
		return err
	}
	if !found {
		return ErrPostNotFound
	}
	return nil
}

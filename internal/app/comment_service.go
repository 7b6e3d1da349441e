package app

import (
	"errors"
	"unicode/utf8"

	"gopherblog/internal/model"
)

var ErrNotCommentOwner = errors.New("you are not authorized to modify this comment or it doesn't exist")

type CommentService struct {
	comments CommentStore
	posts    PostStore
}

type CreateCommentInput struct {
	UserID   uint
	Username string
	PostID   uint
	Content  string
}

func NewCommentService(comments CommentStore, posts PostStore) *CommentService {
	return &CommentService{comments: comments, posts: posts}
}

// Create adds a comment to an existing post and returns the post's
// full comment list.
func (s *CommentService) Create(input CreateCommentInput) ([]model.Comment, error) {
	if input.UserID == 0 || input.PostID == 0 {
		return nil, ErrInvalidInput
	}
	if n := utf8.RuneCountInString(input.Content); n == 0 || n > model.MaxContentLength {
		return nil, ErrContentLength
	}

	post, err := s.posts.GetByID(input.PostID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comment := &model.Comment{
		Content:  input.Content,
		UserID:   input.UserID,
		Username: input.Username,
		PostID:   input.PostID,
	}
	if err := s.comments.Create(comment); err != nil {
		return nil, err
	}
	return s.comments.ListByPostID(input.PostID)
}

func (s *CommentService) Update(userID, commentID uint, content string) (*model.Comment, error) {
	if userID == 0 || commentID == 0 {
		return nil, ErrInvalidInput
	}
	if n := utf8.RuneCountInString(content); n == 0 || n > model.MaxContentLength {
		return nil, ErrContentLength
	}

	if err := s.comments.UpdateByIDAndUserID(commentID, userID, content); err != nil {
		return nil, err
	}
	comment, err := s.comments.GetByIDAndUserID(commentID, userID)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrNotCommentOwner
	}
	return comment, nil
}

func (s *CommentService) Delete(userID, commentID uint) error {
	if userID == 0 || commentID == 0 {
		return ErrInvalidInput
	}
	found, err := s.comments.DeleteByIDAndUserID(commentID, userID)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotCommentOwner
	}
	return nil
}

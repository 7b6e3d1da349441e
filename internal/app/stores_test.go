package app

import (
	"context"
	"sort"
	"strings"
	"time"

	"gopherblog/internal/model"
)

// In-memory stores backing the service tests.

type fakeUserStore struct {
	nextID uint
	users  map[uint]*model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{nextID: 1, users: map[uint]*model.User{}}
}

func (s *fakeUserStore) Create(user *model.User) error {
	user.ID = s.nextID
	s.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *fakeUserStore) GetByID(id uint) (*model.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (s *fakeUserStore) GetByEmail(email string) (*model.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) GetByUsername(username string) (*model.User, error) {
	for _, user := range s.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) UpdateFields(id uint, fields map[string]interface{}) error {
	user, ok := s.users[id]
	if !ok {
		return nil
	}
	for column, value := range fields {
		switch column {
		case "username":
			user.Username = value.(string)
		case "email":
			user.Email = value.(string)
		case "password_hash":
			user.PasswordHash = value.(string)
		}
	}
	user.UpdatedAt = time.Now()
	return nil
}

func (s *fakeUserStore) ReplaceProfile(id uint, profile model.Profile) error {
	user, ok := s.users[id]
	if !ok {
		return nil
	}
	user.Profile = profile
	user.UpdatedAt = time.Now()
	return nil
}

func (s *fakeUserStore) DeleteByID(id uint) (bool, error) {
	if _, ok := s.users[id]; !ok {
		return false, nil
	}
	delete(s.users, id)
	return true, nil
}

type fakePostStore struct {
	nextID uint
	posts  map[uint]*model.Post
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{nextID: 1, posts: map[uint]*model.Post{}}
}

func (s *fakePostStore) Create(post *model.Post) error {
	post.ID = s.nextID
	s.nextID++
	post.CreatedAt = time.Now()
	copied := *post
	s.posts[post.ID] = &copied
	return nil
}

func (s *fakePostStore) List() ([]model.Post, error) {
	posts := make([]model.Post, 0, len(s.posts))
	for _, post := range s.posts {
		posts = append(posts, *post)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
	return posts, nil
}

func (s *fakePostStore) GetByID(id uint) (*model.Post, error) {
	post, ok := s.posts[id]
	if !ok {
		return nil, nil
	}
	copied := *post
	return &copied, nil
}

func (s *fakePostStore) Search(query string, offset, limit int) ([]model.Post, int64, error) {
	needle := strings.ToLower(query)
	var matches []model.Post
	all, _ := s.List()
	for _, post := range all {
		if strings.Contains(strings.ToLower(post.Content), needle) {
			matches = append(matches, post)
		}
	}

	total := int64(len(matches))
	if offset >= len(matches) {
		return nil, total, nil
	}
	matches = matches[offset:]
	if limit < len(matches) {
		matches = matches[:limit]
	}
	return matches, total, nil
}

func (s *fakePostStore) UpdateContent(post *model.Post, content string) error {
	stored, ok := s.posts[post.ID]
	if ok {
		stored.Content = content
	}
	return nil
}

func (s *fakePostStore) DeleteByIDAndUserID(id, userID uint) (bool, error) {
	post, ok := s.posts[id]
	if !ok || post.UserID != userID {
		return false, nil
	}
	delete(s.posts, id)
	return true, nil
}

func (s *fakePostStore) DeleteByUserID(userID uint) error {
	for id, post := range s.posts {
		if post.UserID == userID {
			delete(s.posts, id)
		}
	}
	return nil
}

type fakeCommentStore struct {
	nextID   uint
	comments map[uint]*model.Comment
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{nextID: 1, comments: map[uint]*model.Comment{}}
}

func (s *fakeCommentStore) Create(comment *model.Comment) error {
	comment.ID = s.nextID
	s.nextID++
	comment.CreatedAt = time.Now()
	comment.UpdatedAt = comment.CreatedAt
	copied := *comment
	s.comments[comment.ID] = &copied
	return nil
}

func (s *fakeCommentStore) ListByPostID(postID uint) ([]model.Comment, error) {
	var comments []model.Comment
	for _, comment := range s.comments {
		if comment.PostID == postID {
			comments = append(comments, *comment)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })
	return comments, nil
}

func (s *fakeCommentStore) GetByIDAndUserID(id, userID uint) (*model.Comment, error) {
	comment, ok := s.comments[id]
	if !ok || comment.UserID != userID {
		return nil, nil
	}
	copied := *comment
	return &copied, nil
}

func (s *fakeCommentStore) UpdateByIDAndUserID(id, userID uint, content string) error {
	comment, ok := s.comments[id]
	if ok && comment.UserID == userID {
		comment.Content = content
		comment.UpdatedAt = time.Now()
	}
	return nil
}

func (s *fakeCommentStore) DeleteByIDAndUserID(id, userID uint) (bool, error) {
	comment, ok := s.comments[id]
	if !ok || comment.UserID != userID {
		return false, nil
	}
	delete(s.comments, id)
	return true, nil
}

type fakeRevoker struct {
	revoked map[string]bool
}

func newFakeRevoker() *fakeRevoker {
	return &fakeRevoker{revoked: map[string]bool{}}
}

func (r *fakeRevoker) Revoke(_ context.Context, token string, _ time.Duration) error {
	r.revoked[token] = true
	return nil
}

func (r *fakeRevoker) IsRevoked(_ context.Context, token string) (bool, error) {
	return r.revoked[token], nil
}

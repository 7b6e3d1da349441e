package handler

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"gopherblog/internal/app"
	"gopherblog/internal/model"
	"gopherblog/internal/transport/http/middleware"
)

// Test doubles and router wiring shared by the handler tests. The
// router mirrors the production route table so cookie auth is
// exercised end to end.

type stubUserStore struct {
	nextID uint
	users  map[uint]*model.User
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{nextID: 1, users: map[uint]*model.User{}}
}

func (s *stubUserStore) Create(user *model.User) error {
	user.ID = s.nextID
	s.nextID++
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *stubUserStore) GetByID(id uint) (*model.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (s *stubUserStore) GetByEmail(email string) (*model.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *stubUserStore) GetByUsername(username string) (*model.User, error) {
	for _, user := range s.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *stubUserStore) UpdateFields(id uint, fields map[string]interface{}) error {
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
	return nil
}

func (s *stubUserStore) ReplaceProfile(id uint, profile model.Profile) error {
	if user, ok := s.users[id]; ok {
		user.Profile = profile
	}
	return nil
}

func (s *stubUserStore) DeleteByID(id uint) (bool, error) {
	if _, ok := s.users[id]; !ok {
		return false, nil
	}
	delete(s.users, id)
	return true, nil
}

type stubPostStore struct {
	nextID uint
	posts  map[uint]*model.Post
}

func newStubPostStore() *stubPostStore {
	return &stubPostStore{nextID: 1, posts: map[uint]*model.Post{}}
}

func (s *stubPostStore) Create(post *model.Post) error {
	post.ID = s.nextID
	s.nextID++
	copied := *post
	s.posts[post.ID] = &copied
	return nil
}

func (s *stubPostStore) List() ([]model.Post, error) {
	posts := make([]model.Post, 0, len(s.posts))
	for _, post := range s.posts {
		posts = append(posts, *post)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })
	return posts, nil
}

func (s *stubPostStore) GetByID(id uint) (*model.Post, error) {
	post, ok := s.posts[id]
	if !ok {
		return nil, nil
	}
	copied := *post
	return &copied, nil
}

func (s *stubPostStore) Search(query string, offset, limit int) ([]model.Post, int64, error) {
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

func (s *stubPostStore) UpdateContent(post *model.Post, content string) error {
	if stored, ok := s.posts[post.ID]; ok {
		stored.Content = content
	}
	return nil
}

func (s *stubPostStore) DeleteByIDAndUserID(id, userID uint) (bool, error) {
	post, ok := s.posts[id]
	if !ok || post.UserID != userID {
		return false, nil
	}
	delete(s.posts, id)
	return true, nil
}

func (s *stubPostStore) DeleteByUserID(userID uint) error {
	for id, post := range s.posts {
		if post.UserID == userID {
			delete(s.posts, id)
		}
	}
	return nil
}

type stubCommentStore struct {
	nextID   uint
	comments map[uint]*model.Comment
}

func newStubCommentStore() *stubCommentStore {
	return &stubCommentStore{nextID: 1, comments: map[uint]*model.Comment{}}
}

func (s *stubCommentStore) Create(comment *model.Comment) error {
	comment.ID = s.nextID
	s.nextID++
	copied := *comment
	s.comments[comment.ID] = &copied
	return nil
}

func (s *stubCommentStore) ListByPostID(postID uint) ([]model.Comment, error) {
	var comments []model.Comment
	for _, comment := range s.comments {
		if comment.PostID == postID {
			comments = append(comments, *comment)
		}
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].ID < comments[j].ID })
	return comments, nil
}

func (s *stubCommentStore) GetByIDAndUserID(id, userID uint) (*model.Comment, error) {
	comment, ok := s.comments[id]
	if !ok || comment.UserID != userID {
		return nil, nil
	}
	copied := *comment
	return &copied, nil
}

func (s *stubCommentStore) UpdateByIDAndUserID(id, userID uint, content string) error {
	if comment, ok := s.comments[id]; ok && comment.UserID == userID {
		comment.Content = content
	}
	return nil
}

func (s *stubCommentStore) DeleteByIDAndUserID(id, userID uint) (bool, error) {
	comment, ok := s.comments[id]
	if !ok || comment.UserID != userID {
		return false, nil
	}
	delete(s.comments, id)
	return true, nil
}

type stubRevoker struct {
	revoked map[string]bool
}

func newStubRevoker() *stubRevoker {
	return &stubRevoker{revoked: map[string]bool{}}
}

func (r *stubRevoker) Revoke(_ context.Context, token string, _ time.Duration) error {
	r.revoked[token] = true
	return nil
}

func (r *stubRevoker) IsRevoked(_ context.Context, token string) (bool, error) {
	return r.revoked[token], nil
}

type testEnv struct {
	router   *gin.Engine
	users    *stubUserStore
	posts    *stubPostStore
	comments *stubCommentStore
	revoker  *stubRevoker
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)

	users := newStubUserStore()
	posts := newStubPostStore()
	comments := newStubCommentStore()
	revoker := newStubRevoker()

	authService := app.NewAuthService(users, revoker, "handler-test-secret", 24*time.Hour)
	userService := app.NewUserService(users, posts)
	postService := app.NewPostService(posts, users)
	commentService := app.NewCommentService(comments, posts)

	authHandler := NewAuthHandler(authService, false)
	userHandler := NewUserHandler(userService)
	postHandler := NewPostHandler(postService)
	commentHandler := NewCommentHandler(commentService)

	authRequired := middleware.Auth(authService)

	router := gin.New()
	userGroup := router.Group("/api/user")
	userGroup.POST("/register", authHandler.Register)
	userGroup.POST("/login", authHandler.Login)
	userGroup.POST("/logout", authRequired, authHandler.Logout)
	userGroup.GET("/:id", authRequired, userHandler.Me)
	userGroup.PUT("/update/:id", authRequired, userHandler.UpdateAccount)
	userGroup.PUT("/updateprofile/:id", authRequired, userHandler.UpdateProfile)
	userGroup.DELETE("/delete/:id", authRequired, userHandler.Delete)

	postGroup := router.Group("/api/post")
	postGroup.Use(authRequired)
	postGroup.POST("/", postHandler.Create)
	postGroup.GET("/all", postHandler.List)
	postGroup.POST("/search", postHandler.Search)
	postGroup.GET("/:id", postHandler.Get)
	postGroup.PUT("/update/:id", postHandler.Update)
	postGroup.DELETE("/delete/:id", postHandler.Delete)

	commentGroup := router.Group("/api/comment")
	commentGroup.Use(authRequired)
	commentGroup.POST("/:postId", commentHandler.Create)
	commentGroup.PUT("/update/:commentId", commentHandler.Update)
	commentGroup.DELETE("/delete/:commentId", commentHandler.Delete)

	return &testEnv{
		router:   router,
		users:    users,
		posts:    posts,
		comments: comments,
		revoker:  revoker,
	}
}

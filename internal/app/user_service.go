package app

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"gopherblog/internal/model"
)

type UserService struct {
	users UserStore
	posts PostStore
}

type UpdateAccountInput struct {
	Username string
	Email    string
	Password string
}

type ProfileInput struct {
	Handle  string
	Bio     string
	Age     int
	Phone   string
	Country string
}

func NewUserService(users UserStore, posts PostStore) *UserService {
	return &UserService{users: users, posts: posts}
}

func (s *UserService) Get(id uint) (*model.User, error) {
	if id == 0 {
		return nil, ErrInvalidInput
	}
	user, err := s.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateAccount applies only the supplied fields. A new password is
// re-hashed before it is stored.
func (s *UserService) UpdateAccount(id uint, input UpdateAccountInput) (*model.User, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(strings.ToLower(input.Email))
	password := input.Password

	if username == "" && email == "" && password == "" {
		return nil, ErrInvalidInput
	}

	current, err := s.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrUserNotFound
	}

	fields := map[string]interface{}{}
	if username != "" && username != current.Username {
		existing, err := s.users.GetByUsername(username)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrUsernameExists
		}
		fields["username"] = username
	}
	if email != "" && email != current.Email {
		existing, err := s.users.GetByEmail(email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrEmailExists
		}
		fields["email"] = email
	}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password failed: %w", err)
		}
		fields["password_hash"] = string(hash)
	}

	if err := s.users.UpdateFields(id, fields); err != nil {
		return nil, err
	}
	return s.users.GetByID(id)
}

// UpdateProfile replaces the whole profile. Fields omitted from the
// request reset to their zero values; partial merges are not supported.
func (s *UserService) UpdateProfile(id uint, input ProfileInput) (*model.User, error) {
	current, err := s.users.GetByID(id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrUserNotFound
	}

	profile := model.Profile{
		Handle:  strings.TrimSpace(input.Handle),
		Bio:     strings.TrimSpace(input.Bio),
		Age:     input.Age,
		Phone:   strings.TrimSpace(input.Phone),
		Country: strings.TrimSpace(input.Country),
	}
	if err := s.users.ReplaceProfile(id, profile); err != nil {
		return nil, err
	}
	return s.users.GetByID(id)
}

// Delete removes the account and cascades to the user's posts. The
// user's comments are left in place and become orphaned.
func (s *UserService) Delete(id uint) error {
	found, err := s.users.DeleteByID(id)
	if err != nil {
		return err
	}
	if !found {
		return ErrUserNotFound
	}
	return s.posts.DeleteByUserID(id)
}

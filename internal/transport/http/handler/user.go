package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"gopherblog/internal/app"
	"gopherblog/internal/transport/http/middleware"
	"gopherblog/internal/transport/http/response"
)

type UserHandler struct {
	userService *app.UserService
}

type UpdateAccountRequest struct {
	Username string `json:"username" binding:"omitempty,max=64"`
	Email    string `json:"email" binding:"omitempty,email,max=128"`
	Password string `json:"password" binding:"omitempty,max=128"`
}

type UpdateProfileRequest struct {
	Handle  string `json:"handle" binding:"omitempty,max=64"`
	Bio     string `json:"bio" binding:"omitempty,max=280"`
	Age     int    `json:"age" binding:"omitempty,gte=0,lte=150"`
	Phone   string `json:"phone" binding:"omitempty,max=32"`
	Country string `json:"country" binding:"omitempty,max=64"`
}

func NewUserHandler(userService *app.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Me returns the authenticated caller. The :id path segment is kept
// for route compatibility; the operation is always self-scoped.
func (h *UserHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "please login to continue")
		return
	}

	current, err := h.userService.Get(user.ID)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, err.Error())
		default:
			log.Printf("get user failed: %v", err)
			response.Error(c, http.StatusInternalServerError, "server error")
		}
		return
	}

	c.JSON(http.StatusOK, current)
}

func (h *UserHandler) UpdateAccount(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "please login to continue")
		return
	}

	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	updated, err := h.userService.UpdateAccount(user.ID, app.UpdateAccountInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput),
			errors.Is(err, app.ErrUsernameExists),
			errors.Is(err, app.ErrEmailExists):
			response.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, app.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, err.Error())
		default:
			log.Printf("update account failed: %v", err)
			response.Error(c, http.StatusInternalServerError, "server error")
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

// UpdateProfile replaces the whole profile; omitted fields reset.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "please login to continue")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	updated, err := h.userService.UpdateProfile(user.ID, app.ProfileInput{
		Handle:  req.Handle,
		Bio:     req.Bio,
		Age:     req.Age,
		Phone:   req.Phone,
		Country: req.Country,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, "profile cannot be updated")
		default:
			log.Printf("update profile failed: %v", err)
			response.Error(c, http.StatusInternalServerError, "server error")
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Delete removes the caller's account and their posts. Comments stay.
func (h *UserHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "please login to continue")
		return
	}

	if err := h.userService.Delete(user.ID); err != nil {
		switch {
		case errors.Is(err, app.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, err.Error())
		default:
			log.Printf("delete user failed: %v", err)
			response.Error(c, http.StatusInternalServerError, "server error")
		}
		return
	}

	response.Message(c, http.StatusOK, "user deleted successfully")
}

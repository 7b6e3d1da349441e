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

type AuthHandler struct {
	authService  *app.AuthService
	cookieSecure bool
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=64"`
	Email    string `json:"email" binding:"required,email,max=128"`
	Password string `json:"password" binding:"required,max=128"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email,max=128"`
	Password string `json:"password" binding:"required,max=128"`
}

func NewAuthHandler(authService *app.AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{authService: authService, cookieSecure: cookieSecure}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "please fill in all fields")
		return
	}

	user, err := h.authService.Register(app.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput),
			errors.Is(err, app.ErrEmailExists),
			errors.Is(err, app.ErrUsernameExists):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			log.Printf("register failed: %v", err)
			response.Error(c, http.StatusInternalServerError, "server error")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "please fill in all fields")
		return
	}

	result, err := h.authService.Login(app.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput),
			errors.Is(err, app.ErrUserNotExists),
			errors.Is(err, app.ErrInvalidPassword):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			log.Printf("login failed: %v", err)
			response.Error(c, http.StatusInternalServerError, "server error")
		}
		return
	}

	h.setSessionCookie(c, result.Token, int(h.authService.TokenTTL().Seconds()))
	c.JSON(http.StatusOK, gin.H{"user": result.User})
}

// Logout revokes the session token and clears the cookie. Both steps
// are idempotent.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(middleware.TokenCookieName)
	if err == nil && token != "" {
		if err := h.authService.Logout(c.Request.Context(), token); err != nil {
			log.Printf("revoke session token failed: %v", err)
			response.Error(c, http.StatusInternalServerError, "server error")
			return
		}
	}

	h.setSessionCookie(c, "", -1)
	response.Message(c, http.StatusOK, "user logged out successfully")
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.TokenCookieName, token, maxAge, "/", "", h.cookieSecure, true)
}

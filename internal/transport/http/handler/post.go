package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gopherblog/internal/app"
	"gopherblog/internal/transport/http/middleware"
	"gopherblog/internal/transport/http/response"
)

type PostHandler struct {
	postService *app.PostService
}

type CreatePostRequest struct {
	Content string `json:"content"`
}

type SearchPostsRequest struct {
	Query string `json:"query"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
}

func NewPostHandler(postService *app.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

func (h *PostHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "please login to continue")
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	post, err := h.postService.Create(app.CreatePostInput{
		UserID:   user.ID,
		Username: user.Username,
		Content:  req.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrContentLength), errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			log.Printf("create post failed: %v", err)
			response.Error(c, http.StatusInternalServerError, "server error")
		}
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) List(c *gin.Context) {
	posts, err := h.postService.List()
	if err != nil {
		log.Printf("list posts failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "server error")
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *PostHandler) Get(c *gin.Context) {
	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	post, err := h.postService.Get(postID)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrPostNotFound):
			response.Error(c, http.StatusNotFound, err.Error())
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			log.Printf("get post failed: %v", err)
			response.Error(c, http.StatusInternalServerError, "server error")
		}
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Search(c *gin.Context) {
	var req SearchPostsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	result, err := h.postService.Search(app.SearchInput{
		Query: req.Query,
		Page:  req.Page,
		Limit: req.Limit,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "search query is required")
		default:
			log.Printf("search posts failed: %v", err)
			response.Error(c, http.StatusInternalServerError, "server error")
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *PostHandler) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "please login to continue")
		return
	}

	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	post, err := h.postService.Update(user.ID, postID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrContentLength), errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, app.ErrPostNotFound):
			response.Error(c, http.StatusNotFound, err.Error())
		case errors.Is(err, app.ErrNotPostOwner):
			response.Error(c, http.StatusForbidden, err.Error())
		default:
			log.Printf("update post failed: %v", err)
			response.Error(c, http.StatusInternalServerError, "server error")
		}
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "please login to continue")
		return
	}

	postID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.postService.Delete(user.ID, postID); err != nil {
		switch {
		case errors.Is(err, app.ErrPostNotFound):
			response.Error(c, http.StatusNotFound, "post not found or you are not authorized to delete it")
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			log.Printf("delete post failed: %v", err)
			response.Error(c, http.StatusInternalServerError, "server error")
		}
		return
	}

	response.Message(c, http.StatusOK, "post deleted successfully")
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.Error(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

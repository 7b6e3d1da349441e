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

type CommentHandler struct {
	commentService *app.CommentService
}

type CommentRequest struct {
	Content string `json:"content"`
}

func NewCommentHandler(commentService *app.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Create adds a comment and responds with the post's full comment list.
func (h *CommentHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "please login to continue")
		return
	}

	postID, ok := parseIDParam(c, "postId")
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "comment content is required")
		return
	}

	comments, err := h.commentService.Create(app.CreateCommentInput{
		UserID:   user.ID,
		Username: user.Username,
		PostID:   postID,
		Content:  req.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrContentLength), errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "comment content is required")
		case errors.Is(err, app.ErrPostNotFound):
			response.Error(c, http.StatusNotFound, err.Error())
		default:
			log.Printf("create comment failed: %v", err)
			response.Error(c, http.StatusInternalServerError, "server error")
		}
		return
	}

	c.JSON(http.StatusCreated, comments)
}

func (h *CommentHandler) Update(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "please login to continue")
		return
	}

	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "comment content is required")
		return
	}

	comment, err := h.commentService.Update(user.ID, commentID, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrContentLength), errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, "comment content is required")
		case errors.Is(err, app.ErrNotCommentOwner):
			response.Error(c, http.StatusForbidden, err.Error())
		default:
			log.Printf("update comment failed: %v", err)
			response.Error(c, http.StatusInternalServerError, "server error")
		}
		return
	}

	c.JSON(http.StatusOK, comment)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "please login to continue")
		return
	}

	commentID, ok := parseIDParam(c, "commentId")
	if !ok {
		return
	}

	if err := h.commentService.Delete(user.ID, commentID); err != nil {
		switch {
		case errors.Is(err, app.ErrNotCommentOwner):
			response.Error(c, http.StatusForbidden, err.Error())
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			log.Printf("delete comment failed: %v", err)
			response.Error(c, http.StatusInternalServerError, "server error")
		}
		return
	}

	response.Message(c, http.StatusOK, "comment deleted successfully")
}

package rest

import (
	"bytes"
	"context"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/gophblog/internal/common"
	"github.com/dmitrijs2005/gophblog/internal/server/models"
	"github.com/dmitrijs2005/gophblog/internal/server/services"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

type UserService interface {
	Register(ctx context.Context, username, email, password string) (*services.AuthResult, error)
	Login(ctx context.Context, email, password string) (*services.AuthResult, error)
}

type PostService interface {
	List(ctx context.Context) ([]models.Post, error)
	Get(ctx context.Context, id string) (*models.Post, error)
	Create(ctx context.Context, authorID, title, content string) (*models.Post, error)
	Update(ctx context.Context, id, authorID string, patch models.PostPatch) (*models.Post, error)
	Delete(ctx context.Context, id, authorID string) error
}

// Handler serves the JSON API. Errors are mapped to fixed status codes and
// messages; internal details stay in the log.
type Handler struct {
	users UserService
	posts PostService
}

func NewHandler(us UserService, ps PostService) *Handler {
	return &Handler{users: us, posts: ps}
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, "User exists", err)
		return
	}

	res, err := h.users.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		abortWithMessage(c, http.StatusBadRequest, "User exists", err)
		return
	}
	c.JSON(http.StatusOK, authToResponse(res))
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid credentials", err)
		return
	}

	res, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			abortWithMessage(c, http.StatusBadRequest, "Invalid credentials", err)
			return
		}
		abortWithMessage(c, http.StatusInternalServerError, "Internal error", err)
		return
	}
	c.JSON(http.StatusOK, authToResponse(res))
}

func (h *Handler) ListPosts(c *gin.Context) {
	list, err := h.posts.List(c.Request.Context())
	if err != nil {
		abortWithMessage(c, http.StatusInternalServerError, "Internal error", err)
		return
	}
	c.JSON(http.StatusOK, postsToResponses(list))
}

func (h *Handler) GetPost(c *gin.Context) {
	p, err := h.posts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			abortWithMessage(c, http.StatusNotFound, "Not found", err)
			return
		}
		abortWithMessage(c, http.StatusInternalServerError, "Internal error", err)
		return
	}
	c.JSON(http.StatusOK, postToResponse(p))
}

func (h *Handler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	p, err := h.posts.Create(c.Request.Context(), UserIDFromContext(c), req.Title, req.Content)
	if err != nil {
		abortWithMessage(c, http.StatusInternalServerError, "Internal error", err)
		return
	}
	c.JSON(http.StatusOK, postToResponse(p))
}

// UpdatePost answers 200 with the updated post, or with null when the post
// does not exist or belongs to someone else.
func (h *Handler) UpdatePost(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		abortWithMessage(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	var req updatePostRequest
	if len(bytes.TrimSpace(body)) > 0 {
		if err := binding.JSON.BindBody(body, &req); err != nil {
			abortWithMessage(c, http.StatusBadRequest, "Invalid request body", err)
			return
		}
	}

	p, err := h.posts.Update(c.Request.Context(), c.Param("id"), UserIDFromContext(c), req.patch())
	if err != nil {
		abortWithMessage(c, http.StatusInternalServerError, "Internal error", err)
		return
	}
	if p == nil {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, postToResponse(p))
}

// DeletePost answers "Deleted" whether or not anything was removed.
func (h *Handler) DeletePost(c *gin.Context) {
	if err := h.posts.Delete(c.Request.Context(), c.Param("id"), UserIDFromContext(c)); err != nil {
		abortWithMessage(c, http.StatusInternalServerError, "Internal error", err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Deleted"})
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// abortWithMessage records err for the request logger and answers with msg.
func abortWithMessage(c *gin.Context, status int, msg string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, messageResponse{Message: msg})
}

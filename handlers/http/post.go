package httpHandler

import (
	"blog-server/entities"
	"blog-server/usecases"
	"blog-server/ws"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	useCase *usecases.PostUseCase
	feed    *ws.Manager
}

func NewPostHandler(useCase *usecases.PostUseCase, feed *ws.Manager) *PostHandler {
	return &PostHandler{
		useCase: useCase,
		feed:    feed,
	}
}

type createPostRequest struct {
	Title         string `json:"title" binding:"required,min=5"`
	Content       string `json:"content" binding:"required,min=20"`
	Category      string `json:"category" binding:"required,uuid"`
	FeaturedImage string `json:"featuredImage"`
}

type updatePostRequest struct {
	Title         string `json:"title" binding:"omitempty,min=5"`
	Content       string `json:"content" binding:"omitempty,min=20"`
	Category      string `json:"category" binding:"omitempty,uuid"`
	FeaturedImage string `json:"featuredImage"`
}

// GetPosts handles GET /api/posts?page&limit
func (h *PostHandler) GetPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))

	posts, pagination, err := h.useCase.ListPosts(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to retrieve posts",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"count":      len(posts),
		"pagination": pagination,
		"data":       posts,
	})
}

// CreatePost handles POST /api/posts. Runs behind Protect: the author is
// stamped from the verified request identity, never from the payload.
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if ferrs := fieldErrors(err); ferrs != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"success": false,
				"errors":  ferrs,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	post := &entities.Post{
		Title:         req.Title,
		Content:       req.Content,
		CategoryID:    req.Category,
		FeaturedImage: req.FeaturedImage,
		AuthorID:      CurrentUser(c).ID,
	}

	if err := h.useCase.CreatePost(post); err != nil {
		status := http.StatusInternalServerError
		if usecases.IsValidation(err) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	h.broadcast("post_created", post)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    post,
	})
}

// GetPost handles GET /api/posts/:identifier where identifier is an opaque id
// or a slug.
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.useCase.GetPostByIdentifier(c.Param("identifier"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Post not found",
		})
		return
	}

	h.useCase.RecordView(post.ID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    post,
	})
}

// UpdatePost handles PUT /api/posts/:identifier
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if ferrs := fieldErrors(err); ferrs != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"success": false,
				"errors":  ferrs,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	post, err := h.useCase.UpdatePost(c.Param("identifier"), usecases.PostUpdate{
		Title:         req.Title,
		Content:       req.Content,
		CategoryID:    req.Category,
		FeaturedImage: req.FeaturedImage,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecases.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Post not found"})
		case usecases.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server Error"})
		}
		return
	}

	h.broadcast("post_updated", post)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    post,
	})
}

// DeletePost handles DELETE /api/posts/:identifier. Hard delete, no tombstone.
func (h *PostHandler) DeletePost(c *gin.Context) {
	identifier := c.Param("identifier")

	if err := h.useCase.DeletePost(identifier); err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error":   "Post not found",
		})
		return
	}

	h.broadcast("post_deleted", &entities.Post{ID: identifier})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{},
	})
}

// broadcast pushes a post event to live feed subscribers, best effort.
func (h *PostHandler) broadcast(eventType string, post *entities.Post) {
	if h.feed == nil {
		return
	}
	payload, err := json.Marshal(gin.H{"type": eventType, "post": post})
	if err != nil {
		return
	}
	h.feed.Broadcast(payload)
}

package httpHandler

import (
	"blog-server/usecases"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	useCase *usecases.CategoryUseCase
}

func NewCategoryHandler(useCase *usecases.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{useCase: useCase}
}

type createCategoryRequest struct {
	Name string `json:"name"`
}

// GetCategories handles GET /api/categories
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.useCase.GetAllCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Server Error",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    categories,
		"count":   len(categories),
	})
}

// CreateCategory handles POST /api/categories
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	category, err := h.useCase.CreateCategory(req.Name)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, usecases.ErrCategoryTaken) || usecases.IsValidation(err) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    category,
	})
}

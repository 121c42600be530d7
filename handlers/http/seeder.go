package httpHandler

import (
	"blog-server/usecases"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SeederHandler struct {
	useCase *usecases.SeederUseCase
}

func NewSeederHandler(useCase *usecases.SeederUseCase) *SeederHandler {
	return &SeederHandler{useCase: useCase}
}

// Seed handles POST /api/seeder. Wipes and refills the database with fixture
// data; development use only.
func (h *SeederHandler) Seed(c *gin.Context) {
	result, err := h.useCase.Seed()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to seed the database.",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Database seeded successfully with categories, users, and posts.",
		"data":    result,
	})
}

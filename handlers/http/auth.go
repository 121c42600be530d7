package httpHandler

import (
	"blog-server/auth"
	"blog-server/usecases"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	useCase  *usecases.AuthUseCase
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthHandler(useCase *usecases.AuthUseCase, secret []byte, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		useCase:  useCase,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// userResponse is the public projection of a user: never the password hash.
type userResponse struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	user, err := h.useCase.Register(req.Name, req.Email, req.Password)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, usecases.ErrEmailTaken) || usecases.IsValidation(err) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	token, err := auth.GenerateToken(user.ID, h.secret, h.tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Could not issue token",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    userResponse{ID: user.ID, Name: user.Name, Email: user.Email},
		"token":   token,
	})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body",
		})
		return
	}

	user, err := h.useCase.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecases.ErrMissingCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		case errors.Is(err, usecases.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Server Error"})
		}
		return
	}

	token, err := auth.GenerateToken(user.ID, h.secret, h.tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Could not issue token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    userResponse{ID: user.ID, Name: user.Name, Email: user.Email},
		"token":   token,
	})
}

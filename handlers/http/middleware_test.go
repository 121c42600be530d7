package httpHandler

import (
	"blog-server/auth"
	"blog-server/entities"
	"blog-server/usecases"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStubNotFound = errors.New("record not found")

// stubUserRepo serves a single fixed user.
type stubUserRepo struct {
	user *entities.User
}

func (r *stubUserRepo) Create(user *entities.User) error { return nil }

func (r *stubUserRepo) GetByID(id string) (*entities.User, error) {
	if r.user != nil && r.user.ID == id {
		return r.user, nil
	}
	return nil, errStubNotFound
}

func (r *stubUserRepo) GetByEmail(email string) (*entities.User, error) {
	if r.user != nil && r.user.Email == email {
		return r.user, nil
	}
	return nil, errStubNotFound
}

func (r *stubUserRepo) GetAll() ([]entities.User, error) { return nil, nil }
func (r *stubUserRepo) DeleteAll() error                 { return nil }

func protectedRouter(user *entities.User, secret []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	uc := usecases.NewAuthUseCase(&stubUserRepo{user: user})

	r := gin.New()
	r.GET("/protected", Protect(uc, secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": CurrentUser(c).ID})
	})
	return r
}

func TestProtect_NoHeader(t *testing.T) {
	r := protectedRouter(&entities.User{ID: "u1"}, []byte("secret"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtect_MalformedHeader(t *testing.T) {
	r := protectedRouter(&entities.User{ID: "u1"}, []byte("secret"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abcdef")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtect_TamperedToken(t *testing.T) {
	r := protectedRouter(&entities.User{ID: "u1"}, []byte("secret"))

	tok, err := auth.GenerateToken("u1", []byte("another-secret"), time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtect_ExpiredToken(t *testing.T) {
	secret := []byte("secret")
	r := protectedRouter(&entities.User{ID: "u1"}, secret)

	tok, err := auth.GenerateToken("u1", secret, -time.Minute)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtect_UnknownUser(t *testing.T) {
	secret := []byte("secret")
	r := protectedRouter(&entities.User{ID: "u1"}, secret)

	// valid signature, but the encoded id resolves to no stored user
	tok, err := auth.GenerateToken("deleted-user", secret, time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtect_ValidToken(t *testing.T) {
	secret := []byte("secret")
	r := protectedRouter(&entities.User{ID: "u1", Name: "Alice"}, secret)

	tok, err := auth.GenerateToken("u1", secret, time.Hour)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "u1", body["id"])
}

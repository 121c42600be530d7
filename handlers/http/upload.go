package httpHandler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	dir string
}

func NewUploadHandler(dir string) *UploadHandler {
	return &UploadHandler{dir: dir}
}

// extension -> the content type the browser must declare for it
var imageTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// Upload handles POST /api/upload. Expects a single multipart file in the
// "image" field; only jpg/jpeg/png pass, checked by both extension and
// declared content type.
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "No image file provided",
		})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	wantType, ok := imageTypes[ext]
	if !ok || file.Header.Get("Content-Type") != wantType {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Images only (jpg, jpeg, png)",
		})
		return
	}

	// Unique name to avoid collisions between uploads
	name := fmt.Sprintf("image-%d%s", time.Now().UnixNano(), ext)
	if err := c.SaveUploadedFile(file, filepath.Join(h.dir, name)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to save image",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Image Uploaded Successfully",
		"image":   "/uploads/" + name,
	})
}

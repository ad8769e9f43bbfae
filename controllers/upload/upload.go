package uploadControllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Orekusandoru/online-store/config"
)

// POST /upload (admin/seller) — multipart image, stored under the uploads
// dir with a uuid filename and served back at /uploads.
func UploadImage(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
			return
		}

		if err := os.MkdirAll(cfg.Uploads.Dir, 0755); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare upload directory"})
			return
		}

		ext := filepath.Ext(file.Filename)
		filename := uuid.NewString() + ext
		savePath := filepath.Join(cfg.Uploads.Dir, filename)

		if err := c.SaveUploadedFile(file, savePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
			return
		}

		baseURL := cfg.Uploads.BaseURL
		if baseURL == "" {
			baseURL = "http://localhost:" + cfg.Server.Port
		}

		c.JSON(http.StatusOK, gin.H{
			"url": fmt.Sprintf("%s/uploads/%s", baseURL, filename),
		})
	}
}

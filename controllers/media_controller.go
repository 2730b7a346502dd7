package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ngtlinh/edupanel-backend/utils"
)

// POST /api/admin/media
// Upload ảnh / video đính kèm lesson lên Supabase Storage, trả public URL.
func UploadLessonMedia(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Thiếu file upload"})
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") && !strings.HasPrefix(contentType, "video/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Chỉ hỗ trợ file ảnh hoặc video"})
		return
	}

	fileID := uuid.New().String()
	publicURL, err := utils.UploadLessonMedia(fileHeader, fileID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload file thất bại: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Upload thành công",
		"media_url": publicURL,
	})
}

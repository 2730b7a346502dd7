package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ngtlinh/edupanel-backend/curriculum"
)

type AddLessonInput struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"` // markup từ rich text editor
	Points  string `json:"points"`  // hoặc nhập nhanh: mỗi dòng một ý
}

// POST /api/admin/units/:id/lessons
// Lesson chỉ sống trong danh sách của unit; hiện mới sửa cục bộ,
// chưa có API riêng phía kho dữ liệu.
func AddLesson(c *gin.Context) {
	unitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	var input AddLessonInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tiêu đề lesson là bắt buộc"})
		return
	}

	content := input.Content
	if input.Points != "" {
		content = curriculum.LessonListContent(input.Points)
	}

	lesson, err := Curriculum.AddLessonToUnit(unitID, input.Title, content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Thêm lesson thành công",
		"lesson":  lesson,
		"preview": curriculum.LessonPreview(lesson.Content, 120),
	})
}

// DELETE /api/admin/units/:id/lessons/:lessonId
func RemoveLesson(c *gin.Context) {
	unitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}
	lessonID, err := uuid.Parse(c.Param("lessonId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lesson ID không hợp lệ"})
		return
	}

	if err := Curriculum.RemoveLessonFromUnit(unitID, lessonID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Xoá lesson thành công"})
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ngtlinh/edupanel-backend/curriculum"
)

// GET /api/classroom/units/:id
// Màn hình lớp học luôn đọc bản mới nhất từ kho dữ liệu rồi mới render.
func GetClassroomUnit(c *gin.Context) {
	unitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	unit, err := Curriculum.LoadUnit(c.Request.Context(), unitID)
	if err != nil {
		respondError(c, err)
		return
	}

	// Sidebar chỉ cần tiêu đề + preview, nội dung đầy đủ nằm trong lessons
	previews := make([]gin.H, 0, len(unit.Lessons))
	for i, lesson := range unit.Lessons {
		previews = append(previews, gin.H{
			"index":   i + 1,
			"id":      lesson.ID,
			"title":   lesson.Title,
			"preview": curriculum.LessonPreview(lesson.Content, 80),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"unit":         curriculum.BuildUnitCard(unit),
		"lessons":      unit.Lessons,
		"lesson_index": previews,
	})
}

package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreateSubjectInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	CourseID    string `json:"course_id" binding:"required"`
	Term        int    `json:"term" binding:"required"`
}

// POST /api/admin/subjects
func CreateSubject(c *gin.Context) {
	var input CreateSubjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tên môn học, khoá học và học kỳ là bắt buộc"})
		return
	}

	courseID, err := uuid.Parse(input.CourseID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "course_id không hợp lệ"})
		return
	}

	subject, err := Curriculum.CreateSubject(c.Request.Context(), input.Name, input.Description, courseID, input.Term)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Tạo môn học thành công",
		"subject": subject,
	})
}

// GET /api/admin/subjects?course_id=&term=
// Không có query thì trả toàn bộ; có đủ cặp (course_id, term) thì trả
// đúng bucket cho dropdown phụ thuộc.
func GetSubjects(c *gin.Context) {
	store := Curriculum.Store()

	courseIDStr := c.Query("course_id")
	termStr := c.Query("term")
	if courseIDStr == "" && termStr == "" {
		c.JSON(http.StatusOK, gin.H{"data": store.Subjects()})
		return
	}

	courseID, err := uuid.Parse(courseIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "course_id không hợp lệ"})
		return
	}
	term, err := strconv.Atoi(termStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "term không hợp lệ"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": store.SubjectsForCourseAndTerm(courseID, term),
	})
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ngtlinh/edupanel-backend/curriculum"
)

type CreateCourseInput struct {
	Name  string `json:"name" binding:"required"`
	Terms int    `json:"terms" binding:"required"`
}

// POST /api/admin/courses
func CreateCourse(c *gin.Context) {
	var input CreateCourseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Tên khoá học và số học kỳ là bắt buộc"})
		return
	}

	course, err := Curriculum.CreateCourse(c.Request.Context(), input.Name, input.Terms)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Tạo khoá học thành công",
		"course":  course,
	})
}

// GET /api/admin/courses
func GetCourses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data": Curriculum.Store().Courses(),
	})
}

// GET /api/admin/courses/:id/terms
// Trả về dãy học kỳ [1..terms] kèm nhãn hiển thị cho dropdown.
// Khoá không tồn tại thì trả dãy rỗng chứ không lỗi.
func GetCourseTerms(c *gin.Context) {
	courseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	store := Curriculum.Store()
	label := "Semester"
	if course, ok := store.CourseByID(courseID); ok {
		label = curriculum.TermLabel(course.Name)
	}

	c.JSON(http.StatusOK, gin.H{
		"terms": store.TermsForCourse(courseID),
		"label": label,
	})
}

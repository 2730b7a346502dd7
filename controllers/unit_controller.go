package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ngtlinh/edupanel-backend/curriculum"
)

type CreateUnitInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	CourseID    string `json:"course_id" binding:"required"`
	SubjectID   string `json:"subject_id" binding:"required"`
	Term        int    `json:"term" binding:"required"`
}

type UpdateUnitInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// POST /api/admin/units
func CreateUnit(c *gin.Context) {
	var input CreateUnitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Thiếu trường bắt buộc khi tạo unit"})
		return
	}

	courseID, err := uuid.Parse(input.CourseID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "course_id không hợp lệ"})
		return
	}
	subjectID, err := uuid.Parse(input.SubjectID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "subject_id không hợp lệ"})
		return
	}

	unit, err := Curriculum.CreateUnit(c.Request.Context(), curriculum.NewUnit{
		Title:       input.Title,
		Description: input.Description,
		CourseID:    courseID,
		SubjectID:   subjectID,
		Term:        input.Term,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Tạo unit thành công",
		"unit":    unit,
	})
}

// GET /api/admin/units?search=&course=&subject=
// Trả về card đã qua presentation adapter + option list cho filter.
func GetUnits(c *gin.Context) {
	store := Curriculum.Store()

	var units []curriculum.Unit
	if subjectName := c.Query("subject"); subjectName != "" {
		// Trang soạn bài lọc theo tên môn đã denormalize
		units = store.UnitsForSubject(subjectName)
	} else {
		units = store.Units()
	}

	search := c.Query("search")
	courseFilter := c.Query("course")
	if courseFilter == "" {
		courseFilter = curriculum.AllCourses
	}
	filtered := curriculum.FilterUnits(units, search, courseFilter)

	c.JSON(http.StatusOK, gin.H{
		"data":    curriculum.BuildUnitCards(filtered),
		"courses": curriculum.CourseOptions(store.Units()),
		"total":   len(filtered),
	})
}

// GET /api/admin/units/:id
func GetUnitDetail(c *gin.Context) {
	unitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	unit, ok := Curriculum.Store().UnitByID(unitID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Không tìm thấy unit"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"unit": unit})
}

// PUT /api/admin/units/:id
func UpdateUnit(c *gin.Context) {
	unitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	var input UpdateUnitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	unit, err := Curriculum.UpdateUnit(c.Request.Context(), unitID, curriculum.UnitPatch{
		Title:       input.Title,
		Description: input.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cập nhật unit thành công",
		"unit":    unit,
	})
}

// DELETE /api/admin/units/:id
func DeleteUnit(c *gin.Context) {
	unitID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID không hợp lệ"})
		return
	}

	if err := Curriculum.DeleteUnit(c.Request.Context(), unitID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Xoá unit thành công"})
}

// POST /api/admin/refresh
// Tải lại toàn bộ snapshot từ kho dữ liệu (cả ba collection trong một lần).
func RefreshSnapshot(c *gin.Context) {
	if err := Curriculum.Refresh(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Đồng bộ dữ liệu thành công"})
}

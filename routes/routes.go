package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ngtlinh/edupanel-backend/controllers"
	"github.com/ngtlinh/edupanel-backend/middleware"
	"github.com/ngtlinh/edupanel-backend/ws"
)

func SetupRouter(r *gin.Engine) *gin.Engine {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", controllers.HealthCheck)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/logingoogle", controllers.GoogleLogin)
		auth.GET("/me", middleware.AuthMiddleware(), controllers.Me)
	}

	// Lớp học: học sinh và giáo viên đều xem được
	classroom := api.Group("/classroom")
	{
		classroom.Use(middleware.AuthMiddleware())
		classroom.GET("/units/:id", controllers.GetClassroomUnit)
	}

	admin := api.Group("/admin")
	{
		admin.Use(middleware.AuthMiddleware(), middleware.RequireRoles("admin", "teacher"))

		// Quản lý khoá học
		admin.POST("/courses", controllers.CreateCourse)
		admin.GET("/courses", controllers.GetCourses)
		admin.GET("/courses/:id/terms", controllers.GetCourseTerms)

		// Quản lý môn học
		admin.POST("/subjects", controllers.CreateSubject)
		admin.GET("/subjects", controllers.GetSubjects)

		// Quản lý unit
		admin.POST("/units", controllers.CreateUnit)
		admin.GET("/units", controllers.GetUnits)
		admin.GET("/units/:id", controllers.GetUnitDetail)
		admin.PUT("/units/:id", controllers.UpdateUnit)
		admin.DELETE("/units/:id", controllers.DeleteUnit)

		// Quản lý lesson trong unit
		admin.POST("/units/:id/lessons", controllers.AddLesson)
		admin.DELETE("/units/:id/lessons/:lessonId", controllers.RemoveLesson)

		// Media đính kèm lesson
		admin.POST("/media", controllers.UploadLessonMedia)

		// Đồng bộ lại snapshot từ kho dữ liệu
		admin.POST("/refresh", controllers.RefreshSnapshot)
	}

	r.GET("/ws/classroom/:unitId", ws.HandleClassroomWebSocket)

	return r
}

package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ngtlinh/edupanel-backend/config"
	"github.com/ngtlinh/edupanel-backend/controllers"
	"github.com/ngtlinh/edupanel-backend/curriculum"
	"github.com/ngtlinh/edupanel-backend/repository"
	"github.com/ngtlinh/edupanel-backend/routes"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("Không tìm thấy file .env")
	}

	config.InitDB()

	// Dựng core giáo trình: store + gateway trên query client Postgres
	store := curriculum.NewStore()
	repo := repository.NewGormRepository(config.DB)
	gateway := curriculum.NewGateway(store, repo)
	controllers.Init(gateway)

	// Initial load: cả ba collection về đủ rồi mới thay snapshot một lần
	if err := gateway.Refresh(context.Background()); err != nil {
		log.Println("Không load được snapshot ban đầu:", err)
	}

	r := gin.Default()

	// Bật CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	// Gọi SetupRouter để đăng ký route
	r = routes.SetupRouter(r)

	// Route test server
	r.GET("/", func(c *gin.Context) {
		c.String(200, "EduPanel server is running")
	})

	// Lấy PORT từ env
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080" // mặc định nếu không có PORT
	}

	log.Println("Server running at Port:" + port)
	r.Run(":" + port)
}

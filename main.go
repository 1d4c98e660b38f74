package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"salonbook-backend/config"
	"salonbook-backend/models"
	"salonbook-backend/routes"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	if err := config.Load(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Salon{},
		&models.Staff{},
		&models.Category{},
		&models.Service{},
		&models.Order{},
		&models.Payment{},
		&models.User{},
	)

	if err := os.MkdirAll(config.Cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}
}

func main() {
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + config.Cfg.Port)
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}

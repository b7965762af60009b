package main

import (
	"log"
	"os"

	"github.com/cafefausse/reservation-api/config"
	"github.com/cafefausse/reservation-api/models"
	"github.com/cafefausse/reservation-api/router"
	"github.com/cafefausse/reservation-api/services"
	"github.com/cafefausse/reservation-api/utils"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func init() {
	// Load .env sebelum apapun; JWT secret dan DSN dibaca dari environment
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	utils.InitLogger()
}

func main() {
	cfg := config.Load()

	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	allocator := services.NewAllocator(db, cfg.TotalTables)
	allocator.ExemptSelf = cfg.ExemptSelf

	r := router.SetupRouter(db, allocator)

	utils.InfoLogger.Printf("Table pool: %d tables, exempt-self on update: %v", cfg.TotalTables, cfg.ExemptSelf)
	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Reservation{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
}

package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/beautyparlour/parlour-api/internal/config"
	dbpkg "github.com/beautyparlour/parlour-api/internal/db"
	"github.com/beautyparlour/parlour-api/internal/reminder"
	"github.com/beautyparlour/parlour-api/internal/routes"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	scheduler := reminder.NewScheduler(db)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("failed to start reminder scheduler: %v", err)
	}
	defer scheduler.Stop()

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

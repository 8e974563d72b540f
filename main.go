// main.go
package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hsmcare/appointment-api/config"
	"github.com/hsmcare/appointment-api/endpoint"
	"github.com/hsmcare/appointment-api/middleware"
	"github.com/hsmcare/appointment-api/model"
)

func main() {
	// Load the configuration
	cfg := config.LoadConfig()

	db, err := config.ConnectDatabase()
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err := db.AutoMigrate(&model.Appointment{}, &model.Note{}, &model.User{}); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
	if err := model.SeedDefaultDoctor(db); err != nil {
		log.Fatalf("Error seeding default doctor: %v", err)
	}

	// Redis backs the rate limiter; the API still serves without it.
	if _, err := config.ConnectRedis(); err != nil {
		log.Printf("Redis unavailable, rate limiting disabled: %v", err)
	}

	// Set Gin mode from config
	gin.SetMode(cfg.GinMode)

	// Create a Gin router with default middleware
	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.DatabaseMiddleware(db))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	// Basic HTTP handler for root path
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Welcome to %s!", cfg.AppName),
		})
	})

	router.GET("/appointments", endpoint.ListAppointments)
	router.POST("/appointments", endpoint.CreateAppointment)
	router.POST("/appointments/:id/add-note", endpoint.AddNote)
	router.PUT("/appointments/:id/cancel", endpoint.CancelAppointment)

	authLimiter := middleware.RateLimiter(middleware.RateLimitConfig{})
	router.POST("/signup", authLimiter, endpoint.Signup)
	router.POST("/login", authLimiter, endpoint.Login)

	// Start server on specified port
	address := fmt.Sprintf(":%d", cfg.AppPort)
	if err := router.Run(address); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

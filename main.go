// main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Xwdgood/Virtual-GP/chat"
	"github.com/Xwdgood/Virtual-GP/config"
	"github.com/Xwdgood/Virtual-GP/endpoint"
	"github.com/Xwdgood/Virtual-GP/middleware"
	"github.com/Xwdgood/Virtual-GP/store"
	"github.com/Xwdgood/Virtual-GP/util"
)

func main() {
	// Load the configuration
	cfg := config.LoadConfig()
	util.SetJWTSecret(cfg.JWTSecret)

	db, err := config.ConnectMySQL()
	if err != nil {
		log.Fatalf("Error connecting to MySQL: %v", err)
	}

	users, err := store.NewGormStore(db)
	if err != nil {
		log.Fatalf("Error initializing user store: %v", err)
	}

	// Redis is optional; without it the session pointer and the rate
	// limiter fall back to in-process state.
	redisClient, err := config.ConnectRedis()
	if err != nil {
		log.Printf("Redis unavailable, using in-process fallback: %v", err)
	}
	sessions := store.NewRedisSessions(redisClient)

	consultations := chat.NewService(nil)

	// Set Gin mode from config
	gin.SetMode(cfg.GinMode)

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Inject(users, sessions, consultations))
	router.Use(middleware.SessionResolver())

	// Basic HTTP handler for root path
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Welcome to %s!", cfg.AppName),
		})
	})

	loginLimit := middleware.RateLimiter(middleware.RateLimitConfig{
		Limit:  10,
		Window: time.Minute,
	})
	router.POST("/login", loginLimit, endpoint.Login)
	router.POST("/logout", endpoint.Logout)

	router.GET("/user", endpoint.GetUser)
	router.PATCH("/user", endpoint.UpdateUser)
	router.GET("/user/all", endpoint.ListAllUsers)

	router.GET("/doctor", endpoint.ListDoctors)
	router.GET("/doctor/:id", endpoint.GetDoctor)
	router.GET("/doctor/:id/slots", endpoint.DoctorSlots)
	router.POST("/doctor/:id/book", endpoint.BookAppointment)

	router.GET("/report", endpoint.ListReports)
	router.POST("/report", endpoint.CreateReport)
	router.PATCH("/report/:id", endpoint.UpdateReport)
	router.DELETE("/report/:id", endpoint.DeleteReport)

	router.POST("/consultation", endpoint.OpenConsultation)
	router.POST("/consultation/:id/message", endpoint.SendConsultationMessage)
	router.POST("/consultation/:id/end", endpoint.EndConsultation)

	router.POST("/summary", endpoint.GenerateSummary)
	router.POST("/summary/save", endpoint.SaveSummary)

	// Start server on specified port
	address := fmt.Sprintf(":%d", cfg.AppPort)
	if err := router.Run(address); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

// main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/clinicore/hpms/config"
	"github.com/clinicore/hpms/endpoint"
	"github.com/clinicore/hpms/middleware"
	"github.com/clinicore/hpms/model"
	"github.com/clinicore/hpms/seed"
	"github.com/gin-gonic/gin"
)

func main() {
	seedFlag := flag.Bool("seed", false, "wipe the store and repopulate it with generated sample data, then exit")
	flag.Parse()

	// Load the configuration
	cfg := config.LoadConfig()

	db, err := config.ConnectSQLite()
	if err != nil {
		log.Fatalf("Error opening store: %v", err)
	}
	if err := model.EnsureSchema(db); err != nil {
		log.Fatalf("Error ensuring schema: %v", err)
	}

	if *seedFlag {
		if err := seed.Run(db, seed.DefaultOptions()); err != nil {
			log.Fatalf("Error seeding sample data: %v", err)
		}
		log.Println("Sample data generation complete.")
		return
	}

	// Redis is optional; without it the rate limiter allows everything.
	if _, err := config.ConnectRedis(); err != nil {
		log.Printf("Redis unavailable, rate limiting disabled: %v", err)
	}

	// Set Gin mode from config
	gin.SetMode(cfg.GinMode)

	// Create a Gin router with default middleware
	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DatabaseMiddleware(db))

	writeLimiter := middleware.RateLimiter(middleware.RateLimitConfig{})

	// Basic HTTP handler for root path
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": fmt.Sprintf("Welcome to %s!", cfg.AppName),
		})
	})

	router.GET("/patient", endpoint.ListPatients)
	router.GET("/patient/:id", endpoint.GetPatientInfo)
	router.POST("/patient", writeLimiter, endpoint.CreatePatient)
	router.PATCH("/patient/:id", writeLimiter, endpoint.UpdatePatient)
	router.DELETE("/patient/:id", writeLimiter, endpoint.DeletePatient)

	router.GET("/doctor", endpoint.ListDoctors)
	router.GET("/doctor/:id", endpoint.GetDoctorInfo)
	router.POST("/doctor", writeLimiter, endpoint.CreateDoctor)
	router.PATCH("/doctor/:id", writeLimiter, endpoint.UpdateDoctor)
	router.DELETE("/doctor/:id", writeLimiter, endpoint.DeleteDoctor)

	router.GET("/appointment", endpoint.ListAppointments)
	router.GET("/appointment/:id", endpoint.GetAppointmentInfo)
	router.POST("/appointment", writeLimiter, endpoint.CreateAppointment)
	router.PATCH("/appointment/:id", writeLimiter, endpoint.UpdateAppointment)
	router.DELETE("/appointment/:id", writeLimiter, endpoint.DeleteAppointment)

	router.GET("/medical-record", endpoint.ListMedicalRecords)
	router.GET("/medical-record/:id", endpoint.GetMedicalRecordInfo)
	router.POST("/medical-record", writeLimiter, endpoint.CreateMedicalRecord)
	router.PATCH("/medical-record/:id", writeLimiter, endpoint.UpdateMedicalRecord)
	router.DELETE("/medical-record/:id", writeLimiter, endpoint.DeleteMedicalRecord)

	router.GET("/dashboard/summary", endpoint.GetSummary)
	router.GET("/dashboard/patients", endpoint.ListPatientOverview)
	router.GET("/search", endpoint.SearchDatabase)
	router.GET("/search/fields", endpoint.ListSearchFields)

	// Start server on specified port
	address := fmt.Sprintf(":%d", cfg.AppPort)
	if err := router.Run(address); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

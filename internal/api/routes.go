package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medpractice/doctor-dashboard/internal/service"
)

// SetupRoutes registers the dashboard API on router.
func SetupRoutes(
	router *gin.Engine,
	store *service.Store,
	archiveService service.ArchiveService,
	allowedOrigins []string,
) {
	authHandler := NewAuthHandler(store)
	dashboardHandler := NewDashboardHandler(store)
	patientHandler := NewPatientHandler(store)
	appointmentHandler := NewAppointmentHandler(store)
	trainingHandler := NewTrainingHandler(store)
	dataHandler := NewDataHandler(store, archiveService)
	eventsHandler := NewEventsHandler(store)

	router.Use(RequestIDMiddleware(), CORSMiddleware(allowedOrigins))

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/logout", authHandler.Logout)
		}
	}

	protected := apiV1.Group("")
	protected.Use(SessionMiddleware(store))
	{
		protected.GET("/me", authHandler.Me)
		protected.GET("/statistics", dashboardHandler.GetStatistics)
		protected.GET("/doctors", dashboardHandler.GetDoctors)
		protected.GET("/events", eventsHandler.Stream)

		patientGroup := protected.Group("/patients")
		{
			patientGroup.GET("", patientHandler.ListPatients)
			patientGroup.POST("", patientHandler.CreatePatient)
			patientGroup.PATCH("/:id", patientHandler.UpdatePatient)
			patientGroup.DELETE("/:id", patientHandler.DeletePatient)
		}

		appointmentGroup := protected.Group("/appointments")
		{
			appointmentGroup.GET("", appointmentHandler.ListAppointments)
			appointmentGroup.GET("/calendar", appointmentHandler.Calendar)
			appointmentGroup.POST("", appointmentHandler.CreateAppointment)
			appointmentGroup.DELETE("/:id", appointmentHandler.DeleteAppointment)
		}

		trainingGroup := protected.Group("/trainings")
		{
			trainingGroup.GET("", trainingHandler.ListTrainings)
			trainingGroup.POST("", trainingHandler.CreateTraining)
			trainingGroup.PATCH("/:id", trainingHandler.UpdateTraining)
			trainingGroup.POST("/:id/complete", trainingHandler.CompleteTraining)
		}

		dataGroup := protected.Group("/data")
		{
			dataGroup.GET("/export", dataHandler.Export)
			dataGroup.POST("/import", dataHandler.Import)
			dataGroup.POST("/archive", dataHandler.Archive)
		}
	}
}

package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Harshadsshinde/hospital-management-system/internal/config"
	"github.com/Harshadsshinde/hospital-management-system/internal/metrics"
	"github.com/Harshadsshinde/hospital-management-system/internal/middleware"
	"github.com/Harshadsshinde/hospital-management-system/internal/models"
)

// NewRouter wires the route table: public registration/login/messages,
// patient-gated booking, admin-gated management.
func NewRouter(cfg *config.HTTP, h *Handler, m *metrics.Metrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	// Metrics wrap the error translator so recorded statuses match what the
	// client saw.
	if m != nil {
		r.Use(m.Middleware())
		r.GET("/metrics", m.Handler())
	}
	r.Use(middleware.ErrorHandler())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	adminAuth := middleware.Authenticate(h.Users, h.Tokens, middleware.AdminCookie, models.RoleAdmin)
	patientAuth := middleware.Authenticate(h.Users, h.Tokens, middleware.PatientCookie, models.RolePatient)

	api := r.Group("/api/v1")

	user := api.Group("/user")
	{
		user.POST("/patient/register", h.RegisterPatient)
		user.POST("/login", h.Login)
		user.POST("/admin/addnew", adminAuth, h.AddNewAdmin)
		user.POST("/doctor/addnew", adminAuth, h.AddNewDoctor)
		user.GET("/doctors", adminAuth, h.GetAllDoctors)
		user.GET("/patient/me", patientAuth, h.GetUserDetails)
		user.GET("/admin/me", adminAuth, h.GetUserDetails)
		user.GET("/patient/logout", patientAuth, h.LogoutPatient)
		user.GET("/admin/logout", adminAuth, h.LogoutAdmin)
	}

	appointment := api.Group("/appointment")
	{
		appointment.POST("/post", patientAuth, h.PostAppointment)
		appointment.GET("/getall", adminAuth, h.GetAllAppointments)
		appointment.PUT("/update/:id", adminAuth, h.UpdateAppointment)
		appointment.DELETE("/delete/:id", adminAuth, h.DeleteAppointment)
	}

	message := api.Group("/message")
	{
		message.POST("/send", h.SendMessage)
		message.GET("/getall", adminAuth, h.GetAllMessages)
	}

	return r
}

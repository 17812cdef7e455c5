package rest

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"clinic/config"
	"clinic/internal/service"
)

type Handler struct {
	services *service.Services
	logger   *zap.Logger
	config   *config.Config
}

func NewHandler(services *service.Services, logger *zap.Logger, config *config.Config) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		config:   config,
	}
}

func (h *Handler) InitRoutes(router *gin.Engine) {
	router.Use(h.loggerMiddleware())
	router.Use(h.corsMiddleware())

	api := router.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.register)
			auth.POST("/login", h.login)
			auth.POST("/refresh", h.refreshTokens)
			auth.POST("/logout", h.logout)
		}

		users := api.Group("/users")
		users.Use(h.authMiddleware())
		{
			users.GET("/me", h.getCurrentUser)
			users.GET("/:id", h.getUserByID)
			users.PUT("/:id", h.updateUser)
			users.PUT("/:id/password", h.updatePassword)

			admin := users.Group("/")
			admin.Use(h.adminMiddleware())
			{
				admin.POST("/", h.createUser)
				admin.GET("/", h.getUsers)
				admin.DELETE("/:id", h.deleteUser)
			}
		}

		patients := api.Group("/patients")
		patients.Use(h.authMiddleware())
		{
			patients.POST("/", h.createPatient)
			patients.GET("/me", h.getMyPatientProfile)
			patients.GET("/:id", h.getPatientByID)
			patients.PUT("/:id", h.updatePatient)
		}

		doctors := api.Group("/doctors")
		{
			doctors.GET("/", h.getDoctors)
			doctors.GET("/me", h.authMiddleware(), h.doctorMiddleware(), h.getMyDoctorProfile)
			doctors.GET("/:id", h.getDoctorByID)
			doctors.GET("/:id/slots", h.getDoctorSlots)
			doctors.GET("/:id/schedules", h.getDoctorSchedules)

			admin := doctors.Group("/", h.authMiddleware(), h.adminMiddleware())
			{
				admin.POST("/", h.createDoctor)
				admin.PUT("/:id", h.updateDoctor)
			}
		}

		schedules := api.Group("/schedules")
		schedules.Use(h.authMiddleware())
		{
			schedules.GET("/:id", h.getScheduleByID)

			doctor := schedules.Group("/", h.doctorMiddleware())
			{
				doctor.POST("/", h.registerShift)
				doctor.GET("/", h.getMySchedules)
				doctor.DELETE("/:id", h.cancelShift)
			}
		}

		appointments := api.Group("/appointments")
		appointments.Use(h.authMiddleware())
		{
			appointments.POST("/", h.patientMiddleware(), h.createAppointment)
			appointments.GET("/", h.getAppointments)
			appointments.GET("/:id", h.getAppointmentByID)
			appointments.GET("/:id/record", h.getAppointmentRecord)
			appointments.DELETE("/:id", h.patientMiddleware(), h.cancelAppointment)
			appointments.PUT("/:id/confirm", h.doctorMiddleware(), h.confirmAppointment)
			appointments.PUT("/:id/examine", h.doctorMiddleware(), h.startExamination)
		}

		records := api.Group("/records")
		records.Use(h.authMiddleware())
		{
			records.POST("/", h.doctorMiddleware(), h.completeExamination)
			records.GET("/", h.getRecords)
			records.GET("/:id", h.getRecordByID)
		}

		specialties := api.Group("/specialties")
		{
			specialties.GET("/", h.getSpecialties)
			specialties.GET("/:id", h.getSpecialtyByID)

			admin := specialties.Group("/", h.authMiddleware(), h.adminMiddleware())
			{
				admin.POST("/", h.createSpecialty)
				admin.PUT("/:id", h.updateSpecialty)
				admin.DELETE("/:id", h.deleteSpecialty)
			}
		}

		services := api.Group("/services")
		{
			services.GET("/", h.getServices)
			services.GET("/:id", h.getServiceByID)

			admin := services.Group("/", h.authMiddleware(), h.adminMiddleware())
			{
				admin.POST("/", h.createService)
				admin.PUT("/:id", h.updateService)
				admin.DELETE("/:id", h.deleteService)
			}
		}
	}
}

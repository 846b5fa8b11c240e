package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/admissions-crm/internal/app/controllers"
	"github.com/yigit/admissions-crm/internal/app/models/dto"
	"github.com/yigit/admissions-crm/internal/middleware"
	"github.com/yigit/admissions-crm/internal/pkg/websocket"
)

// Controllers groups the HTTP handlers mounted under /api/v1
type Controllers struct {
	Auth          *controllers.AuthController
	Student       *controllers.StudentController
	Communication *controllers.CommunicationController
	Note          *controllers.NoteController
	Activity      *controllers.ActivityController
	Feed          *websocket.Handler
}

// LoginLimit configures the login rate limiter. A non-positive PerMinute disables it.
type LoginLimit struct {
	PerMinute int
	Burst     int
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrl Controllers,
	authMiddleware *middleware.AuthMiddleware,
	loginLimit LoginLimit,
) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", healthCheck)

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login",
			middleware.RateLimitMiddleware(loginLimit.PerMinute, loginLimit.Burst),
			middleware.ValidateRequest[dto.LoginRequest](),
			ctrl.Auth.Login,
		)
		auth.POST("/refresh", ctrl.Auth.RefreshToken)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		session := authenticated.Group("/auth")
		{
			session.POST("/logout", ctrl.Auth.Logout)
			session.GET("/me", ctrl.Auth.GetCurrentUser)
			session.GET("/session", ctrl.Auth.GetSession)
			session.PUT("/profile", ctrl.Auth.UpdateProfile)
		}

		students := authenticated.Group("/students")
		{
			students.GET("", ctrl.Student.GetStudents)
			students.POST("", ctrl.Student.CreateStudent)
			students.GET("/stats", ctrl.Student.GetStudentStats)
			students.GET("/countries", ctrl.Student.GetCountries)
			students.GET("/:id", ctrl.Student.GetStudent)
			students.PUT("/:id", ctrl.Student.UpdateStudent)
			students.DELETE("/:id", ctrl.Student.DeleteStudent)
			students.GET("/:id/timeline", ctrl.Student.GetStudentTimeline)

			students.GET("/:id/notes", ctrl.Note.GetStudentNotes)
			students.POST("/:id/notes", ctrl.Note.CreateNote)

			students.GET("/:id/activities", ctrl.Activity.GetStudentActivities)
			students.POST("/:id/activities", ctrl.Activity.RecordActivity)
		}

		notes := authenticated.Group("/notes")
		{
			notes.PUT("/:id", ctrl.Note.UpdateNote)
			notes.DELETE("/:id", ctrl.Note.DeleteNote)
		}

		communications := authenticated.Group("/communications")
		{
			communications.GET("", ctrl.Communication.GetCommunications)
			communications.POST("", ctrl.Communication.CreateCommunication)
			communications.GET("/stats", ctrl.Communication.GetCommunicationStats)
			communications.GET("/staff", ctrl.Communication.GetStaffMembers)
			communications.GET("/:id", ctrl.Communication.GetCommunication)
			communications.PUT("/:id", ctrl.Communication.UpdateCommunication)
			communications.DELETE("/:id", ctrl.Communication.DeleteCommunication)
		}

		if ctrl.Feed != nil {
			authenticated.GET("/feed/ws", ctrl.Feed.HandleConnection)
		}
	}
}

// healthCheck godoc
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} dto.APIResponse "Service is up"
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
		"status": "ok",
		"time":   time.Now().UTC(),
	}, ""))
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"educonnect-backend/internal/config"
	"educonnect-backend/internal/core"
	"educonnect-backend/internal/middleware"
)

// Services bundles the core services the handlers depend on.
type Services struct {
	Users           core.UserService
	Classes         core.ClassService
	TeacherRequests core.TeacherRequestService
	Payments        core.PaymentService
	Feedback        core.FeedbackService
	Prompts         core.PromptService
	Tokens          core.TokenService
}

// SetupRoutes configures all the application routes with their handlers and middleware.
// Global middleware (logging, recovery, CORS) is applied in main before this runs.
func SetupRoutes(router *gin.Engine, appConfig *config.Config, logger *zap.Logger, services Services) {
	authenticated := middleware.Require(middleware.Authenticated(services.Tokens))
	adminOnly := middleware.Require(
		middleware.Authenticated(services.Tokens),
		middleware.AdminOnly(services.Users),
	)
	selfOnly := middleware.Require(
		middleware.Authenticated(services.Tokens),
		middleware.SelfOnly("email"),
	)

	authHandler := NewAuthHandler(services.Tokens, appConfig.SecureCookies(), logger)
	userHandler := NewUserHandler(services.Users, logger)
	classHandler := NewClassHandler(services.Classes, logger)
	requestHandler := NewTeacherRequestHandler(services.TeacherRequests, logger)
	paymentHandler := NewPaymentHandler(services.Payments, logger)
	feedbackHandler := NewFeedbackHandler(services.Feedback, logger)
	promptHandler := NewPromptHandler(services.Prompts, logger)

	// --- Session ---
	router.POST("/jwt", authHandler.IssueToken)
	router.GET("/logout", authHandler.Logout)

	// --- Users ---
	router.POST("/users/:email", userHandler.Register)
	router.GET("/users", adminOnly, userHandler.ListUsers)
	router.GET("/user", authenticated, userHandler.GetCurrentUser)
	router.GET("/users/admin/:email", selfOnly, userHandler.GetAdminFlag)
	router.GET("/users/search", userHandler.SearchUsers)
	router.PATCH("/users/admin/:id", adminOnly, userHandler.PromoteToAdmin)
	router.DELETE("/users/:id", adminOnly, userHandler.DeleteUser)

	// --- Classes ---
	router.POST("/class", authenticated, classHandler.CreateClass)
	router.GET("/allClasses", classHandler.ListAllClasses)
	router.GET("/myClasses", authenticated, classHandler.ListMyClasses)
	router.GET("/my-classes/:email", authenticated, classHandler.ListPublisherClasses)
	router.GET("/class/:id", authenticated, classHandler.GetClass)
	router.PUT("/class/:id", authenticated, classHandler.UpdateClass)
	router.PATCH("/my-classes/:id/assignments", authenticated, classHandler.SetAssignments)
	router.DELETE("/class/:id", authenticated, classHandler.DeleteClass)
	router.PATCH("/allClasses/approve/:id", adminOnly, classHandler.ApproveClass)
	router.PATCH("/allClasses/rejected/:id", adminOnly, classHandler.RejectClass)

	// --- Teacher requests ---
	router.POST("/teacher-req", authenticated, requestHandler.SubmitRequest)
	router.GET("/teacher-req", adminOnly, requestHandler.ListRequests)
	router.GET("/all-teacher", requestHandler.ListRequests)
	router.GET("/teacher-req/teacher/:email", authenticated, requestHandler.CheckTeacher)
	router.PATCH("/teacher-req/approve/:id", adminOnly, requestHandler.ApproveRequest)
	router.PATCH("/teacher-req/rejected/:id", adminOnly, requestHandler.RejectRequest)

	// --- Payments ---
	router.POST("/create-payment-intent/:id", paymentHandler.CreatePaymentIntent)
	router.POST("/payments", paymentHandler.RecordPayment)
	router.GET("/payments", adminOnly, paymentHandler.ListPayments)
	router.GET("/my-enrolled-class/:email", selfOnly, paymentHandler.ListEnrollments)

	// --- Feedback and prompt relay ---
	router.POST("/feedback", feedbackHandler.CreateFeedback)
	router.GET("/feedback", feedbackHandler.ListFeedback)
	router.POST("/geminiBot", promptHandler.Forward)

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello from EduConnect Server.")
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	logger.Info("API routes configured successfully.")
}

package routes

import (
	"net/http"
	"time"

	"haki/handlers"
	"haki/middleware"
	"haki/models"
	"haki/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration, login and recovery endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.InitiateRegistrationHandler)
		api.POST("/register/verify", hb.VerifyOTPHandler)
		api.POST("/register/finalize", hb.FinalizeRegistrationHandler)
		api.POST("/login", hb.LoginHandler)
		api.POST("/forgot-password", hb.ForgotPasswordHandler)
		api.POST("/reset-password", hb.ResetPasswordHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("/logout", hb.LogoutHandler)
		api.POST("/select-role", hb.SelectRoleHandler)
	}
}

// RegisterUserRoutes registers authenticated profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/me", hb.GetMeHandler)
		api.PATCH("/me", hb.UpdateMeHandler)
		api.PUT("/me/password", hb.UpdatePasswordHandler)
		api.DELETE("/me", hb.DeleteMeHandler)
		api.PUT("/me/fcm-token", hb.UpdateFCMTokenHandler)
	}
}

// RegisterSessionRoutes registers the navigation gate endpoint. It takes no
// auth middleware: the gate itself resolves the optional bearer token.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/session/route-check", hb.RouteCheckHandler)
}

// RegisterLawyerRoutes registers the verification application workflow and
// the public directory.
func RegisterLawyerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Public directory.
	directory := r.Group("/api/directory")
	{
		directory.GET("", hb.SearchDirectoryHandler)
		directory.GET("/:id", hb.GetProfileHandler)
	}

	apps := r.Group("/api/lawyer-applications")
	{
		apps.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		apps.POST("", hb.SubmitApplicationHandler)
		apps.GET("/me", hb.GetMyApplicationHandler)
		apps.PUT("/me", hb.ResubmitApplicationHandler)
		apps.POST("/me/appeal", hb.AppealHandler)
	}

	lawyers := r.Group("/api/lawyers")
	{
		lawyers.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		lawyers.Use(middleware.RequireRoles(models.RoleLawyer))
		lawyers.PATCH("/me/profile", hb.UpdateMyProfileHandler)
		lawyers.POST("/me/suspension-appeal", hb.AppealSuspensionHandler)
	}
}

// RegisterConsultationRoutes registers consultation booking endpoints.
func RegisterConsultationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/consultations")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("", hb.RequestConsultationHandler)
		api.GET("", hb.ListConsultationsHandler)
		api.PUT("/:id/respond", hb.RespondConsultationHandler)
		api.PUT("/:id/complete", hb.CompleteConsultationHandler)
		api.DELETE("/:id", hb.CancelConsultationHandler)
	}
}

// RegisterForumRoutes registers the community question board.
func RegisterForumRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/forum/threads")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("", hb.CreateThreadHandler)
		api.GET("", hb.ListThreadsHandler)
		api.GET("/:id", hb.GetThreadHandler)
		api.POST("/:id/replies", hb.ReplyHandler)
		api.DELETE("/:id", hb.DeleteThreadHandler)
		api.POST("/:id/report", hb.ReportThreadHandler)
	}
}

// RegisterGlossaryRoutes registers the public glossary search.
func RegisterGlossaryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/glossary", hb.GlossarySearchHandler)
}

// RegisterAIRoutes registers chatbot endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ai")
	{
		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("/chat", hb.AIChatHandler)
		api.DELETE("/context", hb.AIClearContextHandler)
		api.POST("/voice", hb.AIVoiceHandler)
	}
}

// RegisterStorageRoutes registers upload endpoints.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("/upload/:bucket", hb.UploadFileHandler)
		api.POST("/documents", hb.UploadDocumentHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		adminGroup.Use(middleware.AdminAuthMiddleware())

		adminGroup.GET("/users", hb.AdminHandler.GetAllUsersHandler)

		adminGroup.GET("/applications", hb.AdminHandler.ListApplicationsHandler)
		adminGroup.PUT("/applications/:id/decision", hb.AdminHandler.DecideApplicationHandler)
		adminGroup.POST("/rollbook/import", hb.AdminHandler.ImportRollBookHandler)
		adminGroup.GET("/lawyers/suspended", hb.AdminHandler.ListSuspendedHandler)
		adminGroup.PUT("/lawyers/:id/suspend", hb.AdminHandler.SuspendLawyerHandler)
		adminGroup.PUT("/lawyers/:id/lift-suspension", hb.AdminHandler.LiftSuspensionHandler)

		adminGroup.PUT("/forum/threads/:id/hide", hb.AdminHandler.HideThreadHandler)
		adminGroup.PUT("/forum/replies/:id/hide", hb.AdminHandler.HideReplyHandler)

		adminGroup.POST("/glossary", hb.GlossaryHandler.CreateTermHandler)
		adminGroup.PUT("/glossary/:id", hb.GlossaryHandler.UpdateTermHandler)
		adminGroup.DELETE("/glossary/:id", hb.GlossaryHandler.DeleteTermHandler)
		adminGroup.POST("/glossary/import", hb.GlossaryHandler.ImportCSVHandler)

		adminGroup.GET("/documents/url", hb.StorageHandler.GetDocumentURLHandler)

		// Superadmin only.
		super := adminGroup.Group("")
		super.Use(middleware.SuperAdminAuthMiddleware())
		super.GET("/audit", hb.AdminHandler.ListAuditHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterSessionRoutes(r, hb)
	RegisterLawyerRoutes(r, hb)
	RegisterConsultationRoutes(r, hb)
	RegisterForumRoutes(r, hb)
	RegisterGlossaryRoutes(r, hb)
	RegisterAIRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}

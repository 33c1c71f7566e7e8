package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"haki/config"
	"haki/cron"
	"haki/database"
	auditRepoPkg "haki/database/repository/audit"
	consultationRepoPkg "haki/database/repository/consultation"
	forumRepoPkg "haki/database/repository/forum"
	glossaryRepoPkg "haki/database/repository/glossary"
	lawyerRepoPkg "haki/database/repository/lawyer"
	userRepoPkg "haki/database/repository/user"
	"haki/handlers"
	"haki/middleware"
	"haki/routes"
	"haki/services/access"
	"haki/services/audit"
	"haki/services/consultation"
	"haki/services/forum"
	"haki/services/glossary"
	ai "haki/services/intelligence"
	"haki/services/lawyer"
	"haki/services/notification"
	"haki/services/session"
	"haki/services/tasks"
	"haki/services/user"
	"haki/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	utils.StartHealthMonitor(map[string]*redis.Client{
		"cache": utils.GetCacheClient(),
		"auth":  utils.GetAuthCacheClient(),
		"otp":   utils.GetOTPCacheClient(),
		"ai":    utils.GetAIContextCacheClient(),
	}, database.MongoClient)

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	applicationRepo := lawyerRepoPkg.NewMongoApplicationRepo()
	profileRepo := lawyerRepoPkg.NewMongoProfileRepo()
	rollBookRepo := lawyerRepoPkg.NewMongoRollBookRepo()
	consultationRepo := consultationRepoPkg.NewMongoConsultationRepo()
	forumRepo := forumRepoPkg.NewMongoForumRepo()
	glossaryRepo := glossaryRepoPkg.NewMongoGlossaryRepo()
	auditRepo := auditRepoPkg.NewMongoAuditRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	auditService := &audit.DefaultAuditService{
		Repo: auditRepo,
	}

	notificationService := &notification.DefaultNotificationService{
		Users: userRepo,
	}

	lawyerService := &lawyer.DefaultLawyerService{
		Apps:     applicationRepo,
		Profiles: profileRepo,
		RollBook: rollBookRepo,
		Users:    userRepo,
		Audit:    auditService,
		Notify:   notificationService,
	}

	reminderClient := tasks.NewReminderClient()
	defer reminderClient.Close()

	consultationService := &consultation.DefaultConsultationService{
		Repo:     consultationRepo,
		Profiles: profileRepo,
		Notify:   notificationService,
		Reminder: reminderClient,
	}

	forumService := &forum.DefaultForumService{
		Repo:  forumRepo,
		Audit: auditService,
	}

	glossaryService := &glossary.DefaultGlossaryService{
		Repo:  glossaryRepo,
		Audit: auditService,
	}

	ctxStore := ai.NewRedisContextStore(utils.GetAIContextCacheClient(), 30*time.Minute)
	aiService := &ai.DefaultAIService{
		Gen:      ai.NewGeminiClient(config.AppConfig.GeminiAPIKey),
		CtxStore: ctxStore,
	}

	sessionService := &session.DefaultSessionService{
		Users: userRepo,
		Apps:  applicationRepo,
	}
	gate := access.NewSessionGate(sessionService, sessionService)

	// handlers.
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	sessionHandler := handlers.NewSessionHandler(gate)
	lawyerHandler := handlers.NewLawyerHandler(lawyerService)
	consultationHandler := handlers.NewConsultationHandler(consultationService)
	forumHandler := handlers.NewForumHandler(forumService)
	glossaryHandler := handlers.NewGlossaryHandler(glossaryService)
	aiHandler := handlers.NewAIHandler(aiService)
	storageHandler := handlers.NewStorageHandler(cloudinaryStorageService)
	adminHandler := handlers.NewAdminHandler(userService, lawyerService, forumService, auditService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Auth endpoints.
		InitiateRegistrationHandler: authHandler.InitiateRegistrationHandler,
		VerifyOTPHandler:            authHandler.VerifyOTPHandler,
		FinalizeRegistrationHandler: authHandler.FinalizeRegistrationHandler,
		LoginHandler:                authHandler.LoginHandler,
		LogoutHandler:               authHandler.LogoutHandler,
		ForgotPasswordHandler:       authHandler.ForgotPasswordHandler,
		ResetPasswordHandler:        authHandler.ResetPasswordHandler,
		SelectRoleHandler:           authHandler.SelectRoleHandler,

		// User endpoints.
		GetMeHandler:          userHandler.GetMeHandler,
		UpdateMeHandler:       userHandler.UpdateMeHandler,
		UpdatePasswordHandler: userHandler.UpdatePasswordHandler,
		DeleteMeHandler:       userHandler.DeleteMeHandler,
		UpdateFCMTokenHandler: userHandler.UpdateFCMTokenHandler,

		// Session gate.
		RouteCheckHandler: sessionHandler.RouteCheckHandler,

		// Lawyer application endpoints.
		SubmitApplicationHandler:   lawyerHandler.SubmitApplicationHandler,
		GetMyApplicationHandler:    lawyerHandler.GetMyApplicationHandler,
		ResubmitApplicationHandler: lawyerHandler.ResubmitApplicationHandler,
		AppealHandler:              lawyerHandler.AppealHandler,
		UpdateMyProfileHandler:     lawyerHandler.UpdateMyProfileHandler,
		AppealSuspensionHandler:    lawyerHandler.AppealSuspensionHandler,

		// Directory endpoints.
		SearchDirectoryHandler: lawyerHandler.SearchDirectoryHandler,
		GetProfileHandler:      lawyerHandler.GetProfileHandler,

		// Consultation endpoints.
		RequestConsultationHandler:  consultationHandler.RequestHandler,
		RespondConsultationHandler:  consultationHandler.RespondHandler,
		CancelConsultationHandler:   consultationHandler.CancelHandler,
		CompleteConsultationHandler: consultationHandler.CompleteHandler,
		ListConsultationsHandler:    consultationHandler.ListMineHandler,

		// Forum endpoints.
		CreateThreadHandler: forumHandler.CreateThreadHandler,
		ListThreadsHandler:  forumHandler.ListThreadsHandler,
		GetThreadHandler:    forumHandler.GetThreadHandler,
		ReplyHandler:        forumHandler.ReplyHandler,
		DeleteThreadHandler: forumHandler.DeleteThreadHandler,
		ReportThreadHandler: forumHandler.ReportThreadHandler,

		// Glossary endpoints.
		GlossarySearchHandler: glossaryHandler.SearchHandler,

		// AI endpoints.
		AIChatHandler:         aiHandler.ChatHandler,
		AIClearContextHandler: aiHandler.ClearContextHandler,
		AIVoiceHandler:        aiHandler.VoiceTranscribeHandler,

		// Storage endpoints.
		UploadFileHandler:     storageHandler.UploadFileHandler,
		UploadDocumentHandler: storageHandler.UploadDocumentHandler,

		// Admin endpoints.
		AdminHandler:    adminHandler,
		GlossaryHandler: glossaryHandler,
		StorageHandler:  storageHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers.
	cron.InitReminderWorker(notificationService)
	cron.InitSuspensionSweeper(lawyerService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

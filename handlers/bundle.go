package handlers

import (
	userRepoPkg "haki/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Auth endpoints
	InitiateRegistrationHandler gin.HandlerFunc
	VerifyOTPHandler            gin.HandlerFunc
	FinalizeRegistrationHandler gin.HandlerFunc
	LoginHandler                gin.HandlerFunc
	LogoutHandler               gin.HandlerFunc
	ForgotPasswordHandler       gin.HandlerFunc
	ResetPasswordHandler        gin.HandlerFunc
	SelectRoleHandler           gin.HandlerFunc

	// User endpoints
	GetMeHandler          gin.HandlerFunc
	UpdateMeHandler       gin.HandlerFunc
	UpdatePasswordHandler gin.HandlerFunc
	DeleteMeHandler       gin.HandlerFunc
	UpdateFCMTokenHandler gin.HandlerFunc

	// Session gate
	RouteCheckHandler gin.HandlerFunc

	// Lawyer application endpoints
	SubmitApplicationHandler   gin.HandlerFunc
	GetMyApplicationHandler    gin.HandlerFunc
	ResubmitApplicationHandler gin.HandlerFunc
	AppealHandler              gin.HandlerFunc
	UpdateMyProfileHandler     gin.HandlerFunc
	AppealSuspensionHandler    gin.HandlerFunc

	// Directory endpoints
	SearchDirectoryHandler gin.HandlerFunc
	GetProfileHandler      gin.HandlerFunc

	// Consultation endpoints
	RequestConsultationHandler  gin.HandlerFunc
	RespondConsultationHandler  gin.HandlerFunc
	CancelConsultationHandler   gin.HandlerFunc
	CompleteConsultationHandler gin.HandlerFunc
	ListConsultationsHandler    gin.HandlerFunc

	// Forum endpoints
	CreateThreadHandler gin.HandlerFunc
	ListThreadsHandler  gin.HandlerFunc
	GetThreadHandler    gin.HandlerFunc
	ReplyHandler        gin.HandlerFunc
	DeleteThreadHandler gin.HandlerFunc
	ReportThreadHandler gin.HandlerFunc

	// Glossary endpoints
	GlossarySearchHandler gin.HandlerFunc

	// AI endpoints
	AIChatHandler         gin.HandlerFunc
	AIClearContextHandler gin.HandlerFunc
	AIVoiceHandler        gin.HandlerFunc

	// Storage endpoints
	UploadFileHandler     gin.HandlerFunc
	UploadDocumentHandler gin.HandlerFunc

	// Admin endpoints
	AdminHandler    *AdminHandler
	GlossaryHandler *GlossaryHandler
	StorageHandler  *StorageHandler
}

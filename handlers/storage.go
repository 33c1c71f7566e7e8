package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"time"

	"haki/services/storage"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

// StorageHandler handles avatar and verification document uploads.
type StorageHandler struct {
	StorageSvc    storage.StorageService
	EncryptionKey string
}

// NewStorageHandler creates a new StorageHandler. Verification documents
// are encrypted with the configured key before upload.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{
		StorageSvc:    svc,
		EncryptionKey: viper.GetString("cloudinary.documentKey"),
	}
}

// allowedBuckets defines permitted buckets for general file uploads.
var allowedBuckets = map[string]bool{
	"avatars": true,
	"images":  true,
}

// UploadFileHandler handles general file uploads.
func (h *StorageHandler) UploadFileHandler(c *gin.Context) {
	bucket := c.Param("bucket")
	if !allowedBuckets[bucket] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bucket; allowed values are 'avatars' and 'images'"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadFile(c, tempFilePath, bucket)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"publicId": publicID})
}

// UploadDocumentHandler handles verification document uploads. Documents
// are encrypted before they leave the server.
func (h *StorageHandler) UploadDocumentHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	destFolder := "applications/" + currentUserID(c)
	publicID, err := h.StorageSvc.UploadApplicationDocument(c, tempFilePath, destFolder, h.EncryptionKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload document", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"publicId": publicID})
}

// GetDocumentURLHandler returns a short-lived signed URL for a verification
// document. Reviewers use it from the admin dashboard.
func (h *StorageHandler) GetDocumentURLHandler(c *gin.Context) {
	publicID := c.Query("publicId")
	if publicID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "publicId query parameter is required"})
		return
	}

	url, err := h.StorageSvc.GetSecureDownloadURL(c, "raw", publicID, 15*time.Minute)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build download URL", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

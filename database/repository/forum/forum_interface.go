package forumRepo

import (
	"haki/models"
)

// ForumRepository defines data access for forum threads and replies.
type ForumRepository interface {
	// CreateThread inserts a new thread.
	CreateThread(thread *models.ForumThread) error
	// GetThreadByID retrieves a thread by its unique ID.
	GetThreadByID(id string) (*models.ForumThread, error)
	// UpdateThread modifies an existing thread.
	UpdateThread(thread *models.ForumThread) error
	// ListThreads retrieves visible threads, optionally filtered by category, newest first.
	ListThreads(category string, page, pageSize int64) ([]models.ForumThread, error)
	// CreateReply inserts a reply and increments the thread's reply counter.
	CreateReply(reply *models.ForumReply) error
	// ListReplies retrieves visible replies for a thread, oldest first.
	ListReplies(threadID string, page, pageSize int64) ([]models.ForumReply, error)
	// HideReply marks a reply as hidden (moderation).
	HideReply(id string) error
	// IncrementReportCount bumps a thread's report counter.
	IncrementReportCount(threadID string) error
}

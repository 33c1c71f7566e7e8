// Package forum implements the community question board.
package forum

import (
	"errors"
	"fmt"

	forumRepo "haki/database/repository/forum"
	"haki/models"
	"haki/services/audit"

	"github.com/google/uuid"
)

// ErrNotAuthor is returned when mutating someone else's post.
var ErrNotAuthor = errors.New("only the author can modify this post")

// ThreadRequest carries the fields of a new thread.
type ThreadRequest struct {
	AuthorID string `json:"-"`
	Title    string `json:"title" binding:"required"`
	Body     string `json:"body" binding:"required"`
	Category string `json:"category" binding:"required"`
}

type ForumService interface {
	CreateThread(req ThreadRequest) (*models.ForumThread, error)
	GetThread(id string) (*models.ForumThread, []models.ForumReply, error)
	ListThreads(category string, page, pageSize int64) ([]models.ForumThread, error)
	Reply(threadID, authorID, body string) (*models.ForumReply, error)
	DeleteThread(threadID, authorID string) error
	ReportThread(threadID string) error

	// Moderation (admin)
	HideThread(threadID, actorID, actorRole string) error
	HideReply(replyID, actorID, actorRole string) error
}

// DefaultForumService is the production implementation.
type DefaultForumService struct {
	Repo  forumRepo.ForumRepository
	Audit audit.AuditService
}

// CreateThread posts a new thread.
func (s *DefaultForumService) CreateThread(req ThreadRequest) (*models.ForumThread, error) {
	if req.Title == "" || req.Body == "" {
		return nil, fmt.Errorf("title and body are required")
	}

	thread := &models.ForumThread{
		ID:       uuid.New().String(),
		AuthorID: req.AuthorID,
		Title:    req.Title,
		Body:     req.Body,
		Category: req.Category,
	}
	if err := s.Repo.CreateThread(thread); err != nil {
		return nil, err
	}
	return thread, nil
}

// GetThread returns a thread with its visible replies.
func (s *DefaultForumService) GetThread(id string) (*models.ForumThread, []models.ForumReply, error) {
	thread, err := s.Repo.GetThreadByID(id)
	if err != nil {
		return nil, nil, err
	}
	if thread.Hidden || thread.Deleted {
		return nil, nil, fmt.Errorf("thread not found")
	}

	replies, err := s.Repo.ListReplies(id, 1, 0)
	if err != nil {
		return nil, nil, err
	}
	return thread, replies, nil
}

// ListThreads returns visible threads, optionally filtered by category.
func (s *DefaultForumService) ListThreads(category string, page, pageSize int64) ([]models.ForumThread, error) {
	return s.Repo.ListThreads(category, page, pageSize)
}

// Reply posts a response in a thread.
func (s *DefaultForumService) Reply(threadID, authorID, body string) (*models.ForumReply, error) {
	if body == "" {
		return nil, fmt.Errorf("body is required")
	}

	thread, err := s.Repo.GetThreadByID(threadID)
	if err != nil {
		return nil, err
	}
	if thread.Hidden || thread.Deleted {
		return nil, fmt.Errorf("thread not found")
	}

	reply := &models.ForumReply{
		ID:       uuid.New().String(),
		ThreadID: threadID,
		AuthorID: authorID,
		Body:     body,
	}
	if err := s.Repo.CreateReply(reply); err != nil {
		return nil, err
	}
	return reply, nil
}

// DeleteThread soft-deletes the author's own thread.
func (s *DefaultForumService) DeleteThread(threadID, authorID string) error {
	thread, err := s.Repo.GetThreadByID(threadID)
	if err != nil {
		return err
	}
	if thread.AuthorID != authorID {
		return ErrNotAuthor
	}

	thread.Deleted = true
	return s.Repo.UpdateThread(thread)
}

// ReportThread bumps the thread's report counter for moderator review.
func (s *DefaultForumService) ReportThread(threadID string) error {
	return s.Repo.IncrementReportCount(threadID)
}

// HideThread removes a thread from public view (moderation).
func (s *DefaultForumService) HideThread(threadID, actorID, actorRole string) error {
	thread, err := s.Repo.GetThreadByID(threadID)
	if err != nil {
		return err
	}

	thread.Hidden = true
	if err := s.Repo.UpdateThread(thread); err != nil {
		return err
	}
	s.Audit.Record(actorID, actorRole, "forum.hide_thread", "forum_thread", threadID, "")
	return nil
}

// HideReply removes a reply from public view (moderation).
func (s *DefaultForumService) HideReply(replyID, actorID, actorRole string) error {
	if err := s.Repo.HideReply(replyID); err != nil {
		return err
	}
	s.Audit.Record(actorID, actorRole, "forum.hide_reply", "forum_reply", replyID, "")
	return nil
}

// models/forum.go
package models

import "time"

// ForumThread is a top-level discussion post.
type ForumThread struct {
	ID          string    `bson:"id" json:"id"`
	AuthorID    string    `bson:"author_id" json:"authorId"`
	Title       string    `bson:"title" json:"title"`
	Body        string    `bson:"body" json:"body"`
	Category    string    `bson:"category" json:"category"`
	Hidden      bool      `bson:"hidden" json:"-"`
	Deleted     bool      `bson:"deleted" json:"-"`
	ReportCount int       `bson:"report_count" json:"-"`
	ReplyCount  int       `bson:"reply_count" json:"replyCount"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

// ForumReply is a response inside a thread.
type ForumReply struct {
	ID        string    `bson:"id" json:"id"`
	ThreadID  string    `bson:"thread_id" json:"threadId"`
	AuthorID  string    `bson:"author_id" json:"authorId"`
	Body      string    `bson:"body" json:"body"`
	Hidden    bool      `bson:"hidden" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

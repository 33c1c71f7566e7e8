package forumRepo

import (
	"context"
	"fmt"
	"time"

	"haki/database"
	"haki/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoForumRepo implements ForumRepository using MongoDB.
type MongoForumRepo struct {
	threads *mongo.Collection
	replies *mongo.Collection
}

// NewMongoForumRepo creates a new ForumRepository backed by MongoDB.
func NewMongoForumRepo() ForumRepository {
	repo := &MongoForumRepo{
		threads: database.Collection("forum_threads"),
		replies: database.Collection("forum_replies"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create forum indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoForumRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	threadIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category", Value: 1}, {Key: "created_at", Value: -1}}},
	}
	if _, err := r.threads.Indexes().CreateMany(ctx, threadIndexes); err != nil {
		return fmt.Errorf("failed to create thread indexes: %w", err)
	}

	replyIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "thread_id", Value: 1}, {Key: "created_at", Value: 1}}},
	}
	if _, err := r.replies.Indexes().CreateMany(ctx, replyIndexes); err != nil {
		return fmt.Errorf("failed to create reply indexes: %w", err)
	}
	return nil
}

// CreateThread inserts a new thread document.
func (r *MongoForumRepo) CreateThread(thread *models.ForumThread) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	thread.CreatedAt = now
	thread.UpdatedAt = now

	if _, err := r.threads.InsertOne(ctx, thread); err != nil {
		return fmt.Errorf("failed to create thread: %w", err)
	}
	return nil
}

// GetThreadByID retrieves a thread by its unique ID.
func (r *MongoForumRepo) GetThreadByID(id string) (*models.ForumThread, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var thread models.ForumThread
	if err := r.threads.FindOne(ctx, bson.M{"id": id}).Decode(&thread); err != nil {
		return nil, fmt.Errorf("failed to fetch thread with id %s: %w", id, err)
	}
	return &thread, nil
}

// UpdateThread modifies an existing thread document.
func (r *MongoForumRepo) UpdateThread(thread *models.ForumThread) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	thread.UpdatedAt = time.Now()
	result, err := r.threads.UpdateOne(ctx, bson.M{"id": thread.ID}, bson.M{"$set": thread})
	if err != nil {
		return fmt.Errorf("failed to update thread with id %s: %w", thread.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("thread with id %s not found", thread.ID)
	}
	return nil
}

// ListThreads retrieves visible threads, optionally filtered by category, newest first.
func (r *MongoForumRepo) ListThreads(category string, page, pageSize int64) ([]models.ForumThread, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	filter := bson.M{"hidden": false, "deleted": false}
	if category != "" {
		filter["category"] = category
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip((page - 1) * pageSize).
		SetLimit(pageSize)

	cursor, err := r.threads.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list threads: %w", err)
	}
	defer cursor.Close(ctx)

	var threads []models.ForumThread
	for cursor.Next(ctx) {
		var t models.ForumThread
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to decode thread: %w", err)
		}
		threads = append(threads, t)
	}
	return threads, nil
}

// CreateReply inserts a reply and increments the thread's reply counter.
func (r *MongoForumRepo) CreateReply(reply *models.ForumReply) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	reply.CreatedAt = time.Now()
	if _, err := r.replies.InsertOne(ctx, reply); err != nil {
		return fmt.Errorf("failed to create reply: %w", err)
	}

	update := bson.M{"$inc": bson.M{"reply_count": 1}, "$set": bson.M{"updated_at": time.Now()}}
	if _, err := r.threads.UpdateOne(ctx, bson.M{"id": reply.ThreadID}, update); err != nil {
		return fmt.Errorf("failed to bump reply count for thread %s: %w", reply.ThreadID, err)
	}
	return nil
}

// ListReplies retrieves visible replies for a thread, oldest first.
func (r *MongoForumRepo) ListReplies(threadID string, page, pageSize int64) ([]models.ForumReply, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 50
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetSkip((page - 1) * pageSize).
		SetLimit(pageSize)

	cursor, err := r.replies.Find(ctx, bson.M{"thread_id": threadID, "hidden": false}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list replies: %w", err)
	}
	defer cursor.Close(ctx)

	var replies []models.ForumReply
	for cursor.Next(ctx) {
		var rep models.ForumReply
		if err := cursor.Decode(&rep); err != nil {
			return nil, fmt.Errorf("failed to decode reply: %w", err)
		}
		replies = append(replies, rep)
	}
	return replies, nil
}

// HideReply marks a reply as hidden.
func (r *MongoForumRepo) HideReply(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.replies.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"hidden": true}})
	if err != nil {
		return fmt.Errorf("failed to hide reply %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("reply with id %s not found", id)
	}
	return nil
}

// IncrementReportCount bumps a thread's report counter.
func (r *MongoForumRepo) IncrementReportCount(threadID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.threads.UpdateOne(ctx, bson.M{"id": threadID}, bson.M{"$inc": bson.M{"report_count": 1}})
	if err != nil {
		return fmt.Errorf("failed to report thread %s: %w", threadID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("thread with id %s not found", threadID)
	}
	return nil
}

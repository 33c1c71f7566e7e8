package lawyerRepo

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

// MongoApplicationRepo implements ApplicationRepository using MongoDB.
type MongoApplicationRepo struct {
	coll *mongo.Collection
}

// NewMongoApplicationRepo creates a new ApplicationRepository backed by MongoDB.
func NewMongoApplicationRepo() ApplicationRepository {
	coll := database.Collection("lawyer_applications")
	repo := &MongoApplicationRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create application indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoApplicationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "submitted_at", Value: -1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "submitted_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new application document.
func (r *MongoApplicationRepo) Create(app *models.LawyerApplication) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if app.SubmittedAt.IsZero() {
		app.SubmittedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, app); err != nil {
		return fmt.Errorf("failed to create lawyer application: %w", err)
	}
	return nil
}

// GetByID retrieves an application by its unique ID.
func (r *MongoApplicationRepo) GetByID(id string) (*models.LawyerApplication, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var app models.LawyerApplication
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&app); err != nil {
		return nil, fmt.Errorf("failed to fetch application with id %s: %w", id, err)
	}
	return &app, nil
}

// GetLatestByUserID retrieves the user's most recent application, or nil if none exists.
func (r *MongoApplicationRepo) GetLatestByUserID(userID string) (*models.LawyerApplication, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "submitted_at", Value: -1}})
	var app models.LawyerApplication
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}, opts).Decode(&app); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch application for user %s: %w", userID, err)
	}
	return &app, nil
}

// Update modifies an existing application document.
func (r *MongoApplicationRepo) Update(app *models.LawyerApplication) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": app.ID}, bson.M{"$set": app})
	if err != nil {
		return fmt.Errorf("failed to update application with id %s: %w", app.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("application with id %s not found", app.ID)
	}
	return nil
}

// ListByStatus retrieves applications with the given status, newest first.
func (r *MongoApplicationRepo) ListByStatus(status string, page, pageSize int64) ([]models.LawyerApplication, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "submitted_at", Value: -1}}).
		SetSkip((page - 1) * pageSize).
		SetLimit(pageSize)

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer cursor.Close(ctx)

	var apps []models.LawyerApplication
	for cursor.Next(ctx) {
		var a models.LawyerApplication
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode application: %w", err)
		}
		apps = append(apps, a)
	}
	return apps, nil
}

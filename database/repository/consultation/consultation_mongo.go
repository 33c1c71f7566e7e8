package consultationRepo

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

// MongoConsultationRepo implements ConsultationRepository using MongoDB.
type MongoConsultationRepo struct {
	coll *mongo.Collection
}

// NewMongoConsultationRepo creates a new ConsultationRepository backed by MongoDB.
func NewMongoConsultationRepo() ConsultationRepository {
	coll := database.Collection("consultations")
	repo := &MongoConsultationRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create consultation indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoConsultationRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "lawyer_id", Value: 1}, {Key: "status", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new consultation document.
func (r *MongoConsultationRepo) Create(consultation *models.Consultation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	consultation.CreatedAt = now
	consultation.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, consultation); err != nil {
		return fmt.Errorf("failed to create consultation: %w", err)
	}
	return nil
}

// GetByID retrieves a consultation by its unique ID.
func (r *MongoConsultationRepo) GetByID(id string) (*models.Consultation, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var consultation models.Consultation
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&consultation); err != nil {
		return nil, fmt.Errorf("failed to fetch consultation with id %s: %w", id, err)
	}
	return &consultation, nil
}

// Update modifies an existing consultation document.
func (r *MongoConsultationRepo) Update(consultation *models.Consultation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	consultation.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": consultation.ID}, bson.M{"$set": consultation})
	if err != nil {
		return fmt.Errorf("failed to update consultation with id %s: %w", consultation.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("consultation with id %s not found", consultation.ID)
	}
	return nil
}

func paginate(page, pageSize int64) *options.FindOptions {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip((page - 1) * pageSize).
		SetLimit(pageSize)
}

func (r *MongoConsultationRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Consultation, error) {
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list consultations: %w", err)
	}
	defer cursor.Close(ctx)

	var consultations []models.Consultation
	for cursor.Next(ctx) {
		var c models.Consultation
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode consultation: %w", err)
		}
		consultations = append(consultations, c)
	}
	return consultations, nil
}

// ListByUser retrieves a user's consultations, newest first.
func (r *MongoConsultationRepo) ListByUser(userID string, page, pageSize int64) ([]models.Consultation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	return r.find(ctx, bson.M{"user_id": userID}, paginate(page, pageSize))
}

// ListByLawyer retrieves a lawyer's consultations, optionally filtered by status.
func (r *MongoConsultationRepo) ListByLawyer(lawyerID, status string, page, pageSize int64) ([]models.Consultation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"lawyer_id": lawyerID}
	if status != "" {
		filter["status"] = status
	}
	return r.find(ctx, filter, paginate(page, pageSize))
}

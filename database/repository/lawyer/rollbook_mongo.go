package lawyerRepo

import (
	"fmt"
	"time"

	"haki/database"
	"haki/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRollBookRepo implements RollBookRepository using MongoDB.
type MongoRollBookRepo struct {
	coll *mongo.Collection
}

// NewMongoRollBookRepo creates a new RollBookRepository backed by MongoDB.
func NewMongoRollBookRepo() RollBookRepository {
	coll := database.Collection("bar_roll_book")
	repo := &MongoRollBookRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create roll book indexes: %v\n", err)
	}
	return repo
}

func (r *MongoRollBookRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "normalized_roll", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Upsert inserts or replaces a roll record keyed by normalized roll number.
func (r *MongoRollBookRepo) Upsert(record *models.BarRollRecord) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	record.UpdatedAt = time.Now()
	filter := bson.M{"normalized_roll": record.NormalizedRoll}
	opts := options.Replace().SetUpsert(true)

	if _, err := r.coll.ReplaceOne(ctx, filter, record, opts); err != nil {
		return fmt.Errorf("failed to upsert roll record %s: %w", record.RollNumber, err)
	}
	return nil
}

// GetByNormalizedRoll retrieves a record by normalized roll number, or nil.
func (r *MongoRollBookRepo) GetByNormalizedRoll(normalized string) (*models.BarRollRecord, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var record models.BarRollRecord
	if err := r.coll.FindOne(ctx, bson.M{"normalized_roll": normalized}).Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch roll record %s: %w", normalized, err)
	}
	return &record, nil
}

// Count returns the number of roll records.
func (r *MongoRollBookRepo) Count() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count roll records: %w", err)
	}
	return n, nil
}

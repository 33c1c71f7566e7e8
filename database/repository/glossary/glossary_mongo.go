package glossaryRepo

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

// MongoGlossaryRepo implements GlossaryRepository using MongoDB.
type MongoGlossaryRepo struct {
	coll *mongo.Collection
}

// NewMongoGlossaryRepo creates a new GlossaryRepository backed by MongoDB.
func NewMongoGlossaryRepo() GlossaryRepository {
	coll := database.Collection("glossary_terms")
	repo := &MongoGlossaryRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create glossary indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoGlossaryRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "term", Value: 1}, {Key: "language", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "term", Value: "text"}, {Key: "definition", Value: "text"}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new glossary term document.
func (r *MongoGlossaryRepo) Create(term *models.GlossaryTerm) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	term.CreatedAt = now
	term.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, term); err != nil {
		return fmt.Errorf("failed to create glossary term: %w", err)
	}
	return nil
}

// GetByID retrieves a term by its unique ID.
func (r *MongoGlossaryRepo) GetByID(id string) (*models.GlossaryTerm, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var term models.GlossaryTerm
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&term); err != nil {
		return nil, fmt.Errorf("failed to fetch glossary term with id %s: %w", id, err)
	}
	return &term, nil
}

// Update modifies an existing glossary term document.
func (r *MongoGlossaryRepo) Update(term *models.GlossaryTerm) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	term.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": term.ID}, bson.M{"$set": term})
	if err != nil {
		return fmt.Errorf("failed to update glossary term with id %s: %w", term.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("glossary term with id %s not found", term.ID)
	}
	return nil
}

// Delete removes a term by its ID.
func (r *MongoGlossaryRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete glossary term with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("glossary term with id %s not found", id)
	}
	return nil
}

// Search retrieves terms matching the text query and language, alphabetical.
func (r *MongoGlossaryRepo) Search(query, language string, page, pageSize int64) ([]models.GlossaryTerm, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 50
	}

	filter := bson.M{}
	if query != "" {
		filter["$text"] = bson.M{"$search": query}
	}
	if language != "" {
		filter["language"] = language
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "term", Value: 1}}).
		SetSkip((page - 1) * pageSize).
		SetLimit(pageSize)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search glossary: %w", err)
	}
	defer cursor.Close(ctx)

	var terms []models.GlossaryTerm
	for cursor.Next(ctx) {
		var t models.GlossaryTerm
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to decode glossary term: %w", err)
		}
		terms = append(terms, t)
	}
	return terms, nil
}

// UpsertByTerm inserts or replaces a term keyed by (term, language).
func (r *MongoGlossaryRepo) UpsertByTerm(term *models.GlossaryTerm) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	term.UpdatedAt = time.Now()
	if term.CreatedAt.IsZero() {
		term.CreatedAt = term.UpdatedAt
	}

	filter := bson.M{"term": term.Term, "language": term.Language}
	opts := options.Replace().SetUpsert(true)

	if _, err := r.coll.ReplaceOne(ctx, filter, term, opts); err != nil {
		return fmt.Errorf("failed to upsert glossary term %q: %w", term.Term, err)
	}
	return nil
}

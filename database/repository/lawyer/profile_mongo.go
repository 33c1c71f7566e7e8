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

// MongoProfileRepo implements ProfileRepository using MongoDB.
type MongoProfileRepo struct {
	coll *mongo.Collection
}

// NewMongoProfileRepo creates a new ProfileRepository backed by MongoDB.
func NewMongoProfileRepo() ProfileRepository {
	coll := database.Collection("lawyer_profiles")
	repo := &MongoProfileRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create profile indexes: %v\n", err)
	}
	return repo
}

func (r *MongoProfileRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "roll_number", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "specialties", Value: 1}, {Key: "county", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new profile document.
func (r *MongoProfileRepo) Create(profile *models.LawyerProfile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, profile); err != nil {
		return fmt.Errorf("failed to create lawyer profile: %w", err)
	}
	return nil
}

// GetByID retrieves a profile by its unique ID.
func (r *MongoProfileRepo) GetByID(id string) (*models.LawyerProfile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var profile models.LawyerProfile
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to fetch profile with id %s: %w", id, err)
	}
	return &profile, nil
}

// GetByUserID retrieves the profile owned by the given user, or nil.
func (r *MongoProfileRepo) GetByUserID(userID string) (*models.LawyerProfile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var profile models.LawyerProfile
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch profile for user %s: %w", userID, err)
	}
	return &profile, nil
}

// Update modifies an existing profile document.
func (r *MongoProfileRepo) Update(profile *models.LawyerProfile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	profile.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": profile.ID}, bson.M{"$set": profile})
	if err != nil {
		return fmt.Errorf("failed to update profile with id %s: %w", profile.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("profile with id %s not found", profile.ID)
	}
	return nil
}

// Search retrieves non-suspended profiles matching the directory query.
func (r *MongoProfileRepo) Search(q models.DirectoryQuery) ([]models.LawyerProfile, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"suspended": false}
	if q.Specialty != "" {
		filter["specialties"] = q.Specialty
	}
	if q.County != "" {
		filter["county"] = q.County
	}
	if q.MinYears > 0 {
		filter["years_of_practice"] = bson.M{"$gte": q.MinYears}
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	pageSize := q.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "years_of_practice", Value: -1}}).
		SetSkip((page - 1) * pageSize).
		SetLimit(pageSize)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search lawyer directory: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []models.LawyerProfile
	for cursor.Next(ctx) {
		var p models.LawyerProfile
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// ListSuspended retrieves suspended profiles for the admin review queue,
// appealed profiles first.
func (r *MongoProfileRepo) ListSuspended(page, pageSize int64) ([]models.LawyerProfile, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "appealed_at", Value: -1}, {Key: "updated_at", Value: -1}}).
		SetSkip((page - 1) * pageSize).
		SetLimit(pageSize)

	cursor, err := r.coll.Find(ctx, bson.M{"suspended": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list suspended profiles: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []models.LawyerProfile
	for cursor.Next(ctx) {
		var p models.LawyerProfile
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// ListSuspendedExpiring returns suspended profiles whose suspension window has lapsed.
func (r *MongoProfileRepo) ListSuspendedExpiring() ([]models.LawyerProfile, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"suspended":       true,
		"suspended_until": bson.M{"$ne": nil, "$lte": time.Now()},
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list expiring suspensions: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []models.LawyerProfile
	for cursor.Next(ctx) {
		var p models.LawyerProfile
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

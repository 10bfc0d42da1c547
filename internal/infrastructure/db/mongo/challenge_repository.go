package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aretelab/arete-api/internal/core/domain"
)

const collectionChallenges = "challenges"

type ChallengeRepository struct {
	col *mongo.Collection
}

func NewChallengeRepository(db *mongo.Database) *ChallengeRepository {
	return &ChallengeRepository{col: db.Collection(collectionChallenges)}
}

type mongoChallenge struct {
	ID          primitive.ObjectID     `bson:"_id,omitempty"`
	UserID      string                 `bson:"user_id"`
	Title       string                 `bson:"title"`
	Description string                 `bson:"description"`
	VirtueID    string                 `bson:"virtueId"`
	Status      domain.ChallengeStatus `bson:"status"`
	WeekStart   time.Time              `bson:"week_start"`
}

func (m mongoChallenge) toDomain() *domain.Challenge {
	return &domain.Challenge{
		ID:          m.ID.Hex(),
		UserID:      m.UserID,
		Title:       m.Title,
		Description: m.Description,
		VirtueID:    m.VirtueID,
		Status:      m.Status,
		WeekStart:   m.WeekStart.UTC(),
	}
}

// FindByUserWeek returns the user's challenges for a week bucket in
// insertion order (_id ascending).
func (r *ChallengeRepository) FindByUserWeek(ctx context.Context, userID string, weekStart time.Time) ([]*domain.Challenge, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"user_id": userID, "week_start": weekStart}
	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find challenges: %w", err)
	}
	defer cursor.Close(ctx)

	var challenges []*domain.Challenge
	for cursor.Next(ctx) {
		var mc mongoChallenge
		if err := cursor.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode challenge: %w", err)
		}
		challenges = append(challenges, mc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate challenges: %w", err)
	}
	return challenges, nil
}

func (r *ChallengeRepository) InsertMany(ctx context.Context, challenges []*domain.Challenge) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	docs := make([]any, 0, len(challenges))
	for _, c := range challenges {
		docs = append(docs, mongoChallenge{
			UserID:      c.UserID,
			Title:       c.Title,
			Description: c.Description,
			VirtueID:    c.VirtueID,
			Status:      c.Status,
			WeekStart:   c.WeekStart,
		})
	}

	if _, err := r.col.InsertMany(ctx, docs); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrChallengeExists
		}
		return fmt.Errorf("insert challenges: %w", err)
	}
	return nil
}

// UpdateStatus atomically updates a challenge's status. The filter includes
// the owner, so a challenge belonging to another user reads as not found.
func (r *ChallengeRepository) UpdateStatus(ctx context.Context, challengeID, userID string, status domain.ChallengeStatus) (*domain.Challenge, error) {
	objID, err := primitive.ObjectIDFromHex(challengeID)
	if err != nil {
		return nil, domain.ErrInvalidChallengeID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mc mongoChallenge
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": objID, "user_id": userID},
		bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&mc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrChallengeNotFound
		}
		return nil, fmt.Errorf("update challenge status: %w", err)
	}
	return mc.toDomain(), nil
}

// EnsureIndexes creates the uniqueness guard for challenge generation:
// a concurrent generator that loses the race gets a duplicate-key error and
// re-reads the winner's set.
func (r *ChallengeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "week_start", Value: 1},
				{Key: "virtueId", Value: 1},
				{Key: "title", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "week_start", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

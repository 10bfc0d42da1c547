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

const collectionGoals = "goals"

type GoalRepository struct {
	col *mongo.Collection
}

func NewGoalRepository(db *mongo.Database) *GoalRepository {
	return &GoalRepository{col: db.Collection(collectionGoals)}
}

type mongoGoal struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	UserID          string             `bson:"user_id"`
	PriorityVirtues []string           `bson:"priority_virtues"`
	InnovationGoal  string             `bson:"innovation_goal"`
	CreatedAt       time.Time          `bson:"created_at"`
}

func (m mongoGoal) toDomain() *domain.Goal {
	return &domain.Goal{
		ID:              m.ID.Hex(),
		UserID:          m.UserID,
		PriorityVirtues: m.PriorityVirtues,
		InnovationGoal:  m.InnovationGoal,
		CreatedAt:       m.CreatedAt,
	}
}

func (r *GoalRepository) Create(ctx context.Context, g *domain.Goal) (*domain.Goal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoGoal{
		UserID:          g.UserID,
		PriorityVirtues: g.PriorityVirtues,
		InnovationGoal:  g.InnovationGoal,
		CreatedAt:       g.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert goal: %w", err)
	}

	created := *g
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// FindLatestByUser returns the user's most recently created goal (_id
// descending).
func (r *GoalRepository) FindLatestByUser(ctx context.Context, userID string) (*domain.Goal, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mg mongoGoal
	err := r.col.FindOne(ctx,
		bson.M{"user_id": userID},
		options.FindOne().SetSort(bson.D{{Key: "_id", Value: -1}}),
	).Decode(&mg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGoalNotFound
		}
		return nil, fmt.Errorf("find goal: %w", err)
	}
	return mg.toDomain(), nil
}

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

const collectionAssessments = "assessments"

type AssessmentRepository struct {
	col *mongo.Collection
}

func NewAssessmentRepository(db *mongo.Database) *AssessmentRepository {
	return &AssessmentRepository{col: db.Collection(collectionAssessments)}
}

type mongoAssessment struct {
	ID               primitive.ObjectID   `bson:"_id,omitempty"`
	UserID           string               `bson:"user_id"`
	Scores           []domain.VirtueScore `bson:"scores"`
	NarrativeProfile string               `bson:"narrative_profile"`
	CreatedAt        time.Time            `bson:"created_at"`
}

func (m mongoAssessment) toDomain() *domain.Assessment {
	return &domain.Assessment{
		ID:               m.ID.Hex(),
		UserID:           m.UserID,
		Scores:           m.Scores,
		NarrativeProfile: m.NarrativeProfile,
		CreatedAt:        m.CreatedAt,
	}
}

func (r *AssessmentRepository) Create(ctx context.Context, a *domain.Assessment) (*domain.Assessment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoAssessment{
		UserID:           a.UserID,
		Scores:           a.Scores,
		NarrativeProfile: a.NarrativeProfile,
		CreatedAt:        a.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert assessment: %w", err)
	}

	created := *a
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// FindLatestByUser returns the user's most recent assessment (_id
// descending).
func (r *AssessmentRepository) FindLatestByUser(ctx context.Context, userID string) (*domain.Assessment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ma mongoAssessment
	err := r.col.FindOne(ctx,
		bson.M{"user_id": userID},
		options.FindOne().SetSort(bson.D{{Key: "_id", Value: -1}}),
	).Decode(&ma)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAssessmentNotFound
		}
		return nil, fmt.Errorf("find assessment: %w", err)
	}
	return ma.toDomain(), nil
}

package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aretelab/arete-api/internal/core/domain"
)

const collectionMoments = "moments"

type MomentRepository struct {
	col *mongo.Collection
}

func NewMomentRepository(db *mongo.Database) *MomentRepository {
	return &MomentRepository{col: db.Collection(collectionMoments)}
}

type mongoMoment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	Content   string             `bson:"content"`
	VirtueID  string             `bson:"virtue_id"`
	Feedback  string             `bson:"feedback"`
	Timestamp time.Time          `bson:"timestamp"`
}

func (m mongoMoment) toDomain() *domain.Moment {
	return &domain.Moment{
		ID:        m.ID.Hex(),
		UserID:    m.UserID,
		Content:   m.Content,
		VirtueID:  m.VirtueID,
		Feedback:  m.Feedback,
		Timestamp: m.Timestamp.UTC(),
	}
}

func (r *MomentRepository) Create(ctx context.Context, m *domain.Moment) (*domain.Moment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoMoment{
		UserID:    m.UserID,
		Content:   m.Content,
		VirtueID:  m.VirtueID,
		Feedback:  m.Feedback,
		Timestamp: m.Timestamp,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert moment: %w", err)
	}

	created := *m
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MomentRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Moment, error) {
	return r.list(ctx, bson.M{"user_id": userID})
}

func (r *MomentRepository) ListByUserSince(ctx context.Context, userID string, since time.Time) ([]*domain.Moment, error) {
	return r.list(ctx, bson.M{"user_id": userID, "timestamp": bson.M{"$gte": since}})
}

func (r *MomentRepository) list(ctx context.Context, filter bson.M) ([]*domain.Moment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("find moments: %w", err)
	}
	defer cursor.Close(ctx)

	var moments []*domain.Moment
	for cursor.Next(ctx) {
		var mm mongoMoment
		if err := cursor.Decode(&mm); err != nil {
			return nil, fmt.Errorf("decode moment: %w", err)
		}
		moments = append(moments, mm.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("iterate moments: %w", err)
	}
	return moments, nil
}

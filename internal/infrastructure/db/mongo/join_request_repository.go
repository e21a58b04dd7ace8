package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/residenthub/society-api/internal/core/domain"
)

const collectionJoinRequests = "join_requests"

type JoinRequestRepository struct {
	col *mongo.Collection
}

func NewJoinRequestRepository(db *mongo.Database) *JoinRequestRepository {
	return &JoinRequestRepository{col: db.Collection(collectionJoinRequests)}
}

// Create inserts a join request. The unique user index turns a second
// request for the same user into domain.ErrJoinRequestExists.
func (r *JoinRequestRepository) Create(ctx context.Context, jr *domain.ResidentJoinRequest) (*domain.ResidentJoinRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := *jr
	if doc.ID == "" {
		doc.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrJoinRequestExists
		}
		return nil, err
	}
	return &doc, nil
}

func (r *JoinRequestRepository) FindByID(ctx context.Context, id string) (*domain.ResidentJoinRequest, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *JoinRequestRepository) FindByUser(ctx context.Context, userID string) (*domain.ResidentJoinRequest, error) {
	return r.findOne(ctx, bson.M{"user_id": userID})
}

func (r *JoinRequestRepository) FindAll(ctx context.Context) ([]*domain.ResidentJoinRequest, error) {
	return r.find(ctx, bson.M{})
}

func (r *JoinRequestRepository) FindPendingBySociety(ctx context.Context, societyID string) ([]*domain.ResidentJoinRequest, error) {
	return r.find(ctx, bson.M{"society_id": societyID, "status": domain.JoinRequestPending})
}

// Decide records the review outcome. The filter pins the PENDING status so
// two concurrent reviewers cannot both win; the loser reads the document
// back to distinguish "already decided" from "gone".
func (r *JoinRequestRepository) Decide(ctx context.Context, id string, status domain.JoinRequestStatus, reviewedBy string, reviewedAt time.Time, reason string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"status":      status,
		"reviewed_by": reviewedBy,
		"reviewed_at": reviewedAt,
		"updated_at":  reviewedAt,
	}
	if reason != "" {
		set["rejection_reason"] = reason
	}

	res, err := r.col.UpdateOne(
		ctx,
		bson.M{"_id": id, "status": domain.JoinRequestPending},
		bson.M{"$set": set},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		if _, err := r.findOne(ctx, bson.M{"_id": id}); err != nil {
			return err
		}
		return domain.ErrJoinRequestProcessed
	}
	return nil
}

func (r *JoinRequestRepository) CountPendingBySociety(ctx context.Context, societyID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{"society_id": societyID, "status": domain.JoinRequestPending})
}

func (r *JoinRequestRepository) findOne(ctx context.Context, filter bson.M) (*domain.ResidentJoinRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var jr domain.ResidentJoinRequest
	if err := r.col.FindOne(ctx, filter).Decode(&jr); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrJoinRequestNotFound
		}
		return nil, err
	}
	return &jr, nil
}

func (r *JoinRequestRepository) find(ctx context.Context, filter bson.M) ([]*domain.ResidentJoinRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}

	var requests []*domain.ResidentJoinRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// EnsureIndexes creates the join request indexes; one request per user.
func (r *JoinRequestRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "society_id", Value: 1}, {Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

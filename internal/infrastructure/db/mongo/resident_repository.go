package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/residenthub/society-api/internal/core/domain"
)

const collectionResidents = "residents"

type ResidentRepository struct {
	col *mongo.Collection
}

func NewResidentRepository(db *mongo.Database) *ResidentRepository {
	return &ResidentRepository{col: db.Collection(collectionResidents)}
}

func (r *ResidentRepository) Create(ctx context.Context, res *domain.Resident) (*domain.Resident, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := *res
	if doc.ID == "" {
		doc.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *ResidentRepository) FindByID(ctx context.Context, id string) (*domain.Resident, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *ResidentRepository) FindActiveByUnitAndType(ctx context.Context, unitID string, t domain.ResidentType) (*domain.Resident, error) {
	return r.findOne(ctx, bson.M{
		"unit_id":       unitID,
		"resident_type": t,
		"status":        domain.ResidentActive,
	})
}

func (r *ResidentRepository) FindAll(ctx context.Context) ([]*domain.Resident, error) {
	return r.find(ctx, bson.M{})
}

func (r *ResidentRepository) FindBySociety(ctx context.Context, societyID string) ([]*domain.Resident, error) {
	return r.find(ctx, bson.M{"society_id": societyID})
}

func (r *ResidentRepository) FindByUser(ctx context.Context, userID string) ([]*domain.Resident, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *ResidentRepository) SetStatus(ctx context.Context, id string, status domain.ResidentStatus, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": at,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrResidentNotFound
	}
	return nil
}

func (r *ResidentRepository) findOne(ctx context.Context, filter bson.M) (*domain.Resident, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var res domain.Resident
	if err := r.col.FindOne(ctx, filter).Decode(&res); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrResidentNotFound
		}
		return nil, err
	}
	return &res, nil
}

func (r *ResidentRepository) find(ctx context.Context, filter bson.M) ([]*domain.Resident, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	var residents []*domain.Resident
	if err := cursor.All(ctx, &residents); err != nil {
		return nil, err
	}
	return residents, nil
}

// EnsureIndexes creates the residents indexes.
func (r *ResidentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "unit_id", Value: 1}, {Key: "resident_type", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "society_id", Value: 1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

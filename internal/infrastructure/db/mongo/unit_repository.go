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

const collectionUnits = "units"

type UnitRepository struct {
	col *mongo.Collection
}

func NewUnitRepository(db *mongo.Database) *UnitRepository {
	return &UnitRepository{col: db.Collection(collectionUnits)}
}

// Create inserts a unit document. The unique slot index turns a duplicate
// (society, building, number) into domain.ErrUnitExists.
func (r *UnitRepository) Create(ctx context.Context, u *domain.Unit) (*domain.Unit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := *u
	if doc.ID == "" {
		doc.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUnitExists
		}
		return nil, err
	}
	return &doc, nil
}

func (r *UnitRepository) FindByID(ctx context.Context, id string) (*domain.Unit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var u domain.Unit
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUnitNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UnitRepository) SlotTaken(ctx context.Context, societyID, buildingName, unitNumber, excludeID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"society_id":    societyID,
		"building_name": buildingName,
		"unit_number":   unitNumber,
	}
	if excludeID != "" {
		filter["_id"] = bson.M{"$ne": excludeID}
	}

	n, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *UnitRepository) FindAll(ctx context.Context) ([]*domain.Unit, error) {
	return r.find(ctx, bson.M{})
}

func (r *UnitRepository) FindBySociety(ctx context.Context, societyID string) ([]*domain.Unit, error) {
	return r.find(ctx, bson.M{"society_id": societyID})
}

func (r *UnitRepository) Update(ctx context.Context, u *domain.Unit) (*domain.Unit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": u.ID}, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUnitExists
		}
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrUnitNotFound
	}
	return u, nil
}

func (r *UnitRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrUnitNotFound
	}
	return nil
}

func (r *UnitRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *UnitRepository) CountBySociety(ctx context.Context, societyID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{"society_id": societyID})
}

func (r *UnitRepository) find(ctx context.Context, filter bson.M) ([]*domain.Unit, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{
		{Key: "building_name", Value: 1},
		{Key: "unit_number", Value: 1},
	}))
	if err != nil {
		return nil, err
	}

	var units []*domain.Unit
	if err := cursor.All(ctx, &units); err != nil {
		return nil, err
	}
	return units, nil
}

// EnsureIndexes creates the units indexes; the slot is unique per society.
func (r *UnitRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "society_id", Value: 1},
				{Key: "building_name", Value: 1},
				{Key: "unit_number", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "society_id", Value: 1}, {Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

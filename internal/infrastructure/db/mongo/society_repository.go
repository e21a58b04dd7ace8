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

const collectionSocieties = "societies"

type SocietyRepository struct {
	col *mongo.Collection
}

func NewSocietyRepository(db *mongo.Database) *SocietyRepository {
	return &SocietyRepository{col: db.Collection(collectionSocieties)}
}

// Create inserts a society document. The unique code index turns a
// concurrent code collision into domain.ErrSocietyCodeTaken.
func (r *SocietyRepository) Create(ctx context.Context, s *domain.Society) (*domain.Society, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := *s
	if doc.ID == "" {
		doc.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrSocietyCodeTaken
		}
		return nil, err
	}
	return &doc, nil
}

func (r *SocietyRepository) FindByID(ctx context.Context, id string) (*domain.Society, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *SocietyRepository) FindByCreator(ctx context.Context, userID string) (*domain.Society, error) {
	return r.findOne(ctx, bson.M{"created_by": userID})
}

func (r *SocietyRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"code": code})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *SocietyRepository) FindAll(ctx context.Context) ([]*domain.Society, error) {
	return r.find(ctx, bson.M{}, nil)
}

func (r *SocietyRepository) FindActive(ctx context.Context) ([]*domain.Society, error) {
	return r.find(ctx, bson.M{"status": domain.SocietyActive}, nil)
}

func (r *SocietyRepository) FindRecent(ctx context.Context, limit int) ([]*domain.Society, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	return r.find(ctx, bson.M{}, opts)
}

func (r *SocietyRepository) Update(ctx context.Context, s *domain.Society) (*domain.Society, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": s.ID}, s)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrSocietyNotFound
	}
	return s, nil
}

func (r *SocietyRepository) SetStatus(ctx context.Context, id string, status domain.SocietyStatus) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrSocietyNotFound
	}
	return nil
}

func (r *SocietyRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *SocietyRepository) CountActive(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{"status": domain.SocietyActive})
}

func (r *SocietyRepository) findOne(ctx context.Context, filter bson.M) (*domain.Society, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var s domain.Society
	if err := r.col.FindOne(ctx, filter).Decode(&s); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSocietyNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *SocietyRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.Society, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = r.col.Find(ctx, filter, opts)
	} else {
		cursor, err = r.col.Find(ctx, filter)
	}
	if err != nil {
		return nil, err
	}

	var societies []*domain.Society
	if err := cursor.All(ctx, &societies); err != nil {
		return nil, err
	}
	return societies, nil
}

// EnsureIndexes creates the societies indexes; code is unique.
func (r *SocietyRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "created_by", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

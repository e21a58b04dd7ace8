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

const collectionIssues = "issues"

var activeIssueStatuses = []domain.IssueStatus{domain.IssueOpen, domain.IssueInProgress}

type IssueRepository struct {
	col *mongo.Collection
}

func NewIssueRepository(db *mongo.Database) *IssueRepository {
	return &IssueRepository{col: db.Collection(collectionIssues)}
}

func (r *IssueRepository) Create(ctx context.Context, i *domain.Issue) (*domain.Issue, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := *i
	if doc.ID == "" {
		doc.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *IssueRepository) FindByID(ctx context.Context, id string) (*domain.Issue, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var i domain.Issue
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&i); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrIssueNotFound
		}
		return nil, err
	}
	return &i, nil
}

func (r *IssueRepository) FindAll(ctx context.Context) ([]*domain.Issue, error) {
	return r.find(ctx, bson.M{})
}

func (r *IssueRepository) FindBySociety(ctx context.Context, societyID string) ([]*domain.Issue, error) {
	return r.find(ctx, bson.M{"society_id": societyID})
}

func (r *IssueRepository) FindByRaiser(ctx context.Context, userID string) ([]*domain.Issue, error) {
	return r.find(ctx, bson.M{"raised_by": userID})
}

func (r *IssueRepository) FindByStatus(ctx context.Context, status domain.IssueStatus, societyID string) ([]*domain.Issue, error) {
	filter := bson.M{"status": status}
	if societyID != "" {
		filter["society_id"] = societyID
	}
	return r.find(ctx, filter)
}

func (r *IssueRepository) Update(ctx context.Context, i *domain.Issue) (*domain.Issue, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": i.ID}, i)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrIssueNotFound
	}
	return i, nil
}

func (r *IssueRepository) CountActiveByRaiser(ctx context.Context, userID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{
		"raised_by": userID,
		"status":    bson.M{"$in": activeIssueStatuses},
	})
}

func (r *IssueRepository) CountOpenBySociety(ctx context.Context, societyID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{
		"society_id": societyID,
		"status":     bson.M{"$in": activeIssueStatuses},
	})
}

func (r *IssueRepository) find(ctx context.Context, filter bson.M) ([]*domain.Issue, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}

	var issues []*domain.Issue
	if err := cursor.All(ctx, &issues); err != nil {
		return nil, err
	}
	return issues, nil
}

// EnsureIndexes creates the issues indexes.
func (r *IssueRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "society_id", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "raised_by", Value: 1}, {Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

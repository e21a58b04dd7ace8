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

const collectionMaintenance = "maintenance_charges"

var outstandingStatuses = []domain.MaintenanceStatus{
	domain.MaintenanceUpcoming,
	domain.MaintenanceDue,
	domain.MaintenanceOverdue,
}

type MaintenanceRepository struct {
	col *mongo.Collection
}

func NewMaintenanceRepository(db *mongo.Database) *MaintenanceRepository {
	return &MaintenanceRepository{col: db.Collection(collectionMaintenance)}
}

// Create inserts a charge. The unique period index turns a duplicate
// (unit, month, year) into domain.ErrMaintenanceExists.
func (r *MaintenanceRepository) Create(ctx context.Context, m *domain.Maintenance) (*domain.Maintenance, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := *m
	if doc.ID == "" {
		doc.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrMaintenanceExists
		}
		return nil, err
	}
	return &doc, nil
}

func (r *MaintenanceRepository) FindByID(ctx context.Context, id string) (*domain.Maintenance, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m domain.Maintenance
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMaintenanceNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *MaintenanceRepository) FindAll(ctx context.Context) ([]*domain.Maintenance, error) {
	return r.find(ctx, bson.M{}, nil)
}

func (r *MaintenanceRepository) FindBySociety(ctx context.Context, societyID string) ([]*domain.Maintenance, error) {
	return r.find(ctx, bson.M{"society_id": societyID}, nil)
}

func (r *MaintenanceRepository) FindByUnit(ctx context.Context, unitID string) ([]*domain.Maintenance, error) {
	return r.find(ctx, bson.M{"unit_id": unitID}, options.Find().SetSort(bson.D{
		{Key: "year", Value: -1},
		{Key: "month", Value: -1},
	}))
}

func (r *MaintenanceRepository) FindOutstandingByUnit(ctx context.Context, unitID string) ([]*domain.Maintenance, error) {
	filter := bson.M{
		"unit_id": unitID,
		"status":  bson.M{"$in": outstandingStatuses},
	}
	return r.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "due_date", Value: 1}}))
}

func (r *MaintenanceRepository) FindPaidByUnit(ctx context.Context, unitID string, limit int) ([]*domain.Maintenance, error) {
	opts := options.Find().SetSort(bson.D{{Key: "paid_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	return r.find(ctx, bson.M{"unit_id": unitID, "status": domain.MaintenancePaid}, opts)
}

func (r *MaintenanceRepository) FindDueBySociety(ctx context.Context, societyID string) ([]*domain.Maintenance, error) {
	filter := bson.M{
		"society_id": societyID,
		"status":     bson.M{"$in": []domain.MaintenanceStatus{domain.MaintenanceDue, domain.MaintenanceOverdue}},
	}
	return r.find(ctx, filter, nil)
}

func (r *MaintenanceRepository) Update(ctx context.Context, m *domain.Maintenance) (*domain.Maintenance, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": m.ID}, m)
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrMaintenanceNotFound
	}
	return m, nil
}

// MarkOverdue flips every DUE charge past its due date to OVERDUE in one
// statement, so the sweep is idempotent under concurrent runs.
func (r *MaintenanceRepository) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateMany(
		ctx,
		bson.M{"status": domain.MaintenanceDue, "due_date": bson.M{"$lt": now}},
		bson.M{"$set": bson.M{"status": domain.MaintenanceOverdue, "updated_at": now}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *MaintenanceRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*domain.Maintenance, error) {
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

	var charges []*domain.Maintenance
	if err := cursor.All(ctx, &charges); err != nil {
		return nil, err
	}
	return charges, nil
}

// EnsureIndexes creates the maintenance indexes; one charge per unit per
// period.
func (r *MaintenanceRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "unit_id", Value: 1},
				{Key: "month", Value: 1},
				{Key: "year", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "society_id", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "due_date", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

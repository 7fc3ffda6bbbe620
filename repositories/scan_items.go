package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"content-graph/models"
)

type ScanItemRepository struct {
	col *mongo.Collection
}

func NewScanItemRepository(db *mongo.Database) *ScanItemRepository {
	return &ScanItemRepository{col: db.Collection("scan_items")}
}

func (r *ScanItemRepository) Insert(ctx context.Context, item *models.ScanItem) error {
	if item.ID == "" {
		item.ID = NewID()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	_, err := r.col.InsertOne(ctx, item)
	return err
}

func (r *ScanItemRepository) Get(ctx context.Context, id string) (*models.ScanItem, error) {
	var item models.ScanItem
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&item); err != nil {
		return nil, notFound(err)
	}
	return &item, nil
}

// ListByRun returns the items of a run in processing order.
func (r *ScanItemRepository) ListByRun(ctx context.Context, runID string) ([]models.ScanItem, error) {
	findOpts := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: 1},
		{Key: "_id", Value: 1},
	})
	cur, err := r.col.Find(ctx, bson.M{"scan_run_id": runID}, findOpts)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.ScanItem](ctx, cur)
}

// MarkApplied sets applied=true only if the item was not applied yet.
// Returns false when another writer got there first.
func (r *ScanItemRepository) MarkApplied(ctx context.Context, id string, at time.Time) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "applied": false},
		bson.M{"$set": bson.M{"applied": true, "applied_at": at}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

func (r *ScanItemRepository) Delete(ctx context.Context, id string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

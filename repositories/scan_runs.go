package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"content-graph/models"
)

type ScanRunRepository struct {
	col *mongo.Collection
}

func NewScanRunRepository(db *mongo.Database) *ScanRunRepository {
	return &ScanRunRepository{col: db.Collection("scan_runs")}
}

func (r *ScanRunRepository) Insert(ctx context.Context, run *models.ScanRun) error {
	if run.ID == "" {
		run.ID = NewID()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}
	_, err := r.col.InsertOne(ctx, run)
	return err
}

func (r *ScanRunRepository) Get(ctx context.Context, id string) (*models.ScanRun, error) {
	var run models.ScanRun
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&run); err != nil {
		return nil, notFound(err)
	}
	return &run, nil
}

// List returns the most recent runs first.
func (r *ScanRunRepository) List(ctx context.Context, limit int64) ([]models.ScanRun, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	findOpts := options.Find().SetLimit(limit).SetSort(bson.D{
		{Key: "started_at", Value: -1},
		{Key: "_id", Value: -1},
	})
	cur, err := r.col.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.ScanRun](ctx, cur)
}

// SetTotal records the size of the snapshotted population.
func (r *ScanRunRepository) SetTotal(ctx context.Context, id string, total int) error {
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$set": bson.M{"total_items": total}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementProcessed bumps processed_items by one with $inc, so the counter
// never resets or goes backwards under concurrent readers.
func (r *ScanRunRepository) IncrementProcessed(ctx context.Context, id string) error {
	res, err := r.col.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"processed_items": 1}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Finish moves a running scan to a terminal status. Terminal runs are left untouched.
func (r *ScanRunRepository) Finish(ctx context.Context, id string, status models.ScanStatus, errMsg string, at time.Time) error {
	set := bson.M{"status": status, "completed_at": at}
	if errMsg != "" {
		set["error_message"] = errMsg
	}
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "status": models.ScanRunning},
		bson.M{"$set": set},
	)
	return err
}

// ListRunningBefore returns running runs that started before cutoff.
func (r *ScanRunRepository) ListRunningBefore(ctx context.Context, cutoff time.Time) ([]models.ScanRun, error) {
	cur, err := r.col.Find(ctx, bson.M{
		"status":     models.ScanRunning,
		"started_at": bson.M{"$lt": cutoff},
	})
	if err != nil {
		return nil, err
	}
	return decodeAll[models.ScanRun](ctx, cur)
}

// ExistsRunning reports whether any scan is still running.
func (r *ScanRunRepository) ExistsRunning(ctx context.Context) (bool, error) {
	err := r.col.FindOne(ctx, bson.M{"status": models.ScanRunning}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return err == nil, err
}

func (r *ScanRunRepository) Delete(ctx context.Context, id string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

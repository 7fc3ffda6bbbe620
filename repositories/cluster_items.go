package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"content-graph/models"
)

type ClusterItemRepository struct {
	col *mongo.Collection
}

func NewClusterItemRepository(db *mongo.Database) *ClusterItemRepository {
	return &ClusterItemRepository{col: db.Collection("cluster_items")}
}

// InsertMany inserts generated drafts in one round trip.
func (r *ClusterItemRepository) InsertMany(ctx context.Context, items []*models.ClusterItem) error {
	if len(items) == 0 {
		return nil
	}
	now := time.Now()
	docs := make([]interface{}, 0, len(items))
	for _, it := range items {
		if it.ID == "" {
			it.ID = NewID()
		}
		if it.CreatedAt.IsZero() {
			it.CreatedAt = now
		}
		it.UpdatedAt = now
		docs = append(docs, it)
	}
	_, err := r.col.InsertMany(ctx, docs)
	return err
}

func (r *ClusterItemRepository) Get(ctx context.Context, id string) (*models.ClusterItem, error) {
	var it models.ClusterItem
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&it); err != nil {
		return nil, notFound(err)
	}
	return &it, nil
}

func (r *ClusterItemRepository) ListByCluster(ctx context.Context, clusterID string) ([]models.ClusterItem, error) {
	findOpts := options.Find().SetSort(bson.D{
		{Key: "sort_order", Value: 1},
		{Key: "_id", Value: 1},
	})
	cur, err := r.col.Find(ctx, bson.M{"cluster_id": clusterID}, findOpts)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.ClusterItem](ctx, cur)
}

// TransitionStatus is a status-guarded update: it only applies when the item
// is currently in `from`.
func (r *ClusterItemRepository) TransitionStatus(ctx context.Context, id string, from, to models.ClusterItemStatus) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "status": from},
		bson.M{"$set": bson.M{"status": to, "updated_at": time.Now()}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}

// UpdateFields patches an item that is not published yet.
func (r *ClusterItemRepository) UpdateFields(ctx context.Context, id string, updates map[string]any) (bool, error) {
	set := bson.M{"updated_at": time.Now()}
	for k, v := range updates {
		set[k] = v
	}
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "status": bson.M{"$ne": models.ItemPublished}},
		bson.M{"$set": set},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}

// MarkPublished moves an approved item to published and records the node it became.
func (r *ClusterItemRepository) MarkPublished(ctx context.Context, id string, kind models.ContentKind, contentID string) (bool, error) {
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "status": models.ItemApproved},
		bson.M{"$set": bson.M{
			"status":                 models.ItemPublished,
			"published_content_type": kind,
			"published_content_id":   contentID,
			"updated_at":             time.Now(),
		}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}

func (r *ClusterItemRepository) Delete(ctx context.Context, id string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

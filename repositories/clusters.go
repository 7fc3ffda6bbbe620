package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"content-graph/models"
)

type ClusterRepository struct {
	col *mongo.Collection
}

func NewClusterRepository(db *mongo.Database) *ClusterRepository {
	return &ClusterRepository{col: db.Collection("clusters")}
}

func (r *ClusterRepository) Insert(ctx context.Context, c *models.Cluster) error {
	if c.ID == "" {
		c.ID = NewID()
	}
	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	_, err := r.col.InsertOne(ctx, c)
	return err
}

func (r *ClusterRepository) Get(ctx context.Context, id string) (*models.Cluster, error) {
	var c models.Cluster
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		return nil, notFound(err)
	}
	return &c, nil
}

func (r *ClusterRepository) List(ctx context.Context, limit int64) ([]models.Cluster, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	findOpts := options.Find().SetLimit(limit).SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})
	cur, err := r.col.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.Cluster](ctx, cur)
}

// TransitionStatus moves a cluster from one of the given statuses to the
// next one. It reports false when the cluster was not in any of them.
func (r *ClusterRepository) TransitionStatus(ctx context.Context, id string, from []models.ClusterStatus, to models.ClusterStatus, errMsg string) (bool, error) {
	set := bson.M{"status": to, "updated_at": time.Now()}
	if errMsg != "" {
		set["error_message"] = errMsg
	}
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id, "status": bson.M{"$in": from}},
		bson.M{"$set": set},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount == 1, nil
}

func (r *ClusterRepository) Delete(ctx context.Context, id string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

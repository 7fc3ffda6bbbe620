package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"content-graph/models"
)

type LinkEdgeRepository struct {
	col *mongo.Collection
}

func NewLinkEdgeRepository(db *mongo.Database) *LinkEdgeRepository {
	return &LinkEdgeRepository{col: db.Collection("content_links")}
}

// List returns edges ordered by source and sort_order.
func (r *LinkEdgeRepository) List(ctx context.Context, f EdgeFilter) ([]models.LinkEdge, error) {
	filter := bson.M{}
	if f.Source != nil {
		filter["source_kind"] = f.Source.Kind
		filter["source_id"] = f.Source.ID
	}
	if f.Target != nil {
		filter["target_kind"] = f.Target.Kind
		filter["target_id"] = f.Target.ID
	}
	if f.ActiveOnly {
		filter["is_active"] = true
	}
	findOpts := options.Find().SetSort(bson.D{
		{Key: "source_kind", Value: 1},
		{Key: "source_id", Value: 1},
		{Key: "sort_order", Value: 1},
		{Key: "_id", Value: 1},
	})
	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.LinkEdge](ctx, cur)
}

func (r *LinkEdgeRepository) Insert(ctx context.Context, e *models.LinkEdge) error {
	if e.ID == "" {
		e.ID = NewID()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	_, err := r.col.InsertOne(ctx, e)
	return err
}

func (r *LinkEdgeRepository) Delete(ctx context.Context, id string) error {
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

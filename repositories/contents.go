package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"content-graph/models"
)

// ContentRepository stores content nodes, one collection per kind.
type ContentRepository struct {
	db *mongo.Database
}

func NewContentRepository(db *mongo.Database) *ContentRepository {
	return &ContentRepository{db: db}
}

func (r *ContentRepository) col(kind models.ContentKind) (*mongo.Collection, error) {
	name := kind.Collection()
	if name == "" {
		return nil, fmt.Errorf("unknown content kind %q", kind)
	}
	return r.db.Collection(name), nil
}

// List returns nodes of a kind in store order (created_at, _id ascending).
func (r *ContentRepository) List(ctx context.Context, kind models.ContentKind, f ContentFilter) ([]models.ContentNode, error) {
	col, err := r.col(kind)
	if err != nil {
		return nil, err
	}

	filter := bson.M{}
	if f.TopicID != nil {
		filter["topic_id"] = *f.TopicID
	}
	if f.PublishedOnly {
		if kind == models.KindTopic {
			filter["is_active"] = true
		} else {
			filter["is_published"] = true
		}
	}

	findOpts := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: 1},
		{Key: "_id", Value: 1},
	})
	cur, err := col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	nodes, err := decodeAll[models.ContentNode](ctx, cur)
	if err != nil {
		return nil, err
	}
	// 과거 문서에는 kind 필드가 없을 수 있다.
	for i := range nodes {
		nodes[i].Kind = kind
	}
	return nodes, nil
}

// Get returns a node by kind and id.
func (r *ContentRepository) Get(ctx context.Context, kind models.ContentKind, id string) (*models.ContentNode, error) {
	col, err := r.col(kind)
	if err != nil {
		return nil, err
	}
	var n models.ContentNode
	if err := col.FindOne(ctx, bson.M{"_id": id}).Decode(&n); err != nil {
		return nil, notFound(err)
	}
	n.Kind = kind
	return &n, nil
}

// Insert inserts a new node into the collection of its kind.
func (r *ContentRepository) Insert(ctx context.Context, n *models.ContentNode) error {
	col, err := r.col(n.Kind)
	if err != nil {
		return err
	}
	if n.ID == "" {
		n.ID = NewID()
	}
	now := time.Now()
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now
	}
	n.UpdatedAt = now
	_, err = col.InsertOne(ctx, n)
	return err
}

// UpdateFields updates specific fields of a node.
func (r *ContentRepository) UpdateFields(ctx context.Context, kind models.ContentKind, id string, updates map[string]any) error {
	col, err := r.col(kind)
	if err != nil {
		return err
	}
	set := bson.M{"updated_at": time.Now()}
	for k, v := range updates {
		set[k] = v
	}
	res, err := col.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ContentRepository) Delete(ctx context.Context, kind models.ContentKind, id string) error {
	col, err := r.col(kind)
	if err != nil {
		return err
	}
	_, err = col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

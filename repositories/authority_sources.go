package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"content-graph/models"
)

type AuthoritySourceRepository struct {
	col *mongo.Collection
}

func NewAuthoritySourceRepository(db *mongo.Database) *AuthoritySourceRepository {
	return &AuthoritySourceRepository{col: db.Collection("authority_sources")}
}

// List returns every source, active or not, in catalog order.
func (r *AuthoritySourceRepository) List(ctx context.Context) ([]models.AuthoritySource, error) {
	findOpts := options.Find().SetSort(bson.D{
		{Key: "sort_order", Value: 1},
		{Key: "_id", Value: 1},
	})
	cur, err := r.col.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	return decodeAll[models.AuthoritySource](ctx, cur)
}

func (r *AuthoritySourceRepository) Insert(ctx context.Context, s *models.AuthoritySource) error {
	if s.ID == "" {
		s.ID = NewID()
	}
	_, err := r.col.InsertOne(ctx, s)
	return err
}

package repositories

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"content-graph/models"
)

// ErrNotFound 는 조회 대상 문서가 없을 때 반환된다.
var ErrNotFound = errors.New("document not found")

// ContentFilter narrows a content query.
type ContentFilter struct {
	TopicID       *string
	PublishedOnly bool
}

// EdgeFilter narrows a link edge query. A nil Source matches every edge.
type EdgeFilter struct {
	Source     *models.ContentRef
	Target     *models.ContentRef
	ActiveOnly bool
}

// NewID 는 새 문서 ID(ObjectID hex)를 만든다.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

func notFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

// decodeAll drains a cursor into a slice.
func decodeAll[T any](ctx context.Context, cur *mongo.Cursor) ([]T, error) {
	defer cur.Close(ctx)

	results := make([]T, 0)
	for cur.Next(ctx) {
		var v T
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		results = append(results, v)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

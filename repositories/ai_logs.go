package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"content-graph/models"
)

type AILogRepository struct {
	col *mongo.Collection
}

func NewAILogRepository(db *mongo.Database) *AILogRepository {
	return &AILogRepository{col: db.Collection("ai_logs")}
}

func (r *AILogRepository) Insert(ctx context.Context, l *models.AILog) error {
	if l.ID == "" {
		l.ID = NewID()
	}
	_, err := r.col.InsertOne(ctx, l)
	return err
}

package leadsRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"qport/models"
)

// Create inserts a new demo-request lead and returns its ID.
func (r *mongoLeadRepo) Create(ctx context.Context, lead models.DemoRequest) (string, error) {
	if lead.ID == "" {
		lead.ID = uuid.New().String()
	}
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now()
	}
	if lead.Status == "" {
		lead.Status = "pending"
	}

	_, err := r.coll.InsertOne(ctx, lead)
	if err != nil {
		return "", err
	}
	return lead.ID, nil
}

// GetByID returns a lead by its ID.
func (r *mongoLeadRepo) GetByID(ctx context.Context, id string) (*models.DemoRequest, error) {
	var lead models.DemoRequest
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&lead)
	if err != nil {
		return nil, err
	}
	return &lead, nil
}

// ListRecent fetches the most recently created leads.
func (r *mongoLeadRepo) ListRecent(ctx context.Context, limit int64) ([]models.DemoRequest, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var leads []models.DemoRequest
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

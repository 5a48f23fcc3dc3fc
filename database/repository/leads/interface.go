package leadsRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"qport/database"
	"qport/models"
)

// LeadRepository stores demo-request leads. The collection is append-only;
// listing exists for internal tooling only.
type LeadRepository interface {
	Create(ctx context.Context, lead models.DemoRequest) (string, error)
	GetByID(ctx context.Context, id string) (*models.DemoRequest, error)
	ListRecent(ctx context.Context, limit int64) ([]models.DemoRequest, error)
}

type mongoLeadRepo struct {
	coll *mongo.Collection
}

// NewMongoLeadRepo returns a new LeadRepository instance using MongoDB.
func NewMongoLeadRepo() LeadRepository {
	db := database.MongoClient.Database("qport")
	return &mongoLeadRepo{
		coll: db.Collection("demo_requests"),
	}
}

package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"qport/config"
)

// MongoClient is the global MongoDB client instance. It stays nil when
// DATABASE_URL is unset, which disables lead persistence.
var MongoClient *mongo.Client

// InitDB initializes the MongoDB connection when one is configured.
func InitDB() {
	if config.AppConfig.DatabaseURL == "" {
		log.Println("DATABASE_URL not set, lead persistence disabled")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.AppConfig.DatabaseURL)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("failed to ping MongoDB: %v", err)
	}
	MongoClient = client
	log.Println("Connected to MongoDB successfully!")
}

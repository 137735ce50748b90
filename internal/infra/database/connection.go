package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Collection names.
const (
	CollectionLeads        = "leads"
	CollectionRestaurants  = "restaurants"
	CollectionPOCs         = "pocs"
	CollectionOrders       = "orders"
	CollectionInteractions = "interactions"
	CollectionUsers        = "users"
)

// NewMongoConnection opens the client and proves it with a ping.
func NewMongoConnection(uri string) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(10).
		SetConnectTimeout(5 * time.Second)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	return client, nil
}

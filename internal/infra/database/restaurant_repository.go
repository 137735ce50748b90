package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/rsharda/kam-leads/internal/entity"
	"github.com/rsharda/kam-leads/internal/usecase"
)

type RestaurantRepository struct {
	Collection *mongo.Collection
}

func NewRestaurantRepository(db *mongo.Database) *RestaurantRepository {
	return &RestaurantRepository{Collection: db.Collection(CollectionRestaurants)}
}

func (r *RestaurantRepository) Insert(ctx context.Context, restaurant *entity.Restaurant) error {
	_, err := r.Collection.InsertOne(ctx, restaurant)
	if err != nil {
		return &usecase.StoreError{Op: "insert restaurant", Err: err}
	}
	return nil
}

func (r *RestaurantRepository) FindByID(ctx context.Context, id string) (*entity.Restaurant, error) {
	var restaurant entity.Restaurant
	err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&restaurant)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &usecase.NotFoundError{Resource: "restaurant", ID: id}
	}
	if err != nil {
		return nil, &usecase.StoreError{Op: "find restaurant", Err: err}
	}
	return &restaurant, nil
}

func (r *RestaurantRepository) FindAll(ctx context.Context) ([]entity.Restaurant, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, &usecase.StoreError{Op: "find restaurants", Err: err}
	}

	restaurants := []entity.Restaurant{}
	if err := cursor.All(ctx, &restaurants); err != nil {
		return nil, &usecase.StoreError{Op: "decode restaurants", Err: err}
	}
	return restaurants, nil
}

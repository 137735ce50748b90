package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/rsharda/kam-leads/internal/entity"
	"github.com/rsharda/kam-leads/internal/usecase"
)

type OrderRepository struct {
	Collection *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{Collection: db.Collection(CollectionOrders)}
}

func (r *OrderRepository) Insert(ctx context.Context, order *entity.Order) error {
	_, err := r.Collection.InsertOne(ctx, order)
	if err != nil {
		return &usecase.StoreError{Op: "insert order", Err: err}
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	var order entity.Order
	err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &usecase.NotFoundError{Resource: "order", ID: id}
	}
	if err != nil {
		return nil, &usecase.StoreError{Op: "find order", Err: err}
	}
	return &order, nil
}

func (r *OrderRepository) FindByRestaurant(ctx context.Context, restaurantID string) ([]entity.Order, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"restaurant_id": restaurantID})
	if err != nil {
		return nil, &usecase.StoreError{Op: "find orders", Err: err}
	}

	orders := []entity.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, &usecase.StoreError{Op: "decode orders", Err: err}
	}
	return orders, nil
}

// ApplyStatusChange mirrors the lead repository: field write and
// history append happen in one guarded document update.
func (r *OrderRepository) ApplyStatusChange(ctx context.Context, id string, version int64, change entity.OrderStatusChange) (*entity.Order, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	filter := bson.M{"_id": id, "version": version}
	update := bson.M{
		"$set":  bson.M{"status": change.Status},
		"$push": bson.M{"status_history": change},
		"$inc":  bson.M{"version": 1},
	}

	var updated entity.Order
	err := r.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		count, countErr := r.Collection.CountDocuments(ctx, bson.M{"_id": id})
		if countErr != nil {
			return nil, &usecase.StoreError{Op: "update order status", Err: countErr}
		}
		if count == 0 {
			return nil, &usecase.NotFoundError{Resource: "order", ID: id}
		}
		return nil, usecase.ErrVersionConflict
	}
	if err != nil {
		return nil, &usecase.StoreError{Op: "update order status", Err: err}
	}

	return &updated, nil
}

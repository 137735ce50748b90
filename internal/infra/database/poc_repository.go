package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/rsharda/kam-leads/internal/entity"
	"github.com/rsharda/kam-leads/internal/usecase"
)

type POCRepository struct {
	Collection *mongo.Collection
}

func NewPOCRepository(db *mongo.Database) *POCRepository {
	return &POCRepository{Collection: db.Collection(CollectionPOCs)}
}

func (r *POCRepository) Insert(ctx context.Context, poc *entity.POC) error {
	_, err := r.Collection.InsertOne(ctx, poc)
	if err != nil {
		return &usecase.StoreError{Op: "insert poc", Err: err}
	}
	return nil
}

func (r *POCRepository) FindByID(ctx context.Context, id string) (*entity.POC, error) {
	var poc entity.POC
	err := r.Collection.FindOne(ctx, bson.M{"_id": id}).Decode(&poc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &usecase.NotFoundError{Resource: "poc", ID: id}
	}
	if err != nil {
		return nil, &usecase.StoreError{Op: "find poc", Err: err}
	}
	return &poc, nil
}

func (r *POCRepository) FindByRestaurant(ctx context.Context, restaurantID string) ([]entity.POC, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"restaurant_id": restaurantID})
	if err != nil {
		return nil, &usecase.StoreError{Op: "find pocs", Err: err}
	}

	pocs := []entity.POC{}
	if err := cursor.All(ctx, &pocs); err != nil {
		return nil, &usecase.StoreError{Op: "decode pocs", Err: err}
	}
	return pocs, nil
}

func (r *POCRepository) Update(ctx context.Context, poc *entity.POC) error {
	res, err := r.Collection.ReplaceOne(ctx, bson.M{"_id": poc.ID}, poc)
	if err != nil {
		return &usecase.StoreError{Op: "update poc", Err: err}
	}
	if res.MatchedCount == 0 {
		return &usecase.NotFoundError{Resource: "poc", ID: poc.ID}
	}
	return nil
}

func (r *POCRepository) Delete(ctx context.Context, id string) error {
	res, err := r.Collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return &usecase.StoreError{Op: "delete poc", Err: err}
	}
	if res.DeletedCount == 0 {
		return &usecase.NotFoundError{Resource: "poc", ID: id}
	}
	return nil
}

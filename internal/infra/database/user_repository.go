package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/rsharda/kam-leads/internal/entity"
	"github.com/rsharda/kam-leads/internal/usecase"
)

type UserRepository struct {
	Collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{Collection: db.Collection(CollectionUsers)}
}

func (r *UserRepository) Insert(ctx context.Context, user *entity.User) error {
	_, err := r.Collection.InsertOne(ctx, user)
	if err != nil {
		return &usecase.StoreError{Op: "insert user", Err: err}
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": email}, email)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"username": username}, username)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"_id": id}, id)
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M, ref string) (*entity.User, error) {
	var user entity.User
	err := r.Collection.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, &usecase.NotFoundError{Resource: "user", ID: ref}
	}
	if err != nil {
		return nil, &usecase.StoreError{Op: "find user", Err: err}
	}
	return &user, nil
}

package database

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/rsharda/kam-leads/internal/entity"
	"github.com/rsharda/kam-leads/internal/usecase"
)

type InteractionRepository struct {
	Collection *mongo.Collection
}

func NewInteractionRepository(db *mongo.Database) *InteractionRepository {
	return &InteractionRepository{Collection: db.Collection(CollectionInteractions)}
}

func (r *InteractionRepository) Insert(ctx context.Context, interaction *entity.Interaction) error {
	_, err := r.Collection.InsertOne(ctx, interaction)
	if err != nil {
		return &usecase.StoreError{Op: "insert interaction", Err: err}
	}
	return nil
}

func (r *InteractionRepository) FindByLead(ctx context.Context, leadID string) ([]entity.Interaction, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{"lead_id": leadID})
	if err != nil {
		return nil, &usecase.StoreError{Op: "find interactions", Err: err}
	}

	interactions := []entity.Interaction{}
	if err := cursor.All(ctx, &interactions); err != nil {
		return nil, &usecase.StoreError{Op: "decode interactions", Err: err}
	}
	return interactions, nil
}

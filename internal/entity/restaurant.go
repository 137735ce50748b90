package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	RestaurantStatusNew    = "New"
	RestaurantStatusActive = "Active"
	RestaurantStatusClosed = "Closed"
)

type Restaurant struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Address   string    `json:"address,omitempty" bson:"address,omitempty"`
	City      string    `json:"city,omitempty" bson:"city,omitempty"`
	Status    string    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

func NewRestaurant(name, address, city string) *Restaurant {
	return &Restaurant{
		ID:        uuid.New().String(),
		Name:      name,
		Address:   address,
		City:      city,
		Status:    RestaurantStatusNew,
		CreatedAt: time.Now(),
	}
}

type RestaurantRepositoryInterface interface {
	Insert(ctx context.Context, r *Restaurant) error
	FindByID(ctx context.Context, id string) (*Restaurant, error)
	FindAll(ctx context.Context) ([]Restaurant, error)
}

package entity

import (
	"context"

	"github.com/google/uuid"
)

// POC is a point of contact at a restaurant account.
type POC struct {
	ID           string `json:"id" bson:"_id"`
	RestaurantID string `json:"restaurant_id" bson:"restaurant_id"`
	Name         string `json:"name" bson:"name"`
	Role         string `json:"role,omitempty" bson:"role,omitempty"`
	PhoneNumber  string `json:"phone_number,omitempty" bson:"phone_number,omitempty"`
	Email        string `json:"email,omitempty" bson:"email,omitempty"`
}

func NewPOC(restaurantID, name, role, phone, email string) *POC {
	return &POC{
		ID:           uuid.New().String(),
		RestaurantID: restaurantID,
		Name:         name,
		Role:         role,
		PhoneNumber:  phone,
		Email:        email,
	}
}

type POCRepositoryInterface interface {
	Insert(ctx context.Context, poc *POC) error
	FindByID(ctx context.Context, id string) (*POC, error)
	FindByRestaurant(ctx context.Context, restaurantID string) ([]POC, error)
	Update(ctx context.Context, poc *POC) error
	Delete(ctx context.Context, id string) error
}

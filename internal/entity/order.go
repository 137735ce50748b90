package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	OrderStatusPending   = "Pending"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"
)

func IsValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// OrderStatusChange mirrors the lead audit trail, minus the actor:
// order transitions are recorded without attribution.
type OrderStatusChange struct {
	Status    string    `json:"status" bson:"status"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

type Order struct {
	ID            string              `json:"id" bson:"_id"`
	RestaurantID  string              `json:"restaurant_id" bson:"restaurant_id"`
	Items         []string            `json:"items" bson:"items"`
	TotalAmount   float64             `json:"total_amount" bson:"total_amount"`
	OrderDate     time.Time           `json:"order_date" bson:"order_date"`
	Status        string              `json:"status" bson:"status"`
	StatusHistory []OrderStatusChange `json:"status_history" bson:"status_history"`
	Version       int64               `json:"-" bson:"version"`
}

func NewOrder(restaurantID string, items []string, totalAmount float64) *Order {
	now := time.Now()
	return &Order{
		ID:           uuid.New().String(),
		RestaurantID: restaurantID,
		Items:        items,
		TotalAmount:  totalAmount,
		OrderDate:    now,
		Status:       OrderStatusPending,
		StatusHistory: []OrderStatusChange{{
			Status:    OrderStatusPending,
			UpdatedAt: now,
		}},
		Version: 1,
	}
}

type OrderRepositoryInterface interface {
	Insert(ctx context.Context, order *Order) error
	FindByID(ctx context.Context, id string) (*Order, error)
	FindByRestaurant(ctx context.Context, restaurantID string) ([]Order, error)
	ApplyStatusChange(ctx context.Context, id string, version int64, change OrderStatusChange) (*Order, error)
}

package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Roles. Assignment is restricted to Admin/KAM; Viewer is read-only.
const (
	RoleAdmin  = "Admin"
	RoleKAM    = "KAM"
	RoleViewer = "Viewer"
)

func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleKAM || role == RoleViewer
}

type User struct {
	ID           string    `json:"id" bson:"_id"`
	Username     string    `json:"username" bson:"username"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Role         string    `json:"role" bson:"role"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

func NewUser(username, email, passwordHash, role string) *User {
	if role == "" {
		role = RoleViewer
	}
	return &User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
		CreatedAt:    time.Now(),
	}
}

type UserRepositoryInterface interface {
	Insert(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
}

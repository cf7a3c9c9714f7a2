package usecase

import (
	"context"

	"snackbasket/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateUserInput defines an admin-created user.
type CreateUserInput struct {
	Email    string
	Name     string
	Role     entity.Role
	IsActive *bool // Nil means active.
}

// UpdateUserInput holds optional changes to a user.
type UpdateUserInput struct {
	Name     *string
	Role     *entity.Role
	IsActive *bool
}

// --- Output DTOs ---

// LoginOutput returns the generated tokens after a login or refresh.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// CurrentUserOutput describes the signed-in user and what they may see.
type CurrentUserOutput struct {
	User    *entity.User `json:"user"`
	IsAdmin bool         `json:"is_admin"`
}

// UserUsecase defines user sync, login and administration.
type UserUsecase interface {
	// SyncUser returns the user with email, creating an active employee if absent.
	SyncUser(ctx context.Context, email, name string) (*entity.User, error)
	LoginWithIdentity(ctx context.Context, idToken string) (*LoginOutput, error)
	// RefreshToken issues a new token pair carrying the user's current role.
	RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error)
	CurrentUser(ctx context.Context, userID uuid.UUID) (*CurrentUserOutput, error)

	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

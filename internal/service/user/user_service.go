package user

import (
	"context"

	"sitelog/internal/http/api"
	"sitelog/internal/lib/access"
	"sitelog/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=UserProvider
type UserProvider interface {
	List(ctx context.Context) ([]*models.User, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
}

type UserService struct {
	userProvider UserProvider
}

func NewUserService(userProvider UserProvider) *UserService {
	return &UserService{
		userProvider: userProvider,
	}
}

// List returns every account. Admin only.
func (s *UserService) List(ctx context.Context, actor access.Actor) ([]api.UserSchema, error) {
	if err := access.RequireAdmin(actor); err != nil {
		return nil, err
	}

	users, err := s.userProvider.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]api.UserSchema, 0, len(users))
	for _, u := range users {
		resp = append(resp, api.NewUserSchema(u))
	}

	return resp, nil
}

// Get returns a single account to its owner or to an admin. A missing user is
// reported before the permission check.
func (s *UserService) Get(ctx context.Context, actor access.Actor, userID string) (*api.UserSchema, error) {
	user, err := s.userProvider.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if actor.UserID != userID && !actor.IsAdmin() {
		return nil, access.ErrForbidden
	}

	resp := api.NewUserSchema(user)
	return &resp, nil
}

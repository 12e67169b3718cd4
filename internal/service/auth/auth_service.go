package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"sitelog/internal/http/api"
	"sitelog/internal/lib/access"
	"sitelog/internal/lib/credentials"
	"sitelog/internal/models"
	repo "sitelog/internal/repository"

	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=AccountProvider
type AccountProvider interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TokenIssuer
type TokenIssuer interface {
	Issue(subject, email, role, teamID string) (string, error)
}

// RegisterInput describes a new account.
type RegisterInput struct {
	Email    string
	Password string
	Role     models.Role
	TeamID   *string
	TeamName *string
}

type AuthService struct {
	accounts AccountProvider
	issuer   TokenIssuer
}

func NewAuthService(accounts AccountProvider, issuer TokenIssuer) *AuthService {
	return &AuthService{
		accounts: accounts,
		issuer:   issuer,
	}
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*api.UserSchema, error) {
	hash, err := credentials.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.NewString(),
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: hash,
		Role:         in.Role,
		TeamID:       blankToNil(in.TeamID),
		TeamName:     blankToNil(in.TeamName),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.accounts.Create(ctx, user); err != nil {
		return nil, err
	}

	resp := api.NewUserSchema(user)
	return &resp, nil
}

// Login checks the password and issues a session token. Unknown emails and
// wrong passwords both return credentials.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*api.LoginResponse, error) {
	user, err := s.accounts.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, credentials.ErrInvalidCredentials
		}
		return nil, err
	}

	if !credentials.Verify(password, user.PasswordHash) {
		return nil, credentials.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.ID, user.Email, string(user.Role), user.TeamIDOrEmpty())
	if err != nil {
		return nil, err
	}

	return &api.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        api.NewUserSchema(user),
	}, nil
}

func (s *AuthService) Me(ctx context.Context, actor access.Actor) (*api.UserSchema, error) {
	user, err := s.accounts.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	resp := api.NewUserSchema(user)
	return &resp, nil
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

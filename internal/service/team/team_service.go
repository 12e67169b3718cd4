package team

import (
	"context"
	"strings"
	"time"

	"sitelog/internal/http/api"
	"sitelog/internal/lib/access"
	"sitelog/internal/models"

	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TeamProvider
type TeamProvider interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, teamID string) (*models.Team, error)
	List(ctx context.Context) ([]*models.Team, error)
}

type TeamService struct {
	teamProvider TeamProvider
}

func NewTeamService(teamProvider TeamProvider) *TeamService {
	return &TeamService{
		teamProvider: teamProvider,
	}
}

// Add creates a team. Admin only; manager_id is stored as given.
func (s *TeamService) Add(ctx context.Context, actor access.Actor, name, managerID string) (*api.TeamSchema, error) {
	if err := access.RequireAdmin(actor); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	team := &models.Team{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		ManagerID: strings.TrimSpace(managerID),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.teamProvider.Create(ctx, team); err != nil {
		return nil, err
	}

	resp := api.NewTeamSchema(team)
	return &resp, nil
}

func (s *TeamService) Get(ctx context.Context, teamID string) (*api.TeamSchema, error) {
	team, err := s.teamProvider.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	resp := api.NewTeamSchema(team)
	return &resp, nil
}

func (s *TeamService) List(ctx context.Context) ([]api.TeamSchema, error) {
	teams, err := s.teamProvider.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]api.TeamSchema, 0, len(teams))
	for _, t := range teams {
		resp = append(resp, api.NewTeamSchema(t))
	}

	return resp, nil
}

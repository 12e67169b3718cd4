package worker

import (
	"context"
	"strings"
	"time"

	"sitelog/internal/http/api"
	"sitelog/internal/lib/access"
	"sitelog/internal/models"

	"github.com/google/uuid"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=WorkerProvider
type WorkerProvider interface {
	Create(ctx context.Context, worker *models.Worker) error
	GetByID(ctx context.Context, workerID string) (*models.Worker, error)
	List(ctx context.Context, teamID *string) ([]*models.Worker, error)
	Delete(ctx context.Context, workerID string) error
}

// WorkerService manages the worker roster. Only listing is team scoped;
// create, get and delete are open to any authenticated actor.
type WorkerService struct {
	workerProvider WorkerProvider
}

func NewWorkerService(workerProvider WorkerProvider) *WorkerService {
	return &WorkerService{
		workerProvider: workerProvider,
	}
}

func (s *WorkerService) List(ctx context.Context, actor access.Actor, requestedTeamID string) ([]api.WorkerSchema, error) {
	scope, err := access.ReadScope(actor, requestedTeamID)
	if err != nil {
		return nil, err
	}
	if scope.Empty {
		return []api.WorkerSchema{}, nil
	}

	workers, err := s.workerProvider.List(ctx, scope.TeamFilter())
	if err != nil {
		return nil, err
	}

	resp := make([]api.WorkerSchema, 0, len(workers))
	for _, w := range workers {
		resp = append(resp, api.NewWorkerSchema(w))
	}

	return resp, nil
}

func (s *WorkerService) Create(ctx context.Context, name, teamID string) (*api.WorkerSchema, error) {
	now := time.Now().UTC()
	worker := &models.Worker{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(name),
		TeamID:    strings.TrimSpace(teamID),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.workerProvider.Create(ctx, worker); err != nil {
		return nil, err
	}

	resp := api.NewWorkerSchema(worker)
	return &resp, nil
}

func (s *WorkerService) Get(ctx context.Context, workerID string) (*api.WorkerSchema, error) {
	worker, err := s.workerProvider.GetByID(ctx, workerID)
	if err != nil {
		return nil, err
	}

	resp := api.NewWorkerSchema(worker)
	return &resp, nil
}

func (s *WorkerService) Delete(ctx context.Context, workerID string) error {
	return s.workerProvider.Delete(ctx, workerID)
}

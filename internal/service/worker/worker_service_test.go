package worker_test

import (
	"context"
	"testing"

	"sitelog/internal/lib/access"
	"sitelog/internal/models"
	repo "sitelog/internal/repository"
	"sitelog/internal/service/mocks"
	"sitelog/internal/service/worker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	admin         = access.Actor{UserID: "1", Email: "admin", Role: models.RoleAdmin}
	manager       = access.Actor{UserID: "2", Email: "team1", Role: models.RoleManager, TeamID: "team-1"}
	managerNoTeam = access.Actor{UserID: "5", Email: "floater", Role: models.RoleManager}
)

func teamPtr(id string) *string { return &id }

func TestWorkerService_List_Admin(t *testing.T) {
	ctx := context.Background()

	mockWorkerProvider := mocks.NewWorkerProvider(t)
	mockWorkerProvider.On("List", ctx, (*string)(nil)).Return([]*models.Worker{
		{ID: "w-1", Name: "Kim", TeamID: "team-1"},
		{ID: "w-2", Name: "Lee", TeamID: "team-2"},
	}, nil).Once()
	mockWorkerProvider.On("List", ctx, teamPtr("team-2")).Return([]*models.Worker{
		{ID: "w-2", Name: "Lee", TeamID: "team-2"},
	}, nil).Once()

	service := worker.NewWorkerService(mockWorkerProvider)

	all, err := service.List(ctx, admin, "")
	assert.NoError(t, err)
	assert.Len(t, all, 2)

	filtered, err := service.List(ctx, admin, "team-2")
	assert.NoError(t, err)
	assert.Len(t, filtered, 1)
}

func TestWorkerService_List_ManagerScopedToOwnTeam(t *testing.T) {
	ctx := context.Background()

	mockWorkerProvider := mocks.NewWorkerProvider(t)
	mockWorkerProvider.On("List", ctx, teamPtr("team-1")).Return([]*models.Worker{
		{ID: "w-1", Name: "Kim", TeamID: "team-1"},
	}, nil).Once()

	service := worker.NewWorkerService(mockWorkerProvider)

	resp, err := service.List(ctx, manager, "")
	assert.NoError(t, err)
	assert.Len(t, resp, 1)

	_, err = service.List(ctx, manager, "team-2")
	assert.ErrorIs(t, err, access.ErrForbidden)
}

func TestWorkerService_List_ManagerWithoutTeam(t *testing.T) {
	ctx := context.Background()

	mockWorkerProvider := mocks.NewWorkerProvider(t)

	service := worker.NewWorkerService(mockWorkerProvider)

	resp, err := service.List(ctx, managerNoTeam, "")
	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Empty(t, resp)
}

func TestWorkerService_Create(t *testing.T) {
	ctx := context.Background()

	mockWorkerProvider := mocks.NewWorkerProvider(t)
	mockWorkerProvider.On("Create", ctx, mock.MatchedBy(func(w *models.Worker) bool {
		return w.ID != "" && w.Name == "Park" && w.TeamID == "team-3"
	})).Return(nil).Once()

	service := worker.NewWorkerService(mockWorkerProvider)

	resp, err := service.Create(ctx, " Park ", "team-3")

	assert.NoError(t, err)
	assert.Equal(t, "Park", resp.Name)
	assert.Equal(t, "team-3", resp.TeamID)
}

func TestWorkerService_GetAndDelete(t *testing.T) {
	ctx := context.Background()

	mockWorkerProvider := mocks.NewWorkerProvider(t)
	mockWorkerProvider.On("GetByID", ctx, "w-1").Return(&models.Worker{ID: "w-1", Name: "Kim", TeamID: "team-1"}, nil).Once()
	mockWorkerProvider.On("GetByID", ctx, "w-9").Return(nil, repo.ErrNotFound).Once()
	mockWorkerProvider.On("Delete", ctx, "w-1").Return(nil).Once()
	mockWorkerProvider.On("Delete", ctx, "w-9").Return(repo.ErrNotFound).Once()

	service := worker.NewWorkerService(mockWorkerProvider)

	resp, err := service.Get(ctx, "w-1")
	assert.NoError(t, err)
	assert.Equal(t, "Kim", resp.Name)

	_, err = service.Get(ctx, "w-9")
	assert.ErrorIs(t, err, repo.ErrNotFound)

	assert.NoError(t, service.Delete(ctx, "w-1"))
	assert.ErrorIs(t, service.Delete(ctx, "w-9"), repo.ErrNotFound)
}

package bootstrap_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"sitelog/internal/lib/config"
	"sitelog/internal/lib/credentials"
	"sitelog/internal/models"
	repo "sitelog/internal/repository"
	"sitelog/internal/service/bootstrap"
	"sitelog/internal/service/mocks"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var seedConfig = config.Bootstrap{
	Enabled: true,
	Admin:   config.Account{Email: "admin", Password: "admin"},
	Managers: []config.Account{
		{Email: "team1", Password: "team1", TeamName: "Team 1"},
		{Email: "team2", Password: "team2", TeamName: "Team 2"},
		{Email: "team3", Password: "team3"},
	},
}

func passthroughTx(t *testing.T, ctx context.Context, want error) *mocks.MockManager {
	trm := mocks.NewMockManager(t)
	trm.ExpectTx(ctx, want)
	return trm
}

func TestSeeder_Run_SkipsWhenUsersExist(t *testing.T) {
	ctx := context.Background()

	users := mocks.NewUserSeeder(t)
	teams := mocks.NewTeamSeeder(t)
	users.On("Count", ctx).Return(2, nil).Once()

	seeder := bootstrap.NewSeeder(passthroughTx(t, ctx, nil), users, teams, seedConfig)

	seeded, err := seeder.Run(ctx)

	assert.NoError(t, err)
	assert.False(t, seeded)
}

func TestSeeder_Run_SeedsAdminAndManagers(t *testing.T) {
	ctx := context.Background()

	users := mocks.NewUserSeeder(t)
	teams := mocks.NewTeamSeeder(t)

	users.On("Count", ctx).Return(0, nil).Once()
	users.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
		return u.ID == "1" && u.Role == models.RoleAdmin && u.TeamID == nil && credentials.Verify("admin", u.PasswordHash)
	})).Return(nil).Once()

	for i, id := range []string{"2", "3", "4"} {
		id := id
		teamID := []string{"team-1", "team-2", "team-3"}[i]
		teamName := []string{"Team 1", "Team 2", "Team 3"}[i]
		email := seedConfig.Managers[i].Email

		teams.On("Create", ctx, mock.MatchedBy(func(tm *models.Team) bool {
			return tm.ID == teamID && tm.Name == teamName && tm.ManagerID == id
		})).Return(nil).Once()
		users.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
			return u.ID == id &&
				u.Email == email &&
				u.Role == models.RoleManager &&
				u.TeamIDOrEmpty() == teamID &&
				u.TeamName != nil && *u.TeamName == teamName
		})).Return(nil).Once()
	}

	seeder := bootstrap.NewSeeder(passthroughTx(t, ctx, nil), users, teams, seedConfig)

	seeded, err := seeder.Run(ctx)

	assert.NoError(t, err)
	assert.True(t, seeded)
}

func TestSeeder_Run_Failure(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("disk full")

	users := mocks.NewUserSeeder(t)
	teams := mocks.NewTeamSeeder(t)
	users.On("Count", ctx).Return(0, nil).Once()
	users.On("Create", ctx, mock.Anything).Return(dbErr).Once()

	seeder := bootstrap.NewSeeder(passthroughTx(t, ctx, dbErr), users, teams, seedConfig)

	seeded, err := seeder.Run(ctx)

	assert.False(t, seeded)
	assert.ErrorIs(t, err, dbErr)
}

func TestSeeder_Run_Idempotent(t *testing.T) {
	ctx := context.Background()

	dsn := "file:" + filepath.Join(t.TempDir(), "sitelog.db") + "?_pragma=busy_timeout(5000)"
	db, err := repo.Open(ctx, repo.DriverSQLite, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, repo.ApplyMigrations(ctx, db))

	userRepo := repo.NewUserRepo(db, trmsqlx.DefaultCtxGetter)
	teamRepo := repo.NewTeamRepo(db, trmsqlx.DefaultCtxGetter)
	seeder := bootstrap.NewSeeder(manager.Must(trmsqlx.NewDefaultFactory(db)), userRepo, teamRepo, seedConfig)

	seeded, err := seeder.Run(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = seeder.Run(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)

	count, err := userRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	teams, err := teamRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, teams, 3)

	manager1, err := userRepo.GetByEmail(ctx, "team1")
	require.NoError(t, err)
	assert.Equal(t, "2", manager1.ID)
	assert.Equal(t, "team-1", manager1.TeamIDOrEmpty())
	assert.True(t, credentials.Verify("team1", manager1.PasswordHash))
}

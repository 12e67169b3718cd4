// Package bootstrap seeds the default accounts on an empty database.
package bootstrap

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"sitelog/internal/lib/config"
	"sitelog/internal/lib/credentials"
	"sitelog/internal/models"
	"sitelog/internal/service"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=UserSeeder
type UserSeeder interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, user *models.User) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TeamSeeder
type TeamSeeder interface {
	Create(ctx context.Context, team *models.Team) error
}

type Seeder struct {
	trm   service.TransactionManager
	users UserSeeder
	teams TeamSeeder
	cfg   config.Bootstrap
}

func NewSeeder(trm service.TransactionManager, users UserSeeder, teams TeamSeeder, cfg config.Bootstrap) *Seeder {
	return &Seeder{
		trm:   trm,
		users: users,
		teams: teams,
		cfg:   cfg,
	}
}

// Run creates the admin (id "1") and one manager per configured account
// (ids "2", "3", ...), each owning team "team-<n>". It does nothing when any
// user already exists. Everything happens in one transaction.
func (s *Seeder) Run(ctx context.Context) (seeded bool, err error) {
	err = s.trm.Do(ctx, func(ctx context.Context) error {
		count, err := s.users.Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		now := time.Now().UTC()

		admin, err := newUser("1", s.cfg.Admin, models.RoleAdmin, nil, nil, now)
		if err != nil {
			return err
		}
		if err := s.users.Create(ctx, admin); err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}

		for i, account := range s.cfg.Managers {
			n := i + 1
			userID := strconv.Itoa(n + 1)
			teamID := fmt.Sprintf("team-%d", n)
			teamName := account.TeamName
			if teamName == "" {
				teamName = fmt.Sprintf("Team %d", n)
			}

			team := &models.Team{
				ID:        teamID,
				Name:      teamName,
				ManagerID: userID,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := s.teams.Create(ctx, team); err != nil {
				return fmt.Errorf("seed team %s: %w", teamID, err)
			}

			manager, err := newUser(userID, account, models.RoleManager, &teamID, &teamName, now)
			if err != nil {
				return err
			}
			if err := s.users.Create(ctx, manager); err != nil {
				return fmt.Errorf("seed manager %s: %w", account.Email, err)
			}
		}

		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}

	return seeded, nil
}

func newUser(id string, account config.Account, role models.Role, teamID, teamName *string, now time.Time) (*models.User, error) {
	hash, err := credentials.Hash(account.Password)
	if err != nil {
		return nil, err
	}

	return &models.User{
		ID:           id,
		Email:        account.Email,
		PasswordHash: hash,
		Role:         role,
		TeamID:       teamID,
		TeamName:     teamName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

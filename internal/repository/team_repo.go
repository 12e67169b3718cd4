package repo

import (
	"context"
	"database/sql"
	"errors"

	"sitelog/internal/lib"
	"sitelog/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
)

type TeamRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewTeamRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *TeamRepo {
	return &TeamRepo{
		db:     db,
		getter: c,
	}
}

func (r *TeamRepo) Create(ctx context.Context, team *models.Team) error {
	const op = "team_repo.Create"

	query := r.db.Rebind(`
		INSERT INTO teams (id, name, manager_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?);
	`)

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(
		ctx,
		query,
		team.ID,
		team.Name,
		team.ManagerID,
		team.CreatedAt,
		team.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrTeamExists
		}
		return lib.Err(op, err)
	}

	return nil
}

func (r *TeamRepo) GetByID(ctx context.Context, teamID string) (*models.Team, error) {
	const op = "team_repo.GetByID"

	query := r.db.Rebind(`
		SELECT id, name, manager_id, created_at, updated_at
		FROM teams
		WHERE id = ?;
	`)

	var team models.Team
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &team, query, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &team, nil
}

func (r *TeamRepo) List(ctx context.Context) ([]*models.Team, error) {
	const op = "team_repo.List"

	query := `
		SELECT id, name, manager_id, created_at, updated_at
		FROM teams
		ORDER BY name;
	`

	var teams []*models.Team
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &teams, query)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return teams, nil
}

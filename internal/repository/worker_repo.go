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

type WorkerRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewWorkerRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *WorkerRepo {
	return &WorkerRepo{
		db:     db,
		getter: c,
	}
}

func (r *WorkerRepo) Create(ctx context.Context, worker *models.Worker) error {
	const op = "worker_repo.Create"

	query := r.db.Rebind(`
		INSERT INTO workers (id, name, team_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?);
	`)

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(
		ctx,
		query,
		worker.ID,
		worker.Name,
		worker.TeamID,
		worker.CreatedAt,
		worker.UpdatedAt,
	)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}

func (r *WorkerRepo) GetByID(ctx context.Context, workerID string) (*models.Worker, error) {
	const op = "worker_repo.GetByID"

	query := r.db.Rebind(`
		SELECT id, name, team_id, created_at, updated_at
		FROM workers
		WHERE id = ?;
	`)

	var worker models.Worker
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &worker, query, workerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &worker, nil
}

// List returns workers of one team, or of every team when teamID is nil.
func (r *WorkerRepo) List(ctx context.Context, teamID *string) ([]*models.Worker, error) {
	const op = "worker_repo.List"

	query := `SELECT id, name, team_id, created_at, updated_at FROM workers`
	var args []any
	if teamID != nil {
		query += ` WHERE team_id = ?`
		args = append(args, *teamID)
	}
	query = r.db.Rebind(query + ` ORDER BY name, id;`)

	var workers []*models.Worker
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &workers, query, args...)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return workers, nil
}

func (r *WorkerRepo) Delete(ctx context.Context, workerID string) error {
	const op = "worker_repo.Delete"

	query := r.db.Rebind(`DELETE FROM workers WHERE id = ?`)

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, workerID)
	if err != nil {
		return lib.Err(op, err)
	}

	return checkAffected(op, res)
}

// checkAffected maps "no row touched" to ErrNotFound.
func checkAffected(op string, res sql.Result) error {
	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return lib.Err(op, err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

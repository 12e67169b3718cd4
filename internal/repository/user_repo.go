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

const userColumns = `id, email, password, role, team_id, team_name, created_at, updated_at`

type UserRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewUserRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *UserRepo {
	return &UserRepo{
		db:     db,
		getter: c,
	}
}

func (r *UserRepo) Create(ctx context.Context, user *models.User) error {
	const op = "user_repo.Create"

	query := r.db.Rebind(`
		INSERT INTO users (` + userColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?);
	`)

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(
		ctx,
		query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.Role,
		user.TeamID,
		user.TeamName,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrEmailExists
		}
		return lib.Err(op, err)
	}

	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, userID string) (*models.User, error) {
	const op = "user_repo.GetByID"

	query := r.db.Rebind(`SELECT ` + userColumns + ` FROM users WHERE id = ?;`)

	var user models.User
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &user, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "user_repo.GetByEmail"

	query := r.db.Rebind(`SELECT ` + userColumns + ` FROM users WHERE email = ?;`)

	var user models.User
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &user, nil
}

func (r *UserRepo) List(ctx context.Context) ([]*models.User, error) {
	const op = "user_repo.List"

	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at, id;`

	var users []*models.User
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &users, query)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return users, nil
}

func (r *UserRepo) Count(ctx context.Context) (int, error) {
	const op = "user_repo.Count"

	var count int
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &count, `SELECT COUNT(*) FROM users;`)
	if err != nil {
		return 0, lib.Err(op, err)
	}

	return count, nil
}

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

const workRecordColumns = `id, worker_id, worker_name, site_name, work_date, work_hours, notes,
	team_id, created_by, created_at, updated_at`

type WorkRecordRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewWorkRecordRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *WorkRecordRepo {
	return &WorkRecordRepo{
		db:     db,
		getter: c,
	}
}

func (r *WorkRecordRepo) Create(ctx context.Context, rec *models.WorkRecord) error {
	const op = "work_record_repo.Create"

	query := r.db.Rebind(`
		INSERT INTO work_records (` + workRecordColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`)

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(
		ctx,
		query,
		rec.ID,
		rec.WorkerID,
		rec.WorkerName,
		rec.SiteName,
		rec.WorkDate,
		rec.WorkHours,
		rec.Notes,
		rec.TeamID,
		rec.CreatedBy,
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	if err != nil {
		return lib.Err(op, err)
	}

	return nil
}

func (r *WorkRecordRepo) GetByID(ctx context.Context, recordID string) (*models.WorkRecord, error) {
	const op = "work_record_repo.GetByID"

	query := r.db.Rebind(`SELECT ` + workRecordColumns + ` FROM work_records WHERE id = ?;`)

	var rec models.WorkRecord
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &rec, query, recordID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &rec, nil
}

func (r *WorkRecordRepo) List(ctx context.Context, filter models.RecordFilter) ([]*models.WorkRecord, error) {
	const op = "work_record_repo.List"

	where, args := filterClause(filter)
	query := r.db.Rebind(`SELECT ` + workRecordColumns + ` FROM work_records` + where +
		` ORDER BY work_date DESC, created_at DESC;`)

	var records []*models.WorkRecord
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &records, query, args...)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return records, nil
}

// Update overwrites the mutable columns. team_id, created_by and created_at
// are never written after creation.
func (r *WorkRecordRepo) Update(ctx context.Context, rec *models.WorkRecord) error {
	const op = "work_record_repo.Update"

	query := r.db.Rebind(`
		UPDATE work_records
		SET worker_id = ?, worker_name = ?, site_name = ?, work_hours = ?, notes = ?, updated_at = ?
		WHERE id = ?;
	`)

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(
		ctx,
		query,
		rec.WorkerID,
		rec.WorkerName,
		rec.SiteName,
		rec.WorkHours,
		rec.Notes,
		rec.UpdatedAt,
		rec.ID,
	)
	if err != nil {
		return lib.Err(op, err)
	}

	return checkAffected(op, res)
}

func (r *WorkRecordRepo) Delete(ctx context.Context, recordID string) error {
	const op = "work_record_repo.Delete"

	query := r.db.Rebind(`DELETE FROM work_records WHERE id = ?`)

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, recordID)
	if err != nil {
		return lib.Err(op, err)
	}

	return checkAffected(op, res)
}

func filterClause(filter models.RecordFilter) (string, []any) {
	var (
		clause string
		args   []any
	)

	if filter.TeamID != nil {
		clause += ` WHERE team_id = ?`
		args = append(args, *filter.TeamID)
	}
	if filter.WorkDate != nil {
		if clause == "" {
			clause += ` WHERE`
		} else {
			clause += ` AND`
		}
		clause += ` work_date = ?`
		args = append(args, *filter.WorkDate)
	}

	return clause, args
}

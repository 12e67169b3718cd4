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

const equipmentRecordColumns = `id, work_date, equipment_type, quantity, team_id, created_by, created_at, updated_at`

type EquipmentRecordRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewEquipmentRecordRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *EquipmentRecordRepo {
	return &EquipmentRecordRepo{
		db:     db,
		getter: c,
	}
}

// Accumulate inserts rec, or, when a record with the same work date,
// equipment type and team already exists, adds rec.Quantity to it in the same
// statement. The stored row is returned; its ID differs from rec.ID when the
// quantity was merged into an existing record.
func (r *EquipmentRecordRepo) Accumulate(ctx context.Context, rec *models.EquipmentRecord) (*models.EquipmentRecord, error) {
	const op = "equipment_record_repo.Accumulate"

	query := r.db.Rebind(`
		INSERT INTO equipment_records (` + equipmentRecordColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (work_date, equipment_type, team_id) DO UPDATE SET
			quantity = equipment_records.quantity + EXCLUDED.quantity,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + equipmentRecordColumns + `;
	`)

	var stored models.EquipmentRecord
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(
		ctx,
		&stored,
		query,
		rec.ID,
		rec.WorkDate,
		rec.EquipmentType,
		rec.Quantity,
		rec.TeamID,
		rec.CreatedBy,
		rec.CreatedAt,
		rec.UpdatedAt,
	)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return &stored, nil
}

func (r *EquipmentRecordRepo) GetByID(ctx context.Context, recordID string) (*models.EquipmentRecord, error) {
	const op = "equipment_record_repo.GetByID"

	query := r.db.Rebind(`SELECT ` + equipmentRecordColumns + ` FROM equipment_records WHERE id = ?;`)

	var rec models.EquipmentRecord
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &rec, query, recordID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &rec, nil
}

func (r *EquipmentRecordRepo) List(ctx context.Context, filter models.RecordFilter) ([]*models.EquipmentRecord, error) {
	const op = "equipment_record_repo.List"

	where, args := filterClause(filter)
	query := r.db.Rebind(`SELECT ` + equipmentRecordColumns + ` FROM equipment_records` + where +
		` ORDER BY work_date DESC, created_at DESC;`)

	var records []*models.EquipmentRecord
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &records, query, args...)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return records, nil
}

// Update overwrites work date, equipment type and quantity. Moving a record
// onto a key that is already taken returns ErrEquipmentExists.
func (r *EquipmentRecordRepo) Update(ctx context.Context, rec *models.EquipmentRecord) error {
	const op = "equipment_record_repo.Update"

	query := r.db.Rebind(`
		UPDATE equipment_records
		SET work_date = ?, equipment_type = ?, quantity = ?, updated_at = ?
		WHERE id = ?;
	`)

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(
		ctx,
		query,
		rec.WorkDate,
		rec.EquipmentType,
		rec.Quantity,
		rec.UpdatedAt,
		rec.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrEquipmentExists
		}
		return lib.Err(op, err)
	}

	return checkAffected(op, res)
}

func (r *EquipmentRecordRepo) Delete(ctx context.Context, recordID string) error {
	const op = "equipment_record_repo.Delete"

	query := r.db.Rebind(`DELETE FROM equipment_records WHERE id = ?`)

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, recordID)
	if err != nil {
		return lib.Err(op, err)
	}

	return checkAffected(op, res)
}

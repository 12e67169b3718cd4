package repo

import (
	"context"

	"sitelog/internal/lib"
	"sitelog/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
)

// ReportRepo aggregates records over a half-open date range [from, to).
type ReportRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewReportRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *ReportRepo {
	return &ReportRepo{
		db:     db,
		getter: c,
	}
}

func (r *ReportRepo) SiteHours(ctx context.Context, from, to models.Date, teamID *string) ([]*models.SiteHours, error) {
	const op = "report_repo.SiteHours"

	where, args := rangeClause(from, to, teamID)
	query := r.db.Rebind(`
		SELECT site_name, SUM(work_hours) AS total_hours, COUNT(*) AS record_count
		FROM work_records` + where + `
		GROUP BY site_name
		ORDER BY total_hours DESC, site_name ASC;
	`)

	var stats []*models.SiteHours
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &stats, query, args...)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return stats, nil
}

func (r *ReportRepo) EquipmentTotals(ctx context.Context, from, to models.Date, teamID *string) ([]*models.EquipmentTotal, error) {
	const op = "report_repo.EquipmentTotals"

	where, args := rangeClause(from, to, teamID)
	query := r.db.Rebind(`
		SELECT equipment_type, SUM(quantity) AS total_quantity
		FROM equipment_records` + where + `
		GROUP BY equipment_type
		ORDER BY total_quantity DESC, equipment_type ASC;
	`)

	var stats []*models.EquipmentTotal
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &stats, query, args...)
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return stats, nil
}

func rangeClause(from, to models.Date, teamID *string) (string, []any) {
	clause := ` WHERE work_date >= ? AND work_date < ?`
	args := []any{from, to}
	if teamID != nil {
		clause += ` AND team_id = ?`
		args = append(args, *teamID)
	}
	return clause, args
}

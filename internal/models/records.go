package models

import "time"

type WorkRecord struct {
	ID         string    `db:"id"`
	WorkerID   string    `db:"worker_id"`
	WorkerName string    `db:"worker_name"`
	SiteName   string    `db:"site_name"`
	WorkDate   Date      `db:"work_date"`
	WorkHours  float64   `db:"work_hours"`
	Notes      *string   `db:"notes"`
	TeamID     string    `db:"team_id"`
	CreatedBy  string    `db:"created_by"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// EquipmentRecord is unique per (WorkDate, EquipmentType, TeamID).
type EquipmentRecord struct {
	ID            string    `db:"id"`
	WorkDate      Date      `db:"work_date"`
	EquipmentType string    `db:"equipment_type"`
	Quantity      int       `db:"quantity"`
	TeamID        string    `db:"team_id"`
	CreatedBy     string    `db:"created_by"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// RecordFilter narrows record listings. Nil fields are not applied.
type RecordFilter struct {
	TeamID   *string
	WorkDate *Date
}

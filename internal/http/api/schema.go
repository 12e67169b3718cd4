package api

import (
	"time"

	"sitelog/internal/models"
)

type UserSchema struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	TeamID    *string   `json:"team_id"`
	TeamName  *string   `json:"team_name"`
	CreatedAt time.Time `json:"created_at"`
}

type TeamSchema struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ManagerID string    `json:"manager_id"`
	CreatedAt time.Time `json:"created_at"`
}

type WorkerSchema struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TeamID    string    `json:"team_id"`
	CreatedAt time.Time `json:"created_at"`
}

type WorkRecordSchema struct {
	ID         string      `json:"id"`
	WorkerID   string      `json:"worker_id"`
	WorkerName string      `json:"worker_name"`
	SiteName   string      `json:"site_name"`
	WorkDate   models.Date `json:"work_date"`
	WorkHours  float64     `json:"work_hours"`
	Notes      *string     `json:"notes"`
	TeamID     string      `json:"team_id"`
	CreatedBy  string      `json:"created_by"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

type EquipmentRecordSchema struct {
	ID            string      `json:"id"`
	WorkDate      models.Date `json:"work_date"`
	EquipmentType string      `json:"equipment_type"`
	Quantity      int         `json:"quantity"`
	TeamID        string      `json:"team_id"`
	CreatedBy     string      `json:"created_by"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

func NewUserSchema(u *models.User) UserSchema {
	return UserSchema{
		ID:        u.ID,
		Email:     u.Email,
		Role:      string(u.Role),
		TeamID:    u.TeamID,
		TeamName:  u.TeamName,
		CreatedAt: u.CreatedAt,
	}
}

func NewTeamSchema(t *models.Team) TeamSchema {
	return TeamSchema{
		ID:        t.ID,
		Name:      t.Name,
		ManagerID: t.ManagerID,
		CreatedAt: t.CreatedAt,
	}
}

func NewWorkerSchema(w *models.Worker) WorkerSchema {
	return WorkerSchema{
		ID:        w.ID,
		Name:      w.Name,
		TeamID:    w.TeamID,
		CreatedAt: w.CreatedAt,
	}
}

func NewWorkRecordSchema(r *models.WorkRecord) WorkRecordSchema {
	return WorkRecordSchema{
		ID:         r.ID,
		WorkerID:   r.WorkerID,
		WorkerName: r.WorkerName,
		SiteName:   r.SiteName,
		WorkDate:   r.WorkDate,
		WorkHours:  r.WorkHours,
		Notes:      r.Notes,
		TeamID:     r.TeamID,
		CreatedBy:  r.CreatedBy,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func NewEquipmentRecordSchema(r *models.EquipmentRecord) EquipmentRecordSchema {
	return EquipmentRecordSchema{
		ID:            r.ID,
		WorkDate:      r.WorkDate,
		EquipmentType: r.EquipmentType,
		Quantity:      r.Quantity,
		TeamID:        r.TeamID,
		CreatedBy:     r.CreatedBy,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

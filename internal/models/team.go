package models

import "time"

type Team struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	ManagerID string    `db:"manager_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

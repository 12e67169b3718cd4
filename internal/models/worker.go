package models

import "time"

type Worker struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	TeamID    string    `db:"team_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

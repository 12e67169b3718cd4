package models

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
)

type User struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password"`
	Role         Role      `db:"role"`
	TeamID       *string   `db:"team_id"`
	TeamName     *string   `db:"team_name"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// TeamIDOrEmpty returns the user's team id, or "" for users without a team.
func (u *User) TeamIDOrEmpty() string {
	if u.TeamID == nil {
		return ""
	}
	return *u.TeamID
}

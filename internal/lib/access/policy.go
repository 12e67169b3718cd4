// Package access decides which teams an authenticated actor may read or write.
// Everything here is pure: no storage, no request state.
package access

import (
	"errors"
	"strings"

	"sitelog/internal/models"
)

var (
	ErrForbidden    = errors.New("access denied")
	ErrTeamRequired = errors.New("team_id is required")
)

// Actor is the identity carried by a validated session token.
type Actor struct {
	UserID string
	Email  string
	Role   models.Role
	TeamID string
}

func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// IsScopedManager reports whether the actor is a manager bound to a team.
func (a Actor) IsScopedManager() bool {
	return a.Role == models.RoleManager && a.TeamID != ""
}

// Scope is the row filter a read must apply.
type Scope struct {
	// All means no team filter.
	All bool
	// TeamID filters rows to a single team when All is false.
	TeamID string
	// Empty means the actor can see nothing; callers return an empty result
	// without touching the store.
	Empty bool
}

// TeamFilter returns the team to filter by, or nil when every team is visible.
func (s Scope) TeamFilter() *string {
	if s.All || s.Empty {
		return nil
	}
	id := s.TeamID
	return &id
}

// ReadScope narrows a list request. requestedTeamID is the optional team_id
// query parameter.
func ReadScope(actor Actor, requestedTeamID string) (Scope, error) {
	requested := strings.TrimSpace(requestedTeamID)

	switch {
	case actor.IsAdmin():
		if requested == "" {
			return Scope{All: true}, nil
		}
		return Scope{TeamID: requested}, nil
	case actor.IsScopedManager():
		if requested != "" && requested != actor.TeamID {
			return Scope{}, ErrForbidden
		}
		return Scope{TeamID: actor.TeamID}, nil
	default:
		// managers without a team and unknown roles fail safe
		return Scope{Empty: true}, nil
	}
}

// ResolveWriteTeam returns the team a new record is created for.
func ResolveWriteTeam(actor Actor, requestedTeamID string) (string, error) {
	requested := strings.TrimSpace(requestedTeamID)

	switch {
	case actor.IsAdmin():
		if requested == "" {
			return "", ErrTeamRequired
		}
		return requested, nil
	case actor.IsScopedManager():
		if requested != "" && requested != actor.TeamID {
			return "", ErrForbidden
		}
		return actor.TeamID, nil
	default:
		return "", ErrForbidden
	}
}

// CheckOwnership guards reads by id, updates and deletes of an existing record.
func CheckOwnership(actor Actor, recordTeamID string) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.IsScopedManager() && actor.TeamID == recordTeamID {
		return nil
	}
	return ErrForbidden
}

func RequireAdmin(actor Actor) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

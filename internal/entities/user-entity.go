package entities

import "time"

type Role string

const (
	RoleAdmin      Role = "ADMIN"
	RoleUser       Role = "USER"
	RoleTechnician Role = "TECHNICIAN"
)

type User struct {
	ID    uint64 `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`

	Password string `json:"-" db:"password"`

	Role   Role    `json:"role" db:"role"`
	TeamID *uint64 `json:"team_id" db:"team_id"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// HasTeam reports whether the user carries a team affiliation.
// Technicians without one fall outside every team scope.
func (u *User) HasTeam() bool {
	return u.TeamID != nil
}

package entities

import "time"

type Team struct {
	ID        uint64    `json:"team_id" db:"id"`
	TeamName  string    `json:"team_name" db:"team_name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// Aggregates joined by the list query, not table columns.
	TechnicianCount uint64 `json:"technician_count" db:"-"`
	EquipmentCount  uint64 `json:"equipment_count" db:"-"`
}

package entities

import "time"

type EquipmentStatus string

const (
	EquipmentActive   EquipmentStatus = "ACTIVE"
	EquipmentScrapped EquipmentStatus = "SCRAPPED"
)

type Equipment struct {
	ID           uint64          `json:"equipment_id" db:"id"`
	Name         string          `json:"name" db:"name"`
	SerialNumber string          `json:"serial_number" db:"serial_number"`
	Location     string          `json:"location" db:"location"`
	Department   string          `json:"department" db:"department"`
	TeamID       *uint64         `json:"team_id" db:"team_id"`
	Status       EquipmentStatus `json:"status" db:"status"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`

	// Joined display field.
	TeamName *string `json:"team_name" db:"-"`
}

package entities

import "time"

type RequestType string

const (
	RequestCorrective RequestType = "CORRECTIVE"
	RequestPreventive RequestType = "PREVENTIVE"
)

type RequestStatus string

const (
	RequestNew        RequestStatus = "NEW"
	RequestInProgress RequestStatus = "IN_PROGRESS"
	RequestRepaired   RequestStatus = "REPAIRED"
	RequestScrap      RequestStatus = "SCRAP"
)

// ResolvedStatuses are terminal for overdue accounting.
var ResolvedStatuses = []RequestStatus{RequestRepaired, RequestScrap}

type MaintenanceRequest struct {
	ID              uint64        `json:"request_id" db:"id"`
	Subject         string        `json:"subject" db:"subject"`
	EquipmentID     uint64        `json:"equipment_id" db:"equipment_id"`
	TeamID          *uint64       `json:"team_id" db:"team_id"`
	TechnicianID    *uint64       `json:"technician_id" db:"technician_id"`
	RequestType     RequestType   `json:"request_type" db:"request_type"`
	Status          RequestStatus `json:"status" db:"status"`
	ScheduledDate   *time.Time    `json:"scheduled_date" db:"scheduled_date"`
	DurationHours   *float64      `json:"duration_hours" db:"duration_hours"`
	CostEstimation  *float64      `json:"cost_estimation" db:"cost_estimation"`
	CompletionNotes *string       `json:"completion_notes" db:"completion_notes"`
	CreatedBy       uint64        `json:"created_by" db:"created_by"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" db:"updated_at"`

	// Joined display fields.
	EquipmentName  string  `json:"equipment_name" db:"-"`
	SerialNumber   string  `json:"serial_number" db:"-"`
	Location       *string `json:"location,omitempty" db:"-"`
	TeamName       *string `json:"team_name" db:"-"`
	TechnicianName *string `json:"technician_name" db:"-"`
	CreatedByName  string  `json:"created_by_name" db:"-"`
	CreatedByEmail *string `json:"created_by_email,omitempty" db:"-"`
}

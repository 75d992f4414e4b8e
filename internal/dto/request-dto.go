package dto

type CreateRequestDTO struct {
	Subject       string  `json:"subject" validate:"required,max=200"`
	EquipmentID   uint64  `json:"equipment_id" validate:"required,gt=0"`
	RequestType   string  `json:"request_type" validate:"required,oneof=CORRECTIVE PREVENTIVE"`
	ScheduledDate *string `json:"scheduled_date" validate:"omitempty,date_format"`
}

// UpdateRequestDTO is a typed partial update: only non-nil fields are
// applied.
type UpdateRequestDTO struct {
	Subject         *string  `json:"subject,omitempty" validate:"omitempty,max=200"`
	Status          *string  `json:"status,omitempty" validate:"omitempty,oneof=NEW IN_PROGRESS REPAIRED SCRAP"`
	TechnicianID    *uint64  `json:"technician_id,omitempty" validate:"omitempty,gt=0"`
	ScheduledDate   *string  `json:"scheduled_date,omitempty" validate:"omitempty,date_format"`
	DurationHours   *float64 `json:"duration_hours,omitempty" validate:"omitempty,gte=0"`
	CostEstimation  *float64 `json:"cost_estimation,omitempty" validate:"omitempty,gte=0"`
	CompletionNotes *string  `json:"completion_notes,omitempty"`
}

type AssignRequestDTO struct {
	TechnicianID *uint64 `json:"technician_id" validate:"omitempty,gt=0"`
}

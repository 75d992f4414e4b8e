package dto

type CreateEquipmentDTO struct {
	Name         string  `json:"name" validate:"required,max=100"`
	SerialNumber string  `json:"serial_number" validate:"required,max=100"`
	Location     string  `json:"location" validate:"required,max=100"`
	Department   string  `json:"department" validate:"required,max=100"`
	TeamID       *uint64 `json:"team_id" validate:"omitempty,gt=0"`
	Status       string  `json:"status" validate:"omitempty,oneof=ACTIVE SCRAPPED"`
}

// UpdateEquipmentDTO is a full replace of the mutable fields.
type UpdateEquipmentDTO struct {
	Name         string  `json:"name" validate:"required,max=100"`
	SerialNumber string  `json:"serial_number" validate:"required,max=100"`
	Location     string  `json:"location" validate:"required,max=100"`
	Department   string  `json:"department" validate:"required,max=100"`
	TeamID       *uint64 `json:"team_id" validate:"omitempty,gt=0"`
	Status       string  `json:"status" validate:"required,oneof=ACTIVE SCRAPPED"`
}

type ImportReportDTO struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

package dto

import "gearguard/internal/entities"

type CreateTeamDTO struct {
	TeamName string `json:"team_name" validate:"required,max=100"`
}

type UpdateTeamDTO struct {
	TeamName string `json:"team_name" validate:"required,max=100"`
}

type TeamMemberDTO struct {
	ID    uint64 `json:"user_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type TeamEquipmentDTO struct {
	ID           uint64 `json:"equipment_id"`
	Name         string `json:"name"`
	SerialNumber string `json:"serial_number"`
	Status       string `json:"status"`
}

// TeamDetailDTO shapes the single-team response with its technicians and
// equipment.
type TeamDetailDTO struct {
	entities.Team
	Members   []TeamMemberDTO    `json:"members"`
	Equipment []TeamEquipmentDTO `json:"equipment"`
}

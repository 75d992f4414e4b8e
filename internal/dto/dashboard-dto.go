package dto

import "time"

type RequestCountsDTO struct {
	Total      uint64 `json:"total"`
	New        uint64 `json:"new_requests"`
	InProgress uint64 `json:"in_progress"`
	Repaired   uint64 `json:"repaired"`
	Scrap      uint64 `json:"scrap"`
}

type TaskCountsDTO struct {
	Total      uint64 `json:"total"`
	InProgress uint64 `json:"in_progress"`
	Completed  uint64 `json:"completed"`
}

// AdminStatsDTO is the global dashboard slice.
type AdminStatsDTO struct {
	TotalEquipment  uint64           `json:"total_equipment"`
	Requests        RequestCountsDTO `json:"requests"`
	TotalTeams      uint64           `json:"total_teams"`
	TotalCost       float64          `json:"total_cost"`
	OverdueRequests uint64           `json:"overdue_requests"`
}

// TechnicianStatsDTO mixes team-scoped and self-scoped counters.
type TechnicianStatsDTO struct {
	TeamRequests RequestCountsDTO `json:"team_requests"`
	MyTasks      TaskCountsDTO    `json:"my_tasks"`
	TotalCost    float64          `json:"total_cost"`
}

type UserStatsDTO struct {
	MyRequests RequestCountsDTO `json:"my_requests"`
}

type ActivityItemDTO struct {
	RequestID      uint64    `json:"request_id"`
	Subject        string    `json:"subject"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	EquipmentName  string    `json:"equipment_name"`
	TechnicianName *string   `json:"technician_name"`
	CreatedByName  string    `json:"created_by_name"`
}

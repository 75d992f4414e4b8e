package entities

import "time"

// RequestPatch is the typed partial update for a maintenance request.
// Nil fields are left untouched.
type RequestPatch struct {
	Subject         *string
	Status          *RequestStatus
	TechnicianID    *uint64
	ScheduledDate   *time.Time
	DurationHours   *float64
	CostEstimation  *float64
	CompletionNotes *string
}

// IsEmpty reports whether the patch carries no recognized field.
func (p *RequestPatch) IsEmpty() bool {
	return p.Subject == nil &&
		p.Status == nil &&
		p.TechnicianID == nil &&
		p.ScheduledDate == nil &&
		p.DurationHours == nil &&
		p.CostEstimation == nil &&
		p.CompletionNotes == nil
}

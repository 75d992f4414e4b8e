package seeders

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func seedRequests(ctx context.Context, db *pgxpool.Pool, teamIDs, userIDs, equipmentIDs map[string]uint64) error {
	seeded := 0

	for _, r := range requestsData {
		var existing uint64
		err := db.QueryRow(ctx,
			"SELECT id FROM maintenance_requests WHERE subject = $1 AND created_by = $2",
			r.Subject, userIDs[r.CreatorEmail],
		).Scan(&existing)
		if err == nil {
			continue
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return err
		}

		equipmentID, ok := equipmentIDs[r.SerialNumber]
		if !ok {
			continue
		}

		// The responsible team follows the equipment.
		var teamID *uint64
		for _, e := range equipmentData {
			if e.SerialNumber == r.SerialNumber && e.TeamName != "" {
				if id, ok := teamIDs[e.TeamName]; ok {
					teamID = &id
				}
				break
			}
		}

		var technicianID *uint64
		if r.TechnicianEmail != "" {
			if id, ok := userIDs[r.TechnicianEmail]; ok {
				technicianID = &id
			}
		}

		var scheduledDate *time.Time
		if r.ScheduledDate != "" {
			parsed, err := time.Parse("2006-01-02", r.ScheduledDate)
			if err != nil {
				return err
			}
			scheduledDate = &parsed
		}

		var durationHours, costEstimation *float64
		if r.DurationHours > 0 {
			durationHours = &r.DurationHours
		}
		if r.CostEstimation > 0 {
			costEstimation = &r.CostEstimation
		}
		var completionNotes *string
		if r.CompletionNotes != "" {
			completionNotes = &r.CompletionNotes
		}

		_, err = db.Exec(ctx,
			`INSERT INTO maintenance_requests
			 (subject, equipment_id, team_id, technician_id, request_type, status,
			  scheduled_date, duration_hours, cost_estimation, completion_notes, created_by)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			r.Subject, equipmentID, teamID, technicianID, r.RequestType, r.Status,
			scheduledDate, durationHours, costEstimation, completionNotes, userIDs[r.CreatorEmail],
		)
		if err != nil {
			return err
		}
		seeded++
	}

	log.Printf("  - %d maintenance requests", seeded)
	return nil
}

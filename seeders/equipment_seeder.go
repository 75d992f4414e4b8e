package seeders

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// seedEquipment returns a serial_number -> id map for the request seeder.
func seedEquipment(ctx context.Context, db *pgxpool.Pool, teamIDs map[string]uint64) (map[string]uint64, error) {
	ids := make(map[string]uint64, len(equipmentData))

	for _, e := range equipmentData {
		var id uint64
		err := db.QueryRow(ctx, "SELECT id FROM equipment WHERE serial_number = $1", e.SerialNumber).Scan(&id)
		if err == nil {
			ids[e.SerialNumber] = id
			continue
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}

		var teamID *uint64
		if e.TeamName != "" {
			if id, ok := teamIDs[e.TeamName]; ok {
				teamID = &id
			}
		}

		err = db.QueryRow(ctx,
			`INSERT INTO equipment (name, serial_number, location, department, team_id, status)
			 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
			e.Name, e.SerialNumber, e.Location, e.Department, teamID, e.Status,
		).Scan(&id)
		if err != nil {
			return nil, err
		}
		ids[e.SerialNumber] = id
	}

	log.Printf("  - %d equipment records", len(ids))
	return ids, nil
}

package seeders

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/pkg/utils"
)

const demoPassword = "password123"

// seedUsers returns an email -> id map for the request seeder.
func seedUsers(ctx context.Context, db *pgxpool.Pool, teamIDs map[string]uint64) (map[string]uint64, error) {
	hashed, err := utils.HashPassword(demoPassword)
	if err != nil {
		return nil, err
	}

	ids := make(map[string]uint64, len(usersData))
	for _, u := range usersData {
		var id uint64
		err := db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", u.Email).Scan(&id)
		if err == nil {
			ids[u.Email] = id
			continue
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}

		var teamID *uint64
		if u.TeamName != "" {
			if id, ok := teamIDs[u.TeamName]; ok {
				teamID = &id
			}
		}

		err = db.QueryRow(ctx,
			`INSERT INTO users (name, email, password, role, team_id)
			 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			u.Name, u.Email, hashed, u.Role, teamID,
		).Scan(&id)
		if err != nil {
			return nil, err
		}
		ids[u.Email] = id
	}

	log.Printf("  - %d users", len(ids))
	return ids, nil
}

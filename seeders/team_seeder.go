package seeders

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// seedTeams returns a team_name -> id map for the follow-up seeders.
func seedTeams(ctx context.Context, db *pgxpool.Pool) (map[string]uint64, error) {
	ids := make(map[string]uint64, len(teamsData))

	for _, name := range teamsData {
		var id uint64
		err := db.QueryRow(ctx,
			`INSERT INTO maintenance_teams (team_name) VALUES ($1)
			 ON CONFLICT (team_name) DO UPDATE SET team_name = EXCLUDED.team_name
			 RETURNING id`,
			name,
		).Scan(&id)
		if err != nil {
			return nil, err
		}
		ids[name] = id
	}

	log.Printf("  - %d maintenance teams", len(ids))
	return ids, nil
}

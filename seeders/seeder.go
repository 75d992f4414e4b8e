package seeders

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Run populates the demo dataset. Every step is idempotent, existing
// rows are left alone.
func Run(ctx context.Context, db *pgxpool.Pool) error {
	log.Println("Seeding database...")

	teamIDs, err := seedTeams(ctx, db)
	if err != nil {
		return fmt.Errorf("seeding teams: %w", err)
	}

	userIDs, err := seedUsers(ctx, db, teamIDs)
	if err != nil {
		return fmt.Errorf("seeding users: %w", err)
	}

	equipmentIDs, err := seedEquipment(ctx, db, teamIDs)
	if err != nil {
		return fmt.Errorf("seeding equipment: %w", err)
	}

	if err := seedRequests(ctx, db, teamIDs, userIDs, equipmentIDs); err != nil {
		return fmt.Errorf("seeding maintenance requests: %w", err)
	}

	log.Println("Seeding finished.")
	log.Println("Default credentials: admin@gearguard.com / password123")
	return nil
}

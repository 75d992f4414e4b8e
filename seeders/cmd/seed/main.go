package main

import (
	"context"
	"log"

	"gearguard/pkg/config"
	"gearguard/pkg/database/postgresql"
	"gearguard/seeders"
)

func main() {
	cfg := config.New()
	log.Println("Using DSN:", cfg.Postgres.DSN)

	dbPool := postgresql.ConnectDB(cfg.Postgres.DSN)
	defer dbPool.Close()

	if err := seeders.Run(context.Background(), dbPool); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
}

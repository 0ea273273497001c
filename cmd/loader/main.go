// The loader is a one-shot batch job: it reads the product catalog
// spreadsheet and fills the products table, skipping rows whose uniq_id is
// already present.
package main

import (
	"context"
	"fmt"
	"log"

	"shopkart/backend/internal/config"
	"shopkart/backend/internal/loader"
	"shopkart/backend/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	dbPool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	if err := dbPool.Ping(ctx); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	fmt.Println("Connected to database")

	store := repository.NewStore(dbPool)

	summary, err := loader.New(store).Run(ctx, cfg.CatalogPath)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	log.Printf("Import finished: %d inserted, %d skipped as duplicates, %d failed",
		summary.Inserted, summary.Skipped, summary.Failed)
}

package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"pouch-tracking-service/internal/app"
	"pouch-tracking-service/internal/config"
)

// main resolves coordinates for every sector missing them and writes the
// results back, in throttled batches.
func main() {
	config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer a.Close()

	report, err := a.Sectors.Backfill(ctx)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("backfill done total=%d missing=%d updated=%d unresolved=%d failed=%d",
		report.Total, report.Missing, report.Updated, report.Unresolved, report.Failed)
}

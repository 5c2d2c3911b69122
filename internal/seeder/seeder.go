// Package seeder drives the seeding run: SurrealDB first, then Dragonfly,
// each inside its own error boundary so one store failing never stops the
// other from being seeded.
package seeder

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vedslabs/seedctl/internal/config"
	"github.com/vedslabs/seedctl/internal/dragonfly"
	"github.com/vedslabs/seedctl/internal/surreal"
)

// StoreResult records the outcome of seeding one store.
type StoreResult struct {
	Records int
	Err     error
}

// Summary is the human-facing outcome of a full seeding run.
type Summary struct {
	RunID     string
	Surreal   StoreResult
	Dragonfly StoreResult
	Elapsed   time.Duration
}

// Failed reports whether any store failed. The process exit code stays zero
// either way; callers use this for the printed summary only.
func (s Summary) Failed() bool {
	return s.Surreal.Err != nil || s.Dragonfly.Err != nil
}

// Run seeds both stores sequentially and returns the summary. Store failures
// are logged as warnings with an operator hint and captured in the summary;
// they never abort the run or propagate as an error.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) Summary {
	start := time.Now()
	sum := Summary{RunID: uuid.New().String()}
	log := logger.Named("driver")

	log.Info("Starting seeding run", zap.String("runID", sum.RunID))

	sum.Surreal = seedSurreal(ctx, cfg, logger)
	if sum.Surreal.Err != nil {
		log.Warn("SurrealDB seeding failed",
			zap.Error(sum.Surreal.Err),
			zap.String("hint", "make sure SurrealDB is running and the schema is loaded"))
	}

	sum.Dragonfly = seedDragonfly(ctx, cfg, logger)
	if sum.Dragonfly.Err != nil {
		log.Warn("Dragonfly seeding failed",
			zap.Error(sum.Dragonfly.Err),
			zap.String("hint", "make sure Dragonfly is running"))
	}

	sum.Elapsed = time.Since(start)
	return sum
}

func seedSurreal(ctx context.Context, cfg *config.Config, logger *zap.Logger) StoreResult {
	client := surreal.NewClient(surreal.Config{
		URL:       cfg.Surreal.URL,
		User:      cfg.Surreal.User,
		Pass:      cfg.Surreal.Pass,
		Namespace: cfg.Surreal.Namespace,
		Database:  cfg.Surreal.Database,
		Timeout:   cfg.Surreal.Timeout,
		RPS:       cfg.Surreal.RPS,
	}, logger)

	n, err := surreal.NewSeeder(client, nil, logger).SeedAll(ctx)
	return StoreResult{Records: n, Err: err}
}

func seedDragonfly(ctx context.Context, cfg *config.Config, logger *zap.Logger) StoreResult {
	client, err := dragonfly.NewClient(cfg.Dragonfly.URL, cfg.Dragonfly.Pass)
	if err != nil {
		return StoreResult{Err: err}
	}
	defer client.Close()

	n, err := dragonfly.NewSeeder(client, logger).SeedConstraints(ctx)
	return StoreResult{Records: n, Err: err}
}

// PrintSummary writes the run outcome in a human-readable form.
func PrintSummary(w io.Writer, sum Summary) {
	fmt.Fprintln(w, "============================================================")
	fmt.Fprintln(w, "Seeding run", sum.RunID)
	fmt.Fprintln(w, "============================================================")
	printStore(w, "SurrealDB", sum.Surreal)
	printStore(w, "Dragonfly", sum.Dragonfly)
	fmt.Fprintf(w, "Elapsed: %s\n", sum.Elapsed.Round(time.Millisecond))
	if sum.Failed() {
		fmt.Fprintln(w, "Completed with warnings; failed stores may be partially seeded.")
		fmt.Fprintln(w, "Clear them before re-seeding: writes are not idempotent.")
	} else {
		fmt.Fprintln(w, "Data seeding complete!")
	}
}

func printStore(w io.Writer, name string, r StoreResult) {
	if r.Err != nil {
		fmt.Fprintf(w, "  %-10s FAILED after %d records: %v\n", name, r.Records, r.Err)
		return
	}
	fmt.Fprintf(w, "  %-10s OK, %d records\n", name, r.Records)
}

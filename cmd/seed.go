// -- cmd/seed.go --
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/vedslabs/seedctl/internal/config"
	"github.com/vedslabs/seedctl/internal/observability"
	"github.com/vedslabs/seedctl/internal/seeder"
)

// newSeedCmd creates and configures the `seed` command.
func newSeedCmd() *cobra.Command {
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Seeds SurrealDB and Dragonfly with the transport network reference data",
		Long: `Seeds the VEDS transport network: countries, ports, carriers, cargo types,
transport nodes and synthesized transport edges into SurrealDB, and the
derived constraint cache into Dragonfly.

Writes are not idempotent. Re-running against non-empty stores leaves
existing reference records untouched but duplicates transport edges; clear
both stores before re-seeding.`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Bind flags to their viper keys so CLI flags override config
			// file and environment values with the right precedence.
			if err := viper.BindPFlag("surrealdb.url", cmd.Flags().Lookup("surrealdb-url")); err != nil {
				return err
			}
			if err := viper.BindPFlag("surrealdb.user", cmd.Flags().Lookup("surrealdb-user")); err != nil {
				return err
			}
			if err := viper.BindPFlag("surrealdb.pass", cmd.Flags().Lookup("surrealdb-pass")); err != nil {
				return err
			}
			if err := viper.BindPFlag("surrealdb.rps", cmd.Flags().Lookup("rate")); err != nil {
				return err
			}
			if err := viper.BindPFlag("dragonfly.url", cmd.Flags().Lookup("dragonfly-url")); err != nil {
				return err
			}
			return viper.BindPFlag("dragonfly.pass", cmd.Flags().Lookup("dragonfly-pass"))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := observability.GetLogger()

			cfg, err := config.NewConfigFromViper(viper.GetViper())
			if err != nil {
				return err
			}

			logger.Info("Seeding transport network stores",
				zap.String("surrealdb", cfg.Surreal.URL),
				zap.String("dragonfly", cfg.Dragonfly.URL),
			)

			sum := seeder.Run(ctx, cfg, logger)
			seeder.PrintSummary(os.Stdout, sum)

			// Store failures are warnings, not command failures: the process
			// exits 0 either way so partial seeding of one store never masks
			// the other's success.
			if ctx.Err() != nil {
				return fmt.Errorf("seeding interrupted: %w", ctx.Err())
			}
			return nil
		},
	}

	seedCmd.Flags().String("surrealdb-url", "http://localhost:8000", "SurrealDB URL. (Overrides config/env)")
	seedCmd.Flags().String("surrealdb-user", "root", "SurrealDB username. (Overrides config/env)")
	seedCmd.Flags().String("surrealdb-pass", "veds_dev_password", "SurrealDB password. (Overrides config/env)")
	seedCmd.Flags().String("dragonfly-url", "redis://localhost:6379", "Dragonfly URL. (Overrides config/env)")
	seedCmd.Flags().String("dragonfly-pass", "veds_dev_password", "Dragonfly password. (Overrides config/env)")
	seedCmd.Flags().Float64("rate", 0, "Max SurrealDB statements per second, 0 for unlimited. (Overrides config/env)")

	return seedCmd
}

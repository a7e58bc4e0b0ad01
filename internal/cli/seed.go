package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/housestock/backend/internal/infrastructure/store"
	"github.com/housestock/backend/internal/logger"
	"github.com/housestock/backend/internal/seed"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the deterministic test cellar into the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		seedValue, _ := cmd.Flags().GetUint32("seed")
		if count < 1 {
			return fmt.Errorf("--count must be positive, got %d", count)
		}

		cfg, log, err := setup("")
		if err != nil {
			return err
		}
		defer logger.Sync()

		db, err := openDatabase(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer db.Close()

		inserted, err := seed.Load(cmd.Context(), store.NewWineStore(db), seed.Generate(seedValue, count), log)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "inserted %d of %d wines\n", inserted, count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().Int("count", seed.DefaultCount, "Number of wines to generate")
	seedCmd.Flags().Uint32("seed", seed.DefaultSeed, "PRNG seed")
}

package cli

import (
	"encoding/json"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/housestock/backend/internal/extractor"
	"github.com/housestock/backend/internal/infrastructure/relay"
	"github.com/housestock/backend/internal/logger"
	"github.com/housestock/backend/internal/metrics"
	"github.com/housestock/backend/internal/usecase"
)

var extractCmd = &cobra.Command{
	Use:   "extract <url>",
	Short: "Extract wine data from a shop product page and print it as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Keep stdout for the JSON result unless a level is asked for
		cfg, log, err := setup("warn")
		if err != nil {
			return err
		}
		defer logger.Sync()

		if direct, _ := cmd.Flags().GetBool("direct"); direct {
			cfg.Extractor.RelayURL = ""
		}

		service := usecase.NewExtractionService(
			relay.NewClient(relayConfig(cfg), log),
			extractor.New(),
			metrics.New(prometheus.NewRegistry()),
			log,
		)

		result, err := service.Extract(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(result)
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().Bool("direct", false, "Fetch the page directly instead of through the relay")
}

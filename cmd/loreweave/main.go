package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hypertech/loreweave/cmd/loreweave/commands"
	"github.com/hypertech/loreweave/config"
	"github.com/hypertech/loreweave/logger"
)

var rootCmd = &cobra.Command{
	Use:   "loreweave",
	Short: "loreweave - worldbuilding entity templates",
	Long: `loreweave - generate fill-in templates from the worldbuilding entity catalog.

loreweave walks the lorecore entity schemas, flattens their inheritance
chains, and writes annotated templates that worldbuilders fill in by hand.

Available commands:
  weave   - Generate entity templates
  catalog - Inspect the entity catalog
  version - Show version information

Examples:
  loreweave weave                        # All entities, one YAML file
  loreweave weave --shape sheets         # One file per entity
  loreweave weave --format json --mode basic
  loreweave catalog                      # List catalog entities`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		verbosity, _ := cmd.Flags().GetCount("verbose")
		if verbosity == 0 {
			verbosity = cfg.Log.Verbosity
		}
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		if !cmd.Flags().Changed("json-logs") {
			jsonLogs = cfg.Log.JSON
		}

		if err := logger.Initialize(jsonLogs, verbosity); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit structured JSON logs instead of console output")

	rootCmd.AddCommand(commands.WeaveCmd)
	rootCmd.AddCommand(commands.CatalogCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	defer logger.Cleanup()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package commands

import (
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hypertech/loreweave/config"
	"github.com/hypertech/loreweave/errors"
	"github.com/hypertech/loreweave/logger"
	"github.com/hypertech/loreweave/schema/lorecore"
	"github.com/hypertech/loreweave/weave"
	"github.com/hypertech/loreweave/weave/render"
)

var (
	weaveFormat   string
	weaveOutput   string
	weaveShape    string
	weaveMode     string
	weaveEntities []string
)

// WeaveCmd represents the weave command
var WeaveCmd = &cobra.Command{
	Use:   "weave",
	Short: "Generate entity templates from the catalog",
	Long: `Generate fill-in templates for the worldbuilding entity catalog.

Each template lists an entity's fields, inherited fields included, with a
type marker to replace (<str>, <UUID>, <datetime>, ...) and a description
entry per documented field. Templates land under <output>/<format>/<mode>/.

Examples:
  loreweave weave                              # All entities, one YAML file
  loreweave weave --shape sheets               # One file per entity, under sheets/
  loreweave weave --format json --mode basic   # Base fields only, as JSON
  loreweave weave --entity CharacterSheet --entity Item`,
	RunE: runWeave,
}

func init() {
	WeaveCmd.Flags().StringVarP(&weaveFormat, "format", "f", "", "Output format: yaml, json, md (default from config)")
	WeaveCmd.Flags().StringVarP(&weaveOutput, "output", "o", "", "Output directory (default from config)")
	WeaveCmd.Flags().StringVarP(&weaveShape, "shape", "s", "", "Output shape: single, sheets (default from config)")
	WeaveCmd.Flags().StringVarP(&weaveMode, "mode", "m", "", "Template mode: full, basic (default from config)")
	WeaveCmd.Flags().StringSliceVarP(&weaveEntities, "entity", "e", nil, "Generate only the named entities (repeatable)")
}

func runWeave(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	format, err := render.ParseFormat(pick(weaveFormat, cfg.Weave.Format))
	if err != nil {
		return err
	}
	shape, err := weave.ParseShape(pick(weaveShape, cfg.Weave.Shape))
	if err != nil {
		return err
	}
	mode, err := weave.ParseMode(pick(weaveMode, cfg.Weave.Mode))
	if err != nil {
		return err
	}
	outputDir := pick(weaveOutput, cfg.Weave.OutputDir)

	catalog := lorecore.Catalog()
	result, err := weave.GenerateEntities(catalog, shape, mode, weaveEntities)
	if err != nil {
		return err
	}

	logger.Debugw("generation finished",
		"run_id", result.RunID,
		"documents", len(result.Documents),
		"failures", len(result.Failures))

	writer := &render.Writer{
		Format: format,
		Dir:    filepath.Join(outputDir, string(format), string(mode)),
	}
	paths, err := writer.Write(result, lorecore.Name)
	if err != nil {
		return err
	}

	for _, f := range result.Failures {
		pterm.Warning.Printf("Skipped %s: %v\n", f.Entity, f.Err)
	}

	pterm.Success.Printf("Wove %d of %d templates (%s, %s)\n",
		len(result.Documents), len(result.Documents)+len(result.Failures), format, mode)
	for _, p := range paths {
		pterm.Printf("  %s\n", p)
	}

	return runError(result)
}

// runError turns a run with skipped entities into a command error, so the
// process exit status reflects the partial failure.
func runError(result *weave.Result) error {
	if !result.Failed() {
		return nil
	}
	return errors.Newf("%d of %d entities failed",
		len(result.Failures), len(result.Documents)+len(result.Failures))
}

// pick returns the flag value when set, the config value otherwise.
func pick(flag, fromConfig string) string {
	if flag != "" {
		return flag
	}
	return fromConfig
}

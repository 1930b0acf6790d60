package commands

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hypertech/loreweave/errors"
	"github.com/hypertech/loreweave/schema/lorecore"
	"github.com/hypertech/loreweave/weave"
)

// CatalogCmd represents the catalog command
var CatalogCmd = &cobra.Command{
	Use:   "catalog [entity]",
	Short: "Inspect the entity catalog",
	Long: `List the entities and enumerations in the worldbuilding catalog.

With an entity name, show its flattened field list: every field the
generated template will contain, inherited fields included.

Examples:
  loreweave catalog                  # List all entities and enums
  loreweave catalog CharacterSheet   # Show CharacterSheet's fields`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalog,
}

func runCatalog(cmd *cobra.Command, args []string) error {
	catalog := lorecore.Catalog()

	if len(args) == 1 {
		return showEntity(args[0])
	}

	pterm.Info.Printf("Catalog %s: %d entities, %d enums\n", lorecore.Name, catalog.Len(), len(catalog.Enums()))
	pterm.Println()

	for _, e := range catalog.Entities() {
		line := "  " + e.Name
		if len(e.Bases) > 0 {
			line += " (" + strings.Join(e.Bases, ", ") + ")"
		}
		pterm.Println(line)
	}

	pterm.Println()
	for _, en := range catalog.Enums() {
		pterm.Printf("  %s: %s\n", en.Name, strings.Join(en.Values, " | "))
	}

	return nil
}

func showEntity(name string) error {
	catalog := lorecore.Catalog()

	entity, ok := catalog.Entity(name)
	if !ok {
		return errors.Wrapf(errors.ErrUnknownEntity, "%s is not in the catalog", name)
	}

	fields, err := weave.Flatten(catalog, entity)
	if err != nil {
		return err
	}

	pterm.Info.Printf("%s — %s\n", entity.Name, entity.Doc)
	if len(entity.Bases) > 0 {
		pterm.Printf("  inherits: %s\n", strings.Join(entity.Bases, ", "))
	}
	pterm.Println()

	for _, f := range fields {
		pterm.Printf("  %-22s %s\n", f.Name, f.Type.String())
		if f.Description != "" {
			pterm.Printf("  %-22s   %s\n", "", pterm.Gray(f.Description))
		}
	}

	return nil
}

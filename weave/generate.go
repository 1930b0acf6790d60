package weave

import (
	"github.com/google/uuid"

	"github.com/hypertech/loreweave/errors"
	"github.com/hypertech/loreweave/logger"
	"github.com/hypertech/loreweave/schema"
)

// Document is one generated entity template, the unit of sheets output.
type Document struct {
	Entity   string
	Template *Template
}

// Failure records an entity whose template could not be built.
type Failure struct {
	Entity string
	Err    error
}

// Result is one generation run: the templates that succeeded, in catalog
// declaration order, and the per-entity failures alongside them.
type Result struct {
	RunID     string
	Shape     Shape
	Mode      Mode
	Documents []Document
	Failures  []Failure
}

// Failed reports whether any entity failed during the run.
func (r *Result) Failed() bool {
	return len(r.Failures) > 0
}

// Merged assembles the single-shape document: one mapping from entity name
// to template, in catalog order.
func (r *Result) Merged() *Template {
	merged := &Template{}
	for _, doc := range r.Documents {
		merged.append(doc.Entity, doc.Template)
	}
	return merged
}

// Generate runs the driver over every entity in the catalog, in declaration
// order. An entity-level failure (unresolvable type, cyclic base chain) is
// recorded and generation continues with the remaining entities; only
// non-entity errors abort the run.
func Generate(catalog *schema.Catalog, shape Shape, mode Mode) (*Result, error) {
	return GenerateEntities(catalog, shape, mode, nil)
}

// GenerateEntities is Generate restricted to a subset of entity names.
// A nil or empty subset means the whole catalog. Unknown names are
// recorded as failures, consistent with the partial-failure policy.
func GenerateEntities(catalog *schema.Catalog, shape Shape, mode Mode, only []string) (*Result, error) {
	result := &Result{
		RunID: uuid.NewString(),
		Shape: shape,
		Mode:  mode,
	}

	builder := NewBuilder(catalog, mode)
	log := logger.Logger.Named("weave")

	entities, unknown := selectEntities(catalog, only)
	for _, name := range unknown {
		result.Failures = append(result.Failures, Failure{
			Entity: name,
			Err:    errors.Wrapf(errors.ErrUnknownEntity, "%s is not in the catalog", name),
		})
	}

	for _, entity := range entities {
		template, err := builder.Build(entity)
		if err != nil {
			if !errors.IsEntityError(err) {
				return nil, errors.Wrapf(err, "building template for %s", entity.Name)
			}
			log.Warnw("entity skipped", "entity", entity.Name, "error", err)
			result.Failures = append(result.Failures, Failure{Entity: entity.Name, Err: err})
			continue
		}
		log.Debugw("entity template built", "entity", entity.Name, "entries", len(template.Entries))
		result.Documents = append(result.Documents, Document{Entity: entity.Name, Template: template})
	}

	log.Infow("generation complete",
		"run_id", result.RunID,
		"shape", string(shape),
		"mode", string(mode),
		"entities", len(result.Documents),
		"failed", len(result.Failures))
	return result, nil
}

// selectEntities returns the catalog entities to generate, preserving
// catalog order, plus any requested names the catalog does not define.
func selectEntities(catalog *schema.Catalog, only []string) ([]*schema.Entity, []string) {
	if len(only) == 0 {
		return catalog.Entities(), nil
	}

	wanted := make(map[string]bool, len(only))
	for _, name := range only {
		wanted[name] = true
	}

	var entities []*schema.Entity
	for _, e := range catalog.Entities() {
		if wanted[e.Name] {
			entities = append(entities, e)
			delete(wanted, e.Name)
		}
	}

	var unknown []string
	for _, name := range only {
		if wanted[name] {
			unknown = append(unknown, name)
			delete(wanted, name)
		}
	}
	return entities, unknown
}

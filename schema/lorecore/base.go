package lorecore

import "github.com/hypertech/loreweave/schema"

// registerBaseModels defines the mixins and value models every other
// entity builds on.
func registerBaseModels(c *schema.Catalog) {
	c.MustAddEntity(&schema.Entity{
		Name: "VersionControl",
		Doc:  "Tracks version history and branching of an entity for rollback and alternate timeline support.",
		Fields: []schema.Field{
			{Name: "version_id", Type: schema.UUID(), Default: schema.DefaultNewUUID,
				Description: "Unique identifier for this version"},
			{Name: "parent_version", Type: schema.Optional(schema.UUID()),
				Description: "UUID of the parent version (for branching)"},
			{Name: "timestamp", Type: schema.Timestamp(), Default: schema.DefaultNow,
				Description: "Timestamp when this version was created"},
			{Name: "changes", Type: schema.Map(schema.String(), schema.Any()),
				Description: "Dictionary of changes made in this version"},
			{Name: "author", Type: schema.String(),
				Description: "Author responsible for changes"},
		},
	})

	c.MustAddEntity(&schema.Entity{
		Name: "VersionedEntity",
		Doc:  "Mixin for versioning and history tracking.",
		Fields: []schema.Field{
			{Name: "version", Type: schema.Int(),
				Description: "Version number of the entity"},
			{Name: "created_at", Type: schema.Timestamp(), Default: schema.DefaultNow,
				Description: "Creation timestamp"},
			{Name: "updated_at", Type: schema.Timestamp(), Default: schema.DefaultNow,
				Description: "Last update timestamp"},
			{Name: "change_log", Type: schema.List(schema.String()), Default: schema.DefaultEmptyList,
				Description: "Log of changes made to the entity"},
			{Name: "version_history", Type: schema.List(schema.Model("VersionControl")), Default: schema.DefaultEmptyList,
				Description: "List of version control history entries"},
		},
	})

	c.MustAddEntity(&schema.Entity{
		Name: "LocalizedString",
		Doc:  "Localized string supporting multiple languages.",
		Fields: []schema.Field{
			{Name: "default", Type: schema.String(),
				Description: "Default language string"},
			{Name: "translations", Type: schema.Map(schema.String(), schema.String()), Default: schema.DefaultEmptyMap,
				Description: "Translations keyed by language code"},
		},
	})

	c.MustAddEntity(&schema.Entity{
		Name: "Tag",
		Doc:  "Structured tag for categorization.",
		Fields: []schema.Field{
			{Name: "category", Type: schema.String(), Description: "Category of the tag"},
			{Name: "value", Type: schema.String(), Description: "Value of the tag"},
		},
	})

	c.MustAddEntity(&schema.Entity{
		Name:  "BaseEntity",
		Doc:   "Base entity model providing core attributes for all game elements.",
		Bases: []string{"VersionedEntity"},
		Fields: []schema.Field{
			{Name: "uuid", Type: schema.Union(schema.String(), schema.Int()), Default: schema.DefaultNewUUID,
				Description: "Unique identifier for the entity. Can be UUID, string, or integer."},
			{Name: "system_name", Type: schema.Union(schema.String(), schema.Int()),
				Description: "System-friendly name of the entity. Auto-generated from uuid or canonical name if not provided."},
			{Name: "canonical_name", Type: schema.Model("LocalizedString"),
				Description: "World-builder friendly canonical name of the entity, used for display or narrative purposes."},
			{Name: "description", Type: schema.Optional(schema.Model("LocalizedString")),
				Description: "Description of the entity. Can be localized for multiple languages."},
			{Name: "timeline", Type: schema.Optional(schema.Union(schema.String(), schema.Int())),
				Description: "ID or name of the timeline this entity is associated with."},
			{Name: "system_timestamp", Type: schema.Optional(schema.Timestamp()),
				Description: "System-generated timestamp for technical tracking and real-world reference (e.g., ISO 8601 format)."},
			{Name: "canonical_timestamp", Type: schema.Optional(schema.Union(schema.String(), schema.Int())),
				Description: "User-defined or world-specific timestamp, allowing flexible formats (e.g., 'Epoch 5023', 'Year 200 of the Dawn Era')."},
			{Name: "metadata", Type: schema.Map(schema.String(), schema.Any()), Default: schema.DefaultEmptyMap,
				Description: "Additional metadata for the entity, to store extra information."},
			{Name: "tags", Type: schema.List(schema.Model("Tag")), Default: schema.DefaultEmptyList,
				Description: "Tags for categorization and filtering of the entity."},
		},
	})

	c.MustAddEntity(&schema.Entity{
		Name: "RelationshipDynamic",
		Doc:  "Dynamic state of a relationship, which evolves over time.",
		Fields: []schema.Field{
			{Name: "trust", Type: schema.Float(), Description: "Trust level between entities"},
			{Name: "loyalty", Type: schema.Float(), Description: "Loyalty level between entities"},
			{Name: "familiarity", Type: schema.Float(), Description: "Familiarity level between entities"},
			{Name: "tension", Type: schema.Float(), Description: "Tension between entities"},
			{Name: "shared_history", Type: schema.List(schema.UUID()), Default: schema.DefaultEmptyList,
				Description: "Event UUIDs that shape the relationship"},
		},
	})

	c.MustAddEntity(&schema.Entity{
		Name: "Relationship",
		Doc:  "Relationship between two entities.",
		Fields: []schema.Field{
			{Name: "source_id", Type: schema.UUID(), Description: "UUID of the source entity"},
			{Name: "target_id", Type: schema.UUID(), Description: "UUID of the target entity"},
			{Name: "relationship_type", Type: schema.String(),
				Description: "Type of relationship (e.g., Ally, Rival, Family)"},
			{Name: "dynamics", Type: schema.Model("RelationshipDynamic"),
				Description: "Dynamic states of the relationship"},
			{Name: "notes", Type: schema.Optional(schema.Model("LocalizedString")),
				Description: "Additional notes on the relationship"},
		},
	})
}

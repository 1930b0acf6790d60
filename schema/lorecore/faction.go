package lorecore

import "github.com/hypertech/loreweave/schema"

func registerFactionModels(c *schema.Catalog) {
	c.MustAddEntity(&schema.Entity{
		Name: "FactionRank",
		Doc:  "A rank within a faction's hierarchy.",
		Fields: []schema.Field{
			{Name: "name", Type: schema.Model("LocalizedString"),
				Description: "Name of the rank"},
			{Name: "level", Type: schema.Int(),
				Description: "Numeric level of the rank within the hierarchy"},
			{Name: "responsibilities", Type: schema.List(schema.Model("LocalizedString")), Default: schema.DefaultEmptyList,
				Description: "Responsibilities associated with the rank"},
			{Name: "privileges", Type: schema.List(schema.Model("LocalizedString")), Default: schema.DefaultEmptyList,
				Description: "Privileges granted to members of this rank"},
		},
	})

	c.MustAddEntity(&schema.Entity{
		Name: "FactionHierarchy",
		Doc:  "Internal structure and ranks of a faction.",
		Fields: []schema.Field{
			{Name: "ranks", Type: schema.List(schema.Model("FactionRank")),
				Description: "List of ranks within the faction"},
			{Name: "leadership_structure", Type: schema.Model("LocalizedString"),
				Description: "Description of how leadership is structured"},
		},
	})

	c.MustAddEntity(&schema.Entity{
		Name: "FactionDiplomacy",
		Doc:  "Diplomatic relations between factions.",
		Fields: []schema.Field{
			{Name: "allies", Type: schema.List(schema.UUID()), Default: schema.DefaultEmptyList,
				Description: "UUIDs of allied factions"},
			{Name: "enemies", Type: schema.List(schema.UUID()), Default: schema.DefaultEmptyList,
				Description: "UUIDs of enemy factions"},
			{Name: "neutral", Type: schema.List(schema.UUID()), Default: schema.DefaultEmptyList,
				Description: "UUIDs of factions with neutral relations"},
			{Name: "trade_agreements", Type: schema.List(schema.UUID()), Default: schema.DefaultEmptyList,
				Description: "UUIDs of factions with trade agreements"},
		},
	})

	c.MustAddEntity(&schema.Entity{
		Name:  "Faction",
		Doc:   "A faction within the world.",
		Bases: []string{"BaseEntity"},
		Fields: []schema.Field{
			{Name: "leader", Type: schema.UUID(),
				Description: "UUID of the entity that leads the faction"},
			{Name: "members", Type: schema.List(schema.UUID()), Default: schema.DefaultEmptyList,
				Description: "UUIDs of faction members"},
			{Name: "goals", Type: schema.List(schema.Model("LocalizedString")), Default: schema.DefaultEmptyList,
				Description: "Goals or objectives the faction strives for"},
			{Name: "resources", Type: schema.List(schema.Model("LocalizedString")), Default: schema.DefaultEmptyList,
				Description: "Resources or assets the faction controls"},
			{Name: "hierarchy", Type: schema.Model("FactionHierarchy"),
				Description: "Internal structure and ranks of the faction"},
			{Name: "diplomacy", Type: schema.Model("FactionDiplomacy"),
				Description: "Diplomatic relations with other factions"},
		},
	})
}

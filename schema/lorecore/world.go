package lorecore

import "github.com/hypertech/loreweave/schema"

func registerWorldModels(c *schema.Catalog) {
	c.MustAddEntity(&schema.Entity{
		Name:  "WorldSheet",
		Doc:   "Comprehensive model for world-building.",
		Bases: []string{"BaseEntity"},
		Fields: []schema.Field{
			{Name: "locations", Type: schema.List(schema.UUID()), Default: schema.DefaultEmptyList,
				Description: "UUIDs of all major locations in the world"},
			{Name: "factions", Type: schema.List(schema.UUID()), Default: schema.DefaultEmptyList,
				Description: "UUIDs of factions present in the world"},
			{Name: "events", Type: schema.List(schema.UUID()), Default: schema.DefaultEmptyList,
				Description: "UUIDs of major events that occurred within the world"},
			{Name: "characters", Type: schema.List(schema.UUID()), Default: schema.DefaultEmptyList,
				Description: "UUIDs of characters present in the world"},
			{Name: "items", Type: schema.List(schema.UUID()), Default: schema.DefaultEmptyList,
				Description: "UUIDs of notable items in the world"},
			{Name: "lore", Type: schema.Model("LocalizedString"), Default: schema.DefaultEmptyModel,
				Description: "General lore or history of the world"},
			{Name: "notes", Type: schema.Model("LocalizedString"), Default: schema.DefaultEmptyModel,
				Description: "Additional notes or general information"},
		},
	})

	c.MustAddEntity(&schema.Entity{
		Name: "TimelineEvent",
		Doc:  "An event tied to a specific point in the timeline.",
		Fields: []schema.Field{
			{Name: "event_id", Type: schema.UUID(),
				Description: "UUID of the associated event"},
			{Name: "timestamp", Type: schema.Timestamp(),
				Description: "Specific timestamp of the event in the timeline"},
			{Name: "significance", Type: schema.Model("LocalizedString"),
				Description: "Description of the event's significance in the timeline"},
		},
	})

	c.MustAddEntity(&schema.Entity{
		Name: "TimelineNode",
		Doc:  "A node in a branching timeline, allowing for complex narrative progression.",
		Fields: []schema.Field{
			{Name: "event_id", Type: schema.UUID(),
				Description: "UUID of the associated event"},
			{Name: "timestamp", Type: schema.Timestamp(),
				Description: "Timestamp for when this node occurs"},
			{Name: "next_nodes", Type: schema.List(schema.UUID()), Default: schema.DefaultEmptyList,
				Description: "UUIDs of potential future timeline nodes"},
			{Name: "previous_nodes", Type: schema.List(schema.UUID()), Default: schema.DefaultEmptyList,
				Description: "UUIDs of previous timeline nodes"},
			{Name: "branch_probability", Type: schema.Float(),
				Description: "Likelihood of this branch being followed"},
		},
	})

	c.MustAddEntity(&schema.Entity{
		Name:  "Timeline",
		Doc:   "A timeline with support for branching and parallel timelines.",
		Bases: []string{"BaseEntity"},
		Fields: []schema.Field{
			{Name: "nodes", Type: schema.List(schema.Model("TimelineNode")), Default: schema.DefaultEmptyList,
				Description: "Nodes representing events in the timeline"},
			{Name: "active_branch", Type: schema.UUID(),
				Description: "The currently active node in the timeline"},
			{Name: "convergence_points", Type: schema.List(schema.UUID()), Default: schema.DefaultEmptyList,
				Description: "UUIDs of points where branches converge"},
		},
	})

	c.MustAddEntity(&schema.Entity{
		Name:  "UniverseSheet",
		Doc:   "Comprehensive model for universe-building.",
		Bases: []string{"BaseEntity"},
		Fields: []schema.Field{
			{Name: "dimensions", Type: schema.List(schema.UUID()), Default: schema.DefaultEmptyList,
				Description: "UUIDs of dimensions within the universe"},
			{Name: "timelines", Type: schema.List(schema.UUID()), Default: schema.DefaultEmptyList,
				Description: "UUIDs of timelines in the universe"},
			{Name: "cosmic_entities", Type: schema.List(schema.UUID()), Default: schema.DefaultEmptyList,
				Description: "UUIDs of notable cosmic entities present in the universe"},
			{Name: "universal_laws", Type: schema.List(schema.Model("LocalizedString")), Default: schema.DefaultEmptyList,
				Description: "Universal laws governing physics or magic in the universe"},
			{Name: "notes", Type: schema.Model("LocalizedString"), Default: schema.DefaultEmptyModel,
				Description: "Additional notes or information"},
		},
	})
}

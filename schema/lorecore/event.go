package lorecore

import "github.com/hypertech/loreweave/schema"

func registerEventModels(c *schema.Catalog) {
	c.MustAddEntity(&schema.Entity{
		Name: "EventImpact",
		Doc:  "Impact of an event on various entities in the world.",
		Fields: []schema.Field{
			{Name: "affected_characters", Type: schema.List(schema.Map(schema.UUID(), schema.String())), Default: schema.DefaultEmptyList,
				Description: "UUIDs of affected characters and descriptions of effects"},
			{Name: "affected_locations", Type: schema.List(schema.Map(schema.UUID(), schema.String())), Default: schema.DefaultEmptyList,
				Description: "UUIDs of affected locations and descriptions of effects"},
			{Name: "affected_factions", Type: schema.List(schema.Map(schema.UUID(), schema.String())), Default: schema.DefaultEmptyList,
				Description: "UUIDs of affected factions and descriptions of effects"},
			{Name: "world_changes", Type: schema.List(schema.Model("LocalizedString")), Default: schema.DefaultEmptyList,
				Description: "General changes to the world as a result of the event"},
		},
	})

	c.MustAddEntity(&schema.Entity{
		Name:  "Event",
		Doc:   "Significant occurrence in the timeline.",
		Bases: []string{"BaseEntity"},
		Fields: []schema.Field{
			{Name: "event_type", Type: schema.EnumOf("EventType"),
				Description: "Type of event that occurred"},
			{Name: "date", Type: schema.Timestamp(),
				Description: "Date and time the event took place"},
			{Name: "location", Type: schema.UUID(),
				Description: "UUID of the location where the event occurred"},
			{Name: "participants", Type: schema.List(schema.UUID()), Default: schema.DefaultEmptyList,
				Description: "UUIDs of participants involved in the event"},
			{Name: "consequences", Type: schema.List(schema.Model("LocalizedString")), Default: schema.DefaultEmptyList,
				Description: "Consequences or outcomes of the event"},
			{Name: "related_items", Type: schema.List(schema.UUID()), Default: schema.DefaultEmptyList,
				Description: "UUIDs of items involved in the event"},
			{Name: "impact", Type: schema.Model("EventImpact"),
				Description: "Detailed impact of the event on the world and its entities"},
		},
	})

	c.MustAddEntity(&schema.Entity{
		Name: "EventChain",
		Doc:  "A chain of related events.",
		Fields: []schema.Field{
			{Name: "events", Type: schema.List(schema.UUID()),
				Description: "UUIDs of events in the chain, in chronological order"},
			{Name: "causality", Type: schema.List(schema.Model("LocalizedString")), Default: schema.DefaultEmptyList,
				Description: "Descriptions of how each event led to the next"},
		},
	})
}

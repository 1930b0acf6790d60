package lorecore

import "github.com/hypertech/loreweave/schema"

func registerLocationModels(c *schema.Catalog) {
	c.MustAddEntity(&schema.Entity{
		Name: "ClimateModel",
		Doc:  "Climate of a location.",
		Fields: []schema.Field{
			{Name: "temperature_range", Type: schema.Map(schema.String(), schema.Float()),
				Description: "Temperature range for different seasons"},
			{Name: "precipitation", Type: schema.Map(schema.String(), schema.Float()),
				Description: "Precipitation levels for different seasons"},
			{Name: "wind_patterns", Type: schema.Map(schema.String(), schema.String()),
				Description: "Wind patterns for different seasons"},
			{Name: "natural_disasters", Type: schema.List(schema.String()), Default: schema.DefaultEmptyList,
				Description: "Possible natural disasters in the area"},
		},
	})

	c.MustAddEntity(&schema.Entity{
		Name: "LocationHistory",
		Doc:  "Historical changes of a location over time.",
		Fields: []schema.Field{
			{Name: "key_events", Type: schema.List(schema.UUID()), Default: schema.DefaultEmptyList,
				Description: "UUIDs of significant events in the location's history"},
			{Name: "previous_names", Type: schema.List(schema.Model("LocalizedString")), Default: schema.DefaultEmptyList,
				Description: "Previous names of the location"},
			{Name: "major_changes", Type: schema.List(schema.Model("LocalizedString")), Default: schema.DefaultEmptyList,
				Description: "Major changes the location has undergone"},
		},
	})

	c.MustAddEntity(&schema.Entity{
		Name:  "Location",
		Doc:   "A location within the world.",
		Bases: []string{"BaseEntity"},
		Fields: []schema.Field{
			{Name: "type", Type: schema.String(),
				Description: "Type of location (e.g., City, Forest, Dungeon)"},
			{Name: "parent_location", Type: schema.Optional(schema.UUID()),
				Description: "UUID of the parent location"},
			{Name: "sub_locations", Type: schema.List(schema.UUID()), Default: schema.DefaultEmptyList,
				Description: "UUIDs of sub-locations within this location"},
			{Name: "inhabitants", Type: schema.List(schema.UUID()), Default: schema.DefaultEmptyList,
				Description: "UUIDs of entities inhabiting this location"},
			{Name: "points_of_interest", Type: schema.List(schema.Model("LocalizedString")), Default: schema.DefaultEmptyList,
				Description: "Notable landmarks within this area"},
			{Name: "government_type", Type: schema.Optional(schema.String()),
				Description: "Type of government overseeing the location"},
			{Name: "wealth", Type: schema.Optional(schema.Int()),
				Description: "Wealth level of the location, on a scale of 1-10"},
			{Name: "climate", Type: schema.Model("ClimateModel"),
				Description: "Climate model of the location"},
			{Name: "history", Type: schema.Model("LocationHistory"),
				Description: "Historical information about the location"},
		},
	})
}

package lorecore

import "github.com/hypertech/loreweave/schema"

func registerSimulationModels(c *schema.Catalog) {
	c.MustAddEntity(&schema.Entity{
		Name:  "Rule",
		Doc:   "Mechanics or logic governing gameplay, scenarios, or interactions.",
		Bases: []string{"BaseEntity"},
		Fields: []schema.Field{
			{Name: "mechanics", Type: schema.Map(schema.String(), schema.Union(schema.Int(), schema.String(), schema.Bool())), Default: schema.DefaultEmptyMap,
				Description: "Key mechanics or parameters governed by the rule"},
			{Name: "applicability", Type: schema.List(schema.String()), Default: schema.DefaultEmptyList,
				Description: "Contexts or situations where this rule applies"},
			{Name: "exceptions", Type: schema.List(schema.Model("LocalizedString")), Default: schema.DefaultEmptyList,
				Description: "Exceptions to the rule"},
		},
	})

	c.MustAddEntity(&schema.Entity{
		Name:  "Scenario",
		Doc:   "Key interactive scenes or situations within the game.",
		Bases: []string{"BaseEntity"},
		Fields: []schema.Field{
			{Name: "location", Type: schema.UUID(),
				Description: "UUID of the location where the scenario takes place"},
			{Name: "characters", Type: schema.List(schema.UUID()), Default: schema.DefaultEmptyList,
				Description: "UUIDs of characters involved in the scenario"},
			{Name: "objectives", Type: schema.List(schema.Model("LocalizedString")), Default: schema.DefaultEmptyList,
				Description: "Goals or objectives for this scenario"},
			{Name: "challenges", Type: schema.List(schema.Model("LocalizedString")), Default: schema.DefaultEmptyList,
				Description: "Challenges or obstacles present in the scenario"},
			{Name: "outcomes", Type: schema.List(schema.Model("LocalizedString")), Default: schema.DefaultEmptyList,
				Description: "Possible outcomes of the scenario"},
		},
	})

	c.MustAddEntity(&schema.Entity{
		Name: "SimulationParameter",
		Doc:  "A customizable parameter for world simulations.",
		Fields: []schema.Field{
			{Name: "name", Type: schema.String(),
				Description: "Name of the parameter"},
			{Name: "value", Type: schema.Union(schema.Int(), schema.Float(), schema.String(), schema.Bool()),
				Description: "Current value of the parameter"},
			{Name: "description", Type: schema.Model("LocalizedString"),
				Description: "Description of what this parameter affects"},
			{Name: "range", Type: schema.Optional(schema.Map(schema.String(), schema.Union(schema.Int(), schema.Float()))),
				Description: "Possible range of values for numeric parameters"},
		},
	})

	c.MustAddEntity(&schema.Entity{
		Name:  "WorldSimulation",
		Doc:   "A simulation of dynamic changes in the world.",
		Bases: []string{"BaseEntity"},
		Fields: []schema.Field{
			{Name: "world_id", Type: schema.UUID(),
				Description: "UUID of the world being simulated"},
			{Name: "active_scenarios", Type: schema.List(schema.UUID()), Default: schema.DefaultEmptyList,
				Description: "UUIDs of currently active scenarios"},
			{Name: "simulation_parameters", Type: schema.List(schema.Model("SimulationParameter")), Default: schema.DefaultEmptyList,
				Description: "Customizable parameters for the simulation"},
			{Name: "current_state", Type: schema.Map(schema.String(), schema.Any()), Default: schema.DefaultEmptyMap,
				Description: "Current state of various aspects of the world"},
			{Name: "history", Type: schema.List(schema.Map(schema.String(), schema.Any())), Default: schema.DefaultEmptyList,
				Description: "History of changes in the world state"},
		},
	})

	c.MustAddEntity(&schema.Entity{
		Name:  "SimulationSheet",
		Doc:   "Comprehensive model for simulation, encapsulating rules, scenarios, and active elements in the world.",
		Bases: []string{"BaseEntity"},
		Fields: []schema.Field{
			{Name: "rules", Type: schema.List(schema.UUID()), Default: schema.DefaultEmptyList,
				Description: "UUIDs of rules governing the simulation"},
			{Name: "scenarios", Type: schema.List(schema.UUID()), Default: schema.DefaultEmptyList,
				Description: "UUIDs of scenarios currently active within the simulation"},
			{Name: "active_characters", Type: schema.List(schema.UUID()), Default: schema.DefaultEmptyList,
				Description: "UUIDs of characters currently engaged in the simulation"},
			{Name: "current_world", Type: schema.UUID(),
				Description: "UUID of the world where the current simulation is taking place"},
			{Name: "world_simulation", Type: schema.Model("WorldSimulation"),
				Description: "Current state and parameters of the world simulation"},
			{Name: "game_master_notes", Type: schema.Model("LocalizedString"), Default: schema.DefaultEmptyModel,
				Description: "Additional notes or observations from the game master"},
		},
	})

	c.MustAddEntity(&schema.Entity{
		Name:  "Memories",
		Doc:   "A memory or experience linked to a specific entity.",
		Bases: []string{"BaseEntity"},
		Fields: []schema.Field{
			{Name: "memory_string", Type: schema.Model("LocalizedString"),
				Description: "Detailed memory or experience associated with an entity"},
			{Name: "associated_entity_id", Type: schema.UUID(),
				Description: "UUID of the entity that this memory belongs to"},
			{Name: "event_id", Type: schema.Optional(schema.UUID()),
				Description: "UUID of the associated event, if applicable"},
			{Name: "location_id", Type: schema.Optional(schema.UUID()),
				Description: "UUID of the associated location, if applicable"},
			{Name: "emotional_impact", Type: schema.Int(),
				Description: "Emotional impact of the memory, from -100 to 100"},
			{Name: "recall_difficulty", Type: schema.Int(),
				Description: "Difficulty of recalling this memory, from 0 to 100"},
		},
	})
}

package lorecore

import "github.com/hypertech/loreweave/schema"

func registerItemModels(c *schema.Catalog) {
	c.MustAddEntity(&schema.Entity{
		Name: "ItemEvolution",
		Doc:  "Evolution of an item over time or through specific events.",
		Fields: []schema.Field{
			{Name: "stages", Type: schema.List(schema.Map(schema.String(), schema.Any())),
				Description: "List of evolution stages with their properties"},
			{Name: "current_stage", Type: schema.Int(),
				Description: "Index of the current evolution stage"},
			{Name: "evolution_trigger", Type: schema.Optional(schema.String()),
				Description: "Condition that triggers evolution to the next stage"},
		},
	})

	c.MustAddEntity(&schema.Entity{
		Name: "ItemCraftingRecipe",
		Doc:  "Recipe for crafting an item.",
		Fields: []schema.Field{
			{Name: "ingredients", Type: schema.List(schema.Map(schema.UUID(), schema.Int())),
				Description: "List of required ingredient UUIDs and quantities"},
			{Name: "tools", Type: schema.List(schema.UUID()), Default: schema.DefaultEmptyList,
				Description: "List of required tool UUIDs"},
			{Name: "skill_requirements", Type: schema.Map(schema.String(), schema.Int()), Default: schema.DefaultEmptyMap,
				Description: "Required skills and their minimum levels"},
			{Name: "crafting_time", Type: schema.Int(),
				Description: "Time required to craft the item in minutes"},
			{Name: "difficulty", Type: schema.Int(),
				Description: "Difficulty of crafting on a scale of 1-100"},
		},
	})

	c.MustAddEntity(&schema.Entity{
		Name:  "Item",
		Doc:   "An in-game item with properties like rarity, weight, and value.",
		Bases: []string{"BaseEntity"},
		Fields: []schema.Field{
			{Name: "rarity", Type: schema.EnumOf("Rarity")},
			{Name: "weight", Type: schema.Float(),
				Description: "Weight of the item in arbitrary units"},
			{Name: "value", Type: schema.Int(),
				Description: "Monetary or barter value of the item"},
			{Name: "evolution", Type: schema.Optional(schema.Model("ItemEvolution")),
				Description: "Evolution stages of the item"},
			{Name: "crafting_recipe", Type: schema.Optional(schema.Model("ItemCraftingRecipe")),
				Description: "Recipe for crafting the item"},
		},
	})
}

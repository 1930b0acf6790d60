package lorecore

import "github.com/hypertech/loreweave/schema"

func registerCharacterModels(c *schema.Catalog) {
	c.MustAddEntity(&schema.Entity{
		Name:  "CharacterRace",
		Doc:   "A character's race with associated traits and ability bonuses.",
		Bases: []string{"BaseEntity"},
		Fields: []schema.Field{
			{Name: "traits", Type: schema.List(schema.Model("LocalizedString")), Default: schema.DefaultEmptyList,
				Description: "Racial traits or characteristics associated with the race"},
			{Name: "ability_bonuses", Type: schema.Map(schema.String(), schema.Int()), Default: schema.DefaultEmptyMap,
				Description: "Ability score bonuses provided by the race"},
		},
	})

	c.MustAddEntity(&schema.Entity{
		Name:  "CharacterClass",
		Doc:   "A character's class, defining its role and abilities.",
		Bases: []string{"BaseEntity"},
		Fields: []schema.Field{
			{Name: "primary_ability", Type: schema.String(),
				Description: "Main ability associated with the class (e.g., Strength, Intelligence)"},
			{Name: "saving_throw_proficiencies", Type: schema.List(schema.String()), Default: schema.DefaultEmptyList,
				Description: "Saving throw proficiencies granted by the class"},
			{Name: "skill_proficiencies", Type: schema.List(schema.String()), Default: schema.DefaultEmptyList,
				Description: "Skills that the class has proficiency in"},
		},
	})

	c.MustAddEntity(&schema.Entity{
		Name:  "CharacterBackground",
		Doc:   "A character's background, encapsulating life experiences and skills.",
		Bases: []string{"BaseEntity"},
		Fields: []schema.Field{
			{Name: "skill_proficiencies", Type: schema.List(schema.String()), Default: schema.DefaultEmptyList,
				Description: "Skills acquired based on background"},
			{Name: "feature", Type: schema.Model("LocalizedString"),
				Description: "Special feature or ability granted by the background"},
		},
	})

	c.MustAddEntity(&schema.Entity{
		Name: "AbilityScore",
		Doc:  "An ability score with its base value and derived modifier.",
		Fields: []schema.Field{
			{Name: "score", Type: schema.Int(), Description: "Base ability score between 1 and 30"},
			{Name: "modifier", Type: schema.Int(), Description: "Modifier derived from the ability score"},
		},
	})

	c.MustAddEntity(&schema.Entity{
		Name: "CharacterAbilityScores",
		Doc:  "All six primary ability scores for a character.",
		Fields: []schema.Field{
			{Name: "strength", Type: schema.Model("AbilityScore")},
			{Name: "dexterity", Type: schema.Model("AbilityScore")},
			{Name: "constitution", Type: schema.Model("AbilityScore")},
			{Name: "intelligence", Type: schema.Model("AbilityScore")},
			{Name: "wisdom", Type: schema.Model("AbilityScore")},
			{Name: "charisma", Type: schema.Model("AbilityScore")},
		},
	})

	c.MustAddEntity(&schema.Entity{
		Name:  "CharacterSkill",
		Doc:   "An individual skill, tied to a specific ability.",
		Bases: []string{"BaseEntity"},
		Fields: []schema.Field{
			{Name: "ability", Type: schema.String(),
				Description: "The ability score this skill is tied to (e.g., Dexterity)"},
			{Name: "proficient", Type: schema.Bool(),
				Description: "Indicates if the character is proficient in the skill"},
			{Name: "expertise", Type: schema.Bool(),
				Description: "Indicates if the character has expertise in the skill"},
		},
	})

	c.MustAddEntity(&schema.Entity{
		Name:  "CharacterTrait",
		Doc:   "A special trait that a character possesses.",
		Bases: []string{"BaseEntity"},
		Fields: []schema.Field{
			{Name: "impact", Type: schema.Model("LocalizedString"), Default: schema.DefaultEmptyModel,
				Description: "The potential impact of the trait on gameplay or narrative"},
		},
	})

	c.MustAddEntity(&schema.Entity{
		Name: "CharacterVoice",
		Doc:  "The unique voice and dialogue style of a character.",
		Fields: []schema.Field{
			{Name: "speech_patterns", Type: schema.List(schema.String()), Default: schema.DefaultEmptyList,
				Description: "Common speech patterns or phrases"},
			{Name: "tone", Type: schema.String(),
				Description: "Overall tone of the character's speech"},
			{Name: "vocabulary", Type: schema.List(schema.String()), Default: schema.DefaultEmptyList,
				Description: "Unique or characteristic words used by the character"},
		},
	})

	c.MustAddEntity(&schema.Entity{
		Name: "CharacterArc",
		Doc:  "A character's development arc over time.",
		Fields: []schema.Field{
			{Name: "starting_state", Type: schema.Model("LocalizedString"),
				Description: "Initial state or personality of the character"},
			{Name: "key_events", Type: schema.List(schema.UUID()), Default: schema.DefaultEmptyList,
				Description: "UUIDs of events crucial to character development"},
			{Name: "ending_state", Type: schema.Model("LocalizedString"),
				Description: "Final or current state of the character's development"},
		},
	})

	c.MustAddEntity(&schema.Entity{
		Name:  "CharacterSheet",
		Doc:   "Comprehensive model encapsulating all details about a character.",
		Bases: []string{"BaseEntity"},
		Fields: []schema.Field{
			{Name: "race", Type: schema.Model("CharacterRace")},
			{Name: "character_class", Type: schema.Model("CharacterClass")},
			{Name: "background", Type: schema.Model("CharacterBackground")},
			{Name: "level", Type: schema.Int(),
				Description: "Character's level, starting at 1"},
			{Name: "experience", Type: schema.Int(),
				Description: "Experience points accumulated by the character"},
			{Name: "alignment", Type: schema.EnumOf("Alignment")},
			{Name: "ability_scores", Type: schema.Model("CharacterAbilityScores")},
			{Name: "skills", Type: schema.List(schema.Model("CharacterSkill")), Default: schema.DefaultEmptyList,
				Description: "List of the character's skills"},
			{Name: "traits", Type: schema.List(schema.Model("CharacterTrait")), Default: schema.DefaultEmptyList,
				Description: "List of character-specific traits"},
			{Name: "inventory", Type: schema.List(schema.UUID()), Default: schema.DefaultEmptyList,
				Description: "UUIDs of items held by the character"},
			{Name: "relationships", Type: schema.List(schema.Model("Relationship")), Default: schema.DefaultEmptyList,
				Description: "Relationships with other characters"},
			{Name: "backstory", Type: schema.Model("LocalizedString"), Default: schema.DefaultEmptyModel,
				Description: "The character's personal backstory"},
			{Name: "voice", Type: schema.Model("CharacterVoice"),
				Description: "The character's unique voice and dialogue style"},
			{Name: "character_arc", Type: schema.Model("CharacterArc"),
				Description: "The character's development arc"},
			{Name: "notes", Type: schema.Model("LocalizedString"), Default: schema.DefaultEmptyModel,
				Description: "General notes or additional information"},
		},
	})
}

package lorecore

import "github.com/hypertech/loreweave/schema"

// registerEnums defines the catalog's enumerations. Value order is the
// order values render in full-detail annotations.
func registerEnums(c *schema.Catalog) {
	c.MustAddEnum(&schema.Enum{
		Name: "Alignment",
		Doc:  "Character alignments, defining moral and ethical perspectives.",
		Values: []string{
			"Lawful Good",
			"Neutral Good",
			"Chaotic Good",
			"Lawful Neutral",
			"True Neutral",
			"Chaotic Neutral",
			"Lawful Evil",
			"Neutral Evil",
			"Chaotic Evil",
		},
	})

	c.MustAddEnum(&schema.Enum{
		Name: "Rarity",
		Doc:  "Item rarity levels, classifying availability and value.",
		Values: []string{
			"Common",
			"Uncommon",
			"Rare",
			"Very Rare",
			"Legendary",
			"Unique",
		},
	})

	c.MustAddEnum(&schema.Enum{
		Name: "EventType",
		Doc:  "Event types classifying the context and significance of occurrences in the world.",
		Values: []string{
			"Personal",
			"Historical",
			"Quest",
			"Combat",
			"Social",
			"Economic",
			"Natural",
			"Supernatural",
			"Cosmic",
		},
	})

	c.MustAddEnum(&schema.Enum{
		Name: "Locale",
		Doc:  "Supported locales for localization.",
		Values: []string{
			"en-US",
			"es-ES",
			"fr-FR",
			"de-DE",
			"ja-JP",
		},
	})
}

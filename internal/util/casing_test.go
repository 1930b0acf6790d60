package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSnakeCase(t *testing.T) {
	cases := map[string]string{
		"CharacterSheet":   "character_sheet",
		"Item":             "item",
		"WorldSimulation":  "world_simulation",
		"LocalizedString":  "localized_string",
		"UUIDIndex":        "uuid_index",
		"ClimateModel":     "climate_model",
		"already_snake":    "already_snake",
		"":                 "",
	}

	for in, want := range cases {
		assert.Equal(t, want, ToSnakeCase(in), "input %q", in)
	}
}

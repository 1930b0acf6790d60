package render

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hypertech/loreweave/weave"
)

// itemTemplate mimics a small generated entity: scalar tokens, containers,
// an annotated enum and a nested model.
func itemTemplate() *weave.Template {
	nested := &weave.Template{Entries: []weave.Entry{
		{Key: "default", Value: weave.Token("<str>")},
		{Key: "translations", Value: weave.EmptyMap{}},
	}}
	return &weave.Template{Entries: []weave.Entry{
		{Key: "uuid", Value: weave.Token("<UUID>")},
		{Key: "name", Value: nested},
		{Key: "rarity", Value: weave.EnumChoice{Name: "Rarity", Values: []string{"common", "rare"}}},
		{Key: "rarity_description", Value: weave.Text("How rare the item is")},
		{Key: "tags", Value: weave.EmptyList{}},
	}}
}

func TestMarshalYAML(t *testing.T) {
	out, err := MarshalYAML(itemTemplate())
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "uuid: <UUID>\n")
	assert.Contains(t, s, "name:\n")
	assert.Contains(t, s, "  default: <str>\n")
	assert.Contains(t, s, "  translations: {}\n")
	assert.Contains(t, s, "rarity: <Rarity> # one of: common | rare\n")
	assert.Contains(t, s, "tags: []\n")

	// Remains parseable YAML with the keys in declaration order.
	var node yaml.Node
	require.NoError(t, yaml.Unmarshal(out, &node))
	doc := node.Content[0]
	require.Equal(t, yaml.MappingNode, doc.Kind)
	assert.Equal(t, "uuid", doc.Content[0].Value)
	assert.Equal(t, "name", doc.Content[2].Value)
	assert.Equal(t, "rarity", doc.Content[4].Value)
}

func TestMarshalJSON(t *testing.T) {
	out, err := MarshalJSON(itemTemplate())
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, `"uuid": "<UUID>"`)
	assert.Contains(t, s, `"translations": {}`)
	assert.Contains(t, s, `"tags": []`)
	// JSON carries enum values as a sibling entry, comments don't exist.
	assert.Contains(t, s, `"rarity": "<Rarity>"`)
	assert.Contains(t, s, `"rarity_choices": "common | rare"`)

	require.True(t, json.Valid(out), "output must be valid JSON")
}

func TestMarshalJSONEmptyTemplate(t *testing.T) {
	out, err := MarshalJSON(&weave.Template{})
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(out))
}

func TestMarshalMarkdown(t *testing.T) {
	out := MarshalMarkdown(itemTemplate())

	s := string(out)
	assert.Contains(t, s, "# uuid\n\n`<UUID>`\n\n")
	assert.Contains(t, s, "# name\n\n## default\n\n`<str>`\n\n")
	assert.Contains(t, s, "# rarity\n\n`<Rarity>`\n\n- common\n- rare\n")
	assert.Contains(t, s, "# rarity_description\n\nHow rare the item is\n\n")
}

func TestMarshalIsDeterministic(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatJSON, FormatMarkdown} {
		first, err := Marshal(itemTemplate(), format)
		require.NoError(t, err, format)
		for i := 0; i < 3; i++ {
			again, err := Marshal(itemTemplate(), format)
			require.NoError(t, err, format)
			assert.Equal(t, first, again, "format %s must render identically across runs", format)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"yaml", "json", "md"} {
		format, err := ParseFormat(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, format.Extension())
	}

	_, err := ParseFormat("toml")
	assert.Error(t, err)
}

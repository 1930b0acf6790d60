package render

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/hypertech/loreweave/weave"
)

// MarshalJSON renders a template as two-space-indented JSON with entry
// order preserved. encoding/json's map marshalling sorts keys, so objects
// are written by hand from the ordered entry slice.
//
// JSON has no comments; an enumeration's allowed values, when present,
// are emitted as an informative "<key>_choices" sibling instead.
func MarshalJSON(t *weave.Template) ([]byte, error) {
	var buf bytes.Buffer
	writeJSONTemplate(&buf, t, 0)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func writeJSONTemplate(buf *bytes.Buffer, t *weave.Template, depth int) {
	if len(t.Entries) == 0 {
		buf.WriteString("{}")
		return
	}

	buf.WriteString("{\n")
	first := true
	for _, e := range t.Entries {
		writeJSONEntry(buf, e, depth+1, &first)
	}
	buf.WriteByte('\n')
	writeIndent(buf, depth)
	buf.WriteByte('}')
}

func writeJSONEntry(buf *bytes.Buffer, e weave.Entry, depth int, first *bool) {
	writeJSONKey(buf, e.Key, depth, first)
	writeJSONValue(buf, e.Value, depth)

	// Sibling choices entry for annotated enums
	if choice, ok := e.Value.(weave.EnumChoice); ok && len(choice.Values) > 0 {
		writeJSONKey(buf, e.Key+"_choices", depth, first)
		writeJSONString(buf, strings.Join(choice.Values, " | "))
	}
}

func writeJSONKey(buf *bytes.Buffer, key string, depth int, first *bool) {
	if !*first {
		buf.WriteString(",\n")
	}
	*first = false
	writeIndent(buf, depth)
	writeJSONString(buf, key)
	buf.WriteString(": ")
}

func writeJSONValue(buf *bytes.Buffer, ph weave.Placeholder, depth int) {
	switch v := ph.(type) {
	case weave.Token:
		writeJSONString(buf, string(v))
	case weave.Text:
		writeJSONString(buf, string(v))
	case weave.EmptyList:
		buf.WriteString("[]")
	case weave.EmptyMap:
		buf.WriteString("{}")
	case weave.EnumChoice:
		writeJSONString(buf, "<"+v.Name+">")
	case *weave.Template:
		writeJSONTemplate(buf, v, depth)
	}
}

// writeJSONString encodes a string with standard JSON escaping.
func writeJSONString(buf *bytes.Buffer, s string) {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		// encoding a string cannot fail
		buf.WriteString(`""`)
		return
	}
	// Encode appends a newline; drop it.
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
}

func writeIndent(buf *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteString("  ")
	}
}

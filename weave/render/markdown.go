package render

import (
	"bytes"
	"strings"

	"github.com/hypertech/loreweave/weave"
)

// MarshalMarkdown renders a template as nested Markdown: one heading per
// key, depth mapped to heading level, scalar placeholders as body text and
// enumeration values as a bullet list.
func MarshalMarkdown(t *weave.Template) []byte {
	var buf bytes.Buffer
	writeMarkdownTemplate(&buf, t, 1)
	return buf.Bytes()
}

func writeMarkdownTemplate(buf *bytes.Buffer, t *weave.Template, level int) {
	// Headings deeper than h6 aren't valid Markdown; clamp there
	if level > 6 {
		level = 6
	}

	for _, e := range t.Entries {
		buf.WriteString(strings.Repeat("#", level))
		buf.WriteByte(' ')
		buf.WriteString(e.Key)
		buf.WriteString("\n\n")
		writeMarkdownValue(buf, e.Value, level)
	}
}

func writeMarkdownValue(buf *bytes.Buffer, ph weave.Placeholder, level int) {
	switch v := ph.(type) {
	case weave.Token:
		buf.WriteString("`" + string(v) + "`\n\n")
	case weave.Text:
		buf.WriteString(string(v) + "\n\n")
	case weave.EmptyList:
		buf.WriteString("`[]`\n\n")
	case weave.EmptyMap:
		buf.WriteString("`{}`\n\n")
	case weave.EnumChoice:
		buf.WriteString("`<" + v.Name + ">`\n\n")
		if len(v.Values) > 0 {
			for _, val := range v.Values {
				buf.WriteString("- " + val + "\n")
			}
			buf.WriteByte('\n')
		}
	case *weave.Template:
		writeMarkdownTemplate(buf, v, level+1)
	}
}

package render

import (
	"os"
	"path/filepath"

	"github.com/hypertech/loreweave/errors"
	"github.com/hypertech/loreweave/internal/util"
	"github.com/hypertech/loreweave/logger"
	"github.com/hypertech/loreweave/weave"
)

// Format selects the output serialization.
type Format string

const (
	FormatYAML     Format = "yaml"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "md"
)

// ParseFormat validates a format string from the CLI or config.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatYAML, FormatJSON, FormatMarkdown:
		return Format(s), nil
	}
	return "", errors.Newf("unknown format %q (supported: yaml, json, md)", s)
}

// Extension returns the file extension for a format.
func (f Format) Extension() string {
	return string(f)
}

// Marshal serializes one template in the given format.
func Marshal(t *weave.Template, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return MarshalYAML(t)
	case FormatJSON:
		return MarshalJSON(t)
	case FormatMarkdown:
		return MarshalMarkdown(t), nil
	}
	return nil, errors.Newf("unknown format %q", format)
}

// Writer persists generation results to disk. Existing files of the same
// name are overwritten without merging; any filesystem failure is fatal
// for the run, since subsequent writes would fail identically.
type Writer struct {
	Format Format
	Dir    string
}

// WriteSheets writes one file per generated entity into the destination
// directory, named after the entity in snake case. Returns the written
// paths in catalog order.
func (w *Writer) WriteSheets(result *weave.Result) ([]string, error) {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return nil, errors.WrapWrite(err, "creating sheets directory "+w.Dir)
	}

	log := logger.Logger.Named("render")
	paths := make([]string, 0, len(result.Documents))
	for _, doc := range result.Documents {
		data, err := Marshal(doc.Template, w.Format)
		if err != nil {
			return nil, errors.Wrapf(err, "serializing %s", doc.Entity)
		}

		path := filepath.Join(w.Dir, util.ToSnakeCase(doc.Entity)+"."+w.Format.Extension())
		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, errors.WrapWrite(err, "writing "+path)
		}
		log.Debugw("sheet written", "entity", doc.Entity, "path", path)
		paths = append(paths, path)
	}
	return paths, nil
}

// WriteSingle writes the merged document to one file named
// "<name>_all.<ext>" in the destination directory.
func (w *Writer) WriteSingle(result *weave.Result, name string) (string, error) {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return "", errors.WrapWrite(err, "creating output directory "+w.Dir)
	}

	data, err := Marshal(result.Merged(), w.Format)
	if err != nil {
		return "", errors.Wrap(err, "serializing merged document")
	}

	path := filepath.Join(w.Dir, name+"_all."+w.Format.Extension())
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", errors.WrapWrite(err, "writing "+path)
	}
	logger.Logger.Named("render").Debugw("single document written", "path", path)
	return path, nil
}

// Write persists a result according to its shape. Sheets go under a
// "sheets" subdirectory, mirroring the single file's directory layout.
func (w *Writer) Write(result *weave.Result, name string) ([]string, error) {
	if result.Shape == weave.ShapeSheets {
		sheets := &Writer{Format: w.Format, Dir: filepath.Join(w.Dir, "sheets")}
		return sheets.WriteSheets(result)
	}
	path, err := w.WriteSingle(result, name)
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

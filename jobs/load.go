package jobs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/teranos/jobs/errors"
	"github.com/teranos/jobs/logger"
	"gopkg.in/yaml.v3"
)

// Format selects the decoder for a jobs file
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from the file extension.
// Unknown extensions are read as JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// Document is the top-level shape of a jobs file.
// Jobs is a pointer so a missing or null list can be told apart from an empty one.
type Document struct {
	Jobs *[]Job `json:"jobs" yaml:"jobs" toml:"jobs"`
}

// Read loads the job records stored at path, in file order.
//
// A missing or unreadable file fails with errors.ErrRead; malformed content
// or a document without a jobs list fails with errors.ErrParse. No records
// are returned alongside an error.
func Read(path string) ([]Job, error) {
	start := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapRead(err, path)
	}

	format := FormatFromPath(path)
	records, err := Decode(data, format)
	if err != nil {
		return nil, errors.WrapParse(err, path)
	}

	logger.Debugw("Loaded jobs",
		logger.FieldPath, path,
		logger.FieldFormat, string(format),
		logger.FieldCount, len(records),
		logger.FieldSize, len(data),
		logger.FieldDurationMS, time.Since(start).Milliseconds())

	return records, nil
}

// Decode parses a jobs document without touching the filesystem.
// Errors are marked with errors.ErrParse.
func Decode(data []byte, format Format) ([]Job, error) {
	var doc Document

	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	case FormatTOML:
		_, err = toml.Decode(string(data), &doc)
	case FormatJSON, "":
		err = json.Unmarshal(data, &doc)
	default:
		return nil, errors.NewParseError("unsupported jobs file format %q", format)
	}
	if err != nil {
		return nil, errors.Mark(errors.WithStack(err), errors.ErrParse)
	}

	if doc.Jobs == nil {
		return nil, errors.WithHint(
			errors.NewParseError("document has no %q list", "jobs"),
			`the file must look like {"jobs": [...]}`)
	}

	// Never hand out nil for an empty list
	records := *doc.Jobs
	if records == nil {
		records = []Job{}
	}

	if format == FormatTOML {
		ids, err := tomlIDLiterals(data)
		if err != nil {
			return nil, errors.Mark(errors.WithStack(err), errors.ErrParse)
		}
		if len(ids) == len(records) {
			for i, lit := range ids {
				if lit != "" {
					records[i].ID = ID(lit)
				}
			}
		}
	}
	return records, nil
}

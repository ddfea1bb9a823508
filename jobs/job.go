// Package jobs reads the locally stored list of job applications.
//
// The file holds a single document shaped
//
//	{ "jobs": [ { "id": 1, "company": "Acme", "title": "Engineer", "type": "FT", "status": "Applied" } ] }
//
// Records come back in file order and are never modified.
package jobs

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Status describes the outcome of an application
type Status string

// Known statuses. Any other value is accepted as-is.
const (
	StatusAccepted Status = "Accepted"
	StatusApplied  Status = "Applied"
	StatusRejected Status = "Rejected"
)

// String returns the status text
func (s Status) String() string {
	return string(s)
}

// Job is one stored job application
type Job struct {
	ID      ID     `json:"id" yaml:"id" toml:"id"`
	Company string `json:"company" yaml:"company" toml:"company"`
	Title   string `json:"title" yaml:"title" toml:"title"`
	Type    string `json:"type" yaml:"type" toml:"type"`
	Status  Status `json:"status" yaml:"status" toml:"status"`
}

// ID identifies a job. Files may use numbers or strings; either way the
// source text is kept verbatim. Uniqueness is not enforced.
type ID string

// String returns the id text
func (id ID) String() string {
	return string(id)
}

// UnmarshalJSON accepts a JSON string, number or null
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("id must be a string or number, got %s", data)
		}
		*id = ID(n.String())
		return nil
	}
}

// UnmarshalYAML accepts any scalar node
func (id *ID) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: id must be a scalar", node.Line)
	}
	if node.Tag == "!!null" {
		*id = ""
		return nil
	}
	*id = ID(node.Value)
	return nil
}

// UnmarshalTOML accepts TOML strings and numbers. Decode restores the
// literal text of numbers afterwards.
func (id *ID) UnmarshalTOML(v interface{}) error {
	switch value := v.(type) {
	case string:
		*id = ID(value)
	case int64:
		*id = ID(fmt.Sprintf("%d", value))
	case float64:
		*id = ID(fmt.Sprintf("%v", value))
	default:
		return fmt.Errorf("id must be a string or number, got %T", v)
	}
	return nil
}

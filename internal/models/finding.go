// Package models contains the data structures for normalized security
// findings and the consolidated report.
package models

import (
	"encoding/json"
	"fmt"
)

// Finding represents a normalized security finding from any tool.
//
// Title, Description, Severity, Category and Tool are always present.
// Attributes holds the category-specific extras each loader contributes
// (package/version/CVEs for dependency findings, file/line for code
// findings, resource/namespace for infrastructure and Kubernetes
// findings). When serialized, attributes appear as top-level keys next to
// the fixed fields.
type Finding struct {
	Attributes  map[string]string
	Title       string
	Description string
	Category    string
	Tool        string
	Severity    Severity
}

// NewFinding creates a finding with an empty attribute bag. An empty title
// is replaced with "Unknown" so renderers never see a blank label.
func NewFinding(tool, category string, severity Severity, title string) *Finding {
	if title == "" {
		title = "Unknown"
	}
	return &Finding{
		Tool:       tool,
		Category:   category,
		Severity:   severity,
		Title:      title,
		Attributes: make(map[string]string),
	}
}

// WithAttr sets an attribute and returns the finding for chaining.
func (f *Finding) WithAttr(key, value string) *Finding {
	f.Attributes[key] = value
	return f
}

// Validate checks the invariants every loader must guarantee: a severity
// from the four-value scale and a non-empty category.
func (f *Finding) Validate() error {
	if !f.Severity.IsValid() {
		return fmt.Errorf("finding %q has invalid severity %q", f.Title, f.Severity)
	}
	if f.Category == "" {
		return fmt.Errorf("finding %q has empty category", f.Title)
	}
	if f.Tool == "" {
		return fmt.Errorf("finding %q has empty tool", f.Title)
	}
	return nil
}

// reservedKeys are the fixed finding fields; attributes cannot shadow them.
var reservedKeys = map[string]bool{
	"title":       true,
	"description": true,
	"severity":    true,
	"category":    true,
	"tool":        true,
}

// MarshalJSON flattens the attribute bag into the finding object, so a
// dependency finding serializes with its "package" and "version" keys at
// the top level. Map marshaling sorts keys, keeping output deterministic.
func (f Finding) MarshalJSON() ([]byte, error) {
	obj := make(map[string]any, len(f.Attributes)+5)
	for k, v := range f.Attributes {
		if reservedKeys[k] {
			continue
		}
		obj[k] = v
	}
	obj["title"] = f.Title
	obj["description"] = f.Description
	obj["severity"] = f.Severity
	obj["category"] = f.Category
	obj["tool"] = f.Tool
	return json.Marshal(obj)
}

// UnmarshalJSON is the inverse of MarshalJSON: fixed fields are read into
// their struct fields, everything else lands in the attribute bag.
func (f *Finding) UnmarshalJSON(data []byte) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	f.Attributes = make(map[string]string)
	for k, raw := range obj {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			// Non-string extras are kept verbatim.
			s = string(raw)
		}
		switch k {
		case "title":
			f.Title = s
		case "description":
			f.Description = s
		case "severity":
			f.Severity = Severity(s)
		case "category":
			f.Category = s
		case "tool":
			f.Tool = s
		default:
			f.Attributes[k] = s
		}
	}
	return nil
}

// Package resource holds the static schema knowledge for Attio objects:
// resource types, searchable field candidates, and attribute alias tables.
// Everything here is configuration, loaded once and never mutated at runtime.
// The tables must be kept in sync with the remote Attio schema by hand; a
// server-side attribute rename silently goes stale here (accepted drift risk).
package resource

import "fmt"

// Type identifies an Attio object a query or mutation targets.
type Type string

// Supported resource types. Custom objects are addressed by their API slug
// and resolved through Custom rather than a dedicated constant.
const (
	People    Type = "people"
	Companies Type = "companies"
	Tasks     Type = "tasks"
	Deals     Type = "deals"
	Lists     Type = "lists"
)

// Parse normalizes a resource type string. Unknown non-empty slugs are
// accepted as custom objects: Attio workspaces define their own objects and
// the query endpoint shape is identical for them.
func Parse(s string) (Type, error) {
	switch Type(s) {
	case People, Companies, Tasks, Deals, Lists:
		return Type(s), nil
	}
	if s == "" {
		return "", fmt.Errorf("resource type is required")
	}
	return Type(s), nil
}

// Slug returns the API object slug used in request paths.
func (t Type) Slug() string { return string(t) }

// FieldKind classifies a searchable field by the token kinds it can match.
type FieldKind int

// Field kinds.
const (
	TextField FieldKind = iota
	EmailField
	PhoneField
)

// FieldCandidate is one searchable field of a resource type.
type FieldCandidate struct {
	Name        string
	Kind        FieldKind
	DomainMatch bool // field stores domains, so partial host matching is meaningful
}

// searchFields is the static per-resource search schema. Looked up, never
// computed.
var searchFields = map[Type][]FieldCandidate{
	People: {
		{Name: "name", Kind: TextField},
		{Name: "email_addresses", Kind: EmailField},
		{Name: "phone_numbers", Kind: PhoneField},
	},
	Companies: {
		{Name: "name", Kind: TextField},
		{Name: "domains", Kind: TextField, DomainMatch: true},
	},
	Tasks: {
		{Name: "content", Kind: TextField},
	},
	Deals: {
		{Name: "name", Kind: TextField},
	},
}

// defaultSearchFields covers list entries and custom objects, which always
// carry a name attribute.
var defaultSearchFields = []FieldCandidate{
	{Name: "name", Kind: TextField},
}

// SearchFields returns the ordered searchable fields for a resource type.
func SearchFields(t Type) []FieldCandidate {
	if fields, ok := searchFields[t]; ok {
		return fields
	}
	return defaultSearchFields
}

// PrimaryField returns the field used for legacy single-field fallback and
// fast-path probes. It is the first text-capable field of the resource.
func PrimaryField(t Type) string {
	for _, f := range SearchFields(t) {
		if f.Kind == TextField {
			return f.Name
		}
	}
	return "name"
}

// TextFields returns the text-capable candidates (used for per-token OR groups).
func TextFields(t Type) []FieldCandidate {
	var out []FieldCandidate
	for _, f := range SearchFields(t) {
		if f.Kind == TextField {
			out = append(out, f)
		}
	}
	return out
}

// EmailFields returns the email-capable candidates.
func EmailFields(t Type) []FieldCandidate {
	var out []FieldCandidate
	for _, f := range SearchFields(t) {
		if f.Kind == EmailField {
			out = append(out, f)
		}
	}
	return out
}

// PhoneFields returns the phone-capable candidates.
func PhoneFields(t Type) []FieldCandidate {
	var out []FieldCandidate
	for _, f := range SearchFields(t) {
		if f.Kind == PhoneField {
			out = append(out, f)
		}
	}
	return out
}

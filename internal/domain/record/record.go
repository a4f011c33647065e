// Package record holds the provider record value returned by queries.
package record

// Record is one CRM record in provider-native form, flattened to the field
// values the core needs for formatting and relevance scoring. Lifecycle is
// request-scoped; nothing here is persisted.
type Record struct {
	id     string
	values map[string][]string
}

// New creates a record from its provider ID and flattened field values.
func New(id string, values map[string][]string) Record {
	if values == nil {
		values = map[string][]string{}
	}
	return Record{id: id, values: values}
}

// ID returns the provider record ID.
func (r Record) ID() string { return r.id }

// Values returns all flattened field values.
func (r Record) Values() map[string][]string { return r.values }

// Field returns the values of one field, nil if absent.
func (r Record) Field(name string) []string { return r.values[name] }

// DisplayName returns the first name-like value for text output.
func (r Record) DisplayName() string {
	for _, field := range []string{"name", "content", "title"} {
		if vs := r.values[field]; len(vs) > 0 && vs[0] != "" {
			return vs[0]
		}
	}
	return r.id
}

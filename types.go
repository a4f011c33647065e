package attiodex

import (
	domrec "github.com/kailas-cloud/attiodex/internal/domain/record"
)

// Record is one CRM record with its flattened field values.
type Record struct {
	ID     string
	Values map[string][]string
}

// Name returns the first name-like value, falling back to the ID.
func (r Record) Name() string {
	for _, field := range []string{"name", "content", "title"} {
		if vs := r.Values[field]; len(vs) > 0 && vs[0] != "" {
			return vs[0]
		}
	}
	return r.ID
}

// Field returns the values of one field, nil if absent.
func (r Record) Field(name string) []string { return r.Values[name] }

// CategoryResult is the outcome of validating category values.
type CategoryResult struct {
	IsValid             bool
	ValidatedCategories []string
	AutoConverted       bool
	Suggestions         []string
	Errors              []string
	Warnings            []string
}

// BatchItem is the outcome of one query in a batch search.
type BatchItem struct {
	Query   string
	Records []Record
	Err     error
}

// OK reports whether the item succeeded.
func (b BatchItem) OK() bool { return b.Err == nil }

func toPublicRecord(r domrec.Record) Record {
	return Record{ID: r.ID(), Values: r.Values()}
}

func toPublicRecords(rs []domrec.Record) []Record {
	if len(rs) == 0 {
		return nil
	}
	out := make([]Record, 0, len(rs))
	for _, r := range rs {
		out = append(out, toPublicRecord(r))
	}
	return out
}

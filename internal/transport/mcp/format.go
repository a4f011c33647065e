package mcp

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kailas-cloud/attiodex/internal/domain/record"
	"github.com/kailas-cloud/attiodex/internal/domain/resource"
	"github.com/kailas-cloud/attiodex/internal/usecase/batch"
	"github.com/kailas-cloud/attiodex/internal/usecase/validate"
)

// formatRecords renders a search result page as a numbered text list.
func formatRecords(records []record.Record, rt resource.Type, queryText string) string {
	if len(records) == 0 {
		return fmt.Sprintf("No %s found for %q.", rt.Slug(), queryText)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d %s:\n\n", len(records), rt.Slug())
	for i, rec := range records {
		fmt.Fprintf(&b, "[%d] %s (%s)\n", i+1, rec.DisplayName(), rec.ID())
		writeFields(&b, rec, "    ")
	}
	return b.String()
}

// formatRecord renders one record with all its flattened fields.
func formatRecord(rec record.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", rec.DisplayName(), rec.ID())
	writeFields(&b, rec, "  ")
	return b.String()
}

// writeFields prints the record's fields in deterministic order, skipping the
// field already shown as the display name.
func writeFields(b *strings.Builder, rec record.Record, indent string) {
	values := rec.Values()
	fields := make([]string, 0, len(values))
	for f := range values {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	for _, f := range fields {
		vs := values[f]
		if len(vs) > 0 && vs[0] == rec.DisplayName() {
			continue
		}
		fmt.Fprintf(b, "%s%s: %s\n", indent, f, strings.Join(vs, ", "))
	}
}

// formatBatch renders per-item outcomes, failures inline with their index.
func formatBatch(outcomes []batch.SearchOutcome, rt resource.Type) string {
	ok := 0
	for _, out := range outcomes {
		if out.Outcome.OK() {
			ok++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Batch of %d queries: %d succeeded, %d failed.\n\n", len(outcomes), ok, len(outcomes)-ok)
	for _, out := range outcomes {
		if !out.Outcome.OK() {
			fmt.Fprintf(&b, "[%d] %q: ERROR: %s\n", out.Outcome.Index()+1, out.Outcome.Ref(), out.Outcome.Err())
			continue
		}
		fmt.Fprintf(&b, "[%d] %q: %d %s\n", out.Outcome.Index()+1, out.Outcome.Ref(), len(out.Records), rt.Slug())
		for _, rec := range out.Records {
			fmt.Fprintf(&b, "    %s (%s)\n", rec.DisplayName(), rec.ID())
		}
	}
	return b.String()
}

// formatCategoryResult renders a validation outcome, including suggestions
// and the valid-list warning when present.
func formatCategoryResult(result validate.CategoryResult) string {
	var b strings.Builder
	if result.IsValid {
		if len(result.ValidatedCategories) == 0 {
			b.WriteString("No categories to validate.\n")
		} else {
			fmt.Fprintf(&b, "All categories valid: %s\n", strings.Join(result.ValidatedCategories, ", "))
		}
		if result.AutoConverted {
			b.WriteString("Note: a single string was converted to a one-element array.\n")
		}
		return b.String()
	}

	b.WriteString("Category validation failed.\n")
	for _, e := range result.Errors {
		fmt.Fprintf(&b, "- %s\n", e)
	}
	if len(result.ValidatedCategories) > 0 {
		fmt.Fprintf(&b, "Valid values in input: %s\n", strings.Join(result.ValidatedCategories, ", "))
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(&b, "%s\n", w)
	}
	return b.String()
}

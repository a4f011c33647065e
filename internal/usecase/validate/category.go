// Package validate checks record payloads before any remote call: category
// values against the canonical select options, and attribute keys against
// alias collisions. All lookup tables are injected read-only at construction.
package validate

import (
	"fmt"
	"sort"
	"strings"
)

// Fuzzy-matching tunables. The thresholds are implementation-chosen, not
// provider-mandated: candidates within MaxSuggestionDistance edits of a
// canonical value are offered as "did you mean" suggestions, at most
// MaxSuggestions of them.
const (
	MaxSuggestionDistance = 3
	MaxSuggestions        = 3
)

// CategoryResult is the outcome of validating one category input.
type CategoryResult struct {
	IsValid             bool
	ValidatedCategories []string
	AutoConverted       bool
	Suggestions         []string
	Errors              []string
	Warnings            []string
}

// CategoryValidator validates candidate values against a canonical list.
type CategoryValidator struct {
	canonical []string
	byLower   map[string]string
}

// NewCategoryValidator creates a validator over the canonical value list.
// The list is treated as immutable; the validator is safe for concurrent use.
func NewCategoryValidator(canonical []string) *CategoryValidator {
	byLower := make(map[string]string, len(canonical))
	for _, c := range canonical {
		byLower[strings.ToLower(c)] = c
	}
	return &CategoryValidator{canonical: canonical, byLower: byLower}
}

// Validate checks a category input of unknown shape. A bare string is
// auto-wrapped into a one-element array; nil and empty arrays are valid
// no-ops; any other type is an input error. Validated output is deduplicated
// case-insensitively, keeping the first-seen canonical form.
func (v *CategoryValidator) Validate(input any) CategoryResult {
	var result CategoryResult

	candidates, ok := v.coerce(input, &result)
	if !ok {
		return result
	}
	if len(candidates) == 0 {
		result.IsValid = true
		return result
	}

	seen := make(map[string]bool, len(candidates))
	for _, candidate := range candidates {
		canonical, found := v.byLower[strings.ToLower(candidate)]
		if !found {
			v.reportMiss(candidate, &result)
			continue
		}
		key := strings.ToLower(canonical)
		if seen[key] {
			continue
		}
		seen[key] = true
		result.ValidatedCategories = append(result.ValidatedCategories, canonical)
	}

	result.IsValid = len(result.Errors) == 0
	return result
}

// coerce normalizes the input shape to a string slice. Returns false after
// recording a type error.
func (v *CategoryValidator) coerce(input any, result *CategoryResult) ([]string, bool) {
	switch val := input.(type) {
	case nil:
		result.IsValid = true
		return nil, true
	case string:
		result.AutoConverted = true
		return []string{val}, true
	case []string:
		return val, true
	case []any:
		out := make([]string, 0, len(val))
		for i, item := range val {
			s, ok := item.(string)
			if !ok {
				result.Errors = append(result.Errors,
					fmt.Sprintf("category at index %d must be a string, got %T", i, item))
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		result.Errors = append(result.Errors,
			fmt.Sprintf("categories must be a string or array of strings, got %T", input))
		return nil, false
	}
}

// reportMiss records the error for an unrecognized candidate, with nearest
// suggestions when anything is close enough.
func (v *CategoryValidator) reportMiss(candidate string, result *CategoryResult) {
	suggestions := v.suggest(candidate)
	if len(suggestions) > 0 {
		result.Suggestions = append(result.Suggestions, suggestions...)
		result.Errors = append(result.Errors, fmt.Sprintf(
			"Invalid category %q. Did you mean %s?",
			candidate, quoteList(suggestions),
		))
		return
	}
	result.Errors = append(result.Errors, fmt.Sprintf("Invalid category %q.", candidate))
	result.Warnings = append(result.Warnings, fmt.Sprintf(
		"Valid categories are: %s", strings.Join(v.canonical, ", "),
	))
}

// suggest returns up to MaxSuggestions canonical values within
// MaxSuggestionDistance edits, nearest first. Ties keep canonical-list order.
func (v *CategoryValidator) suggest(candidate string) []string {
	type scored struct {
		value    string
		distance int
	}
	lower := strings.ToLower(candidate)

	var near []scored
	for _, c := range v.canonical {
		d := levenshtein(lower, strings.ToLower(c))
		if d <= MaxSuggestionDistance {
			near = append(near, scored{value: c, distance: d})
		}
	}
	sort.SliceStable(near, func(i, j int) bool { return near[i].distance < near[j].distance })

	if len(near) > MaxSuggestions {
		near = near[:MaxSuggestions]
	}
	out := make([]string, len(near))
	for i, s := range near {
		out[i] = s.value
	}
	return out
}

func quoteList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, " or ")
}

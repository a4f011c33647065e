package search

import (
	"fmt"

	"github.com/kailas-cloud/attiodex/internal/domain/resource"
	"github.com/kailas-cloud/attiodex/internal/domain/search/filter"
)

// BuildFilter assembles the provider filter tree for an extraction against
// the searchable fields of a resource type.
//
// Shape invariant: free-text tokens are combined as an AND of per-token OR
// groups — every token must match in some field, but different tokens may
// match different fields. The inverse nesting (AND per field) requires all
// tokens to land in one field and silently kills cross-field recall; it must
// never be produced here.
//
// Email and phone signals are strong independent matches: their leaves join
// the text clause through the top-level OR rather than being AND-ed with the
// other tokens.
func BuildFilter(ext Extraction, rt resource.Type, rawQuery string) (filter.Node, error) {
	if ext.IsEmpty() {
		return legacyFilter(rt, rawQuery)
	}

	var top []filter.Node

	for _, email := range ext.Emails {
		for _, f := range resource.EmailFields(rt) {
			leaf, err := filter.NewContains(f.Name, email)
			if err != nil {
				return filter.Node{}, fmt.Errorf("email leaf: %w", err)
			}
			top = append(top, leaf)
		}
	}

	for _, phone := range ext.Phones {
		for _, variant := range phone.Variants {
			for _, f := range resource.PhoneFields(rt) {
				leaf, err := filter.NewContains(f.Name, variant)
				if err != nil {
					return filter.Node{}, fmt.Errorf("phone leaf: %w", err)
				}
				top = append(top, leaf)
			}
		}
	}

	if textClause, ok, err := buildTextClause(ext.Words, rt); err != nil {
		return filter.Node{}, err
	} else if ok {
		top = append(top, textClause)
	}

	if len(top) == 0 {
		// Extraction found tokens but no field can carry them (e.g. a phone
		// query against a resource with no phone field). Fall back to the
		// legacy filter rather than matching everything.
		return legacyFilter(rt, rawQuery)
	}

	node, err := filter.NewOr(top...)
	if err != nil {
		return filter.Node{}, fmt.Errorf("top-level or: %w", err)
	}
	return node, nil
}

// buildTextClause builds the AND-of-OR clause for free-text words. Email
// fields participate alongside text fields: a bare word is often the local
// part of a stored address, and widening each OR group is what buys
// cross-field recall.
func buildTextClause(words []string, rt resource.Type) (filter.Node, bool, error) {
	textFields := append(resource.TextFields(rt), resource.EmailFields(rt)...)
	if len(words) == 0 || len(textFields) == 0 {
		return filter.Node{}, false, nil
	}

	groups := make([]filter.Node, 0, len(words))
	for _, word := range words {
		leaves := make([]filter.Node, 0, len(textFields))
		for _, f := range textFields {
			leaf, err := filter.NewContains(f.Name, word)
			if err != nil {
				return filter.Node{}, false, fmt.Errorf("text leaf: %w", err)
			}
			leaves = append(leaves, leaf)
		}
		group, err := filter.NewOr(leaves...)
		if err != nil {
			return filter.Node{}, false, fmt.Errorf("token group: %w", err)
		}
		groups = append(groups, group)
	}

	clause, err := filter.NewAnd(groups...)
	if err != nil {
		return filter.Node{}, false, fmt.Errorf("text clause: %w", err)
	}
	return clause, true, nil
}

// legacyFilter is the pre-tokenization behavior: one $contains leaf on the
// primary field carrying the raw query verbatim (including whitespace).
// An entirely empty query yields the zero node, which the repository sends
// as a match-all filter.
func legacyFilter(rt resource.Type, rawQuery string) (filter.Node, error) {
	if rawQuery == "" {
		return filter.Node{}, nil
	}
	leaf, err := filter.NewContains(resource.PrimaryField(rt), rawQuery)
	if err != nil {
		return filter.Node{}, fmt.Errorf("legacy filter: %w", err)
	}
	return leaf, nil
}

// RelaxFilter flattens a strict tree into the OR of all its leaves: any
// token matching any field qualifies. This drops the AND-across-tokens
// requirement and trades precision for recall on over-constrained queries.
func RelaxFilter(strict filter.Node) (filter.Node, error) {
	leaves := strict.Leaves()
	if len(leaves) == 0 {
		return filter.Node{}, nil
	}
	relaxed, err := filter.NewOr(leaves...)
	if err != nil {
		return filter.Node{}, fmt.Errorf("relax filter: %w", err)
	}
	return relaxed, nil
}

package search

import (
	"strings"
	"testing"

	"github.com/kailas-cloud/attiodex/internal/domain/resource"
	"github.com/kailas-cloud/attiodex/internal/domain/search/filter"
)

func mustBuild(t *testing.T, rawQuery string, rt resource.Type) filter.Node {
	t.Helper()
	node, err := BuildFilter(Extract(rawQuery), rt, rawQuery)
	if err != nil {
		t.Fatalf("BuildFilter: %v", err)
	}
	return node
}

// Multi-token queries must produce an AND whose children are each an OR
// spanning at least two fields, never an AND of single-field conditions.
func TestBuildFilter_AndOfOrShape(t *testing.T) {
	node := mustBuild(t, "Example Medical Group Oregon", resource.Companies)

	if node.Combinator() != filter.CombAnd {
		t.Fatalf("top combinator = %q, want $and", node.Combinator())
	}
	if len(node.Children()) != 4 {
		t.Fatalf("per-token groups = %d, want 4", len(node.Children()))
	}
	for i, group := range node.Children() {
		if group.Combinator() != filter.CombOr {
			t.Fatalf("child %d combinator = %q, want $or", i, group.Combinator())
		}
		fields := map[string]bool{}
		for _, leaf := range group.Children() {
			fields[leaf.Field()] = true
		}
		if len(fields) < 2 {
			t.Errorf("child %d spans %d fields, want >= 2", i, len(fields))
		}
	}
}

// Tokens from one OR group must carry the same value across different
// fields: that nesting is what lets name tokens and domain tokens satisfy
// different fields of the same record.
func TestBuildFilter_TokensAcrossFields(t *testing.T) {
	node := mustBuild(t, "acme portland", resource.Companies)

	for _, group := range node.Children() {
		var value string
		for _, leaf := range group.Children() {
			if value == "" {
				value = leaf.Value()
			} else if leaf.Value() != value {
				t.Errorf("OR group mixes values %q and %q; groups are per-token", value, leaf.Value())
			}
		}
	}
}

func TestBuildFilter_EmailIndependentSignal(t *testing.T) {
	raw := "jane@acme.com quarterly review"
	node := mustBuild(t, raw, resource.People)

	if node.Combinator() != filter.CombOr {
		t.Fatalf("top combinator = %q, want $or merging email leaf and text clause", node.Combinator())
	}

	var emailLeaf bool
	for _, child := range node.Children() {
		if child.IsLeaf() && child.Field() == "email_addresses" && child.Value() == "jane@acme.com" {
			emailLeaf = true
		}
	}
	if !emailLeaf {
		t.Error("missing independent OR-leaf for the extracted email")
	}
}

func TestBuildFilter_PhoneVariantLeaves(t *testing.T) {
	node := mustBuild(t, "+14155551234", resource.People)

	variants := map[string]bool{}
	for _, leaf := range node.Leaves() {
		if leaf.Field() == "phone_numbers" {
			variants[leaf.Value()] = true
		}
	}
	if len(variants) < 2 {
		t.Fatalf("phone variants in tree = %d, want >= 2 (with and without country code)", len(variants))
	}
	if !variants["+14155551234"] || !variants["4155551234"] {
		t.Errorf("variants = %v, want both +14155551234 and 4155551234", variants)
	}
}

// Blank queries skip tokenization entirely and keep the legacy single-field
// behavior.
func TestBuildFilter_BlankQueryLegacyFilter(t *testing.T) {
	raw := "   "
	node := mustBuild(t, raw, resource.Companies)

	if !node.IsLeaf() {
		t.Fatalf("blank query should produce a single legacy leaf, got %q", node.Combinator())
	}
	if node.Field() != "name" || node.Operator() != filter.OpContains || node.Value() != raw {
		t.Errorf("legacy leaf = %s %s %q, want name $contains %q", node.Field(), node.Operator(), node.Value(), raw)
	}
}

func TestBuildFilter_EmptyQueryZeroNode(t *testing.T) {
	node := mustBuild(t, "", resource.Companies)
	if !node.IsZero() {
		t.Error("empty query should produce the zero node (match-all)")
	}
}

// Building twice from the same input must yield structurally identical
// trees (OR-children compare as sets).
func TestBuildFilter_Idempotent(t *testing.T) {
	queries := []string{
		"Example Medical Group Oregon",
		"jane@acme.com",
		"+1 (415) 555-1234 jane",
		"   ",
	}
	for _, raw := range queries {
		a := mustBuild(t, raw, resource.People)
		b := mustBuild(t, raw, resource.People)
		if !a.Equal(b) {
			t.Errorf("BuildFilter(%q) not idempotent", raw)
		}
	}
}

func TestRelaxFilter_FlatOr(t *testing.T) {
	strict := mustBuild(t, "acme medical portland", resource.Companies)
	relaxed, err := RelaxFilter(strict)
	if err != nil {
		t.Fatalf("RelaxFilter: %v", err)
	}

	if relaxed.Combinator() != filter.CombOr {
		t.Fatalf("relaxed combinator = %q, want flat $or", relaxed.Combinator())
	}
	for _, child := range relaxed.Children() {
		if !child.IsLeaf() {
			t.Error("relaxed tree must contain only leaves")
		}
	}
	if got, want := len(relaxed.Children()), len(strict.Leaves()); got != want {
		t.Errorf("relaxed leaves = %d, want %d", got, want)
	}
}

func TestBuildFilter_SingleTextFieldResource(t *testing.T) {
	node := mustBuild(t, "renew contract", resource.Tasks)

	// One text field: per-token OR groups collapse to leaves, the AND of
	// per-token constraints remains.
	if node.Combinator() != filter.CombAnd {
		t.Fatalf("top combinator = %q, want $and", node.Combinator())
	}
	for _, child := range node.Children() {
		if !child.IsLeaf() || child.Field() != "content" {
			t.Errorf("child = %v, want content leaf", child)
		}
	}
}

func TestBuildFilter_WireVocabulary(t *testing.T) {
	node := mustBuild(t, "jane@acme.com smith", resource.People)
	leaves := node.Leaves()
	for _, leaf := range leaves {
		if leaf.Operator() != filter.OpContains && leaf.Operator() != filter.OpEquals {
			t.Errorf("leaf operator %q outside provider vocabulary", leaf.Operator())
		}
	}
	if !strings.HasPrefix(filter.OpContains, "$") {
		t.Error("operator constants must keep the $ prefix")
	}
}

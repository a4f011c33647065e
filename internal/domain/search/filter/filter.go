// Package filter models the Attio records-query filter tree.
//
// The JSON form uses exactly the operator vocabulary the Attio query language
// understands: $and, $or, $contains, $equals. That vocabulary is a
// compatibility contract with the provider and must not change.
package filter

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Leaf operators.
const (
	OpContains = "$contains"
	OpEquals   = "$equals"
)

// Combinators.
const (
	CombAnd = "$and"
	CombOr  = "$or"
)

// Node is one node of a filter tree: either a leaf condition on a single
// field, or an $and/$or combinator over child nodes.
type Node struct {
	field    string
	operator string
	value    string

	combinator string
	children   []Node
}

// NewContains creates a leaf matching records whose field contains value.
func NewContains(field, value string) (Node, error) {
	return newLeaf(field, OpContains, value)
}

// NewEquals creates a leaf matching records whose field equals value exactly.
func NewEquals(field, value string) (Node, error) {
	return newLeaf(field, OpEquals, value)
}

func newLeaf(field, op, value string) (Node, error) {
	if field == "" {
		return Node{}, fmt.Errorf("filter field is required")
	}
	if value == "" {
		return Node{}, fmt.Errorf("filter value is required for field %q", field)
	}
	return Node{field: field, operator: op, value: value}, nil
}

// NewAnd creates an $and combinator. A single child collapses to itself.
func NewAnd(children ...Node) (Node, error) {
	return newCombinator(CombAnd, children)
}

// NewOr creates an $or combinator. A single child collapses to itself.
func NewOr(children ...Node) (Node, error) {
	return newCombinator(CombOr, children)
}

func newCombinator(comb string, children []Node) (Node, error) {
	if len(children) == 0 {
		return Node{}, fmt.Errorf("%s requires at least one child", comb)
	}
	if len(children) == 1 {
		return children[0], nil
	}
	return Node{combinator: comb, children: children}, nil
}

// IsLeaf reports whether the node is a single-field condition.
func (n Node) IsLeaf() bool { return n.combinator == "" }

// IsZero reports whether the node is the empty value (no filter).
func (n Node) IsZero() bool { return n.combinator == "" && n.field == "" }

// Field returns the leaf field name.
func (n Node) Field() string { return n.field }

// Operator returns the leaf operator ($contains or $equals).
func (n Node) Operator() string { return n.operator }

// Value returns the leaf match value.
func (n Node) Value() string { return n.value }

// Combinator returns $and or $or for combinator nodes, "" for leaves.
func (n Node) Combinator() string { return n.combinator }

// Children returns the combinator children.
func (n Node) Children() []Node { return n.children }

// Leaves returns every leaf condition in the tree, depth-first.
func (n Node) Leaves() []Node {
	if n.IsZero() {
		return nil
	}
	if n.IsLeaf() {
		return []Node{n}
	}
	var out []Node
	for _, c := range n.children {
		out = append(out, c.Leaves()...)
	}
	return out
}

// MarshalJSON emits the Attio wire shape:
//
//	leaf:       {"name": {"$contains": "acme"}}
//	combinator: {"$and": [child, child, ...]}
func (n Node) MarshalJSON() ([]byte, error) {
	if n.IsZero() {
		return []byte("{}"), nil
	}
	if n.IsLeaf() {
		return json.Marshal(map[string]map[string]string{
			n.field: {n.operator: n.value},
		})
	}
	return json.Marshal(map[string][]Node{
		n.combinator: n.children,
	})
}

// Equal reports structural equality. Combinator children compare as sets:
// the builder makes no ordering promise within an OR group, and conjunction
// is order-free in the query language.
func (n Node) Equal(other Node) bool {
	return n.canonical() == other.canonical()
}

// canonical renders a deterministic string form with sorted combinator
// children, so set comparison reduces to string comparison.
func (n Node) canonical() string {
	if n.IsZero() {
		return "{}"
	}
	if n.IsLeaf() {
		return fmt.Sprintf("%s %s %q", n.field, n.operator, n.value)
	}
	parts := make([]string, len(n.children))
	for i, c := range n.children {
		parts[i] = c.canonical()
	}
	sort.Strings(parts)
	return n.combinator + "(" + strings.Join(parts, ", ") + ")"
}

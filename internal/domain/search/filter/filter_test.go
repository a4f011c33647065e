package filter

import (
	"encoding/json"
	"strings"
	"testing"
)

// --- Leaf tests ---

func TestNewContains_Valid(t *testing.T) {
	n, err := NewContains("name", "acme")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !n.IsLeaf() {
		t.Error("IsLeaf() = false")
	}
	if n.Field() != "name" {
		t.Errorf("Field() = %q", n.Field())
	}
	if n.Operator() != OpContains {
		t.Errorf("Operator() = %q", n.Operator())
	}
	if n.Value() != "acme" {
		t.Errorf("Value() = %q", n.Value())
	}
}

func TestNewEquals_Valid(t *testing.T) {
	n, err := NewEquals("email_addresses", "a@b.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Operator() != OpEquals {
		t.Errorf("Operator() = %q", n.Operator())
	}
}

func TestNewContains_EmptyField(t *testing.T) {
	_, err := NewContains("", "x")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "field is required") {
		t.Errorf("error = %q", err)
	}
}

func TestNewContains_EmptyValue(t *testing.T) {
	_, err := NewContains("name", "")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "value is required") {
		t.Errorf("error = %q", err)
	}
}

// --- Combinator tests ---

func TestNewAnd_CollapsesSingleChild(t *testing.T) {
	leaf, _ := NewContains("name", "x")
	n, err := NewAnd(leaf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !n.IsLeaf() {
		t.Error("single-child $and should collapse to the child")
	}
}

func TestNewOr_NoChildren(t *testing.T) {
	_, err := NewOr()
	if err == nil {
		t.Fatal("expected error for empty $or")
	}
	if !strings.Contains(err.Error(), "at least one child") {
		t.Errorf("error = %q", err)
	}
}

func TestLeaves_DepthFirst(t *testing.T) {
	a, _ := NewContains("name", "a")
	b, _ := NewContains("domains", "b")
	c, _ := NewContains("name", "c")
	or1, _ := NewOr(a, b)
	and, _ := NewAnd(or1, c)

	leaves := and.Leaves()
	if len(leaves) != 3 {
		t.Fatalf("Leaves() len = %d, want 3", len(leaves))
	}
}

// --- Wire format tests ---

func TestMarshalJSON_Leaf(t *testing.T) {
	n, _ := NewContains("name", "acme")
	b, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"name":{"$contains":"acme"}}`
	if string(b) != want {
		t.Errorf("json = %s, want %s", b, want)
	}
}

func TestMarshalJSON_Tree(t *testing.T) {
	a, _ := NewContains("name", "acme")
	b, _ := NewContains("domains", "acme")
	or, _ := NewOr(a, b)
	e, _ := NewEquals("email_addresses", "x@acme.com")
	top, _ := NewOr(e, or)

	data, err := json.Marshal(top)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("round trip: %v", err)
	}
	children, ok := decoded["$or"].([]any)
	if !ok {
		t.Fatalf("top-level key missing $or: %s", data)
	}
	if len(children) != 2 {
		t.Errorf("$or children = %d, want 2", len(children))
	}
	// Operator vocabulary is a provider contract.
	for _, op := range []string{"$or", "$contains", "$equals"} {
		if !strings.Contains(string(data), op) {
			t.Errorf("wire form missing %s: %s", op, data)
		}
	}
}

func TestMarshalJSON_Zero(t *testing.T) {
	var n Node
	b, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "{}" {
		t.Errorf("json = %s, want {}", b)
	}
}

// --- Equality tests ---

func TestEqual_OrderInsensitiveChildren(t *testing.T) {
	a, _ := NewContains("name", "a")
	b, _ := NewContains("domains", "b")

	or1, _ := NewOr(a, b)
	or2, _ := NewOr(b, a)
	if !or1.Equal(or2) {
		t.Error("$or with reordered children should be equal")
	}
}

func TestEqual_DifferentValues(t *testing.T) {
	a, _ := NewContains("name", "a")
	b, _ := NewContains("name", "b")
	if a.Equal(b) {
		t.Error("different leaf values should not be equal")
	}
}

func TestEqual_NestedTrees(t *testing.T) {
	mk := func(order bool) Node {
		a, _ := NewContains("name", "acme")
		b, _ := NewContains("domains", "acme")
		c, _ := NewContains("name", "corp")
		d, _ := NewContains("domains", "corp")
		var or1, or2 Node
		if order {
			or1, _ = NewOr(a, b)
			or2, _ = NewOr(c, d)
		} else {
			or1, _ = NewOr(b, a)
			or2, _ = NewOr(d, c)
		}
		and, _ := NewAnd(or1, or2)
		return and
	}
	if !mk(true).Equal(mk(false)) {
		t.Error("structurally identical trees should be equal")
	}
}

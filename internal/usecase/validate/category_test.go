package validate

import (
	"reflect"
	"strings"
	"testing"

	"github.com/kailas-cloud/attiodex/internal/domain/resource"
)

func newValidator() *CategoryValidator {
	return NewCategoryValidator(resource.CompanyCategories)
}

func TestValidate_CaseNormalized(t *testing.T) {
	result := newValidator().Validate("technology")

	if !result.IsValid {
		t.Fatalf("IsValid = false, errors = %v", result.Errors)
	}
	if !result.AutoConverted {
		t.Error("bare string input must set AutoConverted")
	}
	if !reflect.DeepEqual(result.ValidatedCategories, []string{"Technology"}) {
		t.Errorf("ValidatedCategories = %v", result.ValidatedCategories)
	}
}

func TestValidate_DidYouMean(t *testing.T) {
	result := newValidator().Validate("Tecnology")

	if result.IsValid {
		t.Fatal("IsValid = true for a typo")
	}
	if len(result.Suggestions) == 0 || result.Suggestions[0] != "Technology" {
		t.Errorf("Suggestions = %v, want Technology first", result.Suggestions)
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "Did you mean") {
		t.Errorf("Errors = %v, want a did-you-mean message", result.Errors)
	}
}

func TestValidate_NothingCloseGetsFullList(t *testing.T) {
	result := newValidator().Validate("Quuxified Zorbnax")

	if result.IsValid {
		t.Fatal("IsValid = true for garbage input")
	}
	if len(result.Suggestions) != 0 {
		t.Errorf("Suggestions = %v, want none", result.Suggestions)
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "Valid categories are:") {
		t.Errorf("Warnings = %v, want the full valid list", result.Warnings)
	}
}

func TestValidate_DeduplicatesCaseInsensitively(t *testing.T) {
	result := newValidator().Validate([]string{"Technology", "technology", "TECHNOLOGY"})

	if !result.IsValid {
		t.Fatalf("IsValid = false, errors = %v", result.Errors)
	}
	if !reflect.DeepEqual(result.ValidatedCategories, []string{"Technology"}) {
		t.Errorf("ValidatedCategories = %v, want deduplicated [Technology]", result.ValidatedCategories)
	}
	if result.AutoConverted {
		t.Error("array input must not set AutoConverted")
	}
}

func TestValidate_MixedValidAndTypo(t *testing.T) {
	result := newValidator().Validate([]string{"SaaS", "Helthcare"})

	if result.IsValid {
		t.Fatal("IsValid = true with a typo present")
	}
	if !reflect.DeepEqual(result.ValidatedCategories, []string{"SaaS"}) {
		t.Errorf("ValidatedCategories = %v", result.ValidatedCategories)
	}
	if len(result.Suggestions) == 0 || result.Suggestions[0] != "Health Care" {
		t.Errorf("Suggestions = %v, want Health Care", result.Suggestions)
	}
}

func TestValidate_NoOps(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"nil", nil},
		{"empty string slice", []string{}},
		{"empty any slice", []any{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := newValidator().Validate(tt.input)
			if !result.IsValid {
				t.Errorf("IsValid = false, errors = %v", result.Errors)
			}
			if len(result.ValidatedCategories) != 0 {
				t.Errorf("ValidatedCategories = %v, want none", result.ValidatedCategories)
			}
		})
	}
}

func TestValidate_TypeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"number", 42},
		{"bool", true},
		{"map", map[string]string{"a": "b"}},
		{"array with non-string", []any{"Technology", 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := newValidator().Validate(tt.input)
			if result.IsValid {
				t.Fatal("IsValid = true for wrong type")
			}
			if len(result.Errors) == 0 {
				t.Error("want a type error")
			}
		})
	}
}

func TestValidate_AnySliceOfStrings(t *testing.T) {
	// JSON-decoded arrays arrive as []any.
	result := newValidator().Validate([]any{"retail", "SAAS"})

	if !result.IsValid {
		t.Fatalf("IsValid = false, errors = %v", result.Errors)
	}
	if !reflect.DeepEqual(result.ValidatedCategories, []string{"Retail", "SaaS"}) {
		t.Errorf("ValidatedCategories = %v", result.ValidatedCategories)
	}
}

func TestSuggest_CapsCount(t *testing.T) {
	v := NewCategoryValidator([]string{"aaa", "aab", "aac", "aad", "aae"})
	got := v.suggest("aaz")
	if len(got) > MaxSuggestions {
		t.Errorf("suggest returned %d values, cap is %d", len(got), MaxSuggestions)
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"technology", "technology", 0},
		{"tecnology", "technology", 1},
		{"kitten", "sitting", 3},
		{"héllo", "hello", 1},
	}
	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

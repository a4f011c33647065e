package search

import (
	"reflect"
	"testing"
)

func TestExtract_EmailRemovedFromWords(t *testing.T) {
	ext := Extract("reach out to jane.doe@acme.com about renewal")

	if len(ext.Emails) != 1 || ext.Emails[0] != "jane.doe@acme.com" {
		t.Fatalf("Emails = %v", ext.Emails)
	}
	for _, w := range ext.Words {
		if w == "jane.doe@acme.com" {
			t.Error("email re-tokenized as a plain word")
		}
	}
	want := []string{"reach", "out", "to", "about", "renewal"}
	if !reflect.DeepEqual(ext.Words, want) {
		t.Errorf("Words = %v, want %v", ext.Words, want)
	}
}

func TestExtract_PhoneVariants(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "e164 with plus",
			query: "+14155551234",
			want:  []string{"+14155551234", "14155551234", "4155551234"},
		},
		{
			name:  "bare ten digits",
			query: "4155551234",
			want:  []string{"4155551234", "+14155551234", "14155551234"},
		},
		{
			name:  "eleven digits leading one",
			query: "14155551234",
			want:  []string{"+14155551234", "14155551234", "4155551234"},
		},
		{
			name:  "formatted with separators",
			query: "(415) 555-1234",
			want:  []string{"4155551234", "+14155551234", "14155551234"},
		},
		{
			name:  "international plus without nanp code",
			query: "+442071234567",
			want:  []string{"+442071234567", "442071234567"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ext := Extract(tt.query)
			if len(ext.Phones) != 1 {
				t.Fatalf("Phones = %v, want one candidate", ext.Phones)
			}
			if !reflect.DeepEqual(ext.Phones[0].Variants, tt.want) {
				t.Errorf("Variants = %v, want %v", ext.Phones[0].Variants, tt.want)
			}
			if len(ext.Phones[0].Variants) < 2 {
				t.Error("every phone candidate needs at least two normalized variants")
			}
		})
	}
}

func TestExtract_ShortDigitRunStaysText(t *testing.T) {
	ext := Extract("suite 42000")
	if len(ext.Phones) != 0 {
		t.Errorf("Phones = %v, want none for short digit run", ext.Phones)
	}
	if len(ext.Words) != 2 {
		t.Errorf("Words = %v", ext.Words)
	}
}

func TestExtract_BlankQuery(t *testing.T) {
	for _, q := range []string{"", "   ", "\t\n"} {
		ext := Extract(q)
		if !ext.IsEmpty() {
			t.Errorf("Extract(%q).IsEmpty() = false", q)
		}
	}
}

func TestExtract_MixedQuery(t *testing.T) {
	ext := Extract("Alex Rivera alex@example.org +1 415 555 0100 followup")

	if len(ext.Emails) != 1 {
		t.Fatalf("Emails = %v", ext.Emails)
	}
	if len(ext.Phones) != 1 {
		t.Fatalf("Phones = %v", ext.Phones)
	}
	want := []string{"Alex", "Rivera", "followup"}
	if !reflect.DeepEqual(ext.Words, want) {
		t.Errorf("Words = %v, want %v", ext.Words, want)
	}
}

func TestExtract_CasePreserved(t *testing.T) {
	ext := Extract("Example Medical Group Oregon")
	want := []string{"Example", "Medical", "Group", "Oregon"}
	if !reflect.DeepEqual(ext.Words, want) {
		t.Errorf("Words = %v, want %v (no case normalization)", ext.Words, want)
	}
}

package resource

import "testing"

func fieldNames(fields []FieldCandidate) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Name
	}
	return out
}

func TestSearchFields_KnownResources(t *testing.T) {
	tests := []struct {
		rt   Type
		want []string
	}{
		{People, []string{"name", "email_addresses", "phone_numbers"}},
		{Companies, []string{"name", "domains"}},
		{Tasks, []string{"content"}},
		{Deals, []string{"name"}},
	}
	for _, tt := range tests {
		t.Run(tt.rt.Slug(), func(t *testing.T) {
			got := fieldNames(SearchFields(tt.rt))
			if len(got) != len(tt.want) {
				t.Fatalf("fields = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("field %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSearchFields_CustomObjectFallsBackToName(t *testing.T) {
	fields := SearchFields(Type("projects"))
	if len(fields) != 1 || fields[0].Name != "name" || fields[0].Kind != TextField {
		t.Errorf("custom object fields = %v, want single name text field", fields)
	}
}

func TestFieldKindHelpers(t *testing.T) {
	if got := fieldNames(TextFields(People)); len(got) != 1 || got[0] != "name" {
		t.Errorf("people text fields = %v, want [name]", got)
	}
	if got := fieldNames(EmailFields(People)); len(got) != 1 || got[0] != "email_addresses" {
		t.Errorf("people email fields = %v, want [email_addresses]", got)
	}
	if got := fieldNames(PhoneFields(People)); len(got) != 1 || got[0] != "phone_numbers" {
		t.Errorf("people phone fields = %v, want [phone_numbers]", got)
	}
	if got := EmailFields(Companies); len(got) != 0 {
		t.Errorf("companies email fields = %v, want none", got)
	}
	if got := fieldNames(TextFields(Companies)); len(got) != 2 {
		t.Errorf("companies text fields = %v, want name and domains", got)
	}
}

func TestPrimaryField(t *testing.T) {
	tests := []struct {
		rt   Type
		want string
	}{
		{People, "name"},
		{Companies, "name"},
		{Tasks, "content"},
		{Type("projects"), "name"},
	}
	for _, tt := range tests {
		if got := PrimaryField(tt.rt); got != tt.want {
			t.Errorf("PrimaryField(%s) = %q, want %q", tt.rt, got, tt.want)
		}
	}
}

func TestIsCombinedNamePair(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want bool
	}{
		{"pair", []string{"first_name", "last_name"}, true},
		{"first only", []string{"first_name"}, true},
		{"case insensitive", []string{"First_Name", "LAST_NAME"}, true},
		{"with full name", []string{"name", "first_name"}, false},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCombinedNamePair(tt.keys); got != tt.want {
				t.Errorf("IsCombinedNamePair(%v) = %v, want %v", tt.keys, got, tt.want)
			}
		})
	}
}

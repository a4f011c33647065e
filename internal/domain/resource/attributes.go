package resource

import "strings"

// aliasTables maps human-friendly attribute names to Attio API slugs, per
// resource type. Several aliases may map to the same slug; the collision
// detector in usecase/validate rejects payloads that use more than one of
// them at once.
var aliasTables = map[Type]map[string]string{
	Companies: {
		"name":         "name",
		"company_name": "name",
		"domain":       "domains",
		"domains":      "domains",
		"website":      "domains",
		"url":          "domains",
		"description":  "description",
		"categories":   "categories",
		"category":     "categories",
		"industry":     "categories",
		"employees":    "employee_range",
	},
	People: {
		"name":          "name",
		"full_name":     "name",
		"first_name":    "name",
		"last_name":     "name",
		"email":         "email_addresses",
		"emails":        "email_addresses",
		"email_address": "email_addresses",
		"phone":         "phone_numbers",
		"phones":        "phone_numbers",
		"phone_number":  "phone_numbers",
		"title":         "title",
		"job_title":     "title",
	},
	Deals: {
		"name":       "name",
		"deal_name":  "name",
		"stage":      "stage",
		"deal_stage": "stage",
		"value":      "value",
		"amount":     "value",
		"owner":      "owner",
	},
	Tasks: {
		"content":  "content",
		"title":    "content",
		"deadline": "deadline_at",
		"due_date": "deadline_at",
		"assignee": "assignees",
	},
}

// CanonicalSlug resolves an input attribute name to its Attio API slug.
// Unknown names pass through lowercased: custom attributes are addressed by
// their exact slug.
func CanonicalSlug(t Type, name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	if table, ok := aliasTables[t]; ok {
		if slug, ok := table[key]; ok {
			return slug
		}
	}
	return key
}

// CombinedNameParts are the person attributes allowed to co-map onto "name".
// first_name + last_name is the one sanctioned collision: the pair is merged
// into a single full name before the API call.
var CombinedNameParts = []string{"first_name", "last_name"}

// IsCombinedNamePair reports whether the given keys are a non-empty subset of
// CombinedNameParts.
func IsCombinedNamePair(keys []string) bool {
	if len(keys) == 0 {
		return false
	}
	for _, k := range keys {
		lower := strings.ToLower(k)
		sanctioned := false
		for _, part := range CombinedNameParts {
			if lower == part {
				sanctioned = true
				break
			}
		}
		if !sanctioned {
			return false
		}
	}
	return true
}

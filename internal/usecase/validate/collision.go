package validate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kailas-cloud/attiodex/internal/domain"
	"github.com/kailas-cloud/attiodex/internal/domain/resource"
)

// CollisionError reports payload keys that all map to one canonical
// attribute slug. The message names every offending key and recommends a
// single canonical one; validation runs before any remote call.
type CollisionError struct {
	Slug string
	Keys []string
}

func (e *CollisionError) Error() string {
	quoted := make([]string, len(e.Keys))
	for i, k := range e.Keys {
		quoted[i] = fmt.Sprintf("%q", k)
	}
	return fmt.Sprintf(
		"%s: keys %s all map to attribute %q; use %q only",
		domain.ErrFieldCollision.Error(), strings.Join(quoted, ", "), e.Slug, e.Slug,
	)
}

func (e *CollisionError) Unwrap() error { return domain.ErrFieldCollision }

// CheckFieldCollisions rejects payloads where multiple input keys resolve to
// the same canonical attribute (e.g. domain, website, and url all map to
// domains). The one sanctioned co-occurrence is first_name + last_name on
// people, which merge into the combined name attribute.
func CheckFieldCollisions(rt resource.Type, payload map[string]any) error {
	bySlug := map[string][]string{}
	for key := range payload {
		slug := resource.CanonicalSlug(rt, key)
		bySlug[slug] = append(bySlug[slug], key)
	}

	slugs := make([]string, 0, len(bySlug))
	for slug := range bySlug {
		slugs = append(slugs, slug)
	}
	sort.Strings(slugs)

	for _, slug := range slugs {
		keys := bySlug[slug]
		if len(keys) < 2 {
			continue
		}
		if rt == resource.People && slug == "name" && resource.IsCombinedNamePair(keys) {
			continue
		}
		sort.Strings(keys)
		return &CollisionError{Slug: slug, Keys: keys}
	}
	return nil
}

// NormalizePayload checks collisions and rewrites input keys to canonical
// API slugs. first_name/last_name pairs are merged into a single name value.
func NormalizePayload(rt resource.Type, payload map[string]any) (map[string]any, error) {
	if err := CheckFieldCollisions(rt, payload); err != nil {
		return nil, err
	}

	out := make(map[string]any, len(payload))
	var firstName, lastName string
	for key, value := range payload {
		lower := strings.ToLower(strings.TrimSpace(key))
		if rt == resource.People && (lower == "first_name" || lower == "last_name") {
			s, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s must be a string, got %T", domain.ErrInvalidInput, lower, value)
			}
			if lower == "first_name" {
				firstName = s
			} else {
				lastName = s
			}
			continue
		}
		out[resource.CanonicalSlug(rt, key)] = value
	}

	if firstName != "" || lastName != "" {
		out["name"] = strings.TrimSpace(strings.TrimSpace(firstName) + " " + strings.TrimSpace(lastName))
	}

	return out, nil
}

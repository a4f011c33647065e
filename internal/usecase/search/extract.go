package search

import (
	"regexp"
	"strings"
)

// minPhoneDigits is the minimum digit count for a match to qualify as a
// phone candidate; shorter runs stay in the free-text pool.
const minPhoneDigits = 7

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`\+?[0-9][0-9 ().\-/]{4,}[0-9]`)
	digitsOnly   = regexp.MustCompile(`[^0-9]`)
)

// PhoneCandidate is one phone-like match with its normalized variants.
// The remote field may store the number in any shape (E.164, bare digits,
// with or without country code), so every variant is tried as an independent
// $contains alternative.
type PhoneCandidate struct {
	Raw      string
	Variants []string
}

// Extraction is a query split into structured candidates. Matched email and
// phone substrings are removed from the text pool before word tokenization,
// so they are never re-tokenized as plain words.
type Extraction struct {
	Emails []string
	Phones []PhoneCandidate
	Words  []string
}

// IsEmpty reports whether nothing was extracted (blank or whitespace-only
// input). The builder treats this as the signal for the legacy single-field
// fallback.
func (e Extraction) IsEmpty() bool {
	return len(e.Emails) == 0 && len(e.Phones) == 0 && len(e.Words) == 0
}

// Extract splits a raw query into emails, phone candidates, and remaining
// free-text words. No case or punctuation normalization is applied beyond
// phone digit stripping: field-side $contains matching is case-insensitive
// on the provider.
func Extract(query string) Extraction {
	var ext Extraction
	rest := query

	for _, m := range emailPattern.FindAllString(rest, -1) {
		ext.Emails = append(ext.Emails, m)
	}
	rest = emailPattern.ReplaceAllString(rest, " ")

	for _, m := range phonePattern.FindAllString(rest, -1) {
		digits := digitsOnly.ReplaceAllString(m, "")
		if len(digits) < minPhoneDigits {
			continue
		}
		ext.Phones = append(ext.Phones, PhoneCandidate{
			Raw:      strings.TrimSpace(m),
			Variants: phoneVariants(m, digits),
		})
		rest = strings.Replace(rest, m, " ", 1)
	}

	ext.Words = strings.Fields(rest)
	return ext
}

// phoneVariants produces the normalized shapes of one phone match:
// E.164 with plus, digits-only with country code, digits-only without.
// Bare 10-digit numbers additionally get a US country-code variant, since
// the store may hold either form for NANP numbers.
func phoneVariants(raw, digits string) []string {
	hasPlus := strings.HasPrefix(strings.TrimSpace(raw), "+")

	var variants []string
	add := func(v string) {
		for _, existing := range variants {
			if existing == v {
				return
			}
		}
		variants = append(variants, v)
	}

	switch {
	case hasPlus:
		add("+" + digits)
		add(digits)
		if stripped := stripCountryCode(digits); stripped != "" {
			add(stripped)
		}
	case len(digits) == 11 && digits[0] == '1':
		add("+" + digits)
		add(digits)
		add(digits[1:])
	case len(digits) == 10:
		add(digits)
		add("+1" + digits)
		add("1" + digits)
	default:
		add(digits)
		add("+" + digits)
	}
	return variants
}

// stripCountryCode removes a recognized leading country code from an
// international number, returning "" when no confident split exists.
// Only the NANP prefix is recognized; other country codes are ambiguous
// without a full numbering-plan table.
func stripCountryCode(digits string) string {
	if len(digits) == 11 && digits[0] == '1' {
		return digits[1:]
	}
	return ""
}

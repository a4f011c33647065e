package search

import (
	"sort"
	"strings"

	"github.com/kailas-cloud/attiodex/internal/domain/record"
)

// Match ranks, best to worst. A record's rank is the best rank any of its
// field values achieves against the raw query.
const (
	rankExact     = 3
	rankPrefix    = 2
	rankSubstring = 1
	rankNone      = 0
)

// ScoreResults reorders results by how well they match the original query:
// exact > prefix > substring > none. The sort is stable, so records with
// equal rank keep provider order. Scoring only reorders; it never changes
// which records are returned.
func ScoreResults(results []record.Record, rawQuery string) []record.Record {
	needle := strings.ToLower(strings.TrimSpace(rawQuery))
	if needle == "" || len(results) < 2 {
		return results
	}

	type rankedRecord struct {
		rec  record.Record
		rank int
	}
	ranked := make([]rankedRecord, len(results))
	for i, r := range results {
		ranked[i] = rankedRecord{rec: r, rank: scoreRecord(r, needle)}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].rank > ranked[j].rank
	})
	out := make([]record.Record, len(ranked))
	for i, rr := range ranked {
		out[i] = rr.rec
	}
	return out
}

// scoreRecord returns the best rank over every field value of the record.
func scoreRecord(r record.Record, needle string) int {
	best := rankNone
	for _, values := range r.Values() {
		for _, v := range values {
			if rank := scoreValue(v, needle); rank > best {
				best = rank
				if best == rankExact {
					return best
				}
			}
		}
	}
	return best
}

func scoreValue(value, needle string) int {
	haystack := strings.ToLower(strings.TrimSpace(value))
	switch {
	case haystack == needle:
		return rankExact
	case strings.HasPrefix(haystack, needle):
		return rankPrefix
	case strings.Contains(haystack, needle):
		return rankSubstring
	default:
		return rankNone
	}
}

// Package stats derives cumulative staffing statistics from the full
// multi-day schedule snapshot. Every function is a full rescan of the
// snapshot; nothing is cached or incrementally updated, so calls are
// idempotent and safely re-entrant.
package stats

import "sort"

// KeyCount is one labelled bucket of an ordered histogram.
type KeyCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// tally counts string keys while remembering first-seen order, which is
// the tie-break order for every ranking in this package.
type tally struct {
	counts map[string]int
	order  []string
}

func newTally() *tally {
	return &tally{counts: make(map[string]int)}
}

func (t *tally) Add(key string) {
	if _, seen := t.counts[key]; !seen {
		t.order = append(t.order, key)
	}
	t.counts[key]++
}

func (t *tally) Count(key string) int {
	return t.counts[key]
}

// Ranked returns the buckets sorted by descending count; equal counts keep
// first-seen order.
func (t *tally) Ranked() []KeyCount {
	ranked := make([]KeyCount, len(t.order))
	for i, key := range t.order {
		ranked[i] = KeyCount{Key: key, Count: t.counts[key]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

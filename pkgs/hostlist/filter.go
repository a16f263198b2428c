package hostlist

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Filter returns the entries whose alias or hostname fuzzy-matches query,
// closest match first. Entries with equal distance keep their list order.
// An empty query returns the list unchanged.
func (l *List) Filter(query string) *List {
	query = strings.TrimSpace(query)
	if query == "" {
		return l
	}

	// Two candidates per entry: alias at 2i, hostname at 2i+1.
	targets := make([]string, 0, 2*len(l.Entries))
	for _, e := range l.Entries {
		targets = append(targets, e.Alias, e.Hostname)
	}

	best := make(map[int]int)
	for _, rank := range fuzzy.RankFindFold(query, targets) {
		idx := rank.OriginalIndex / 2
		if d, seen := best[idx]; !seen || rank.Distance < d {
			best[idx] = rank.Distance
		}
	}

	matched := make([]int, 0, len(best))
	for idx := range best {
		matched = append(matched, idx)
	}
	sort.Slice(matched, func(i, j int) bool {
		di, dj := best[matched[i]], best[matched[j]]
		if di != dj {
			return di < dj
		}
		return matched[i] < matched[j]
	})

	entries := make([]Entry, 0, len(matched))
	for _, idx := range matched {
		entries = append(entries, l.Entries[idx])
	}
	return &List{Entries: entries, Fallback: l.Fallback}
}

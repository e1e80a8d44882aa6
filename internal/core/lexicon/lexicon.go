// Package lexicon maintains an immutable, ordered view of known fiber names
// and resolves free text queries against it
package lexicon

import (
	"sort"
	"strings"
	"sync"
	"time"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// pool of fresh transformer chains, one per concurrent caller
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			cases.Fold(),                       // unicode case folding
			runes.Remove(runes.In(unicode.Mn)), // strip combining marks
			runes.Remove(runes.In(unicode.Cf)), // strip format chars ZWJ ZWNJ FEFF etc
			width.Fold,                         // map fullwidth forms to ASCII
		)
	},
}

// Normalize folds s to the canonical form used for both stored names and queries
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")

	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	return strings.Join(strings.Fields(ns), " ")
}

// Snapshot is an immutable, timestamped view of all currently known fiber names.
// Names are normalized, unique, and held in lexicographic order so matching is
// deterministic. A Snapshot is never mutated; a new one fully replaces the old
type Snapshot struct {
	names   []string
	takenAt time.Time
}

// NewSnapshot normalizes, dedupes, and sorts names into a Snapshot taken at takenAt
func NewSnapshot(names []string, takenAt time.Time) *Snapshot {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		nn := Normalize(n)
		if nn == "" {
			continue
		}
		if _, dup := seen[nn]; dup {
			continue
		}
		seen[nn] = struct{}{}
		out = append(out, nn)
	}
	sort.Strings(out)
	return &Snapshot{names: out, takenAt: takenAt}
}

// Empty returns a Snapshot with no names taken at takenAt
func Empty(takenAt time.Time) *Snapshot {
	return &Snapshot{takenAt: takenAt}
}

// Len returns the number of names in the snapshot
func (s *Snapshot) Len() int { return len(s.names) }

// TakenAt returns the snapshot creation time
func (s *Snapshot) TakenAt() time.Time { return s.takenAt }

// Age returns how old the snapshot is relative to now
func (s *Snapshot) Age(now time.Time) time.Duration { return now.Sub(s.takenAt) }

// Names returns a copy of the ordered name list
func (s *Snapshot) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Match scans query for the first known name that occurs as a substring,
// iterating names in their stable lexicographic order. The first hit wins,
// so results are reproducible for the same snapshot and query.
//
// Matching is plain substring containment with no word-boundary checks: a
// short name embedded inside a longer unrelated token still matches.
// A blank query is a non-match, never an error
func (s *Snapshot) Match(query string) (string, bool) {
	q := Normalize(query)
	if q == "" {
		return "", false
	}
	for _, name := range s.names {
		if strings.Contains(q, name) {
			return name, true
		}
	}
	return "", false
}

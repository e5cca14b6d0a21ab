package term

import (
	"fmt"
	"sort"

	"github.com/ppiankov/eopulse/internal/model"
)

// Seed is one raw (label, start) pair from the reference source, before
// any ordering or derivation.
type Seed struct {
	Label string
	Start model.Date
}

// Term is one presidential term with all derived fields computed. Terms
// are immutable once the table is built.
type Term struct {
	Label string
	// Ordinal counts terms sharing the same label, 1-based, in
	// chronological order of their starts.
	Ordinal int
	// Start is the inclusive lower boundary; the term runs until the next
	// term's start, or until "now" for the last one.
	Start model.Date
	// EndOffsetDays is the term's duration in days.
	EndOffsetDays int
}

// Key is the composite term identity.
type Key struct {
	Label   string
	Ordinal int
}

func (k Key) String() string {
	return model.TermKeyString(k.Label, k.Ordinal)
}

// Key returns the term's composite identity.
func (t Term) Key() Key {
	return Key{Label: t.Label, Ordinal: t.Ordinal}
}

// Table is the canonical ordered set of terms, sorted ascending by start.
type Table struct {
	terms []Term
}

// NewTable sorts the seeds, assigns per-label ordinals, and derives each
// term's duration from its successor's start (the still-open last term is
// closed against now). Zero seeds is ErrEmptyTable; duplicate starts are
// rejected as malformed rather than resolved by an arbitrary tie-break.
func NewTable(seeds []Seed, now model.Date) (*Table, error) {
	if len(seeds) == 0 {
		return nil, ErrEmptyTable
	}

	sorted := make([]Seed, len(seeds))
	copy(sorted, seeds)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start.Time)
	})

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Start.Equal(sorted[i-1].Start.Time) {
			return nil, &MalformedTermError{
				Label:  sorted[i].Label,
				Raw:    sorted[i].Start.Format("2006-01-02"),
				Reason: fmt.Sprintf("duplicate start shared with %q", sorted[i-1].Label),
			}
		}
	}

	terms := make([]Term, len(sorted))
	ordinals := make(map[string]int, len(sorted))
	for i, s := range sorted {
		ordinals[s.Label]++

		var end int
		if i < len(sorted)-1 {
			end = s.Start.DaysUntil(sorted[i+1].Start)
		} else {
			end = s.Start.DaysUntil(now)
		}

		terms[i] = Term{
			Label:         s.Label,
			Ordinal:       ordinals[s.Label],
			Start:         s.Start,
			EndOffsetDays: end,
		}
	}

	return &Table{terms: terms}, nil
}

// Terms returns the table rows in chronological order. Callers must not
// mutate the returned slice.
func (t *Table) Terms() []Term {
	return t.terms
}

// Len returns the number of terms.
func (t *Table) Len() int {
	return len(t.terms)
}

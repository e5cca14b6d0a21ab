package term

import "github.com/ppiankov/eopulse/internal/model"

// BuildSeries turns a day-offset frequency table into a cumulative series:
// one element per offset from 0 through min(horizonDays, endOffsetDays),
// each the running total of documents signed by that offset. Offsets with
// no documents still produce an element, so the series is monotonically
// non-decreasing with length min(horizonDays, endOffsetDays)+1. A term is
// never extended past its own end, however large the horizon.
func BuildSeries(freq map[int]int, horizonDays, endOffsetDays int) []int {
	last := horizonDays
	if endOffsetDays < last {
		last = endOffsetDays
	}
	if last < 0 {
		return nil
	}

	series := make([]int, last+1)
	running := 0
	for offset := 0; offset <= last; offset++ {
		running += freq[offset]
		series[offset] = running
	}
	return series
}

// Filter narrows which terms get a comparison series.
type Filter struct {
	// Keys is an explicit allow-list; empty means all terms.
	Keys []Key
	// MinStart keeps terms starting at or after it; zero means unbounded.
	MinStart model.Date
	// MaxStart keeps terms starting strictly before it; zero means
	// unbounded.
	MaxStart model.Date
}

func (f Filter) matches(t Term) bool {
	if !f.MinStart.IsZero() && t.Start.Before(f.MinStart.Time) {
		return false
	}
	if !f.MaxStart.IsZero() && !t.Start.Before(f.MaxStart.Time) {
		return false
	}
	if len(f.Keys) == 0 {
		return true
	}
	for _, k := range f.Keys {
		if k == t.Key() {
			return true
		}
	}
	return false
}

// SelectSeries builds the cumulative series for every table term passing
// the filter, in chronological order. An empty selection after narrowing
// is ErrEmptySelection.
func SelectSeries(table *Table, attr *Attribution, filter Filter, horizonDays int) (map[Key][]int, []Term, error) {
	selected := make([]Term, 0, table.Len())
	for _, t := range table.Terms() {
		if filter.matches(t) {
			selected = append(selected, t)
		}
	}
	if len(selected) == 0 {
		return nil, nil, ErrEmptySelection
	}

	series := make(map[Key][]int, len(selected))
	for _, t := range selected {
		series[t.Key()] = BuildSeries(attr.Offsets[t.Key()], horizonDays, t.EndOffsetDays)
	}
	return series, selected, nil
}

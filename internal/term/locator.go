package term

import "github.com/ppiankov/eopulse/internal/model"

// Locate finds the term covering date: the one whose start is the greatest
// start at or before date. A date between two starts belongs to the earlier
// term; a date at or past the last start belongs to the last term. Dates
// before the first start return ErrNoCoveringTerm.
//
// Binary search over the sorted table, O(log n) per call.
func (t *Table) Locate(date model.Date) (Term, error) {
	if len(t.terms) == 0 {
		return Term{}, ErrEmptyTable
	}
	if date.Before(t.terms[0].Start.Time) {
		return Term{}, ErrNoCoveringTerm
	}

	// Invariant: terms[lo].Start <= date; terms above hi start after date.
	lo, hi := 0, len(t.terms)-1
	for lo < hi {
		// Round up so mid never re-tests lo; a window of two would
		// otherwise loop forever.
		mid := lo + (hi-lo+1)/2
		if t.terms[mid].Start.After(date.Time) {
			hi = mid - 1
		} else {
			lo = mid
		}
	}
	return t.terms[lo], nil
}

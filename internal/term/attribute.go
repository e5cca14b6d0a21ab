package term

import (
	"errors"

	"github.com/ppiankov/eopulse/internal/model"
)

// Attribution is the result of assigning a document corpus to terms.
type Attribution struct {
	// Documents holds, per term key, the documents attributed to that
	// term in input order.
	Documents map[Key][]model.Document
	// Offsets holds, per term key, a frequency table: day offset from the
	// term start to the number of documents signed on that offset.
	Offsets map[Key]map[int]int
	// Earliest is the minimum signing date seen across the whole corpus,
	// including unlocated documents. Zero when the corpus is empty.
	Earliest model.Date
	// Unlocated collects documents whose signing date precedes every term
	// start. They are reported, never silently dropped or misattributed.
	Unlocated []model.Document
}

// Total returns the number of documents attributed to key.
func (a *Attribution) Total(key Key) int {
	return len(a.Documents[key])
}

// Attribute assigns every document to its covering term: one Locate call
// per document, then an append to the term's document list and an
// increment of its day-offset frequency table. Lookup failures accumulate
// in Unlocated so one stray record does not abort the run.
func Attribute(docs []model.Document, table *Table) (*Attribution, error) {
	if table.Len() == 0 {
		return nil, ErrEmptyTable
	}

	attr := &Attribution{
		Documents: make(map[Key][]model.Document),
		Offsets:   make(map[Key]map[int]int),
	}

	for _, doc := range docs {
		if attr.Earliest.IsZero() || doc.SigningDate.Before(attr.Earliest.Time) {
			attr.Earliest = doc.SigningDate
		}

		covering, err := table.Locate(doc.SigningDate)
		if err != nil {
			if errors.Is(err, ErrNoCoveringTerm) {
				attr.Unlocated = append(attr.Unlocated, doc)
				continue
			}
			return nil, err
		}

		key := covering.Key()
		offset := covering.Start.DaysUntil(doc.SigningDate)

		attr.Documents[key] = append(attr.Documents[key], doc)
		freq := attr.Offsets[key]
		if freq == nil {
			freq = make(map[int]int)
			attr.Offsets[key] = freq
		}
		freq[offset]++
	}

	return attr, nil
}

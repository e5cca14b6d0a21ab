package model

import (
	"fmt"
	"time"
)

// TermKeyString renders a composite term identity, e.g. "Grover Cleveland
// (term 2)". The ordinal disambiguates non-consecutive terms held by the
// same person.
func TermKeyString(label string, ordinal int) string {
	return fmt.Sprintf("%s (term %d)", label, ordinal)
}

// Report is the complete analysis artifact written by the JSON renderer.
type Report struct {
	GeneratedAt  time.Time  `json:"generated_at"`
	Endpoint     string     `json:"endpoint"`
	CorpusSize   int        `json:"corpus_size"`
	EarliestDate Date       `json:"earliest_document_date"`
	HorizonDays  int        `json:"horizon_days"`
	Terms        []TermStat `json:"terms"`
	Unlocated    []Document `json:"unlocated_documents,omitempty"`

	LLM *LLMSummary `json:"llm,omitempty"`
}

// TermStat is the per-term slice of the report: identity, boundaries, the
// documents attributed to the term, and the cumulative comparison series.
type TermStat struct {
	Label         string     `json:"label"`
	Ordinal       int        `json:"ordinal"`
	Start         Date       `json:"start"`
	EndOffsetDays int        `json:"end_offset_days"`
	Total         int        `json:"total"`
	Series        []int      `json:"series,omitempty"`
	Documents     []Document `json:"documents,omitempty"`
}

// Key renders the composite term identity.
func (t TermStat) Key() string {
	return TermKeyString(t.Label, t.Ordinal)
}

// LLMSummary is the optional narrative. It is generated after all numbers
// are final and never feeds back into them.
type LLMSummary struct {
	Provider  string `json:"provider"`
	Model     string `json:"model"`
	SummaryMD string `json:"summary_md"`
}

package term

import (
	"errors"
	"testing"

	"github.com/ppiankov/eopulse/internal/model"
)

func TestNewTable_OrdinalsAndEndOffsets(t *testing.T) {
	// Deliberately out of chronological order.
	seeds := []Seed{
		{Label: "A", Start: model.MustDate("2025-01-20")},
		{Label: "A", Start: model.MustDate("2017-01-20")},
		{Label: "B", Start: model.MustDate("2021-01-20")},
	}
	now := model.MustDate("2025-06-01")

	table, err := NewTable(seeds, now)
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}

	terms := table.Terms()
	if len(terms) != 3 {
		t.Fatalf("expected 3 terms, got %d", len(terms))
	}

	want := []struct {
		label   string
		ordinal int
		end     int
	}{
		{"A", 1, 1461}, // 2017-01-20 .. 2021-01-20
		{"B", 1, 1461}, // 2021-01-20 .. 2025-01-20
		{"A", 2, 132},  // 2025-01-20 .. now
	}
	for i, w := range want {
		if terms[i].Label != w.label || terms[i].Ordinal != w.ordinal {
			t.Errorf("term %d: got %s ordinal %d, want %s ordinal %d",
				i, terms[i].Label, terms[i].Ordinal, w.label, w.ordinal)
		}
		if terms[i].EndOffsetDays != w.end {
			t.Errorf("term %d: end offset %d, want %d", i, terms[i].EndOffsetDays, w.end)
		}
	}
}

func TestNewTable_OrdinalsIndependentOfInputOrder(t *testing.T) {
	forward := []Seed{
		{Label: "A", Start: model.MustDate("1885-03-04")},
		{Label: "B", Start: model.MustDate("1889-03-04")},
		{Label: "A", Start: model.MustDate("1893-03-04")},
	}
	reversed := []Seed{forward[2], forward[1], forward[0]}
	now := model.MustDate("1897-03-04")

	for name, seeds := range map[string][]Seed{"forward": forward, "reversed": reversed} {
		table, err := NewTable(seeds, now)
		if err != nil {
			t.Fatalf("%s: NewTable: %v", name, err)
		}
		terms := table.Terms()
		if terms[0].Ordinal != 1 || terms[1].Ordinal != 1 || terms[2].Ordinal != 2 {
			t.Errorf("%s: ordinals %d,%d,%d, want 1,1,2",
				name, terms[0].Ordinal, terms[1].Ordinal, terms[2].Ordinal)
		}
	}
}

func TestNewTable_EndOffsetsNeverNegative(t *testing.T) {
	seeds := []Seed{
		{Label: "A", Start: model.MustDate("2017-01-20")},
		{Label: "B", Start: model.MustDate("2021-01-20")},
	}
	table, err := NewTable(seeds, model.MustDate("2021-01-20"))
	if err != nil {
		t.Fatalf("NewTable: %v", err)
	}
	for _, term := range table.Terms() {
		if term.EndOffsetDays < 0 {
			t.Errorf("%s: negative end offset %d", term.Key(), term.EndOffsetDays)
		}
	}
}

func TestNewTable_Empty(t *testing.T) {
	_, err := NewTable(nil, model.MustDate("2025-01-01"))
	if !errors.Is(err, ErrEmptyTable) {
		t.Fatalf("expected ErrEmptyTable, got %v", err)
	}
}

func TestNewTable_DuplicateStart(t *testing.T) {
	seeds := []Seed{
		{Label: "A", Start: model.MustDate("2017-01-20")},
		{Label: "B", Start: model.MustDate("2017-01-20")},
	}
	_, err := NewTable(seeds, model.MustDate("2025-01-01"))

	var malformed *MalformedTermError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedTermError, got %v", err)
	}
	if malformed.Raw != "2017-01-20" {
		t.Errorf("malformed start %q, want 2017-01-20", malformed.Raw)
	}
}

func TestTermKey(t *testing.T) {
	k := Key{Label: "Grover Cleveland", Ordinal: 2}
	if k.String() != "Grover Cleveland (term 2)" {
		t.Errorf("key string %q", k.String())
	}
}

package term

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ppiankov/eopulse/internal/model"
)

func TestBuildSeries_TruncatesAtTermEnd(t *testing.T) {
	freq := map[int]int{0: 2, 5: 1}

	got := BuildSeries(freq, 365, 10)
	want := []int{2, 2, 2, 2, 2, 3, 3, 3, 3, 3, 3}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("series = %v, want %v", got, want)
	}
}

func TestBuildSeries_HorizonCapsLongTerms(t *testing.T) {
	freq := map[int]int{0: 1, 100: 1, 400: 5}

	got := BuildSeries(freq, 365, 1461)
	if len(got) != 366 {
		t.Fatalf("series length = %d, want 366", len(got))
	}
	// Activity past the horizon never shows up.
	if got[365] != 2 {
		t.Errorf("final cumulative = %d, want 2", got[365])
	}
}

func TestBuildSeries_MonotonicWithGaps(t *testing.T) {
	freq := map[int]int{3: 4, 9: 1}

	got := BuildSeries(freq, 365, 12)
	if len(got) != 13 {
		t.Fatalf("series length = %d, want 13", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i] < got[i-1] {
			t.Fatalf("series decreases at offset %d: %v", i, got)
		}
	}
	if got[0] != 0 || got[12] != 5 {
		t.Errorf("series endpoints = %d..%d, want 0..5", got[0], got[12])
	}
}

func TestSelectSeries_FilterByKeyAndDateRange(t *testing.T) {
	table := mustTable(t, []Seed{
		{Label: "A", Start: model.MustDate("2017-01-20")},
		{Label: "B", Start: model.MustDate("2021-01-20")},
		{Label: "A", Start: model.MustDate("2025-01-20")},
	}, "2025-06-01")

	attr, err := Attribute([]model.Document{
		doc("1", "2017-02-01"),
		doc("2", "2021-01-20"),
		doc("3", "2025-02-01"),
	}, table)
	if err != nil {
		t.Fatalf("Attribute: %v", err)
	}

	// Allow-list selects a single term.
	series, selected, err := SelectSeries(table, attr, Filter{
		Keys: []Key{{"B", 1}},
	}, 365)
	if err != nil {
		t.Fatalf("SelectSeries: %v", err)
	}
	if len(selected) != 1 || selected[0].Key() != (Key{"B", 1}) {
		t.Fatalf("selected = %+v, want only B term 1", selected)
	}
	if len(series[Key{"B", 1}]) != 366 {
		t.Errorf("B series length = %d, want 366 (horizon-capped)", len(series[Key{"B", 1}]))
	}

	// Date range: at-or-after min, strictly-before max.
	_, selected, err = SelectSeries(table, attr, Filter{
		MinStart: model.MustDate("2021-01-20"),
		MaxStart: model.MustDate("2025-01-20"),
	}, 365)
	if err != nil {
		t.Fatalf("SelectSeries: %v", err)
	}
	if len(selected) != 1 || selected[0].Label != "B" {
		t.Fatalf("date-range selection = %+v, want only B", selected)
	}
}

func TestSelectSeries_EmptySelection(t *testing.T) {
	table := mustTable(t, []Seed{
		{Label: "A", Start: model.MustDate("2017-01-20")},
	}, "2025-01-01")
	attr, err := Attribute(nil, table)
	if err != nil {
		t.Fatalf("Attribute: %v", err)
	}

	_, _, err = SelectSeries(table, attr, Filter{
		Keys: []Key{{"Nobody", 1}},
	}, 365)
	if !errors.Is(err, ErrEmptySelection) {
		t.Fatalf("expected ErrEmptySelection, got %v", err)
	}
}

func TestSelectSeries_TermWithNoDocumentsStillGetsSeries(t *testing.T) {
	table := mustTable(t, []Seed{
		{Label: "A", Start: model.MustDate("2017-01-20")},
		{Label: "B", Start: model.MustDate("2021-01-20")},
	}, "2021-01-30")

	attr, err := Attribute(nil, table)
	if err != nil {
		t.Fatalf("Attribute: %v", err)
	}

	series, _, err := SelectSeries(table, attr, Filter{}, 365)
	if err != nil {
		t.Fatalf("SelectSeries: %v", err)
	}
	b := series[Key{"B", 1}]
	if len(b) != 11 { // end offset 10 days, offsets 0..10
		t.Fatalf("B series length = %d, want 11", len(b))
	}
	for i, v := range b {
		if v != 0 {
			t.Errorf("offset %d = %d, want 0", i, v)
		}
	}
}

package cli

import (
	"testing"

	"github.com/ppiankov/eopulse/internal/term"
)

func TestParseTermKey(t *testing.T) {
	cases := []struct {
		raw  string
		want term.Key
	}{
		{"Barack Obama", term.Key{Label: "Barack Obama", Ordinal: 1}},
		{"Donald J. Trump:2", term.Key{Label: "Donald J. Trump", Ordinal: 2}},
		{"Grover Cleveland:2", term.Key{Label: "Grover Cleveland", Ordinal: 2}},
	}
	for _, c := range cases {
		got, err := parseTermKey(c.raw)
		if err != nil {
			t.Errorf("parseTermKey(%q): %v", c.raw, err)
			continue
		}
		if got != c.want {
			t.Errorf("parseTermKey(%q) = %+v, want %+v", c.raw, got, c.want)
		}
	}
}

func TestParseTermKey_Invalid(t *testing.T) {
	for _, raw := range []string{"", ":2", "Name:0", "Name:zero"} {
		if _, err := parseTermKey(raw); err == nil {
			t.Errorf("parseTermKey(%q) should fail", raw)
		}
	}
}

package model

import (
	"fmt"
	"strings"
	"time"
)

// Date is a calendar day, held at midnight UTC. The Federal Register API
// serializes dates as "YYYY-MM-DD" with no time component.
type Date struct {
	time.Time
}

// ParseDate parses an ISO "YYYY-MM-DD" date.
func ParseDate(s string) (Date, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{t}, nil
}

// MustDate is a test helper; it panics on malformed input.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// UnmarshalJSON accepts "YYYY-MM-DD" or null.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		d.Time = time.Time{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON renders the date as "YYYY-MM-DD".
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

// DaysUntil returns the whole days from d to other. Negative when other
// precedes d.
func (d Date) DaysUntil(other Date) int {
	return int(other.Sub(d.Time) / (24 * time.Hour))
}

// Document is one presidential document as returned by the Federal Register
// API. The engine only cares about the signing date; everything else is
// passthrough metadata for display.
type Document struct {
	DocumentNumber       string `json:"document_number"`
	ExecutiveOrderNumber string `json:"executive_order_number,omitempty"`
	Title                string `json:"title"`
	SigningDate          Date   `json:"signing_date"`
	PublicationDate      Date   `json:"publication_date,omitempty"`
	HTMLURL              string `json:"html_url,omitempty"`
}

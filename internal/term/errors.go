package term

import (
	"errors"
	"fmt"
)

// ErrEmptyTable is returned when a table is built from zero seeds; no
// lookup is possible against it.
var ErrEmptyTable = errors.New("term table is empty")

// ErrNoCoveringTerm is returned by Locate for dates that precede every
// known term start. Callers filter such dates upstream; the locator only
// guarantees it never misattributes them.
var ErrNoCoveringTerm = errors.New("date precedes the first term start")

// ErrEmptySelection is returned when a series filter matches no terms.
// It is a "no data" condition for the user, not a crash.
var ErrEmptySelection = errors.New("no terms match the requested filter")

// MalformedTermError reports a reference entry that cannot become a table
// row: an unparsable start date or a duplicate start. Construction fails
// fast; no partial table is returned.
type MalformedTermError struct {
	Label  string
	Raw    string
	Reason string
}

func (e *MalformedTermError) Error() string {
	return fmt.Sprintf("malformed term %q (start %q): %s", e.Label, e.Raw, e.Reason)
}

// Package source loads the inaugurations reference table: a mapping from
// president name to the inauguration date of each term they served.
package source

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ppiankov/eopulse/internal/model"
	"github.com/ppiankov/eopulse/internal/term"
)

// startLayout matches the reference file's date format.
const startLayout = "01/02/2006"

// Load reads the reference file at path and returns one seed per term
// start. YAML and JSON are both accepted (extension decides); dates are
// "MM/DD/YYYY". Any unparsable date fails the whole load.
func Load(path string) ([]term.Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read inaugurations file: %w", err)
	}

	var table map[string][]string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &table); err != nil {
			return nil, fmt.Errorf("parse inaugurations yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(raw, &table); err != nil {
			return nil, fmt.Errorf("parse inaugurations json: %w", err)
		}
	}

	var seeds []term.Seed
	for label, starts := range table {
		for _, raw := range starts {
			t, err := time.ParseInLocation(startLayout, raw, time.UTC)
			if err != nil {
				return nil, &term.MalformedTermError{
					Label:  label,
					Raw:    raw,
					Reason: "start date is not MM/DD/YYYY",
				}
			}
			seeds = append(seeds, term.Seed{
				Label: label,
				Start: model.Date{Time: t},
			})
		}
	}
	return seeds, nil
}

// Package render turns a report into terminal output (pterm tables and a
// bar chart) and an optional JSON artifact.
package render

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/ppiankov/eopulse/internal/model"
)

// checkpoints are the day offsets surfaced in the comparison table.
var checkpoints = []int{30, 100, 365}

// Renderer writes reports.
type Renderer struct {
	chart bool
}

// New creates a renderer. chart controls the terminal bar chart.
func New(chart bool) *Renderer {
	return &Renderer{chart: chart}
}

// Terminal prints the per-term comparison table, the optional bar chart,
// and any unlocated-document warnings.
func (r *Renderer) Terminal(report *model.Report) error {
	pterm.DefaultSection.Printf("Executive orders by term (horizon %d days)", report.HorizonDays)

	data := pterm.TableData{
		{"Term", "Start", "Length (days)", "Orders"},
	}
	header := data[0]
	for _, cp := range checkpoints {
		if cp <= report.HorizonDays {
			header = append(header, fmt.Sprintf("By day %d", cp))
		}
	}
	data[0] = header

	for _, t := range report.Terms {
		row := []string{
			t.Key(),
			t.Start.Format("2006-01-02"),
			strconv.Itoa(t.EndOffsetDays),
			strconv.Itoa(t.Total),
		}
		for _, cp := range checkpoints {
			if cp <= report.HorizonDays {
				row = append(row, strconv.Itoa(seriesAt(t.Series, cp)))
			}
		}
		data = append(data, row)
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}

	if r.chart {
		bars := make(pterm.Bars, 0, len(report.Terms))
		for _, t := range report.Terms {
			bars = append(bars, pterm.Bar{
				Label: t.Key(),
				Value: seriesAt(t.Series, report.HorizonDays),
			})
		}
		pterm.DefaultSection.Printf("Cumulative orders within the first %d days", report.HorizonDays)
		if err := pterm.DefaultBarChart.WithHorizontal().WithShowValue().WithBars(bars).Render(); err != nil {
			return fmt.Errorf("render chart: %w", err)
		}
	}

	if n := len(report.Unlocated); n > 0 {
		pterm.Warning.Printf("%d document(s) predate the first known term and were not attributed\n", n)
	}

	if report.LLM != nil {
		pterm.DefaultSection.Println("Summary")
		pterm.Println(report.LLM.SummaryMD)
	}

	return nil
}

// JSON writes the full report artifact to path.
func (r *Renderer) JSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// seriesAt reads the cumulative total at a day offset, clamping past the
// end of a short series (a term that ended before the checkpoint keeps
// its final total).
func seriesAt(series []int, offset int) int {
	if len(series) == 0 {
		return 0
	}
	if offset >= len(series) {
		offset = len(series) - 1
	}
	return series[offset]
}

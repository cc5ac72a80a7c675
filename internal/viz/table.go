package viz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/san-kum/seawater/internal/eos80"
	"github.com/san-kum/seawater/internal/profile"
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(border)).
		Headers(headers...)
}

func formatValue(v float64, precision int) string {
	return strconv.FormatFloat(v, 'g', precision+4, 64)
}

// RenderTable draws every column of p. precision is the number of digits
// shown after the leading four significant figures.
func RenderTable(p *profile.Profile, precision int) string {
	t := newTable(p.Columns...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return Header.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
		})

	for _, row := range p.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = formatValue(v, precision)
		}
		t.Row(cells...)
	}
	return t.String()
}

// RenderSummary lists the summary metrics of a profile in a fixed order.
func RenderSummary(metrics map[string]float64) string {
	keys := []string{"levels", "surface_density", "bottom_density", "max_adiabatic_heating", "sigma_theta_range"}
	var b strings.Builder
	for _, k := range keys {
		v, ok := metrics[k]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "  %s %s\n", MetricLabel.Render(fmt.Sprintf("%-22s", k)), MetricValue.Render(strconv.FormatFloat(v, 'g', 8, 64)))
	}
	return b.String()
}

// RenderChecks draws the reference cases with their outcome.
func RenderChecks(results []eos80.CheckResult) string {
	t := newTable("case", "expected", "computed", "tolerance", "status").
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return Header.Padding(0, 1)
			}
			if col == 4 {
				if results[row].Pass() {
					return base.Inherit(Pass)
				}
				return base.Inherit(Fail)
			}
			return base
		})

	for _, r := range results {
		got := strconv.FormatFloat(r.Got, 'g', 10, 64)
		status := "ok"
		if r.Err != nil {
			got = r.Err.Error()
			status = "error"
		} else if !r.Pass() {
			status = "FAIL"
		}
		t.Row(
			r.Label(),
			strconv.FormatFloat(r.Want, 'g', 10, 64),
			got,
			strconv.FormatFloat(r.Tol, 'g', 3, 64),
			status,
		)
	}
	return t.String()
}

// CompareRow is one integrator's potential temperature result.
type CompareRow struct {
	Integrator string
	Steps      int
	Theta      float64
	Reference  float64
	Elapsed    string
	Err        error
}

// RenderCompare tabulates integrators against the reference result.
func RenderCompare(rows []CompareRow) string {
	t := newTable("integrator", "steps", "theta", "|Δ| vs gill", "time").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return Header.Padding(0, 1)
			}
			if rows[row].Err != nil {
				return lipgloss.NewStyle().Padding(0, 1).Inherit(Fail)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for _, r := range rows {
		if r.Err != nil {
			t.Row(r.Integrator, strconv.Itoa(r.Steps), "error: "+r.Err.Error(), "", "")
			continue
		}
		diff := r.Theta - r.Reference
		if diff < 0 {
			diff = -diff
		}
		t.Row(
			r.Integrator,
			strconv.Itoa(r.Steps),
			strconv.FormatFloat(r.Theta, 'f', 8, 64),
			strconv.FormatFloat(diff, 'e', 2, 64),
			r.Elapsed,
		)
	}
	return t.String()
}

package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/seawater/internal/eos80"
	"github.com/san-kum/seawater/internal/grid"
	"github.com/san-kum/seawater/internal/integrators"
	"github.com/san-kum/seawater/internal/viz"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

type field struct {
	name  string
	label string
	step  float64
}

var fields = []field{
	{"S", "salinity [psu]", 0.1},
	{"T", "temperature [°C]", 0.5},
	{"P", "pressure [dbar]", 100},
	{"PR", "reference [dbar]", 100},
}

type result struct {
	name  string
	value float64
}

type model struct {
	values []float64
	cursor int

	editing bool
	editBuf string

	strict      bool
	integrators []string
	integ       int

	results []result
	err     error
}

// NewCalculator returns a calculator seeded with the given water sample.
func NewCalculator(s, t, p, pr float64, strict bool) *model {
	m := &model{
		values:      []float64{s, t, p, pr},
		strict:      strict,
		integrators: integrators.Names(),
	}
	for i, name := range m.integrators {
		if name == "gill" {
			m.integ = i
		}
	}
	m.recompute()
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if m.editing {
			return m.editKey(msg)
		}
		return m.fieldKey(msg)
	}
	return m, nil
}

func (m model) editKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if v, err := strconv.ParseFloat(m.editBuf, 64); err == nil {
			m.set(v)
		}
		m.editing = false
		m.editBuf = ""
	case "esc":
		m.editing = false
		m.editBuf = ""
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	case "ctrl+c":
		return m, tea.Quit
	default:
		if len(msg.String()) == 1 {
			c := msg.String()[0]
			if (c >= '0' && c <= '9') || c == '.' || c == '-' || c == 'e' {
				m.editBuf += string(c)
			}
		}
	}
	return m, nil
}

func (m model) fieldKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(fields)-1 {
			m.cursor++
		}
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(1)
	case "enter", " ":
		m.editing = true
		m.editBuf = strconv.FormatFloat(m.values[m.cursor], 'g', -1, 64)
	case "s":
		m.strict = !m.strict
		m.recompute()
	case "i":
		m.integ = (m.integ + 1) % len(m.integrators)
		m.recompute()
	}
	return m, nil
}

func (m *model) adjust(dir float64) {
	m.set(m.values[m.cursor] + dir*fields[m.cursor].step)
}

// set replaces the selected value. values is shared between copies of the
// model, so the slice is copied rather than written in place.
func (m *model) set(v float64) {
	values := append([]float64(nil), m.values...)
	values[m.cursor] = v
	m.values = values
	m.recompute()
}

func (m *model) recompute() {
	m.results = nil
	m.err = nil

	s, t, p, pr := grid.Scalar(m.values[0]), grid.Scalar(m.values[1]), grid.Scalar(m.values[2]), grid.Scalar(m.values[3])

	if m.strict {
		if err := eos80.CheckRange(s, t, p); err != nil {
			m.err = err
			return
		}
		if err := eos80.CheckRange(s, t, pr); err != nil {
			m.err = err
			return
		}
	}

	integ, err := integrators.Get(m.integrators[m.integ])
	if err != nil {
		m.err = err
		return
	}
	theta, err := eos80.PtmpWith(integ, 1, s, t, p, pr)
	if err != nil {
		m.err = err
		return
	}
	pden, err := eos80.Dens(s, theta, pr)
	if err != nil {
		m.err = err
		return
	}

	m.results = append(m.results, result{"smow", eos80.Smow(t).Scalar()})
	for _, name := range []string{"dens0", "seck", "dens", "adtg"} {
		args := []*grid.Grid{s, t, p}
		if name == "dens0" {
			args = args[:2]
		}
		out, err := eos80.Call(name, args...)
		if err != nil {
			m.err = err
			m.results = nil
			return
		}
		m.results = append(m.results, result{name, out.Scalar()})
	}
	m.results = append(m.results,
		result{"ptmp", theta.Scalar()},
		result{"pden", pden.Scalar()},
	)
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + cyan.Render("s e a w a t e r") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n\n")

	for i, f := range fields {
		val := fmt.Sprintf("%10.4f", m.values[i])
		if m.editing && i == m.cursor {
			val = fmt.Sprintf("%10s", m.editBuf+"▋")
		}
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-4s", f.name)) + magenta.Render(val) + "  " + dim.Render(f.label) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-4s", f.name)) + dim.Render(val) + "  " + dimmer.Render(f.label) + "\n")
		}
	}

	b.WriteString("\n")
	mode := dim.Render("strict off")
	if m.strict {
		mode = green.Render("strict on")
	}
	b.WriteString("      " + mode + dim.Render("   integrator ") + yellow.Render(m.integrators[m.integ]) + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 40)) + "\n")

	if m.err != nil {
		b.WriteString("      " + viz.Fail.Render(m.err.Error()) + "\n")
	} else {
		for _, r := range m.results {
			b.WriteString("      " + dim.Render(fmt.Sprintf("%-6s", r.name)) +
				white.Render(fmt.Sprintf("%16.8g", r.value)) + "  " + dimmer.Render(eos80.Describe(r.name)) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select  ←→ adjust  enter edit  s strict  i integrator  q quit") + "\n")

	return b.String()
}

// Run starts the calculator full screen and blocks until it exits.
func Run(s, t, p, pr float64, strict bool) error {
	prog := tea.NewProgram(NewCalculator(s, t, p, pr, strict), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}

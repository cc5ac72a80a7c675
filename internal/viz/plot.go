package viz

import (
	"errors"
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/seawater/internal/profile"
)

var (
	ErrUnknownColumn = errors.New("viz: unknown column")
	ErrNoData        = errors.New("viz: no data to plot")
)

type PlotOptions struct {
	Height int
	Width  int
}

func DefaultPlotOptions() PlotOptions {
	return PlotOptions{Height: 10, Width: 80}
}

// Plot draws column against pressure level, surface on the left.
func Plot(p *profile.Profile, column string, opts PlotOptions) (string, error) {
	data := p.Column(column)
	if data == nil {
		return "", fmt.Errorf("%w: %q (available: %v)", ErrUnknownColumn, column, p.Columns)
	}
	if len(data) == 0 {
		return "", ErrNoData
	}

	caption := column + " vs level"
	if pressures := p.Column(profile.ColPressure); len(pressures) > 0 {
		caption = fmt.Sprintf("%s, %g to %g dbar", column, pressures[0], pressures[len(pressures)-1])
	}

	return asciigraph.Plot(data,
		asciigraph.Height(opts.Height),
		asciigraph.Width(opts.Width),
		asciigraph.Caption(caption),
	), nil
}

package profile

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/seawater/internal/config"
	"github.com/san-kum/seawater/internal/eos80"
	"github.com/san-kum/seawater/internal/grid"
	"github.com/san-kum/seawater/internal/integrators"
)

// Column names in table order.
const (
	ColPressure    = "pressure"
	ColSalinity    = "salinity"
	ColTemperature = "temperature"
	ColDens        = "dens"
	ColDens0       = "dens0"
	ColSeck        = "seck"
	ColAdtg        = "adtg"
	ColPtmp        = "ptmp"
	ColPden        = "pden"
	ColSigma       = "sigma"
	ColSigmaTheta  = "sigma_theta"
)

var Columns = []string{
	ColPressure, ColSalinity, ColTemperature,
	ColDens, ColDens0, ColSeck, ColAdtg, ColPtmp, ColPden,
	ColSigma, ColSigmaTheta,
}

// chunkLevels is how many levels are evaluated between cancellation checks.
const chunkLevels = 1024

type Options struct {
	Integrator integrators.Integrator
	Steps      int
	Strict     bool
}

func DefaultOptions() Options {
	return Options{Integrator: integrators.NewGill(), Steps: 1}
}

// Profile is a table of EOS-80 properties, one row per pressure level.
type Profile struct {
	Name      string
	Reference float64
	Columns   []string
	Rows      [][]float64
}

// Build evaluates every column of Columns for each level of cfg.
func Build(ctx context.Context, cfg config.ProfileConfig, opts Options) (*Profile, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.Integrator == nil {
		opts.Integrator = integrators.NewGill()
	}
	if opts.Steps < 1 {
		opts.Steps = 1
	}

	pressures := cfg.Pressures()
	salinity, temperature := cfg.Columns()
	out := &Profile{
		Name:      cfg.Name,
		Reference: cfg.Reference,
		Columns:   append([]string(nil), Columns...),
		Rows:      make([][]float64, 0, len(pressures)),
	}

	for start := 0; start < len(pressures); start += chunkLevels {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		end := start + chunkLevels
		if end > len(pressures) {
			end = len(pressures)
		}
		rows, err := evaluate(salinity[start:end], temperature[start:end], pressures[start:end], cfg.Reference, opts)
		if err != nil {
			return nil, fmt.Errorf("levels %d-%d: %w", start, end-1, err)
		}
		out.Rows = append(out.Rows, rows...)
	}

	return out, nil
}

func evaluate(sv, tv, pv []float64, ref float64, opts Options) ([][]float64, error) {
	s, err := grid.Column(sv...)
	if err != nil {
		return nil, err
	}
	t, err := grid.Column(tv...)
	if err != nil {
		return nil, err
	}
	p, err := grid.Column(pv...)
	if err != nil {
		return nil, err
	}
	pr := grid.Scalar(ref)

	if opts.Strict {
		if err := eos80.CheckRange(s, t, p); err != nil {
			return nil, err
		}
		if err := eos80.CheckRange(s, t, pr); err != nil {
			return nil, err
		}
	}

	dens, err := eos80.Dens(s, t, p)
	if err != nil {
		return nil, err
	}
	dens0, err := eos80.Dens0(s, t)
	if err != nil {
		return nil, err
	}
	seck, err := eos80.Seck(s, t, p)
	if err != nil {
		return nil, err
	}
	adtg, err := eos80.Adtg(s, t, p)
	if err != nil {
		return nil, err
	}

	var ptmp, pden *grid.Grid
	if _, gill := opts.Integrator.(*integrators.Gill); gill && opts.Steps == 1 {
		if ptmp, err = eos80.Ptmp(s, t, p, pr); err != nil {
			return nil, err
		}
		if pden, err = eos80.Pden(s, t, p, pr); err != nil {
			return nil, err
		}
	} else {
		if ptmp, err = eos80.PtmpWith(opts.Integrator, opts.Steps, s, t, p, pr); err != nil {
			return nil, err
		}
		if pden, err = eos80.Dens(s, ptmp, pr); err != nil {
			return nil, err
		}
	}

	rows := make([][]float64, len(pv))
	for i := range rows {
		d, pd := dens.At(i, 0), pden.At(i, 0)
		rows[i] = []float64{
			pv[i], sv[i], tv[i],
			d, dens0.At(i, 0), seck.At(i, 0), adtg.At(i, 0), ptmp.At(i, 0), pd,
			d - 1000, pd - 1000,
		}
	}
	return rows, nil
}

// Column returns the values of the named column, or nil.
func (p *Profile) Column(name string) []float64 {
	idx := p.index(name)
	if idx < 0 {
		return nil
	}
	out := make([]float64, len(p.Rows))
	for i, row := range p.Rows {
		out[i] = row[idx]
	}
	return out
}

func (p *Profile) index(name string) int {
	for i, c := range p.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Summary condenses the profile into named scalars for run metadata.
func (p *Profile) Summary() map[string]float64 {
	if len(p.Rows) == 0 {
		return map[string]float64{}
	}
	dens := p.Column(ColDens)
	ptmp := p.Column(ColPtmp)
	temp := p.Column(ColTemperature)
	sigmaTheta := p.Column(ColSigmaTheta)

	last := len(p.Rows) - 1
	maxHeating := 0.0
	for i := range temp {
		if d := math.Abs(temp[i] - ptmp[i]); d > maxHeating {
			maxHeating = d
		}
	}

	return map[string]float64{
		"levels":                float64(len(p.Rows)),
		"surface_density":       dens[0],
		"bottom_density":        dens[last],
		"max_adiabatic_heating": maxHeating,
		"sigma_theta_range":     sigmaTheta[last] - sigmaTheta[0],
	}
}

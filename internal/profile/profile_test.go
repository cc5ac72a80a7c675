package profile

import (
	"bytes"
	"context"
	"errors"
	"math"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/seawater/internal/config"
	"github.com/san-kum/seawater/internal/eos80"
	"github.com/san-kum/seawater/internal/integrators"
)

func TestBuild_Surface(t *testing.T) {
	p, err := Build(context.Background(), *config.GetPreset("surface"), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "surface", p.Name)
	assert.Equal(t, Columns, p.Columns)
	require.Len(t, p.Rows, 11)

	for _, row := range p.Rows {
		require.Len(t, row, len(Columns))
	}

	dens := p.Column(ColDens)
	dens0 := p.Column(ColDens0)
	assert.Equal(t, dens0[0], dens[0], "dens at zero pressure equals dens0")
	for i := 1; i < len(dens); i++ {
		assert.Greater(t, dens[i], dens[i-1], "density increases with pressure")
	}

	sigma := p.Column(ColSigma)
	assert.InDelta(t, dens[5]-1000, sigma[5], 1e-12)
}

func TestBuild_GoldenCSV(t *testing.T) {
	p, err := Build(context.Background(), *config.GetPreset("surface"), DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, p.WriteCSV(&buf, 8))

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "surface_profile", buf.Bytes())
}

func TestBuild_UnescoCheck(t *testing.T) {
	p, err := Build(context.Background(), *config.GetPreset("unesco_check"), DefaultOptions())
	require.NoError(t, err)

	last := len(p.Rows) - 1
	assert.InDelta(t, 10000, p.Column(ColPressure)[last], 0)
	assert.InDelta(t, 1059.8204, p.Column(ColDens)[last], 1e-3)
	assert.InDelta(t, 36.89073, p.Column(ColPtmp)[last]*eos80.T68Factor, 1e-4)
}

func TestBuild_PerLevelColumns(t *testing.T) {
	cfg := config.ProfileConfig{
		Name:          "cast",
		Salinities:    []float64{34, 34.5, 35},
		Temperatures:  []float64{20, 10, 4},
		PressureStart: 0, PressureStop: 1000, PressureStep: 500,
	}
	p, err := Build(context.Background(), cfg, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []float64{34, 34.5, 35}, p.Column(ColSalinity))
	assert.Equal(t, []float64{20, 10, 4}, p.Column(ColTemperature))
}

func TestBuild_IntegratorChoice(t *testing.T) {
	cfg := *config.GetPreset("deep")

	gill, err := Build(context.Background(), cfg, DefaultOptions())
	require.NoError(t, err)
	rk4, err := Build(context.Background(), cfg, Options{Integrator: integrators.NewRK4(), Steps: 8})
	require.NoError(t, err)
	euler, err := Build(context.Background(), cfg, Options{Integrator: integrators.NewEuler(), Steps: 1})
	require.NoError(t, err)

	g, r, e := gill.Column(ColPtmp), rk4.Column(ColPtmp), euler.Column(ColPtmp)
	last := len(g) - 1
	assert.InDelta(t, g[last], r[last], 1e-5)
	assert.Greater(t, math.Abs(g[last]-e[last]), 1e-5, "euler should visibly differ at depth")
}

func TestBuild_Strict(t *testing.T) {
	cfg := config.ProfileConfig{
		Salinity: 45, Temperature: 10,
		PressureStart: 0, PressureStop: 100, PressureStep: 50,
	}

	_, err := Build(context.Background(), cfg, Options{Strict: true})
	require.ErrorIs(t, err, eos80.ErrOutOfRange)

	p, err := Build(context.Background(), cfg, Options{})
	require.NoError(t, err, "range is only enforced in strict mode")
	assert.Len(t, p.Rows, 3)

	cfg.Salinity = 35
	cfg.Reference = 20000
	_, err = Build(context.Background(), cfg, Options{Strict: true})
	require.ErrorIs(t, err, eos80.ErrOutOfRange)
}

func TestBuild_InvalidConfig(t *testing.T) {
	_, err := Build(context.Background(), config.ProfileConfig{PressureStep: 0}, DefaultOptions())
	require.ErrorIs(t, err, config.ErrInvalid)
}

func TestBuild_RunawayLadderIsRejected(t *testing.T) {
	for _, cfg := range []config.ProfileConfig{
		{Salinity: 35, Temperature: 10, PressureStop: 1e20, PressureStep: 1},
		{Salinity: 35, Temperature: 10, PressureStop: 100, PressureStep: math.NaN()},
	} {
		require.NotPanics(t, func() {
			_, err := Build(context.Background(), cfg, DefaultOptions())
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestBuild_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Build(ctx, *config.GetPreset("surface"), DefaultOptions())
	require.True(t, errors.Is(err, context.Canceled))
}

func TestBuild_ManyLevelsSpanChunks(t *testing.T) {
	cfg := config.ProfileConfig{
		Salinity: 35, Temperature: 5,
		PressureStart: 0, PressureStop: 3000, PressureStep: 1,
	}
	p, err := Build(context.Background(), cfg, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, p.Rows, 3001)
	assert.Equal(t, 2048.0, p.Rows[2048][0])
}

func TestSummary(t *testing.T) {
	p, err := Build(context.Background(), *config.GetPreset("deep"), DefaultOptions())
	require.NoError(t, err)

	s := p.Summary()
	assert.Equal(t, float64(len(p.Rows)), s["levels"])
	assert.Greater(t, s["bottom_density"], s["surface_density"])
	assert.Greater(t, s["max_adiabatic_heating"], 0.0)

	assert.Empty(t, (&Profile{Columns: Columns}).Summary())
}

func TestColumn_Unknown(t *testing.T) {
	p := &Profile{Columns: Columns}
	assert.Nil(t, p.Column("salt"))
}

func TestCSVRoundTrip(t *testing.T) {
	p, err := Build(context.Background(), *config.GetPreset("polar"), DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, p.WriteCSV(&buf, 17))

	back, err := ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, p.Columns, back.Columns)
	assert.Equal(t, p.Rows, back.Rows)
}

func TestReadCSV_Malformed(t *testing.T) {
	for _, in := range []string{"", "pressure,dens\n0,abc\n", "pressure,dens\n0\n"} {
		_, err := ReadCSV(bytes.NewBufferString(in))
		assert.ErrorIs(t, err, ErrMalformed, "input %q", in)
	}
}

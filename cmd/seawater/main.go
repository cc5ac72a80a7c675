package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/seawater/internal/config"
	"github.com/san-kum/seawater/internal/eos80"
	"github.com/san-kum/seawater/internal/grid"
	"github.com/san-kum/seawater/internal/integrators"
	"github.com/san-kum/seawater/internal/profile"
	"github.com/san-kum/seawater/internal/storage"
	"github.com/san-kum/seawater/internal/tui"
	"github.com/san-kum/seawater/internal/viz"
)

var (
	dataDir    string
	configFile string
	verbose    bool
	strict     bool
	precision  int

	// profile
	preset      string
	salinity    float64
	temperature float64
	pStart      float64
	pStop       float64
	pStep       float64
	reference   float64
	integrator  string
	steps       int
	noSave      bool

	compareSample sample
	compareSteps  int
	tuiSample     sample

	// plot
	plotHeight int
	plotWidth  int

	// export-json
	outFile string

	cfg *config.Config
)

var (
	errChecksFailed = errors.New("reference checks failed")
	errBadSteps     = errors.New("steps must be >= 1")
)

// sample is a single water parcel given on the command line.
type sample struct {
	salinity, temperature, pressure, reference float64
}

func (s *sample) register(cmd *cobra.Command, sal, temp, pres float64) {
	cmd.Flags().Float64Var(&s.salinity, "salinity", sal, "salinity [psu]")
	cmd.Flags().Float64Var(&s.temperature, "temperature", temp, "temperature [°C, ITS-90]")
	cmd.Flags().Float64Var(&s.pressure, "pressure", pres, "in-situ pressure [dbar]")
	cmd.Flags().Float64Var(&s.reference, "reference", 0, "reference pressure [dbar]")
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "seawater",
		Short:             "EOS-80 seawater properties",
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "reject inputs outside the EOS-80 range")
	rootCmd.PersistentFlags().IntVar(&precision, "precision", config.DefaultPrecision, "extra significant digits in tables")

	evalCmd := &cobra.Command{
		Use:   "eval [func] [args...]",
		Short: "evaluate one function on grid literals (1,2;3,4)",
		Long: "evaluate one function on grid literals.\n\n" +
			"columns are separated by ',' and rows by ';'; put -- before negative values.\n" +
			"available functions:\n" + functionHelp(),
		Args: cobra.MinimumNArgs(1),
		RunE: evalFunc,
	}

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "build, save and print a vertical profile",
		Args:  cobra.NoArgs,
		RunE:  buildProfile,
	}
	profileCmd.Flags().StringVar(&preset, "preset", "", "use preset water sample")
	profileCmd.Flags().Float64Var(&salinity, "salinity", 35, "salinity [psu]")
	profileCmd.Flags().Float64Var(&temperature, "temperature", 10, "temperature [°C, ITS-90]")
	profileCmd.Flags().Float64Var(&pStart, "pstart", 0, "first pressure [dbar]")
	profileCmd.Flags().Float64Var(&pStop, "pstop", 1000, "last pressure [dbar]")
	profileCmd.Flags().Float64Var(&pStep, "pstep", 100, "pressure step [dbar]")
	profileCmd.Flags().Float64Var(&reference, "reference", 0, "reference pressure [dbar]")
	profileCmd.Flags().StringVar(&integrator, "integrator", config.DefaultIntegrator, "potential temperature integrator")
	profileCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "integrator sub-steps")
	profileCmd.Flags().BoolVar(&noSave, "no-save", false, "print without storing the run")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "print a stored profile",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id] [column]",
		Short: "plot a profile column against pressure",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&plotHeight, "height", viz.DefaultPlotOptions().Height, "plot height")
	plotCmd.Flags().IntVar(&plotWidth, "width", viz.DefaultPlotOptions().Width, "plot width")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outFile, "output", "o", "", "write to file instead of stdout")

	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "verify the published UNESCO check values",
		Args:  cobra.NoArgs,
		RunE:  runChecks,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [integrator1] [integrator2] ...",
		Short: "compare integrators on potential temperature",
		RunE:  compareIntegrators,
	}
	compareSample.register(compareCmd, 40, 40/eos80.T68Factor, 10000)
	compareCmd.Flags().IntVar(&compareSteps, "steps", 1, "integrator sub-steps")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available water sample presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := tuiSample
			return tui.Run(s.salinity, s.temperature, s.pressure, s.reference, strict)
		},
	}
	tuiSample.register(tuiCmd, 35, 10, 1000)

	rootCmd.AddCommand(evalCmd, profileCmd, listCmd, showCmd, plotCmd, exportJSONCmd, checkCmd, compareCmd, presetsCmd, tuiCmd)
	return rootCmd
}

// setup installs the logger and loads configuration. Flags given on the
// command line win over the config file.
func setup(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg = config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		slog.Debug("config loaded", "path", configFile)
	}

	flags := cmd.Flags()
	if !flags.Changed("data") && cfg.DataDir != "" {
		dataDir = cfg.DataDir
	}
	if !flags.Changed("strict") {
		strict = cfg.Strict
	}
	if !flags.Changed("precision") {
		precision = cfg.Precision
	}
	return nil
}

func functionHelp() string {
	var b strings.Builder
	for _, name := range eos80.Names() {
		fmt.Fprintf(&b, "  %-6s (%s)  %s\n", name, eos80.Signature(name), eos80.Describe(name))
	}
	return b.String()
}

func evalFunc(cmd *cobra.Command, args []string) error {
	name := args[0]

	grids := make([]*grid.Grid, 0, len(args)-1)
	for i, lit := range args[1:] {
		g, err := grid.Parse(lit)
		if err != nil {
			return fmt.Errorf("argument %d: %w", i+1, err)
		}
		grids = append(grids, g)
	}

	if strict {
		if err := checkArgs(name, grids); err != nil {
			return err
		}
	}

	start := time.Now()
	out, err := eos80.Call(name, grids...)
	if err != nil {
		return err
	}
	slog.Debug("evaluated", "func", name, "shape", out.Shape().String(), "elapsed", time.Since(start))

	return printGrid(cmd.OutOrStdout(), out, precision)
}

// checkArgs applies the EOS-80 range check to a Call argument list. Arguments
// a function does not take are checked as zero.
func checkArgs(name string, args []*grid.Grid) error {
	if arity, ok := eos80.Arity(name); !ok || arity != len(args) {
		return nil // Call reports these
	}
	for _, a := range args {
		if a == nil {
			return nil
		}
	}

	zero := grid.Scalar(0)
	switch len(args) {
	case 1:
		s, err := grid.Fill(args[0].Rows(), args[0].Cols(), 0)
		if err != nil {
			return err
		}
		return eos80.CheckRange(s, args[0], zero)
	case 2:
		return eos80.CheckRange(args[0], args[1], zero)
	case 3:
		return eos80.CheckRange(args[0], args[1], args[2])
	default:
		if err := eos80.CheckRange(args[0], args[1], args[2]); err != nil {
			return err
		}
		return eos80.CheckRange(args[0], args[1], args[3])
	}
}

func printGrid(w io.Writer, g *grid.Grid, precision int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for i := 0; i < g.Rows(); i++ {
		for j := 0; j < g.Cols(); j++ {
			fmt.Fprintf(tw, "%s\t", strconv.FormatFloat(g.At(i, j), 'g', precision+4, 64))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func buildProfile(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	pc := cfg.Profile
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		pc = *p
	}

	if flags.Changed("salinity") {
		pc.Salinity = salinity
		pc.Salinities = nil
	}
	if flags.Changed("temperature") {
		pc.Temperature = temperature
		pc.Temperatures = nil
	}
	if flags.Changed("pstart") {
		pc.PressureStart = pStart
	}
	if flags.Changed("pstop") {
		pc.PressureStop = pStop
	}
	if flags.Changed("pstep") {
		pc.PressureStep = pStep
	}
	if flags.Changed("reference") {
		pc.Reference = reference
	}
	if !flags.Changed("integrator") {
		integrator = cfg.Integrator
	}
	if !flags.Changed("steps") {
		steps = cfg.Steps
	}
	if steps < 1 {
		return fmt.Errorf("%w, got %d", errBadSteps, steps)
	}
	if pc.Name == "" {
		pc.Name = "custom"
	}

	integ, err := integrators.Get(integrator)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	p, err := profile.Build(ctx, pc, profile.Options{Integrator: integ, Steps: steps, Strict: strict})
	if err != nil {
		return err
	}
	slog.Debug("profile built", "name", pc.Name, "levels", len(p.Rows), "elapsed", time.Since(start))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, viz.RenderTable(p, precision))
	fmt.Fprint(out, viz.RenderSummary(p.Summary()))

	if noSave {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(p, integ.Name(), steps, strict)
	if err != nil {
		return fmt.Errorf("save run: %w", err)
	}
	slog.Info("run saved", "id", runID, "dir", dataDir)
	fmt.Fprintf(out, "\nrun id: %s\n", runID)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no runs found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tTIME\tLEVELS\tPR\tINTEG\tSTRICT")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%g\t%s\t%t\n",
			run.ID,
			run.Name,
			run.Timestamp.Local().Format("2006-01-02 15:04:05"),
			run.Levels,
			run.Reference,
			run.Integrator,
			run.Strict,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	p, err := st.LoadProfile(runID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run: %s\n", meta.ID)
	fmt.Fprintf(out, "name: %s\n", meta.Name)
	fmt.Fprintf(out, "integrator: %s (%d steps)\n", meta.Integrator, meta.Steps)
	fmt.Fprintf(out, "reference: %g dbar\n\n", meta.Reference)
	fmt.Fprintln(out, viz.RenderTable(p, precision))
	fmt.Fprint(out, viz.RenderSummary(meta.Metrics))
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]
	column := profile.ColDens
	if len(args) > 1 {
		column = args[1]
	}

	st := storage.New(dataDir)
	p, err := st.LoadProfile(runID)
	if err != nil {
		return err
	}

	graph, err := viz.Plot(p, column, viz.PlotOptions{Height: plotHeight, Width: plotWidth})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run: %s\n", runID)
	fmt.Fprintf(out, "levels: %d\n\n", len(p.Rows))
	fmt.Fprintln(out, graph)
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	if outFile != "" {
		if err := st.ExportJSONFile(outFile, args[0]); err != nil {
			return err
		}
		slog.Info("run exported", "id", args[0], "path", outFile)
		return nil
	}
	return st.ExportJSON(cmd.OutOrStdout(), args[0])
}

func runChecks(cmd *cobra.Command, args []string) error {
	results := eos80.RunChecks()
	fmt.Fprintln(cmd.OutOrStdout(), viz.RenderChecks(results))

	failed := 0
	for _, r := range results {
		if !r.Pass() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errChecksFailed, failed, len(results))
	}
	return nil
}

func compareIntegrators(cmd *cobra.Command, args []string) error {
	if compareSteps < 1 {
		return fmt.Errorf("%w, got %d", errBadSteps, compareSteps)
	}
	names := args
	if len(names) == 0 {
		names = integrators.Names()
	}

	in := compareSample
	s, t := grid.Scalar(in.salinity), grid.Scalar(in.temperature)
	p, pr := grid.Scalar(in.pressure), grid.Scalar(in.reference)
	if strict {
		if err := checkArgs("ptmp", []*grid.Grid{s, t, p, pr}); err != nil {
			return err
		}
	}

	want, err := eos80.Ptmp(s, t, p, pr)
	if err != nil {
		return err
	}

	rows := make([]viz.CompareRow, 0, len(names))
	for _, name := range names {
		row := viz.CompareRow{Integrator: name, Steps: compareSteps, Reference: want.Scalar()}

		integ, err := integrators.Get(name)
		if err != nil {
			row.Err = err
			rows = append(rows, row)
			continue
		}

		start := time.Now()
		theta, err := eos80.PtmpWith(integ, compareSteps, s, t, p, pr)
		if err != nil {
			row.Err = err
		} else {
			row.Theta = theta.Scalar()
		}
		row.Elapsed = time.Since(start).String()
		rows = append(rows, row)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "potential temperature at S=%g T=%g P=%g → PR=%g\n\n", in.salinity, in.temperature, in.pressure, in.reference)
	fmt.Fprintln(out, viz.RenderCompare(rows))
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tS\tT\tPRESSURE\tPR")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%g\t%.4g\t%g-%g/%g\t%g\n",
			name, p.Salinity, p.Temperature,
			p.PressureStart, p.PressureStop, p.PressureStep, p.Reference)
	}
	return w.Flush()
}

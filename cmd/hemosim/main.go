package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/hemosim/internal/config"
	"github.com/san-kum/hemosim/internal/engine"
	"github.com/san-kum/hemosim/internal/hemo"
	"github.com/san-kum/hemosim/internal/storage"
	"github.com/san-kum/hemosim/internal/sweep"
	"github.com/san-kum/hemosim/internal/viz"
)

var (
	dataDir string
	// scenario parameters
	hr    float64
	edv   float64
	esv   float64
	contr float64
	svr   float64
	comp  float64
	rap   float64
	emax  float64
	emin  float64
	v0    float64
	// run options
	stepsPerBeat int
	beats        int
	// input sources
	presetName   string
	configFile   string
	scenarioFile string
	autoEmax     bool
	// output
	saveRun  bool
	runLabel string
	showPlot bool
	// sweep
	sweepFrom   float64
	sweepTo     float64
	sweepPoints int
	sweepMetric string
	// live view
	frameRate int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hemosim",
		Short: "left-ventricle / Windkessel hemodynamics simulator",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".hemosim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "simulate one scenario and print metrics",
		RunE:  runSimulation,
	}
	addScenarioFlags(runCmd)
	runCmd.Flags().BoolVar(&saveRun, "save", false, "save run to the data directory")
	runCmd.Flags().StringVar(&runLabel, "label", "", "label for a saved run (default: preset name)")
	runCmd.Flags().BoolVar(&showPlot, "plot", false, "print pressure and volume plots")

	sweepCmd := &cobra.Command{
		Use:   "sweep [param]",
		Short: "sweep one parameter (hr, svr, comp, rap, emax)",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	addScenarioFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0, "first value")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 0, "last value")
	sweepCmd.Flags().IntVar(&sweepPoints, "points", 9, "number of values")
	sweepCmd.Flags().StringVar(&sweepMetric, "metric", "map", "metric to plot (map, sbp, dbp, pp, sv, co, ef)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list scenario presets",
		RunE:  listPresetTable,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "print run metadata and trace as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRunJSON,
	}

	exportScenarioCmd := &cobra.Command{
		Use:   "export-scenario [path]",
		Short: "write the resolved scenario as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportScenario,
	}
	addScenarioFlags(exportScenarioCmd)

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "simulate and replay the final beat live",
		RunE:  runLive,
	}
	addScenarioFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	rootCmd.AddCommand(runCmd, sweepCmd, presetsCmd, listCmd, plotCmd, exportCmd, exportJSONCmd, exportScenarioCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&hr, "hr", 75, "heart rate (bpm)")
	cmd.Flags().Float64Var(&edv, "edv", 120, "end-diastolic volume hint (mL)")
	cmd.Flags().Float64Var(&esv, "esv", 50, "end-systolic volume hint (mL)")
	cmd.Flags().Float64Var(&contr, "contr", 0.5, "contractility (0-1)")
	cmd.Flags().Float64Var(&svr, "svr", 1200, "systemic vascular resistance (dyn·s/cm⁵)")
	cmd.Flags().Float64Var(&comp, "comp", 1.5, "arterial compliance (mL/mmHg)")
	cmd.Flags().Float64Var(&rap, "rap", 2, "venous pressure (mmHg)")
	cmd.Flags().Float64Var(&emax, "emax", 2.0, "max elastance (mmHg/mL)")
	cmd.Flags().Float64Var(&emin, "emin", 0.06, "min elastance (mmHg/mL)")
	cmd.Flags().Float64Var(&v0, "v0", 10, "unstressed volume (mL)")
	cmd.Flags().IntVar(&stepsPerBeat, "steps", config.DefaultStepsPerBeat, "steps per beat")
	cmd.Flags().IntVar(&beats, "beats", config.DefaultBeats, "beats to simulate")
	cmd.Flags().StringVar(&presetName, "preset", "", "scenario preset")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&scenarioFile, "scenario", "", "scenario file path (json)")
	cmd.Flags().BoolVar(&autoEmax, "auto-emax", false, "derive max elastance from contractility")
}

// resolveScenario merges inputs in precedence order: defaults, config
// file, preset flag, scenario file, individual flags.
func resolveScenario(cmd *cobra.Command) (config.Scenario, hemo.RunOptions, bool, error) {
	cfg := config.DefaultConfig()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return config.Scenario{}, hemo.RunOptions{}, false, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("preset") {
		cfg.Preset = presetName
		cfg.Scenario = config.Scenario{}
	}

	scenario, err := cfg.Resolve()
	if err != nil {
		return config.Scenario{}, hemo.RunOptions{}, false, err
	}

	if scenarioFile != "" {
		sc, err := config.LoadScenario(scenarioFile)
		if err != nil {
			return config.Scenario{}, hemo.RunOptions{}, false, fmt.Errorf("load scenario: %w", err)
		}
		scenario = *sc
	}

	overrides := []struct {
		name string
		dst  *float64
		src  *float64
	}{
		{"hr", &scenario.HeartRate, &hr},
		{"edv", &scenario.EDV, &edv},
		{"esv", &scenario.ESV, &esv},
		{"contr", &scenario.Contractility, &contr},
		{"svr", &scenario.VascularResistance, &svr},
		{"comp", &scenario.Compliance, &comp},
		{"rap", &scenario.VenousPressure, &rap},
		{"emax", &scenario.MaxElastance, &emax},
		{"emin", &scenario.MinElastance, &emin},
		{"v0", &scenario.UnstressedVolume, &v0},
	}
	for _, o := range overrides {
		if cmd.Flags().Changed(o.name) {
			*o.dst = *o.src
		}
	}

	if cmd.Flags().Changed("steps") {
		cfg.StepsPerBeat = stepsPerBeat
	}
	if cmd.Flags().Changed("beats") {
		cfg.Beats = beats
	}

	auto := cfg.AutoElastance
	if cmd.Flags().Changed("auto-emax") {
		auto = autoEmax
	}

	return scenario, cfg.Options(), auto, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	sc, opts, auto, err := resolveScenario(cmd)
	if err != nil {
		return err
	}

	params := sc.Parameters()
	if auto {
		params = params.WithDerivedElastance()
		sc = config.FromParameters(params)
	}

	start := time.Now()
	result, err := engine.New().Simulate(params, opts)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("simulated %d beats × %d steps (dt=%.5fs) in %v\n\n",
		opts.Beats, opts.StepsPerBeat, result.Dt, elapsed)

	printMetrics(result.Metrics)

	if showPlot {
		fmt.Println()
		fmt.Println(viz.PressurePlot(result.Trace))
		fmt.Println()
		fmt.Println(viz.VolumePlot(result.Trace))
	}

	if saveRun {
		label := runLabel
		if label == "" {
			label = presetName
		}
		if label == "" {
			label = "run"
		}

		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(label, sc, opts, result)
		if err != nil {
			return err
		}
		fmt.Printf("\nrun id: %s\n", runID)
	}

	return nil
}

func printMetrics(m hemo.Metrics) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "EDV\t%.1f mL\n", m.EDV)
	fmt.Fprintf(w, "ESV\t%.1f mL\n", m.ESV)
	fmt.Fprintf(w, "SV\t%.1f mL\n", m.SV)
	fmt.Fprintf(w, "CO\t%.2f L/min\n", m.CO)
	fmt.Fprintf(w, "MAP\t%.1f mmHg\n", m.MAP)
	fmt.Fprintf(w, "SBP\t%.1f mmHg\n", m.SBP)
	fmt.Fprintf(w, "DBP\t%.1f mmHg\n", m.DBP)
	fmt.Fprintf(w, "PP\t%.1f mmHg\n", m.PP)
	fmt.Fprintf(w, "EF\t%.1f %%\n", m.EF)
	w.Flush()
}

var sweepMetrics = map[string]func(hemo.Metrics) float64{
	"map": func(m hemo.Metrics) float64 { return m.MAP },
	"sbp": func(m hemo.Metrics) float64 { return m.SBP },
	"dbp": func(m hemo.Metrics) float64 { return m.DBP },
	"pp":  func(m hemo.Metrics) float64 { return m.PP },
	"sv":  func(m hemo.Metrics) float64 { return m.SV },
	"co":  func(m hemo.Metrics) float64 { return m.CO },
	"ef":  func(m hemo.Metrics) float64 { return m.EF },
}

func runSweep(cmd *cobra.Command, args []string) error {
	sc, opts, auto, err := resolveScenario(cmd)
	if err != nil {
		return err
	}

	pick, ok := sweepMetrics[sweepMetric]
	if !ok {
		return fmt.Errorf("unknown metric: %s", sweepMetric)
	}
	if sweepPoints <= 0 {
		return fmt.Errorf("points must be positive, got %d", sweepPoints)
	}
	if sweepTo == sweepFrom {
		return fmt.Errorf("sweep range is empty: from %g to %g", sweepFrom, sweepTo)
	}

	params := sc.Parameters()
	if auto {
		params = params.WithDerivedElastance()
	}

	sw := sweep.Sweep{
		Base:    params,
		Param:   sweep.Param(args[0]),
		Values:  sweep.Range(sweepFrom, sweepTo, sweepPoints),
		Options: opts,
	}

	points, err := sw.Run(context.Background())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tMAP\tSBP\tDBP\tSV\tCO\tEF\n", args[0])
	for _, pt := range points {
		fmt.Fprintf(w, "%g\t%.1f\t%.1f\t%.1f\t%.1f\t%.2f\t%.1f\n",
			pt.Value, pt.Metrics.MAP, pt.Metrics.SBP, pt.Metrics.DBP,
			pt.Metrics.SV, pt.Metrics.CO, pt.Metrics.EF)
	}
	w.Flush()

	values := make([]float64, len(points))
	series := make([]float64, len(points))
	for i, pt := range points {
		values[i] = pt.Value
		series[i] = pick(pt.Metrics)
	}
	fmt.Println()
	fmt.Println(viz.SweepPlot(values, series, sweepMetric))

	return nil
}

func listPresetTable(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tHR\tSVR\tCOMP\tEMAX\tEMIN\tRAP")
	for _, name := range config.ListPresets() {
		sc, _ := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%g\t%g\t%g\n",
			name, sc.HeartRate, sc.VascularResistance, sc.Compliance,
			sc.MaxElastance, sc.MinElastance, sc.VenousPressure)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLABEL\tTIME\tHR\tSV\tMAP\tEF")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%g\t%.1f\t%.1f\t%.1f\n",
			run.ID,
			run.Label,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Scenario.HeartRate,
			run.Metrics.SV,
			run.Metrics.MAP,
			run.Metrics.EF,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	trace, err := st.LoadTrace(runID)
	if err != nil {
		return err
	}
	if len(trace) == 0 {
		return fmt.Errorf("no trace to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("label: %s\n", meta.Label)
	fmt.Printf("samples: %d\n\n", len(trace))

	fmt.Println(viz.PressurePlot(trace))
	fmt.Println()
	fmt.Println(viz.VolumePlot(trace))
	fmt.Println()
	fmt.Println(viz.MetricsPanel(meta.Metrics))

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportRunJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	trace, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}

	out := struct {
		*storage.RunMetadata
		Trace hemo.Trace `json:"trace"`
	}{meta, trace}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func exportScenario(cmd *cobra.Command, args []string) error {
	sc, _, auto, err := resolveScenario(cmd)
	if err != nil {
		return err
	}
	if auto {
		sc = config.FromParameters(sc.Parameters().WithDerivedElastance())
	}
	if err := config.SaveScenario(args[0], &sc); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[0])
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	sc, opts, auto, err := resolveScenario(cmd)
	if err != nil {
		return err
	}

	params := sc.Parameters()
	if auto {
		params = params.WithDerivedElastance()
	}

	result, err := engine.New().Simulate(params, opts)
	if err != nil {
		return err
	}

	label := presetName
	if label == "" {
		label = fmt.Sprintf("hr %g, svr %g", params.HeartRate, params.VascularResistance)
	}

	return viz.Run(label, result.Trace, result.Metrics, frameRate)
}

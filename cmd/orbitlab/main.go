package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/orbitlab/internal/config"
	"github.com/san-kum/orbitlab/internal/export"
	"github.com/san-kum/orbitlab/internal/orbit"
	"github.com/san-kum/orbitlab/internal/storage"
	"github.com/san-kum/orbitlab/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir     string
	posFlag     []float64
	velFlag     []float64
	nstep       int
	dtime       float64
	detol       float64
	rc          float64
	bAxis       float64
	cAxis       float64
	planeName   string
	stepperName string
	configFile  string
	preset      string
	noPlot      bool
	// Sweep range
	vyFrom float64
	vyTo   float64
	vyRuns int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "orbitlab",
		Short: "orbit integration in a triaxial logarithmic halo",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", storage.DefaultBaseDir, "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "integrate one orbit and persist the result",
		RunE:  runOrbit,
	}
	addRunFlags(runCmd)
	runCmd.Flags().BoolVar(&noPlot, "no-plot", false, "skip the terminal plot")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&planeName, "plane", "XY", "projection plane (XY, YZ, XZ)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "integrate with live terminal visualization",
		RunE:  runLive,
	}
	addRunFlags(liveCmd)

	compareCmd := &cobra.Command{
		Use:   "compare [stepper1] [stepper2] ...",
		Short: "compare steppers on the same orbit",
		RunE:  compareSteppers,
	}
	addRunFlags(compareCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "integrate a family of orbits over launch velocities",
		RunE:  sweepOrbits,
	}
	addRunFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&vyFrom, "vy-from", 0.1, "first launch velocity")
	sweepCmd.Flags().Float64Var(&vyTo, "vy-to", 0.8, "last launch velocity")
	sweepCmd.Flags().IntVar(&vyRuns, "runs", 8, "number of orbits")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "export run trajectory to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&planeName, "plane", "XY", "projection plane (XY, YZ, XZ)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, liveCmd, compareCmd, sweepCmd, exportJSONCmd, exportSVGCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().Float64SliceVar(&posFlag, "pos", []float64{1, 0, 0}, "initial position x,y,z")
	cmd.Flags().Float64SliceVar(&velFlag, "vel", []float64{0, 0.4, 0}, "initial velocity x,y,z")
	cmd.Flags().IntVar(&nstep, "nstep", config.DefaultNStep, "number of steps")
	cmd.Flags().Float64Var(&dtime, "dtime", config.DefaultDTime, "timestep")
	cmd.Flags().Float64Var(&detol, "detol", config.DefaultDEtol, "energy tolerance")
	cmd.Flags().Float64Var(&rc, "rc", config.DefaultRc, "halo core radius")
	cmd.Flags().Float64VarP(&bAxis, "b-axis", "b", config.DefaultB, "halo y axis ratio")
	cmd.Flags().Float64VarP(&cAxis, "c-axis", "c", config.DefaultC, "halo z axis ratio")
	cmd.Flags().StringVar(&planeName, "plane", "XY", "projection plane (XY, YZ, XZ)")
	cmd.Flags().StringVar(&stepperName, "stepper", "leapfrog", "integration stepper")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// buildConfig layers preset, then config file, then any explicitly set CLI
// flags on top of the defaults.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	fl := cmd.Flags()
	if fl.Changed("pos") {
		if len(posFlag) != 3 {
			return nil, fmt.Errorf("--pos needs exactly 3 components, got %d", len(posFlag))
		}
		cfg.Pos = config.VecConfig{X: posFlag[0], Y: posFlag[1], Z: posFlag[2]}
	}
	if fl.Changed("vel") {
		if len(velFlag) != 3 {
			return nil, fmt.Errorf("--vel needs exactly 3 components, got %d", len(velFlag))
		}
		cfg.Vel = config.VecConfig{X: velFlag[0], Y: velFlag[1], Z: velFlag[2]}
	}
	if fl.Changed("nstep") {
		cfg.NStep = nstep
	}
	if fl.Changed("dtime") {
		cfg.DTime = dtime
	}
	if fl.Changed("detol") {
		cfg.DEtol = detol
	}
	if fl.Changed("rc") {
		cfg.Rc = rc
	}
	if fl.Changed("b-axis") {
		cfg.B = bAxis
	}
	if fl.Changed("c-axis") {
		cfg.C = cAxis
	}
	if fl.Changed("plane") {
		cfg.Plane = planeName
	}
	if fl.Changed("stepper") {
		cfg.Stepper = stepperName
	}

	return cfg, nil
}

func runOrbit(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	field, err := cfg.Potential()
	if err != nil {
		return err
	}
	stepper, err := orbit.NewStepper(cfg.Stepper)
	if err != nil {
		return err
	}
	plane, err := viz.ParsePlane(cfg.Plane)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	sim := orbit.New(field, stepper)
	sim.AddMetric(orbit.NewEnergyDrift(field))
	sim.AddMetric(orbit.NewMaxRadius())

	fmt.Printf("integrating %d steps (dt=%g, %s)...\n", cfg.NStep, cfg.DTime, stepper.Name())
	start := time.Now()

	result, err := sim.Run(context.Background(), cfg.OrbitConfig())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	fmt.Println(result.Report())

	if !noPlot {
		fmt.Println()
		fmt.Println(viz.PlotTrajectory(result.Trajectory, plane, 64, 20, cfg.Vel.Y))
	}

	runID, err := st.Save(cfg, result)
	if err != nil {
		return err
	}

	svg := export.TrajectoryToSVG(result.Trajectory, plane, 800, 600, "#00ff00", cfg.Vel.Y)
	if svg != "" {
		svgPath := filepath.Join(st.RunDir(runID), "orbit.svg")
		if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
			return err
		}
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("samples: %d\n", len(result.Trajectory))
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6g\n", name, val)
	}

	return nil
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
	fmt.Fprintln(w, "ID\tTIME\tVY\tNSTEP\tDT\tSTEPPER\tSTATUS\tSAMPLES")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%g\t%d\t%.4f\t%s\t%s\t%d\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Vel.Y,
			run.NStep,
			run.DTime,
			run.Stepper,
			run.Status,
			run.Samples,
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

	traj, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	if len(traj) == 0 {
		return fmt.Errorf("no data to plot")
	}

	plane, err := viz.ParsePlane(planeName)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("status: %s\n", meta.Status)
	fmt.Printf("samples: %d\n\n", len(traj))
	fmt.Println(viz.PlotTrajectory(traj, plane, 64, 20, meta.Vel.Y))

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	field, err := cfg.Potential()
	if err != nil {
		return err
	}
	stepper, err := orbit.NewStepper(cfg.Stepper)
	if err != nil {
		return err
	}
	plane, err := viz.ParsePlane(cfg.Plane)
	if err != nil {
		return err
	}

	m := viz.NewModel(field, stepper, cfg.OrbitConfig(), plane)

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func compareSteppers(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	field, err := cfg.Potential()
	if err != nil {
		return err
	}

	names := args
	if len(names) == 0 {
		names = orbit.Steppers()
	}

	fmt.Printf("comparing steppers (nstep=%d, dt=%g, vy=%g)\n\n", cfg.NStep, cfg.DTime, cfg.Vel.Y)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STEPPER\tSTATUS\tE(0)\tE(final)\tDRIFT\tTIME")

	for _, name := range names {
		stepper, err := orbit.NewStepper(name)
		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\t\t\t\t\n", name, err)
			continue
		}

		sim := orbit.New(field, stepper)
		sim.AddMetric(orbit.NewEnergyDrift(field))

		start := time.Now()
		result, err := sim.Run(context.Background(), cfg.OrbitConfig())
		elapsed := time.Since(start)

		if err != nil {
			fmt.Fprintf(w, "%s\terror: %v\t\t\t\t\n", name, err)
			continue
		}

		fmt.Fprintf(w, "%s\t%s\t%.6f\t%.6f\t%.2e\t%v\n",
			name, result.Status, result.Einit, result.Efinal,
			result.Metrics["energy_drift"], elapsed)
	}

	return w.Flush()
}

func sweepOrbits(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if vyRuns < 1 {
		return fmt.Errorf("--runs must be at least 1")
	}

	field, err := cfg.Potential()
	if err != nil {
		return err
	}
	stepper, err := orbit.NewStepper(cfg.Stepper)
	if err != nil {
		return err
	}

	vys := make([]float64, vyRuns)
	for i := range vys {
		if vyRuns == 1 {
			vys[i] = vyFrom
		} else {
			vys[i] = vyFrom + (vyTo-vyFrom)*float64(i)/float64(vyRuns-1)
		}
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("sweeping %d orbits, vy %g to %g\n\n", vyRuns, vyFrom, vyTo)
	start := time.Now()

	ens := orbit.NewEnsemble(field, stepper, vys)
	results, err := ens.Run(context.Background(), cfg.OrbitConfig())
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tVY\tSTATUS\tDRIFT\tMAX_R\tSAMPLES")

	for i, result := range results {
		runCfg := *cfg
		runCfg.Vel.Y = vys[i]

		runID, err := st.Save(&runCfg, result)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%s\t%g\t%s\t%.2e\t%.4f\t%d\n",
			runID, vys[i], result.Status,
			result.Metrics["energy_drift"], result.Metrics["max_radius"],
			len(result.Trajectory))
	}

	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\ncompleted in %v\n", elapsed)
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	traj, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	return export.WriteJSON(os.Stdout, meta, traj)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	traj, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	plane, err := viz.ParsePlane(planeName)
	if err != nil {
		return err
	}

	svg := export.TrajectoryToSVG(traj, plane, 800, 600, "#00ff00", meta.Vel.Y)
	if svg == "" {
		return fmt.Errorf("not enough samples to export")
	}

	fmt.Print(svg)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	names := config.ListPresets()
	if len(names) == 0 {
		fmt.Println("no presets defined")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tVY\tNSTEP\tDT\tDETOL\tSTEPPER")

	for _, name := range names {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%g\t%d\t%g\t%g\t%s\n",
			name, p.Vel.Y, p.NStep, p.DTime, p.DEtol, p.Stepper)
	}

	return w.Flush()
}

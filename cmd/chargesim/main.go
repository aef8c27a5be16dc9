package main

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/chargesim/internal/bounds"
	"github.com/san-kum/chargesim/internal/config"
	"github.com/san-kum/chargesim/internal/engine"
	"github.com/san-kum/chargesim/internal/export"
	"github.com/san-kum/chargesim/internal/force"
	"github.com/san-kum/chargesim/internal/integrators"
	"github.com/san-kum/chargesim/internal/metrics"
	"github.com/san-kum/chargesim/internal/preset"
	"github.com/san-kum/chargesim/internal/storage"
	"github.com/san-kum/chargesim/internal/viz"
)

var (
	dataDir     string
	presetName  string
	seed        int64
	dt          float64
	steps       int
	kConst      float64
	minDistance float64
	integrator  string
	forceModel  string
	workers     int
	maxTrail    int
	boundShape  string
	boundLimit  float64
	configFile  string
	frameRate   int
	stepsFrame  int
	outPath     string
	particleIdx int
	axis        string
	svgWidth    int
	svgHeight   int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "chargesim",
		Short: "3d coulomb point-charge simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLive(cmd, nil)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".chargesim", "data directory")

	addPhysicsFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&presetName, "preset", config.DefaultPreset, "initial configuration")
		cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "seed for randomized presets")
		cmd.Flags().Float64Var(&dt, "dt", engine.DefaultDt, "timestep")
		cmd.Flags().Float64Var(&kConst, "k", force.DefaultK, "coulomb constant")
		cmd.Flags().Float64Var(&minDistance, "min-distance", force.DefaultMinDistance, "pair distance floor")
		cmd.Flags().StringVar(&integrator, "integrator", "semi-implicit", "semi-implicit|euler|verlet")
		cmd.Flags().StringVar(&forceModel, "force", "serial", "serial|parallel")
		cmd.Flags().IntVar(&workers, "workers", 0, "force workers (0 = all cpus)")
		cmd.Flags().IntVar(&maxTrail, "max-trail", 0, "trajectory cap per particle (0 = unbounded)")
		cmd.Flags().StringVar(&boundShape, "bound-shape", "box", "box|sphere")
		cmd.Flags().Float64Var(&boundLimit, "bound-limit", bounds.DefaultLimit, "escape boundary")
		cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation and store the result",
		RunE:  runSimulation,
	}
	addPhysicsFlags(runCmd)
	runCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of steps")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive 3d terminal view",
		RunE:  runLive,
	}
	addPhysicsFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")
	liveCmd.Flags().IntVar(&stepsFrame, "steps-per-frame", 4, "simulation steps per rendered frame")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored trajectory coordinate",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&particleIdx, "particle", 0, "particle index")
	plotCmd.Flags().StringVar(&axis, "axis", "x", "coordinate to plot (x|y|z)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range preset.List() {
				descs, err := preset.Load(name, 1)
				if err != nil {
					return err
				}
				fmt.Printf("  %-10s %d particles\n", name, len(descs))
			}
			return nil
		},
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVar(&outPath, "out", "", "output path (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "render stored trails to an SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&outPath, "out", "", "output path (default <run_id>.svg)")
	exportSVGCmd.Flags().IntVar(&svgWidth, "width", 800, "image width")
	exportSVGCmd.Flags().IntVar(&svgHeight, "height", 600, "image height")

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, presetsCmd, exportJSONCmd, exportSVGCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig merges defaults, an optional yaml file, and changed flags,
// with flags winning.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Seed = seed

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("preset") || cfg.Preset == "" {
		cfg.Preset = presetName
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("steps") {
		cfg.Steps = steps
	}
	if flags.Changed("k") {
		cfg.K = kConst
	}
	if flags.Changed("min-distance") {
		cfg.MinDistance = minDistance
	}
	if flags.Changed("integrator") {
		cfg.Integrator = integrator
	}
	if flags.Changed("force") {
		cfg.Force = forceModel
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("max-trail") {
		cfg.MaxTrail = maxTrail
	}
	if flags.Changed("bound-shape") {
		cfg.Bounds.Shape = boundShape
	}
	if flags.Changed("bound-limit") {
		cfg.Bounds.Limit = boundLimit
	}
	return cfg, nil
}

// buildSimulation assembles the engine from a resolved configuration.
func buildSimulation(cfg *config.Config) (*engine.Simulation, error) {
	descs, err := preset.Load(cfg.Preset, cfg.Seed)
	if err != nil {
		return nil, err
	}

	var fm engine.ForceModel
	switch cfg.Force {
	case "serial":
		fm = force.NewCoulomb(cfg.K, cfg.MinDistance)
	case "parallel":
		fm = force.NewParallel(cfg.K, cfg.MinDistance, cfg.Workers)
	default:
		return nil, fmt.Errorf("unknown force model: %s", cfg.Force)
	}

	var integ engine.Integrator
	switch cfg.Integrator {
	case "semi-implicit":
		integ = integrators.NewSemiImplicit()
	case "euler":
		integ = integrators.NewEuler()
	case "verlet":
		integ = integrators.NewVelocityVerlet()
	default:
		return nil, fmt.Errorf("unknown integrator: %s", cfg.Integrator)
	}

	var vol engine.Volume
	switch cfg.Bounds.Shape {
	case "box":
		vol = bounds.NewBox(cfg.Bounds.Limit)
	case "sphere":
		vol = bounds.NewSphere(cfg.Bounds.Limit)
	default:
		return nil, fmt.Errorf("unknown bounds shape: %s", cfg.Bounds.Shape)
	}

	return engine.New(descs, fm, integ, vol, engine.Config{
		Dt:       cfg.Dt,
		MaxTrail: cfg.MaxTrail,
	})
}

func defaultMetrics(cfg *config.Config) []metrics.Metric {
	return []metrics.Metric{
		metrics.NewEnergy(cfg.K, cfg.MinDistance),
		metrics.NewMomentumDrift(),
		metrics.NewActiveCount(),
		metrics.NewInstability(metrics.DefaultSpeedLimit),
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	sim, err := buildSimulation(cfg)
	if err != nil {
		return err
	}

	recorder := engine.NewRecorder()
	sim.AddObserver(recorder)
	ms := defaultMetrics(cfg)

	fmt.Printf("running %s (%d steps, dt=%g)...\n", cfg.Preset, cfg.Steps, cfg.Dt)
	start := time.Now()

	for i := 0; i < cfg.Steps; i++ {
		snap := sim.Step()
		for _, m := range ms {
			m.Observe(snap)
		}
	}
	elapsed := time.Since(start)

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	values := make(map[string]float64, len(ms))
	for _, m := range ms {
		values[m.Name()] = m.Value()
	}

	runID, err := st.Save(storage.RunMetadata{
		Preset:      cfg.Preset,
		Seed:        cfg.Seed,
		Dt:          cfg.Dt,
		Steps:       cfg.Steps,
		K:           cfg.K,
		MinDistance: cfg.MinDistance,
		Integrator:  cfg.Integrator,
		Metrics:     values,
	}, recorder.Recording())
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Println("\nmetrics:")
	for _, m := range ms {
		fmt.Printf("  %s: %.6g\n", m.Name(), m.Value())
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	build := func(name string) (*engine.Simulation, error) {
		c := *cfg
		c.Preset = name
		return buildSimulation(&c)
	}

	model, err := viz.NewModel(build, preset.List(), cfg.Preset, defaultMetrics(cfg), frameRate, stepsFrame)
	if err != nil {
		return err
	}
	return viz.Run(model)
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
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tSTEPS\tDT\tINTEG\tPARTICLES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.5f\t%s\t%d\n",
			run.ID,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Steps,
			run.Dt,
			run.Integrator,
			run.Particles,
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
	rec, err := st.LoadRecording(runID)
	if err != nil {
		return err
	}
	if len(rec.Positions) == 0 {
		return fmt.Errorf("no data to plot")
	}
	if particleIdx < 0 || particleIdx >= len(rec.Positions[0]) {
		return fmt.Errorf("particle index out of range (run has %d)", len(rec.Positions[0]))
	}

	data := make([]float64, len(rec.Positions))
	for i := range rec.Positions {
		p := rec.Positions[i][particleIdx]
		switch axis {
		case "x":
			data[i] = p.X
		case "y":
			data[i] = p.Y
		case "z":
			data[i] = p.Z
		default:
			return fmt.Errorf("unknown axis: %s", axis)
		}
	}

	fmt.Printf("run: %s  preset: %s  samples: %d\n\n", meta.ID, meta.Preset, len(data))
	caption := fmt.Sprintf("particle %d  %s vs time", particleIdx, axis)
	fmt.Println(asciigraph.Plot(data, asciigraph.Height(15), asciigraph.Caption(caption)))
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	rec, err := st.LoadRecording(runID)
	if err != nil {
		return err
	}

	if outPath == "" {
		return export.WriteJSON(os.Stdout, *meta, rec)
	}
	file, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer file.Close()
	return export.WriteJSON(file, *meta, rec)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	rec, err := st.LoadRecording(runID)
	if err != nil {
		return err
	}

	svg := export.TrailsToSVG(rec, svgWidth, svgHeight)
	if svg == "" {
		return fmt.Errorf("run %s has no trajectory to render", runID)
	}

	path := outPath
	if path == "" {
		path = filepath.Base(runID) + ".svg"
	}
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

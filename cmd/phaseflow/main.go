package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/phaseflow/internal/analysis"
	"github.com/san-kum/phaseflow/internal/config"
	"github.com/san-kum/phaseflow/internal/engine"
	"github.com/san-kum/phaseflow/internal/export"
	"github.com/san-kum/phaseflow/internal/gui"
	"github.com/san-kum/phaseflow/internal/integrators"
	"github.com/san-kum/phaseflow/internal/models"
	"github.com/san-kum/phaseflow/internal/phase"
	"github.com/san-kum/phaseflow/internal/render"
	"github.com/san-kum/phaseflow/internal/storage"
	"github.com/san-kum/phaseflow/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	theme      string
	// Equation overrides for the calc model
	eqDX string
	eqDY string
	// Parameter overrides, name=value
	paramFlags []string
	// Viewport bounds
	xMin, xMax float64
	yMin, yMax float64
	// Trajectory integration
	x0, y0  float64
	dt      float64
	steps   int
	section float64
	// Portrait output
	outPath   string
	outWidth  int
	outHeight int
	noGrid    bool
	noField   bool
	noNull    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "phaseflow",
		Short: "interactive phase portraits for planar dynamical systems",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(cmd, []string{"lotka"})
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".phaseflow", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")

	guiCmd := &cobra.Command{
		Use:   "gui [model]",
		Short: "interactive desktop window",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runGUI,
	}
	addFieldFlags(guiCmd)
	guiCmd.Flags().StringVar(&theme, "theme", "dark", "color theme")

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "interactive terminal view",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addFieldFlags(liveCmd)
	liveCmd.Flags().StringVar(&theme, "theme", "dark", "color theme")

	portraitCmd := &cobra.Command{
		Use:   "portrait [model]",
		Short: "export a phase portrait as SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPortrait,
	}
	addFieldFlags(portraitCmd)
	portraitCmd.Flags().StringVar(&outPath, "out", "portrait.svg", "output file")
	portraitCmd.Flags().IntVar(&outWidth, "width", 1280, "image width")
	portraitCmd.Flags().IntVar(&outHeight, "height", 960, "image height")
	portraitCmd.Flags().BoolVar(&noGrid, "no-grid", false, "hide grid lines")
	portraitCmd.Flags().BoolVar(&noField, "no-field", false, "hide field arrows")
	portraitCmd.Flags().BoolVar(&noNull, "no-nullclines", false, "hide nullclines")

	equilibriaCmd := &cobra.Command{
		Use:   "equilibria [model]",
		Short: "locate and classify equilibrium points",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runEquilibria,
	}
	addFieldFlags(equilibriaCmd)

	periodCmd := &cobra.Command{
		Use:   "period [model]",
		Short: "estimate the orbital period through a starting point",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPeriod,
	}
	addFieldFlags(periodCmd)
	periodCmd.Flags().Float64Var(&x0, "x0", 1.0, "initial x")
	periodCmd.Flags().Float64Var(&y0, "y0", 1.0, "initial y")
	periodCmd.Flags().Float64Var(&section, "section", 0, "poincare section x value (0 = x0)")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "integrate one trajectory and store it",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTrajectory,
	}
	addFieldFlags(runCmd)
	runCmd.Flags().Float64Var(&x0, "x0", 1.0, "initial x")
	runCmd.Flags().Float64Var(&y0, "y0", 1.0, "initial y")
	runCmd.Flags().Float64Var(&dt, "dt", 0.01, "timestep")
	runCmd.Flags().IntVar(&steps, "steps", 5000, "number of steps")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "print run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list built-in models",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range models.Names() {
				presets := config.ListPresets(name)
				if len(presets) > 0 {
					fmt.Printf("%s (presets: %s)\n", name, strings.Join(presets, ", "))
				} else {
					fmt.Println(name)
				}
			}
			return nil
		},
	}

	rootCmd.AddCommand(guiCmd, liveCmd, portraitCmd, equilibriaCmd, periodCmd,
		runCmd, listCmd, plotCmd, exportCmd, modelsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addFieldFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&eqDX, "dx", "", "dx/dt expression (calc model)")
	cmd.Flags().StringVar(&eqDY, "dy", "", "dy/dt expression (calc model)")
	cmd.Flags().StringArrayVar(&paramFlags, "param", nil, "parameter override, name=value")
	cmd.Flags().Float64Var(&xMin, "x-min", 0, "viewport x minimum")
	cmd.Flags().Float64Var(&xMax, "x-max", 0, "viewport x maximum")
	cmd.Flags().Float64Var(&yMin, "y-min", 0, "viewport y minimum")
	cmd.Flags().Float64Var(&yMax, "y-max", 0, "viewport y maximum")
}

// resolveConfig layers defaults, preset, config file and CLI flags, in
// that order of increasing precedence.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	model := ""
	if len(args) > 0 {
		model = args[0]
	}

	if preset != "" {
		if model == "" {
			return nil, fmt.Errorf("--preset requires a model argument")
		}
		p := config.GetPreset(model, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)",
				preset, config.ListPresets(model))
		}
		cfg.Model = p.Model
		cfg.Viewport = p.Viewport
		cfg.Equations = p.Equations
		cfg.Params = p.Params
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if model != "" {
		cfg.Model = model
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = theme
	}
	if eqDX != "" {
		cfg.Equations.DX = eqDX
	}
	if eqDY != "" {
		cfg.Equations.DY = eqDY
	}
	if cmd.Flags().Changed("x-min") || cmd.Flags().Changed("x-max") ||
		cmd.Flags().Changed("y-min") || cmd.Flags().Changed("y-max") {
		cfg.Viewport = config.ViewportConfig{XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax}
	}

	for _, pf := range paramFlags {
		name, val, ok := strings.Cut(pf, "=")
		if !ok {
			return nil, fmt.Errorf("bad --param %q, want name=value", pf)
		}
		v, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, fmt.Errorf("bad --param %q: %w", pf, err)
		}
		if cfg.Params == nil {
			cfg.Params = map[string]float64{}
		}
		cfg.Params[name] = v
	}

	return cfg, nil
}

// buildField constructs the vector field named by the config and applies
// equation and parameter overrides. Invalid calc equations do not fail
// here: the field falls back to uniform rotation and carries the parse
// error for the UI to show.
func buildField(cfg *config.Config) (phase.VectorField, phase.Params, error) {
	f, err := models.New(cfg.Model)
	if err != nil {
		return nil, nil, err
	}

	if calc, ok := f.(*models.Calculator); ok {
		if cfg.Equations.DX != "" || cfg.Equations.DY != "" {
			_ = calc.SetEquations(cfg.Equations.DX, cfg.Equations.DY)
		}
	}

	params := cfg.GetParams()
	if c, ok := f.(phase.Configurable); ok {
		defaults := c.GetParams()
		for k, v := range params {
			defaults[k] = v
		}
		params = defaults
	}
	return f, params, nil
}

func buildEngine(cfg *config.Config, w, h int) (*engine.Engine, error) {
	f, params, err := buildField(cfg)
	if err != nil {
		return nil, err
	}

	eng := engine.New(f, w, h)
	eng.SetParams(params)
	if vp := cfg.Viewport.Viewport(); vp.Valid() {
		if err := eng.SetViewport(vp); err != nil {
			return nil, err
		}
	}
	eng.SetSpeed(cfg.Speed)
	eng.SetToggles(render.Toggles{
		Grid:       cfg.Layers.Grid,
		Field:      cfg.Layers.Field,
		Nullclines: cfg.Layers.Nullclines,
	})
	applyTuning(eng, cfg.Tuning)
	return eng, nil
}

func applyTuning(eng *engine.Engine, t config.TuningConfig) {
	mgr := eng.Manager()
	if t.MaxSeeded > 0 {
		mgr.MaxSeeded = t.MaxSeeded
	}
	if t.GridSize > 0 {
		mgr.GridSize = t.GridSize
	}
	if t.ExtendFrac > 0 {
		mgr.ExtendFrac = t.ExtendFrac
	}
	if t.CycleSeconds > 0 {
		mgr.CycleLen = t.CycleSeconds
	}
	if t.FadeAlpha > 0 && t.FadeAlpha < 1 {
		style := eng.Style()
		style.FadeAlpha = t.FadeAlpha
		eng.SetStyle(style)
	}
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	eng, err := buildEngine(cfg, 1, 1) // sized by the window on startup
	if err != nil {
		return err
	}
	gui.NewApp(eng, cfg.Model, cfg.Theme).Run()
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	eng, err := buildEngine(cfg, 1, 1) // sized by the canvas on startup
	if err != nil {
		return err
	}

	m := viz.NewModel(eng, cfg.Model, cfg.Theme)
	p := tea.NewProgram(m, tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

func runPortrait(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	f, params, err := buildField(cfg)
	if err != nil {
		return err
	}

	vp := cfg.Viewport.Viewport()
	if !vp.Valid() {
		if vpp, ok := f.(phase.ViewportProvider); ok {
			vp = vpp.DefaultViewport()
		}
	}

	tog := render.Toggles{Grid: !noGrid, Field: !noField, Nullclines: !noNull}
	style := viz.GetTheme(cfg.Theme).Style()

	s := export.Portrait(f, params, vp, outWidth, outHeight, tog, style)
	if err := s.WriteFile(outPath); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%dx%d)\n", outPath, outWidth, outHeight)
	return nil
}

func runEquilibria(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	f, params, err := buildField(cfg)
	if err != nil {
		return err
	}
	vp := cfg.Viewport.Viewport()
	if !vp.Valid() {
		if vpp, ok := f.(phase.ViewportProvider); ok {
			vp = vpp.DefaultViewport()
		}
	}

	eqs := analysis.FindEquilibria(f, params, vp)
	if len(eqs) == 0 {
		fmt.Println("no equilibria in viewport")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "X\tY\tTYPE\tSTABLE")
	for _, eq := range eqs {
		fmt.Fprintf(w, "%.4f\t%.4f\t%s\t%v\n",
			eq.Point.X, eq.Point.Y, eq.Class, eq.Class.Stable())
	}
	return w.Flush()
}

func runPeriod(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	f, params, err := buildField(cfg)
	if err != nil {
		return err
	}

	sec := section
	if !cmd.Flags().Changed("section") {
		sec = x0
	}

	crossing := analysis.DetectPeriod(f, params, x0, y0, sec)
	spectral := analysis.SpectralPeriod(f, params, x0, y0)

	if crossing > 0 {
		fmt.Printf("section-crossing period: %.4f\n", crossing)
	} else {
		fmt.Println("section-crossing period: not detected")
	}
	if spectral > 0 {
		fmt.Printf("spectral period:         %.4f\n", spectral)
	} else {
		fmt.Println("spectral period:         not detected")
	}
	return nil
}

func runTrajectory(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	f, params, err := buildField(cfg)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	stepper := integrators.New("rk4")
	times := make([]float64, 0, steps+1)
	points := make([]phase.Vec2, 0, steps+1)

	x, y := x0, y0
	times = append(times, 0)
	points = append(points, phase.Vec2{X: x, Y: y})

	fmt.Printf("integrating %s from (%.3f, %.3f)...\n", cfg.Model, x0, y0)
	start := time.Now()
	for i := 1; i <= steps; i++ {
		xn, yn := stepper.Step(f, params, x, y, dt)
		if !phase.IsFinite(xn, yn) {
			fmt.Printf("trajectory left the finite plane at step %d\n", i)
			break
		}
		x, y = xn, yn
		times = append(times, float64(i)*dt)
		points = append(points, phase.Vec2{X: x, Y: y})
	}
	elapsed := time.Since(start)

	meta := storage.RunMetadata{
		Model:  cfg.Model,
		Params: cfg.Params,
		X0:     x0,
		Y0:     y0,
		Dt:     dt,
		Steps:  len(points) - 1,
		EqDX:   cfg.Equations.DX,
		EqDY:   cfg.Equations.DY,
		Period: analysis.DetectPeriod(f, params, x0, y0, x0),
	}
	runID, err := st.Save(meta, times, points)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", len(points)-1)
	if meta.Period > 0 {
		fmt.Printf("detected period: %.4f\n", meta.Period)
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
	fmt.Fprintln(w, "ID\tMODEL\tTIME\tSTEPS\tDT\tSTART\tPERIOD")
	for _, run := range runs {
		period := "-"
		if run.Period > 0 {
			period = fmt.Sprintf("%.3f", run.Period)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.4f\t(%.2f, %.2f)\t%s\n",
			run.ID,
			run.Model,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Steps,
			run.Dt,
			run.X0, run.Y0,
			period,
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
	_, points, err := st.LoadTrajectory(runID)
	if err != nil {
		return err
	}
	if len(points) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("model: %s\n", meta.Model)
	fmt.Printf("samples: %d\n\n", len(points))

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}

	fmt.Println(asciigraph.Plot(xs,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("x vs time"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(ys,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("y vs time"),
	))
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

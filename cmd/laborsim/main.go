package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/guptarohit/asciigraph"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hanbyul-kim/laborsim/internal/analysis"
	"github.com/hanbyul-kim/laborsim/internal/config"
	"github.com/hanbyul-kim/laborsim/internal/experiment"
	"github.com/hanbyul-kim/laborsim/internal/export"
	"github.com/hanbyul-kim/laborsim/internal/market"
	"github.com/hanbyul-kim/laborsim/internal/sim"
	"github.com/hanbyul-kim/laborsim/internal/tui"
	"github.com/hanbyul-kim/laborsim/internal/web"
)

var (
	competitiveness float64
	initialWage     float64
	runs            int
	seed            int64
	processName     string
	configFile      string
	preset          string
	tunableFlags    []string

	csvPath   string
	jsonPath  string
	svgPath   string
	showChart bool
	browse    bool

	// Sweep grid
	sweepMin    float64
	sweepMax    float64
	sweepPoints int

	// Agent scenario
	ticks   int
	workers int

	// Server
	addr string

	engineCfg      = sim.DefaultConfig()
	presetTunables map[string]float64

	currency = message.NewPrinter(language.English)
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "laborsim",
		Short: "labor market wage simulation lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to browsing a balanced-market run when no command given
			pc := config.GetPreset("balanced")
			cfg := experiment.Config{
				Process: pc.Process,
				Params:  pc.SimParams(),
				Sim:     pc.SimConfig(),
			}
			cfg.Params.Seed = time.Now().UnixNano()
			rep, err := experiment.New(cfg, experiment.NewRegistry()).Run(context.Background())
			if err != nil {
				return err
			}
			return tui.Browse(cfg.Process, cfg.Params, rep)
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a wage simulation ensemble",
		RunE:  runSimulation,
	}
	runCmd.Flags().Float64Var(&competitiveness, "competitiveness", config.DefaultCompetitiveness, "market competitiveness in [0,1]")
	runCmd.Flags().Float64Var(&initialWage, "wage", config.DefaultInitialWage, "starting wage")
	runCmd.Flags().IntVar(&runs, "runs", config.DefaultRuns, "independent trials (1-10)")
	runCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	runCmd.Flags().StringVar(&processName, "process", "pull", "wage process")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset scenario")
	runCmd.Flags().StringArrayVar(&tunableFlags, "set", nil, "process tunable as name=value (repeatable)")
	runCmd.Flags().StringVar(&csvPath, "csv", "", "write trajectories to CSV file")
	runCmd.Flags().StringVar(&jsonPath, "json", "", "write report to JSON file")
	runCmd.Flags().StringVar(&svgPath, "svg", "", "write trajectory plot to SVG file")
	runCmd.Flags().BoolVar(&showChart, "chart", false, "plot trajectories in the terminal")
	runCmd.Flags().BoolVar(&browse, "browse", false, "open the report browser")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "sweep competitiveness and chart convergence",
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0.0, "lowest competitiveness")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 1.0, "highest competitiveness")
	sweepCmd.Flags().IntVar(&sweepPoints, "points", 11, "grid points")
	sweepCmd.Flags().Float64Var(&initialWage, "wage", config.DefaultInitialWage, "starting wage")
	sweepCmd.Flags().IntVar(&runs, "runs", config.DefaultRuns, "independent trials per point (1-10)")
	sweepCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	sweepCmd.Flags().StringVar(&processName, "process", "pull", "wage process")
	sweepCmd.Flags().StringArrayVar(&tunableFlags, "set", nil, "process tunable as name=value (repeatable)")
	sweepCmd.Flags().StringVar(&csvPath, "csv", "", "write sweep points to CSV file")

	agentsCmd := &cobra.Command{
		Use:   "agents",
		Short: "run the agent-level negotiation scenario",
		RunE:  runAgents,
	}
	agentsCmd.Flags().Float64Var(&competitiveness, "competitiveness", config.DefaultCompetitiveness, "market competitiveness in [0,1]")
	agentsCmd.Flags().Float64Var(&initialWage, "wage", config.DefaultInitialWage, "reference wage")
	agentsCmd.Flags().IntVar(&ticks, "ticks", config.DefaultTicks, "market ticks to simulate")
	agentsCmd.Flags().IntVar(&workers, "workers", config.DefaultWorkers, "worker population")
	agentsCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	agentsCmd.Flags().StringVar(&preset, "preset", "", "use preset scenario")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tPROCESS\tCOMPETITIVENESS\tWAGE\tRUNS")
			for _, name := range config.ListPresets() {
				pc := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\t%d\n",
					name, pc.Process, pc.Params.Competitiveness,
					currency.Sprintf("%.0f", pc.Params.InitialWage), pc.Params.Runs)
			}
			return w.Flush()
		},
	}

	processesCmd := &cobra.Command{
		Use:   "processes",
		Short: "list registered wage processes",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("processes:")
			for _, name := range experiment.NewRegistry().ListProcesses() {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the simulation API and web form",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (default LABORSIM_ADDR or :8080)")

	rootCmd.AddCommand(runCmd, sweepCmd, agentsCmd, presetsCmd, processesCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSimulation(cmd *cobra.Command, args []string) error {
	if preset != "" {
		pc := config.GetPreset(preset)
		if pc == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		applyConfig(cmd, pc)
	}

	// Config file overrides preset; explicit flags override both.
	if configFile != "" {
		fc, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyConfig(cmd, fc)
	}

	overrides, err := parseTunables(tunableFlags)
	if err != nil {
		return err
	}
	tunables := mergeTunables(presetTunables, overrides)

	cfg := experiment.Config{
		Process: processName,
		Params: sim.Params{
			Competitiveness: competitiveness,
			InitialWage:     initialWage,
			Runs:            runs,
			Seed:            seed,
		},
		Sim:      engineCfg,
		Tunables: tunables,
	}

	fmt.Printf("running %s ensemble...\n", processName)
	start := time.Now()

	rep, err := experiment.New(cfg, experiment.NewRegistry()).Run(context.Background())
	if err != nil {
		return err
	}

	printReport(cfg.Params, rep, time.Since(start))

	if showChart {
		fmt.Println()
		fmt.Println(chartReport(rep))
	}
	if csvPath != "" {
		if err := export.SaveReportCSV(csvPath, rep); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", csvPath)
	}
	if jsonPath != "" {
		if err := export.SaveJSON(jsonPath, export.NewEnvelope(processName, cfg.Params, rep)); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", jsonPath)
	}
	if svgPath != "" {
		if err := os.WriteFile(svgPath, []byte(export.ReportSVG(rep, 800, 500)), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgPath)
	}
	if browse {
		return tui.Browse(processName, cfg.Params, rep)
	}

	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	overrides, err := parseTunables(tunableFlags)
	if err != nil {
		return err
	}

	registry := experiment.NewRegistry()
	factory, err := registry.Factory(processName, overrides)
	if err != nil {
		return err
	}

	base := sim.Params{
		Competitiveness: sweepMin,
		InitialWage:     initialWage,
		Runs:            runs,
		Seed:            seed,
	}

	fmt.Printf("sweeping %s over [%.2f, %.2f] in %d points...\n", processName, sweepMin, sweepMax, sweepPoints)
	pts, err := analysis.CompetitivenessSweep(context.Background(), engineCfg, factory, base, sweepMin, sweepMax, sweepPoints)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "COMPETITIVENESS\tMEAN WAGE\tVARIANCE\tMEAN STEPS")
	for _, p := range pts {
		fmt.Fprintf(w, "%.2f\t%s\t%s\t%.1f\n",
			p.Competitiveness,
			currency.Sprintf("%.2f", p.MeanTerminalWage),
			currency.Sprintf("%.2f", p.VarianceTerminalWage),
			p.MeanSteps)
	}
	w.Flush()

	steps := make([]float64, len(pts))
	for i, p := range pts {
		steps[i] = p.MeanSteps
	}
	fmt.Println()
	fmt.Println(asciigraph.Plot(steps,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("mean steps vs competitiveness"),
	))

	if csvPath != "" {
		if err := export.SaveSweepCSV(csvPath, pts); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", csvPath)
	}

	return nil
}

func runAgents(cmd *cobra.Command, args []string) error {
	if preset != "" {
		pc := config.GetPreset(preset)
		if pc == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		applyConfig(cmd, pc)
		if !cmd.Flags().Changed("ticks") {
			ticks = pc.Agents.Ticks
		}
		if !cmd.Flags().Changed("workers") {
			workers = pc.Agents.Workers
		}
	}

	scenario := market.Scenario{
		Competitiveness: competitiveness,
		InitialWage:     initialWage,
		Ticks:           ticks,
		Workers:         workers,
		Seed:            seed,
	}

	heading := color.New(color.FgCyan, color.Bold)
	heading.Printf("agent market, %d workers, competitiveness %.2f\n\n", workers, competitiveness)

	results := scenario.Run()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TICK\tHIRED\tMEAN WAGE\tPROFIT\tOFFERS")
	totalHired := 0
	for _, res := range results {
		fmt.Fprintf(w, "%d\t%d\t%s\t%s\t%d\n",
			res.Tick, res.Hired,
			currency.Sprintf("%.2f", res.MeanHiredWage),
			currency.Sprintf("%.2f", res.TotalProfit),
			len(res.Offers))
		totalHired += res.Hired
	}
	w.Flush()

	fmt.Println()
	if totalHired > 0 {
		color.Green("hired %d of %d workers", totalHired, workers)
	} else {
		color.Yellow("no workers hired; asks stayed above the profitable wage")
	}

	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	// .env is optional; environment variables win when both are set.
	if err := godotenv.Load(); err == nil {
		slog.Info("loaded .env")
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))

	if addr == "" {
		addr = web.DefaultAddr()
	}

	srv := web.NewServer(addr, experiment.NewRegistry(), web.CacheFromEnv())

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("laborsim api listening", "addr", srv.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case <-quit:
		slog.Info("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// applyConfig copies config values onto the shared flag variables, keeping
// any value the user set explicitly.
func applyConfig(cmd *cobra.Command, cfg *config.Config) {
	if !cmd.Flags().Changed("competitiveness") {
		competitiveness = cfg.Params.Competitiveness
	}
	if !cmd.Flags().Changed("wage") {
		initialWage = cfg.Params.InitialWage
	}
	if !cmd.Flags().Changed("runs") {
		runs = cfg.Params.Runs
	}
	if cfg.Params.Seed != 0 && !cmd.Flags().Changed("seed") {
		seed = cfg.Params.Seed
	}
	if !cmd.Flags().Changed("process") {
		processName = cfg.Process
	}
	engineCfg = cfg.SimConfig()
	presetTunables = cfg.Tunables
}

func parseTunables(specs []string) (map[string]float64, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	out := make(map[string]float64, len(specs))
	for _, spec := range specs {
		name, raw, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, fmt.Errorf("invalid tunable %q, want name=value", spec)
		}
		val, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid tunable %q: %w", spec, err)
		}
		out[name] = val
	}
	return out, nil
}

func mergeTunables(base, overrides map[string]float64) map[string]float64 {
	if len(base) == 0 {
		return overrides
	}
	merged := make(map[string]float64, len(base)+len(overrides))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	return merged
}

func printReport(p sim.Params, rep *sim.Report, elapsed time.Duration) {
	heading := color.New(color.FgCyan, color.Bold)
	heading.Printf("\n%s ensemble\n", processName)
	fmt.Printf("completed %d runs in %v\n\n", len(rep.Runs), elapsed)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tSTEPS\tTERMINAL WAGE")
	for i, traj := range rep.Trajectories {
		fmt.Fprintf(w, "%d\t%d\t%s\n", i, traj.Steps(), currency.Sprintf("%.2f", traj.Terminal()))
	}
	w.Flush()

	fmt.Println()
	fmt.Printf("mean terminal wage: %s\n", color.GreenString(currency.Sprintf("%.2f", rep.MeanTerminalWage)))
	fmt.Printf("variance:           %s\n", currency.Sprintf("%.2f", rep.VarianceTerminalWage))
	fmt.Printf("mean steps:         %.1f\n", rep.MeanSteps)

	if len(rep.Metrics) > 0 {
		names := make([]string, 0, len(rep.Metrics))
		for name := range rep.Metrics {
			names = append(names, name)
		}
		sort.Strings(names)
		fmt.Println("\nmetrics:")
		for _, name := range names {
			fmt.Printf("  %s: %.6f\n", name, rep.Metrics[name])
		}
	}
}

func chartReport(rep *sim.Report) string {
	series := make([][]float64, len(rep.Trajectories))
	for i, traj := range rep.Trajectories {
		series[i] = traj.Wages()
	}
	return asciigraph.PlotMany(series,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("wage vs step"),
	)
}

package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/episim/episim/internal/analysis"
	"github.com/episim/episim/internal/analytic"
	"github.com/episim/episim/internal/config"
	"github.com/episim/episim/internal/epi"
	"github.com/episim/episim/internal/integrators"
	"github.com/episim/episim/internal/phase"
	"github.com/episim/episim/internal/sim"
	"github.com/episim/episim/internal/sweep"
	"github.com/episim/episim/internal/viz"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
)

var (
	configFile string
	preset     string
	logLevel   string

	population float64
	infected   float64
	recovered  float64
	beta       float64
	gamma      float64
	horizon    float64
	samples    int
	integrator string
	tolerance  float64
	step       float64
	// Single intervention phase assembled from flags
	depression   float64
	intervention float64

	format     string
	plot       bool
	plotWidth  int
	plotHeight int
	frameRate  int

	// Sweep axes as comma separated lists
	betaList       string
	gammaList      string
	depressionList string
	durationList   string
	calibrate      bool
	workers        int

	// Final size inputs
	r0     float64
	s0     float64
	r0Init float64

	// Calibration inputs
	target  float64
	lo      float64
	hi      float64
	maxIter int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "episim",
		Short: "SIR epidemic simulation lab",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			logrus.SetLevel(lvl)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "log level (debug, info, warn, error)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a scenario",
		RunE:  runScenario,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "scenario file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset scenario")
	runCmd.Flags().Float64Var(&population, "pop", config.DefaultPopulation, "population size")
	runCmd.Flags().Float64Var(&infected, "infected", config.DefaultInfected, "initially infected count")
	runCmd.Flags().Float64Var(&recovered, "recovered", 0, "initially recovered count")
	runCmd.Flags().Float64Var(&beta, "beta", config.DefaultBeta, "transmission rate")
	runCmd.Flags().Float64Var(&gamma, "gamma", config.DefaultGamma, "recovery rate")
	runCmd.Flags().Float64Var(&horizon, "time", config.DefaultHorizon, "horizon")
	runCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "output samples per phase")
	runCmd.Flags().StringVar(&integrator, "integrator", "rk45", "integrator")
	runCmd.Flags().Float64Var(&tolerance, "tol", config.DefaultTolerance, "adaptive error tolerance")
	runCmd.Flags().Float64Var(&step, "step", config.DefaultStep, "fixed step size (non-adaptive integrators)")
	runCmd.Flags().Float64Var(&depression, "depression", 0.5, "beta factor of the intervention (with --intervention)")
	runCmd.Flags().Float64Var(&intervention, "intervention", 0, "intervention duration before release")
	runCmd.Flags().StringVar(&format, "format", "table", "output format (table, csv, json)")
	runCmd.Flags().BoolVar(&plot, "plot", false, "chart compartment fractions")
	runCmd.Flags().IntVar(&plotWidth, "plot-width", 80, "chart width")
	runCmd.Flags().IntVar(&plotHeight, "plot-height", 12, "chart height")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "evaluate a grid of intervention scenarios",
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&betaList, "betas", "2", "transmission rates, comma separated")
	sweepCmd.Flags().StringVar(&gammaList, "gammas", "0.9", "recovery rates, comma separated")
	sweepCmd.Flags().StringVar(&depressionList, "depressions", "0.5", "intervention beta factors, comma separated")
	sweepCmd.Flags().StringVar(&durationList, "durations", "10", "intervention durations, comma separated")
	sweepCmd.Flags().Float64Var(&population, "pop", config.DefaultPopulation, "population size")
	sweepCmd.Flags().Float64Var(&infected, "infected", config.DefaultInfected, "initially infected count")
	sweepCmd.Flags().Float64Var(&horizon, "time", config.DefaultHorizon, "horizon")
	sweepCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "output samples per phase")
	sweepCmd.Flags().StringVar(&integrator, "integrator", "rk45", "integrator")
	sweepCmd.Flags().Float64Var(&tolerance, "tol", config.DefaultTolerance, "adaptive error tolerance")
	sweepCmd.Flags().BoolVar(&calibrate, "calibrate", false, "calibrate intervention beta to the herd target")
	sweepCmd.Flags().IntVar(&workers, "workers", 0, "worker goroutines (0 = all cpus)")
	sweepCmd.Flags().StringVar(&format, "format", "table", "output format (table, csv, json)")

	finalSizeCmd := &cobra.Command{
		Use:   "finalsize",
		Short: "closed-form epidemic size",
		RunE:  runFinalSize,
	}
	finalSizeCmd.Flags().Float64Var(&r0, "r0", 2.0, "basic reproduction number")
	finalSizeCmd.Flags().Float64Var(&s0, "s0", 1.0, "initial susceptible fraction")
	finalSizeCmd.Flags().Float64Var(&r0Init, "recovered0", 0, "initial recovered fraction")
	finalSizeCmd.Flags().BoolVar(&plot, "plot", false, "chart final size against r0")
	finalSizeCmd.Flags().IntVar(&plotWidth, "plot-width", 80, "chart width")
	finalSizeCmd.Flags().IntVar(&plotHeight, "plot-height", 12, "chart height")

	calibrateCmd := &cobra.Command{
		Use:   "calibrate",
		Short: "solve for the beta hitting a target epidemic size",
		RunE:  runCalibrate,
	}
	calibrateCmd.Flags().Float64Var(&gamma, "gamma", config.DefaultGamma, "recovery rate")
	calibrateCmd.Flags().Float64Var(&target, "target", 0.55, "target final recovered fraction")
	calibrateCmd.Flags().Float64Var(&lo, "lo", 0, "bracket lower bound (0 = derived from gamma)")
	calibrateCmd.Flags().Float64Var(&hi, "hi", 0, "bracket upper bound (0 = derived from gamma)")
	calibrateCmd.Flags().Float64Var(&tolerance, "tol", 1e-6, "accepted residual")
	calibrateCmd.Flags().IntVar(&maxIter, "max-iter", 100, "bisection iteration cap")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run a scenario with interactive playback",
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&configFile, "config", "", "scenario file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset scenario")
	liveCmd.Flags().Float64Var(&population, "pop", config.DefaultPopulation, "population size")
	liveCmd.Flags().Float64Var(&infected, "infected", config.DefaultInfected, "initially infected count")
	liveCmd.Flags().Float64Var(&recovered, "recovered", 0, "initially recovered count")
	liveCmd.Flags().Float64Var(&beta, "beta", config.DefaultBeta, "transmission rate")
	liveCmd.Flags().Float64Var(&gamma, "gamma", config.DefaultGamma, "recovery rate")
	liveCmd.Flags().Float64Var(&horizon, "time", config.DefaultHorizon, "horizon")
	liveCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "output samples per phase")
	liveCmd.Flags().StringVar(&integrator, "integrator", "rk45", "integrator")
	liveCmd.Flags().Float64Var(&tolerance, "tol", config.DefaultTolerance, "adaptive error tolerance")
	liveCmd.Flags().Float64Var(&step, "step", config.DefaultStep, "fixed step size (non-adaptive integrators)")
	liveCmd.Flags().Float64Var(&depression, "depression", 0.5, "beta factor of the intervention (with --intervention)")
	liveCmd.Flags().Float64Var(&intervention, "intervention", 0, "intervention duration before release")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "playback frame rate")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			if len(names) == 0 {
				fmt.Println("no presets available")
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tBETA\tGAMMA\tR0\tHORIZON\tPHASES")
			for _, name := range names {
				s := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.3f\t%.0f\t%d\n",
					name, s.Beta, s.Gamma, s.Params().R0(), s.Horizon, len(s.Phases))
			}
			return w.Flush()
		},
	}

	integratorsCmd := &cobra.Command{
		Use:   "integrators",
		Short: "list available integrators",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range integrators.Names() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, sweepCmd, finalSizeCmd, calibrateCmd, liveCmd, presetsCmd, integratorsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadScenario resolves the scenario for run and live: preset first, then
// config file, then explicit CLI flags on top.
func loadScenario(cmd *cobra.Command) (*config.Scenario, error) {
	s := config.DefaultScenario()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		s = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		s = loaded
	}

	if cmd.Flags().Changed("pop") {
		s.Population = population
	}
	if cmd.Flags().Changed("infected") {
		s.Infected = infected
	}
	if cmd.Flags().Changed("recovered") {
		s.Recovered = recovered
	}
	if cmd.Flags().Changed("beta") {
		s.Beta = beta
	}
	if cmd.Flags().Changed("gamma") {
		s.Gamma = gamma
	}
	if cmd.Flags().Changed("time") {
		s.Horizon = horizon
	}
	if cmd.Flags().Changed("samples") {
		s.Samples = samples
	}
	if cmd.Flags().Changed("integrator") {
		s.Integrator = integrator
	}
	if cmd.Flags().Changed("tol") {
		s.Tolerance = tolerance
	}
	if cmd.Flags().Changed("step") {
		s.Step = step
	}
	if cmd.Flags().Changed("intervention") {
		s.Phases = []config.PhaseSpec{{Name: "intervention", Depression: depression, Duration: intervention}}
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func simulate(s *config.Scenario) (*phase.Trajectory, error) {
	stepper, err := integrators.New(s.Integrator)
	if err != nil {
		return nil, err
	}
	return phase.Run(context.Background(), stepper, s.SimConfig(), s.Initial(), 0, s.PhaseList())
}

func runScenario(cmd *cobra.Command, args []string) error {
	s, err := loadScenario(cmd)
	if err != nil {
		return err
	}

	if format == "table" {
		fmt.Printf("running %s scenario...\n", s.Name)
	}
	start := time.Now()
	traj, err := simulate(s)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	switch format {
	case "csv":
		return writeRunCSV(traj)
	case "json":
		return writeRunJSON(s, traj)
	case "table":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	fmt.Printf("completed in %v\n", elapsed)
	printSummary(s, traj)

	if plot {
		fmt.Println()
		fmt.Println(viz.PlotFractions(traj, plotWidth, plotHeight))
	}
	return nil
}

func printSummary(s *config.Scenario, traj *phase.Trajectory) {
	n := traj.Population()
	final := traj.Final()
	times, iSeries := traj.Series(epi.Infected)
	peakIdx := floats.MaxIdx(iSeries)

	fmt.Printf("final time: %.2f\n", final.Time)
	fmt.Printf("susceptible: %.1f  infected: %.1f  recovered: %.1f\n",
		final.State[int(epi.Susceptible)],
		final.State[int(epi.Infected)],
		final.State[int(epi.Recovered)])

	fmt.Println("\nmetrics:")
	fmt.Printf("  total infected fraction: %.6f\n", analysis.FinalFraction(traj, epi.Recovered))
	fmt.Printf("  peak infected fraction: %.6f at t=%.2f\n", analysis.PeakFraction(traj, epi.Infected), times[peakIdx])

	baseR0 := s.Params().R0()
	fmt.Printf("  baseline r0: %.4f\n", baseR0)
	if baseR0 > 1 {
		herd := analytic.HerdImmunityThreshold(baseR0)
		cross, err := analysis.FirstFractionReach(traj, epi.Recovered, herd, 0)
		switch {
		case err == nil:
			fmt.Printf("  herd threshold %.4f: reached at t=%.2f\n", herd, cross.Time)
		case errors.Is(err, analysis.ErrNotReached):
			fmt.Printf("  herd threshold %.4f: not reached\n", herd)
		}
	}

	for k := 1; k < len(traj.Segments); k++ {
		b, ok := traj.Boundary(k)
		if !ok {
			continue
		}
		fmt.Printf("  handoff %s -> %s at t=%.2f: infected %.4f, recovered %.4f\n",
			traj.Segments[k-1].Name, traj.Segments[k].Name, b.Time,
			b.Later.State[int(epi.Infected)]/n,
			b.Later.State[int(epi.Recovered)]/n)
	}

	fmt.Println("\nphases:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PHASE\tBETA\tGAMMA\tR0\tSTART\tEND")
	for _, seg := range traj.Segments {
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.4f\t%.2f\t%.2f\n",
			seg.Name, seg.Params.Beta, seg.Params.Gamma, seg.Params.R0(),
			seg.Traj.Times[0], seg.Traj.FinalTime())
	}
	w.Flush()

	var st sim.Stats
	for _, seg := range traj.Segments {
		st.Steps += seg.Traj.Stats.Steps
		st.Rejected += seg.Traj.Stats.Rejected
		st.Evals += seg.Traj.Stats.Evals
	}
	fmt.Printf("\nsteps: %d (rejected %d, derivative evals %d)\n", st.Steps, st.Rejected, st.Evals)
}

func writeRunCSV(traj *phase.Trajectory) error {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"time", "phase", "susceptible", "infected", "recovered"}); err != nil {
		return err
	}

	// Raw samples keep both tagged copies of each handoff instant.
	for _, sm := range traj.Samples() {
		row := []string{
			strconv.FormatFloat(sm.Time, 'f', 6, 64),
			traj.Segments[sm.Phase].Name,
			strconv.FormatFloat(sm.State[int(epi.Susceptible)], 'f', 6, 64),
			strconv.FormatFloat(sm.State[int(epi.Infected)], 'f', 6, 64),
			strconv.FormatFloat(sm.State[int(epi.Recovered)], 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

type sampleExport struct {
	Time        float64 `json:"time"`
	Phase       string  `json:"phase"`
	Susceptible float64 `json:"susceptible"`
	Infected    float64 `json:"infected"`
	Recovered   float64 `json:"recovered"`
}

type runExport struct {
	Scenario      string         `json:"scenario"`
	Integrator    string         `json:"integrator"`
	Population    float64        `json:"population"`
	BaselineR0    float64        `json:"baseline_r0"`
	TotalInfected float64        `json:"total_infected"`
	PeakInfected  float64        `json:"peak_infected"`
	Samples       []sampleExport `json:"samples"`
}

func writeRunJSON(s *config.Scenario, traj *phase.Trajectory) error {
	out := runExport{
		Scenario:      s.Name,
		Integrator:    s.Integrator,
		Population:    traj.Population(),
		BaselineR0:    s.Params().R0(),
		TotalInfected: analysis.FinalFraction(traj, epi.Recovered),
		PeakInfected:  analysis.PeakFraction(traj, epi.Infected),
	}
	for _, sm := range traj.Samples() {
		out.Samples = append(out.Samples, sampleExport{
			Time:        sm.Time,
			Phase:       traj.Segments[sm.Phase].Name,
			Susceptible: sm.State[int(epi.Susceptible)],
			Infected:    sm.State[int(epi.Infected)],
			Recovered:   sm.State[int(epi.Recovered)],
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func parseFloats(list string) ([]float64, error) {
	parts := strings.Split(list, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	betas, err := parseFloats(betaList)
	if err != nil {
		return err
	}
	gammas, err := parseFloats(gammaList)
	if err != nil {
		return err
	}
	depressions, err := parseFloats(depressionList)
	if err != nil {
		return err
	}
	durations, err := parseFloats(durationList)
	if err != nil {
		return err
	}

	stepper, err := integrators.New(integrator)
	if err != nil {
		return err
	}

	cfg := sweep.Config{
		Axes: sweep.Axes{
			Betas:       betas,
			Gammas:      gammas,
			Depressions: depressions,
			Durations:   durations,
		},
		Population:      population,
		InitialInfected: infected,
		Horizon:         horizon,
		Samples:         samples,
		Calibrate:       calibrate,
		Workers:         workers,
	}

	simCfg := sim.DefaultConfig()
	if cmd.Flags().Changed("tol") {
		simCfg.ATol = tolerance
		simCfg.RTol = tolerance
	}

	start := time.Now()
	res, err := sweep.New(cfg, stepper, simCfg).Run(context.Background())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	switch format {
	case "csv":
		return writeSweepCSV(res.Rows)
	case "json":
		return writeSweepJSON(res.Rows)
	case "table":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	fmt.Println(viz.RenderSweep(res.Rows))
	if fails := res.Failures(); len(fails) > 0 {
		fmt.Printf("%d of %d combinations failed\n", len(fails), len(res.Rows))
	}
	fmt.Printf("completed in %v\n", elapsed)
	return nil
}

func writeSweepCSV(rows []sweep.Row) error {
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{
		"idx", "beta", "gamma", "depression", "duration",
		"baseline_r0", "intervention_beta", "intervention_r0",
		"total_infected", "peak_infected", "intervention_total", "infected_at_shift",
		"status",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }
	for _, r := range rows {
		row := []string{
			strconv.Itoa(r.Index),
			f(r.Beta), f(r.Gamma), f(r.Depression), f(r.Duration),
		}
		if r.Failed() {
			row = append(row, "", "", "", "", "", "", "", r.Kind)
		} else {
			row = append(row,
				f(r.BaselineR0), f(r.InterventionBeta), f(r.InterventionR0),
				f(r.TotalInfected), f(r.PeakInfected), f(r.InterventionTotal), f(r.InfectedAtShift),
				"ok")
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

type sweepRowExport struct {
	Index             int     `json:"index"`
	Beta              float64 `json:"beta"`
	Gamma             float64 `json:"gamma"`
	Depression        float64 `json:"depression"`
	Duration          float64 `json:"duration"`
	BaselineR0        float64 `json:"baseline_r0,omitempty"`
	InterventionBeta  float64 `json:"intervention_beta,omitempty"`
	InterventionR0    float64 `json:"intervention_r0,omitempty"`
	TotalInfected     float64 `json:"total_infected,omitempty"`
	PeakInfected      float64 `json:"peak_infected,omitempty"`
	InterventionTotal float64 `json:"intervention_total,omitempty"`
	InfectedAtShift   float64 `json:"infected_at_shift,omitempty"`
	Kind              string  `json:"kind,omitempty"`
	Error             string  `json:"error,omitempty"`
}

func writeSweepJSON(rows []sweep.Row) error {
	out := make([]sweepRowExport, 0, len(rows))
	for _, r := range rows {
		e := sweepRowExport{
			Index:      r.Index,
			Beta:       r.Beta,
			Gamma:      r.Gamma,
			Depression: r.Depression,
			Duration:   r.Duration,
		}
		if r.Failed() {
			e.Kind = r.Kind
			e.Error = r.Err.Error()
		} else {
			e.BaselineR0 = r.BaselineR0
			e.InterventionBeta = r.InterventionBeta
			e.InterventionR0 = r.InterventionR0
			e.TotalInfected = r.TotalInfected
			e.PeakInfected = r.PeakInfected
			e.InterventionTotal = r.InterventionTotal
			e.InfectedAtShift = r.InfectedAtShift
		}
		out = append(out, e)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func runFinalSize(cmd *cobra.Command, args []string) error {
	sInf, err := analytic.FinalSusceptible(r0, s0, r0Init)
	if err != nil {
		return err
	}
	rInf, err := analytic.FinalRecovered(r0, s0, r0Init)
	if err != nil {
		return err
	}

	fmt.Printf("r0: %.4f\n", r0)
	fmt.Printf("final susceptible fraction: %.6f\n", sInf)
	fmt.Printf("final recovered fraction: %.6f\n", rInf)
	if r0 > 1 {
		fmt.Printf("herd immunity threshold: %.6f\n", analytic.HerdImmunityThreshold(r0))
	}

	if plot {
		const points = 80
		values := make([]float64, points)
		for i := 0; i < points; i++ {
			r := 0.5 + 4.5*float64(i)/float64(points-1)
			v, err := analytic.FinalRecovered(r, s0, r0Init)
			if err != nil {
				return err
			}
			values[i] = v
		}
		fmt.Println()
		fmt.Println(viz.PlotSeries(values, "final recovered fraction, r0 in [0.5, 5]", plotWidth, plotHeight))
	}
	return nil
}

func runCalibrate(cmd *cobra.Command, args []string) error {
	br := analytic.DefaultBracket(gamma)
	if cmd.Flags().Changed("lo") {
		br.Lo = lo
	}
	if cmd.Flags().Changed("hi") {
		br.Hi = hi
	}
	opt := analytic.DefaultOptions()
	if cmd.Flags().Changed("tol") {
		opt.Tol = tolerance
	}
	if cmd.Flags().Changed("max-iter") {
		opt.MaxIter = maxIter
	}

	res, err := analytic.CalibrateBeta(gamma, target, br, opt)
	if err != nil {
		return err
	}

	fmt.Printf("calibrated beta: %.6f\n", res.Beta)
	fmt.Printf("intervention r0: %.6f\n", res.Beta/gamma)
	fmt.Printf("iterations: %d\n", res.Iterations)
	fmt.Printf("residual: %.2e\n", res.Residual)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	s, err := loadScenario(cmd)
	if err != nil {
		return err
	}

	traj, err := simulate(s)
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewPlayer(s.Name, traj, frameRate))
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

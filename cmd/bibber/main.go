package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/bibber/internal/config"
	"github.com/san-kum/bibber/internal/engine"
	"github.com/san-kum/bibber/internal/export"
	"github.com/san-kum/bibber/internal/progress"
	"github.com/san-kum/bibber/internal/recipe"
	"github.com/san-kum/bibber/internal/seed"
	"github.com/san-kum/bibber/internal/sim"
	"github.com/san-kum/bibber/internal/trajectory"
	"github.com/san-kum/bibber/internal/tui"
)

var (
	configFile    string
	output        string
	svgOutput     string
	seedValue     int64
	minSeparation float64
	mass          float64
	cutoff        float64
	wrapPolicy    string
	thermostat    string
	logLevel      string
	live          bool
	progressEvery uint64
)

const sampleRecipe = `title My universe
start 0:ns
end 0.1:ns
timestep 10:fs
snapshot 1:ps
temperature 300:K
particles 100
boundary cubic 100:nm 100:nm 100:nm
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "bibber",
		Short: "molecular dynamics in a periodic box",
	}

	runCmd := &cobra.Command{
		Use:   "run [recipe]",
		Short: "run a simulation and export the trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  runSimulation,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "options file (yaml)")
	runCmd.Flags().StringVarP(&output, "output", "o", "-", "trajectory output path (- for stdout)")
	runCmd.Flags().StringVar(&svgOutput, "svg", "", "also write an XY path plot (svg)")
	runCmd.Flags().Int64Var(&seedValue, "seed", 0, "placement seed (0 = derive from clock)")
	runCmd.Flags().Float64Var(&minSeparation, "min-separation", seed.DefaultMinSeparation, "placement pruning distance (m)")
	runCmd.Flags().Float64Var(&mass, "mass", seed.DefaultMass, "particle mass (kg)")
	runCmd.Flags().Float64Var(&cutoff, "cutoff", engine.CutoffDefault, "interaction cutoff radius (m)")
	runCmd.Flags().StringVar(&wrapPolicy, "wrap", "shift", "boundary policy: shift or modulo")
	runCmd.Flags().StringVar(&thermostat, "thermostat", "isokinetic", "temperature control: isokinetic or off")
	runCmd.Flags().StringVar(&logLevel, "log-level", "info", "log verbosity")
	runCmd.Flags().BoolVar(&live, "live", false, "interactive progress view")
	runCmd.Flags().Uint64Var(&progressEvery, "progress-every", 100, "progress report cadence in steps")

	checkCmd := &cobra.Command{
		Use:   "check [recipe]",
		Short: "parse a recipe and print the derived run plan",
		Args:  cobra.ExactArgs(1),
		RunE:  checkRecipe,
	}

	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "print a starter recipe",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print(sampleRecipe)
		},
	}

	rootCmd.AddCommand(runCmd, checkCmd, sampleCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadOptions merges the defaults, the optional YAML options file and
// any flags the user set explicitly, in that order.
func loadOptions(cmd *cobra.Command) (*config.Options, error) {
	opts := config.Default()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		opts = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		opts.Output = output
	}
	if flags.Changed("svg") {
		opts.SVG = svgOutput
	}
	if flags.Changed("seed") {
		opts.Seed = seedValue
	}
	if flags.Changed("min-separation") {
		opts.MinSeparation = minSeparation
	}
	if flags.Changed("mass") {
		opts.Mass = mass
	}
	if flags.Changed("cutoff") {
		opts.Cutoff = cutoff
	}
	if flags.Changed("wrap") {
		opts.Wrap = wrapPolicy
	}
	if flags.Changed("thermostat") {
		opts.Thermostat = thermostat
	}
	if flags.Changed("log-level") {
		opts.LogLevel = logLevel
	}
	if flags.Changed("live") {
		opts.Live = live
	}
	if flags.Changed("progress-every") {
		opts.ProgressEvery = progressEvery
	}
	return opts, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	opts, err := loadOptions(cmd)
	if err != nil {
		return err
	}

	level, err := logrus.ParseLevel(opts.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q", opts.LogLevel)
	}
	logrus.SetLevel(level)
	logrus.SetOutput(os.Stderr)

	rcp, err := recipe.Load(args[0])
	if err != nil {
		return err
	}

	wrapMode, err := opts.WrapMode()
	if err != nil {
		return err
	}
	thermostatMode, err := opts.ThermostatMode()
	if err != nil {
		return err
	}

	universe, err := engine.New(engine.Config{
		Start:       rcp.Start,
		Dt:          rcp.Timestep,
		Boundary:    rcp.Boundary,
		Temperature: rcp.Temperature,
		Cutoff:      opts.Cutoff,
		Wrap:        wrapMode,
		Thermostat:  thermostatMode,
	})
	if err != nil {
		return err
	}

	seedVal := opts.Seed
	if seedVal == 0 {
		seedVal = time.Now().UnixNano()
	}
	gen := seed.New(seedVal, rcp.Boundary)
	gen.MinSeparation = opts.MinSeparation
	gen.Mass = opts.Mass
	particles, err := gen.Generate(rcp.Particles)
	if err != nil {
		return err
	}
	universe.AddParticles(particles)
	logrus.WithFields(logrus.Fields{
		"particles": len(particles),
		"seed":      seedVal,
		"steps":     rcp.Timesteps(),
	}).Info("universe seeded")

	traj := trajectory.FromUniverse(universe, rcp.Title)
	runner := sim.NewRunner(universe, traj, rcp.End, rcp.Snapshot)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var result *sim.Result
	var runErr error
	if opts.Live {
		updates := make(chan tui.Update, 16)
		runner.AddObserver(tui.NewObserver(updates, rcp.Timesteps(), 0))

		ctx, cancel := context.WithCancel(ctx)
		done := make(chan struct{})
		go func() {
			defer close(done)
			result, runErr = runner.Run(ctx)
			close(updates)
		}()
		if err := tui.Run(tui.New(rcp.Title, rcp.End, updates)); err != nil {
			logrus.Warnf("live view failed: %v", err)
		}
		cancel()
		<-done
	} else {
		runner.AddObserver(progress.NewReporter(rcp.Timesteps(), opts.ProgressEvery))
		result, runErr = runner.Run(ctx)
	}

	if runErr != nil {
		logrus.Warnf("run interrupted: %v; exporting partial trajectory", runErr)
	}
	if result.Diverged != nil {
		logrus.Warnf("simulation diverged at t=%.3f ps after %d steps: %v; trajectory up to the last valid frame follows",
			result.SimTime.AsPicoseconds(), result.StepsTaken, result.Diverged)
	}
	logrus.WithFields(logrus.Fields{
		"frames": result.Frames,
		"steps":  result.StepsTaken,
		"t_ps":   result.SimTime.AsPicoseconds(),
	}).Info("run finished")

	if err := writeTrajectory(traj, opts.Output); err != nil {
		return err
	}
	if opts.SVG != "" {
		svg := export.PathsSVG(traj, 800, 800)
		if err := os.WriteFile(opts.SVG, []byte(svg), 0644); err != nil {
			return err
		}
		logrus.Infof("wrote path plot to %s", opts.SVG)
	}

	if result.Diverged != nil {
		return fmt.Errorf("simulation ended early: %w", result.Diverged)
	}
	return runErr
}

func writeTrajectory(traj *trajectory.Trajectory, path string) error {
	if path == "" || path == "-" {
		return traj.WriteGRO(os.Stdout)
	}
	if err := traj.WriteFile(path); err != nil {
		return err
	}
	logrus.Infof("wrote trajectory to %s", path)
	return nil
}

func checkRecipe(cmd *cobra.Command, args []string) error {
	rcp, err := recipe.Load(args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "title\t%s\n", rcp.Title)
	fmt.Fprintf(w, "duration\t%g ns\n", rcp.Duration().AsNanoseconds())
	fmt.Fprintf(w, "timestep\t%g fs\n", rcp.Timestep.AsFemtoseconds())
	fmt.Fprintf(w, "timesteps\t%d\n", rcp.Timesteps())
	fmt.Fprintf(w, "snapshots\t%d\n", rcp.Snapshots())
	fmt.Fprintf(w, "temperature\t%g K\n", rcp.Temperature)
	fmt.Fprintf(w, "particles\t%d\n", rcp.Particles)
	fmt.Fprintf(w, "boundary\t%g x %g x %g nm\n",
		rcp.Boundary.X*1e9, rcp.Boundary.Y*1e9, rcp.Boundary.Z*1e9)
	return w.Flush()
}

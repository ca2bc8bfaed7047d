package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/rgracey/simlab/internal/catalog"
	"github.com/rgracey/simlab/internal/colors"
	"github.com/rgracey/simlab/internal/config"
	"github.com/rgracey/simlab/internal/record"
	"github.com/rgracey/simlab/internal/shell"
	"github.com/rgracey/simlab/internal/storage"
	"github.com/spf13/cobra"
)

var (
	dataDir    string
	configFile string
	preset     string
	profile    string
	duration   float64
	dt         float64
	frameRate  int
	series     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "simlab",
		Short: "interactive physics and math simulations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, "")
			if err != nil {
				return err
			}
			return shell.Run(catalog.NewRegistry(), cfg, colors.ByName(cfg.Profile), cfg.Screen)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".simlab", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&profile, "profile", "", "color profile (default|projector)")

	runCmd := &cobra.Command{
		Use:   "run [screen]",
		Short: "run a screen interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runScreen,
	}
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().IntVar(&frameRate, "fps", 0, "frame rate override")

	recordCmd := &cobra.Command{
		Use:   "record [screen]",
		Short: "run a screen headless and save its probe series",
		Args:  cobra.ExactArgs(1),
		RunE:  recordScreen,
	}
	recordCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	recordCmd.Flags().Float64Var(&duration, "time", 10.0, "duration in model seconds")
	recordCmd.Flags().Float64Var(&dt, "dt", 0, "timestep override")

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded probe series",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&series, "series", "", "probe name (defaults to the first)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	screensCmd := &cobra.Command{
		Use:   "screens",
		Short: "list available screens",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTITLE\tDESCRIPTION")
			for _, s := range catalog.NewRegistry().All() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", s.Name, s.Title, s.Description)
			}
			return w.Flush()
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [screen]",
		Short: "list presets for a screen",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for screen: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config init [path]",
		Short: "write a default config file",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] != "init" {
				return fmt.Errorf("unknown config subcommand: %s", args[0])
			}
			path := "simlab.yaml"
			if len(args) > 1 {
				path = args[1]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, recordCmd, plotCmd, listCmd, screensCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves precedence: preset, then config file, then CLI
// flag overrides.
func loadConfig(cmd *cobra.Command, screenArg string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		if screenArg == "" {
			return nil, fmt.Errorf("--preset requires a screen argument")
		}
		p := config.GetPreset(screenArg, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(screenArg))
		}
		// Copy so flag overrides below never mutate the preset table.
		c := *p
		cfg = &c
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if screenArg != "" {
		cfg.Screen = screenArg
	}
	if profile != "" {
		cfg.Profile = profile
	}
	if cmd.Flags().Changed("fps") && frameRate > 0 {
		cfg.FrameRate = frameRate
		cfg.Dt = 1.0 / float64(frameRate)
	}
	if cmd.Flags().Changed("dt") && dt > 0 {
		cfg.Dt = dt
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runScreen(cmd *cobra.Command, args []string) error {
	screenArg := ""
	if len(args) > 0 {
		screenArg = args[0]
	}

	cfg, err := loadConfig(cmd, screenArg)
	if err != nil {
		return err
	}

	return shell.Run(catalog.NewRegistry(), cfg, colors.ByName(cfg.Profile), cfg.Screen)
}

func recordScreen(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args[0])
	if err != nil {
		return err
	}

	reg := catalog.NewRegistry()
	s, err := reg.Get(cfg.Screen)
	if err != nil {
		return err
	}

	model, _ := s.New(cfg, colors.ByName(cfg.Profile))
	result, err := record.Run(model, s.Name, duration, cfg.Dt)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(result)
	if err != nil {
		return err
	}

	fmt.Printf("saved run %s (%d samples)\n\n", runID, len(result.Times))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PROBE\tFINAL")
	for _, name := range result.Names {
		fmt.Fprintf(w, "%s\t%.6f\n", name, result.Final()[name])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(result.Names) > 0 {
		name := result.Names[0]
		fmt.Printf("\n%s over time:\n", name)
		fmt.Println(asciigraph.Plot(result.Series[name], asciigraph.Height(10), asciigraph.Width(70)))
	}

	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	meta, err := st.Load(args[0])
	if err != nil {
		return fmt.Errorf("unknown run: %s", args[0])
	}

	times, data, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if len(times) == 0 {
		return fmt.Errorf("run %s has no samples", args[0])
	}

	name := series
	if name == "" {
		name = meta.Probes[0]
	}
	col, ok := data[name]
	if !ok {
		return fmt.Errorf("unknown series %s (available: %v)", name, meta.Probes)
	}

	fmt.Printf("%s · %s · %.1fs\n", meta.Screen, name, meta.Duration)
	fmt.Println(asciigraph.Plot(col, asciigraph.Height(14), asciigraph.Width(70)))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no recorded runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCREEN\tDURATION\tPROBES\tWHEN")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.1fs\t%d\t%s\n",
			r.ID, r.Screen, r.Duration, len(r.Probes), r.Timestamp.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

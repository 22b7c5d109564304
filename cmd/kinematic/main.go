package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/oomph-ac/kinematic/locomotion"
	"github.com/oomph-ac/kinematic/settings"
	"github.com/oomph-ac/kinematic/simulation"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "kinematic",
		Short: "Walk kinematic characters through a demo course",
		Long: `Kinematic steps characters through a course of steps, ledges, ramps, slopes,
walls and terrain, and reports where every character ends up.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringP("config", "c", "config.toml", "Path of the settings file")

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default settings file",
		RunE:  runInit,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the demo course",
		RunE:  runRun,
	}
	runCmd.Flags().Bool("statsview", false, "Serve runtime statistics while running")
	runCmd.Flags().Bool("trace", false, "Log the arbitration trace of every frame")
	runCmd.Flags().StringSlice("lanes", nil, "Lanes to place characters on (default: all)")
	runCmd.Flags().Float32("seconds", 0, "Simulated time, overriding the settings")

	rootCmd.AddCommand(initCmd, runCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runInit(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("config")
	if err := settings.SaveDefault(path); err != nil {
		return err
	}
	fmt.Printf("Default settings written to %s\n", path)
	return nil
}

func runRun(cmd *cobra.Command, _ []string) error {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})

	s, err := loadSettings(cmd, log)
	if err != nil {
		return err
	}
	level, _ := logrus.ParseLevel(s.Debug.LogLevel)
	log.SetLevel(level)

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			return fmt.Errorf("failed initialising sentry: %w", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	if statsView, _ := cmd.Flags().GetBool("statsview"); statsView || s.Debug.StatsView {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(s.Debug.StatsAddr))

		mgr := statsview.New()
		go mgr.Start()
		log.Infof("statsview is now serving on http://%s/debug/statsview", s.Debug.StatsAddr)
	}

	runner, _, err := simulation.NewCourse(s, log)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	frames := s.Frames()
	log.Infof("running %d characters for %d frames (%.1fs)", len(runner.Characters()), frames, s.Simulation.Seconds)
	if err := runner.Run(ctx, frames); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	for _, ch := range runner.Characters() {
		last, _ := ch.Recording.Last()
		log.WithFields(logrus.Fields{
			"character": ch.Name,
			"id":        ch.ID.String()[:8],
			"state":     last.State,
		}).Infof("ended at %.3f, %.3f, %.3f after %d state changes", last.Position.X(), last.Position.Y(), last.Position.Z(), len(ch.Recording.Transitions())-1)
	}

	stats := runner.Stats()
	log.WithFields(logrus.Fields{
		"frames": stats.Frames,
		"mean":   stats.Mean,
		"median": stats.Median,
		"p99":    stats.P99,
	}).Info("frame timings")
	log.Infof("trajectory digest: %016x", runner.Digest())
	return nil
}

// loadSettings loads the settings file passed on the command line, falling back to the default
// settings if it does not exist, and applies the command line overrides.
func loadSettings(cmd *cobra.Command, log *logrus.Logger) (settings.Settings, error) {
	path, _ := cmd.Flags().GetString("config")
	s, err := settings.Load(path)
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		log.Warnf("settings file %s not found, using default settings", path)
		s, err = settings.DefaultSettings(), nil
	}
	if err != nil {
		return settings.Settings{}, err
	}

	if lanes, _ := cmd.Flags().GetStringSlice("lanes"); len(lanes) != 0 {
		s.Simulation.Lanes = lanes
	}
	if seconds, _ := cmd.Flags().GetFloat32("seconds"); seconds > 0 {
		s.Simulation.Seconds = seconds
	}
	if trace, _ := cmd.Flags().GetBool("trace"); trace {
		s.Debug.Modes = append(s.Debug.Modes, locomotion.DebugModeArbitration.String())
		s.Debug.LogLevel = logrus.DebugLevel.String()
	}
	return s, s.Validate()
}

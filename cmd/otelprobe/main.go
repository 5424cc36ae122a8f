package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/dm/otelprobe/internal/client"
	"github.com/dm/otelprobe/internal/config"
	"github.com/dm/otelprobe/internal/monitor"
	"github.com/dm/otelprobe/internal/report"
	"github.com/dm/otelprobe/internal/tui"
)

// Exit codes: 0 when the collector meets the acceptance tier, 1 when it
// is unreachable or below it, 2 for configuration and usage errors.
const (
	exitOK     = 0
	exitUnwell = 1
	exitUsage  = 2
)

type runMode int

const (
	modeFull runMode = iota
	modeHealth
	modeStats
	modeContinuous
	modeWatch
)

// resolveMode maps the mode flags onto a single run mode. Watch wins over
// continuous, continuous over the section flags. Asking for both the
// health-only and the stats-only section is a usage error.
func resolveMode(healthOnly, statsOnly, continuous, watch bool) (runMode, error) {
	if healthOnly && statsOnly {
		return modeFull, fmt.Errorf("--health and --stats are mutually exclusive")
	}
	switch {
	case watch:
		return modeWatch, nil
	case continuous:
		return modeContinuous, nil
	case healthOnly:
		return modeHealth, nil
	case statsOnly:
		return modeStats, nil
	}
	return modeFull, nil
}

// flagOverrides carries the flag values that may override the file
// config. set records which flags were actually given on the command
// line, so a file setting survives an untouched flag default.
type flagOverrides struct {
	host      string
	interval  time.Duration
	timeout   time.Duration
	failBelow string
	debug     bool
	set       map[string]bool
}

// mergeConfig layers explicitly given flags over cfg. --debug only ever
// raises verbosity; it never lowers a log level the file asked for.
func mergeConfig(cfg config.Config, ov flagOverrides) config.Config {
	if ov.set["host"] {
		cfg.Host = ov.host
	}
	if ov.set["interval"] {
		cfg.Interval = ov.interval
	}
	if ov.set["timeout"] {
		cfg.Timeout = ov.timeout
	}
	if ov.set["fail-below"] {
		cfg.FailBelow = ov.failBelow
	}
	if ov.debug {
		cfg.LogLevel = "debug"
	}
	return cfg
}

// reportMode maps a run mode onto the section filter of the renderer.
// Continuous and watch runs print full reports.
func reportMode(m runMode) report.Mode {
	switch m {
	case modeHealth:
		return report.ModeHealth
	case modeStats:
		return report.ModeStats
	}
	return report.ModeFull
}

func main() {
	var (
		host       = flag.String("host", client.DefaultHost, "collector host")
		configPath = flag.String("config", "", "path to a YAML config file")
		healthOnly = flag.Bool("health", false, "print the health check section only")
		statsOnly  = flag.Bool("stats", false, "print the export statistics section only")
		continuous = flag.Bool("continuous", false, "repeat checks on --interval until interrupted")
		watch      = flag.Bool("watch", false, "live dashboard instead of printed reports")
		interval   = flag.Duration("interval", config.DefaultInterval, "wait between checks in continuous and watch modes")
		timeout    = flag.Duration("timeout", client.DefaultTimeout, "per-request timeout")
		failBelow  = flag.String("fail-below", "degraded", "lowest tier that still exits 0 (excellent, good, degraded, critical)")
		debug      = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: otelprobe [--host localhost] [--health | --stats] [--continuous | --watch] [flags]\n\n")
		fmt.Fprintf(os.Stderr, "examples:\n")
		fmt.Fprintf(os.Stderr, "  otelprobe\n")
		fmt.Fprintf(os.Stderr, "  otelprobe --host collector.prod.example.com --stats\n")
		fmt.Fprintf(os.Stderr, "  otelprobe --continuous --interval 15s\n")
		fmt.Fprintf(os.Stderr, "  otelprobe --watch --fail-below good\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	// No positional arguments. flag.Parse stops at the first non-flag
	// argument, so flags placed after one would be silently ignored.
	if args := flag.Args(); len(args) > 0 {
		fmt.Fprintf(os.Stderr, "error: unexpected argument %q (the collector host is given with --host)\n", args[0])
		flag.Usage()
		os.Exit(exitUsage)
	}

	mode, err := resolveMode(*healthOnly, *statsOnly, *continuous, *watch)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		flag.Usage()
		os.Exit(exitUsage)
	}

	// A .env next to the binary feeds ${VAR} expansion in the config file.
	_ = godotenv.Load()

	cfg := config.Default()
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(exitUsage)
		}
	}

	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	cfg = mergeConfig(cfg, flagOverrides{
		host:      *host,
		interval:  *interval,
		timeout:   *timeout,
		failBelow: *failBelow,
		debug:     *debug,
		set:       set,
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitUsage)
	}

	level, _ := cfg.Level()
	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	}))
	slog.SetDefault(log)

	probe, err := client.New(cfg.ClientConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitUsage)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if mode == modeWatch {
		prog := tea.NewProgram(tui.NewApp(probe, cfg.Interval), tea.WithAltScreen(), tea.WithContext(ctx))
		if _, err := prog.Run(); err != nil &&
			!errors.Is(err, tea.ErrProgramKilled) && !errors.Is(err, tea.ErrInterrupted) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(exitUnwell)
		}
		os.Exit(exitOK)
	}

	renderer := report.NewRenderer(os.Stdout, reportMode(mode))
	failTier, _ := cfg.FailBelowTier()
	runner, err := monitor.New(monitor.Config{Interval: cfg.Interval, FailBelow: failTier}, probe, renderer, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(exitUsage)
	}

	if mode == modeContinuous {
		log.Info("starting continuous monitoring", "host", cfg.Host, "interval", cfg.Interval)
		runner.Run(ctx)
		os.Exit(exitOK)
	}

	_, code := runner.RunOnce(ctx)
	os.Exit(code)
}

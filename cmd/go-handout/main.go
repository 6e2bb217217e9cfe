package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"go.uber.org/automaxprocs/maxprocs"

	handout "github.com/bcarden/go-handout"
	"github.com/bcarden/go-handout/internal/config"
	"github.com/bcarden/go-handout/internal/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	flags, args, err := parseFlags(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitUsage)
	}

	if flags.version {
		fmt.Printf("go-handout %s\n", Version)
		os.Exit(ExitSuccess)
	}

	logger := newLogger(flags.verbose)

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(logger.Debugf))

	if err := realMain(flags, args, logger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

func realMain(flags *cliFlags, args []string, logger *log.Logger) error {
	cfg, err := loadConfig(flags.config)
	if err != nil {
		return err
	}

	settings, err := mergeSettings(cfg, flags)
	if err != nil {
		return err
	}

	svc := handout.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if flags.serve {
		addr := cfg.Server.Addr
		if flags.addr != "" {
			addr = flags.addr
		}
		srv := server.New(svc, server.Config{
			Addr:           addr,
			MaxUploadBytes: int64(cfg.Server.MaxUploadMB) << 20,
		}, logger)
		return srv.ListenAndServe(ctx)
	}

	return run(ctx, args, settings, svc, logger)
}

// loadConfig reads the config file if one was given, otherwise defaults.
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// mergeSettings applies flag overrides on top of config file values.
func mergeSettings(cfg config.Config, flags *cliFlags) (runSettings, error) {
	tiles := cfg.Tiles
	if flags.tiles != "" {
		tiles = flags.tiles
	}
	mode, err := handout.ParseTilingMode(tiles)
	if err != nil {
		return runSettings{}, err
	}

	dpi := cfg.DPI
	if flags.dpi != 0 {
		dpi = flags.dpi
	}

	return runSettings{tiles: mode, dpi: dpi}, nil
}

// newLogger creates a stderr logger; verbose enables debug output.
func newLogger(verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

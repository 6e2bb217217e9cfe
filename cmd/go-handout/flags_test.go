package main

import (
	"os"
	"path/filepath"
	"testing"

	handout "github.com/bcarden/go-handout"
	"github.com/bcarden/go-handout/internal/config"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	flags, args, err := parseFlags([]string{
		"go-handout", "--tiles", "6", "--dpi", "250", "-v", "deck.pdf", "out.pdf",
	})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}

	if flags.tiles != "6" {
		t.Errorf("tiles = %q, want 6", flags.tiles)
	}
	if flags.dpi != 250 {
		t.Errorf("dpi = %d, want 250", flags.dpi)
	}
	if !flags.verbose {
		t.Error("verbose = false, want true")
	}
	if len(args) != 2 || args[0] != "deck.pdf" || args[1] != "out.pdf" {
		t.Errorf("positional args = %v, want [deck.pdf out.pdf]", args)
	}
}

func TestParseFlags_ShortForms(t *testing.T) {
	t.Parallel()

	flags, _, err := parseFlags([]string{"go-handout", "-t", "2", "-d", "96", "input.pptx"})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	if flags.tiles != "2" || flags.dpi != 96 {
		t.Errorf("flags = %+v, want tiles=2 dpi=96", flags)
	}
}

func TestParseFlags_ServeMode(t *testing.T) {
	t.Parallel()

	flags, args, err := parseFlags([]string{"go-handout", "--serve", "--addr", ":9000"})
	if err != nil {
		t.Fatalf("parseFlags() error = %v", err)
	}
	if !flags.serve {
		t.Error("serve = false, want true")
	}
	if flags.addr != ":9000" {
		t.Errorf("addr = %q, want :9000", flags.addr)
	}
	if len(args) != 0 {
		t.Errorf("positional args = %v, want none", args)
	}
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	t.Parallel()

	if _, _, err := parseFlags([]string{"go-handout", "--grid", "4"}); err == nil {
		t.Error("parseFlags() accepted unknown flag")
	}
}

func TestMergeSettings(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Tiles = "9"
	cfg.DPI = 120

	t.Run("config values used when flags unset", func(t *testing.T) {
		t.Parallel()

		settings, err := mergeSettings(cfg, &cliFlags{})
		if err != nil {
			t.Fatalf("mergeSettings() error = %v", err)
		}
		if settings.tiles != handout.Tiles9 {
			t.Errorf("tiles = %q, want 9", settings.tiles)
		}
		if settings.dpi != 120 {
			t.Errorf("dpi = %d, want 120", settings.dpi)
		}
	})

	t.Run("flags override config", func(t *testing.T) {
		t.Parallel()

		settings, err := mergeSettings(cfg, &cliFlags{tiles: "2", dpi: 300})
		if err != nil {
			t.Fatalf("mergeSettings() error = %v", err)
		}
		if settings.tiles != handout.Tiles2 {
			t.Errorf("tiles = %q, want 2", settings.tiles)
		}
		if settings.dpi != 300 {
			t.Errorf("dpi = %d, want 300", settings.dpi)
		}
	})

	t.Run("invalid tiles rejected", func(t *testing.T) {
		t.Parallel()

		if _, err := mergeSettings(cfg, &cliFlags{tiles: "7"}); err == nil {
			t.Error("mergeSettings() accepted invalid tiles")
		}
	})
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty path uses defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := loadConfig("")
		if err != nil {
			t.Fatalf("loadConfig(\"\") error = %v", err)
		}
		if cfg != config.Default() {
			t.Errorf("cfg = %+v, want defaults", cfg)
		}
	})

	t.Run("file values loaded", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "handout.yaml")
		if err := os.WriteFile(path, []byte("dpi: 96\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		cfg, err := loadConfig(path)
		if err != nil {
			t.Fatalf("loadConfig() error = %v", err)
		}
		if cfg.DPI != 96 {
			t.Errorf("DPI = %d, want 96", cfg.DPI)
		}
	})
}

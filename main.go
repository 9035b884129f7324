package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/hpieper24/PixelRacersUpdated/pkg/config"
	"github.com/hpieper24/PixelRacersUpdated/pkg/rng"
)

// version is set by ldflags during build
var version = "dev"

// Globals are shared by every subcommand.
type Globals struct {
	Config   string `short:"c" default:"pixelracers.hcl" help:"Path to HCL race configuration (defaults when missing)"`
	Seed     int64  `default:"0" help:"RNG seed (0 for random)"`
	LogLevel string `short:"l" default:"info" enum:"debug,info,warn,error" help:"Log level"`
	LogFile  string `help:"Write logs to this file instead of stderr"`
	NoColor  bool   `help:"Print the exit summary without colors"`
}

type CLI struct {
	Globals

	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Play     PlayCmd          `cmd:"" default:"1" help:"Race in a window"`
	Term     TermCmd          `cmd:"" help:"Race in the terminal"`
	Simulate SimulateCmd      `cmd:"" help:"Run a headless race driven by the autopilot"`
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	crashStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)
)

// race bundles what every subcommand needs to start a session.
type race struct {
	cfg    *config.Config
	src    rng.Source
	seed   int64
	logger *log.Logger
	closer io.Closer
}

func (g *Globals) setup() (*race, error) {
	if g.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	var out io.Writer = os.Stderr
	var closer io.Closer
	if g.LogFile != "" {
		f, err := os.OpenFile(g.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out, closer = f, f
	}

	level, err := log.ParseLevel(g.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})

	cfg, err := config.Load(g.Config)
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return nil, fmt.Errorf("load config: %w", err)
	}

	seed := g.Seed
	var src rng.Source
	if seed == 0 {
		src, seed = rng.NewFromTime()
	} else {
		src = rng.New(seed)
	}
	logger.Info("Race configured", "config", g.Config, "seed", seed, "win_score", cfg.WinScore())

	return &race{cfg: cfg, src: src, seed: seed, logger: logger, closer: closer}, nil
}

func (r *race) close() {
	if r.closer != nil {
		_ = r.closer.Close()
	}
}

// summary renders the final score banner printed on exit.
func summary(score int, crashed bool) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("=== PIXEL RACERS ==="))
	b.WriteString("\n")
	b.WriteString(scoreStyle.Render(fmt.Sprintf("Final Score: %d", score)))
	if crashed {
		b.WriteString("\n")
		b.WriteString(crashStyle.Render("Crashed!"))
	}
	return b.String()
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pixelracers"),
		kong.Description("Top-down lane racing against AI traffic"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sghaida/solid/demo"
	"github.com/sghaida/solid/examples"
	"github.com/sghaida/solid/internal/config"
	"github.com/sghaida/solid/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns an exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("solid", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "YAML config file (default: SOLID_* environment)")
	principles := fs.String("principle", "", "comma separated principles to run (srp,ocp,lsp,isp,dip)")
	approach := fs.String("approach", "", "wrong, right or all")
	logLevel := fs.String("log-level", "", "log level (debug, info, warn, error, disabled)")
	logFormat := fs.String("log-format", "", "log format (json, pretty)")
	list := fs.Bool("list", false, "list examples and exit")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "solid:", err)
		return 2
	}
	if *principles != "" {
		cfg.Principles = config.SplitList(*principles)
	}
	if *approach != "" {
		cfg.Approach = *approach
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *logFormat != "" {
		cfg.LogFormat = *logFormat
	}
	if err := cfg.Validate(); err != nil {
		_, _ = fmt.Fprintln(stderr, "solid:", err)
		return 2
	}

	logger, err := logging.New(stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "solid: invalid log level %q: %v\n", cfg.LogLevel, err)
		return 2
	}
	logger = logger.With().Str("run_id", uuid.NewString()).Str("env", cfg.Env).Logger()

	catalog := examples.Catalog()
	if *list {
		for _, ex := range catalog.Examples() {
			_, _ = fmt.Fprintf(stdout, "%s\t%s\n", ex.Key(), ex.Title)
		}
		return 0
	}

	// Validate already parsed both selections.
	ps, _ := cfg.SelectedPrinciples()
	as, _ := cfg.SelectedApproaches()

	r := &runner{stdout: stdout, logger: logger}
	if !r.runAll(catalog.Select(ps, as)) {
		return 1
	}
	return 0
}

// loadConfig reads without validating; run validates once flags are applied.
func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.ReadFile(path)
	}
	return config.ReadEnv(), nil
}

type runner struct {
	stdout io.Writer
	logger zerolog.Logger
}

// runAll runs the examples in order and reports whether every failure was
// illustrative.
func (r *runner) runAll(exs []demo.Example) bool {
	ok := true
	for _, ex := range exs {
		if !r.runOne(ex) {
			ok = false
		}
	}
	r.logger.Info().Int("examples", len(exs)).Bool("ok", ok).Msg("run finished")
	return ok
}

func (r *runner) runOne(ex demo.Example) bool {
	log := r.logger.With().
		Str("example", ex.Key()).
		Str("principle", ex.Principle.Title()).
		Logger()
	log.Info().Str("title", ex.Title).Msg("example started")

	console := demo.NewTeeConsole(r.stdout)
	err := demo.RunOn(ex, console)
	lines := len(console.Lines())

	switch {
	case err == nil:
		log.Info().Int("lines", lines).Msg("example finished")
		return true
	case demo.Illustrative(err):
		log.Warn().Err(err).Int("lines", lines).Msg("example failed on purpose")
		return true
	default:
		log.Error().Err(err).Int("lines", lines).Msg("example failed")
		return false
	}
}

// Command solidcheck verifies the structural invariants of the SOLID
// examples: coordinators hold roles only, variants implement only the roles
// they use, Penguin is never a FlyingBird and User carries no behavior.
//
// Usage
//
//	solidcheck [-dir .] [-log-level warn]
//
// It prints one PASS/FAIL line per rule and exits 1 if any rule fails.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/mod/modfile"

	"github.com/sghaida/solid/internal/conformance"
	"github.com/sghaida/solid/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("solidcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)

	dir := fs.String("dir", ".", "module root to check")
	logLevel := fs.String("log-level", "warn", "log level (debug, info, warn, error, disabled)")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger, err := logging.New(stderr, *logLevel, "json")
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "solidcheck: invalid log level %q: %v\n", *logLevel, err)
		return 2
	}

	modulePath, err := readModulePath(*dir)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "solidcheck:", err)
		return 2
	}
	logger = logger.With().Str("module", modulePath).Logger()

	report, err := conformance.Check(ctx, *dir, conformance.DefaultRules(modulePath), logger)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "solidcheck:", err)
		return 2
	}

	for _, f := range report.Findings {
		status := "PASS"
		if !f.OK {
			status = "FAIL"
		}
		_, _ = fmt.Fprintf(stdout, "%s %s %s: %s\n", status, f.Rule.Kind, f.Rule.Subject(), f.Message)
	}

	if report.Failed() {
		return 1
	}
	return 0
}

func readModulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("read go.mod: %w", err)
	}
	modulePath := modfile.ModulePath(data)
	if modulePath == "" {
		return "", fmt.Errorf("no module directive in %s", filepath.Join(dir, "go.mod"))
	}
	return modulePath, nil
}

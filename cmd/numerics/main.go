// Command numerics exposes the grid, projection and extrapolation packages
// on the command line. Every subcommand writes an ndarray text file to
// stdout.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/numerics/config"
	"go.uber.org/zap"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches args[0] to its subcommand and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return exitUsage
	}

	var cmd func([]string, io.Writer, io.Writer) error
	switch args[0] {
	case "grid":
		cmd = runGrid
	case "project":
		cmd = runProject
	case "extrap":
		cmd = runExtrap
	case "help", "-h", "-help", "--help":
		printUsage(stdout)
		return exitOK
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
		printUsage(stderr)
		return exitUsage
	}

	if err := cmd(args[1:], stdout, stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(stderr, "numerics %s: %v\n", args[0], err)
		if errors.Is(err, errUsage) {
			return exitUsage
		}
		return exitError
	}

	return exitOK
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `numerics - nonuniform grids, projection coefficients and extrapolation

Usage: numerics <command> [options]

Commands:
  grid      Print the default grid: numerics grid -n 40
  project   Print projection coefficients: numerics project -to 20 -from 40 -hits 13
  extrap    Extrapolate a demo integral: numerics extrap -pts 40,50,60 [-log]
  help      Show this help message

Common Flags:
  -config <file.json>   Settings file (resolutions, precision, log_domain, spacing)
  -v                    Enable debug logging`)
}

// common holds the flags every subcommand accepts.
type common struct {
	configPath string
	verbose    bool
}

// errUsage marks errors caused by bad command-line input.
var errUsage = errors.New("invalid arguments")

// newFlagSet returns a flag set with the common flags registered.
func newFlagSet(name string, stderr io.Writer) (*flag.FlagSet, *common) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	c := &common{}
	fs.StringVar(&c.configPath, "config", "", "settings file (.json)")
	fs.BoolVar(&c.verbose, "v", false, "enable debug logging")

	return fs, c
}

// parseFlags parses args, marking every failure except -h as a usage error.
func parseFlags(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}

	return fmt.Errorf("%w: %v", errUsage, err)
}

// setup builds the logger and loads settings for a parsed command line.
func (c *common) setup() (*zap.Logger, *config.Settings, error) {
	logger, err := newLogger(c.verbose)
	if err != nil {
		return nil, nil, err
	}
	if c.configPath == "" {
		return logger, config.Default(), nil
	}
	s, err := config.Load(c.configPath)
	if err != nil {
		_ = logger.Sync()
		return nil, nil, err
	}
	logger.Debug("settings loaded", zap.String("path", c.configPath))

	return logger, s, nil
}

// newLogger returns a development logger when verbose is set, a production
// logger otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	return zap.NewProduction()
}

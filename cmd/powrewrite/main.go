package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/shibukawa/powrewrite"
)

const (
	appName = "powrewrite"
	version = "v0.1.0"

	// exit status for a missing expression
	exitUsage = 2
)

// Context carries the global options and streams shared by command code
type Context struct {
	Config  string
	Verbose bool
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

// CLI represents the command-line interface
type CLI struct {
	Config     string           `help:"Configuration file path" default:"${config_file}"`
	Verbose    bool             `help:"Report every rewrite pass on stderr" short:"v"`
	File       string           `help:"Rewrite every line of a file instead of an argument" short:"f" placeholder:"PATH"`
	Stdin      bool             `help:"Rewrite every line read from stdin"`
	Version    kong.VersionFlag `help:"Show version information"`
	Expression *string          `arg:"" optional:"" help:"Math expression such as 'a^2 + b^c' (put -- first if it starts with -)"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run parses args and executes the command, returning the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cli CLI

	exitCode := -1

	parser, err := kong.New(&cli,
		kong.Name(appName),
		kong.Description("Rewrite infix powers (a^b) as pow(), gsl_pow_int() and gsl_pow_N() calls."),
		kong.Vars{
			"version":     appName + " " + version,
			"config_file": powrewrite.DefaultConfigFile,
		},
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exitCode = code }),
	)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	_, err = parser.Parse(args)
	if exitCode >= 0 {
		// --help and --version end here
		return exitCode
	}

	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	// an empty argument is still an expression; only a missing one prints usage
	if cli.Expression == nil && cli.File == "" && !cli.Stdin {
		printUsage(stdout)
		return exitUsage
	}

	appCtx := &Context{
		Config:  cli.Config,
		Verbose: cli.Verbose,
		Stdin:   stdin,
		Stdout:  stdout,
		Stderr:  stderr,
	}

	err = cli.Run(appCtx)
	if err != nil {
		newReporter(stderr, "").errorf("Error: %v", err)
		return 1
	}

	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "%s replaces powers in $1, written as a^b (infix operator), with a function pow(a,b).\n", appName)
	fmt.Fprintf(w, "Usage: %s 'math expression'\n", appName)
}

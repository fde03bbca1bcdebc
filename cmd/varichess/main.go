// varichess resolves moves and captures for a customizable chess variant
// and serves games over HTTP and WebSocket.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/varichess-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("varichess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading environment: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg, explicitFlags())

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var err error
	switch {
	case *serveMode:
		err = serve(cfg)
	case *analyzeMode:
		err = runAnalyze(cfg, currentOptions())
	default:
		err = runResolve(cfg, currentOptions())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: varichess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Resolves where pieces of a customizable chess variant may move and capture.\n\n")
	fmt.Fprintf(os.Stderr, "Modes:\n")
	fmt.Fprintf(os.Stderr, "  -piece ID     Resolve one piece (default mode)\n")
	fmt.Fprintf(os.Stderr, "  -analyze      Resolve every piece of both teams\n")
	fmt.Fprintf(os.Stderr, "  -serve        Run the HTTP/WebSocket server\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nEnvironment:\n")
	fmt.Fprintf(os.Stderr, "  VARICHESS_ADDR, VARICHESS_ALLOW_ORIGINS, VARICHESS_DB_PATH,\n")
	fmt.Fprintf(os.Stderr, "  VARICHESS_PROFILE, VARICHESS_WORKERS\n")
}

// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/varichess-go/internal/config"
	"github.com/lgbarn/varichess-go/internal/engine"
)

var (
	// Modes
	serveMode   = flag.Bool("serve", false, "Run the HTTP/WebSocket server")
	analyzeMode = flag.Bool("analyze", false, "Resolve every piece of both teams")

	// Position
	position = flag.String("position", engine.StandardPlacement, "Placement to start from, e.g. \"4k3/8/8/8/8/8/8/4K3 w\"")
	moveList = flag.String("moves", "", "Moves to play first: ref=square, comma-separated (e.g. pawn_5=e4,black:pawn_4=d5)")
	pieceRef = flag.String("piece", "", "Piece to resolve: id or colour:id")

	// Output options
	outputFile  = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput  = flag.Bool("J", false, "Output in JSON format")
	noBoard     = flag.Bool("noboard", false, "Don't draw the board diagram")
	valueReport = flag.Bool("value", false, "Print each team's value report")
	locale      = flag.String("locale", "en", "Locale for numbers in value reports")

	// Diagnostics
	logFile   = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 summary, 2 every move")
	trace     = flag.Bool("trace", false, "Trace the resolver's walk to the log")
	workers   = flag.Int("workers", 4, "Goroutines used by -analyze")

	// Server and storage (override VARICHESS_* environment variables)
	addr    = flag.String("addr", ":8080", "Server listen address")
	origins = flag.String("origins", "*", "CORS allowed origins")
	dbPath  = flag.String("db", "", "SQLite database for saved teams (default: in memory)")
	profile = flag.String("profile", "", "Saved team profile to play with")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// explicitFlags returns the names of flags set on the command line.
func explicitFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// applyFlags copies flag values into cfg. set lists the flags given on the
// command line; flags backed by environment variables only apply when set.
func applyFlags(cfg *config.Config, set map[string]bool) {
	applyOutputFlags(cfg)
	applyDiagnosticFlags(cfg, set)
	applyServerFlags(cfg, set)
}

// applyOutputFlags configures result formatting.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowBoard = !*noBoard && !*jsonOutput
	cfg.Output.Locale = *locale
}

// applyDiagnosticFlags configures logging and analysis.
func applyDiagnosticFlags(cfg *config.Config, set map[string]bool) {
	cfg.Verbosity = *verbosity
	cfg.Trace = *trace
	if set["workers"] {
		cfg.Workers = *workers
	}
}

// applyServerFlags configures the server and storage.
func applyServerFlags(cfg *config.Config, set map[string]bool) {
	if set["addr"] {
		cfg.Server.Addr = *addr
	}
	if set["origins"] {
		cfg.Server.AllowOrigins = *origins
	}
	if set["db"] {
		cfg.Storage.Path = *dbPath
	}
	if set["profile"] {
		cfg.Storage.Profile = *profile
	}
}

// currentOptions collects the flags that drive the CLI modes.
func currentOptions() options {
	return options{
		position: *position,
		moves:    *moveList,
		piece:    *pieceRef,
		value:    *valueReport,
	}
}

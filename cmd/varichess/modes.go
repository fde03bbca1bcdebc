package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/lgbarn/varichess-go/internal/chess"
	"github.com/lgbarn/varichess-go/internal/config"
	"github.com/lgbarn/varichess-go/internal/engine"
	"github.com/lgbarn/varichess-go/internal/errors"
	"github.com/lgbarn/varichess-go/internal/output"
	"github.com/lgbarn/varichess-go/internal/server"
	"github.com/lgbarn/varichess-go/internal/storage"
	"github.com/lgbarn/varichess-go/internal/storage/sqlite"
	"github.com/lgbarn/varichess-go/internal/team"
)

// options drive the resolve and analyze modes.
type options struct {
	position string
	moves    string
	piece    string
	value    bool
}

// plannedMove is one entry of the -moves list.
type plannedMove struct {
	ref string
	to  chess.Coordinate
}

// parseMoves splits "ref=square,ref=square".
func parseMoves(s string) ([]plannedMove, error) {
	var out []plannedMove
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		ref, square, ok := strings.Cut(item, "=")
		if !ok || ref == "" {
			return nil, fmt.Errorf("move %q: want ref=square", item)
		}
		to, err := chess.ParseCoordinate(square)
		if err != nil {
			return nil, errors.Wrapf(err, "move %q", item)
		}
		out = append(out, plannedMove{ref: ref, to: to})
	}
	return out, nil
}

// openStore returns the SQLite store when a path is configured, else an
// in-memory one.
func openStore(cfg *config.Config) (storage.TeamStore, error) {
	if !cfg.Storage.Persistent() {
		return storage.NewMemory(), nil
	}
	return sqlite.Open(cfg.Storage.Path)
}

// setupGame builds the game from the placement, swaps in the saved profile
// team and plays the listed moves.
func setupGame(cfg *config.Config, opts options) (*engine.Game, error) {
	pos, err := engine.ParsePlacement(opts.position)
	if err != nil {
		return nil, err
	}

	if cfg.Storage.Profile != "" {
		t, err := loadProfile(cfg)
		if err != nil {
			return nil, err
		}
		if t.Colour == chess.White {
			pos.White = t
		} else {
			pos.Black = t
		}
	}

	gameOpts := []engine.Option{engine.WithToMove(pos.ToMove), engine.WithLog(cfg.LogFile, cfg.Verbosity)}
	if cfg.Trace {
		gameOpts = append(gameOpts, engine.WithTrace(cfg.LogFile))
	}
	g, err := engine.NewGame(pos.White, pos.Black, gameOpts...)
	if err != nil {
		return nil, err
	}

	moves, err := parseMoves(opts.moves)
	if err != nil {
		return nil, err
	}
	for _, m := range moves {
		outcome, err := g.ApplyMove(m.ref, m.to)
		if err != nil {
			return nil, err
		}
		if outcome.Kind == engine.Rejected {
			return nil, fmt.Errorf("move %s=%s rejected", m.ref, m.to)
		}
	}
	return g, nil
}

func loadProfile(cfg *config.Config) (*team.Team, error) {
	store, err := openStore(cfg)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	saved, err := store.LoadTeam(context.Background(), cfg.Storage.Profile)
	if err != nil {
		return nil, errors.Wrapf(err, "profile %s", cfg.Storage.Profile)
	}
	return team.FromRecord(saved.Record)
}

// runResolve prints the moves and takes of one piece.
func runResolve(cfg *config.Config, opts options) error {
	if opts.piece == "" {
		return fmt.Errorf("no piece given (use -piece, -analyze or -serve)")
	}
	g, err := setupGame(cfg, opts)
	if err != nil {
		return err
	}
	p, err := g.Lookup(opts.piece)
	if err != nil {
		return err
	}
	res, err := g.ResolveMoves(opts.piece)
	if err != nil {
		return err
	}
	cfg.Logf(1, "resolved %s: %d moves, %d takes\n", p, len(res.Moves), len(res.Takes))

	w := cfg.OutputFile
	if cfg.Output.JSONFormat {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(output.NewResolutionView(p, res))
	}

	fmt.Fprintf(w, "%s\n", p)
	fmt.Fprintf(w, "moves: %s\n", output.FormatSquares(res.Moves))
	fmt.Fprintf(w, "takes: %s\n", output.FormatSquares(res.Takes))
	if cfg.Output.ShowBoard {
		if err := output.WriteBoard(w, g.Board, &res); err != nil {
			return err
		}
	}
	return writeValues(cfg, g, opts)
}

// runAnalyze resolves every piece of both teams, side to move first.
func runAnalyze(cfg *config.Config, opts options) error {
	g, err := setupGame(cfg, opts)
	if err != nil {
		return err
	}

	var writer output.ReportWriter = output.NewTextWriter(cfg.OutputFile)
	if cfg.Output.JSONFormat {
		writer = output.NewJSONWriter(cfg.OutputFile)
	}

	for _, colour := range []chess.Colour{g.ToMove(), g.ToMove().Opposite()} {
		reports, err := engine.AnalyzeTeam(g.Board, g.Team(colour).Pieces, cfg.Workers)
		if err != nil {
			return err
		}
		cfg.Logf(1, "analyzed %d %s pieces\n", len(reports), colour)
		if err := writer.WriteReport(colour, reports); err != nil {
			return err
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}

	if cfg.Output.ShowBoard {
		if err := output.WriteBoard(cfg.OutputFile, g.Board, nil); err != nil {
			return err
		}
	}
	return writeValues(cfg, g, opts)
}

func writeValues(cfg *config.Config, g *engine.Game, opts options) error {
	if !opts.value || cfg.Output.JSONFormat {
		return nil
	}
	for _, t := range []*team.Team{g.White, g.Black} {
		if err := output.WriteValueReport(cfg.OutputFile, t, cfg.Output.Tag()); err != nil {
			return err
		}
	}
	return nil
}

// serve runs the server until interrupted.
func serve(cfg *config.Config) error {
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := server.New(cfg, store)
	errc := make(chan error, 1)
	go func() { errc <- srv.Listen() }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err := <-errc:
		return err
	case sig := <-stop:
		cfg.Logf(1, "received %s, shutting down\n", sig)
		return srv.Shutdown()
	}
}

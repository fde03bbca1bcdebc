package engine

import (
	"github.com/lgbarn/varichess-go/internal/chess"
	"github.com/lgbarn/varichess-go/internal/worker"
)

// PieceReport summarizes one piece's current options.
type PieceReport struct {
	Piece *chess.Piece
	Moves []chess.Coordinate
	Takes []chess.Coordinate
}

// AnalyzeTeam resolves every piece in ps concurrently and returns the
// reports in the order of ps. The board must not change during the call.
// The first resolution error stops the remaining work and is returned.
func AnalyzeTeam(b *chess.Board, ps []*chess.Piece, workers int) ([]PieceReport, error) {
	pool := worker.NewPool(func(item worker.WorkItem) worker.Result {
		res, err := Resolve(item.Piece, b)
		return worker.Result{
			Piece: item.Piece,
			Index: item.Index,
			Moves: res.Moves,
			Takes: res.Takes,
			Err:   err,
		}
	}, worker.WithWorkers(workers), worker.WithBufferSize(len(ps)+1))
	pool.Start()

	go func() {
		for i, p := range ps {
			pool.Submit(worker.WorkItem{Piece: p, Index: i})
		}
		pool.Close()
	}()

	reports := make([]PieceReport, len(ps))
	var firstErr error
	for r := range pool.Results() {
		if r.Err != nil {
			if firstErr == nil {
				firstErr = r.Err
				pool.Stop()
			}
			continue
		}
		reports[r.Index] = PieceReport{Piece: r.Piece, Moves: r.Moves, Takes: r.Takes}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return reports, nil
}

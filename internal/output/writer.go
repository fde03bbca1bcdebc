package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/varichess-go/internal/chess"
	"github.com/lgbarn/varichess-go/internal/engine"
)

// ReportWriter is the interface for writing team analyses.
// Different implementations handle different formats (text, JSON).
type ReportWriter interface {
	// WriteReport writes the analysis of one team.
	WriteReport(colour chess.Colour, reports []engine.PieceReport) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// TextWriter writes one line per piece.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteReport writes a heading and a line per piece.
func (tw *TextWriter) WriteReport(colour chess.Colour, reports []engine.PieceReport) error {
	if _, err := fmt.Fprintf(tw.w, "%s\n", colour); err != nil {
		return err
	}
	for _, r := range reports {
		_, err := fmt.Fprintf(tw.w, "  %-10s %-14s %s  moves %2d: %s  takes %2d: %s\n",
			r.Piece.ID, r.Piece.Name, r.Piece.Current,
			len(r.Moves), FormatSquares(r.Moves), len(r.Takes), FormatSquares(r.Takes))
		if err != nil {
			return err
		}
	}
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes analyses in JSON format.
// It buffers reports and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	teams  []AnalysisView
	single bool // If true, write each report immediately instead of batching
}

// NewJSONWriter creates a JSON writer that batches reports into an array.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, teams: make([]AnalysisView, 0, 2)}
}

// NewJSONWriterSingle creates a JSON writer that writes each report immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, single: true}
}

// WriteReport buffers a report (or writes it immediately in single mode).
func (jw *JSONWriter) WriteReport(colour chess.Colour, reports []engine.PieceReport) error {
	view := NewAnalysisView(colour, reports)
	if jw.single {
		return jw.encode(view)
	}
	jw.teams = append(jw.teams, view)
	return nil
}

// Flush writes all buffered reports as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.teams) == 0 {
		return nil
	}
	err := jw.encode(jw.teams)
	jw.teams = jw.teams[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func (jw *JSONWriter) encode(v interface{}) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

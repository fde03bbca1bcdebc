package output

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lgbarn/varichess-go/internal/team"
)

// WriteValueReport lists each piece's value and the team total, with
// numbers formatted for tag.
func WriteValueReport(w io.Writer, t *team.Team, tag language.Tag) error {
	p := message.NewPrinter(tag)
	if _, err := p.Fprintf(w, "%s team, %d pieces\n", t.Colour.String(), len(t.Pieces)); err != nil {
		return err
	}
	for _, pc := range t.Pieces {
		_, err := p.Fprintf(w, "  %-10s %-14s %-3s %8d  upgrades %d\n",
			pc.ID, pc.Name, pc.Start.String(), pc.Value, pc.Upgrades.Count())
		if err != nil {
			return err
		}
	}
	_, err := p.Fprintf(w, "  %-29s %8d\n", "total", t.Value())
	return err
}

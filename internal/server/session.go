package server

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/lgbarn/varichess-go/internal/chess"
	"github.com/lgbarn/varichess-go/internal/engine"
	"github.com/lgbarn/varichess-go/internal/errors"
	"github.com/lgbarn/varichess-go/internal/output"
	"github.com/lgbarn/varichess-go/internal/team"
)

// Session is one live game and the connections watching it. The mutex
// keeps resolution and commits on the game strictly sequential.
type Session struct {
	ID  string
	Hub *Hub

	mu   sync.Mutex
	game *engine.Game
}

// State returns the game's current view.
func (s *Session) State() output.GameView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return output.NewGameView(s.ID, s.game)
}

// Resolve returns the moves and takes of the referenced piece. Watchers
// receive a highlight message.
func (s *Session) Resolve(ref string) (output.ResolutionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.game.Lookup(ref)
	if err != nil {
		return output.ResolutionView{}, err
	}
	res, err := s.game.ResolveMoves(ref)
	if err != nil {
		return output.ResolutionView{}, err
	}
	return output.NewResolutionView(p, res), nil
}

// Move applies a move. On commit watchers receive moveApplied followed by
// the new game state.
func (s *Session) Move(ref string, to chess.Coordinate) (engine.MoveOutcome, error) {
	s.mu.Lock()
	outcome, err := s.game.ApplyMove(ref, to)
	var state output.GameView
	if err == nil && outcome.Kind != engine.Rejected {
		state = output.NewGameView(s.ID, s.game)
	}
	s.mu.Unlock()

	if err != nil || outcome.Kind == engine.Rejected {
		return outcome, err
	}
	s.broadcast(MessageTypeGameState, state)
	return outcome, nil
}

// Highlight implements engine.Observer.
func (s *Session) Highlight(p *chess.Piece, res engine.Resolution) {
	s.broadcast(MessageTypeHighlight, output.NewResolutionView(p, res))
}

// Committed implements engine.Observer.
func (s *Session) Committed(outcome engine.MoveOutcome) {
	s.broadcast(MessageTypeMoveApplied, outcome)
}

func (s *Session) broadcast(t MessageType, payload interface{}) {
	msg, err := NewMessage(t, payload)
	if err != nil {
		log.Printf("game %s: %v", s.ID, err)
		return
	}
	s.Hub.Broadcast(msg)
}

// Manager is the registry of live games.
type Manager struct {
	mu    sync.RWMutex
	games map[string]*Session
	opts  []engine.Option
}

// NewManager returns an empty registry. opts are applied to every game.
func NewManager(opts ...engine.Option) *Manager {
	return &Manager{games: make(map[string]*Session), opts: opts}
}

// Create starts a game between white and black under a new id.
func (m *Manager) Create(white, black *team.Team) (*Session, error) {
	s := &Session{ID: uuid.NewString(), Hub: NewHub()}
	opts := append(append([]engine.Option(nil), m.opts...), engine.WithObserver(s))
	g, err := engine.NewGame(white, black, opts...)
	if err != nil {
		return nil, err
	}
	s.game = g

	m.mu.Lock()
	m.games[s.ID] = s
	m.mu.Unlock()
	return s, nil
}

// Get returns the game with id, or ErrGameNotFound.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.games[id]
	if !ok {
		return nil, errors.Wrapf(errors.ErrGameNotFound, "game %s", id)
	}
	return s, nil
}

// Len returns the number of live games.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

package server

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/varichess-go/internal/chess"
	"github.com/lgbarn/varichess-go/internal/engine"
	"github.com/lgbarn/varichess-go/internal/output"
	"github.com/lgbarn/varichess-go/internal/team"
)

type createGameRequest struct {
	White string `json:"white"`
	Black string `json:"black"`
}

type moveRequest struct {
	PieceID string `json:"pieceId"`
	To      string `json:"to"`
}

type addPieceRequest struct {
	Kind string `json:"kind"`
}

type upgradesRequest struct {
	Upgrades []bool `json:"upgrades"`
}

type coordinateRequest struct {
	Coordinate string `json:"coordinate"`
}

type teamResponse struct {
	Profile string          `json:"profile"`
	Team    output.TeamView `json:"team"`
}

func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return fmt.Errorf("decode body: %v: %w", err, errBadRequest)
	}
	return nil
}

func (s *Server) createGame(c *fiber.Ctx) error {
	var req createGameRequest
	if len(c.Body()) > 0 {
		if err := parseBody(c, &req); err != nil {
			return writeError(c, err)
		}
	}

	white, err := s.sideTeam(c, req.White, chess.White)
	if err != nil {
		return writeError(c, err)
	}
	black, err := s.sideTeam(c, req.Black, chess.Black)
	if err != nil {
		return writeError(c, err)
	}

	session, err := s.games.Create(white, black)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": session.ID,
		"state":   session.State(),
	})
}

// sideTeam loads the team for one side of a new game: the standard team
// when no profile is named, else the saved profile, which must match.
func (s *Server) sideTeam(c *fiber.Ctx, profile string, colour chess.Colour) (*team.Team, error) {
	if profile == "" {
		return team.NewStandard(colour), nil
	}
	t, err := s.teams.Get(c.UserContext(), profile, colour.String())
	if err != nil {
		return nil, err
	}
	if t.Colour != colour {
		return nil, fmt.Errorf("profile %q is %s, not %s: %w", profile, t.Colour, colour, errBadRequest)
	}
	return t, nil
}

func (s *Server) getGame(c *fiber.Ctx) error {
	session, err := s.games.Get(c.Params("gameId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(session.State())
}

func (s *Server) pieceMoves(c *fiber.Ctx) error {
	session, err := s.games.Get(c.Params("gameId"))
	if err != nil {
		return writeError(c, err)
	}
	view, err := session.Resolve(param(c, "pieceId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(view)
}

func (s *Server) applyMove(c *fiber.Ctx) error {
	session, err := s.games.Get(c.Params("gameId"))
	if err != nil {
		return writeError(c, err)
	}
	var req moveRequest
	if err := parseBody(c, &req); err != nil {
		return writeError(c, err)
	}
	to, err := chess.ParseCoordinate(req.To)
	if err != nil {
		return writeError(c, err)
	}

	outcome, err := session.Move(req.PieceID, to)
	if err != nil {
		return writeError(c, err)
	}
	if outcome.Kind == engine.Rejected {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(outcome)
	}
	return c.JSON(outcome)
}

func (s *Server) listTeams(c *fiber.Ctx) error {
	names, err := s.teams.List(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"profiles": names})
}

func (s *Server) getTeam(c *fiber.Ctx) error {
	profile := c.Params("profile")
	t, err := s.teams.Get(c.UserContext(), profile, c.Query("colour"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(teamResponse{Profile: profile, Team: output.NewTeamView(t)})
}

func (s *Server) deleteTeam(c *fiber.Ctx) error {
	if err := s.teams.Delete(c.UserContext(), c.Params("profile")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// editTeam runs fn against the profile in the request and answers with the
// saved team.
func (s *Server) editTeam(c *fiber.Ctx, status int, fn func(*team.Team) error) error {
	profile := c.Params("profile")
	t, err := s.teams.Update(c.UserContext(), profile, c.Query("colour"), fn)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(status).JSON(teamResponse{Profile: profile, Team: output.NewTeamView(t)})
}

func (s *Server) addPiece(c *fiber.Ctx) error {
	var req addPieceRequest
	if err := parseBody(c, &req); err != nil {
		return writeError(c, err)
	}
	kind, err := chess.ParseKind(req.Kind)
	if err != nil {
		return writeError(c, err)
	}
	return s.editTeam(c, fiber.StatusCreated, func(t *team.Team) error {
		_, err := t.AddPiece(kind)
		return err
	})
}

func (s *Server) removePiece(c *fiber.Ctx) error {
	id := param(c, "pieceId")
	return s.editTeam(c, fiber.StatusOK, func(t *team.Team) error {
		_, err := t.RemovePiece(id)
		return err
	})
}

func (s *Server) setUpgrades(c *fiber.Ctx) error {
	var req upgradesRequest
	if err := parseBody(c, &req); err != nil {
		return writeError(c, err)
	}
	id := param(c, "pieceId")
	return s.editTeam(c, fiber.StatusOK, func(t *team.Team) error {
		_, err := t.SetUpgrades(id, req.Upgrades)
		return err
	})
}

func (s *Server) relocate(c *fiber.Ctx) error {
	var req coordinateRequest
	if err := parseBody(c, &req); err != nil {
		return writeError(c, err)
	}
	to, err := chess.ParseCoordinate(req.Coordinate)
	if err != nil {
		return writeError(c, err)
	}
	id := param(c, "pieceId")
	return s.editTeam(c, fiber.StatusOK, func(t *team.Team) error {
		return t.Relocate(id, to)
	})
}

func (s *Server) resetTeam(c *fiber.Ctx) error {
	return s.editTeam(c, fiber.StatusOK, func(t *team.Team) error {
		t.Reset()
		return nil
	})
}

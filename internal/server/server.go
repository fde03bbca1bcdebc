// Package server exposes games and saved teams over HTTP and pushes game
// events to WebSocket watchers.
package server

import (
	"log"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"

	"github.com/lgbarn/varichess-go/internal/config"
	"github.com/lgbarn/varichess-go/internal/engine"
	"github.com/lgbarn/varichess-go/internal/storage"
)

// Server wires the routes to the game registry and the team store.
type Server struct {
	cfg   *config.Config
	app   *fiber.App
	games *Manager
	teams *TeamService
}

// New builds the app. Games log their moves to cfg.LogFile at cfg.Verbosity.
func New(cfg *config.Config, store storage.TeamStore) *Server {
	s := &Server{
		cfg:   cfg,
		games: NewManager(engine.WithLog(cfg.LogFile, cfg.Verbosity)),
		teams: NewTeamService(store),
	}

	app := fiber.New(fiber.Config{
		AppName:               "varichess",
		DisableStartupMessage: true,
		Immutable:             true,
		ErrorHandler:          errorHandler,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
	}))
	if cfg.Verbosity > 0 && cfg.LogFile != nil {
		app.Use(logger.New(logger.Config{Output: cfg.LogFile}))
	}

	app.Use("/ws", s.requireUpgrade)
	app.Get("/ws/game/:gameId", websocket.New(s.handleSocket, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))

	api := app.Group("/api")

	gameRoutes := api.Group("/game")
	gameRoutes.Post("/create", s.createGame)
	gameRoutes.Get("/:gameId", s.getGame)
	gameRoutes.Get("/:gameId/pieces/:pieceId/moves", s.pieceMoves)
	gameRoutes.Post("/:gameId/move", s.applyMove)

	api.Get("/teams", s.listTeams)
	teamRoutes := api.Group("/team")
	teamRoutes.Get("/:profile", s.getTeam)
	teamRoutes.Delete("/:profile", s.deleteTeam)
	teamRoutes.Post("/:profile/pieces", s.addPiece)
	teamRoutes.Delete("/:profile/pieces/:pieceId", s.removePiece)
	teamRoutes.Put("/:profile/pieces/:pieceId/upgrades", s.setUpgrades)
	teamRoutes.Put("/:profile/pieces/:pieceId/coordinate", s.relocate)
	teamRoutes.Post("/:profile/reset", s.resetTeam)

	s.app = app
	return s
}

// App returns the underlying Fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

// Games returns the game registry.
func (s *Server) Games() *Manager {
	return s.games
}

// Listen serves on the configured address until Shutdown.
func (s *Server) Listen() error {
	log.Printf("varichess listening on %s", s.cfg.Server.Addr)
	return s.app.Listen(s.cfg.Server.Addr)
}

// Shutdown stops accepting connections and waits for active requests.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// param returns a path parameter with percent-escapes decoded, so refs like
// "white%3Apawn_1" reach the game as "white:pawn_1".
func param(c *fiber.Ctx, name string) string {
	raw := c.Params(name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

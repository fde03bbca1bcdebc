package server

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/varichess-go/internal/errors"
	"github.com/lgbarn/varichess-go/internal/storage"
)

// statusFor maps an error to an HTTP status.
func statusFor(err error) int {
	var fe *fiber.Error
	switch {
	case stderrors.As(err, &fe):
		return fe.Code
	case stderrors.Is(err, errors.ErrGameNotFound),
		stderrors.Is(err, errors.ErrPieceNotFound),
		stderrors.Is(err, storage.ErrNotFound):
		return fiber.StatusNotFound
	case stderrors.Is(err, errors.ErrNotYourTurn):
		return fiber.StatusConflict
	case stderrors.Is(err, errBadRequest),
		stderrors.Is(err, errors.ErrInvalidCoordinate),
		stderrors.Is(err, errors.ErrInvalidUpgrades),
		stderrors.Is(err, errors.ErrUnknownKind),
		stderrors.Is(err, errors.ErrInvalidPlacement),
		stderrors.Is(err, errors.ErrSquareOccupied),
		stderrors.Is(err, errors.ErrNoStartSquare):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

// writeError answers with the mapped status and {"error": msg}.
func writeError(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// errorHandler is the app-wide fallback for errors returned by handlers.
func errorHandler(c *fiber.Ctx, err error) error {
	return writeError(c, err)
}

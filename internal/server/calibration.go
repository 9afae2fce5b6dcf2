package server

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/philipparndt/goshape/internal/calibration"
	"github.com/philipparndt/goshape/pkg/units"
)

type calibrationRequest struct {
	PixelsPerUnit float64 `json:"pixelsPerUnit"`
}

// GET /calibration
func (s *Server) handleGetCalibration(c fiber.Ctx) error {
	cal, err := s.resolver(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(cal)
}

// PUT /calibration/:unit
func (s *Server) handleSetCalibration(c fiber.Ctx) error {
	if s.store == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "no calibration store configured"})
	}

	unit, err := units.ParseUnit(c.Params("unit"))
	if err != nil {
		return badRequest(c, err.Error())
	}

	var req calibrationRequest
	if err := decodeBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}

	if err := s.store.Set(c.Context(), unit, req.PixelsPerUnit); err != nil {
		if errors.Is(err, calibration.ErrInvalidCalibration) {
			return badRequest(c, err.Error())
		}
		return internalError(c, err)
	}

	cal, err := s.resolver(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	s.logger.Info("calibration changed", "unit", unit, "pixelsPerUnit", req.PixelsPerUnit)
	return c.JSON(cal)
}

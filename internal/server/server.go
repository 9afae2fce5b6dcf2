// Package server exposes the shape engine over HTTP.
//
// The server is stateless: every request carries the document it works on
// and gets the updated document back. Only the calibration is stored.
package server

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/philipparndt/goshape/internal/logging"
	"github.com/philipparndt/goshape/pkg/shape"
	"github.com/philipparndt/goshape/pkg/units"
)

// CalibrationStore provides and persists pixels-per-unit values
type CalibrationStore interface {
	Snapshot(ctx context.Context) (units.Calibration, error)
	Set(ctx context.Context, unit units.Unit, pixelsPerUnit float64) error
}

// Server wires the HTTP routes to the shape engine
type Server struct {
	app      *fiber.App
	store    CalibrationStore
	unit     units.Unit
	overlay  func(units.Calibration) units.Calibration
	ids      shape.IDGenerator
	logger   *slog.Logger
	shutdown time.Duration
}

// Option configures a Server
type Option func(*Server)

// WithLogger sets the request logger
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logging.OrNop(l)
	}
}

// WithDefaultUnit sets the unit used when neither request nor document names one
func WithDefaultUnit(u units.Unit) Option {
	return func(s *Server) {
		s.unit = u
	}
}

// WithCalibrationOverlay adjusts the stored calibration before it is used,
// e.g. to apply session overrides from the environment
func WithCalibrationOverlay(fn func(units.Calibration) units.Calibration) Option {
	return func(s *Server) {
		s.overlay = fn
	}
}

// WithIDGenerator sets the generator for ids of created shapes
func WithIDGenerator(g shape.IDGenerator) Option {
	return func(s *Server) {
		s.ids = g
	}
}

// New creates a server. store may be nil, in which case the default
// calibration is used and updates are rejected.
func New(store CalibrationStore, opts ...Option) *Server {
	s := &Server{
		store:    store,
		unit:     units.Centimeter,
		ids:      shape.UUIDGenerator{},
		logger:   logging.Nop(),
		shutdown: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.app = fiber.New(fiber.Config{
		AppName:      "goshape",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorHandler: errorHandler,
	})

	s.app.Use(recover.New())
	s.app.Use(requestLogger(s.logger))
	s.routes()

	return s
}

// App returns the underlying fiber app
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) routes() {
	s.app.Get("/health/live", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})
	s.app.Get("/health/ready", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ready"})
	})

	s.app.Post("/measurements", s.handleMeasurements)

	s.app.Post("/shapes", s.handleCreate)
	s.app.Post("/shapes/:id/measurements", s.handleUpdateMeasurement)
	s.app.Post("/shapes/:id/move", s.handleMove)
	s.app.Post("/shapes/:id/resize", s.handleResize)
	s.app.Post("/shapes/:id/rotate", s.handleRotate)
	s.app.Post("/shapes/:id/select", s.handleSelect)
	s.app.Delete("/shapes/:id", s.handleDelete)

	s.app.Get("/calibration", s.handleGetCalibration)
	s.app.Put("/calibration/:unit", s.handleSetCalibration)
}

// Run serves on addr until ctx is cancelled
func (s *Server) Run(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- s.app.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdown)
	defer cancel()
	s.logger.Info("shutting down")
	return s.app.ShutdownWithContext(shutdownCtx)
}

func (s *Server) resolver(ctx context.Context) (units.Calibration, error) {
	cal := units.DefaultCalibration()
	if s.store != nil {
		stored, err := s.store.Snapshot(ctx)
		if err != nil {
			return units.Calibration{}, err
		}
		cal = stored
	}
	if s.overlay != nil {
		cal = s.overlay(cal)
	}
	return cal, nil
}

func requestLogger(logger *slog.Logger) fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logger.Info("request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"latency", time.Since(start),
		)
		return err
	}
}

func errorHandler(c fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func badRequest(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func notFound(c fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": msg})
}

func internalError(c fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

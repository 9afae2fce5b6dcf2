package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"

	"github.com/philipparndt/goshape/internal/palette"
	"github.com/philipparndt/goshape/pkg/document"
	"github.com/philipparndt/goshape/pkg/geometry"
	"github.com/philipparndt/goshape/pkg/measure"
	"github.com/philipparndt/goshape/pkg/shape"
	"github.com/philipparndt/goshape/pkg/units"
)

type documentRequest struct {
	Document json.RawMessage `json:"document"`
}

type createRequest struct {
	Document json.RawMessage `json:"document"`
	Kind     string          `json:"kind"`
	From     geometry.Point  `json:"from"`
	To       geometry.Point  `json:"to"`
}

type measurementRequest struct {
	Document json.RawMessage `json:"document"`
	Key      string          `json:"key"`
	Value    string          `json:"value"`
	Unit     string          `json:"unit"`
}

type moveRequest struct {
	Document json.RawMessage `json:"document"`
	DX       float64         `json:"dx"`
	DY       float64         `json:"dy"`
}

type resizeRequest struct {
	Document json.RawMessage `json:"document"`
	Factor   float64         `json:"factor"`
}

type rotateRequest struct {
	Document json.RawMessage `json:"document"`
	Angle    float64         `json:"angle"`
}

func decodeBody(c fiber.Ctx, v any) error {
	if len(c.Body()) == 0 {
		return errors.New("empty body")
	}
	if err := json.Unmarshal(c.Body(), v); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}

func parseDocument(raw json.RawMessage) (*document.Document, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return document.New("", ""), nil
	}
	return document.Parse(bytes.NewReader(raw))
}

// unitFor picks the request unit, then the document unit, then the server default
func (s *Server) unitFor(requested string, doc *document.Document) (units.Unit, error) {
	if requested != "" {
		return units.ParseUnit(requested)
	}
	return doc.DisplayUnit(s.unit), nil
}

// POST /measurements?unit=cm with a document body
func (s *Server) handleMeasurements(c fiber.Ctx) error {
	doc, err := document.Parse(bytes.NewReader(c.Body()))
	if err != nil {
		return badRequest(c, err.Error())
	}
	unit, err := s.unitFor(c.Query("unit"), doc)
	if err != nil {
		return badRequest(c, err.Error())
	}
	cal, err := s.resolver(c.Context())
	if err != nil {
		return internalError(c, err)
	}

	out := make(map[string]map[string]string, len(doc.Shapes))
	for _, sh := range doc.Shapes {
		out[shape.ID(sh)] = measure.Measurements(sh, unit, cal)
	}
	return c.JSON(out)
}

// POST /shapes/:id/measurements
func (s *Server) handleUpdateMeasurement(c fiber.Ctx) error {
	var req measurementRequest
	if err := decodeBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}
	doc, err := parseDocument(req.Document)
	if err != nil {
		return badRequest(c, err.Error())
	}

	id := c.Params("id")
	target, ok := shape.Find(doc.Shapes, id)
	if !ok {
		return notFound(c, "shape not found")
	}
	if !measure.Editable(target.Kind(), req.Key) {
		return badRequest(c, fmt.Sprintf("%s has no editable measurement %q", target.Kind(), req.Key))
	}

	unit, err := s.unitFor(req.Unit, doc)
	if err != nil {
		return badRequest(c, err.Error())
	}
	cal, err := s.resolver(c.Context())
	if err != nil {
		return internalError(c, err)
	}

	updated := measure.UpdateFromString(target, req.Key, req.Value, unit, cal)
	doc.Shapes = shape.Replace(doc.Shapes, updated)
	return c.JSON(doc)
}

// POST /shapes
func (s *Server) handleCreate(c fiber.Ctx) error {
	var req createRequest
	if err := decodeBody(c, &req); err != nil {
		return badRequest(c, err.Error())
	}
	doc, err := parseDocument(req.Document)
	if err != nil {
		return badRequest(c, err.Error())
	}
	kind, err := shape.ParseKind(req.Kind)
	if err != nil {
		return badRequest(c, err.Error())
	}
	if !req.From.IsFinite() || !req.To.IsFinite() {
		return badRequest(c, "from and to must be finite points")
	}

	created, err := shape.Create(kind, req.From, req.To,
		shape.WithIDGenerator(s.ids),
		shape.WithCreateStyle(palette.Next(doc.ShapeCount())),
	)
	if err != nil {
		return badRequest(c, err.Error())
	}
	doc.AddShape(created)

	s.logger.Debug("shape created", "id", shape.ID(created), "kind", kind)
	return c.Status(fiber.StatusCreated).JSON(doc)
}

// transform decodes the request into req, applies fn to the document and
// answers with the result. Unknown ids are a 404.
func (s *Server) transform(c fiber.Ctx, req any, raw func() json.RawMessage, fn func(shapes []shape.Shape, id string) []shape.Shape) error {
	if err := decodeBody(c, req); err != nil {
		return badRequest(c, err.Error())
	}
	doc, err := parseDocument(raw())
	if err != nil {
		return badRequest(c, err.Error())
	}

	id := c.Params("id")
	if shape.Index(doc.Shapes, id) < 0 {
		return notFound(c, "shape not found")
	}
	doc.Shapes = fn(doc.Shapes, id)
	return c.JSON(doc)
}

// POST /shapes/:id/move
func (s *Server) handleMove(c fiber.Ctx) error {
	var req moveRequest
	return s.transform(c, &req, func() json.RawMessage { return req.Document }, func(shapes []shape.Shape, id string) []shape.Shape {
		return shape.Move(shapes, id, req.DX, req.DY)
	})
}

// POST /shapes/:id/resize
func (s *Server) handleResize(c fiber.Ctx) error {
	var req resizeRequest
	return s.transform(c, &req, func() json.RawMessage { return req.Document }, func(shapes []shape.Shape, id string) []shape.Shape {
		return shape.Resize(shapes, id, req.Factor)
	})
}

// POST /shapes/:id/rotate
func (s *Server) handleRotate(c fiber.Ctx) error {
	var req rotateRequest
	return s.transform(c, &req, func() json.RawMessage { return req.Document }, func(shapes []shape.Shape, id string) []shape.Shape {
		return shape.Rotate(shapes, id, req.Angle)
	})
}

// POST /shapes/:id/select
func (s *Server) handleSelect(c fiber.Ctx) error {
	var req documentRequest
	return s.transform(c, &req, func() json.RawMessage { return req.Document }, shape.Select)
}

// DELETE /shapes/:id
func (s *Server) handleDelete(c fiber.Ctx) error {
	var req documentRequest
	return s.transform(c, &req, func() json.RawMessage { return req.Document }, shape.Delete)
}

// Package server exposes the traversal engine over HTTP: algorithm listing
// and one-shot traversal runs returning the full replayable trace.
package server

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/kimestelle/algorithm-visualizer/graph"
	"github.com/kimestelle/algorithm-visualizer/internal/metrics"
	"github.com/kimestelle/algorithm-visualizer/registry"
	"github.com/kimestelle/algorithm-visualizer/traversal"
)

// Server wraps the fiber app and its dependencies.
type Server struct {
	app *fiber.App
	log *logrus.Logger
}

// New builds a Server with all routes registered.
func New(log *logrus.Logger) *Server {
	s := &Server{
		app: fiber.New(),
		log: log,
	}
	s.routes()
	return s
}

// App returns the underlying fiber app, mainly for tests.
func (s *Server) App() *fiber.App { return s.app }

// Listen serves on addr until Shutdown.
func (s *Server) Listen(addr string) error { return s.app.Listen(addr) }

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// runRequest is the POST /traversals body.
type runRequest struct {
	Algorithm string     `json:"algorithm"`
	Graph     graph.Data `json:"graph"`
	Start     string     `json:"start"`
}

// runResponse wraps a finished trace with a run id for log correlation.
type runResponse struct {
	ID        string            `json:"id"`
	Algorithm string            `json:"algorithm"`
	Result    *traversal.Result `json:"result"`
}

// algorithmInfo is one GET /algorithms entry.
type algorithmInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) routes() {
	s.app.Get("/healthz", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	s.app.Get("/algorithms", func(c fiber.Ctx) error {
		out := make([]algorithmInfo, 0, len(registry.Names()))
		for _, name := range registry.Names() {
			a, _ := registry.Lookup(name)
			out = append(out, algorithmInfo{Name: a.Name, Description: a.Description})
		}
		return c.JSON(out)
	})

	s.app.Post("/traversals", s.handleRun)
}

func (s *Server) handleRun(c fiber.Ctx) error {
	var req runRequest
	if err := c.Bind().JSON(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}

	g, err := graph.New(req.Graph)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	started := time.Now()
	res, err := registry.Run(req.Algorithm, g, req.Start)
	if err != nil {
		metrics.RunsTotal.WithLabelValues(req.Algorithm, "error").Inc()
		s.log.WithFields(logrus.Fields{
			"algorithm": req.Algorithm,
			"err":       err,
		}).Warn("traversal rejected")
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	elapsed := time.Since(started)
	metrics.RunsTotal.WithLabelValues(req.Algorithm, "ok").Inc()
	metrics.RunDuration.WithLabelValues(req.Algorithm).Observe(elapsed.Seconds())
	metrics.TraceSteps.Observe(float64(len(res.Steps)))

	id := uuid.NewString()
	s.log.WithFields(logrus.Fields{
		"run_id":    id,
		"algorithm": req.Algorithm,
		"nodes":     g.NodeCount(),
		"steps":     len(res.Steps),
		"duration":  elapsed,
	}).Info("traversal complete")

	return c.JSON(runResponse{ID: id, Algorithm: req.Algorithm, Result: res})
}

// statusFor maps the engine's closed error taxonomy onto HTTP statuses:
// unknown algorithm is a routing problem, every precondition failure is an
// unprocessable input, anything else is unexpected.
func statusFor(err error) int {
	switch {
	case errors.Is(err, registry.ErrUnknownAlgorithm):
		return fiber.StatusNotFound
	case errors.Is(err, traversal.ErrUnsupportedGraphKind),
		errors.Is(err, traversal.ErrInvalidStartNode),
		errors.Is(err, traversal.ErrNegativeWeight),
		errors.Is(err, traversal.ErrCycleDetected),
		errors.Is(err, traversal.ErrNilGraph):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

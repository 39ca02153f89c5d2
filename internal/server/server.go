// Package server exposes block rendering over HTTP.
package server

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/cleared-dev/acjournal/internal/buildinfo"
	"github.com/cleared-dev/acjournal/internal/document"
	"github.com/cleared-dev/acjournal/internal/journal"
	"github.com/cleared-dev/acjournal/internal/options"
	"github.com/cleared-dev/acjournal/internal/render"
)

const (
	shutdownTimeout = 5 * time.Second
	markdownType    = "text/markdown; charset=utf-8"
)

// Path names accepted by POST /render/:kind.
var routeKinds = map[string]render.Kind{
	"journal": render.KindJournal,
	"modern":  render.KindModern,
	"ledger":  render.KindLedger,
}

// Server is the HTTP front end of a document pipeline.
type Server struct {
	app      *fiber.App
	pipeline *document.Pipeline
	logger   *zap.Logger
}

// New builds the fiber app and its routes.
func New(pipeline *document.Pipeline, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{pipeline: pipeline, logger: logger}

	s.app = fiber.New(fiber.Config{
		AppName:               "acjournal",
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})
	s.app.Use(recover.New())
	s.app.Use(s.logRequests)

	s.app.Get("/health", s.health)
	s.app.Post("/render/:kind", s.renderBlock)
	s.app.Post("/document", s.rewriteDocument)
	return s
}

// App returns the underlying fiber app.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run serves on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", addr))
		errCh <- s.app.Listen(addr)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutting down")
		return s.app.ShutdownWithTimeout(shutdownTimeout)
	case err := <-errCh:
		return err
	}
}

func (s *Server) logRequests(c *fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	status := c.Response().StatusCode()
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
	}
	s.logger.Debug("request",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Int("status", status),
		zap.Duration("latency", time.Since(start)),
	)
	return err
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	} else {
		s.logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// blockOptions layers the request's query overrides over the pipeline's
// global settings.
func (s *Server) blockOptions(c *fiber.Ctx) (options.Block, error) {
	var o options.Overrides
	if v := c.Query("comma"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return options.Block{}, fiber.NewError(fiber.StatusBadRequest, "invalid comma parameter: "+v)
		}
		o.CommaDecimal = options.Some(b)
	}
	o.Separator = options.NonEmpty(c.Query("separator"))
	return options.Resolve(o, s.pipeline.Global), nil
}

func (s *Server) renderBlock(c *fiber.Ctx) error {
	kind, ok := routeKinds[c.Params("kind")]
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "unknown block kind: "+c.Params("kind"))
	}
	opts, err := s.blockOptions(c)
	if err != nil {
		return err
	}

	res := s.pipeline.RenderBlock(document.Block{Kind: kind, Source: string(c.Body())}, opts)
	if res.Err != nil {
		var pe *journal.ParseError
		if errors.As(res.Err, &pe) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": pe.Error(),
				"kind":  pe.Kind,
				"line":  pe.Line,
			})
		}
		return res.Err
	}

	var buf bytes.Buffer
	switch c.Query("format", "json") {
	case "json":
		return c.JSON(res.Table)
	case string(document.FormatHTML):
		if err := render.WriteHTML(&buf, res.Table); err != nil {
			return err
		}
		c.Type("html", "utf-8")
	case string(document.FormatMarkdown):
		if err := render.WriteMarkdown(&buf, res.Table); err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, markdownType)
	default:
		return fiber.NewError(fiber.StatusBadRequest, "unknown format: "+c.Query("format"))
	}
	return c.Send(buf.Bytes())
}

func (s *Server) rewriteDocument(c *fiber.Ctx) error {
	format, err := document.ParseFormat(c.Query("format", string(document.FormatHTML)))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	out, stats, err := s.pipeline.Rewrite(string(c.Body()), format)
	if err != nil {
		return err
	}
	c.Set("X-Acj-Blocks", strconv.Itoa(stats.Blocks))
	c.Set("X-Acj-Failed", strconv.Itoa(stats.Failed))
	c.Set(fiber.HeaderContentType, markdownType)
	return c.SendString(out)
}

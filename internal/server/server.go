// Package server exposes the hub over HTTP and a websocket stream.
package server

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"golang.org/x/sync/errgroup"

	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/admin"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/dashboard"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/observability"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/resources"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/simulator"
)

// Options wires a Server to its collaborators.
type Options struct {
	Version      string
	Directory    *resources.Directory
	Simulator    simulator.Options
	Auth         *admin.Authenticator
	Tokens       *admin.TokenIssuer
	DefaultRange dashboard.TimeRange
	CallDuration time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Server is the HTTP surface.
type Server struct {
	app    *fiber.App
	opts   Options
	hub    *Hub
	sim    *simulator.Simulator
	ctx    context.Context
	cancel context.CancelFunc
}

// Event is one frame on the simulator stream.
type Event struct {
	Type    string             `json:"type"`
	Message *simulator.Message `json:"message,omitempty"`
	Alert   *simulator.Alert   `json:"alert,omitempty"`
}

// New builds the fiber app and its routes. The simulator is created here so
// its messages and alerts can be streamed to websocket clients.
func New(opts Options) (*Server, error) {
	if opts.Auth == nil || opts.Tokens == nil {
		return nil, errors.New("server: admin authenticator and token issuer are required")
	}
	if opts.Directory == nil {
		opts.Directory = resources.NewDirectory(nil)
	}
	if opts.DefaultRange == "" {
		opts.DefaultRange = dashboard.Week
	}

	s := &Server{opts: opts, hub: NewHub()}
	s.ctx, s.cancel = context.WithCancel(context.Background())

	simOpts := opts.Simulator
	onMessage, onAlert := simOpts.OnMessage, simOpts.OnAlert
	simOpts.OnMessage = func(m simulator.Message) {
		s.hub.Broadcast(Event{Type: "message", Message: &m})
		if onMessage != nil {
			onMessage(m)
		}
	}
	simOpts.OnAlert = func(a simulator.Alert) {
		s.hub.Broadcast(Event{Type: "alert", Alert: &a})
		if onAlert != nil {
			onAlert(a)
		}
	}
	s.sim = simulator.New(simOpts)

	s.app = fiber.New(fiber.Config{
		AppName:               "mindhub",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
		ReadTimeout:           opts.ReadTimeout,
		WriteTimeout:          opts.WriteTimeout,
	})
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.app.Use(requestID())
	s.app.Use(requestLogger())

	s.app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	s.app.Get("/ws/simulator", websocket.New(s.streamSimulator))

	api := s.app.Group("/api")
	api.Get("/health", s.health)
	api.Get("/quote", s.quote)
	api.Get("/hotlines", s.hotlines)
	api.Post("/wellness", s.scoreWellness)
	api.Get("/resources", s.searchResources)
	api.Get("/dashboard", s.dashboard)

	sim := api.Group("/simulator")
	sim.Post("/start", s.startSimulator)
	sim.Post("/stop", s.stopSimulator)
	sim.Get("/messages", s.simulatorMessages)

	adm := api.Group("/admin")
	adm.Post("/login", s.login)
	adm.Get("/overview", requireAdmin(s.opts.Tokens), s.overview)
	adm.Post("/analyze", requireAdmin(s.opts.Tokens), s.analyze)
}

// App exposes the fiber app, mainly for tests.
func (s *Server) App() *fiber.App { return s.app }

// Simulator returns the server's simulator.
func (s *Server) Simulator() *simulator.Simulator { return s.sim }

// Hub returns the stream hub.
func (s *Server) Hub() *Hub { return s.hub }

// Listen serves on addr until ctx is done, then shuts down within timeout
// and stops the simulator.
func (s *Server) Listen(ctx context.Context, addr string, timeout time.Duration) error {
	log := observability.Logger()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("http server listening", "addr", addr)
		return s.app.Listen(addr)
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("http server shutting down")
		s.Close()
		return s.app.ShutdownWithTimeout(timeout)
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Close stops the simulator and ends any simulation started over HTTP.
func (s *Server) Close() {
	s.cancel()
	if err := s.sim.Stop(); err != nil && !errors.Is(err, simulator.ErrNotRunning) {
		observability.Logger().Warn("stopping simulator", "error", err)
	}
}

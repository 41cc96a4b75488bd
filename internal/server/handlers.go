package server

import (
	"errors"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/admin"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/dashboard"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/hotline"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/observability"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/quotes"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/resources"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/sentiment"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/simulator"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/wellness"
)

// WellnessResponse is the body of a successful check-in.
type WellnessResponse struct {
	wellness.Result
	Crisis bool `json:"crisis"`
}

// SimulatorStatus is the body of the simulator endpoints.
type SimulatorStatus struct {
	State    string              `json:"state"`
	Flagged  bool                `json:"flagged"`
	Dropped  int                 `json:"dropped"`
	Messages []simulator.Message `json:"messages,omitempty"`
}

// LoginRequest is the admin login body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries a session token.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}

func (s *Server) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"version":   s.opts.Version,
		"simulator": s.sim.State().String(),
		"streams":   s.hub.Len(),
	})
}

func (s *Server) quote(c *fiber.Ctx) error {
	return c.JSON(quotes.Pick(nil))
}

func (s *Server) hotlines(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"numbers":               hotline.Numbers(),
		"call_duration_seconds": int(s.callDuration().Seconds()),
	})
}

func (s *Server) callDuration() time.Duration {
	if s.opts.CallDuration > 0 {
		return s.opts.CallDuration
	}
	return hotline.DefaultCallDuration
}

func (s *Server) scoreWellness(c *fiber.Ctx) error {
	var sub wellness.Submission
	if err := c.BodyParser(&sub); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := wellness.Validate(sub); err != nil {
		var verr *wellness.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":  "validation failed",
				"fields": verr.Fields,
			})
		}
		return err
	}

	res := wellness.Score(sub)
	crisis, _ := sentiment.DetectCrisis(sub.Feelings)
	if crisis {
		observability.LoggerFromContext(c.UserContext()).Warn("wellness check-in contains crisis language", "score", res.Score)
	}
	return c.JSON(WellnessResponse{Result: res, Crisis: crisis})
}

func (s *Server) searchResources(c *fiber.Ctx) error {
	found, err := s.opts.Directory.Tab(c.UserContext(), c.Query("tab"), c.Query("q"))
	if errors.Is(err, resources.ErrUnknownTab) {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"count": len(found), "resources": found})
}

func (s *Server) dashboard(c *fiber.Ctx) error {
	tr := s.opts.DefaultRange
	if q := c.Query("range"); q != "" {
		var err error
		if tr, err = dashboard.ParseTimeRange(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}

	var seed uint64
	if q := c.Query("seed"); q != "" {
		v, err := strconv.ParseUint(q, 10, 64)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "seed must be a non-negative integer")
		}
		seed = v
	} else {
		seed = rand.Uint64()
	}

	snap, err := dashboard.Build(c.UserContext(), seed, tr)
	if err != nil {
		return err
	}
	return c.JSON(snap)
}

func (s *Server) status(withMessages bool) SimulatorStatus {
	st := SimulatorStatus{
		State:   s.sim.State().String(),
		Flagged: s.sim.Flagged(),
		Dropped: s.sim.Dropped(),
	}
	if withMessages {
		st.Messages = s.sim.Messages()
	}
	return st
}

func (s *Server) startSimulator(c *fiber.Ctx) error {
	if err := s.sim.Start(s.ctx); err != nil {
		if errors.Is(err, simulator.ErrAlreadyRunning) {
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}
		return err
	}
	observability.LoggerFromContext(c.UserContext()).Info("simulator started")
	return c.JSON(s.status(false))
}

func (s *Server) stopSimulator(c *fiber.Ctx) error {
	if err := s.sim.Stop(); err != nil {
		if errors.Is(err, simulator.ErrNotRunning) {
			return fiber.NewError(fiber.StatusConflict, err.Error())
		}
		return err
	}
	observability.LoggerFromContext(c.UserContext()).Info("simulator stopped")
	return c.JSON(s.status(false))
}

func (s *Server) simulatorMessages(c *fiber.Ctx) error {
	st := s.status(true)
	if st.Messages == nil {
		st.Messages = []simulator.Message{}
	}
	return c.JSON(st)
}

// streamSimulator replays the current history and then forwards live
// events until the client disconnects.
func (s *Server) streamSimulator(conn *websocket.Conn) {
	log := observability.Logger()

	id := s.hub.Register(conn, func() []any {
		msgs := s.sim.Messages()
		out := make([]any, len(msgs))
		for i := range msgs {
			out[i] = Event{Type: "message", Message: &msgs[i]}
		}
		return out
	})
	defer s.hub.Unregister(id)
	log.Debug("websocket client connected", "client", id)

	// Inbound frames are ignored; reading detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			log.Debug("websocket client disconnected", "client", id)
			return
		}
	}
}

func (s *Server) login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	log := observability.LoggerFromContext(c.UserContext())
	switch err := s.opts.Auth.Login(req.Username, req.Password); {
	case errors.Is(err, admin.ErrTooManyAttempts):
		log.Warn("admin login throttled", "username", req.Username)
		return fiber.NewError(fiber.StatusTooManyRequests, err.Error())
	case errors.Is(err, admin.ErrInvalidCredentials):
		log.Info("admin login failed", "username", req.Username)
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	case err != nil:
		return err
	}

	token, exp, err := s.opts.Tokens.Issue(req.Username)
	if err != nil {
		return err
	}
	log.Info("admin login", "username", req.Username)
	return c.JSON(LoginResponse{Token: token, ExpiresAt: exp.UTC().Format(time.RFC3339)})
}

func (s *Server) overview(c *fiber.Ctx) error {
	return c.JSON(admin.Feed())
}

func (s *Server) analyze(c *fiber.Ctx) error {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(req.Text) == "" {
		return fiber.NewError(fiber.StatusUnprocessableEntity, "Please enter text to analyze")
	}
	return c.JSON(admin.Analyze(req.Text))
}

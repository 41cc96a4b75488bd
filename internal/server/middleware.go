package server

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/admin"
	"github.com/Mcdchiez16/zambia-mind-wellbeing-hub/internal/observability"
)

const (
	headerRequestID = "X-Request-ID"
	localsClaims    = "claims"
)

// requestID tags each request with an ID, reusing the caller's when given,
// and stores it in the request context for logging.
func requestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(headerRequestID, id)
		c.SetUserContext(observability.WithRequestID(c.UserContext(), id))
		return c.Next()
	}
}

// requestLogger logs one line per request after it completes.
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		}
		observability.LoggerFromContext(c.UserContext()).Info("http request",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return err
	}
}

// requireAdmin rejects requests without a valid bearer session token.
func requireAdmin(tokens *admin.TokenIssuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get(fiber.HeaderAuthorization)
		token, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}
		claims, err := tokens.Verify(strings.TrimSpace(token))
		if err != nil {
			observability.LoggerFromContext(c.UserContext()).Debug("rejected admin token", "error", err)
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}
		c.Locals(localsClaims, claims)
		return c.Next()
	}
}

// errorHandler renders every error as {"error": "..."}.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "internal error"
	if fe, ok := err.(*fiber.Error); ok {
		code = fe.Code
		msg = fe.Message
	} else {
		observability.LoggerFromContext(c.UserContext()).Error("request failed", "path", c.Path(), "error", err)
	}
	return c.Status(code).JSON(fiber.Map{"error": msg})
}

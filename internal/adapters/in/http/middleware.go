package http

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/user"
	"orderdesk/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
)

const actorContextKey = "orderdesk.actor"

// Authenticator resolves a bearer token to a user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*user.User, error)
}

// bearerAuth rejects requests without a valid bearer token and stores the
// resolved user for the handlers.
func bearerAuth(authn Authenticator, errw errorWriter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, err := authn.Authenticate(c.Request().Context(), bearerToken(c.Request().Header.Get(echo.HeaderAuthorization)))
			if err != nil {
				return errw.write(c, "authenticate", err)
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

// bearerToken extracts the credential of an "Authorization: Bearer" header.
// Anything else yields "".
func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func actorFrom(c echo.Context) *user.User {
	actor, _ := c.Get(actorContextKey).(*user.User)
	return actor
}

// requestObserver logs every request and records its metrics under the route
// template, never the raw path.
func requestObserver(registry *metrics.Registry, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			elapsed := time.Since(start)
			route := c.Path()

			if registry != nil {
				registry.HTTPRequests.WithLabelValues(req.Method, route, strconv.Itoa(status)).Inc()
				registry.HTTPRequestLatency.WithLabelValues(req.Method, route).Observe(elapsed.Seconds())
			}

			logger.InfoContext(req.Context(), "request served",
				"event", "http_request",
				"method", req.Method,
				"route", route,
				"status", status,
				"duration_ms", elapsed.Milliseconds(),
			)
			return nil
		}
	}
}

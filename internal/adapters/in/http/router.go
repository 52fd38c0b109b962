package http

import (
	"log/slog"
	"net/http"

	_ "orderdesk/docs" // registers the swagger document
	"orderdesk/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance serving the API, health, metrics and
// the swagger UI.
func NewRouter(server *Server, authn Authenticator, registry *metrics.Registry, logger *slog.Logger) *echo.Echo {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "http")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = httpErrorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(requestObserver(registry, logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if registry != nil {
		e.GET("/metrics", echo.WrapHandler(registry.Handler()))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	RegisterHandlers(e, server, bearerAuth(authn, server.errw))
	return e
}

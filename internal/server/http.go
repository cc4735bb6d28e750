package server

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/translatekit/deepl-mcp/internal/errors"
)

const shutdownTimeout = 10 * time.Second

// healthResponse is the body of GET /health.
type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// ServeHTTP hosts the MCP streamable transport on /mcp plus a health
// endpoint on addr, until ctx is canceled.
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			if v.Error != nil {
				s.log.Error("http request failed",
					"method", v.Method, "uri", v.URI, "status", v.Status,
					"latency", v.Latency, "error", v.Error)
				return nil
			}
			s.log.Debug("http request",
				"method", v.Method, "uri", v.URI, "status", v.Status,
				"latency", v.Latency)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, healthResponse{Status: "healthy", Service: Name})
	})

	streamable := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcp
	}, nil)
	e.Any("/mcp", echo.WrapHandler(streamable))
	e.Any("/mcp/*", echo.WrapHandler(streamable))

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			s.log.Error("http shutdown failed", "error", err)
		}
	}()

	s.log.Info("starting MCP server", "transport", "http", "addr", addr)
	defer s.Close()

	if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "starting http server")
	}
	return nil
}

package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

// Server handles web requests for the raytracer preview
type Server struct {
	port     int
	echo     *echo.Echo
	upgrader websocket.Upgrader
}

// paramLimit bounds an integer query parameter
type paramLimit struct {
	Default int `json:"default"`
	Min     int `json:"min"`
	Max     int `json:"max"`
}

// renderLimits are shared by request parsing and the /api/scenes response
var renderLimits = map[string]paramLimit{
	"width":   {Default: 400, Min: 8, Max: 2000},
	"samples": {Default: 10, Min: 1, Max: 1000},
	"depth":   {Default: 50, Min: 1, Max: 200},
	"size":    {Default: scene.DefaultRandomSceneSize, Min: 0, Max: 22},
	"seed":    {Default: 42, Min: 0, Max: 1<<31 - 1},
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	s := &Server{
		port: port,
		echo: echo.New(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}

	s.echo.HideBanner = true
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
	}))

	s.echo.GET("/api/health", s.handleHealth)
	s.echo.GET("/api/scenes", s.handleScenes)
	s.echo.GET("/api/inspect", s.handleInspect)
	s.echo.GET("/api/render", s.handleRender)

	return s
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start starts the web server and blocks until it stops
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("web server: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for active requests
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes and the accepted parameter ranges
func (s *Server) handleScenes(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"scenes": scene.List(),
		"limits": renderLimits,
	})
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseLimitedParam parses a parameter declared in renderLimits
func parseLimitedParam(values url.Values, key string) (int, error) {
	limit := renderLimits[key]
	return parseIntParam(values, key, limit.Default, limit.Min, limit.Max)
}

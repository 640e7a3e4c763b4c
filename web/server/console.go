package server

import (
	"fmt"
	"strings"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// ConsoleMessage is one renderer log line forwarded to the browser
type ConsoleMessage struct {
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"` // "info", "warning", "error"
	RenderID  string    `json:"renderId"`
}

// WebLogger is a core.Logger that mirrors render output to stdout and to a
// websocket console. Lines are dropped rather than block when the console lags.
type WebLogger struct {
	renderID string
	console  chan<- ConsoleMessage
}

// NewWebLogger creates a logger for one render. console may be nil.
func NewWebLogger(renderID string, console chan<- ConsoleMessage) core.Logger {
	return &WebLogger{renderID: renderID, console: console}
}

func (wl *WebLogger) Printf(format string, args ...interface{}) {
	line := fmt.Sprintf(format, args...)
	fmt.Printf("[%s] %s", wl.renderID, line)

	if wl.console == nil {
		return
	}
	msg := ConsoleMessage{
		Message:   line,
		Timestamp: time.Now(),
		Level:     consoleLevel(line),
		RenderID:  wl.renderID,
	}
	select {
	case wl.console <- msg:
	default:
	}
}

// consoleLevel classifies a log line by its leading word
func consoleLevel(line string) string {
	lower := strings.ToLower(strings.TrimSpace(line))
	switch {
	case strings.HasPrefix(lower, "error"):
		return "error"
	case strings.HasPrefix(lower, "warning"), strings.HasPrefix(lower, "rendering cancelled"):
		return "warning"
	default:
		return "info"
	}
}

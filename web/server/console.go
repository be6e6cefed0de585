package server

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/df07/go-ppm-pathtracer/pkg/core"
)

// Render stages reported to the web console
const (
	StageStart    = "start"
	StageProgress = "progress"
	StageComplete = "complete"
	StageOther    = "other"
)

// ConsoleMessage is one renderer log line tagged with its render and stage
type ConsoleMessage struct {
	RenderID  string    `json:"renderId"`
	Stage     string    `json:"stage"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	// Scanlines left to render, -1 unless Stage is "progress"
	ScanlinesRemaining int `json:"scanlinesRemaining"`
}

// classifyMessage maps a raytracer log line to its stage
func classifyMessage(message string) (stage string, remaining int) {
	switch {
	case strings.HasPrefix(message, "Rendering "):
		return StageStart, -1
	case strings.HasPrefix(message, "Scanlines remaining:"):
		if _, err := fmt.Sscanf(message, "Scanlines remaining: %d", &remaining); err == nil {
			return StageProgress, remaining
		}
	case strings.HasPrefix(message, "Render completed"):
		return StageComplete, -1
	}
	return StageOther, -1
}

// WebLogger forwards raytracer output for one render to the server log and a console channel
type WebLogger struct {
	renderID    string
	consoleChan chan<- ConsoleMessage
}

// NewWebLogger creates a logger for a single render
func NewWebLogger(renderID string, consoleChan chan<- ConsoleMessage) core.Logger {
	return &WebLogger{
		renderID:    renderID,
		consoleChan: consoleChan,
	}
}

// Printf implements core.Logger
func (wl *WebLogger) Printf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	log.Printf("[%s] %s", wl.renderID, strings.TrimSuffix(message, "\n"))

	if wl.consoleChan == nil {
		return
	}
	stage, remaining := classifyMessage(message)
	select {
	case wl.consoleChan <- ConsoleMessage{
		RenderID:           wl.renderID,
		Stage:              stage,
		Message:            message,
		Timestamp:          time.Now(),
		ScanlinesRemaining: remaining,
	}:
	default:
		// Full; progress lines are droppable
	}
}

package server

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string `json:"scene"`   // Scene id from /api/scenes
	Width   int    `json:"width"`   // Image width; height follows the scene's aspect ratio
	Samples int    `json:"samples"` // Samples per pixel
	Depth   int    `json:"depth"`   // Maximum bounce depth
	Size    int    `json:"size"`    // Random scene half extent
	Seed    int64  `json:"seed"`    // Layout and sampling seed
}

// StreamMessage is one JSON frame on the render websocket
type StreamMessage struct {
	Type string      `json:"type"` // "console", "row", "complete", "error"
	Data interface{} `json:"data"`
}

// RowMessage carries one finished scanline
type RowMessage struct {
	Row       int    `json:"row"`    // Image row, 0 = top
	Width     int    `json:"width"`  // Pixels in the row
	Pixels    string `json:"pixels"` // Base64 packed RGB bytes
	Remaining int    `json:"remaining"`
}

// CompleteMessage summarizes a finished render
type CompleteMessage struct {
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	TotalSamples   int     `json:"totalSamples"`
	AverageSamples float64 `json:"averageSamples"`
	Workers        int     `json:"workers"`
	ElapsedMs      int64   `json:"elapsedMs"`
}

// parseRenderRequest parses and validates render parameters
func parseRenderRequest(values url.Values) (*RenderRequest, error) {
	req := &RenderRequest{Scene: values.Get("scene")}
	if req.Scene == "" {
		req.Scene = "random"
	}

	var err error
	if req.Width, err = parseLimitedParam(values, "width"); err != nil {
		return nil, err
	}
	if req.Samples, err = parseLimitedParam(values, "samples"); err != nil {
		return nil, err
	}
	if req.Depth, err = parseLimitedParam(values, "depth"); err != nil {
		return nil, err
	}
	if req.Size, err = parseLimitedParam(values, "size"); err != nil {
		return nil, err
	}
	seed, err := parseLimitedParam(values, "seed")
	if err != nil {
		return nil, err
	}
	req.Seed = int64(seed)

	if req.Width > 800 && req.Samples > 100 {
		log.Printf("Render warning: Large image with high samples may render slowly")
	}

	return req, nil
}

// setupRenderingPipeline builds the scene and raytracer for a request
func setupRenderingPipeline(req *RenderRequest, logger core.Logger) (*renderer.Raytracer, error) {
	sceneObj, err := scene.Create(req.Scene, scene.Options{
		Size:   req.Size,
		Seed:   req.Seed,
		Camera: renderer.CameraConfig{Width: req.Width},
	})
	if err != nil {
		return nil, err
	}

	config := sceneObj.SamplingConfig.Merge(core.SamplingConfig{
		SamplesPerPixel: req.Samples,
		MaxDepth:        req.Depth,
	})
	// Merge reads zero as unset, but 0 is a valid seed
	config.Seed = req.Seed

	logger.Printf("Scene %s: %d spheres, %dx%d\n", req.Scene, sceneObj.GetPrimitiveCount(), config.Width, config.Height)
	return renderer.NewRaytracer(sceneObj, config, logger)
}

// handleRender upgrades to a websocket and streams scanlines as they finish
func (s *Server) handleRender(c echo.Context) error {
	conn, err := s.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade has already replied with an HTTP error
		log.Printf("websocket upgrade: %v", err)
		return nil
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request().Context())
	defer cancel()
	go watchDisconnect(conn, cancel)

	// All websocket writes happen on one goroutine
	events := make(chan StreamMessage, 100)
	writerDone := make(chan struct{})
	go writeStreamMessages(conn, events, writerDone)
	defer func() {
		close(events)
		<-writerDone
	}()

	req, err := parseRenderRequest(c.QueryParams())
	if err != nil {
		events <- StreamMessage{Type: "error", Data: fmt.Sprintf("Invalid request: %v", err)}
		return nil
	}

	consoleChan := make(chan ConsoleMessage, 100)
	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	webLogger := NewWebLogger(renderID, consoleChan)

	consoleDone := make(chan struct{})
	go func() {
		defer close(consoleDone)
		for msg := range consoleChan {
			events <- StreamMessage{Type: "console", Data: msg}
		}
	}()

	raytracer, err := setupRenderingPipeline(req, webLogger)
	if err != nil {
		close(consoleChan)
		<-consoleDone
		events <- StreamMessage{Type: "error", Data: err.Error()}
		return nil
	}

	width := raytracer.GetSamplingConfig().Width
	frame, stats, err := raytracer.Render(ctx, renderer.RenderOptions{
		OnRow: func(update renderer.RowUpdate) {
			events <- StreamMessage{Type: "row", Data: RowMessage{
				Row:       update.Row,
				Width:     width,
				Pixels:    base64.StdEncoding.EncodeToString(renderer.PackRGB(update.Pixels)),
				Remaining: update.Remaining,
			}}
		},
	})

	close(consoleChan)
	<-consoleDone

	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Printf("%s: client disconnected", renderID)
			return nil
		}
		events <- StreamMessage{Type: "error", Data: fmt.Sprintf("Render error: %v", err)}
		return nil
	}

	events <- StreamMessage{Type: "complete", Data: CompleteMessage{
		Width:          frame.Width,
		Height:         frame.Height,
		TotalSamples:   stats.TotalSamples,
		AverageSamples: stats.AverageSamples(),
		Workers:        stats.NumWorkers,
		ElapsedMs:      stats.Elapsed.Milliseconds(),
	}}
	return nil
}

// writeStreamMessages writes every event in order. After a failed write it keeps
// draining so producers never block on a dead connection.
func writeStreamMessages(conn *websocket.Conn, events <-chan StreamMessage, done chan<- struct{}) {
	defer close(done)

	failed := false
	for msg := range events {
		if failed {
			continue
		}
		if err := conn.WriteJSON(msg); err != nil {
			failed = true
		}
	}

	if !failed {
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "render finished"))
	}
}

// watchDisconnect cancels the render when the client goes away
func watchDisconnect(conn *websocket.Conn, cancel context.CancelFunc) {
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			cancel()
			return
		}
	}
}

package server

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/df07/go-ppm-pathtracer/pkg/core"
	"github.com/df07/go-ppm-pathtracer/pkg/renderer"
)

const defaultSeed int64 = 42

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string // Scene ID from /api/scenes
	Width   int    // Image width
	Height  int    // Image height
	Samples int    // Samples per pixel
	Depth   int    // Maximum bounce depth
	Seed    int64  // Sampler seed
	Format  string // "png", "ppm" or "json"
}

// Stats represents render statistics
type Stats struct {
	TotalPixels      int     `json:"totalPixels"`
	TotalSamples     int     `json:"totalSamples"`
	SamplesPerPixel  int     `json:"samplesPerPixel"`
	MaxDepth         int     `json:"maxDepth"`
	AverageLuminance float32 `json:"averageLuminance"`
	ElapsedMs        int64   `json:"elapsedMs"`
}

// RenderResponse is the JSON form of a finished render
type RenderResponse struct {
	Scene     string           `json:"scene"`
	Width     int              `json:"width"`
	Height    int              `json:"height"`
	Seed      int64            `json:"seed"`
	ImageData string           `json:"imageData"` // Base64 encoded PNG
	Stats     Stats            `json:"stats"`
	Console   []ConsoleMessage `json:"console"`
}

var renderCounter atomic.Int64

// parseRenderRequest parses request parameters. Size, samples and depth default to the scene's values.
func (s *Server) parseRenderRequest(r *http.Request, defaults renderer.SamplingConfig) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", defaults.Width, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", defaults.Height, minImageSize, maxImageSize); err != nil {
		return nil, err
	}
	if req.Samples, err = parseIntParam(query, "samples", defaults.SamplesPerPixel, 1, maxSamples); err != nil {
		return nil, err
	}
	if req.Depth, err = parseIntParam(query, "depth", min(defaults.MaxDepth, maxDepthLimit), 1, maxDepthLimit); err != nil {
		return nil, err
	}
	if req.Seed, err = parseInt64Param(query, "seed", defaultSeed); err != nil {
		return nil, err
	}

	req.Format = strings.ToLower(query.Get("format"))
	switch req.Format {
	case "":
		req.Format = "png"
	case "png", "ppm", "json":
	default:
		return nil, fmt.Errorf("invalid format: %s (want png, ppm or json)", req.Format)
	}

	if total := req.Width * req.Height * req.Samples; total > maxTotalSamples {
		return nil, fmt.Errorf("%dx%d at %d samples is %d samples, limit is %d",
			req.Width, req.Height, req.Samples, total, maxTotalSamples)
	}

	return req, nil
}

// handleRender renders a scene and returns the image, or JSON with a base64 PNG when format=json
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	sceneName := r.URL.Query().Get("scene")
	if sceneName == "" {
		sceneName = "default"
	}
	sceneObj, err := s.createScene(sceneName)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	req, err := s.parseRenderRequest(r, sceneObj.SamplingConfig)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	renderID := fmt.Sprintf("render-%d", renderCounter.Add(1))
	consoleChan := make(chan ConsoleMessage, 64)

	raytracer := renderer.NewRaytracer(sceneObj, req.Width, req.Height)
	raytracer.SetSamplingConfig(renderer.SamplingConfig{
		Width:           req.Width,
		Height:          req.Height,
		SamplesPerPixel: req.Samples,
		MaxDepth:        req.Depth,
	})
	raytracer.SetSampler(core.NewSeededSampler(req.Seed))
	raytracer.SetLogger(NewWebLogger(renderID, consoleChan))

	// Use request context to stop when the client disconnects
	img, stats, err := raytracer.Render(r.Context())
	close(consoleChan)
	if err != nil {
		log.Printf("[%s] Render error: %v", renderID, err)
		writeError(w, http.StatusServiceUnavailable, fmt.Sprintf("Render error: %v", err))
		return
	}

	switch req.Format {
	case "json":
		imageData, err := s.imageToBase64PNG(img)
		if err != nil {
			writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
			return
		}
		console := []ConsoleMessage{}
		for msg := range consoleChan {
			console = append(console, msg)
		}
		writeJSON(w, http.StatusOK, RenderResponse{
			Scene:     req.Scene,
			Width:     req.Width,
			Height:    req.Height,
			Seed:      req.Seed,
			ImageData: imageData,
			Stats: Stats{
				TotalPixels:      stats.TotalPixels,
				TotalSamples:     stats.TotalSamples,
				SamplesPerPixel:  stats.SamplesPerPixel,
				MaxDepth:         stats.MaxDepth,
				AverageLuminance: stats.AverageLuminance,
				ElapsedMs:        stats.Duration.Milliseconds(),
			},
			Console: console,
		})

	default:
		format := renderer.Format(req.Format)
		var buf bytes.Buffer
		if err := renderer.EncodeImage(&buf, img, format); err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		w.Header().Set("Content-Type", format.ContentType())
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(buf.Bytes()); err != nil {
			log.Printf("[%s] Failed to write image: %v", renderID, err)
		}
	}
}

// imageToBase64PNG converts an image to base64-encoded PNG
func (s *Server) imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

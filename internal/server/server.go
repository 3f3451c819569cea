// Package server exposes the affordability calculator over HTTP as a small
// JSON API: POST /api/calculate runs the core, GET /api/market-data serves
// the static regional profile for client-side pre-population.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/redriverhomes/mortgage-affordability/pkg/calculator"
	"github.com/redriverhomes/mortgage-affordability/pkg/constants"
	"github.com/redriverhomes/mortgage-affordability/pkg/market"
)

// Options configures the HTTP handler.
type Options struct {
	MaxBodyBytes    int64
	RateLimitPerMin int
	Version         string
}

type handler struct {
	logger       *zap.Logger
	data         market.Data
	maxBodyBytes int64
	version      string
}

type errorResponse struct {
	Error  string                       `json:"error"`
	Fields []calculator.ValidationError `json:"fields,omitempty"`
}

// NewHandler constructs the HTTP handler serving the calculator API over the
// given regional market profile. The profile is read-only; one handler serves
// all requests concurrently without synchronization.
func NewHandler(logger *zap.Logger, data market.Data, opts Options) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = constants.DefaultMaxBodyBytes
	}
	if opts.RateLimitPerMin <= 0 {
		opts.RateLimitPerMin = constants.DefaultRateLimitRequests
	}
	version := strings.TrimSpace(opts.Version)
	if version == "" {
		version = "dev"
	}

	h := &handler{logger: logger, data: data, maxBodyBytes: opts.MaxBodyBytes, version: version}

	r := chi.NewRouter()
	r.Use(httprate.LimitByIP(opts.RateLimitPerMin, 1*time.Minute))
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/health", h.handleHealth)
	r.Post("/api/calculate", h.handleCalculate)
	r.Get("/api/market-data", h.handleMarketData)
	r.Get("/api/version", h.handleVersion)

	return r
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if h.maxBodyBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	}

	var req calculator.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, r, http.StatusRequestEntityTooLarge,
				"request body too large", nil, "server.handleCalculate")
			return
		}
		h.respondError(w, r, http.StatusBadRequest,
			"invalid request body: "+err.Error(), nil, "server.handleCalculate")
		return
	}

	result, err := calculator.Calculate(req, h.data)
	if err != nil {
		var violations calculator.ValidationErrors
		if errors.As(err, &violations) {
			h.respondError(w, r, http.StatusBadRequest, "validation failed", violations, "server.handleCalculate")
			return
		}
		// The core only raises validation errors; anything else is a bug.
		h.respondError(w, r, http.StatusInternalServerError, err.Error(), nil, "server.handleCalculate")
		return
	}

	h.logger.Info("calculation served",
		zap.String("op", "server.handleCalculate"),
		zap.Float64("propertyValue", req.PropertyValue),
		zap.String("rating", string(result.AffordabilityRating)),
		zap.Duration("duration", time.Since(start)),
	)

	render.Status(r, http.StatusOK)
	render.JSON(w, r, result)
}

func (h *handler) handleMarketData(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, h.data)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]string{"version": h.version})
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, map[string]bool{"ok": true})
}

func (h *handler) respondError(w http.ResponseWriter, r *http.Request, status int, msg string, fields calculator.ValidationErrors, op string) {
	h.logger.Error("calculation request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	render.Status(r, status)
	render.JSON(w, r, errorResponse{Error: msg, Fields: fields})
}

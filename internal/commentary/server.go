package commentary

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const maxRequestBody = 4 << 10

// NewRouter serves gen over HTTP:
//
//	POST /v1/commentary  {"score":..,"level":..,"event":".."} -> {"text":".."}
//	GET  /healthz        -> 200 "ok"
func NewRouter(gen Generator, logger *log.Logger) http.Handler {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := &handler{gen: gen, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	r.Route("/v1", func(r chi.Router) {
		r.Post("/commentary", h.commentary)
	})
	return r
}

type handler struct {
	gen    Generator
	logger *log.Logger
}

func (h *handler) commentary(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Score int    `json:"score"`
		Level int    `json:"level"`
		Event string `json:"event"`
	}
	if err := json.NewDecoder(io.LimitReader(r.Body, maxRequestBody)).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ev, err := ParseEvent(body.Event)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if body.Score < 0 || body.Level < 1 {
		writeError(w, http.StatusBadRequest, "score must be >= 0 and level >= 1")
		return
	}

	text, err := h.gen.Generate(r.Context(), Request{Score: body.Score, Level: body.Level, Event: ev})
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, r.Context().Err()) {
			status = http.StatusServiceUnavailable
		}
		h.logger.Error("generation failed", "err", err, "request_id", middleware.GetReqID(r.Context()))
		writeError(w, status, "generation failed")
		return
	}

	writeJSON(w, http.StatusOK, Response{Text: text})
}

func (h *handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"took", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

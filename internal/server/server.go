// Package server hosts the transliteration engine for browser text boxes.
//
// The browser owns its text box. After every native insertion it sends the
// box content and cursor over a websocket, the server runs the engine once
// and answers with the new content and cursor. Speech synthesis, OCR and
// document import requests are forwarded to the configured collaborators.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/translit"
	"github.com/npillmayer/translit/collab"
)

// tracer writes to trace with key 'translit.server'
func tracer() tracing.Trace {
	return tracing.Select("translit.server")
}

// Options configure a Server. Nil collaborators are reported to clients as
// unavailable.
type Options struct {
	Synthesizer    collab.Synthesizer
	ImageExtractor collab.ImageExtractor
	DocumentParser collab.DocumentParser
	CollabTimeout  time.Duration
	DefaultGender  string
	DefaultRegion  string
	AllowedOrigins []string // empty allows all origins
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

// Server serves the websocket protocol and a small JSON API.
type Server struct {
	engine   atomic.Pointer[translit.Engine]
	opts     Options
	upgrader websocket.Upgrader
}

// New creates a server around eng.
func New(eng *translit.Engine, opts Options) *Server {
	if opts.CollabTimeout == 0 {
		opts.CollabTimeout = 30 * time.Second
	}
	s := &Server{opts: opts}
	s.engine.Store(eng)
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     s.checkOrigin,
	}
	return s
}

// Engine returns the engine currently in use.
func (s *Server) Engine() *translit.Engine {
	return s.engine.Load()
}

// SetEngine replaces the engine. Requests already being processed finish
// with the engine they started with.
func (s *Server) SetEngine(eng *translit.Engine) {
	s.engine.Store(eng)
}

func (s *Server) checkOrigin(r *http.Request) bool {
	if len(s.opts.AllowedOrigins) == 0 {
		return true
	}
	return slices.Contains(s.opts.AllowedOrigins, r.Header.Get("Origin"))
}

// Handler returns the HTTP routes of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws", s.serveWebsocket)
	mux.HandleFunc("POST /api/transliterate", s.serveTransliterate)
	mux.HandleFunc("GET /api/tables", s.serveTables)
	return mux
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.opts.ReadTimeout,
		WriteTimeout: s.opts.WriteTimeout,
	}
	errc := make(chan error, 1)
	go func() {
		tracer().Infof("listening on %s", addr)
		errc <- srv.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// --- JSON API --------------------------------------------------------------

type textPayload struct {
	Text string `json:"text"`
}

type entryPayload struct {
	Trigger string `json:"trigger"`
	Output  string `json:"output"`
}

type tablesPayload struct {
	Substitutions []entryPayload `json:"substitutions"`
	Cancellations []entryPayload `json:"cancellations"`
}

func (s *Server) serveTransliterate(w http.ResponseWriter, r *http.Request) {
	var req textPayload
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorPayload{Code: codeBadRequest, Message: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, textPayload{Text: translit.Transliterate(s.Engine(), req.Text)})
}

func (s *Server) serveTables(w http.ResponseWriter, r *http.Request) {
	eng := s.Engine()
	resp := tablesPayload{Substitutions: entryPayloads(eng.Substitutions())}
	if c := eng.Cancellations(); c != nil {
		resp.Cancellations = entryPayloads(c)
	}
	writeJSON(w, http.StatusOK, resp)
}

func entryPayloads(t *translit.Table) []entryPayload {
	ee := t.Entries()
	pp := make([]entryPayload, len(ee))
	for i, e := range ee {
		pp[i] = entryPayload{Trigger: e.Trigger, Output: e.Output}
	}
	return pp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		tracer().Errorf("writing response: %v", err)
	}
}

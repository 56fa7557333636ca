package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"fairdice/internal/dice"
	"fairdice/internal/game"
	"fairdice/internal/session"
)

const maxBodyBytes = 1 << 20

// Server plays games over HTTP and keeps their transcripts for later
// retrieval and verification.
type Server struct {
	Engine *game.Engine
	Store  session.Store[game.Transcript]
	Log    zerolog.Logger
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /games", s.handleStart)
	mux.HandleFunc("GET /games/{id}", s.handleGet)
	mux.HandleFunc("GET /games/{id}/receipt", s.handleReceipt)
	mux.HandleFunc("POST /verify", s.handleVerify)
	return s.logRequests(mux)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	tr, ok, err := s.Store.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if !ok {
		s.writeError(w, http.StatusNotFound, errors.New("game not found"))
		return
	}
	s.writeJSON(w, http.StatusOK, GameResponse{ID: id, Transcript: tr})
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	var tr game.Transcript
	if err := decodeBody(w, r, &tr); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	resp := VerifyResponse{Verified: true}
	if err := game.VerifyTranscript(tr); err != nil {
		resp = VerifyResponse{Verified: false, Error: err.Error()}
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	return dec.Decode(v)
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, dice.ErrInvalidDieSpec),
		errors.Is(err, dice.ErrInsufficientDice),
		errors.Is(err, game.ErrInvalidSelection),
		errors.Is(err, game.ErrUnknownPolicy):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Log.Error().Err(err).Msg("encode response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		s.Log.Error().Err(err).Msg("request failed")
	}
	s.writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.Log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("http request")
	})
}

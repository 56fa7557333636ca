package web

import (
	"fmt"
	"net/http"

	"fairdice/internal/dice"
	"fairdice/internal/game"
)

// POST /games
func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req StartRequest
	if err := decodeBody(w, r, &req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}

	set, err := dice.FromFaces(req.Dice)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}
	g, err := s.Engine.NewGame(set)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}

	var chooser game.DieChooser
	if req.Choice != nil {
		chooser = game.Choice(*req.Choice)
	}
	tr, err := g.Play(chooser, nil)
	if err != nil {
		s.writeError(w, statusFor(err), err)
		return
	}

	id := s.Store.NewID()
	if err := s.Store.Put(ctx, id, tr); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.Log.Info().
		Str("game_id", id).
		Str("policy", string(tr.Policy)).
		Stringer("first_mover", tr.FirstMover).
		Stringer("outcome", tr.Outcome).
		Msg("game complete")

	w.Header().Set("Location", "/games/"+id)
	s.writeJSON(w, http.StatusCreated, GameResponse{ID: id, Transcript: tr})
}

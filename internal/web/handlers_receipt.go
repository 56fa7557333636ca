package web

import (
	"errors"
	"net/http"

	"fairdice/internal/receipt"
)

// GET /games/{id}/receipt
func (s *Server) handleReceipt(w http.ResponseWriter, r *http.Request) {
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
	pdf, err := receipt.Render(tr, "Game "+id)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="fairdice-receipt.pdf"`)
	if _, err := w.Write(pdf); err != nil {
		s.Log.Error().Err(err).Str("game_id", id).Msg("write receipt")
	}
}

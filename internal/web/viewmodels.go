package web

import "fairdice/internal/game"

// StartRequest is the body of POST /games. Choice is the user's die and is
// required only when the user wins the first move.
type StartRequest struct {
	Dice   [][]int `json:"dice"`
	Choice *int    `json:"choice,omitempty"`
}

// GameResponse is a stored transcript with its ID.
type GameResponse struct {
	ID string `json:"id"`
	game.Transcript
}

type VerifyResponse struct {
	Verified bool   `json:"verified"`
	Error    string `json:"error,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

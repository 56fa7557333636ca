// Package session keeps finished game transcripts so they can be fetched
// and verified after the request that played them.
package session

import "context"

// Store saves values under generated IDs.
type Store[T any] interface {
	Get(ctx context.Context, id string) (T, bool, error)
	Put(ctx context.Context, id string, v T) error
	NewID() string
}

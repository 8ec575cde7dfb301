// Package keeper implements durable key-value snapshot storage for the
// workout log and plan collections. Each keeper owns a single namespace
// key and stores the whole serialized collection under it on every save.
package keeper

import "context"

type Keeper interface {
	// Load returns the stored snapshot, or nil when nothing was stored yet.
	Load(ctx context.Context) ([]byte, error)
	// Save overwrites the stored snapshot with the given one.
	Save(ctx context.Context, snapshot []byte) error
}

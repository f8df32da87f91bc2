// Package kv provides durable string-keyed blob storage with get, set and
// remove, the persistence primitive every collection is stored through.
//
// Adapters make no atomicity promise across keys, and none across a
// read-modify-write cycle on one key: the stores built on top serialize
// their own cycles with a per-collection mutex. True multi-writer access
// would need a version stamp with compare-and-swap at this layer.
package kv

import "context"

// Store is durable string-keyed storage. Get reports ok=false when the key
// is absent.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

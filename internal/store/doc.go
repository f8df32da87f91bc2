// Package store provides the typed entity stores of the local data layer.
//
// Each collection (users, messages, notifications), the per-blocker
// blocklist relation, and the current session is persisted as a single
// encrypted blob under a fixed key in a kv.Store. Every mutation is a
// read-modify-write of the whole collection, serialized by a per-store
// mutex; cross-collection operations are composed by the service layer and
// are not atomic.
//
// A blob that is absent or fails to decode yields the empty collection —
// decode failures are logged and otherwise indistinguishable from missing
// data.
package store

// Package domain defines the entities and interfaces of the local data
// layer: users, messages, notifications, the blocking relation, the
// session, and the contracts their stores and services satisfy.
//
// Concrete types live in domain/types and the interface definitions in
// domain/interfaces; this package re-exports both so callers need a single
// import.
package domain

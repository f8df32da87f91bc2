// Package session tracks the authenticated identity: login, logout and
// registration through the remote boundary, durable persistence of the
// current user, and observer notification on every transition.
package session

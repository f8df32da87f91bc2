// Package messaging implements direct-message and notification operations,
// the host broadcast, and the financial fan-out that writes a notification
// and a message per target.
package messaging

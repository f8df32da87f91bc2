package types

// ID identifies an entity within one collection. IDs are positive and
// assigned per collection as max(existing)+1, starting at 1.
type ID int

// Role classifies a user account.
type Role string

// RoleHost marks accounts that receive broadcasts and host-wide fan-outs.
const RoleHost Role = "host"

// Content types carried on messages.
const (
	ContentTypeText      = "text"
	ContentTypeFinancial = "financial"
)

// NotificationFinancial is the notification type produced by financial
// fan-outs.
const NotificationFinancial = "financial"

// Metadata is the open key/value bag attached to messages and notifications.
type Metadata map[string]any

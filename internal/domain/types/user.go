package types

import "time"

// User is an account persisted in the local user collection.
//
// IsBlocked and BlockedBy are the global block markers stamped by the
// blocking flow; their zero values (omitted in JSON) mean "not blocked".
// Note the asymmetry with the per-blocker blocklist relation: the relation
// is scoped to one blocker, these fields are not.
type User struct {
	ID        ID        `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password,omitempty"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	LastSeen  time.Time `json:"lastSeen"`
	IsBlocked bool      `json:"isBlocked,omitempty"`
	BlockedBy ID        `json:"blockedBy,omitempty"`
}

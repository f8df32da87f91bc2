package types

import "time"

// Notification is addressed to a single recipient user.
type Notification struct {
	ID        ID        `json:"id"`
	UserID    ID        `json:"userId"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"isRead"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  Metadata  `json:"metadata,omitempty"`
}

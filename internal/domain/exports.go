package domain

import (
	interfaces "github.com/algharieb/ghareeb-app/internal/domain/interfaces"
	types "github.com/algharieb/ghareeb-app/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	ID           = types.ID
	Role         = types.Role
	Metadata     = types.Metadata
	User         = types.User
	Message      = types.Message
	Notification = types.Notification
)

// Constant re-exports.
const (
	RoleHost              = types.RoleHost
	ContentTypeText       = types.ContentTypeText
	ContentTypeFinancial  = types.ContentTypeFinancial
	NotificationFinancial = types.NotificationFinancial
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	UserStore         = interfaces.UserStore
	MessageStore      = interfaces.MessageStore
	NotificationStore = interfaces.NotificationStore
	BlocklistStore    = interfaces.BlocklistStore
	SessionStore      = interfaces.SessionStore
	DirectoryService  = interfaces.DirectoryService
	MessagingService  = interfaces.MessagingService
	SessionManager    = interfaces.SessionManager
	AuthClient        = interfaces.AuthClient
)

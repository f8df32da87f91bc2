// Package commands defines the ghareeb CLI: session commands (login,
// logout, register, whoami) and the entity operations (users, msg, notify,
// broadcast) exercising the local data layer.
package commands

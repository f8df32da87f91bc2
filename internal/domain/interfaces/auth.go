package interfaces

import (
	"context"

	domaintypes "github.com/algharieb/ghareeb-app/internal/domain/types"
)

// AuthClient is the remote authentication boundary. It is consumed, not
// implemented, by the data layer: a server (or stub in tests) answers
// login, logout and register over a credentialed connection.
type AuthClient interface {
	Login(ctx context.Context, username, password string) (domaintypes.User, error)
	Logout(ctx context.Context, userID domaintypes.ID) error
	Register(ctx context.Context, user domaintypes.User) (domaintypes.User, error)
}

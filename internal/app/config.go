package app

import (
	"net/http"

	"go.uber.org/zap"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home          string       // blob directory, e.g. $HOME/.ghareeb
	AuthURL       string       // auth boundary base URL, e.g. http://127.0.0.1:8080/api
	RedisAddr     string       // when set, blobs live in Redis instead of files
	RedisPassword string       //
	HTTP          *http.Client // optional; defaults to http.DefaultClient
	Logger        *zap.Logger  // optional; defaults to a no-op logger
}

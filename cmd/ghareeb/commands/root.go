package commands

import (
	"github.com/spf13/cobra"

	"github.com/algharieb/ghareeb-app/internal/app"
	"github.com/algharieb/ghareeb-app/internal/config"
	"github.com/algharieb/ghareeb-app/internal/observ"
)

var (
	home      string
	authURL   string
	redisAddr string

	appCtx *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:   "ghareeb",
		Short: "Encrypted local data store for the Ghareeb messaging client",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if home != "" {
				cfg.Home = home
			}
			if authURL != "" {
				cfg.AuthURL = authURL
			}
			if redisAddr != "" {
				cfg.RedisAddr = redisAddr
			}

			logger, err := observ.NewLogger(cfg.Env, cfg.LogLevel)
			if err != nil {
				return err
			}

			wire, err := app.NewWire(app.Config{
				Home:          cfg.Home,
				AuthURL:       cfg.AuthURL,
				RedisAddr:     cfg.RedisAddr,
				RedisPassword: cfg.RedisPassword,
				Logger:        logger,
			})
			if err != nil {
				return err
			}
			appCtx = wire.App
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "blob dir (default ~/.ghareeb)")
	root.PersistentFlags().StringVar(&authURL, "auth", "", "auth boundary base URL")
	root.PersistentFlags().StringVar(&redisAddr, "redis", "", "redis address (blobs in redis instead of files)")

	root.AddCommand(
		loginCmd(), logoutCmd(), registerCmd(), whoamiCmd(),
		usersCmd(), msgCmd(), notifyCmd(), broadcastCmd(),
	)
	return root.Execute()
}

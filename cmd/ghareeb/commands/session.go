package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/algharieb/ghareeb-app/internal/domain"
)

// login <username> <password>: authenticate and persist the session.
func loginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login <username> <password>",
		Short: "Authenticate and persist the session",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, ok := appCtx.Session.Login(cmd.Context(), args[0], args[1])
			if !ok {
				return fmt.Errorf("login failed")
			}
			fmt.Printf("logged in as %s (id %d)\n", user.Username, user.ID)
			return nil
		},
	}
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			appCtx.Session.Logout(cmd.Context())
			fmt.Println("logged out")
			return nil
		},
	}
}

func registerCmd() *cobra.Command {
	var role string
	cmd := &cobra.Command{
		Use:   "register <username> <password>",
		Short: "Create an account and log in",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, ok := appCtx.Session.Register(cmd.Context(), domain.User{
				Username: args[0],
				Password: args[1],
				Role:     domain.Role(role),
			})
			if !ok {
				return fmt.Errorf("registration failed")
			}
			fmt.Printf("registered as %s (id %d)\n", user.Username, user.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&role, "role", "user", "account role")
	return cmd
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, ok := appCtx.Session.Current()
			if !ok {
				fmt.Println("not logged in")
				return nil
			}
			fmt.Printf("%s (id %d, role %s)\n", user.Username, user.ID, user.Role)
			return nil
		},
	}
}

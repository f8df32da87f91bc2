package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/algharieb/ghareeb-app/internal/domain"
)

func usersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage the local user directory",
	}
	cmd.AddCommand(
		usersListCmd(), usersAddCmd(), usersRmCmd(),
		usersBlockCmd(), usersUnblockCmd(), usersBlockedCmd(),
	)
	return cmd
}

func usersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := appCtx.Directory.Users(cmd.Context())
			if err != nil {
				return err
			}
			for _, u := range users {
				blocked := ""
				if u.IsBlocked {
					blocked = fmt.Sprintf("  [blocked by %d]", u.BlockedBy)
				}
				fmt.Printf("%d\t%s\t%s%s\n", u.ID, u.Username, u.Role, blocked)
			}
			return nil
		},
	}
}

func usersAddCmd() *cobra.Command {
	var role string
	cmd := &cobra.Command{
		Use:   "add <username>",
		Short: "Add a user record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Username uniqueness is on us, not the store.
			if _, exists, err := appCtx.Directory.UserByUsername(cmd.Context(), args[0]); err != nil {
				return err
			} else if exists {
				return fmt.Errorf("username %q already exists", args[0])
			}
			user, err := appCtx.Directory.AddUser(cmd.Context(), domain.User{
				Username: args[0],
				Role:     domain.Role(role),
			})
			if err != nil {
				return err
			}
			fmt.Printf("added %s (id %d)\n", user.Username, user.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&role, "role", "user", "account role")
	return cmd
}

func usersRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a user and their messages and notifications",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			found, err := appCtx.Directory.DeleteUser(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !found {
				fmt.Println("no such user")
				return nil
			}
			fmt.Println("deleted")
			return nil
		},
	}
}

func usersBlockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "block <blockerId> <blockedId>",
		Short: "Block a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			blocker, blocked, err := parseIDPair(args[0], args[1])
			if err != nil {
				return err
			}
			if err := appCtx.Directory.Block(cmd.Context(), blocker, blocked); err != nil {
				return err
			}
			fmt.Println("blocked")
			return nil
		},
	}
}

func usersUnblockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unblock <blockerId> <blockedId>",
		Short: "Unblock a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			blocker, blocked, err := parseIDPair(args[0], args[1])
			if err != nil {
				return err
			}
			if err := appCtx.Directory.Unblock(cmd.Context(), blocker, blocked); err != nil {
				return err
			}
			fmt.Println("unblocked")
			return nil
		},
	}
}

func usersBlockedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "blocked <blockerId>",
		Short: "List the ids a user has blocked",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blocker, err := parseID(args[0])
			if err != nil {
				return err
			}
			ids, err := appCtx.Directory.Blocked(cmd.Context(), blocker)
			if err != nil {
				return err
			}
			for _, id := range ids {
				fmt.Println(id)
			}
			return nil
		},
	}
}

func parseID(s string) (domain.ID, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return domain.ID(n), nil
}

func parseIDPair(a, b string) (domain.ID, domain.ID, error) {
	first, err := parseID(a)
	if err != nil {
		return 0, 0, err
	}
	second, err := parseID(b)
	if err != nil {
		return 0, 0, err
	}
	return first, second, nil
}

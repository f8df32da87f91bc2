package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/algharieb/ghareeb-app/internal/domain"
)

func notifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Inspect and send notifications",
	}
	cmd.AddCommand(notifyListCmd(), notifyReadCmd(), notifyFinancialCmd())
	return cmd
}

func notifyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <userId>",
		Short: "Print a user's notification feed, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID(args[0])
			if err != nil {
				return err
			}
			notifications, err := appCtx.Messaging.NotificationsFor(cmd.Context(), userID)
			if err != nil {
				return err
			}
			for _, n := range notifications {
				read := " "
				if n.IsRead {
					read = "R"
				}
				fmt.Printf("%d\t%s\t[%s]\t%s: %s\t%s\n",
					n.ID, n.Timestamp.Format("2006-01-02 15:04:05"),
					n.Type, n.Title, n.Content, read)
			}
			return nil
		},
	}
}

func notifyReadCmd() *cobra.Command {
	var unread bool
	cmd := &cobra.Command{
		Use:   "read <notificationId>",
		Short: "Set a notification's read flag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return appCtx.Messaging.SetNotificationRead(cmd.Context(), id, !unread)
		},
	}
	cmd.Flags().BoolVar(&unread, "unread", false, "mark unread instead")
	return cmd
}

func notifyFinancialCmd() *cobra.Command {
	var (
		targetUser int
		mediaURL   string
	)
	cmd := &cobra.Command{
		Use:   "financial <senderId> <title> <content> <amount>",
		Short: "Send a financial notification to one user or all hosts",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			senderID, err := parseID(args[0])
			if err != nil {
				return err
			}
			amount, err := strconv.ParseFloat(args[3], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q", args[3])
			}
			var userID *domain.ID
			if targetUser > 0 {
				id := domain.ID(targetUser)
				userID = &id
			}
			notifications, messages, err := appCtx.Messaging.SendFinancialNotification(
				cmd.Context(), senderID, userID, args[1], args[2], amount, mediaURL)
			if err != nil {
				return err
			}
			fmt.Printf("created %d notifications, %d messages\n", len(notifications), len(messages))
			return nil
		},
	}
	cmd.Flags().IntVar(&targetUser, "user", 0, "target user id (default: all hosts)")
	cmd.Flags().StringVar(&mediaURL, "media", "", "attached media URL")
	return cmd
}

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/algharieb/ghareeb-app/internal/domain"
)

func msgCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "msg",
		Short: "Send and inspect direct messages",
	}
	cmd.AddCommand(msgSendCmd(), msgListCmd(), msgReadCmd(), msgDeliveredCmd(), msgRmCmd())
	return cmd
}

func msgSendCmd() *cobra.Command {
	var mediaURL string
	cmd := &cobra.Command{
		Use:   "send <fromId> <toId> <content>",
		Short: "Send a text message",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parseIDPair(args[0], args[1])
			if err != nil {
				return err
			}
			m, err := appCtx.Messaging.Send(cmd.Context(), domain.Message{
				SenderID:    from,
				ReceiverID:  to,
				Content:     args[2],
				ContentType: domain.ContentTypeText,
				MediaURL:    mediaURL,
			})
			if err != nil {
				return err
			}
			fmt.Printf("sent (id %d)\n", m.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&mediaURL, "media", "", "attached media URL")
	return cmd
}

func msgListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <userId> <peerId>",
		Short: "Print a conversation in chat order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseIDPair(args[0], args[1])
			if err != nil {
				return err
			}
			messages, err := appCtx.Messaging.Conversation(cmd.Context(), a, b)
			if err != nil {
				return err
			}
			for _, m := range messages {
				flags := ""
				if m.IsDelivered {
					flags += "D"
				}
				if m.IsRead {
					flags += "R"
				}
				fmt.Printf("%d\t%s\t%d->%d\t%s\t%s\n",
					m.ID, m.Timestamp.Format("2006-01-02 15:04:05"),
					m.SenderID, m.ReceiverID, m.Content, flags)
			}
			return nil
		},
	}
}

func msgReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <senderId> <receiverId>",
		Short: "Mark a conversation direction as read",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sender, receiver, err := parseIDPair(args[0], args[1])
			if err != nil {
				return err
			}
			return appCtx.Messaging.MarkConversationRead(cmd.Context(), sender, receiver)
		},
	}
}

func msgDeliveredCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delivered <messageId>",
		Short: "Mark a message as delivered",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return appCtx.Messaging.MarkDelivered(cmd.Context(), id)
		},
	}
}

func msgRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <userId> <peerId>",
		Short: "Delete a whole conversation",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseIDPair(args[0], args[1])
			if err != nil {
				return err
			}
			return appCtx.Messaging.DeleteConversation(cmd.Context(), a, b)
		},
	}
}

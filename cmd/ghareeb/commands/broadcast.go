package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/algharieb/ghareeb-app/internal/domain"
)

// broadcast <senderId> <content>: one message per host-role user.
func broadcastCmd() *cobra.Command {
	var (
		contentType string
		mediaURL    string
	)
	cmd := &cobra.Command{
		Use:   "broadcast <senderId> <content>",
		Short: "Send a message to every host",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			senderID, err := parseID(args[0])
			if err != nil {
				return err
			}
			created, err := appCtx.Messaging.Broadcast(cmd.Context(), senderID, args[1], contentType, mediaURL)
			if err != nil {
				return err
			}
			fmt.Printf("sent to %d hosts\n", len(created))
			return nil
		},
	}
	cmd.Flags().StringVar(&contentType, "type", domain.ContentTypeText, "content type")
	cmd.Flags().StringVar(&mediaURL, "media", "", "attached media URL")
	return cmd
}

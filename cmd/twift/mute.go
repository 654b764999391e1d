package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

var muteListFlags listFlags

var muteCmd = &cobra.Command{
	Use:   "mute <source_user_id> <target_user_id>",
	Short: "Mute a user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		resp, err := mustClient().MuteUser(ctx, args[0], args[1])
		if err != nil {
			fatal(err)
		}
		printJSON(resp)
		return nil
	},
}

var muteListCmd = &cobra.Command{
	Use:   "list <user_id>",
	Short: "List muted users",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		resp, err := mustClient().GetMutedUsers(ctx, args[0], muteListFlags.opts())
		if err != nil {
			fatal(err)
		}
		printJSON(resp)
		return nil
	},
}

var unmuteCmd = &cobra.Command{
	Use:   "unmute <source_user_id> <target_user_id>",
	Short: "Unmute a user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		resp, err := mustClient().UnmuteUser(ctx, args[0], args[1])
		if err != nil {
			fatal(err)
		}
		printJSON(resp)
		return nil
	},
}

func init() {
	muteListFlags.register(muteListCmd)
	muteCmd.AddCommand(muteListCmd)
	rootCmd.AddCommand(muteCmd)
	rootCmd.AddCommand(unmuteCmd)
}

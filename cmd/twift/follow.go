package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

var followersFlags listFlags
var followingFlags listFlags

var followCmd = &cobra.Command{
	Use:   "follow <source_user_id> <target_user_id>",
	Short: "Follow a user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		resp, err := mustClient().FollowUser(ctx, args[0], args[1])
		if err != nil {
			fatal(err)
		}
		printJSON(resp)
		return nil
	},
}

var unfollowCmd = &cobra.Command{
	Use:   "unfollow <source_user_id> <target_user_id>",
	Short: "Unfollow a user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		resp, err := mustClient().UnfollowUser(ctx, args[0], args[1])
		if err != nil {
			fatal(err)
		}
		printJSON(resp)
		return nil
	},
}

var followersCmd = &cobra.Command{
	Use:   "followers <user_id>",
	Short: "List a user's followers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		resp, err := mustClient().GetFollowers(ctx, args[0], followersFlags.opts())
		if err != nil {
			fatal(err)
		}
		printJSON(resp)
		return nil
	},
}

var followingCmd = &cobra.Command{
	Use:   "following <user_id>",
	Short: "List the users a user follows",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		resp, err := mustClient().GetFollowing(ctx, args[0], followingFlags.opts())
		if err != nil {
			fatal(err)
		}
		printJSON(resp)
		return nil
	},
}

func init() {
	followersFlags.register(followersCmd)
	followingFlags.register(followingCmd)
	rootCmd.AddCommand(followCmd)
	rootCmd.AddCommand(unfollowCmd)
	rootCmd.AddCommand(followersCmd)
	rootCmd.AddCommand(followingCmd)
}

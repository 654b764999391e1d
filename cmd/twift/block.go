package main

import (
	"context"
	"time"

	twift "github.com/roblack/twift-go"
	"github.com/spf13/cobra"
)

type listFlags struct {
	maxResults int
	pageToken  string
	userFields []string
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.maxResults, "max-results", 0, "Page size (1-1000, 0 = server default)")
	cmd.Flags().StringVar(&f.pageToken, "page-token", "", "Pagination token from a previous page")
	cmd.Flags().StringSliceVar(&f.userFields, "user-fields", nil, "Optional user.fields to request")
}

func (f *listFlags) opts() *twift.ListOpts {
	o := &twift.ListOpts{
		MaxResults:      f.maxResults,
		PaginationToken: f.pageToken,
	}
	for _, s := range f.userFields {
		o.UserFields = append(o.UserFields, twift.UserField(s))
	}
	return o
}

var blockListFlags listFlags

var blockCmd = &cobra.Command{
	Use:   "block <source_user_id> <target_user_id>",
	Short: "Block a user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		resp, err := mustClient().BlockUser(ctx, args[0], args[1])
		if err != nil {
			fatal(err)
		}
		printJSON(resp)
		return nil
	},
}

var blockListCmd = &cobra.Command{
	Use:   "list <user_id>",
	Short: "List blocked users",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		resp, err := mustClient().GetBlockedUsers(ctx, args[0], blockListFlags.opts())
		if err != nil {
			fatal(err)
		}
		printJSON(resp)
		return nil
	},
}

var unblockCmd = &cobra.Command{
	Use:   "unblock <source_user_id> <target_user_id>",
	Short: "Unblock a user",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		resp, err := mustClient().UnblockUser(ctx, args[0], args[1])
		if err != nil {
			fatal(err)
		}
		printJSON(resp)
		return nil
	},
}

func init() {
	blockListFlags.register(blockListCmd)
	blockCmd.AddCommand(blockListCmd)
	rootCmd.AddCommand(blockCmd)
	rootCmd.AddCommand(unblockCmd)
}

package main

import (
	"context"
	"time"

	twift "github.com/roblack/twift-go"
	"github.com/spf13/cobra"
)

var userFieldsFlag []string
var userExpansionsFlag []string

func userOpts() *twift.UserOpts {
	o := &twift.UserOpts{}
	for _, s := range userFieldsFlag {
		o.UserFields = append(o.UserFields, twift.UserField(s))
	}
	for _, s := range userExpansionsFlag {
		o.Expansions = append(o.Expansions, twift.Expansion(s))
	}
	return o
}

var userCmd = &cobra.Command{
	Use:   "user <user_id>",
	Short: "Look up a user by ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		resp, err := mustClient().GetUser(ctx, args[0], userOpts())
		if err != nil {
			fatal(err)
		}
		printJSON(resp)
		return nil
	},
}

var userByCmd = &cobra.Command{
	Use:   "by <username>",
	Short: "Look up a user by handle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		resp, err := mustClient().GetUserByUsername(ctx, args[0], userOpts())
		if err != nil {
			fatal(err)
		}
		printJSON(resp)
		return nil
	},
}

var userLookupCmd = &cobra.Command{
	Use:   "lookup <user_id>...",
	Short: "Look up up to 100 users by ID",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		resp, err := mustClient().GetUsers(ctx, args, userOpts())
		if err != nil {
			fatal(err)
		}
		printJSON(resp)
		return nil
	},
}

func init() {
	userCmd.PersistentFlags().StringSliceVar(&userFieldsFlag, "user-fields", nil, "Optional user.fields to request")
	userCmd.PersistentFlags().StringSliceVar(&userExpansionsFlag, "expansions", nil, "Relations to expand into includes")
	userCmd.AddCommand(userByCmd)
	userCmd.AddCommand(userLookupCmd)
	rootCmd.AddCommand(userCmd)
}

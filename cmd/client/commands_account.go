package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-reader-sync/internal/client"
	"github.com/spf13/cobra"
)

func newLoginCmd(opts *rootOptions) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login <username>",
		Short: "Log in as username, creating the profile on first use",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *client.App) error {
				user, err := app.Services().Session.Login(ctx, args[0], email)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s (%s)\n", user.Username, user.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email of the profile")
	return cmd
}

func newLogoutCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out, keeping the account in the saved list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *client.App) error {
				return app.Services().Session.Logout(ctx)
			})
		},
	}
}

func newAccountsCmd(opts *rootOptions) *cobra.Command {
	accounts := &cobra.Command{
		Use:   "accounts",
		Short: "List saved accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd, func(_ context.Context, app *client.App) error {
				auth := app.Services().Session.Current()
				current := app.Services().Session.UserID()
				for _, acc := range auth.State.SavedAccounts {
					marker := " "
					if acc.User.ID == current {
						marker = "*"
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%s\t%s\n", marker, acc.User.ID, acc.User.Username, acc.LastActive)
				}
				return nil
			})
		},
	}

	accounts.AddCommand(
		&cobra.Command{
			Use:   "switch <user-id>",
			Short: "Switch to a saved account",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return opts.withApp(cmd, func(ctx context.Context, app *client.App) error {
					user, err := app.Services().Session.SwitchAccount(ctx, args[0])
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "switched to %s\n", user.Username)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "remove <user-id>",
			Short: "Remove a saved account",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return opts.withApp(cmd, func(ctx context.Context, app *client.App) error {
					return app.Services().Session.RemoveAccount(ctx, args[0])
				})
			},
		},
	)
	return accounts
}

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-reader-sync/internal/adapter"
	"github.com/MKhiriev/go-reader-sync/internal/client"
	"github.com/spf13/cobra"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the sync session of the logged-in user until interrupted",
		Long: `Run starts syncing the logged-in user and keeps the session alive.

SIGINT and SIGTERM push unsent changes and exit. On unix SIGUSR1 is treated
as the window being hidden and pushes right away.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *client.App) error {
				return app.Run(ctx)
			})
		},
	}
}

func newPushCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "push",
		Short: "Push local state to the active backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withSession(cmd, func(ctx context.Context, app *client.App) error {
				sync := app.Services().SyncService
				if err := sync.PushNow(ctx); err != nil {
					return err
				}
				// local-only sessions refresh the local backup instead
				if backend := sync.ActiveBackend(); backend != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "pushed to %s\n", backend)
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "no remote backend, local backup updated")
				}
				return nil
			})
		},
	}
}

func newPullCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pull",
		Short: "Pull remote state from the active backend and apply it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withSession(cmd, func(ctx context.Context, app *client.App) error {
				outcome, err := app.Services().SyncService.PullNow(ctx)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				switch {
				case !outcome.Found:
					fmt.Fprintf(out, "%s holds no data\n", outcome.Backend)
				case outcome.Applied:
					fmt.Fprintf(out, "applied remote data from %s\n", outcome.Backend)
				default:
					fmt.Fprintf(out, "local state already matches %s\n", outcome.Backend)
				}
				return nil
			})
		},
	}
}

func newOnlineCmd(opts *rootOptions) *cobra.Command {
	var countOnly bool

	cmd := &cobra.Command{
		Use:   "online",
		Short: "List the users currently online",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withSession(cmd, func(ctx context.Context, app *client.App) error {
				presence := app.Services().Presence
				out := cmd.OutOrStdout()

				if countOnly {
					n, err := presence.OnlineCount(ctx)
					if err != nil {
						return err
					}
					fmt.Fprintln(out, n)
					return nil
				}

				users, err := presence.OnlineUsers(ctx)
				if err != nil {
					return err
				}
				for _, u := range users {
					fmt.Fprintf(out, "%s\t%s\t%s\n", u.UserID, u.Username, u.LastSeen)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&countOnly, "count", false, "print only the number of online users")
	return cmd
}

func newRemoteCmd(opts *rootOptions) *cobra.Command {
	remote := &cobra.Command{
		Use:   "remote",
		Short: "Manage data stored on a remote backend",
	}

	var backend string
	deleteCmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete the remote copy of the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *client.App) error {
				userID, err := currentUser(app)
				if err != nil {
					return err
				}
				b, ok := app.Registry().Get(backend)
				if !ok {
					return fmt.Errorf("%w: %s", adapter.ErrNotConfigured, backend)
				}
				if err = b.Delete(ctx, userID); err != nil && !errors.Is(err, adapter.ErrNotFound) {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted remote data of %s from %s\n", userID, backend)
				return nil
			})
		},
	}
	deleteCmd.Flags().StringVar(&backend, "backend", adapter.NameProxy, "backend to delete from")

	remote.AddCommand(deleteCmd)
	return remote
}

package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-reader-sync/internal/client"
	"github.com/MKhiriev/go-reader-sync/models"
	"github.com/spf13/cobra"
)

// libraryAction is a library subcommand body run for the logged-in user.
type libraryAction func(ctx context.Context, app *client.App, userID string, args []string) error

func newLibraryCmd(opts *rootOptions) *cobra.Command {
	library := &cobra.Command{
		Use:     "library",
		Aliases: []string{"lib"},
		Short:   "Manage the library of the logged-in user",
	}

	run := func(action libraryAction) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *client.App) error {
				userID, err := currentUser(app)
				if err != nil {
					return err
				}
				return action(ctx, app, userID, args)
			})
		}
	}

	var status string
	add := &cobra.Command{
		Use:   "add <novel-id>",
		Short: "Add a novel to the library",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(ctx context.Context, app *client.App, userID string, args []string) error {
			_, err := app.Services().LibraryService.AddToLibrary(ctx, userID, args[0], models.LibraryStatus(status))
			return err
		}),
	}
	add.Flags().StringVar(&status, "status", string(models.LibraryStatusPlanToRead), "reading, completed, plan-to-read or dropped")

	list := &cobra.Command{
		Use:   "list",
		Short: "List the library",
		Args:  cobra.NoArgs,
	}
	list.RunE = run(func(ctx context.Context, app *client.App, userID string, _ []string) error {
		items, err := app.Services().LibraryService.Library(ctx, userID)
		if err != nil {
			return err
		}
		for _, item := range items {
			favorite := ""
			if item.IsFavorite {
				favorite = "\tfavorite"
			}
			fmt.Fprintf(list.OutOrStdout(), "%s\t%s\t%s%s\n", item.NovelID, item.Status, item.AddedDate, favorite)
		}
		return nil
	})

	library.AddCommand(
		add,
		list,
		&cobra.Command{
			Use:   "remove <novel-id>",
			Short: "Remove a novel from the library",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(ctx context.Context, app *client.App, userID string, args []string) error {
				return app.Services().LibraryService.RemoveFromLibrary(ctx, userID, args[0])
			}),
		},
		&cobra.Command{
			Use:   "status <novel-id> <status>",
			Short: "Change the reading status of a novel",
			Args:  cobra.ExactArgs(2),
			RunE: run(func(ctx context.Context, app *client.App, userID string, args []string) error {
				return app.Services().LibraryService.SetStatus(ctx, userID, args[0], models.LibraryStatus(args[1]))
			}),
		},
		&cobra.Command{
			Use:   "favorite <novel-id>",
			Short: "Toggle the favorite flag of a novel",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(ctx context.Context, app *client.App, userID string, args []string) error {
				_, err := app.Services().LibraryService.ToggleFavorite(ctx, userID, args[0])
				return err
			}),
		},
		&cobra.Command{
			Use:   "progress <novel-id> <chapter-id> <percent>",
			Short: "Record the reading position in a novel",
			Args:  cobra.ExactArgs(3),
			RunE: run(func(ctx context.Context, app *client.App, userID string, args []string) error {
				percent, err := strconv.ParseFloat(args[2], 64)
				if err != nil {
					return fmt.Errorf("invalid percent %q: %w", args[2], err)
				}
				return app.Services().LibraryService.UpdateProgress(ctx, models.ReadingProgress{
					UserID:    userID,
					NovelID:   args[0],
					ChapterID: args[1],
					Progress:  percent,
				})
			}),
		},
	)
	return library
}

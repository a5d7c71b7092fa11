package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-reader-sync/internal/client"
	"github.com/MKhiriev/go-reader-sync/internal/service"
	"github.com/spf13/cobra"
)

func newBackupCmd(opts *rootOptions) *cobra.Command {
	backup := &cobra.Command{
		Use:   "backup",
		Short: "Export, import and restore backups",
	}

	var (
		exportDir  string
		exportFull bool
	)
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write a settings backup, or a full database backup with --full",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *client.App) error {
				backups := app.Services().BackupService
				if exportFull {
					path, err := backups.ExportDatabaseFile(ctx, exportDir)
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), path)
					return nil
				}

				path := filepath.Join(exportDir, service.SettingsBackupFileName(time.Now()))
				if err := writeFile(path, func(f *os.File) error { return backups.ExportSettings(ctx, f) }); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			})
		},
	}
	exportCmd.Flags().StringVar(&exportDir, "dir", ".", "directory the backup file is written to")
	exportCmd.Flags().BoolVar(&exportFull, "full", false, "export every table of the local database")

	var importFull bool
	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a settings backup, or a full database backup with --full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withApp(cmd, func(ctx context.Context, app *client.App) error {
				backups := app.Services().BackupService
				if importFull {
					return backups.ImportDatabaseFile(ctx, args[0])
				}

				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				return backups.ImportSettings(ctx, f)
			})
		},
	}
	importCmd.Flags().BoolVar(&importFull, "full", false, "the file is a full database backup")

	backup.AddCommand(
		exportCmd,
		importCmd,
		&cobra.Command{
			Use:   "restore",
			Short: "Restore the database from the local backup copy",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return opts.withApp(cmd, func(ctx context.Context, app *client.App) error {
					return app.Services().BackupService.RestoreFromLocal(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "info",
			Short: "Describe the local backup copy",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return opts.withApp(cmd, func(_ context.Context, app *client.App) error {
					info, err := app.Services().BackupService.Info()
					if err != nil {
						return err
					}
					if !info.HasBackup {
						fmt.Fprintln(cmd.OutOrStdout(), "no local backup")
						return nil
					}
					fmt.Fprintf(cmd.OutOrStdout(), "last backup: %s\n", info.LastBackupDate)
					return nil
				})
			},
		},
	)
	return backup
}

func writeFile(path string, write func(f *os.File) error) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	if err = write(f); err != nil {
		return errors.Join(err, f.Close(), os.Remove(path))
	}
	return f.Close()
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-reader-sync/internal/client"
	"github.com/MKhiriev/go-reader-sync/internal/config"
	"github.com/MKhiriev/go-reader-sync/internal/logger"
	"github.com/MKhiriev/go-reader-sync/internal/service"
	"github.com/MKhiriev/go-reader-sync/models"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	policy     string
	info       models.AppBuildInfo
}

func newRootCmd(info models.AppBuildInfo) *cobra.Command {
	opts := &rootOptions{info: info}

	root := &cobra.Command{
		Use:          "reader-sync",
		Short:        "Keep a reader's library and settings in sync across devices",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a JSON config file")
	root.PersistentFlags().StringVar(&opts.policy, "conflict-policy", "", "how remote data found at startup is handled: confirm or auto")

	root.AddCommand(
		newRunCmd(opts),
		newLoginCmd(opts),
		newLogoutCmd(opts),
		newAccountsCmd(opts),
		newPushCmd(opts),
		newPullCmd(opts),
		newOnlineCmd(opts),
		newRemoteCmd(opts),
		newBackupCmd(opts),
		newLibraryCmd(opts),
		newVersionCmd(opts),
	)
	return root
}

// loadConfig reads the client config and applies command-line overrides.
func (o *rootOptions) loadConfig() (*config.ClientConfig, error) {
	cfg, err := config.GetClientConfig(o.configPath)
	if err != nil {
		return nil, err
	}

	switch o.policy {
	case "":
	case config.ConflictPolicyConfirm, config.ConflictPolicyAuto:
		cfg.Sync.ConflictPolicy = o.policy
	default:
		return nil, fmt.Errorf("%w: conflict policy %q", config.ErrInvalidSyncConfigs, o.policy)
	}

	if cfg.App.Version == "" {
		cfg.App.Version = o.info.BuildVersion()
	}
	return cfg, nil
}

// withApp opens the client, runs fn and closes the client again.
func (o *rootOptions) withApp(cmd *cobra.Command, fn func(ctx context.Context, app *client.App) error) error {
	cfg, err := o.loadConfig()
	if err != nil {
		return err
	}
	log := logger.NewClientLogger("reader-sync", cfg.App.LogFile)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	app, err := client.NewApp(ctx, cfg, client.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()), cmd.OutOrStdout(), log)
	if err != nil {
		log.Err(err).Str("func", "rootOptions.withApp").Msg("init client app error")
		return err
	}
	defer func() {
		if closeErr := app.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Str("func", "rootOptions.withApp").Msg("client close error")
		}
	}()

	if err = fn(ctx, app); err != nil {
		log.Err(err).Str("func", "rootOptions.withApp").Str("command", cmd.CommandPath()).Msg("command failed")
		return err
	}
	return nil
}

// withSession is withApp for one-shot commands that need a started sync
// session. The session is stopped before the client closes.
func (o *rootOptions) withSession(cmd *cobra.Command, fn func(ctx context.Context, app *client.App) error) error {
	return o.withApp(cmd, func(ctx context.Context, app *client.App) error {
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := app.StartSync(ctx); err != nil {
			return err
		}
		err := fn(ctx, app)
		if stopErr := app.Services().SyncService.Stop(); stopErr != nil && err == nil {
			err = stopErr
		}
		return err
	})
}

// currentUser returns the id of the logged-in user.
func currentUser(app *client.App) (string, error) {
	userID := app.Services().Session.UserID()
	if userID == "" {
		return "", service.ErrNotLoggedIn
	}
	return userID, nil
}

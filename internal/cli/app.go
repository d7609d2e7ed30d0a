// Package cli is the interactive console front end: a REPL over the local
// store and the sync orchestrator, standing in for the mobile UI.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/config"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/filex"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/logging"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/netx"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/remote"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/remote/gdrive"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/remote/s3store"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/storage"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/syncer"
)

type App struct {
	config   *config.Config
	store    *storage.Store
	settings *syncer.SettingsStore
	provider remote.Provider
	syncer   *syncer.Syncer
	checker  *netx.Checker
	reader   *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	logger := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	// file: DSNs carry query options the path helper would mangle
	if !strings.HasPrefix(c.DatabaseDSN, "file:") {
		if err := filex.EnsureParentDir(c.DatabaseDSN); err != nil {
			return nil, err
		}
	}

	store, err := storage.Open(ctx, c.DatabaseDSN, logger)
	if err != nil {
		return nil, err
	}

	settings := syncer.NewSettingsStore(store.Settings())
	provider, err := newProvider(ctx, c)
	if err != nil {
		store.Close()
		return nil, err
	}
	checker := netx.NewChecker(c.OnlineProbeURL)

	s := syncer.New(store, provider, settings, &consoleNotifier{},
		checker.Online, logger, c)

	return &App{
		config:   c,
		store:    store,
		settings: settings,
		provider: provider,
		syncer:   s,
		checker:  checker,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

// newProvider builds the cloud backend named by the config. Google Drive
// is the default; the S3 backend serves self-hosted object stores.
func newProvider(ctx context.Context, c *config.Config) (remote.Provider, error) {
	switch c.Provider {
	case "", config.ProviderGDrive:
		return gdrive.NewClient(c.BackupFileName), nil
	case config.ProviderS3:
		return s3store.NewClient(ctx, s3store.Options{
			Region:    c.S3Region,
			Endpoint:  c.S3Endpoint,
			AccessKey: c.S3AccessKey,
			SecretKey: c.S3SecretKey,
			Bucket:    c.S3Bucket,
		}, c.BackupFileName)
	default:
		return nil, fmt.Errorf("unknown cloud provider %q", c.Provider)
	}
}

func (a *App) Run(ctx context.Context) error {
	if err := a.syncer.Start(ctx); err != nil {
		return err
	}
	// LIFO: the syncer must drain its background passes before the
	// database they write to goes away
	defer a.store.Close()
	defer a.syncer.Stop()

	a.Root(ctx)
	return nil
}

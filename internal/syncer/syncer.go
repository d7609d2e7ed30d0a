// Package syncer orchestrates cloud backup synchronization: debounced
// uploads after local edits, a periodic real-time poll, app-resume and
// manual triggers, and the full download-merge-reupload pass.
//
// Trigger policy: automatic activity (debounce, poll, resume) requires
// the auto-sync master switch and a linked account, fails silently and
// logs. User-initiated operations bypass the master switch, surface
// errors through the Notifier and return them to the caller.
// Pull-to-refresh is the one user trigger that still honors the master
// switch.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/common"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/config"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/logging"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/remote"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/storage"
)

// errBusy marks an attempt skipped because another pass holds the sync
// slot. Never surfaced as a failure.
var errBusy = errors.New("sync already in progress")

// Syncer coordinates the local store and the remote backup provider.
type Syncer struct {
	store    *storage.Store
	provider remote.Provider
	settings *SettingsStore
	notifier Notifier
	online   func(context.Context) bool
	logger   logging.Logger

	pollInterval     time.Duration
	debounce         time.Duration
	debounceRealTime time.Duration

	// busy serializes sync passes and suppresses the change-feed events
	// a pass produces when it writes merged records
	busy atomic.Bool

	// lastAutoSync tracks the master switch so the settings subscription
	// only reacts to an off-to-on flip
	lastAutoSync atomic.Bool

	ctx           context.Context
	stopCh        chan struct{}
	wg            sync.WaitGroup
	unsubStore    func()
	unsubSettings func()

	mu            sync.Mutex
	debounceTimer *time.Timer
}

// New wires a Syncer. Call Start to activate the triggers; manual
// operations work without Start.
func New(store *storage.Store, provider remote.Provider, settings *SettingsStore,
	notifier Notifier, online func(context.Context) bool,
	logger logging.Logger, cfg *config.Config) *Syncer {
	return &Syncer{
		store:            store,
		provider:         provider,
		settings:         settings,
		notifier:         notifier,
		online:           online,
		logger:           logger,
		pollInterval:     cfg.PollInterval,
		debounce:         cfg.UploadDebounce,
		debounceRealTime: cfg.UploadDebounceRealTime,
		stopCh:           make(chan struct{}),
	}
}

// Start subscribes to the local change feed and the settings feed,
// launches the poll loop and kicks one silent full sync when auto-sync is
// already on, so a device picks up remote edits right after launch.
func (s *Syncer) Start(ctx context.Context) error {
	s.ctx = ctx

	st, err := s.settings.Load(ctx)
	if err != nil {
		return err
	}
	s.lastAutoSync.Store(st.AutoSyncEnabled)

	s.unsubStore = s.store.OnChange(s.onLocalChange)
	s.unsubSettings = s.settings.OnChange(s.onSettingsChange)

	s.wg.Add(1)
	go s.pollLoop(ctx)

	if st.AutoSyncEnabled && st.Credentials.Connected() {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.runBackground(ctx, "startup")
		}()
	}

	return nil
}

// Stop tears down the triggers and waits for in-flight background work.
func (s *Syncer) Stop() {
	close(s.stopCh)

	if s.unsubStore != nil {
		s.unsubStore()
	}
	if s.unsubSettings != nil {
		s.unsubSettings()
	}

	s.mu.Lock()
	if s.debounceTimer != nil {
		s.debounceTimer.Stop()
	}
	s.mu.Unlock()

	s.wg.Wait()
}

// Resume is the app-foreground trigger: one silent full sync when
// auto-sync is on.
func (s *Syncer) Resume() {
	st, err := s.settings.Load(s.ctx)
	if err != nil || !st.AutoSyncEnabled || !st.Credentials.Connected() {
		return
	}
	s.runBackground(s.ctx, "resume")
}

// SyncNow runs a full sync on the caller's behalf, ignoring the master
// switch. Errors are shown and returned.
func (s *Syncer) SyncNow(ctx context.Context) error {
	summary, reseeded, err := s.fullSync(ctx, true)
	if err != nil {
		return s.reportManual(err)
	}

	switch {
	case summary != nil:
		s.notifier.Notify(LevelSuccess, fmt.Sprintf("Sync complete: %d notes, %d tasks",
			summary.NotesTotal, summary.TodosTotal))
	case reseeded:
		s.notifier.Notify(LevelSuccess, "Cloud backup was empty, replaced with local data")
	default:
		s.notifier.Notify(LevelSuccess, "Backup created")
	}
	return nil
}

// ForceUpload pushes the local state to the cloud without merging first.
func (s *Syncer) ForceUpload(ctx context.Context) error {
	if err := s.uploadPass(ctx); err != nil {
		return s.reportManual(err)
	}
	s.notifier.Notify(LevelSuccess, "Backup uploaded")
	return nil
}

// ForceDownload pulls the cloud backup and merges it in, without the
// re-upload step.
func (s *Syncer) ForceDownload(ctx context.Context) error {
	summary, err := s.downloadPass(ctx)
	if err != nil {
		return s.reportManual(err)
	}
	s.notifier.Notify(LevelSuccess, fmt.Sprintf("Download complete: %d notes, %d tasks",
		summary.NotesTotal, summary.TodosTotal))
	return nil
}

// PullRefresh is the swipe-down trigger. Unlike the other manual
// operations it honors the master switch: with auto-sync off it does
// nothing.
func (s *Syncer) PullRefresh(ctx context.Context) error {
	st, err := s.settings.Load(ctx)
	if err != nil {
		return err
	}
	if !st.AutoSyncEnabled {
		s.logger.Debug(ctx, "pull refresh skipped, auto sync off")
		return nil
	}
	return s.SyncNow(ctx)
}

// reportManual translates an error for the user. errBusy is downgraded
// to an informational message.
func (s *Syncer) reportManual(err error) error {
	if errors.Is(err, errBusy) {
		s.notifier.Notify(LevelInfo, "Sync already in progress")
		return nil
	}
	s.notifier.Notify(LevelError, userMessage(err))
	return err
}

// runBackground executes a silent full sync: failures are logged, never
// surfaced.
func (s *Syncer) runBackground(ctx context.Context, trigger string) {
	if _, _, err := s.fullSync(ctx, false); err != nil && !errors.Is(err, errBusy) {
		s.logger.Warn(ctx, "background sync failed", "trigger", trigger, "error", err)
	}
}

// fullSync is the five-step pass: refresh tokens, locate the backup,
// download and merge it when present, then re-upload — always after a
// merge or on a user-initiated run, and also when no backup exists yet so
// the first sync seeds the cloud. The returned summary is nil when
// nothing was merged; reseeded reports that a backup existed but held no
// usable collections and was overwritten with the local state.
func (s *Syncer) fullSync(ctx context.Context, manual bool) (summary *storage.ImportSummary, reseeded bool, err error) {
	if !s.online(ctx) {
		return nil, false, common.ErrOffline
	}
	if !s.busy.CompareAndSwap(false, true) {
		return nil, false, errBusy
	}
	defer s.busy.Store(false)

	creds, err := s.freshCredentials(ctx)
	if err != nil {
		return nil, false, err
	}

	file, err := s.provider.FindBackupFile(ctx, creds.AccessToken)
	if err != nil {
		return nil, false, err
	}

	downloaded := false
	if file != nil {
		snap, err := s.provider.DownloadBackup(ctx, creds.AccessToken, file.ID)
		if err != nil {
			return nil, false, err
		}
		if snap.HasUsableData() {
			summary, err = s.store.ImportSnapshot(ctx, snap)
			if err != nil {
				return nil, false, err
			}
		} else {
			s.logger.Warn(ctx, "remote backup has no usable collections, reseeding from local state")
			reseeded = true
		}
		downloaded = true
	}

	// the upload closes the loop: merged state (or a brand-new backup)
	// must land in the cloud before the pass counts as complete
	if downloaded || manual || file == nil {
		if err := s.uploadSnapshot(ctx, creds.AccessToken, file); err != nil {
			return nil, false, err
		}
	}

	s.logger.Info(ctx, "sync pass complete", "manual", manual, "downloaded", downloaded)
	return summary, reseeded, nil
}

// uploadPass is the upload-only flavor used by ForceUpload and the
// debounced change trigger.
func (s *Syncer) uploadPass(ctx context.Context) error {
	if !s.online(ctx) {
		return common.ErrOffline
	}
	if !s.busy.CompareAndSwap(false, true) {
		return errBusy
	}
	defer s.busy.Store(false)

	creds, err := s.freshCredentials(ctx)
	if err != nil {
		return err
	}

	file, err := s.provider.FindBackupFile(ctx, creds.AccessToken)
	if err != nil {
		return err
	}

	return s.uploadSnapshot(ctx, creds.AccessToken, file)
}

// downloadPass is the download-and-merge flavor used by ForceDownload.
func (s *Syncer) downloadPass(ctx context.Context) (*storage.ImportSummary, error) {
	if !s.online(ctx) {
		return nil, common.ErrOffline
	}
	if !s.busy.CompareAndSwap(false, true) {
		return nil, errBusy
	}
	defer s.busy.Store(false)

	creds, err := s.freshCredentials(ctx)
	if err != nil {
		return nil, err
	}

	file, err := s.provider.FindBackupFile(ctx, creds.AccessToken)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, common.ErrEmptyRemote
	}

	snap, err := s.provider.DownloadBackup(ctx, creds.AccessToken, file.ID)
	if err != nil {
		return nil, err
	}
	if !snap.HasUsableData() {
		return nil, common.ErrMergeDataInvalid
	}

	return s.store.ImportSnapshot(ctx, snap)
}

// freshCredentials refreshes the access token at the start of every
// attempt and persists the result, so a crash mid-pass never loses the
// rotated token.
func (s *Syncer) freshCredentials(ctx context.Context) (Credentials, error) {
	st, err := s.settings.Load(ctx)
	if err != nil {
		return Credentials{}, err
	}
	creds := st.Credentials
	if !creds.Connected() {
		return creds, common.ErrAuthMissing
	}

	tokens, err := s.provider.RefreshToken(ctx, creds.ClientID, creds.ClientSecret, creds.RefreshToken)
	if err != nil {
		if errors.Is(err, common.ErrAuthExpired) || errors.Is(err, common.ErrAccessDenied) {
			return creds, err
		}
		return creds, fmt.Errorf("%w: %v", common.ErrAuthExpired, err)
	}

	creds.AccessToken = tokens.AccessToken
	if tokens.RefreshToken != "" {
		creds.RefreshToken = tokens.RefreshToken
	}
	if err := s.settings.SetCredentials(ctx, creds); err != nil {
		return creds, err
	}
	return creds, nil
}

func (s *Syncer) uploadSnapshot(ctx context.Context, accessToken string, file *remote.BackupFile) error {
	snap, err := s.store.ExportSnapshot(ctx)
	if err != nil {
		return err
	}

	fileID := ""
	if file != nil {
		fileID = file.ID
	}
	if err := s.provider.UploadBackup(ctx, accessToken, snap, fileID); err != nil {
		return err
	}

	if err := s.settings.SetLastSync(ctx, time.Now()); err != nil {
		s.logger.Warn(ctx, "failed to record last sync time", "error", err)
	}
	return nil
}

// onLocalChange arms (or re-arms) the trailing debounce timer. Events
// produced by a running sync pass are ignored, otherwise every merge
// would schedule a pointless upload of data the pass is about to push
// anyway. A genuine user edit landing during a pass is skipped with
// them; its data is not lost, since every later upload exports the full
// current state.
func (s *Syncer) onLocalChange() {
	if s.busy.Load() {
		return
	}

	st, err := s.settings.Load(s.ctx)
	if err != nil || !st.AutoSyncEnabled || !st.Credentials.Connected() {
		return
	}

	d := s.debounce
	if st.RealTimeEnabled {
		d = s.debounceRealTime
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.debounceTimer != nil {
		s.debounceTimer.Stop()
	}
	s.debounceTimer = time.AfterFunc(d, func() {
		select {
		case <-s.stopCh:
			return
		default:
		}
		if err := s.uploadPass(s.ctx); err != nil && !errors.Is(err, errBusy) {
			s.logger.Warn(s.ctx, "debounced upload failed", "error", err)
		}
	})
	s.logger.Debug(s.ctx, "upload scheduled", "debounce", d)
}

// onSettingsChange reacts to the master switch flipping on by kicking one
// background sync, mirroring the startup behavior.
func (s *Syncer) onSettingsChange(st Settings) {
	was := s.lastAutoSync.Swap(st.AutoSyncEnabled)
	if !was && st.AutoSyncEnabled && st.Credentials.Connected() {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.runBackground(s.ctx, "autosync enabled")
		}()
	}
}

// pollLoop drives the real-time poll: a full sync every interval while
// both switches are on and the network is reachable.
func (s *Syncer) pollLoop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			st, err := s.settings.Load(ctx)
			if err != nil {
				s.logger.Warn(ctx, "poll settings load failed", "error", err)
				continue
			}
			if !st.AutoSyncEnabled || !st.RealTimeEnabled || !st.Credentials.Connected() {
				continue
			}
			if !s.online(ctx) {
				continue
			}
			s.runBackground(ctx, "poll")
		}
	}
}

// userMessage maps internal errors to the toasts the app shows.
func userMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrOffline):
		return "You are offline"
	case errors.Is(err, common.ErrAuthMissing):
		return "Connect a cloud account in Settings first"
	case errors.Is(err, common.ErrAuthExpired):
		return "Cloud session expired. Please reconnect in Settings."
	case errors.Is(err, common.ErrAccessDenied):
		return "Cloud access denied. Check the app's permissions."
	case errors.Is(err, common.ErrEmptyRemote):
		return "No cloud backup found"
	case errors.Is(err, common.ErrMergeDataInvalid):
		return "Cloud backup is empty or damaged"
	default:
		return "Sync failed: " + err.Error()
	}
}

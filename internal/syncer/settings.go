package syncer

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/repositories/settings"
)

// Persisted settings keys.
const (
	keyAutoSync    = "auto_sync_enabled"
	keyRealTime    = "real_time_sync_enabled"
	keyCredentials = "cloud_credentials"
	keyLastSync    = "last_sync_iso"
)

// Credentials is the OAuth client and token material needed to reach the
// cloud provider.
type Credentials struct {
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Connected reports whether an account has been linked.
func (c Credentials) Connected() bool {
	return c.RefreshToken != ""
}

// Settings is the sync configuration surface. AutoSyncEnabled is the
// master switch for all automatic activity; RealTimeEnabled additionally
// turns on the periodic poll. Manual operations ignore both.
type Settings struct {
	AutoSyncEnabled bool
	RealTimeEnabled bool
	Credentials     Credentials
	LastSync        string // RFC3339, empty until the first upload
}

// SettingsStore persists Settings in the key/value settings table and
// fans out change notifications to subscribers.
type SettingsStore struct {
	repo settings.Repository

	mu     sync.Mutex
	nextID int
	subs   map[int]func(Settings)
}

func NewSettingsStore(repo settings.Repository) *SettingsStore {
	return &SettingsStore{repo: repo, subs: make(map[int]func(Settings))}
}

// Load reads the current settings. Missing keys read as zero values, so a
// fresh database starts with sync off and no account linked.
func (s *SettingsStore) Load(ctx context.Context) (Settings, error) {
	var out Settings

	auto, err := s.repo.Get(ctx, keyAutoSync)
	if err != nil {
		return out, fmt.Errorf("failed to load settings: %w", err)
	}
	out.AutoSyncEnabled = string(auto) == "1"

	rt, err := s.repo.Get(ctx, keyRealTime)
	if err != nil {
		return out, fmt.Errorf("failed to load settings: %w", err)
	}
	out.RealTimeEnabled = string(rt) == "1"

	creds, err := s.repo.Get(ctx, keyCredentials)
	if err != nil {
		return out, fmt.Errorf("failed to load settings: %w", err)
	}
	if len(creds) > 0 {
		if err := json.Unmarshal(creds, &out.Credentials); err != nil {
			return out, fmt.Errorf("corrupt stored credentials: %w", err)
		}
	}

	last, err := s.repo.Get(ctx, keyLastSync)
	if err != nil {
		return out, fmt.Errorf("failed to load settings: %w", err)
	}
	out.LastSync = string(last)

	return out, nil
}

// SetAutoSync flips the master switch.
func (s *SettingsStore) SetAutoSync(ctx context.Context, on bool) error {
	if err := s.repo.Set(ctx, keyAutoSync, []byte(boolValue(on))); err != nil {
		return err
	}
	return s.broadcast(ctx)
}

// SetRealTime flips the real-time poll switch.
func (s *SettingsStore) SetRealTime(ctx context.Context, on bool) error {
	if err := s.repo.Set(ctx, keyRealTime, []byte(boolValue(on))); err != nil {
		return err
	}
	return s.broadcast(ctx)
}

// SetCredentials stores the linked account material wholesale. Token
// refreshes go through here too, so the refresh token must already be
// carried over by the caller.
func (s *SettingsStore) SetCredentials(ctx context.Context, c Credentials) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	if err := s.repo.Set(ctx, keyCredentials, raw); err != nil {
		return err
	}
	return s.broadcast(ctx)
}

// ClearCredentials unlinks the account.
func (s *SettingsStore) ClearCredentials(ctx context.Context) error {
	if err := s.repo.Delete(ctx, keyCredentials); err != nil {
		return err
	}
	return s.broadcast(ctx)
}

// SetLastSync records when the last successful upload finished.
func (s *SettingsStore) SetLastSync(ctx context.Context, t time.Time) error {
	if err := s.repo.Set(ctx, keyLastSync, []byte(t.UTC().Format(time.RFC3339))); err != nil {
		return err
	}
	// deliberately no broadcast: last-sync updates happen inside sync
	// passes and must not retrigger them
	return nil
}

// OnChange registers a subscriber called with the full settings after
// every change. The returned function removes the subscription.
func (s *SettingsStore) OnChange(fn func(Settings)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

func (s *SettingsStore) broadcast(ctx context.Context) error {
	current, err := s.Load(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	fns := make([]func(Settings), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(current)
	}
	return nil
}

func boolValue(on bool) string {
	if on {
		return "1"
	}
	return "0"
}

package cli

import (
	"context"
	"fmt"
)

func (a *App) Sync(ctx context.Context) error {
	return a.syncer.SyncNow(ctx)
}

func (a *App) Upload(ctx context.Context) error {
	return a.syncer.ForceUpload(ctx)
}

func (a *App) Download(ctx context.Context) error {
	return a.syncer.ForceDownload(ctx)
}

// Refresh is the pull-to-refresh path: a full sync that honors the
// auto-sync master switch.
func (a *App) Refresh(ctx context.Context) error {
	return a.syncer.PullRefresh(ctx)
}

// Resume stands in for the app-foreground event on mobile: a silent
// full sync when auto-sync is on, no toast either way.
func (a *App) Resume(ctx context.Context) error {
	a.syncer.Resume()
	return nil
}

func (a *App) SetAutoSync(ctx context.Context, on bool) error {
	if err := a.settings.SetAutoSync(ctx, on); err != nil {
		return err
	}
	printlnFn("Auto sync:", onOff(on))
	return nil
}

func (a *App) SetRealTime(ctx context.Context, on bool) error {
	if err := a.settings.SetRealTime(ctx, on); err != nil {
		return err
	}
	printlnFn("Real-time sync:", onOff(on))
	return nil
}

func (a *App) Status(ctx context.Context) error {
	st, err := a.settings.Load(ctx)
	if err != nil {
		return err
	}

	online := "offline"
	if a.checker.Online(ctx) {
		online = "online"
	}

	account := "not connected"
	if st.Credentials.Connected() {
		account = "connected"
	}

	lastSync := st.LastSync
	if lastSync == "" {
		lastSync = "never"
	}

	printlnFn(fmt.Sprintf("Network:    %s", online))
	printlnFn(fmt.Sprintf("Account:    %s", account))
	printlnFn(fmt.Sprintf("Auto sync:  %s", onOff(st.AutoSyncEnabled)))
	printlnFn(fmt.Sprintf("Real-time:  %s", onOff(st.RealTimeEnabled)))
	printlnFn(fmt.Sprintf("Last sync:  %s", lastSync))
	return nil
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

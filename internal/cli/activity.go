package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/models"
	"github.com/google/uuid"
)

func (a *App) ListActivity(ctx context.Context, date string) error {
	if date == "" || date == "today" {
		date = today()
	}

	sessions, err := a.store.GetActivitySessionsByDate(ctx, date)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if len(sessions) == 0 {
		printlnFn("No activity recorded for", date)
		return nil
	}

	for _, s := range sessions {
		printlnFn(fmt.Sprintf("%s  %s (%s)  %s", s.ID, s.AppName, s.DeviceType,
			(time.Duration(s.Duration) * time.Millisecond).Round(time.Second)))
	}
	return nil
}

func (a *App) TrackActivity(ctx context.Context) error {
	appName, err := GetSimpleText(a.reader, "- App name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	minutes, err := GetSimpleText(a.reader, "- Duration in minutes", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	m, err := strconv.Atoi(minutes)
	if err != nil || m <= 0 {
		printlnFn("Duration must be a positive number of minutes")
		return nil
	}

	now := time.Now()
	s := &models.ActivitySession{
		ID:         uuid.NewString(),
		AppName:    appName,
		DeviceType: models.DeviceTypeDesktop,
		StartTime:  now.Add(-time.Duration(m) * time.Minute).UnixMilli(),
		Duration:   int64(m) * time.Minute.Milliseconds(),
		Date:       now.Format("2006-01-02"),
	}
	if err := a.store.PutActivitySession(ctx, s); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	printlnFn("Recorded session", s.ID)
	return nil
}

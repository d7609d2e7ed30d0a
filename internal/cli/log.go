package cli

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
)

// ShowLog views or edits an hourly log day.
//
//	log <date|today>              print the day's entries
//	log <date|today> <hour> text  write one hour cell
//	log <date|today> <hour>       clear one hour cell
func (a *App) ShowLog(ctx context.Context, args []string) error {
	date := args[0]
	if date == "today" {
		date = today()
	}

	if len(args) == 1 {
		hl, err := a.store.GetHourlyLog(ctx, date)
		if err != nil {
			log.Printf("error: %v", err)
			return err
		}
		if hl == nil || len(hl.Logs) == 0 {
			printlnFn("No log entries for", date)
			return nil
		}
		for hour := 0; hour < 24; hour++ {
			if text, ok := hl.Logs[hour]; ok {
				printlnFn(fmt.Sprintf("%02d:00  %s", hour, text))
			}
		}
		return nil
	}

	hour, err := strconv.Atoi(args[1])
	if err != nil || hour < 0 || hour > 23 {
		printlnFn("Hour must be 0-23")
		return nil
	}

	text := strings.Join(args[2:], " ")
	if err := a.store.UpdateHourlyLogEntry(ctx, date, hour, text); err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if text == "" {
		printlnFn(fmt.Sprintf("Cleared %s %02d:00", date, hour))
	} else {
		printlnFn(fmt.Sprintf("Logged %s %02d:00", date, hour))
	}
	return nil
}

// Package merge implements the last-write-wins reconciliation of a local
// record collection with an incoming (cloud) collection of the same kind.
//
// The rules, applied independently per record key:
//
//   - a key absent locally is inserted unconditionally;
//   - a key present on both sides keeps whichever record has the strictly
//     greater effective time (updatedAt, falling back to createdAt);
//   - an exact tie keeps the local record unchanged.
//
// Records are replaced whole. There is no field-level diffing, no
// three-way merge and no conflict surfacing: a soft-deleted incoming
// record with a newer timestamp overwrites a live local one, which is how
// deletions propagate between devices. The result always contains every
// key present on either side, and feeding the same incoming collection in
// twice changes nothing the second time.
package merge

import (
	"sort"

	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/models"
)

// mergeKeyed is the shared core. It returns the reconciled records sorted
// by key for determinism, plus the number of incoming records that won
// (inserts and overwrites).
func mergeKeyed[T any](local, incoming []T, key func(T) string, when func(T) int64) ([]T, int) {
	result := make(map[string]T, len(local)+len(incoming))
	for _, rec := range local {
		result[key(rec)] = rec
	}

	applied := 0
	for _, rec := range incoming {
		k := key(rec)
		existing, ok := result[k]
		if !ok || when(rec) > when(existing) {
			result[k] = rec
			applied++
		}
	}

	keys := make([]string, 0, len(result))
	for k := range result {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	merged := make([]T, 0, len(result))
	for _, k := range keys {
		merged = append(merged, result[k])
	}
	return merged, applied
}

// Notes reconciles two note collections keyed by id.
func Notes(local, incoming []models.Note) ([]models.Note, int) {
	return mergeKeyed(local, incoming,
		func(n models.Note) string { return n.ID },
		func(n models.Note) int64 { return n.EffectiveTime() })
}

// Todos reconciles two todo collections keyed by id.
func Todos(local, incoming []models.Todo) ([]models.Todo, int) {
	return mergeKeyed(local, incoming,
		func(t models.Todo) string { return t.ID },
		func(t models.Todo) int64 { return t.EffectiveTime() })
}

// HourlyLogs reconciles hourly logs keyed by calendar date. The winning
// side's hour map replaces the loser's wholesale; edits to different hours
// of the same day made without an intervening sync will lose one side.
func HourlyLogs(local, incoming []models.HourlyLog) ([]models.HourlyLog, int) {
	return mergeKeyed(local, incoming,
		func(hl models.HourlyLog) string { return hl.Date },
		func(hl models.HourlyLog) int64 { return hl.UpdatedAt })
}

// Activity reconciles activity sessions keyed by id.
func Activity(local, incoming []models.ActivitySession) ([]models.ActivitySession, int) {
	return mergeKeyed(local, incoming,
		func(s models.ActivitySession) string { return s.ID },
		func(s models.ActivitySession) int64 { return s.UpdatedAt })
}

package models

// Snapshot is the full backup document: every record of every collection,
// including soft-deleted notes and todos. Tombstones must be carried so
// deletions propagate to other devices; a snapshot that filtered them out
// would resurrect deleted records on the next merge.
//
// Timestamp records when the snapshot was assembled. It is informational
// only and plays no part in merging.
type Snapshot struct {
	Notes      []Note            `json:"notes"`
	Todos      []Todo            `json:"todos"`
	HourlyLogs []HourlyLog       `json:"hourlyLogs"`
	Activity   []ActivitySession `json:"activity"`
	Timestamp  int64             `json:"timestamp"`
}

// HasUsableData reports whether the document carried at least one of the
// two primary collections. A remote document missing both arrays entirely
// is treated as empty and re-seeded from local state rather than merged.
// Present-but-empty arrays count as usable.
func (s *Snapshot) HasUsableData() bool {
	if s == nil {
		return false
	}
	return s.Notes != nil || s.Todos != nil
}

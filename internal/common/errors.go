// Package common defines shared sentinel errors used across the storage,
// remote and sync layers. Callers should use errors.Is to match these
// values; layers add context with fmt.Errorf("...: %w", err).
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Sync preconditions.
	ErrOffline     = errors.New("you are offline")
	ErrAuthMissing = errors.New("missing cloud credentials")

	// Remote provider errors.
	ErrAuthExpired  = errors.New("cloud session expired")
	ErrAccessDenied = errors.New("cloud access denied")

	// Remote payload conditions. Both are informational at the orchestrator
	// boundary: an empty or structurally unusable remote document is not a
	// failure, the local state simply re-seeds it on the next upload.
	ErrEmptyRemote      = errors.New("cloud backup is empty")
	ErrMergeDataInvalid = errors.New("cloud backup has no usable collections")
)

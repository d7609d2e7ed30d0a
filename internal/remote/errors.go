package remote

import "errors"

// Sentinel errors wrapped by provider implementations. The raw provider
// response text is attached via fmt.Errorf("%w: ...") for diagnostics;
// callers match with errors.Is. Authorization failures use the shared
// sentinels in internal/common instead, since the orchestrator reacts to
// those specifically.
var (
	ErrTransport = errors.New("cloud request failed")
	ErrUpload    = errors.New("upload failed")
	ErrDownload  = errors.New("download failed")
)

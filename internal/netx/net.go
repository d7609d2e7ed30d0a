// Package netx provides the connectivity probe consulted by the sync
// orchestrator before it starts network activity. It is the moral
// equivalent of the browser's navigator.onLine check: cheap, best-effort,
// and never a substitute for handling errors at the call site.
package netx

import (
	"context"
	"net/http"
	"time"
)

// DefaultProbeURL returns 204 with an empty body and is served from
// anycast infrastructure, which keeps the probe fast.
const DefaultProbeURL = "http://clients3.google.com/generate_204"

// Checker probes a fixed URL to estimate whether the network is up.
type Checker struct {
	url    string
	client *http.Client
}

// NewChecker builds a Checker for the given probe URL. An empty url
// selects DefaultProbeURL.
func NewChecker(url string) *Checker {
	if url == "" {
		url = DefaultProbeURL
	}
	return &Checker{
		url:    url,
		client: &http.Client{Timeout: 3 * time.Second},
	}
}

// Online reports whether the probe URL answered at all. Any HTTP status
// counts as online; only transport-level failure counts as offline.
func (c *Checker) Online(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.url, nil)
	if err != nil {
		return false
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	_ = resp.Body.Close()
	return true
}

package config

import "time"

// Cloud backends selectable via the provider setting.
const (
	ProviderGDrive = "gdrive"
	ProviderS3     = "s3"
)

// Config holds runtime settings for the TruNotes CLI.
//
// Fields:
//   - DatabaseDSN: path/DSN of the local SQLite database.
//   - BackupFileName: well-known name of the cloud backup object.
//   - OnlineProbeURL: endpoint used for the connectivity check.
//   - Provider: cloud backend, ProviderGDrive or ProviderS3.
//   - PollInterval: period of the real-time full-sync poll.
//   - UploadDebounce: quiet period before a change-triggered upload.
//   - UploadDebounceRealTime: debounce used while real-time mode is on.
//   - OAuthRedirectURI: redirect URI of the installed-app OAuth flow.
//   - S3Region/S3Endpoint/S3Bucket/S3AccessKey/S3SecretKey: object-store
//     settings, used only when Provider is ProviderS3.
type Config struct {
	DatabaseDSN            string
	BackupFileName         string
	OnlineProbeURL         string
	Provider               string
	PollInterval           time.Duration
	UploadDebounce         time.Duration
	UploadDebounceRealTime time.Duration
	OAuthRedirectURI       string
	S3Region               string
	S3Endpoint             string
	S3Bucket               string
	S3AccessKey            string
	S3SecretKey            string
}

// LoadDefaults populates c with the stock values. The poll and debounce
// intervals match the mobile app: 15s poll, 2s upload debounce, stretched
// to 3s while real-time mode keeps the poll busy.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "trunotes.db"
	c.BackupFileName = "trunotes_backup.json"
	c.OnlineProbeURL = ""
	c.Provider = ProviderGDrive
	c.PollInterval = 15 * time.Second
	c.UploadDebounce = 2 * time.Second
	c.UploadDebounceRealTime = 3 * time.Second
	c.OAuthRedirectURI = "http://localhost"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

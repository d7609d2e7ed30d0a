package config

import (
	"encoding/json"
	"os"

	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/flagx"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Intervals
// use timex.Duration so the file can say "15s" or integer nanoseconds.
type JsonConfig struct {
	DatabaseDSN            string         `json:"database_dsn"`
	BackupFileName         string         `json:"backup_file_name"`
	OnlineProbeURL         string         `json:"online_probe_url"`
	Provider               string         `json:"provider"`
	PollInterval           timex.Duration `json:"poll_interval"`
	UploadDebounce         timex.Duration `json:"upload_debounce"`
	UploadDebounceRealTime timex.Duration `json:"upload_debounce_realtime"`
	OAuthRedirectURI       string         `json:"oauth_redirect_uri"`
	S3Region               string         `json:"s3_region"`
	S3Endpoint             string         `json:"s3_endpoint"`
	S3Bucket               string         `json:"s3_bucket"`
	S3AccessKey            string         `json:"s3_access_key"`
	S3SecretKey            string         `json:"s3_secret_key"`
}

// parseJson overlays cfg with values from the JSON file named by the
// -c/-config flags. Missing file path means no JSON is loaded. Read or
// unmarshal errors panic; LoadConfig runs at process start where a broken
// config file should be fatal.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.BackupFileName != "" {
		cfg.BackupFileName = jc.BackupFileName
	}
	if jc.OnlineProbeURL != "" {
		cfg.OnlineProbeURL = jc.OnlineProbeURL
	}
	if jc.Provider != "" {
		cfg.Provider = jc.Provider
	}
	if jc.PollInterval.Duration != 0 {
		cfg.PollInterval = jc.PollInterval.Duration
	}
	if jc.UploadDebounce.Duration != 0 {
		cfg.UploadDebounce = jc.UploadDebounce.Duration
	}
	if jc.UploadDebounceRealTime.Duration != 0 {
		cfg.UploadDebounceRealTime = jc.UploadDebounceRealTime.Duration
	}
	if jc.OAuthRedirectURI != "" {
		cfg.OAuthRedirectURI = jc.OAuthRedirectURI
	}
	if jc.S3Region != "" {
		cfg.S3Region = jc.S3Region
	}
	if jc.S3Endpoint != "" {
		cfg.S3Endpoint = jc.S3Endpoint
	}
	if jc.S3Bucket != "" {
		cfg.S3Bucket = jc.S3Bucket
	}
	if jc.S3AccessKey != "" {
		cfg.S3AccessKey = jc.S3AccessKey
	}
	if jc.S3SecretKey != "" {
		cfg.S3SecretKey = jc.S3SecretKey
	}
}

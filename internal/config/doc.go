// Package config loads runtime configuration for the TruNotes CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   local database path/DSN
//	-b string   cloud backup object name
//	-p int      real-time poll interval (seconds)
//
// # JSON schema
//
// Interval values use timex.Duration, so they can be strings like "15s" or
// integer nanoseconds:
//
//	{
//	  "database_dsn": "trunotes.db",
//	  "backup_file_name": "trunotes_backup.json",
//	  "provider": "gdrive",
//	  "poll_interval": "15s",
//	  "upload_debounce": "2s"
//	}
//
// Setting "provider" to "s3" routes backups to an S3-compatible object
// store configured by "s3_region", "s3_endpoint", "s3_bucket",
// "s3_access_key" and "s3_secret_key".
//
// Note the distinction from sync settings: the master switch, real-time
// switch and OAuth tokens are user data, persisted in the local database
// through the settings repository, not in this file.
package config

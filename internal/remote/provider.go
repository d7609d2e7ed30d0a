// Package remote defines the cloud backup provider contract: locating,
// uploading and downloading a single named backup object, plus the OAuth
// token lifecycle. Any object store offering exact-name lookup,
// overwrite-by-id and raw download can implement it; gdrive and s3store
// are the two shipped backends.
package remote

import (
	"context"

	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/models"
)

// BackupFile describes the located backup object.
type BackupFile struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ModifiedTime string `json:"modifiedTime,omitempty"`
}

// Tokens is the OAuth credential material returned by the token endpoint.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int64  `json:"expires_in"`
	Scope        string `json:"scope,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
}

// Provider is the remote backup store.
//
// FindBackupFile returns (nil, nil) when no backup object exists yet;
// errors are reserved for failed lookups. RefreshToken must return the
// original refresh token when the provider omits a new one, so callers
// can always persist the result wholesale.
type Provider interface {
	FindBackupFile(ctx context.Context, accessToken string) (*BackupFile, error)
	UploadBackup(ctx context.Context, accessToken string, snapshot *models.Snapshot, existingFileID string) error
	DownloadBackup(ctx context.Context, accessToken, fileID string) (*models.Snapshot, error)
	RefreshToken(ctx context.Context, clientID, clientSecret, refreshToken string) (*Tokens, error)
	AuthURL(clientID, redirectURI string) string
	ExchangeCode(ctx context.Context, clientID, clientSecret, code, redirectURI string) (*Tokens, error)
}

// Package gdrive implements the remote.Provider contract against the
// Google Drive v3 REST API: exact-name file lookup, multipart
// create/update, alt=media download, and the OAuth2 installed-app flow.
package gdrive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/common"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/models"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/remote"
)

const driveScope = "https://www.googleapis.com/auth/drive.file"

// Client talks to Google Drive. The base URLs are fields so tests can
// point the client at an httptest server.
type Client struct {
	fileName string
	client   *http.Client

	apiBase    string // file metadata + download
	uploadBase string // multipart uploads
	authBase   string // interactive consent page
	tokenURL   string // OAuth2 token endpoint
}

// NewClient builds a Drive client for the given backup object name.
func NewClient(fileName string) *Client {
	return &Client{
		fileName:   fileName,
		client:     &http.Client{},
		apiBase:    "https://www.googleapis.com/drive/v3",
		uploadBase: "https://www.googleapis.com/upload/drive/v3",
		authBase:   "https://accounts.google.com/o/oauth2/v2/auth",
		tokenURL:   "https://oauth2.googleapis.com/token",
	}
}

// AuthURL returns the consent page URL the user must open to authorize
// the app. access_type=offline and prompt=consent force Google to issue
// a refresh token.
func (c *Client) AuthURL(clientID, redirectURI string) string {
	params := url.Values{
		"client_id":     {clientID},
		"redirect_uri":  {redirectURI},
		"response_type": {"code"},
		"scope":         {driveScope},
		"access_type":   {"offline"},
		"prompt":        {"consent"},
	}
	return c.authBase + "?" + params.Encode()
}

// ExchangeCode trades the one-time authorization code for tokens.
func (c *Client) ExchangeCode(ctx context.Context, clientID, clientSecret, code, redirectURI string) (*remote.Tokens, error) {
	return c.tokenRequest(ctx, url.Values{
		"client_id":     {clientID},
		"client_secret": {clientSecret},
		"code":          {code},
		"grant_type":    {"authorization_code"},
		"redirect_uri":  {redirectURI},
	})
}

// RefreshToken exchanges a refresh token for a fresh access token. Google
// does not always return a new refresh token on refresh, so the original
// one is carried over in that case.
func (c *Client) RefreshToken(ctx context.Context, clientID, clientSecret, refreshToken string) (*remote.Tokens, error) {
	tokens, err := c.tokenRequest(ctx, url.Values{
		"client_id":     {clientID},
		"client_secret": {clientSecret},
		"refresh_token": {refreshToken},
		"grant_type":    {"refresh_token"},
	})
	if err != nil {
		return nil, err
	}
	if tokens.RefreshToken == "" {
		tokens.RefreshToken = refreshToken
	}
	return tokens, nil
}

func (c *Client) tokenRequest(ctx context.Context, form url.Values) (*remote.Tokens, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", remote.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error       string `json:"error"`
			Description string `json:"error_description"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Description != "" {
			return nil, fmt.Errorf("token request rejected: %s", apiErr.Description)
		}
		return nil, fmt.Errorf("token request rejected: %s", resp.Status)
	}

	tokens := &remote.Tokens{}
	if err := json.NewDecoder(resp.Body).Decode(tokens); err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}
	return tokens, nil
}

// FindBackupFile locates the backup object by exact name, skipping
// trashed files. Returns (nil, nil) when no backup exists yet.
func (c *Client) FindBackupFile(ctx context.Context, accessToken string) (*remote.BackupFile, error) {
	query := fmt.Sprintf("name = '%s' and trashed = false", c.fileName)
	u := fmt.Sprintf("%s/files?q=%s&fields=%s",
		c.apiBase, url.QueryEscape(query), url.QueryEscape("files(id, name, modifiedTime)"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", remote.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return nil, fmt.Errorf("%w: please reconnect in settings", common.ErrAuthExpired)
		case http.StatusForbidden:
			return nil, fmt.Errorf("%w: check your client id permissions", common.ErrAccessDenied)
		default:
			return nil, fmt.Errorf("%w: %d - failed to list files: %s", remote.ErrTransport, resp.StatusCode, string(body))
		}
	}

	var listing struct {
		Files []remote.BackupFile `json:"files"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&listing); err != nil {
		return nil, fmt.Errorf("failed to decode file listing: %w", err)
	}
	if len(listing.Files) == 0 {
		return nil, nil
	}
	return &listing.Files[0], nil
}

// UploadBackup serializes the snapshot as one JSON document and uploads
// it with uploadType=multipart: POST creates a new object, PATCH with an
// existing file id overwrites in place.
func (c *Client) UploadBackup(ctx context.Context, accessToken string, snapshot *models.Snapshot, existingFileID string) error {
	content, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	metadata := map[string]string{
		"name":     c.fileName,
		"mimeType": "application/json",
	}
	metaPart, err := mw.CreatePart(textproto.MIMEHeader{"Content-Type": {"application/json; charset=UTF-8"}})
	if err != nil {
		return err
	}
	if err := json.NewEncoder(metaPart).Encode(metadata); err != nil {
		return err
	}

	filePart, err := mw.CreatePart(textproto.MIMEHeader{"Content-Type": {"application/json"}})
	if err != nil {
		return err
	}
	if _, err := filePart.Write(content); err != nil {
		return err
	}
	if err := mw.Close(); err != nil {
		return err
	}

	u := c.uploadBase + "/files?uploadType=multipart"
	method := http.MethodPost
	if existingFileID != "" {
		u = fmt.Sprintf("%s/files/%s?uploadType=multipart", c.uploadBase, existingFileID)
		method = http.MethodPatch
	}

	req, err := http.NewRequestWithContext(ctx, method, u, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "multipart/related; boundary="+mw.Boundary())

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", remote.ErrUpload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %s", remote.ErrUpload, string(body))
	}
	return nil
}

// DownloadBackup fetches the object body with alt=media and parses it as
// a snapshot document.
func (c *Client) DownloadBackup(ctx context.Context, accessToken, fileID string) (*models.Snapshot, error) {
	u := fmt.Sprintf("%s/files/%s?alt=media", c.apiBase, fileID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", remote.ErrDownload, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: %d: %s", remote.ErrDownload, resp.StatusCode, string(body))
	}

	snapshot := &models.Snapshot{}
	if err := json.NewDecoder(resp.Body).Decode(snapshot); err != nil {
		return nil, fmt.Errorf("%w: malformed backup document: %v", remote.ErrDownload, err)
	}
	return snapshot, nil
}

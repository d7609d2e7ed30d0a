// Package s3store backs the remote provider contract with an
// S3-compatible object store (AWS S3, MinIO). Credentials are static, so
// the OAuth parts of the contract degrade to no-ops: RefreshToken echoes
// its input and the consent flow is unsupported.
package s3store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/common"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/models"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/remote"
)

// ObjectAPI is the slice of the S3 client the store uses. *s3.Client
// satisfies it; tests substitute a fake.
type ObjectAPI interface {
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Options configures the store endpoint and credentials.
type Options struct {
	Region    string
	Endpoint  string // leave empty for AWS proper; set for MinIO etc.
	AccessKey string
	SecretKey string
	Bucket    string
}

// Client is an S3-compatible backup provider for a single named object.
type Client struct {
	api      ObjectAPI
	bucket   string
	fileName string
}

// NewClient builds a provider against a real S3 endpoint.
func NewClient(ctx context.Context, opts Options, fileName string) (*Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(opts.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			opts.AccessKey,
			opts.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	api := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			// MinIO and most local stores only speak path-style
			o.UsePathStyle = true
		}
	})

	return &Client{api: api, bucket: opts.Bucket, fileName: fileName}, nil
}

// FindBackupFile looks for the backup object by exact key. Returns
// (nil, nil) when the bucket does not hold one yet.
func (c *Client) FindBackupFile(ctx context.Context, _ string) (*remote.BackupFile, error) {
	out, err := c.api.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(c.bucket),
		Prefix: aws.String(c.fileName),
	})
	if err != nil {
		return nil, c.mapError(err)
	}

	for _, obj := range out.Contents {
		if obj.Key == nil || *obj.Key != c.fileName {
			continue
		}
		f := &remote.BackupFile{ID: *obj.Key, Name: *obj.Key}
		if obj.LastModified != nil {
			f.ModifiedTime = obj.LastModified.UTC().Format(time.RFC3339)
		}
		return f, nil
	}
	return nil, nil
}

// UploadBackup writes the snapshot as a JSON object. S3 puts overwrite,
// so the existing object id is irrelevant.
func (c *Client) UploadBackup(ctx context.Context, _ string, snapshot *models.Snapshot, _ string) error {
	body, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("%w: %v", remote.ErrUpload, err)
	}

	_, err = c.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(c.fileName),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("%w: %v", remote.ErrUpload, c.mapError(err))
	}
	return nil
}

// DownloadBackup fetches and decodes the backup object.
func (c *Client) DownloadBackup(ctx context.Context, _ string, fileID string) (*models.Snapshot, error) {
	out, err := c.api.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(fileID),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", remote.ErrDownload, c.mapError(err))
	}
	defer out.Body.Close()

	snapshot := &models.Snapshot{}
	if err := json.NewDecoder(out.Body).Decode(snapshot); err != nil {
		return nil, fmt.Errorf("%w: invalid backup content: %v", remote.ErrDownload, err)
	}
	return snapshot, nil
}

// RefreshToken is a no-op for static credentials; the input material is
// echoed so callers can persist the result the same way as with OAuth
// providers.
func (c *Client) RefreshToken(_ context.Context, _, _, refreshToken string) (*remote.Tokens, error) {
	return &remote.Tokens{
		AccessToken:  refreshToken,
		RefreshToken: refreshToken,
		TokenType:    "static",
	}, nil
}

// AuthURL has no equivalent for static credentials.
func (c *Client) AuthURL(_, _ string) string { return "" }

// ExchangeCode has no equivalent for static credentials.
func (c *Client) ExchangeCode(_ context.Context, _, _, _, _ string) (*remote.Tokens, error) {
	return nil, errors.New("s3 backend uses static credentials, there is no authorization flow")
}

func (c *Client) mapError(err error) error {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return common.ErrNotFound
	}

	var respErr interface{ HTTPStatusCode() int }
	if errors.As(err, &respErr) {
		switch respErr.HTTPStatusCode() {
		case http.StatusUnauthorized:
			return common.ErrAuthExpired
		case http.StatusForbidden:
			return common.ErrAccessDenied
		}
	}
	return fmt.Errorf("%w: %v", remote.ErrTransport, err)
}

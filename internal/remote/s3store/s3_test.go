package s3store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/models"
	"github.com/akgetscreative-wq/TruNotesV2-sub000/internal/remote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	listOut *s3.ListObjectsV2Output
	listErr error

	putIn  *s3.PutObjectInput
	putErr error

	getOut *s3.GetObjectOutput
	getErr error
}

func (f *fakeAPI) ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	return f.listOut, f.listErr
}

func (f *fakeAPI) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.putIn = params
	return &s3.PutObjectOutput{}, f.putErr
}

func (f *fakeAPI) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	return f.getOut, f.getErr
}

func newTestClient(api ObjectAPI) *Client {
	return &Client{api: api, bucket: "trunotes", fileName: "trunotes_backup.json"}
}

func TestFindBackupFile_ExactKeyMatch(t *testing.T) {
	modified := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	api := &fakeAPI{listOut: &s3.ListObjectsV2Output{
		Contents: []types.Object{
			{Key: aws.String("trunotes_backup.json.bak")},
			{Key: aws.String("trunotes_backup.json"), LastModified: &modified},
		},
	}}

	f, err := newTestClient(api).FindBackupFile(context.Background(), "")
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, "trunotes_backup.json", f.ID)
	assert.Equal(t, "2026-09-01T10:00:00Z", f.ModifiedTime)
}

func TestFindBackupFile_MissingObjectIsNilNil(t *testing.T) {
	api := &fakeAPI{listOut: &s3.ListObjectsV2Output{}}

	f, err := newTestClient(api).FindBackupFile(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, f)
}

func TestFindBackupFile_TransportError(t *testing.T) {
	api := &fakeAPI{listErr: errors.New("connection refused")}

	_, err := newTestClient(api).FindBackupFile(context.Background(), "")
	assert.True(t, errors.Is(err, remote.ErrTransport))
}

func TestUploadBackup_WritesJSONObject(t *testing.T) {
	api := &fakeAPI{}

	snap := &models.Snapshot{
		Notes:     []models.Note{{ID: "n1", Title: "hello", UpdatedAt: 5}},
		Todos:     []models.Todo{},
		Timestamp: 99,
	}
	require.NoError(t, newTestClient(api).UploadBackup(context.Background(), "", snap, "ignored"))

	require.NotNil(t, api.putIn)
	assert.Equal(t, "trunotes", *api.putIn.Bucket)
	assert.Equal(t, "trunotes_backup.json", *api.putIn.Key)
	assert.Equal(t, "application/json", *api.putIn.ContentType)

	body, err := io.ReadAll(api.putIn.Body)
	require.NoError(t, err)
	var round models.Snapshot
	require.NoError(t, json.Unmarshal(body, &round))
	require.Len(t, round.Notes, 1)
	assert.Equal(t, "hello", round.Notes[0].Title)
	assert.Equal(t, int64(99), round.Timestamp)
}

func TestUploadBackup_WrapsFailure(t *testing.T) {
	api := &fakeAPI{putErr: errors.New("access denied by bucket policy")}

	err := newTestClient(api).UploadBackup(context.Background(), "", &models.Snapshot{}, "")
	assert.True(t, errors.Is(err, remote.ErrUpload))
}

func TestDownloadBackup_DecodesSnapshot(t *testing.T) {
	raw, err := json.Marshal(models.Snapshot{
		Notes: []models.Note{{ID: "a", Title: "cloud", UpdatedAt: 3}},
		Todos: []models.Todo{},
	})
	require.NoError(t, err)

	api := &fakeAPI{getOut: &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(raw))}}

	snap, err := newTestClient(api).DownloadBackup(context.Background(), "", "trunotes_backup.json")
	require.NoError(t, err)
	require.Len(t, snap.Notes, 1)
	assert.Equal(t, "cloud", snap.Notes[0].Title)
}

func TestDownloadBackup_RejectsGarbage(t *testing.T) {
	api := &fakeAPI{getOut: &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader([]byte("not json")))}}

	_, err := newTestClient(api).DownloadBackup(context.Background(), "", "trunotes_backup.json")
	assert.True(t, errors.Is(err, remote.ErrDownload))
}

func TestRefreshToken_EchoesStaticCredentials(t *testing.T) {
	tokens, err := newTestClient(&fakeAPI{}).RefreshToken(context.Background(), "", "", "static-key")
	require.NoError(t, err)
	assert.Equal(t, "static-key", tokens.AccessToken)
	assert.Equal(t, "static-key", tokens.RefreshToken)
}

func TestExchangeCode_Unsupported(t *testing.T) {
	_, err := newTestClient(&fakeAPI{}).ExchangeCode(context.Background(), "", "", "", "")
	assert.Error(t, err)
}

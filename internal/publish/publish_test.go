package publish

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	crownpages "github.com/phn-team/crown-pages-types"
	"github.com/phn-team/crown-pages-types/internal/bundle"
)

type uploadedObject struct {
	bucket string
	key    string
	body   []byte
}

type fakeUploader struct {
	uploads []uploadedObject
	err     error
}

func (f *fakeUploader) Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, err
	}
	f.uploads = append(f.uploads, uploadedObject{
		bucket: *input.Bucket,
		key:    *input.Key,
		body:   body,
	})
	return &manager.UploadOutput{}, nil
}

func TestPublish(t *testing.T) {
	fake := &fakeUploader{}
	p := NewWithUploader(fake, Config{Bucket: "crown-catalog", Prefix: "catalog"}, zap.NewNop())

	key, err := p.Publish(context.Background(), bundle.Build())
	require.NoError(t, err)
	assert.Equal(t, "catalog/crown-pages-"+crownpages.SchemaVersion+".json", key)

	require.Len(t, fake.uploads, 2)
	assert.Equal(t, key, fake.uploads[0].key)
	assert.Equal(t, "catalog/latest.json", fake.uploads[1].key)
	assert.Equal(t, "crown-catalog", fake.uploads[0].bucket)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(fake.uploads[0].body, &decoded))
	assert.Equal(t, crownpages.SchemaVersion, decoded["schemaVersion"])

	// Both keys carry the same document.
	assert.Equal(t, fake.uploads[0].body, fake.uploads[1].body)
}

func TestPublish_NoPrefix(t *testing.T) {
	fake := &fakeUploader{}
	p := NewWithUploader(fake, Config{Bucket: "b"}, zap.NewNop())

	key, err := p.Publish(context.Background(), bundle.Build())
	require.NoError(t, err)
	assert.Equal(t, "crown-pages-"+crownpages.SchemaVersion+".json", key)
}

func TestPublish_DryRun(t *testing.T) {
	fake := &fakeUploader{}
	p := NewWithUploader(fake, Config{Bucket: "b", Prefix: "catalog", DryRun: true}, zap.NewNop())

	key, err := p.Publish(context.Background(), bundle.Build())
	require.NoError(t, err)
	assert.NotEmpty(t, key)
	assert.Empty(t, fake.uploads)
}

func TestPublish_UploadError(t *testing.T) {
	fake := &fakeUploader{err: errors.New("access denied")}
	p := NewWithUploader(fake, Config{Bucket: "b"}, zap.NewNop())

	_, err := p.Publish(context.Background(), bundle.Build())
	require.Error(t, err)

	var cerr *crownpages.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, crownpages.ErrCodePublishFailed, cerr.Code)
	assert.ErrorContains(t, err, "upload")
}

func TestNew_RequiresBucket(t *testing.T) {
	_, err := New(context.Background(), Config{}, zap.NewNop())
	assert.Error(t, err)
}

package filestore

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parcours/pkg/domain"
	"parcours/pkg/platform/sentinel"
)

type object struct {
	body        []byte
	contentType string
	metadata    map[string]string
}

// fakeS3 is an in-memory bucket honouring the calls S3Store makes.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string]object
}

func newFakeS3() *fakeS3 { return &fakeS3{objects: map[string]object{}} }

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[aws.ToString(in.Key)] = object{body: body, contentType: aws.ToString(in.ContentType), metadata: in.Metadata}
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) HeadObject(_ context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, &s3types.NotFound{}
	}
	return &s3.HeadObjectOutput{
		ContentType:   aws.String(o.contentType),
		ContentLength: aws.Int64(int64(len(o.body))),
		Metadata:      o.metadata,
	}, nil
}

func (f *fakeS3) CopyObject(_ context.Context, in *s3.CopyObjectInput, _ ...func(*s3.Options)) (*s3.CopyObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, src, _ := strings.Cut(aws.ToString(in.CopySource), "/")
	o, ok := f.objects[src]
	if !ok {
		return nil, &s3types.NotFound{}
	}
	f.objects[aws.ToString(in.Key)] = object{body: o.body, contentType: aws.ToString(in.ContentType), metadata: in.Metadata}
	return &s3.CopyObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Store_UploadLifecycle(t *testing.T) {
	ctx := context.Background()
	bucket := newFakeS3()
	store := NewS3Store(bucket, "parcours")
	uploadedAt := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return uploadedAt }

	pdf := []byte("%PDF-1.7\n%âãÏÓ\n1 0 obj\n<<>>\nendobj\n")
	token, err := store.StoreRemote(ctx, pdf, "minutes.pdf", "")
	require.NoError(t, err)

	id, err := store.ConfirmUpload(ctx, token, "0123456")
	require.NoError(t, err)
	assert.Len(t, bucket.objects, 1, "pending upload is discarded")

	_, err = store.ConfirmUpload(ctx, token, "0123456")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)

	readToken, err := store.ReadToken(ctx, id)
	require.NoError(t, err)
	meta, err := store.Metadata(ctx, readToken)
	require.NoError(t, err)
	assert.Equal(t, "minutes.pdf", meta.Name)
	assert.Equal(t, "application/pdf", meta.MimeType)
	assert.Equal(t, int64(len(pdf)), meta.Size)
	assert.Equal(t, "0123456", meta.Author)
	assert.True(t, meta.UploadedAt.Equal(uploadedAt))
}

func TestS3Store_UnknownFile(t *testing.T) {
	store := NewS3Store(newFakeS3(), "parcours")
	_, err := store.ReadToken(context.Background(), domain.NewFileID())
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
	_, err = store.Metadata(context.Background(), "upload:nope")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

// Package filestore implements the document file service on S3.
//
// Uploads land under uploads/ and are moved under files/ when confirmed.
// Tokens are opaque to callers: "upload:<uuid>" for pending uploads and
// "file:<uuid>" for read access.
package filestore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"parcours/internal/ports"
	"parcours/pkg/domain"
	"parcours/pkg/platform/sentinel"
)

const (
	uploadPrefix = "upload:"
	filePrefix   = "file:"

	metaName       = "name"
	metaAuthor     = "author"
	metaUploadedAt = "uploaded-at"
)

// S3API is the subset of the S3 client used by the store.
type S3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, in *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	CopyObject(ctx context.Context, in *s3.CopyObjectInput, optFns ...func(*s3.Options)) (*s3.CopyObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type S3Store struct {
	client S3API
	bucket string
	now    func() time.Time
}

func NewS3Store(client S3API, bucket string) *S3Store {
	return &S3Store{client: client, bucket: bucket, now: time.Now}
}

func uploadKey(token string) string { return "uploads/" + token }
func fileKey(id string) string      { return "files/" + id }

func (s *S3Store) StoreRemote(ctx context.Context, data []byte, name, mimeType string) (string, error) {
	if mimeType == "" {
		mimeType = mimetype.Detect(data).String()
	}
	token := uuid.NewString()
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(uploadKey(token)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mimeType),
		Metadata:    map[string]string{metaName: name},
	})
	if err != nil {
		return "", fmt.Errorf("store upload: %w", err)
	}
	return uploadPrefix + token, nil
}

func (s *S3Store) ConfirmUpload(ctx context.Context, token, author string) (domain.FileID, error) {
	upload, ok := strings.CutPrefix(token, uploadPrefix)
	if !ok {
		return domain.FileID{}, fmt.Errorf("not an upload token: %w", sentinel.ErrNotFound)
	}
	head, err := s.head(ctx, uploadKey(upload))
	if err != nil {
		return domain.FileID{}, err
	}

	id := domain.NewFileID()
	metadata := map[string]string{
		metaName:       head.Metadata[metaName],
		metaAuthor:     author,
		metaUploadedAt: s.now().UTC().Format(time.RFC3339),
	}
	_, err = s.client.CopyObject(ctx, &s3.CopyObjectInput{
		Bucket:            aws.String(s.bucket),
		CopySource:        aws.String(s.bucket + "/" + uploadKey(upload)),
		Key:               aws.String(fileKey(id.String())),
		ContentType:       head.ContentType,
		Metadata:          metadata,
		MetadataDirective: s3types.MetadataDirectiveReplace,
	})
	if err != nil {
		return domain.FileID{}, fmt.Errorf("confirm upload: %w", err)
	}
	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(uploadKey(upload)),
	}); err != nil {
		return domain.FileID{}, fmt.Errorf("discard upload: %w", err)
	}
	return id, nil
}

func (s *S3Store) ReadToken(ctx context.Context, id domain.FileID) (string, error) {
	if _, err := s.head(ctx, fileKey(id.String())); err != nil {
		return "", err
	}
	return filePrefix + id.String(), nil
}

func (s *S3Store) Metadata(ctx context.Context, token string) (*ports.FileMetadata, error) {
	id, ok := strings.CutPrefix(token, filePrefix)
	if !ok {
		return nil, fmt.Errorf("not a read token: %w", sentinel.ErrNotFound)
	}
	head, err := s.head(ctx, fileKey(id))
	if err != nil {
		return nil, err
	}
	meta := &ports.FileMetadata{
		Name:     head.Metadata[metaName],
		MimeType: aws.ToString(head.ContentType),
		Size:     aws.ToInt64(head.ContentLength),
		Author:   head.Metadata[metaAuthor],
	}
	if at, err := time.Parse(time.RFC3339, head.Metadata[metaUploadedAt]); err == nil {
		meta.UploadedAt = at
	}
	return meta, nil
}

func (s *S3Store) head(ctx context.Context, key string) (*s3.HeadObjectOutput, error) {
	out, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *s3types.NotFound
		if errors.As(err, &notFound) {
			return nil, fmt.Errorf("%s: %w", key, sentinel.ErrNotFound)
		}
		return nil, fmt.Errorf("head %s: %w", key, err)
	}
	return out, nil
}

package filestore

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"parcours/internal/ports"
	"parcours/pkg/domain"
	"parcours/pkg/platform/sentinel"
)

type storedFile struct {
	data []byte
	meta ports.FileMetadata
}

// InMemoryStore keeps files in memory with the same token scheme as S3Store.
type InMemoryStore struct {
	mu      sync.Mutex
	uploads map[string]storedFile
	files   map[domain.FileID]storedFile
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		uploads: make(map[string]storedFile),
		files:   make(map[domain.FileID]storedFile),
	}
}

func (s *InMemoryStore) StoreRemote(_ context.Context, data []byte, name, mimeType string) (string, error) {
	if mimeType == "" {
		mimeType = mimetype.Detect(data).String()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	token := uuid.NewString()
	s.uploads[token] = storedFile{
		data: append([]byte(nil), data...),
		meta: ports.FileMetadata{Name: name, MimeType: mimeType, Size: int64(len(data))},
	}
	return uploadPrefix + token, nil
}

func (s *InMemoryStore) ConfirmUpload(_ context.Context, token, author string) (domain.FileID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.uploads[strings.TrimPrefix(token, uploadPrefix)]
	if !ok {
		return domain.FileID{}, fmt.Errorf("upload %s: %w", token, sentinel.ErrNotFound)
	}
	delete(s.uploads, strings.TrimPrefix(token, uploadPrefix))
	f.meta.Author = author
	f.meta.UploadedAt = time.Now().UTC()
	id := domain.NewFileID()
	s.files[id] = f
	return id, nil
}

func (s *InMemoryStore) ReadToken(_ context.Context, id domain.FileID) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.files[id]; !ok {
		return "", fmt.Errorf("file %s: %w", id, sentinel.ErrNotFound)
	}
	return filePrefix + id.String(), nil
}

func (s *InMemoryStore) Metadata(_ context.Context, token string) (*ports.FileMetadata, error) {
	id, err := domain.ParseFileID(strings.TrimPrefix(token, filePrefix))
	if err != nil {
		return nil, fmt.Errorf("token %s: %w", token, sentinel.ErrNotFound)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.files[id]
	if !ok {
		return nil, fmt.Errorf("file %s: %w", id, sentinel.ErrNotFound)
	}
	meta := f.meta
	return &meta, nil
}

// Content returns the bytes of a confirmed file.
func (s *InMemoryStore) Content(id domain.FileID) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.files[id]
	return f.data, ok
}

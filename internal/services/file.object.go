package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/joshuarp/idgen-api/internal/domain/vo"
	sharedstorage "github.com/joshuarp/idgen-api/internal/shared/storage"
	shareduid "github.com/joshuarp/idgen-api/internal/shared/uid"
)

type ObjectStorage interface {
	Bucket(name string) (string, error)
	Put(ctx context.Context, bucket, object string, r io.Reader, size int64, contentType string) (sharedstorage.Object, error)
	Remove(ctx context.Context, bucket, object string) error
	RemoveMany(ctx context.Context, bucket string, objects []string) error
}

type FileObjectService struct {
	storage ObjectStorage
	names   shareduid.UIDGenerator
	maxSize int64
}

// NewFileObjectService names stored objects with ids from names. A maxSize
// of zero disables the size check.
func NewFileObjectService(storage ObjectStorage, names shareduid.UIDGenerator, maxSize int64) *FileObjectService {
	return &FileObjectService{storage: storage, names: names, maxSize: maxSize}
}

// Upload stores the file under "<id>.<ext>" and returns its public URL.
func (s *FileObjectService) Upload(ctx context.Context, upload vo.FileUpload) (vo.StoredFile, error) {
	if upload.Body == nil || upload.Size <= 0 {
		return vo.StoredFile{}, vo.ErrEmptyFile
	}
	if s.maxSize > 0 && upload.Size > s.maxSize {
		return vo.StoredFile{}, fmt.Errorf("%w: %d bytes exceeds %d", vo.ErrFileTooLarge, upload.Size, s.maxSize)
	}

	bucket, err := s.bucket(upload.Bucket)
	if err != nil {
		return vo.StoredFile{}, err
	}

	name, err := s.names.Generate(ctx)
	if err != nil {
		return vo.StoredFile{}, fmt.Errorf("service: failed to name object: %w", err)
	}
	if ext := objectExt(upload.OriginalName); ext != "" {
		name += ext
	}

	contentType := upload.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	obj, err := s.storage.Put(ctx, bucket, name, upload.Body, upload.Size, contentType)
	if err != nil {
		return vo.StoredFile{}, fmt.Errorf("service: failed to store %q: %w", upload.OriginalName, err)
	}

	return vo.StoredFile{
		Bucket:       obj.Bucket,
		ObjectName:   obj.Name,
		OriginalName: upload.OriginalName,
		Size:         obj.Size,
		URL:          obj.URL,
	}, nil
}

// Delete removes one object, failing if the bucket is missing, or several
// in one batch, skipping a missing bucket.
func (s *FileObjectService) Delete(ctx context.Context, bucket string, objectNames []string) error {
	names := make([]string, 0, len(objectNames))
	for _, n := range objectNames {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	if len(names) == 0 {
		return vo.ErrNoObjectNames
	}

	bucket, err := s.bucket(bucket)
	if err != nil {
		return err
	}

	if len(names) == 1 {
		err = s.storage.Remove(ctx, bucket, names[0])
	} else {
		err = s.storage.RemoveMany(ctx, bucket, names)
	}
	if errors.Is(err, sharedstorage.ErrBucketNotFound) {
		return fmt.Errorf("%w: %s", vo.ErrBucketNotFound, bucket)
	}
	return err
}

func (s *FileObjectService) bucket(name string) (string, error) {
	bucket, err := s.storage.Bucket(name)
	if errors.Is(err, sharedstorage.ErrNoBucket) {
		return "", vo.ErrBucketRequired
	}
	return bucket, err
}

func objectExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if ext == "." {
		return ""
	}
	return ext
}

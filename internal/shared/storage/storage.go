// Package storage stores uploaded files in an S3-compatible bucket through
// minio-go and builds their public URLs.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var (
	ErrBucketNotFound = errors.New("storage: bucket does not exist")
	ErrNoBucket       = errors.New("storage: no bucket given and no default configured")
)

// Client is the part of *minio.Client the storage uses.
type Client interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error
	SetBucketPolicy(ctx context.Context, bucketName, policy string) error
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
	RemoveObjects(ctx context.Context, bucketName string, objectsCh <-chan minio.ObjectInfo, opts minio.RemoveObjectsOptions) <-chan minio.RemoveObjectError
	EndpointURL() *url.URL
}

var _ Client = (*minio.Client)(nil)

// Options configures the bucket defaults and, for NewMinioClient, the
// connection.
type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Region    string
	UseSSL    bool

	DefaultBucket string

	// CustomDomain replaces the endpoint in object URLs, typically a reverse
	// proxy in front of the object store.
	CustomDomain string
}

// Object describes a stored file.
type Object struct {
	Bucket string
	Name   string
	Size   int64
	URL    string
}

// NewMinioClient dials nothing; minio-go connects lazily on first request.
func NewMinioClient(opts Options) (*minio.Client, error) {
	if strings.TrimSpace(opts.Endpoint) == "" {
		return nil, errors.New("storage: endpoint is required")
	}
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
		Region: opts.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("storage: failed to create minio client: %w", err)
	}
	return client, nil
}

type Storage struct {
	client        Client
	region        string
	defaultBucket string
	customDomain  string
	logger        *slog.Logger
}

func New(client Client, opts Options, logger *slog.Logger) (*Storage, error) {
	if client == nil {
		return nil, errors.New("storage: client is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Storage{
		client:        client,
		region:        opts.Region,
		defaultBucket: strings.TrimSpace(opts.DefaultBucket),
		customDomain:  strings.TrimRight(strings.TrimSpace(opts.CustomDomain), "/"),
		logger:        logger,
	}, nil
}

// Bucket resolves a blank name to the default bucket.
func (s *Storage) Bucket(name string) (string, error) {
	if name = strings.TrimSpace(name); name != "" {
		return name, nil
	}
	if s.defaultBucket == "" {
		return "", ErrNoBucket
	}
	return s.defaultBucket, nil
}

func (s *Storage) BucketExists(ctx context.Context, bucket string) (bool, error) {
	ok, err := s.client.BucketExists(ctx, bucket)
	if err != nil {
		return false, fmt.Errorf("storage: bucket exists %q: %w", bucket, err)
	}
	return ok, nil
}

// EnsureBucket creates bucket with a public-read policy when it is missing.
func (s *Storage) EnsureBucket(ctx context.Context, bucket string) error {
	ok, err := s.BucketExists(ctx, bucket)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}

	if err := s.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: s.region}); err != nil {
		// lost a creation race with another instance
		if exists, existsErr := s.client.BucketExists(ctx, bucket); existsErr == nil && exists {
			return nil
		}
		return fmt.Errorf("storage: make bucket %q: %w", bucket, err)
	}

	policy, err := PublicReadPolicy(bucket)
	if err != nil {
		return err
	}
	if err := s.client.SetBucketPolicy(ctx, bucket, policy); err != nil {
		return fmt.Errorf("storage: set policy on %q: %w", bucket, err)
	}

	s.logger.Info("bucket created", slog.String("bucket", bucket))
	return nil
}

// Put uploads an object into bucket, creating the bucket if needed.
func (s *Storage) Put(ctx context.Context, bucket, object string, r io.Reader, size int64, contentType string) (Object, error) {
	if err := s.EnsureBucket(ctx, bucket); err != nil {
		return Object{}, err
	}

	info, err := s.client.PutObject(ctx, bucket, object, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return Object{}, fmt.Errorf("storage: put %s/%s: %w", bucket, object, err)
	}

	return Object{
		Bucket: bucket,
		Name:   object,
		Size:   info.Size,
		URL:    s.ObjectURL(bucket, object),
	}, nil
}

// Remove deletes one object. The bucket must exist.
func (s *Storage) Remove(ctx context.Context, bucket, object string) error {
	ok, err := s.BucketExists(ctx, bucket)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
	}

	if err := s.client.RemoveObject(ctx, bucket, object, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("storage: remove %s/%s: %w", bucket, object, err)
	}
	return nil
}

// RemoveMany deletes objects in one batch. A missing bucket is not an error:
// there is nothing to delete.
func (s *Storage) RemoveMany(ctx context.Context, bucket string, objects []string) error {
	if len(objects) == 0 {
		return nil
	}
	ok, err := s.BucketExists(ctx, bucket)
	if err != nil {
		return err
	}
	if !ok {
		s.logger.Debug("skip batch delete, bucket missing", slog.String("bucket", bucket))
		return nil
	}

	ch := make(chan minio.ObjectInfo, len(objects))
	for _, name := range objects {
		ch <- minio.ObjectInfo{Key: name}
	}
	close(ch)

	var errs []error
	for rerr := range s.client.RemoveObjects(ctx, bucket, ch, minio.RemoveObjectsOptions{}) {
		errs = append(errs, fmt.Errorf("storage: remove %s/%s: %w", bucket, rerr.ObjectName, rerr.Err))
	}
	return errors.Join(errs...)
}

// ObjectURL is the public address of an object.
func (s *Storage) ObjectURL(bucket, object string) string {
	base := s.customDomain
	if base == "" {
		endpoint := s.client.EndpointURL()
		base = endpoint.Scheme + "://" + endpoint.Host
	}
	return base + "/" + url.PathEscape(bucket) + "/" + url.PathEscape(object)
}

type policyStatement struct {
	Effect    string              `json:"Effect"`
	Principal map[string][]string `json:"Principal"`
	Action    []string            `json:"Action"`
	Resource  []string            `json:"Resource"`
}

type policyDocument struct {
	Version   string            `json:"Version"`
	Statement []policyStatement `json:"Statement"`
}

// PublicReadPolicy lets anonymous clients list and read the bucket. Writes,
// deletes and multipart uploads stay restricted to the service credentials.
func PublicReadPolicy(bucket string) (string, error) {
	anyone := map[string][]string{"AWS": {"*"}}
	doc := policyDocument{
		Version: "2012-10-17",
		Statement: []policyStatement{
			{
				Effect:    "Allow",
				Principal: anyone,
				Action:    []string{"s3:GetBucketLocation", "s3:ListBucket"},
				Resource:  []string{"arn:aws:s3:::" + bucket},
			},
			{
				Effect:    "Allow",
				Principal: anyone,
				Action:    []string{"s3:GetObject"},
				Resource:  []string{"arn:aws:s3:::" + bucket + "/*"},
			},
		},
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("storage: encode policy: %w", err)
	}
	return string(raw), nil
}

// Package blobstore archives scanned pages in MinIO or any S3-compatible
// object store.
package blobstore

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/heartmarshall/wordsnap-backend/internal/config"
	"github.com/heartmarshall/wordsnap-backend/internal/domain"
)

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// Archive stores scan images under content-addressed keys.
type Archive struct {
	client *minio.Client
	bucket string
	prefix string
	log    *slog.Logger
}

// New connects to the configured endpoint.
func New(cfg config.StorageConfig, logger *slog.Logger) (*Archive, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("blobstore: create client: %w", err)
	}
	return NewArchive(client, cfg.Bucket, cfg.Prefix, logger), nil
}

// NewArchive wraps an existing client.
func NewArchive(client *minio.Client, bucket, prefix string, logger *slog.Logger) *Archive {
	return &Archive{
		client: client,
		bucket: bucket,
		prefix: prefix,
		log:    logger.With("adapter", "blobstore"),
	}
}

// EnsureBucket creates the bucket if it does not exist yet.
func (a *Archive) EnsureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("blobstore: bucket exists: %w", err)
	}
	if exists {
		return nil
	}
	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("blobstore: make bucket %s: %w", a.bucket, err)
	}
	a.log.InfoContext(ctx, "bucket created", slog.String("bucket", a.bucket))
	return nil
}

// Ping checks that the bucket is reachable.
func (a *Archive) Ping(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("blobstore: bucket exists: %w", err)
	}
	if !exists {
		return fmt.Errorf("blobstore: bucket %s: %w", a.bucket, domain.ErrNotFound)
	}
	return nil
}

// ObjectKey returns the content-addressed key of an image:
// <prefix>/<sha256>.<ext>.
func ObjectKey(prefix string, data []byte, mediaType string) string {
	sum := sha256.Sum256(data)
	ext, ok := extensions[strings.ToLower(mediaType)]
	if !ok {
		ext = ".bin"
	}
	return path.Join(prefix, hex.EncodeToString(sum[:])+ext)
}

// MediaTypeOf guesses the media type from an archived key.
func MediaTypeOf(key string) string {
	ext := path.Ext(key)
	for mt, e := range extensions {
		if e == ext {
			return mt
		}
	}
	return "application/octet-stream"
}

// PutScan stores the image and returns its key. Identical images map to the
// same key, so an existing object is left untouched.
func (a *Archive) PutScan(ctx context.Context, data []byte, mediaType string) (string, error) {
	key := ObjectKey(a.prefix, data, mediaType)

	if _, err := a.client.StatObject(ctx, a.bucket, key, minio.StatObjectOptions{}); err == nil {
		return key, nil
	} else if !isNotFound(err) {
		return "", fmt.Errorf("blobstore: stat %s: %w", key, err)
	}

	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: mediaType,
	})
	if err != nil {
		return "", fmt.Errorf("blobstore: put %s: %w", key, err)
	}

	a.log.DebugContext(ctx, "scan archived", slog.String("key", key), slog.Int("bytes", len(data)))
	return key, nil
}

// GetScan loads an archived image. A missing key returns domain.ErrNotFound.
func (a *Archive) GetScan(ctx context.Context, key string) (domain.ScanImage, error) {
	obj, err := a.client.GetObject(ctx, a.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return domain.ScanImage{}, mapError(key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return domain.ScanImage{}, mapError(key, err)
	}

	return domain.NewScanImage(MediaTypeOf(key), data), nil
}

func isNotFound(err error) bool {
	code := minio.ToErrorResponse(err).Code
	return code == "NoSuchKey" || code == "NotFound"
}

func mapError(key string, err error) error {
	if isNotFound(err) {
		return fmt.Errorf("blobstore: %s: %w", key, domain.ErrNotFound)
	}
	return fmt.Errorf("blobstore: get %s: %w", key, err)
}

/*
PURPOSE:
  Abstracts where the benchmark baseline snapshot lives.
  A path on disk by default, an object in a bucket for shared CI baselines.

REQUIREMENTS:
  User-specified:
  - Baseline location is configurable (--baseline).
  - Bootstrap copies the current snapshot verbatim when no baseline exists.

  Implementation-discovered:
  - The comparator needs raw bytes (bootstrap must be byte-identical),
    decoding happens in internal/bench.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Implementations: LocalStore (local.go), S3Store (s3.go)

ERROR HANDLING:
  - Absent objects return ErrNotFound; everything else is wrapped and returned.
*/

package storage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/daryltucker/libkit/internal/config"
)

// ErrNotFound is returned by Get when the baseline does not exist yet.
var ErrNotFound = errors.New("baseline not found")

// ErrInvalidLocation is returned for unparseable s3:// locations.
var ErrInvalidLocation = errors.New("invalid baseline location")

// Store reads and writes one snapshot blob.
type Store interface {
	// Get returns the stored bytes or ErrNotFound.
	Get(ctx context.Context) ([]byte, error)
	// Put replaces the stored bytes.
	Put(ctx context.Context, data []byte) error
	// Location describes the blob for logs.
	Location() string
}

// Open picks a Store for location. s3://bucket/key goes to S3, anything else
// is a file path resolved against root.
func Open(ctx context.Context, location, root string, s3cfg config.S3Config, opts ...S3Option) (Store, error) {
	if !strings.HasPrefix(location, "s3://") {
		return NewLocalStore(location, root), nil
	}

	bucket, key, err := ParseS3URL(location)
	if err != nil {
		return nil, err
	}
	return NewS3Store(ctx, S3Config{
		Bucket:         bucket,
		Key:            key,
		Region:         s3cfg.Region,
		Endpoint:       s3cfg.Endpoint,
		AccessKeyID:    s3cfg.AccessKeyID,
		SecretKey:      s3cfg.SecretKey,
		ForcePathStyle: s3cfg.ForcePathStyle,
	}, opts...)
}

// ParseS3URL splits s3://bucket/some/key.json into bucket and key.
func ParseS3URL(raw string) (bucket, key string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("%w: %v", ErrInvalidLocation, err)
	}
	if u.Scheme != "s3" || u.Host == "" {
		return "", "", fmt.Errorf("%w: %s", ErrInvalidLocation, raw)
	}
	key = strings.TrimPrefix(u.Path, "/")
	if key == "" || strings.HasSuffix(key, "/") || strings.Contains(key, "..") {
		return "", "", fmt.Errorf("%w: missing or invalid object key in %s", ErrInvalidLocation, raw)
	}
	return u.Host, key, nil
}

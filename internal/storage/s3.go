package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// S3Client defines the subset of S3 operations used by S3Store.
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Config locates one baseline object.
type S3Config struct {
	Bucket         string
	Key            string
	Region         string
	AccessKeyID    string
	SecretKey      string
	Endpoint       string // Optional: for S3-compatible services
	ForcePathStyle bool   // For S3-compatible services like MinIO
}

// S3Option configures S3Store construction.
type S3Option func(*s3Options)

type s3Options struct {
	client        S3Client
	configOptions []func(*config.LoadOptions) error
	clientOptions []func(*s3.Options)
}

// WithS3Client sets a pre-configured client. Useful for testing with fakes.
func WithS3Client(client S3Client) S3Option {
	return func(o *s3Options) {
		o.client = client
	}
}

// WithS3ConfigOption adds a custom AWS config option.
func WithS3ConfigOption(option func(*config.LoadOptions) error) S3Option {
	return func(o *s3Options) {
		o.configOptions = append(o.configOptions, option)
	}
}

// WithS3ClientOption adds a custom S3 client option.
func WithS3ClientOption(option func(*s3.Options)) S3Option {
	return func(o *s3Options) {
		o.clientOptions = append(o.clientOptions, option)
	}
}

// S3Store keeps the baseline as a single S3 object.
type S3Store struct {
	client S3Client
	bucket string
	key    string
}

// NewS3Store builds a store, loading AWS configuration unless a client is injected.
func NewS3Store(ctx context.Context, cfg S3Config, opts ...S3Option) (*S3Store, error) {
	if cfg.Bucket == "" || cfg.Key == "" {
		return nil, fmt.Errorf("%w: bucket and key are required", ErrInvalidLocation)
	}

	options := &s3Options{}
	for _, opt := range opts {
		opt(options)
	}

	client := options.client
	if client == nil {
		var awsOptions []func(*config.LoadOptions) error
		if cfg.Region != "" {
			awsOptions = append(awsOptions, config.WithRegion(cfg.Region))
		}
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			awsOptions = append(awsOptions,
				config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
					cfg.AccessKeyID,
					cfg.SecretKey,
					"",
				)),
			)
		}
		awsOptions = append(awsOptions, options.configOptions...)

		awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}

		client = s3.NewFromConfig(awsConfig, func(o *s3.Options) {
			if cfg.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			o.UsePathStyle = cfg.ForcePathStyle
			for _, opt := range options.clientOptions {
				opt(o)
			}
		})
	}

	return &S3Store{
		client: client,
		bucket: cfg.Bucket,
		key:    cfg.Key,
	}, nil
}

// Get downloads the baseline object.
func (s *S3Store) Get(ctx context.Context) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, s.Location())
		}
		return nil, fmt.Errorf("failed to get %s: %w", s.Location(), err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.Location(), err)
	}
	return data, nil
}

// Put uploads data as the new baseline object.
func (s *S3Store) Put(ctx context.Context, data []byte) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s.key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", s.Location(), err)
	}
	return nil
}

// Location is the s3:// URL of the object.
func (s *S3Store) Location() string {
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.key)
}

func isNotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return true
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchKey", "NotFound":
			return true
		}
	}
	return false
}

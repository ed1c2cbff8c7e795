package storage

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/libkit/internal/config"
)

type fakeS3 struct {
	objects map[string][]byte
	puts    int
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}}
}

func (f *fakeS3) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)]
	if !ok {
		return nil, &types.NoSuchKey{Message: aws.String("no such key")}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.puts++
	f.objects[aws.ToString(in.Bucket)+"/"+aws.ToString(in.Key)] = data
	return &s3.PutObjectOutput{}, nil
}

func TestLocalStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	store := NewLocalStore("benchmarks/baseline.json", root)
	assert.Equal(t, filepath.Join(root, "benchmarks", "baseline.json"), store.Location())

	_, err := store.Get(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	payload := []byte("{\"suites\": []}\n")
	require.NoError(t, store.Put(ctx, payload))

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	onDisk, err := os.ReadFile(store.Location())
	require.NoError(t, err)
	assert.Equal(t, payload, onDisk)
}

func TestLocalStore_AbsolutePathIgnoresRoot(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "base.json")
	store := NewLocalStore(abs, "/somewhere/else")
	assert.Equal(t, abs, store.Location())
}

func TestS3Store_RoundTrip(t *testing.T) {
	ctx := context.Background()
	fake := newFakeS3()

	store, err := NewS3Store(ctx, S3Config{Bucket: "ci", Key: "bench/baseline.json"}, WithS3Client(fake))
	require.NoError(t, err)
	assert.Equal(t, "s3://ci/bench/baseline.json", store.Location())

	_, err = store.Get(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Put(ctx, []byte("data")))
	assert.Equal(t, 1, fake.puts)

	got, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("data"), got)
}

func TestNewS3Store_RequiresBucketAndKey(t *testing.T) {
	_, err := NewS3Store(context.Background(), S3Config{Bucket: "b"}, WithS3Client(newFakeS3()))
	assert.ErrorIs(t, err, ErrInvalidLocation)
}

func TestParseS3URL(t *testing.T) {
	bucket, key, err := ParseS3URL("s3://perf-results/libkit/baseline.json")
	require.NoError(t, err)
	assert.Equal(t, "perf-results", bucket)
	assert.Equal(t, "libkit/baseline.json", key)

	for _, bad := range []string{"s3://bucket", "s3://bucket/", "s3:///key.json", "s3://b/../x.json"} {
		_, _, err := ParseS3URL(bad)
		assert.ErrorIs(t, err, ErrInvalidLocation, bad)
	}
}

func TestOpen_SelectsBackend(t *testing.T) {
	ctx := context.Background()

	local, err := Open(ctx, "benchmarks/baseline.json", "/repo", config.S3Config{})
	require.NoError(t, err)
	assert.IsType(t, &LocalStore{}, local)

	remote, err := Open(ctx, "s3://ci/baseline.json", "/repo", config.S3Config{Region: "eu-west-1"}, WithS3Client(newFakeS3()))
	require.NoError(t, err)
	assert.IsType(t, &S3Store{}, remote)
	assert.Equal(t, "s3://ci/baseline.json", remote.Location())
}

package receipts

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/go-faster/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xenking/pos-engine/internal/domain/snapshot"
)

func TestFileStore(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = s.Get(ctx, "TRX-1_paid.json")
	require.ErrorIs(t, err, snapshot.ErrNotFound)

	require.NoError(t, s.Put(ctx, "TRX-1_paid.json", []byte(`{"version":2}`)))
	require.NoError(t, s.Put(ctx, "TRX-1_paid.json", []byte(`{"version":3}`)))

	data, err := s.Get(ctx, "TRX-1_paid.json")
	require.NoError(t, err)
	assert.Equal(t, `{"version":3}`, string(data))
}

func TestFileStoreRejectsPathKeys(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "../etc/passwd", `a\b`, ".hidden"} {
		assert.Error(t, s.Put(context.Background(), key, []byte("x")), key)
	}
}

type fakeS3 struct {
	objects map[string][]byte
	types   map[string]string
}

func (f *fakeS3) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[*in.Bucket+"/"+*in.Key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[*in.Bucket+"/"+*in.Key] = data
	f.types[*in.Key] = *in.ContentType
	return &s3.PutObjectOutput{}, nil
}

func TestS3Store(t *testing.T) {
	ctx := context.Background()
	fake := &fakeS3{objects: map[string][]byte{}, types: map[string]string{}}
	s := &S3Store{client: fake, bucket: "receipts", prefix: "store-1"}

	_, err := s.Get(ctx, "TRX-1_pending.json")
	require.ErrorIs(t, err, snapshot.ErrNotFound)

	require.NoError(t, s.Put(ctx, "TRX-1_pending.json", []byte("{}")))
	assert.Contains(t, fake.objects, "receipts/store-1/TRX-1_pending.json")
	assert.Equal(t, "application/json", fake.types["store-1/TRX-1_pending.json"])

	data, err := s.Get(ctx, "TRX-1_pending.json")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

type fakeRedis struct {
	data   map[string][]byte
	getErr error
	sets   int
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(string(v), nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	f.sets++
	f.data[key] = value.([]byte)
	return redis.NewStatusResult("OK", nil)
}

type countingStore struct {
	FileStore
	gets int
}

func (s *countingStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.gets++
	return s.FileStore.Get(ctx, key)
}

func TestCache(t *testing.T) {
	ctx := context.Background()
	backing := &countingStore{FileStore: FileStore{dir: t.TempDir()}}
	rdb := &fakeRedis{data: map[string][]byte{}}
	c := NewCache(rdb, backing, time.Hour)

	_, err := c.Get(ctx, "TRX-1_paid.json")
	require.ErrorIs(t, err, snapshot.ErrNotFound)

	require.NoError(t, c.Put(ctx, "TRX-1_paid.json", []byte("paid")))
	assert.Equal(t, []byte("paid"), rdb.data["pos:receipt:TRX-1_paid.json"])

	gets := backing.gets
	data, err := c.Get(ctx, "TRX-1_paid.json")
	require.NoError(t, err)
	assert.Equal(t, "paid", string(data))
	assert.Equal(t, gets, backing.gets, "hit must not reach the backing store")

	rdb.getErr = errors.New("connection refused")
	data, err = c.Get(ctx, "TRX-1_paid.json")
	require.NoError(t, err)
	assert.Equal(t, "paid", string(data))
	assert.Equal(t, gets+1, backing.gets)
}

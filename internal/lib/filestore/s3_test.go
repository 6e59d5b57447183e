package filestore

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/edu-consultancy/internal/config"
)

type mockS3 struct {
	mock.Mock
}

func (m *mockS3) HeadObject(ctx context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	args := m.Called(ctx, *in.Key)
	out, _ := args.Get(0).(*s3.HeadObjectOutput)
	return out, args.Error(1)
}

func (m *mockS3) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, *in.Key)
	out, _ := args.Get(0).(*s3.GetObjectOutput)
	return out, args.Error(1)
}

func (m *mockS3) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	args := m.Called(ctx, *in.Key)
	out, _ := args.Get(0).(*s3.DeleteObjectOutput)
	return out, args.Error(1)
}

type mockUploader struct {
	mock.Mock
}

func (m *mockUploader) Upload(ctx context.Context, in *s3.PutObjectInput, _ ...func(*manager.Uploader)) (*manager.UploadOutput, error) {
	args := m.Called(ctx, *in.Key, *in.ContentType)
	out, _ := args.Get(0).(*manager.UploadOutput)
	return out, args.Error(1)
}

func newTestS3() (*S3, *mockS3, *mockUploader) {
	client := &mockS3{}
	up := &mockUploader{}
	return &S3{client: client, uploader: up, bucket: "images"}, client, up
}

func TestS3_Exists(t *testing.T) {
	store, client, _ := newTestS3()
	ctx := context.Background()

	client.On("HeadObject", ctx, "blog/a.jpg").Return(&s3.HeadObjectOutput{}, nil).Once()
	client.On("HeadObject", ctx, "blog/b.jpg").Return(nil, &types.NotFound{}).Once()
	client.On("HeadObject", ctx, "blog/c.jpg").Return(nil, errors.New("network down")).Once()

	ok, err := store.Exists(ctx, "blog/a.jpg")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Exists(ctx, "blog/b.jpg")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = store.Exists(ctx, "blog/c.jpg")
	require.Error(t, err)

	client.AssertExpectations(t)
}

func TestS3_UploadFile(t *testing.T) {
	store, _, up := newTestS3()
	ctx := context.Background()

	up.On("Upload", ctx, "product/course.png", "image/png").Return(&manager.UploadOutput{}, nil).Once()

	name, err := store.UploadFile(ctx, "product", Upload{
		Filename: "course.png",
		Size:     3,
		Content:  bytes.NewReader([]byte("png")),
	})
	require.NoError(t, err)
	assert.Equal(t, "course.png", name)
	up.AssertExpectations(t)
}

func TestS3_DeleteIfExists(t *testing.T) {
	store, client, _ := newTestS3()
	ctx := context.Background()

	client.On("HeadObject", ctx, "blog/old.jpg").Return(&s3.HeadObjectOutput{}, nil).Once()
	client.On("DeleteObject", ctx, "blog/old.jpg").Return(&s3.DeleteObjectOutput{}, nil).Once()
	client.On("HeadObject", ctx, "blog/gone.jpg").Return(nil, &types.NotFound{}).Once()

	deleted, err := store.DeleteIfExists(ctx, "blog/old.jpg")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = store.DeleteIfExists(ctx, "blog/gone.jpg")
	require.NoError(t, err)
	assert.False(t, deleted)

	client.AssertExpectations(t)
	client.AssertNotCalled(t, "DeleteObject", ctx, "blog/gone.jpg")
}

func TestS3_Open(t *testing.T) {
	store, client, _ := newTestS3()
	ctx := context.Background()

	client.On("GetObject", ctx, "blog/a.jpg").
		Return(&s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader([]byte("data")))}, nil).Once()
	client.On("GetObject", ctx, "blog/missing.jpg").Return(nil, &types.NoSuchKey{}).Once()

	rc, err := store.Open(ctx, "blog/a.jpg")
	require.NoError(t, err)
	got, _ := io.ReadAll(rc)
	assert.Equal(t, "data", string(got))

	_, err = store.Open(ctx, "blog/missing.jpg")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestNewS3_RequiresBucket(t *testing.T) {
	_, err := NewS3(context.Background(), config.S3Config{Region: "us-east-1"})
	require.Error(t, err)
}

func TestNew_SelectsLocal(t *testing.T) {
	cfg := config.DefaultStorageConfig()
	cfg.RootDir = t.TempDir()

	store, err := New(context.Background(), cfg)
	require.NoError(t, err)
	_, ok := store.(*Local)
	assert.True(t, ok)

	cfg.Driver = "ftp"
	_, err = New(context.Background(), cfg)
	require.Error(t, err)
}

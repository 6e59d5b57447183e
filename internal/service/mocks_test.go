package service

import (
	"context"
	"io"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"

	"github.com/deppfellow/edu-consultancy/internal/lib/filestore"
	"github.com/deppfellow/edu-consultancy/internal/model"
)

func nopLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

// findResult unpacks the comma-ok triple registered on a mock.
func findResult[T any](args mock.Arguments) (*T, bool, error) {
	v, _ := args.Get(0).(*T)
	return v, args.Bool(1), args.Error(2)
}

func saveResult[T any](args mock.Arguments) (*T, error) {
	v, _ := args.Get(0).(*T)
	return v, args.Error(1)
}

type mockBlogStore struct{ mock.Mock }

func (m *mockBlogStore) FindByID(ctx context.Context, id int64) (*model.Blog, bool, error) {
	return findResult[model.Blog](m.Called(ctx, id))
}

func (m *mockBlogStore) FindAll(ctx context.Context) ([]model.Blog, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]model.Blog)
	return v, args.Error(1)
}

func (m *mockBlogStore) FindByUserID(ctx context.Context, userID int64) ([]model.Blog, error) {
	args := m.Called(ctx, userID)
	v, _ := args.Get(0).([]model.Blog)
	return v, args.Error(1)
}

func (m *mockBlogStore) Save(ctx context.Context, b *model.Blog) (*model.Blog, error) {
	return saveResult[model.Blog](m.Called(ctx, b))
}

func (m *mockBlogStore) Delete(ctx context.Context, b *model.Blog) error {
	return m.Called(ctx, b).Error(0)
}

type mockProductStore struct{ mock.Mock }

func (m *mockProductStore) FindByID(ctx context.Context, id int64) (*model.Product, bool, error) {
	return findResult[model.Product](m.Called(ctx, id))
}

func (m *mockProductStore) FindAll(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]model.Product)
	return v, args.Error(1)
}

func (m *mockProductStore) Save(ctx context.Context, p *model.Product) (*model.Product, error) {
	return saveResult[model.Product](m.Called(ctx, p))
}

func (m *mockProductStore) Delete(ctx context.Context, p *model.Product) error {
	return m.Called(ctx, p).Error(0)
}

type mockContactStore struct{ mock.Mock }

func (m *mockContactStore) FindByID(ctx context.Context, id int64) (*model.Contact, bool, error) {
	return findResult[model.Contact](m.Called(ctx, id))
}

func (m *mockContactStore) FindAll(ctx context.Context) ([]model.Contact, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]model.Contact)
	return v, args.Error(1)
}

func (m *mockContactStore) FindByUserID(ctx context.Context, userID int64) ([]model.Contact, error) {
	args := m.Called(ctx, userID)
	v, _ := args.Get(0).([]model.Contact)
	return v, args.Error(1)
}

func (m *mockContactStore) Save(ctx context.Context, c *model.Contact) (*model.Contact, error) {
	return saveResult[model.Contact](m.Called(ctx, c))
}

func (m *mockContactStore) Delete(ctx context.Context, c *model.Contact) error {
	return m.Called(ctx, c).Error(0)
}

type mockFeedbackStore struct{ mock.Mock }

func (m *mockFeedbackStore) FindByID(ctx context.Context, id int64) (*model.Feedback, bool, error) {
	return findResult[model.Feedback](m.Called(ctx, id))
}

func (m *mockFeedbackStore) FindAll(ctx context.Context) ([]model.Feedback, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]model.Feedback)
	return v, args.Error(1)
}

func (m *mockFeedbackStore) FindByUserID(ctx context.Context, userID int64) ([]model.Feedback, error) {
	args := m.Called(ctx, userID)
	v, _ := args.Get(0).([]model.Feedback)
	return v, args.Error(1)
}

func (m *mockFeedbackStore) Save(ctx context.Context, f *model.Feedback) (*model.Feedback, error) {
	return saveResult[model.Feedback](m.Called(ctx, f))
}

func (m *mockFeedbackStore) Delete(ctx context.Context, f *model.Feedback) error {
	return m.Called(ctx, f).Error(0)
}

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) FindByID(ctx context.Context, id int64) (*model.User, bool, error) {
	return findResult[model.User](m.Called(ctx, id))
}

func (m *mockUserStore) FindAll(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]model.User)
	return v, args.Error(1)
}

func (m *mockUserStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserStore) Save(ctx context.Context, u *model.User) (*model.User, error) {
	return saveResult[model.User](m.Called(ctx, u))
}

func (m *mockUserStore) DeleteByID(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockFileStore struct{ mock.Mock }

func (m *mockFileStore) Exists(ctx context.Context, path string) (bool, error) {
	args := m.Called(ctx, path)
	return args.Bool(0), args.Error(1)
}

func (m *mockFileStore) UploadFile(ctx context.Context, folder string, upload filestore.Upload) (string, error) {
	args := m.Called(ctx, folder, upload.Filename)
	return args.String(0), args.Error(1)
}

func (m *mockFileStore) DeleteIfExists(ctx context.Context, path string) (bool, error) {
	args := m.Called(ctx, path)
	return args.Bool(0), args.Error(1)
}

func (m *mockFileStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	args := m.Called(ctx, path)
	rc, _ := args.Get(0).(io.ReadCloser)
	return rc, args.Error(1)
}

type mockEnqueuer struct{ mock.Mock }

func (m *mockEnqueuer) Enqueue(task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(task.Type())
	info, _ := args.Get(0).(*asynq.TaskInfo)
	return info, args.Error(1)
}

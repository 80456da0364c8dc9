package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"photoshare/internal/domain/entity"
	"photoshare/internal/domain/model"
	"photoshare/internal/domain/repository/broker"
)

type MockNormalizer struct {
	mock.Mock
}

func (m *MockNormalizer) Normalize(data []byte) (entity.Image, error) {
	args := m.Called(data)

	return args.Get(0).(entity.Image), args.Error(1)
}

type MockMinioUploader struct {
	mock.Mock
}

func (m *MockMinioUploader) Put(ctx context.Context, key string, data []byte, contentType string) error {
	args := m.Called(ctx, key, data, contentType)

	return args.Error(0)
}

type MockMinioRemover struct {
	mock.Mock
}

func (m *MockMinioRemover) Remove(ctx context.Context, key string) error {
	args := m.Called(ctx, key)

	return args.Error(0)
}

type MockSigner struct {
	mock.Mock
}

func (m *MockSigner) SignedGetURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	args := m.Called(ctx, key, ttl)

	return args.String(0), args.Error(1)
}

type MockBlobLister struct {
	mock.Mock
}

func (m *MockBlobLister) ListBlobs(ctx context.Context) ([]entity.StoredBlob, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.StoredBlob), args.Error(1)
}

type MockWriter struct {
	mock.Mock
}

func (m *MockWriter) InsertPost(ctx context.Context, post *model.Post) error {
	args := m.Called(ctx, post)

	return args.Error(0)
}

func (m *MockWriter) InsertUser(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

type MockRetriever struct {
	mock.Mock
}

func (m *MockRetriever) PostByID(ctx context.Context, id string) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockRetriever) UserByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*model.User), args.Error(1)
}

type MockLister struct {
	mock.Mock
}

func (m *MockLister) AllPosts(ctx context.Context) ([]model.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *MockLister) AllUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockLister) SearchPosts(ctx context.Context, term string) ([]model.Post, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]model.Post), args.Error(1)
}

type MockRemover struct {
	mock.Mock
}

func (m *MockRemover) DeletePost(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)

	return args.Get(0).(int64), args.Error(1)
}

type MockKeyIndex struct {
	mock.Mock
}

func (m *MockKeyIndex) IsReferenced(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)

	return args.Bool(0), args.Error(1)
}

func (m *MockKeyIndex) ReferencedKeys(ctx context.Context) (map[string]struct{}, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(map[string]struct{}), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, message string) error {
	args := m.Called(ctx, message)

	return args.Error(0)
}

type MockMessage struct {
	mock.Mock
	body string
}

func (m *MockMessage) Body() string {
	return m.body
}

func (m *MockMessage) Ack() error {
	args := m.Called()

	return args.Error(0)
}

func (m *MockMessage) Nack() error {
	args := m.Called()

	return args.Error(0)
}

type MockReceiver struct {
	mock.Mock
}

func (m *MockReceiver) Messages(ctx context.Context, consumerName string) (<-chan broker.Message, error) {
	args := m.Called(ctx, consumerName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(<-chan broker.Message), args.Error(1)
}

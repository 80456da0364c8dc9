package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"photoshare/internal/domain/dto"
)

type MockPostUploader struct {
	mock.Mock
}

func (m *MockPostUploader) Upload(ctx context.Context, post dto.NewPost) (string, error) {
	args := m.Called(ctx, post)

	return args.String(0), args.Error(1)
}

type MockUserUploader struct {
	mock.Mock
}

func (m *MockUserUploader) Upload(ctx context.Context, user dto.NewUser) (string, error) {
	args := m.Called(ctx, user)

	return args.String(0), args.Error(1)
}

type MockPostLister struct {
	mock.Mock
}

func (m *MockPostLister) List(ctx context.Context) ([]dto.PostView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]dto.PostView), args.Error(1)
}

type MockUserLister struct {
	mock.Mock
}

func (m *MockUserLister) List(ctx context.Context) ([]dto.UserView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]dto.UserView), args.Error(1)
}

type MockPostGetter struct {
	mock.Mock
}

func (m *MockPostGetter) Get(ctx context.Context, id string) (dto.PostView, error) {
	args := m.Called(ctx, id)

	return args.Get(0).(dto.PostView), args.Error(1)
}

type MockUserGetter struct {
	mock.Mock
}

func (m *MockUserGetter) Get(ctx context.Context, id string) (dto.UserView, error) {
	args := m.Called(ctx, id)

	return args.Get(0).(dto.UserView), args.Error(1)
}

type MockPostDeleter struct {
	mock.Mock
}

func (m *MockPostDeleter) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

type MockPostSearcher struct {
	mock.Mock
}

func (m *MockPostSearcher) Search(ctx context.Context, term string) ([]dto.PostView, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]dto.PostView), args.Error(1)
}

type mocks struct {
	postUploader *MockPostUploader
	postLister   *MockPostLister
	postGetter   *MockPostGetter
	postDeleter  *MockPostDeleter
	postSearcher *MockPostSearcher
	userUploader *MockUserUploader
	userLister   *MockUserLister
	userGetter   *MockUserGetter
}

func newMocks() *mocks {
	return &mocks{
		postUploader: new(MockPostUploader),
		postLister:   new(MockPostLister),
		postGetter:   new(MockPostGetter),
		postDeleter:  new(MockPostDeleter),
		postSearcher: new(MockPostSearcher),
		userUploader: new(MockUserUploader),
		userLister:   new(MockUserLister),
		userGetter:   new(MockUserGetter),
	}
}

func (m *mocks) usecases() Usecases {
	return Usecases{
		PostUploader: m.postUploader,
		PostLister:   m.postLister,
		PostGetter:   m.postGetter,
		PostDeleter:  m.postDeleter,
		PostSearcher: m.postSearcher,
		UserUploader: m.userUploader,
		UserLister:   m.userLister,
		UserGetter:   m.userGetter,
	}
}

package setting_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/levy-tracker/backend/internal/application/usecase/setting"
	"github.com/levy-tracker/backend/internal/domain/entity"
	domainerror "github.com/levy-tracker/backend/internal/domain/error"
)

type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) Get(ctx context.Context, key string) (*entity.RuntimeSetting, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RuntimeSetting), args.Error(1)
}

func (m *MockSettingRepository) Upsert(ctx context.Context, s *entity.RuntimeSetting) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

type MockSettingCache struct {
	mock.Mock
}

func (m *MockSettingCache) Get(ctx context.Context, key string) (int64, bool, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Bool(1), args.Error(2)
}

func (m *MockSettingCache) Set(ctx context.Context, key string, value int64, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockSettingCache) Invalidate(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

var bounds = entity.TimeoutBounds{MinMs: 5000, MaxMs: 300000, DefaultMs: 300000}

type SettingUseCaseTestSuite struct {
	suite.Suite
	ctx   context.Context
	repo  *MockSettingRepository
	cache *MockSettingCache
	get   *setting.GetMutationTimeoutUseCase
	set   *setting.UpdateMutationTimeoutUseCase
}

func (s *SettingUseCaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = new(MockSettingRepository)
	s.cache = new(MockSettingCache)
	s.get = setting.NewGetMutationTimeoutUseCase(s.repo, s.cache, bounds, time.Minute)
	s.set = setting.NewUpdateMutationTimeoutUseCase(s.repo, s.cache, bounds)
}

func (s *SettingUseCaseTestSuite) TestGet_DefaultWhenUnset() {
	s.cache.On("Get", s.ctx, entity.RecordsMutationTimeoutKey).Return(int64(0), false, nil).Once()
	s.repo.On("Get", s.ctx, entity.RecordsMutationTimeoutKey).Return(nil, domainerror.ErrSettingNotFound).Once()

	out, err := s.get.Execute(s.ctx)

	s.Require().NoError(err)
	s.Equal(int64(300000), out.TimeoutMs)
	s.False(out.Stored)
	s.repo.AssertExpectations(s.T())
	s.cache.AssertExpectations(s.T())
}

func (s *SettingUseCaseTestSuite) TestGet_ClampsStoredValueAndFillsCache() {
	s.cache.On("Get", s.ctx, entity.RecordsMutationTimeoutKey).Return(int64(0), false, nil).Once()
	s.repo.On("Get", s.ctx, entity.RecordsMutationTimeoutKey).
		Return(&entity.RuntimeSetting{Key: entity.RecordsMutationTimeoutKey, Value: 1000}, nil).Once()
	s.cache.On("Set", s.ctx, entity.RecordsMutationTimeoutKey, int64(1000), time.Minute).Return(nil).Once()

	out, err := s.get.Execute(s.ctx)

	s.Require().NoError(err)
	s.Equal(int64(5000), out.TimeoutMs)
	s.True(out.Stored)
	s.cache.AssertExpectations(s.T())
}

func (s *SettingUseCaseTestSuite) TestGet_CacheHitSkipsDatabase() {
	s.cache.On("Get", s.ctx, entity.RecordsMutationTimeoutKey).Return(int64(42000), true, nil).Once()

	out, err := s.get.Execute(s.ctx)

	s.Require().NoError(err)
	s.Equal(int64(42000), out.TimeoutMs)
	s.repo.AssertNotCalled(s.T(), "Get", mock.Anything, mock.Anything)
}

func (s *SettingUseCaseTestSuite) TestGet_CacheFailureFallsBackToDatabase() {
	s.cache.On("Get", s.ctx, entity.RecordsMutationTimeoutKey).Return(int64(0), false, errors.New("connection refused")).Once()
	s.repo.On("Get", s.ctx, entity.RecordsMutationTimeoutKey).
		Return(&entity.RuntimeSetting{Key: entity.RecordsMutationTimeoutKey, Value: 60000}, nil).Once()
	s.cache.On("Set", s.ctx, entity.RecordsMutationTimeoutKey, int64(60000), time.Minute).Return(errors.New("connection refused")).Once()

	out, err := s.get.Execute(s.ctx)

	s.Require().NoError(err)
	s.Equal(int64(60000), out.TimeoutMs)
}

func (s *SettingUseCaseTestSuite) TestMutationTimeout_DefaultOnStoreFailure() {
	s.cache.On("Get", s.ctx, entity.RecordsMutationTimeoutKey).Return(int64(0), false, nil).Once()
	s.repo.On("Get", s.ctx, entity.RecordsMutationTimeoutKey).Return(nil, assert.AnError).Once()

	s.Equal(300*time.Second, s.get.MutationTimeout(s.ctx))
}

func (s *SettingUseCaseTestSuite) TestUpdate_RejectsOutOfRange() {
	for _, ms := range []int64{4999, 300001, 0, -1} {
		_, err := s.set.Execute(s.ctx, setting.UpdateMutationTimeoutInput{TimeoutMs: ms})

		s.Require().Error(err)
		var settingErr *domainerror.SettingError
		s.Require().ErrorAs(err, &settingErr)
		s.Equal(domainerror.ErrCodeTimeoutOutOfRange, settingErr.Code)
		s.ErrorIs(err, domainerror.ErrTimeoutOutOfRange)
	}
	s.repo.AssertNotCalled(s.T(), "Upsert", mock.Anything, mock.Anything)
}

func (s *SettingUseCaseTestSuite) TestUpdate_StoresAndInvalidates() {
	s.repo.On("Upsert", s.ctx, mock.MatchedBy(func(rs *entity.RuntimeSetting) bool {
		return rs.Key == entity.RecordsMutationTimeoutKey && rs.Value == 5000
	})).Return(nil).Once()
	s.cache.On("Invalidate", s.ctx, entity.RecordsMutationTimeoutKey).Return(nil).Once()

	out, err := s.set.Execute(s.ctx, setting.UpdateMutationTimeoutInput{TimeoutMs: 5000})

	s.Require().NoError(err)
	s.Equal(int64(5000), out.TimeoutMs)
	s.repo.AssertExpectations(s.T())
	s.cache.AssertExpectations(s.T())
}

func (s *SettingUseCaseTestSuite) TestUpdate_StoreFailure() {
	s.repo.On("Upsert", s.ctx, mock.Anything).Return(assert.AnError).Once()

	_, err := s.set.Execute(s.ctx, setting.UpdateMutationTimeoutInput{TimeoutMs: 10000})

	s.Require().Error(err)
	s.ErrorIs(err, assert.AnError)
	s.cache.AssertNotCalled(s.T(), "Invalidate", mock.Anything, mock.Anything)
}

func TestSettingUseCaseTestSuite(t *testing.T) {
	suite.Run(t, new(SettingUseCaseTestSuite))
}

func TestGetWithoutCache(t *testing.T) {
	repo := new(MockSettingRepository)
	uc := setting.NewGetMutationTimeoutUseCase(repo, nil, bounds, 0)
	ctx := context.Background()

	repo.On("Get", ctx, entity.RecordsMutationTimeoutKey).
		Return(&entity.RuntimeSetting{Key: entity.RecordsMutationTimeoutKey, Value: 999999}, nil).Once()

	assert.Equal(t, 300*time.Second, uc.MutationTimeout(ctx))
}

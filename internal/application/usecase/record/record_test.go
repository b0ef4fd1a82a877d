package record

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/levy-tracker/backend/internal/application/adapter"
	"github.com/levy-tracker/backend/internal/domain/entity"
	domainerror "github.com/levy-tracker/backend/internal/domain/error"
	"github.com/levy-tracker/backend/internal/domain/identity"
	"github.com/levy-tracker/backend/internal/domain/layout"
	"github.com/levy-tracker/backend/internal/domain/template"
)

type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) Create(ctx context.Context, rec *entity.Record, opts adapter.MutationOptions) error {
	args := m.Called(ctx, rec, opts)
	return args.Error(0)
}

func (m *MockRecordRepository) Replace(ctx context.Context, rec *entity.Record, opts adapter.MutationOptions) error {
	args := m.Called(ctx, rec, opts)
	return args.Error(0)
}

func (m *MockRecordRepository) Delete(ctx context.Context, id uuid.UUID, opts adapter.MutationOptions) error {
	args := m.Called(ctx, id, opts)
	return args.Error(0)
}

func (m *MockRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Record), args.Error(1)
}

func (m *MockRecordRepository) FindByUser(ctx context.Context, userID string) ([]*entity.RecordSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.RecordSummary), args.Error(1)
}

func (m *MockRecordRepository) FindByUserAndYear(ctx context.Context, userID, yearLabel string, excludeID *uuid.UUID) (*entity.RecordSummary, error) {
	args := m.Called(ctx, userID, yearLabel, excludeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.RecordSummary), args.Error(1)
}

type fixedTimeout time.Duration

func (f fixedTimeout) MutationTimeout(context.Context) time.Duration { return time.Duration(f) }

const testUser = "user-1"

type RecordUseCaseTestSuite struct {
	suite.Suite
	ctx       context.Context
	repo      *MockRecordRepository
	opts      adapter.MutationOptions
	create    *CreateRecordUseCase
	update    *UpdateRecordUseCase
	del       *DeleteRecordUseCase
	layouts   *GetRecordLayoutUseCase
	duplicate *DuplicateRecordUseCase
}

func (s *RecordUseCaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = new(MockRecordRepository)
	s.opts = adapter.MutationOptions{Timeout: 5 * time.Second}

	reg := template.Default()
	assignor := identity.NewAssignor(reg)
	timeouts := fixedTimeout(5 * time.Second)

	s.create = NewCreateRecordUseCase(s.repo, timeouts, assignor, "PKR")
	s.del = NewDeleteRecordUseCase(s.repo, timeouts)
	s.update = NewUpdateRecordUseCase(s.repo, timeouts, assignor, s.del)
	s.layouts = NewGetRecordLayoutUseCase(s.repo, layout.NewReconciler(reg, assignor), reg)
	s.duplicate = NewDuplicateRecordUseCase(s.layouts, s.create)
}

func (s *RecordUseCaseTestSuite) storedRecord(yearLabel string) *entity.Record {
	rec := entity.NewRecord(testUser, yearLabel, entity.CalendarTypeIslamic, "PKR")
	p := validPayload()
	p.YearLabel = yearLabel
	applyPayload(rec, p, identity.NewAssignor(template.Default()))
	return rec
}

func (s *RecordUseCaseTestSuite) TestCreate_Success() {
	var saved *entity.Record
	s.repo.On("Create", s.ctx, mock.AnythingOfType("*entity.Record"), s.opts).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*entity.Record) }).
		Return(nil).Once()

	p := validPayload()
	p.YearLabel = " 2024 "
	out, err := s.create.Execute(s.ctx, CreateRecordInput{UserID: testUser, Payload: p})

	s.Require().NoError(err)
	s.Nil(out.Conflict)
	s.Equal("2024", out.YearLabel)
	s.Equal(saved.ID, out.RecordID)

	s.Equal(testUser, saved.UserID)
	s.Equal("PKR", saved.Currency)
	s.True(saved.TotalAssets.Equal(decimal.NewFromInt(1000)))
	s.True(saved.TotalDeductions.Equal(decimal.NewFromInt(200)))
	s.True(saved.NetBase.Equal(decimal.NewFromInt(800)))
	s.True(saved.Payable.Equal(decimal.NewFromInt(20)))

	s.Require().Len(saved.Categories, 2)
	s.Equal("asset-cash", saved.Categories[0].StableID)
	s.Equal("asset-cash.cash", saved.Categories[0].Items[0].StableID)
	s.Equal("custom-cat-liability-payable-loans-2", saved.Categories[1].StableID)
	s.Equal("custom-item-custom-cat-liability-payable-loans-2-amount-1", saved.Categories[1].Items[0].StableID)
	s.Equal(saved.ID, saved.Categories[1].RecordID)
	s.Equal(saved.Categories[1].ID, saved.Categories[1].Items[0].CategoryID)
	s.repo.AssertExpectations(s.T())
}

func (s *RecordUseCaseTestSuite) TestCreate_DuplicateStableIDsAreSuffixed() {
	var saved *entity.Record
	s.repo.On("Create", s.ctx, mock.Anything, s.opts).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*entity.Record) }).
		Return(nil).Once()

	p := validPayload()
	p.Categories[1].StableID = "asset-cash"
	p.Categories[1].Type = entity.CategoryTypeAsset
	_, err := s.create.Execute(s.ctx, CreateRecordInput{UserID: testUser, Payload: p})

	s.Require().NoError(err)
	s.Equal("asset-cash", saved.Categories[0].StableID)
	s.Equal("asset-cash-2", saved.Categories[1].StableID)
}

func (s *RecordUseCaseTestSuite) TestCreate_InvalidPayloadNeverReachesStore() {
	p := validPayload()
	p.Categories = nil

	out, err := s.create.Execute(s.ctx, CreateRecordInput{UserID: testUser, Payload: p})

	s.Nil(out)
	s.ErrorIs(err, domainerror.ErrInvalidPayload)
	s.repo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything, mock.Anything)
}

func (s *RecordUseCaseTestSuite) TestCreate_ConflictFromTransaction() {
	existing := uuid.New()
	s.repo.On("Create", s.ctx, mock.Anything, s.opts).
		Return(&domainerror.DuplicateYearConflict{YearLabel: "2024", ExistingRecordID: existing}).Once()

	out, err := s.create.Execute(s.ctx, CreateRecordInput{UserID: testUser, Payload: validPayload()})

	s.Require().NoError(err)
	s.Require().NotNil(out.Conflict)
	s.Equal(existing, out.Conflict.ExistingRecordID)
	s.Equal("2024", out.Conflict.YearLabel)
}

func (s *RecordUseCaseTestSuite) TestCreate_FailedCommitTurnsIntoConflict() {
	existing := uuid.New()
	s.repo.On("Create", s.ctx, mock.Anything, s.opts).
		Return(errors.New("could not serialize access due to concurrent update")).Once()
	s.repo.On("FindByUserAndYear", s.ctx, testUser, "2024", (*uuid.UUID)(nil)).
		Return(&entity.RecordSummary{ID: existing, YearLabel: "2024"}, nil).Once()

	out, err := s.create.Execute(s.ctx, CreateRecordInput{UserID: testUser, Payload: validPayload()})

	s.Require().NoError(err)
	s.Require().NotNil(out.Conflict)
	s.Equal(existing, out.Conflict.ExistingRecordID)
}

func (s *RecordUseCaseTestSuite) TestCreate_StorageFailure() {
	s.repo.On("Create", s.ctx, mock.Anything, s.opts).Return(assert.AnError).Once()
	s.repo.On("FindByUserAndYear", s.ctx, testUser, "2024", (*uuid.UUID)(nil)).
		Return(nil, domainerror.ErrRecordNotFound).Once()

	out, err := s.create.Execute(s.ctx, CreateRecordInput{UserID: testUser, Payload: validPayload()})

	s.Nil(out)
	var recErr *domainerror.RecordError
	s.Require().ErrorAs(err, &recErr)
	s.Equal(domainerror.ErrCodeStorageFailure, recErr.Code)
	s.ErrorIs(err, domainerror.ErrStorageFailure)
	s.ErrorIs(err, assert.AnError)
}

func (s *RecordUseCaseTestSuite) TestCreate_Timeout() {
	s.repo.On("Create", s.ctx, mock.Anything, s.opts).
		Return(fmt.Errorf("commit: %w", domainerror.ErrMutationTimeout)).Once()
	s.repo.On("FindByUserAndYear", s.ctx, testUser, "2024", (*uuid.UUID)(nil)).
		Return(nil, domainerror.ErrRecordNotFound).Once()

	_, err := s.create.Execute(s.ctx, CreateRecordInput{UserID: testUser, Payload: validPayload()})

	var recErr *domainerror.RecordError
	s.Require().ErrorAs(err, &recErr)
	s.Equal(domainerror.ErrCodeMutationTimeout, recErr.Code)
}

func (s *RecordUseCaseTestSuite) TestUpdate_ReplacesChildren() {
	rec := s.storedRecord("2023")
	createdAt := rec.CreatedAt
	oldCategoryID := rec.Categories[0].ID

	s.repo.On("FindByID", s.ctx, rec.ID).Return(rec, nil).Once()
	s.repo.On("FindByUserAndYear", s.ctx, testUser, "2024", &rec.ID).Return(nil, domainerror.ErrRecordNotFound).Once()
	s.repo.On("Replace", s.ctx, rec, s.opts).Return(nil).Once()

	p := validPayload()
	p.CalendarType = entity.CalendarTypeGregorian
	out, err := s.update.Execute(s.ctx, UpdateRecordInput{UserID: testUser, RecordID: rec.ID, Payload: p})

	s.Require().NoError(err)
	s.Nil(out.Conflict)
	s.Equal(rec.ID, out.RecordID)
	s.Equal("2024", rec.YearLabel)
	s.Equal(createdAt, rec.CreatedAt)
	s.NotEqual(oldCategoryID, rec.Categories[0].ID)
	s.True(rec.Payable.Equal(decimal.RequireFromString("20.64")))
	s.repo.AssertExpectations(s.T())
}

func (s *RecordUseCaseTestSuite) TestUpdate_PreCheckConflict() {
	rec := s.storedRecord("2023")
	other := uuid.New()

	s.repo.On("FindByID", s.ctx, rec.ID).Return(rec, nil).Once()
	s.repo.On("FindByUserAndYear", s.ctx, testUser, "2024", &rec.ID).
		Return(&entity.RecordSummary{ID: other, YearLabel: "2024"}, nil).Once()

	out, err := s.update.Execute(s.ctx, UpdateRecordInput{UserID: testUser, RecordID: rec.ID, Payload: validPayload()})

	s.Require().NoError(err)
	s.Require().NotNil(out.Conflict)
	s.Equal(other, out.Conflict.ExistingRecordID)
	s.repo.AssertNotCalled(s.T(), "Replace", mock.Anything, mock.Anything, mock.Anything)
}

func (s *RecordUseCaseTestSuite) TestUpdate_OtherUsersRecordIsNotFound() {
	rec := s.storedRecord("2023")
	rec.UserID = "someone-else"
	s.repo.On("FindByID", s.ctx, rec.ID).Return(rec, nil).Once()

	_, err := s.update.Execute(s.ctx, UpdateRecordInput{UserID: testUser, RecordID: rec.ID, Payload: validPayload()})

	var recErr *domainerror.RecordError
	s.Require().ErrorAs(err, &recErr)
	s.Equal(domainerror.ErrCodeRecordNotFound, recErr.Code)
}

func (s *RecordUseCaseTestSuite) TestUpdate_DeleteIntentSkipsValidation() {
	rec := s.storedRecord("2023")
	s.repo.On("FindByID", s.ctx, rec.ID).Return(rec, nil).Once()
	s.repo.On("Delete", s.ctx, rec.ID, s.opts).Return(nil).Once()

	out, err := s.update.Execute(s.ctx, UpdateRecordInput{UserID: testUser, RecordID: rec.ID, Intent: IntentDelete})

	s.Require().NoError(err)
	s.Equal(rec.ID, out.RecordID)
	s.repo.AssertExpectations(s.T())
}

func (s *RecordUseCaseTestSuite) TestDelete_NotFound() {
	id := uuid.New()
	s.repo.On("FindByID", s.ctx, id).Return(nil, domainerror.ErrRecordNotFound).Once()

	err := s.del.Execute(s.ctx, DeleteRecordInput{UserID: testUser, RecordID: id})

	s.ErrorIs(err, domainerror.ErrRecordNotFound)
	s.repo.AssertNotCalled(s.T(), "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func (s *RecordUseCaseTestSuite) TestDuplicate_DefaultsToNextYear() {
	src := s.storedRecord("2023")
	var saved *entity.Record

	s.repo.On("FindByID", s.ctx, src.ID).Return(src, nil).Once()
	s.repo.On("Create", s.ctx, mock.Anything, s.opts).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*entity.Record) }).
		Return(nil).Once()

	out, err := s.duplicate.Execute(s.ctx, DuplicateRecordInput{UserID: testUser, RecordID: src.ID})

	s.Require().NoError(err)
	s.Equal("2024", out.YearLabel)
	s.Require().NotNil(saved.ClonedFromRecordID)
	s.Equal(src.ID, *saved.ClonedFromRecordID)
	s.Equal(entity.CalendarTypeIslamic, saved.CalendarType)
	s.True(saved.TotalAssets.Add(saved.TotalDeductions).Equal(decimal.NewFromInt(1200)))
	s.Equal(len(template.Default().ListCategories()), len(saved.Categories))
}

func (s *RecordUseCaseTestSuite) TestDuplicate_NonNumericYearNeedsLabel() {
	src := s.storedRecord("FY 2023/24")
	s.repo.On("FindByID", s.ctx, src.ID).Return(src, nil).Once()

	_, err := s.duplicate.Execute(s.ctx, DuplicateRecordInput{UserID: testUser, RecordID: src.ID})

	s.ErrorIs(err, domainerror.ErrInvalidPayload)
}

func TestRecordUseCaseTestSuite(t *testing.T) {
	suite.Run(t, new(RecordUseCaseTestSuite))
}

func TestReconcileLayoutUseCase(t *testing.T) {
	reg := template.Default()
	uc := NewReconcileLayoutUseCase(layout.NewReconciler(reg, identity.NewAssignor(reg)), reg)

	out, err := uc.Execute(context.Background(), ReconcileInput{Categories: validPayload().Categories})
	assert.NoError(t, err)
	assert.Equal(t, reg.Version(), out.TemplateVersion)
	assert.True(t, layout.Total(out.Categories).Equal(decimal.NewFromInt(1200)))

	_, err = uc.Execute(context.Background(), ReconcileInput{Categories: []CategoryPayload{{Type: "EQUITY"}}})
	assert.ErrorIs(t, err, domainerror.ErrInvalidPayload)
}

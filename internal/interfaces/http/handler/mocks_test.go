package handler

import (
	"context"
	"time"

	"github.com/dentalkiosk/backend/internal/domain/identity"
	"github.com/dentalkiosk/backend/internal/domain/nps"
	"github.com/dentalkiosk/backend/internal/domain/practice"
	"github.com/dentalkiosk/backend/internal/domain/response"
	"github.com/dentalkiosk/backend/internal/domain/survey"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Repository mocks shared by the handler tests. Handlers are exercised
// through real application services backed by these.

type MockSurveyRepository struct {
	mock.Mock
}

func (m *MockSurveyRepository) FindByID(ctx context.Context, id uuid.UUID) (*survey.Survey, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*survey.Survey), args.Error(1)
}

func (m *MockSurveyRepository) FindKioskSurveys(ctx context.Context) ([]survey.Survey, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]survey.Survey), args.Error(1)
}

func (m *MockSurveyRepository) FindAllWithCounts(ctx context.Context) ([]survey.SurveyWithCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]survey.SurveyWithCount), args.Error(1)
}

type MockResponseRepository struct {
	mock.Mock
}

func (m *MockResponseRepository) Create(ctx context.Context, r *response.Response) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockResponseRepository) FindByID(ctx context.Context, id uuid.UUID) (*response.Response, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.Response), args.Error(1)
}

func (m *MockResponseRepository) MarkComplete(ctx context.Context, id uuid.UUID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockResponseRepository) UpsertAnswer(ctx context.Context, a *response.Answer) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockResponseRepository) AnsweredQuestionIDs(ctx context.Context, responseID uuid.UUID) (map[uuid.UUID]bool, error) {
	args := m.Called(ctx, responseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]bool), args.Error(1)
}

func (m *MockResponseRepository) NPSScore(ctx context.Context, responseID uuid.UUID) (int, bool, error) {
	args := m.Called(ctx, responseID)
	return args.Int(0), args.Bool(1), args.Error(2)
}

func (m *MockResponseRepository) List(ctx context.Context, filter response.ListFilter) ([]response.ListItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.ListItem), args.Error(1)
}

func (m *MockResponseRepository) AnswerDetails(ctx context.Context, responseID uuid.UUID) ([]response.AnswerDetail, error) {
	args := m.Called(ctx, responseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]response.AnswerDetail), args.Error(1)
}

type MockNpsRepository struct {
	mock.Mock
}

func (m *MockNpsRepository) Increment(ctx context.Context, day time.Time, bucket nps.Bucket) error {
	args := m.Called(ctx, day, bucket)
	return args.Error(0)
}

func (m *MockNpsRepository) FindByDate(ctx context.Context, day time.Time) (*nps.DailyRollup, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nps.DailyRollup), args.Error(1)
}

type MockPracticeRepository struct {
	mock.Mock
}

func (m *MockPracticeRepository) Find(ctx context.Context, id int64) (*practice.Practice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*practice.Practice), args.Error(1)
}

func (m *MockPracticeRepository) Update(ctx context.Context, p *practice.Practice) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockAdminUserRepository struct {
	mock.Mock
}

func (m *MockAdminUserRepository) Create(ctx context.Context, user *identity.AdminUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockAdminUserRepository) Update(ctx context.Context, user *identity.AdminUser) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockAdminUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.AdminUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.AdminUser), args.Error(1)
}

func (m *MockAdminUserRepository) FindByUsername(ctx context.Context, username string) (*identity.AdminUser, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.AdminUser), args.Error(1)
}

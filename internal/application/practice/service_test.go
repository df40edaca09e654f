package practice

import (
	"context"
	"testing"
	"time"

	"github.com/dentalkiosk/backend/internal/domain/practice"
	"github.com/dentalkiosk/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// MockPracticeRepository is a mock implementation of practice.Repository
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

func defaultPractice() *practice.Practice {
	return &practice.Practice{
		ID:                  practice.DefaultID,
		Name:                "Bright Smile Dental",
		PrimaryColor:        "#2563eb",
		KioskTimeoutSeconds: 120,
		AllowAnonymous:      true,
		UpdatedAt:           time.Now(),
	}
}

func TestPracticeService_Get(t *testing.T) {
	repo := new(MockPracticeRepository)
	svc := NewService(repo, zap.NewNop())
	ctx := context.Background()

	repo.On("Find", ctx, practice.DefaultID).Return(defaultPractice(), nil)

	settings, err := svc.Get(ctx)

	assert.NoError(t, err)
	assert.Equal(t, "Bright Smile Dental", settings.Name)
	assert.Equal(t, "#2563eb", settings.PrimaryColor)
	assert.Equal(t, 120, settings.KioskTimeoutSeconds)
	assert.True(t, settings.AllowAnonymous)
}

func TestPracticeService_Update(t *testing.T) {
	str := func(v string) *string { return &v }
	num := func(v int) *int { return &v }
	boolean := func(v bool) *bool { return &v }

	t.Run("applies partial changes", func(t *testing.T) {
		repo := new(MockPracticeRepository)
		svc := NewService(repo, zap.NewNop())
		ctx := context.Background()

		repo.On("Find", ctx, practice.DefaultID).Return(defaultPractice(), nil)
		repo.On("Update", ctx, mock.MatchedBy(func(p *practice.Practice) bool {
			return p.Name == "Lakeside Dental" && p.PrimaryColor == "#2563eb" && !p.AllowAnonymous
		})).Return(nil)

		settings, err := svc.Update(ctx, UpdateInput{
			Name:           str("Lakeside Dental"),
			AllowAnonymous: boolean(false),
		})

		assert.NoError(t, err)
		assert.Equal(t, "Lakeside Dental", settings.Name)
		assert.False(t, settings.AllowAnonymous)
		repo.AssertExpectations(t)
	})

	t.Run("rejects an invalid brand color", func(t *testing.T) {
		repo := new(MockPracticeRepository)
		svc := NewService(repo, zap.NewNop())
		ctx := context.Background()

		repo.On("Find", ctx, practice.DefaultID).Return(defaultPractice(), nil)

		_, err := svc.Update(ctx, UpdateInput{PrimaryColor: str("blue")})

		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_INPUT", domainErr.Code)
		repo.AssertNotCalled(t, "Update")
	})

	t.Run("rejects an out-of-range timeout", func(t *testing.T) {
		repo := new(MockPracticeRepository)
		svc := NewService(repo, zap.NewNop())
		ctx := context.Background()

		repo.On("Find", ctx, practice.DefaultID).Return(defaultPractice(), nil)

		_, err := svc.Update(ctx, UpdateInput{KioskTimeoutSeconds: num(5)})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Update")
	})

	t.Run("missing practice row", func(t *testing.T) {
		repo := new(MockPracticeRepository)
		svc := NewService(repo, zap.NewNop())
		ctx := context.Background()

		repo.On("Find", ctx, practice.DefaultID).Return(nil, shared.ErrNotFound)

		_, err := svc.Update(ctx, UpdateInput{Name: str("Lakeside Dental")})

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

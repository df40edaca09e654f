package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	appPractice "github.com/dentalkiosk/backend/internal/application/practice"
	"github.com/dentalkiosk/backend/internal/domain/practice"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newPracticeHandlerFixture() (*gin.Engine, *MockPracticeRepository) {
	repo := new(MockPracticeRepository)
	h := NewPracticeHandler(appPractice.NewService(repo, zap.NewNop()))

	engine := gin.New()
	admin := engine.Group("/api/v1/admin")
	admin.GET("/practice", h.Get)
	admin.PUT("/practice", h.Update)
	return engine, repo
}

func storedPractice() *practice.Practice {
	return &practice.Practice{
		ID:                  practice.DefaultID,
		Name:                "Bright Smile Dental",
		PrimaryColor:        "#2563eb",
		KioskTimeoutSeconds: 120,
		AllowAnonymous:      true,
	}
}

func TestPracticeHandler_Get(t *testing.T) {
	engine, repo := newPracticeHandlerFixture()
	repo.On("Find", mock.Anything, practice.DefaultID).Return(storedPractice(), nil)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/practice", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Bright Smile Dental")
}

func TestPracticeHandler_Update(t *testing.T) {
	t.Run("applies changes", func(t *testing.T) {
		engine, repo := newPracticeHandlerFixture()
		repo.On("Find", mock.Anything, practice.DefaultID).Return(storedPractice(), nil)
		repo.On("Update", mock.Anything, mock.MatchedBy(func(p *practice.Practice) bool {
			return p.PrimaryColor == "#16a34a"
		})).Return(nil)

		body, _ := json.Marshal(gin.H{"primary_color": "#16a34a"})
		req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/practice", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "#16a34a")
		repo.AssertExpectations(t)
	})

	t.Run("invalid color yields 400", func(t *testing.T) {
		engine, repo := newPracticeHandlerFixture()
		repo.On("Find", mock.Anything, practice.DefaultID).Return(storedPractice(), nil)

		body, _ := json.Marshal(gin.H{"primary_color": "green"})
		req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/practice", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertNotCalled(t, "Update")
	})
}

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}

func TestRouterSetup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("registers routes under the version prefix", func(t *testing.T) {
		engine := gin.New()
		r := NewRouter(engine)

		group := NewDomainGroup("kiosk", "/kiosk")
		group.GET("/surveys", ping)
		r.Register(group).Setup()

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/kiosk/surveys", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("custom api version", func(t *testing.T) {
		engine := gin.New()
		r := NewRouter(engine, WithAPIVersion("v2"))

		group := NewDomainGroup("admin", "/admin")
		group.GET("/stats", ping)
		r.Register(group).Setup()

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v2/admin/stats", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("group middleware runs before handlers", func(t *testing.T) {
		engine := gin.New()
		r := NewRouter(engine)

		group := NewDomainGroup("admin", "/admin")
		group.Use(func(c *gin.Context) {
			c.AbortWithStatus(http.StatusUnauthorized)
		})
		group.GET("/stats", ping)
		r.Register(group).Setup()

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/stats", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("all methods route", func(t *testing.T) {
		engine := gin.New()
		r := NewRouter(engine)

		group := NewDomainGroup("kiosk", "/kiosk")
		group.POST("/responses", ping)
		group.PUT("/responses/:id", ping)
		group.DELETE("/responses/:id", ping)
		r.Register(group).Setup()

		for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
			path := "/api/v1/kiosk/responses"
			if method != http.MethodPost {
				path += "/abc"
			}
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(method, path, nil))
			assert.Equal(t, http.StatusOK, w.Code, method)
		}
	})

	t.Run("accessors", func(t *testing.T) {
		group := NewDomainGroup("kiosk", "/kiosk")
		assert.Equal(t, "kiosk", group.Name())
		assert.Equal(t, "/kiosk", group.Prefix())
	})
}

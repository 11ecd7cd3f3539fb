package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAdminToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		secret         string
		token          string
		expectedStatus int
	}{
		{"Valid token", "super-secret", "super-secret", http.StatusOK},
		{"Missing token", "super-secret", "", http.StatusUnauthorized},
		{"Wrong token", "super-secret", "wrong", http.StatusUnauthorized},
		{"Case-sensitive comparison", "super-secret", "Super-Secret", http.StatusUnauthorized},
		{"Empty configured secret rejects empty header", "", "", http.StatusUnauthorized},
		{"Empty configured secret rejects any token", "", "anything", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/admin/plans", AdminToken(tt.secret), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			req := httptest.NewRequest("GET", "/admin/plans", nil)
			if tt.token != "" {
				req.Header.Set(TokenHeader, tt.token)
			}
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAdminToken_AbortsBeforeHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	called := false
	r := gin.New()
	r.DELETE("/admin/plans/:id", AdminToken("secret"), func(c *gin.Context) {
		called = true
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("DELETE", "/admin/plans/1", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}

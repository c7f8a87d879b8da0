package authorization

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"hostdesk/internal/shared/constants"
)

func performWithRole(role string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/customers", nil)
	if role != "" {
		c.Set(constants.ContextKeyUserRole, role)
	}

	RequireAdmin()(c)
	if !c.IsAborted() {
		c.Status(http.StatusOK)
	}
	return w
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name string
		role string
		want int
	}{
		{"admin role passes", RoleAdmin.String(), http.StatusOK},
		{"other role is forbidden", "user", http.StatusForbidden},
		{"missing role is forbidden", "", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performWithRole(tt.role)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestUserRole(t *testing.T) {
	assert.True(t, RoleAdmin.IsAdmin())
	assert.False(t, UserRole("user").IsAdmin())
	assert.Equal(t, "admin", RoleAdmin.String())
}

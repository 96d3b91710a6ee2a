package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/surawits/vibeLink/internal/models"
)

func adminOnlyContext(user *models.User) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	if user != nil {
		c.Set("principal", user)
	}
	return c, w
}

func TestAdminOnly_AllowsAdmin(t *testing.T) {
	c, _ := adminOnlyContext(&models.User{ID: "a1", Role: models.RoleAdmin})
	AdminOnly()(c)
	assert.False(t, c.IsAborted())
}

func TestAdminOnly_ForbidsRegularUser(t *testing.T) {
	c, w := adminOnlyContext(&models.User{ID: "u1", Role: models.RoleUser})
	AdminOnly()(c)
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminOnly_RejectsMissingPrincipal(t *testing.T) {
	c, w := adminOnlyContext(nil)
	AdminOnly()(c)
	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCurrentUser_NilOutsideAuthChain(t *testing.T) {
	c, _ := adminOnlyContext(nil)
	assert.Nil(t, CurrentUser(c))
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adeyemi-o/hotel-management/internal/models"
)

const testSecret = "test-secret"

func staffMember() *models.Staff {
	return &models.Staff{ID: 4, Role: models.RoleManager}
}

func runGuarded(t *testing.T, authHeader string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := JWTAuth(testSecret)(func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"staff_id": StaffID(c),
			"role":     c.Get(ContextStaffRole),
		})
	})
	return rec, handler(c)
}

func TestJWTAuth_Roundtrip(t *testing.T) {
	token, err := IssueToken(testSecret, staffMember(), time.Hour)
	require.NoError(t, err)

	rec, err := runGuarded(t, "Bearer "+token)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"staff_id":4`)
	assert.Contains(t, rec.Body.String(), `"role":"MANAGER"`)
}

func TestJWTAuth_MissingToken(t *testing.T) {
	_, err := runGuarded(t, "")
	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	token, err := IssueToken("other-secret", staffMember(), time.Hour)
	require.NoError(t, err)

	_, err = runGuarded(t, "Bearer "+token)
	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	token, err := IssueToken(testSecret, staffMember(), -time.Minute)
	require.NoError(t, err)

	_, err = runGuarded(t, "Bearer "+token)
	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Code)
}

func TestStaffID_AbsentOutsideAuth(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Nil(t, StaffID(c))
}

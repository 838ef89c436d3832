//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"artshop/tests/common/dbtest"
	commonhttp "artshop/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Login authenticates a seeded user through the real login endpoint and
// returns the issued bearer token.
func Login(t *testing.T, router *gin.Engine, username string) string {
	t.Helper()

	w := commonhttp.PerformRequest(t, router, http.MethodPost, "/api/auth/login", map[string]string{
		"username": username,
		"password": dbtest.DefaultPassword,
	}, "")
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	commonhttp.DecodeResponse(t, w, &resp)
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

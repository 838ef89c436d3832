//go:build e2e

package auth

import (
	"net/http"
	"sync"
	"testing"

	"artshop/tests/common/dbtest"
	commonhttp "artshop/tests/common/httptest"
	"artshop/tests/e2e"

	"github.com/stretchr/testify/suite"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) TestRegisterLoginLogoutFlow() {
	t := s.T()

	w := commonhttp.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/register", map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "password123",
	}, "")
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var registered struct {
		ID string `json:"id"`
	}
	commonhttp.DecodeResponse(t, w, &registered)
	s.Require().NotEmpty(registered.ID)

	w = commonhttp.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "alice",
		"password": "password123",
	}, "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var login struct {
		AccessToken string `json:"access_token"`
		User        struct {
			ID       string `json:"id"`
			Username string `json:"username"`
			Role     string `json:"role"`
		} `json:"user"`
	}
	commonhttp.DecodeResponse(t, w, &login)
	s.Require().NotEmpty(login.AccessToken)
	s.Equal(registered.ID, login.User.ID)
	s.Equal("alice", login.User.Username)
	s.Equal("customer", login.User.Role)

	w = commonhttp.PerformRequest(t, s.Router, http.MethodGet, "/api/auth/me", nil, login.AccessToken)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var me struct {
		Username string `json:"username"`
		Email    string `json:"email"`
	}
	commonhttp.DecodeResponse(t, w, &me)
	s.Equal("alice", me.Username)
	s.Equal("alice@example.com", me.Email)

	w = commonhttp.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/logout", nil, login.AccessToken)
	s.Require().Equal(http.StatusNoContent, w.Code, w.Body.String())

	// A revoked token no longer grants access.
	w = commonhttp.PerformRequest(t, s.Router, http.MethodGet, "/api/auth/me", nil, login.AccessToken)
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *AuthSuite) TestSecondLoginSupersedesFirstToken() {
	t := s.T()
	dbtest.SeedUser(t, s.DB, "bob", "bob@example.com", "customer")

	login := func() string {
		w := commonhttp.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/login", map[string]string{
			"username": "bob",
			"password": dbtest.DefaultPassword,
		}, "")
		s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

		var resp struct {
			AccessToken string `json:"access_token"`
		}
		commonhttp.DecodeResponse(t, w, &resp)
		return resp.AccessToken
	}

	firstToken := login()
	secondToken := login()
	s.Require().NotEqual(firstToken, secondToken)

	w := commonhttp.PerformRequest(t, s.Router, http.MethodGet, "/api/auth/me", nil, firstToken)
	s.Equal(http.StatusUnauthorized, w.Code, "superseded token must be rejected")

	w = commonhttp.PerformRequest(t, s.Router, http.MethodGet, "/api/auth/me", nil, secondToken)
	s.Equal(http.StatusOK, w.Code, w.Body.String())
}

func (s *AuthSuite) TestConcurrentLoginsLeaveOneLiveToken() {
	t := s.T()
	dbtest.SeedUser(t, s.DB, "erin", "erin@example.com", "customer")

	const logins = 4
	tokens := make([]string, logins)

	var wg sync.WaitGroup
	for i := range tokens {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w := commonhttp.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/login", map[string]string{
				"username": "erin",
				"password": dbtest.DefaultPassword,
			}, "")
			if w.Code != http.StatusOK {
				return
			}
			var resp struct {
				AccessToken string `json:"access_token"`
			}
			commonhttp.DecodeResponse(t, w, &resp)
			tokens[i] = resp.AccessToken
		}(i)
	}
	wg.Wait()

	live := 0
	for _, token := range tokens {
		if token == "" {
			continue
		}
		w := commonhttp.PerformRequest(t, s.Router, http.MethodGet, "/api/auth/me", nil, token)
		if w.Code == http.StatusOK {
			live++
		}
	}
	s.Equal(1, live, "exactly one of the concurrently issued tokens may remain valid")
}

func (s *AuthSuite) TestLoginRejectsBadCredentials() {
	cases := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "carol", password: "not-the-password"},
		{name: "unknown user", username: "nobody", password: dbtest.DefaultPassword},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			dbtest.SeedUser(s.T(), s.DB, "carol", "carol@example.com", "customer")

			w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/auth/login", map[string]string{
				"username": tc.username,
				"password": tc.password,
			}, "")
			s.Equal(http.StatusUnauthorized, w.Code, w.Body.String())
		})
	}
}

func (s *AuthSuite) TestRegisterRejectsDuplicateUsername() {
	t := s.T()
	dbtest.SeedUser(t, s.DB, "dave", "dave@example.com", "customer")

	w := commonhttp.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/register", map[string]string{
		"username": "dave",
		"email":    "other@example.com",
		"password": "password123",
	}, "")
	s.Equal(http.StatusConflict, w.Code, w.Body.String())
}

func (s *AuthSuite) TestProtectedEndpointsRequireToken() {
	t := s.T()

	w := commonhttp.PerformRequest(t, s.Router, http.MethodGet, "/api/auth/me", nil, "")
	s.Equal(http.StatusUnauthorized, w.Code)

	w = commonhttp.PerformRequest(t, s.Router, http.MethodGet, "/api/auth/me", nil, "deadbeef")
	s.Equal(http.StatusUnauthorized, w.Code)
}

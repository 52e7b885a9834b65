package test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2beens/mesocycle/internal/auth"
)

func (s *IntegrationTestSuite) TestLogin() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cases := map[string]struct {
		creds              auth.Credentials
		expectedStatusCode int
		assertFunc         func(resp *http.Response)
	}{
		"good creds, then logout": {
			creds: auth.Credentials{
				Username: testUsername,
				Password: testPassword,
			},
			expectedStatusCode: http.StatusOK,
			assertFunc: func(resp *http.Response) {
				var loginResp auth.LoginResponse
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&loginResp))
				require.NotEmpty(t, loginResp.Token)

				// the token opens protected routes
				cycleResp := s.doRequest(ctx, t, http.MethodGet, "/cycle", loginResp.Token, "", nil)
				assert.NotEqual(t, http.StatusUnauthorized, cycleResp.StatusCode)
				cycleResp.Body.Close()

				logoutResp := s.doRequest(ctx, t, http.MethodGet, "/a/logout", loginResp.Token, "", nil)
				assert.Equal(t, http.StatusOK, logoutResp.StatusCode)
				logoutResp.Body.Close()

				// and not anymore after the logout
				cycleResp = s.doRequest(ctx, t, http.MethodGet, "/cycle", loginResp.Token, "", nil)
				assert.Equal(t, http.StatusUnauthorized, cycleResp.StatusCode)
				cycleResp.Body.Close()
			},
		},
		"bad password": {
			creds: auth.Credentials{
				Username: testUsername,
				Password: "bad-password",
			},
			expectedStatusCode: http.StatusBadRequest,
			assertFunc: func(resp *http.Response) {
				respBytes, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				assert.Equal(t, "error, wrong credentials", strings.TrimSpace(string(respBytes)))
			},
		},
		"empty password": {
			creds: auth.Credentials{
				Username: testUsername,
			},
			expectedStatusCode: http.StatusBadRequest,
			assertFunc: func(resp *http.Response) {
				respBytes, err := io.ReadAll(resp.Body)
				require.NoError(t, err)
				assert.Equal(t, "error, password empty", strings.TrimSpace(string(respBytes)))
			},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			payload, err := json.Marshal(tc.creds)
			require.NoError(t, err)

			resp := s.doRequest(ctx, t, http.MethodPost, "/a/login", "", "application/json", bytes.NewReader(payload))
			defer resp.Body.Close()
			require.Equal(t, tc.expectedStatusCode, resp.StatusCode)
			tc.assertFunc(resp)
		})
	}
}

func (s *IntegrationTestSuite) TestProtectedRoutesNeedToken() {
	t := s.T()
	ctx := context.Background()

	for _, path := range []string{"/cycle", "/session", "/history"} {
		resp := s.doRequest(ctx, t, http.MethodGet, path, "", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
		resp.Body.Close()
	}

	resp := s.doRequest(ctx, t, http.MethodPost, "/mcp", "", "application/json", strings.NewReader(`{}`))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

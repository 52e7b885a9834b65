package test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/2beens/mesocycle/internal/auth"
)

func (s *IntegrationTestSuite) doLogin(ctx context.Context, t *testing.T) string {
	loginReqJson, err := json.Marshal(auth.Credentials{
		Username: testUsername,
		Password: testPassword,
	})
	require.NoError(t, err)

	resp := s.doRequest(ctx, t, http.MethodPost, "/a/login", "", "application/json", bytes.NewReader(loginReqJson))
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var loginResp auth.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&loginResp))
	require.NotEmpty(t, loginResp.Token)

	return loginResp.Token
}

func (s *IntegrationTestSuite) doRequest(
	ctx context.Context,
	t *testing.T,
	method, path, token, contentType string,
	body io.Reader,
) *http.Response {
	t.Helper()

	req, err := http.NewRequestWithContext(ctx, method, fmt.Sprintf("%s%s", serverEndpoint, path), body)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "test-agent")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set(auth.TokenHeader, token)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(t, err)
	return resp
}

// doJSON sends v as a json body and decodes the response into out, when given.
func (s *IntegrationTestSuite) doJSON(
	ctx context.Context,
	t *testing.T,
	method, path, token string,
	v any,
	wantStatus int,
	out any,
) {
	t.Helper()

	var body io.Reader
	contentType := ""
	if v != nil {
		payload, err := json.Marshal(v)
		require.NoError(t, err)
		body = bytes.NewReader(payload)
		contentType = "application/json"
	}

	resp := s.doRequest(ctx, t, method, path, token, contentType, body)
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, wantStatus, resp.StatusCode, "%s %s: %s", method, path, respBytes)

	if out != nil {
		require.NoError(t, json.Unmarshal(respBytes, out))
	}
}

func decodeBody(resp *http.Response, v any) error {
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(v)
}

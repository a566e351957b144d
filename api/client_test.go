package api_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/signin/api"
	"github.com/viant/signin/mock"
)

func TestClient_Login(t *testing.T) {
	server := mock.NewHTTPTestConsoleServer(mock.WithAccount("a@b.com", "pw"))
	defer server.Close()
	client := api.New(server.URL + "/")

	testCases := []struct {
		description   string
		request       *api.LoginRequest
		expectSuccess bool
		expectData    string
	}{
		{
			description:   "accepted",
			request:       &api.LoginRequest{Email: "a@b.com", Password: "pw", RememberMe: true},
			expectSuccess: true,
		},
		{
			description: "rejected",
			request:     &api.LoginRequest{Email: "a@b.com", Password: "bad", RememberMe: true},
			expectData:  "invalid credentials",
		},
	}
	for _, testCase := range testCases {
		response, err := client.Login(context.Background(), testCase.request)
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expectSuccess, response.Succeeded(), testCase.description)
		if testCase.expectData != "" {
			assert.Equal(t, "error", response.Result, testCase.description)
			assert.Equal(t, testCase.expectData, response.Data, testCase.description)
		} else {
			assert.NotEmpty(t, response.Data, testCase.description)
		}
		assert.EqualValues(t, testCase.request, server.LastLogin(), testCase.description)
	}
	assert.Equal(t, 2, server.Count("/login"))
}

func TestClient_LoginUnexpectedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := api.New(server.URL).Login(context.Background(), &api.LoginRequest{Email: "a@b.com"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, api.ErrUnexpectedResponse))
}

func TestClient_LoginTransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	URL := server.URL
	server.Close()

	_, err := api.New(URL).Login(context.Background(), &api.LoginRequest{Email: "a@b.com"})
	require.Error(t, err)
	assert.False(t, errors.Is(err, api.ErrUnexpectedResponse))
}

func TestClient_OAuthLogin(t *testing.T) {
	server := mock.NewHTTPTestConsoleServer(mock.WithProvider("github", "https://gh.example/auth"))
	defer server.Close()
	client := api.New(server.URL)

	response, err := client.OAuthLogin(context.Background(), "github")
	require.NoError(t, err)
	assert.Contains(t, response.RedirectURL, "https://gh.example/auth?state=")
	assert.Equal(t, 1, server.Count("/oauth/login/github"))

	_, err = client.OAuthLogin(context.Background(), "gitlab")
	require.Error(t, err)
	assert.True(t, errors.Is(err, api.ErrUnexpectedResponse))

	_, err = client.OAuthLogin(context.Background(), " ")
	assert.Error(t, err)
}

func TestClient_OAuthLoginUnrecognizedShape(t *testing.T) {
	server := mock.NewHTTPTestConsoleServer()
	defer server.Close()
	server.OAuthHandler = func(w http.ResponseWriter, r *http.Request, provider string) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"url":"https://gh.example/auth"}`))
	}

	_, err := api.New(server.URL).OAuthLogin(context.Background(), "github")
	require.Error(t, err)
	assert.True(t, errors.Is(err, api.ErrUnexpectedResponse))
}

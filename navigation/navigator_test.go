package navigation

import (
	"context"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingOpener struct {
	opened []string
}

func (o *recordingOpener) Open(ctx context.Context, URL string) error {
	o.opened = append(o.opened, URL)
	return nil
}

func TestRouter_Replace(t *testing.T) {
	router := NewRouter("/signin", WithOpener(&recordingOpener{}))
	require.NoError(t, router.Replace(context.Background(), "/apps"))
	assert.Equal(t, "/apps", router.Current())

	assert.Error(t, router.Replace(context.Background(), "apps"))
	assert.Error(t, router.Replace(context.Background(), ""))
	assert.Equal(t, "/apps", router.Current())
}

func TestRouter_Redirect(t *testing.T) {
	testCases := []struct {
		description string
		URL         string
		expectErr   bool
	}{
		{description: "absolute", URL: "https://gh.example/auth"},
		{description: "relative", URL: "/oauth/callback", expectErr: true},
		{description: "malformed", URL: "http://[::1", expectErr: true},
	}
	for _, testCase := range testCases {
		opener := &recordingOpener{}
		router := NewRouter("/signin", WithOpener(opener))
		err := router.Redirect(context.Background(), testCase.URL)
		if testCase.expectErr {
			assert.Error(t, err, testCase.description)
			assert.Empty(t, opener.opened, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, []string{testCase.URL}, opener.opened, testCase.description)
		assert.Equal(t, "/signin", router.Current(), testCase.description)
	}
}

func TestBrowser_Open(t *testing.T) {
	var launched string
	browser := &Browser{Command: func(ctx context.Context, URL string) *exec.Cmd {
		launched = URL
		return exec.Command(os.Args[0], "-test.run=^$")
	}}
	require.NoError(t, browser.Open(context.Background(), "https://gh.example/auth"))
	assert.Equal(t, "https://gh.example/auth", launched)

	failing := &Browser{Command: func(ctx context.Context, URL string) *exec.Cmd {
		return exec.Command("/nonexistent/launcher")
	}}
	assert.Error(t, failing.Open(context.Background(), "https://gh.example/auth"))
}

package update

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withLatestReleaseServer(t *testing.T, handler http.HandlerFunc) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	origURL := latestReleaseURL
	origClient := httpClient
	latestReleaseURL = server.URL
	httpClient = server.Client()
	t.Cleanup(func() {
		latestReleaseURL = origURL
		httpClient = origClient
	})
}

func TestCheckOutdated(t *testing.T) {
	withLatestReleaseServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"tag_name":"v1.2.0"}`))
	})

	result, err := Check(context.Background(), "1.0.0")
	require.NoError(t, err)
	assert.True(t, result.Outdated)
	assert.Equal(t, "1.2.0", result.Latest)
	assert.Equal(t, "1.0.0", result.Current)
}

func TestCheckUpToDate(t *testing.T) {
	withLatestReleaseServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"tag_name":"v1.0.0"}`))
	})

	result, err := Check(context.Background(), "1.0.0")
	require.NoError(t, err)
	assert.False(t, result.Outdated)
}

func TestCheckDevBuildNeverOutdated(t *testing.T) {
	withLatestReleaseServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"tag_name":"v9.9.9"}`))
	})

	result, err := Check(context.Background(), "dev")
	require.NoError(t, err)
	assert.True(t, result.CurrentIsDev)
	assert.False(t, result.Outdated)
}

func TestCheckRateLimited(t *testing.T) {
	withLatestReleaseServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := Check(context.Background(), "1.0.0")
	require.Error(t, err)
	assert.True(t, IsRateLimitError(err))
}

func TestCheckMissingTagFails(t *testing.T) {
	withLatestReleaseServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	_, err := Check(context.Background(), "1.0.0")
	require.Error(t, err)
}

func TestCheckRetriesServerErrors(t *testing.T) {
	attempts := 0
	withLatestReleaseServer(t, func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"tag_name":"v1.0.1"}`))
	})
	origDelay := retryDelay
	retryDelay = 0
	t.Cleanup(func() { retryDelay = origDelay })

	result, err := Check(context.Background(), "1.0.0")
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.True(t, result.Outdated)
}

func TestCompareSemver(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0.0", "1.0.1", -1},
		{"2.0.0", "1.9.9", 1},
		{"1.2.0", "1.10.0", -1},
	}
	for _, tc := range cases {
		got, err := compareSemver(tc.a, tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s vs %s", tc.a, tc.b)
	}
}

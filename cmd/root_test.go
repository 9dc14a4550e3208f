package cmd

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/fredsor/config"
	"github.com/s0up4200/fredsor/fred"
)

func TestNewHTTPClientRetries(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"seriess":[]}`))
	}))
	defer srv.Close()

	retry := config.RetryConfig{MaxRetries: 3, WaitMin: time.Millisecond, WaitMax: 5 * time.Millisecond}
	c := fred.NewClient(
		fred.WithBaseURL(srv.URL),
		fred.WithHTTPClient(newHTTPClient(retry, zerolog.Nop())),
	)

	result, err := c.GetSeries(t.Context(), "GDP", fred.Realtime{}, fred.FormatObject)
	require.NoError(t, err)
	require.IsType(t, &fred.Success{}, result)
	assert.Equal(t, int32(3), hits.Load())
}

func TestNewHTTPClientPassesFinalResponse(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("down"))
	}))
	defer srv.Close()

	retry := config.RetryConfig{MaxRetries: 2, WaitMin: time.Millisecond, WaitMax: 2 * time.Millisecond}
	c := fred.NewClient(
		fred.WithBaseURL(srv.URL),
		fred.WithHTTPClient(newHTTPClient(retry, zerolog.Nop())),
	)

	result, err := c.GetSeries(t.Context(), "GDP", fred.Realtime{}, fred.FormatJSON)
	require.NoError(t, err)
	svcErr, ok := result.(*fred.ServiceError)
	require.True(t, ok, "got %T", result)
	assert.Equal(t, 500, svcErr.Status)
	assert.Equal(t, []byte("down"), svcErr.Body)
	assert.Equal(t, int32(3), hits.Load())
}

func TestNewHTTPClientRedirectStripsReferer(t *testing.T) {
	referers := make(chan string, 1)
	mux := http.NewServeMux()
	mux.HandleFunc("/old/fred/series", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/new/fred/series?"+r.URL.RawQuery, http.StatusFound)
	})
	mux.HandleFunc("/new/fred/series", func(w http.ResponseWriter, r *http.Request) {
		referers <- r.Header.Get("Referer")
		_, _ = w.Write([]byte(`{}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	retry := config.RetryConfig{MaxRetries: 1, WaitMin: time.Millisecond, WaitMax: time.Millisecond}
	c := fred.NewClient(
		fred.WithBaseURL(srv.URL+"/old"),
		fred.WithHTTPClient(newHTTPClient(retry, zerolog.Nop())),
	)

	result, err := c.GetSeries(t.Context(), "GDP", fred.Realtime{}, fred.FormatObject)
	require.NoError(t, err)
	assert.IsType(t, &fred.Success{}, result)
	assert.Empty(t, <-referers)
}

func TestNewHTTPClientWithoutRetries(t *testing.T) {
	hc := newHTTPClient(config.RetryConfig{}, zerolog.Nop())
	require.NotNil(t, hc)
	assert.Nil(t, hc.Transport)
}

func TestRetryLoggerOmitsURL(t *testing.T) {
	prev := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(prev) })

	var buf bytes.Buffer
	l := retryLogger{logger: zerolog.New(&buf)}

	l.Debug("performing request", "method", "GET", "url", "https://api.stlouisfed.org/fred/series?api_key=SECRET")
	l.Warn("retrying", "attempt", 2)
	l.Error("request failed", "error", &url.Error{
		Op:  "Get",
		URL: "https://api.stlouisfed.org/fred/series?api_key=SECRET",
		Err: errors.New("connection refused"),
	})

	out := buf.String()
	assert.NotContains(t, out, "SECRET")
	assert.Contains(t, out, `"method":"GET"`)
	assert.Contains(t, out, `"attempt":2`)
	assert.Contains(t, out, "connection refused")
}

// runCLI executes the root command in-process. Flag values persist across
// runs, so callers pass every flag they depend on.
var cliMu sync.Mutex

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cliMu.Lock()
	defer cliMu.Unlock()
	defer zerolog.SetGlobalLevel(zerolog.GlobalLevel())

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(t.Context())
	return out.String(), err
}

func TestCLICategoryChildren(t *testing.T) {
	queries := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fred/category/children", r.URL.Path)
		queries <- r.URL.RawQuery
		_, _ = w.Write([]byte(`{"categories":[{"id":16,"name":"Exports"},{"id":17,"name":"Imports"}]}`))
	}))
	defer srv.Close()

	out, err := runCLI(t,
		"--base-url", srv.URL, "--api-key", "K", "--log-level", "error",
		"--where", `name == "Imports"`,
		"category", "children", "13",
	)
	require.NoError(t, err)
	assert.Equal(t, "category_id=13&file_type=json&api_key=K", <-queries)
	assert.JSONEq(t, `{"categories":[{"id":17,"name":"Imports"}]}`, out)
}

func TestCLIGetServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error_code":400,"error_message":"Bad Request.  Variable api_key is not set."}`))
	}))
	defer srv.Close()

	_, err := runCLI(t,
		"--base-url", srv.URL, "--api-key", "K", "--log-level", "error",
		"--where=",
		"get", "fred/series", "--param", "series_id=GDP",
	)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "api_key is not set"), err.Error())
}

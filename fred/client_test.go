package fred

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(WithAPIKey("K"), WithBaseURL(server.URL), WithLogger(zerolog.Nop())), server
}

// roundTripFunc lets a test stand in for the network.
type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestNewClient(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		client := NewClient()
		assert.Equal(t, DefaultBaseURL, client.BaseURL())
		assert.Equal(t, "", client.APIKey())
		require.NotNil(t, client.httpClient.CheckRedirect)
	})

	t.Run("with options", func(t *testing.T) {
		client := NewClient(WithAPIKey("abc"), WithBaseURL("https://example.test"))
		assert.Equal(t, "https://example.test", client.BaseURL())
		assert.Equal(t, "abc", client.APIKey())
	})

	t.Run("empty base url keeps default", func(t *testing.T) {
		client := NewClient(WithBaseURL(""))
		assert.Equal(t, DefaultBaseURL, client.BaseURL())
	})

	t.Run("custom http client is copied", func(t *testing.T) {
		custom := &http.Client{}
		client := NewClient(WithHTTPClient(custom))
		assert.Nil(t, custom.CheckRedirect)
		assert.NotNil(t, client.httpClient.CheckRedirect)
	})

	t.Run("setters", func(t *testing.T) {
		client := NewClient()
		client.SetAPIKey("new")
		client.SetBaseURL("https://other.test")
		assert.Equal(t, "new", client.APIKey())
		assert.Equal(t, "https://other.test", client.BaseURL())
	})
}

func TestExecuteInjectsParameters(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, []string{"json"}, q["file_type"])
		assert.Equal(t, []string{"K"}, q["api_key"])
		assert.Equal(t, "13", q.Get("category_id"))
		w.Write([]byte(`{}`))
	})

	params := Assemble(P("category_id", "13"), P("file_type", "xml"), P("api_key", "caller"))
	res, err := client.Execute(context.Background(), "/fred/category", params, FormatObject)
	require.NoError(t, err)
	require.IsType(t, &Success{}, res)

	// The caller's mapping is left alone.
	assert.Equal(t, "xml", params.Get("file_type"))
	assert.Equal(t, "caller", params.Get("api_key"))
}

func TestExecuteFileTypePerFormat(t *testing.T) {
	tests := []struct {
		format   ResponseFormat
		fileType string
	}{
		{FormatObject, "json"},
		{FormatJSON, "json"},
		{FormatXML, "xml"},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.fileType, r.URL.Query().Get("file_type"))
				if tt.fileType == "xml" {
					w.Write([]byte(`<categories/>`))
					return
				}
				w.Write([]byte(`{"categories":[]}`))
			})

			res, err := client.Execute(context.Background(), "/fred/category", nil, tt.format)
			require.NoError(t, err)
			success, ok := res.(*Success)
			require.True(t, ok)
			assert.Equal(t, tt.format, success.Format)

			switch tt.format {
			case FormatObject:
				assert.Equal(t, map[string]any{"categories": []any{}}, success.Content())
			case FormatJSON:
				assert.Equal(t, []byte(`{"categories":[]}`), success.Content())
			case FormatXML:
				assert.Equal(t, []byte(`<categories/>`), success.Content())
			}
		})
	}
}

func TestExecuteURLJoining(t *testing.T) {
	tests := []struct {
		name    string
		base    string
		path    string
		wantURL string
	}{
		{"plain", "https://example.test", "/fred/category", "https://example.test/fred/category"},
		{"trailing slash on base", "https://example.test/", "/fred/category", "https://example.test/fred/category"},
		{"no leading slash on path", "https://example.test", "fred/category", "https://example.test/fred/category"},
		{"base with path", "https://example.test/api/", "/fred/category/", "https://example.test/api/fred/category/"},
		{"double slashes", "https://example.test//", "//fred//category", "https://example.test/fred/category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := buildURL(tt.base, tt.path, Assemble(P("a", "1")))
			require.NoError(t, err)
			assert.Equal(t, tt.wantURL+"?a=1", got)
		})
	}

	_, err := buildURL("not a url", "/fred", nil)
	assert.ErrorIs(t, err, ErrInvalidBaseURL)
	_, err = buildURL("://bad", "/fred", nil)
	assert.ErrorIs(t, err, ErrInvalidBaseURL)
}

func TestExecuteOutcomes(t *testing.T) {
	t.Run("success with parsed object", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"a":1}`))
		})

		res, err := client.Execute(context.Background(), "/fred/x", nil, FormatObject)
		require.NoError(t, err)
		success, ok := res.(*Success)
		require.True(t, ok)
		assert.Equal(t, http.StatusOK, success.StatusCode())
		assert.Equal(t, map[string]any{"a": float64(1)}, success.Object)
		assert.NoError(t, success.Err())
	})

	t.Run("service error", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error_code":404,"error_message":"Not Found"}`))
		})

		res, err := client.Execute(context.Background(), "/fred/x", nil, FormatObject)
		require.NoError(t, err)
		svcErr, ok := res.(*ServiceError)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, svcErr.StatusCode())
		assert.Contains(t, string(svcErr.Body), "Not Found")
		assert.Equal(t, "fred API error: status 404", svcErr.Error())
		assert.Equal(t, svcErr, svcErr.Err())
	})

	t.Run("server error with malformed body is still a service error", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`<html>`))
		})

		res, err := client.Execute(context.Background(), "/fred/x", nil, FormatObject)
		require.NoError(t, err)
		assert.Equal(t, 500, res.StatusCode())
		assert.IsType(t, &ServiceError{}, res)
	})

	t.Run("transport failure", func(t *testing.T) {
		dialErr := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
		client := NewClient(WithAPIKey("secret"), WithHTTPClient(&http.Client{
			Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
				return nil, dialErr
			}),
		}))

		res, err := client.Execute(context.Background(), "/fred/x", nil, FormatObject)
		require.NoError(t, err)
		failure, ok := res.(*TransportFailure)
		require.True(t, ok)
		assert.Equal(t, -1, failure.StatusCode())
		assert.ErrorIs(t, failure, dialErr)
		assert.NotContains(t, failure.Error(), "secret")
	})

	t.Run("closed server", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		baseURL := server.URL
		server.Close()

		client := NewClient(WithBaseURL(baseURL))
		res, err := client.Execute(context.Background(), "/fred/x", nil, FormatJSON)
		require.NoError(t, err)
		assert.IsType(t, &TransportFailure{}, res)
	})

	t.Run("malformed json body", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"a":`))
		})

		res, err := client.Execute(context.Background(), "/fred/x", nil, FormatObject)
		assert.Nil(t, res)
		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, http.StatusOK, decodeErr.StatusCode)
		assert.Equal(t, []byte(`{"a":`), decodeErr.Body)
	})

	t.Run("malformed body is fine for raw formats", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"a":`))
		})

		res, err := client.Execute(context.Background(), "/fred/x", nil, FormatJSON)
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"a":`), res.(*Success).Body)
	})

	t.Run("invalid format is rejected before dispatch", func(t *testing.T) {
		called := false
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			called = true
		})

		res, err := client.Execute(context.Background(), "/fred/x", nil, ResponseFormat(9))
		assert.Nil(t, res)
		assert.ErrorIs(t, err, ErrInvalidParameter)
		assert.False(t, called)
	})
}

func TestExecuteRedirects(t *testing.T) {
	refererCh := make(chan string, 1)
	mux := http.NewServeMux()
	mux.HandleFunc("/old/fred/x", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/new/fred/x?"+r.URL.RawQuery, http.StatusFound)
	})
	mux.HandleFunc("/new/fred/x", func(w http.ResponseWriter, r *http.Request) {
		refererCh <- r.Header.Get("Referer")
		assert.Equal(t, "K", r.URL.Query().Get("api_key"))
		w.Write([]byte(`{"moved":true}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := NewClient(WithAPIKey("K"), WithBaseURL(server.URL+"/old"))
	res, err := client.Execute(context.Background(), "/fred/x", nil, FormatObject)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"moved": true}, res.(*Success).Object)
	assert.Empty(t, <-refererCh)
}

func TestSetBaseURLRedirectsLaterCalls(t *testing.T) {
	var mu sync.Mutex
	hits := map[string]int{}
	handler := func(name string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			hits[name]++
			mu.Unlock()
			w.Write([]byte(`{}`))
		}
	}
	first := httptest.NewServer(handler("first"))
	defer first.Close()
	second := httptest.NewServer(handler("second"))
	defer second.Close()

	client := NewClient(WithBaseURL(first.URL))
	_, err := client.Execute(context.Background(), "/fred/x", nil, FormatObject)
	require.NoError(t, err)

	client.SetBaseURL(second.URL)
	_, err = client.Execute(context.Background(), "/fred/x", nil, FormatObject)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, map[string]int{"first": 1, "second": 1}, hits)
}

func TestSetAPIKeyAppliesToLaterCalls(t *testing.T) {
	var (
		mu  sync.Mutex
		got []string
	)
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		got = append(got, r.URL.Query().Get("api_key"))
		mu.Unlock()
		w.Write([]byte(`{}`))
	})

	_, err := client.Execute(context.Background(), "/fred/x", nil, FormatJSON)
	require.NoError(t, err)
	client.SetAPIKey("L")
	_, err = client.Execute(context.Background(), "/fred/x", nil, FormatJSON)
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"K", "L"}, got)
}

func TestClientReusableAfterTransportFailure(t *testing.T) {
	fail := true
	client := NewClient(WithHTTPClient(&http.Client{
		Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			if fail {
				return nil, errors.New("connection reset")
			}
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       http.NoBody,
				Request:    r,
			}, nil
		}),
	}))

	res, err := client.Execute(context.Background(), "/fred/x", nil, FormatJSON)
	require.NoError(t, err)
	assert.IsType(t, &TransportFailure{}, res)

	fail = false
	res, err = client.Execute(context.Background(), "/fred/x", nil, FormatJSON)
	require.NoError(t, err)
	assert.IsType(t, &Success{}, res)
}

func TestSuccessDecode(t *testing.T) {
	s := &Success{Status: 200, Format: FormatJSON, Body: []byte(`{"categories":[{"id":13,"name":"U.S. Trade & International Transactions"}]}`)}

	var out struct {
		Categories []struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		} `json:"categories"`
	}
	require.NoError(t, s.Decode(&out))
	require.Len(t, out.Categories, 1)
	assert.Equal(t, 13, out.Categories[0].ID)

	bad := &Success{Status: 200, Format: FormatJSON, Body: []byte(`nope`)}
	var decodeErr *DecodeError
	assert.ErrorAs(t, bad.Decode(&out), &decodeErr)

	xml := &Success{Status: 200, Format: FormatXML, Body: []byte(`<a/>`)}
	assert.ErrorIs(t, xml.Decode(&out), ErrInvalidParameter)
}

func TestRedactURLErrorNested(t *testing.T) {
	inner := &url.Error{Op: "Get", URL: "https://api.stlouisfed.org/fred/series?series_id=GDP&api_key=SECRET", Err: errors.New("connection reset")}
	outer := &url.Error{Op: "Get", URL: "https://proxy.example/fred/series?api_key=SECRET", Err: fmt.Errorf("retry: %w", inner)}

	err := RedactURLError(outer)
	assert.Same(t, outer, err)
	assert.NotContains(t, err.Error(), "SECRET")
	assert.Equal(t, "https://api.stlouisfed.org/fred/series", inner.URL)
	assert.ErrorContains(t, err, "connection reset")

	plain := errors.New("no url here")
	assert.Same(t, plain, RedactURLError(plain))
	assert.Nil(t, RedactURLError(nil))
}

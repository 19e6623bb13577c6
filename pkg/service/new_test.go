package service

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hopper.dev/pkg/logging"
)

func testLogger() Logger {
	return logging.NewMockLogger(logging.FATAL, io.Discard)
}

func TestHTTPService_VerbMethods(t *testing.T) {
	tests := []struct {
		desc       string
		wantMethod string
		call       func(svc HTTP) (*http.Response, error)
	}{
		{"get", http.MethodGet, func(svc HTTP) (*http.Response, error) {
			return svc.Get(context.Background(), "path", nil)
		}},
		{"head", http.MethodHead, func(svc HTTP) (*http.Response, error) {
			return svc.Head(context.Background(), "path", nil)
		}},
		{"post", http.MethodPost, func(svc HTTP) (*http.Response, error) {
			return svc.Post(context.Background(), "path", nil, []byte("body"))
		}},
		{"put", http.MethodPut, func(svc HTTP) (*http.Response, error) {
			return svc.Put(context.Background(), "path", nil, []byte("body"))
		}},
		{"patch", http.MethodPatch, func(svc HTTP) (*http.Response, error) {
			return svc.Patch(context.Background(), "path", nil, []byte("body"))
		}},
		{"delete", http.MethodDelete, func(svc HTTP) (*http.Response, error) {
			return svc.Delete(context.Background(), "path", []byte("body"))
		}},
	}

	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tc.wantMethod, r.Method)
				assert.Equal(t, "/path", r.URL.Path)

				w.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			svc := NewHTTPService(server.URL, testLogger(), nil)

			resp, err := tc.call(svc)
			require.NoError(t, err)

			defer resp.Body.Close()

			assert.Equal(t, http.StatusOK, resp.StatusCode)
		})
	}
}

func TestHTTPService_QueryParameters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "value", r.URL.Query().Get("key"))
		assert.Equal(t, "2", r.URL.Query().Get("count"))

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := NewHTTPService(server.URL, testLogger(), nil)

	resp, err := svc.Get(context.Background(), "search", map[string]interface{}{"key": "value", "count": 2})
	require.NoError(t, err)

	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHTTPService_RequestBodySent(t *testing.T) {
	want := []byte(`{"name":"hopper"}`)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, want, body)

		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	svc := NewHTTPService(server.URL, testLogger(), nil)

	resp, err := svc.PostWithHeaders(context.Background(), "users", nil, want,
		map[string]string{"Content-Type": "application/json"})
	require.NoError(t, err)

	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestHTTPService_FollowsRedirects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/page", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Location", "/final")
		w.WriteHeader(http.StatusFound)
	})
	mux.HandleFunc("/final", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)

		_, _ = w.Write([]byte("landed"))
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	svc := NewHTTPService(server.URL, testLogger(), nil, &RedirectConfig{Limit: 2})

	resp, err := svc.Get(context.Background(), "page", nil)
	require.NoError(t, err)

	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "landed", string(body))
}

func TestHTTPService_RedirectLimitSurfacesError(t *testing.T) {
	server := chainServer(t, http.StatusFound)

	svc := NewHTTPService(server.URL, testLogger(), nil, &RedirectConfig{Limit: 1})

	resp, err := svc.Get(context.Background(), "r/9", nil)
	require.Error(t, err)
	require.Nil(t, resp)

	// the net/http client wraps transport errors in *url.Error
	var limitErr *RedirectLimitError

	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, 1, limitErr.Limit)
	assert.Equal(t, "/r/7", limitErr.Response.Header.Get("Location"))

	limitErr.Response.Body.Close()
}

func TestHTTPService_RedirectWithBaseBody(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/submit", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Location", "/accepted")
		w.WriteHeader(http.StatusTemporaryRedirect)
	})
	mux.HandleFunc("/accepted", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)

		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "payload", string(body))

		w.WriteHeader(http.StatusOK)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	svc := NewHTTPService(server.URL, testLogger(), nil, &RedirectConfig{Limit: 1})

	resp, err := svc.Post(context.Background(), "submit", nil, []byte("payload"))
	require.NoError(t, err)

	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHTTPService_TrailingSlashesTrimmed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/a/b", r.URL.Path)

		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc := NewHTTPService(server.URL+"/", testLogger(), nil)

	resp, err := svc.Get(context.Background(), "/a/b/", nil)
	require.NoError(t, err)

	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRedirectConfig_AddOptionOnWrappedServiceIsNoop(t *testing.T) {
	base := &mockHTTP{}

	redirect := &RedirectConfig{Limit: 1}

	// RedirectConfig rewires the transport of the base service; applied to
	// anything else it has nothing to attach to
	svc := redirect.AddOption(base)

	assert.Equal(t, base, svc)

	resp, err := svc.Get(context.Background(), "/test", nil)
	require.NoError(t, err)

	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestNewRedirectFollower_NilTransportDefaults(t *testing.T) {
	rt := NewRedirectFollower(nil, RedirectConfig{}, nil, nil)

	follower, ok := rt.(*redirectFollower)
	require.True(t, ok)

	assert.Equal(t, http.DefaultTransport, follower.next)
	assert.Equal(t, DefaultRedirectLimit, follower.config.Limit)
}

func TestHTTPService_BodyBuffering(t *testing.T) {
	// two hops that both need the original body
	hops := 0

	mux := http.NewServeMux()
	mux.HandleFunc("/a", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "payload", string(body))

		hops++

		w.Header().Set("Location", "/b")
		w.WriteHeader(http.StatusTemporaryRedirect)
	})
	mux.HandleFunc("/b", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "payload", string(body))

		hops++

		w.WriteHeader(http.StatusOK)
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	rt := testFollower(RedirectConfig{Limit: 1})

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPut, server.URL+"/a",
		bytes.NewBufferString("payload"))
	require.NoError(t, err)

	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)

	resp.Body.Close()

	assert.Equal(t, 2, hops)
}

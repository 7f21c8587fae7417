package wordpress

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("missing URL", func(t *testing.T) {
		_, err := NewClient("", logger)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "URL is required")
	})

	t.Run("trailing slash trimmed", func(t *testing.T) {
		client, err := NewClient("http://localhost:8080/", logger)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080", client.BaseURL())
	})

	t.Run("options", func(t *testing.T) {
		custom := &http.Client{Timeout: 10 * time.Second}
		client, err := NewClient("http://localhost:8080", logger,
			WithHTTPClient(custom),
			WithPageSize(50),
			WithUserAgent("wpbridge-test"),
		)
		require.NoError(t, err)
		assert.Equal(t, custom, client.httpClient)
		assert.Equal(t, 50, client.pageSize)
		assert.Equal(t, "wpbridge-test", client.userAgent)
	})

	t.Run("page size out of range ignored", func(t *testing.T) {
		client, err := NewClient("http://localhost:8080", logger, WithPageSize(500))
		require.NoError(t, err)
		assert.Equal(t, DefaultPageSize, client.pageSize)
	})
}

func TestDoRequestHeaders(t *testing.T) {
	logger := zerolog.Nop()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json/wp/v2/posts", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("admin:secret"))
		assert.Equal(t, wantAuth, r.Header.Get("Authorization"))

		w.Header().Set("X-WP-Total", "7")
		w.Header().Set("X-WP-TotalPages", "1")
		json.NewEncoder(w).Encode([]Post{})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, logger, WithBasicAuth("admin", "secret"))
	require.NoError(t, err)

	_, info, err := client.ListPosts(context.Background(), PostListParams{})
	require.NoError(t, err)
	assert.Equal(t, 7, info.Total)
	assert.Equal(t, 1, info.TotalPages)
}

func TestCookieHeaderOverridesBasicAuth(t *testing.T) {
	logger := zerolog.Nop()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Equal(t, "wordpress_logged_in_abc=tok", r.Header.Get("Cookie"))
		json.NewEncoder(w).Encode(User{ID: 3, Name: "Editor"})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, logger, WithBasicAuth("admin", "secret"))
	require.NoError(t, err)

	user, err := client.GetCurrentUserWithCookies(context.Background(), "wordpress_logged_in_abc=tok")
	require.NoError(t, err)
	assert.Equal(t, 3, user.ID)
}

func TestAPIErrorParsing(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name        string
		status      int
		body        string
		wantCode    string
		wantErrIs   error
		notFound    bool
		unauthorize bool
	}{
		{
			name:      "not found envelope",
			status:    http.StatusNotFound,
			body:      `{"code":"rest_post_invalid_id","message":"Invalid post ID.","data":{"status":404}}`,
			wantCode:  "rest_post_invalid_id",
			wantErrIs: ErrNotFound,
			notFound:  true,
		},
		{
			name:        "unauthorized envelope",
			status:      http.StatusUnauthorized,
			body:        `{"code":"rest_not_logged_in","message":"You are not currently logged in.","data":{"status":401}}`,
			wantCode:    "rest_not_logged_in",
			wantErrIs:   ErrUnauthorized,
			unauthorize: true,
		},
		{
			name:        "forbidden envelope",
			status:      http.StatusForbidden,
			body:        `{"code":"rest_forbidden","message":"Sorry.","data":{"status":403}}`,
			wantCode:    "rest_forbidden",
			wantErrIs:   ErrUnauthorized,
			unauthorize: true,
		},
		{
			name:   "non-JSON body",
			status: http.StatusInternalServerError,
			body:   "<html>fatal error</html>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client, err := NewClient(server.URL, logger)
			require.NoError(t, err)

			_, err = client.GetPost(context.Background(), 99)
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Equal(t, tt.notFound, apiErr.IsNotFound())
			assert.Equal(t, tt.unauthorize, apiErr.IsUnauthorized())

			if tt.wantErrIs != nil {
				assert.True(t, errors.Is(err, tt.wantErrIs))
			}
		})
	}
}

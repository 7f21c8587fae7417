package loader

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wpbridge/wpbridge/wordpress"
)

// newFakeSite serves a small content inventory with real pagination headers.
func newFakeSite(t *testing.T) (*httptest.Server, *int) {
	t.Helper()

	posts := []wordpress.Post{
		{ID: 1, Slug: "first", Title: wordpress.Rendered{Rendered: "First"}, Content: wordpress.Rendered{Rendered: "<p>one</p>"}},
		{ID: 2, Slug: "second", Title: wordpress.Rendered{Rendered: "Second"}, Content: wordpress.Rendered{Rendered: "<p>two</p>"}},
		{ID: 3, Slug: "third", Title: wordpress.Rendered{Rendered: "Third"}, Content: wordpress.Rendered{Rendered: "<p>three</p>"}},
	}
	terms := []wordpress.Term{
		{ID: 10, Name: "News", Slug: "news", Taxonomy: "category"},
	}

	requests := 0
	mux := http.NewServeMux()

	mux.HandleFunc("GET /wp-json/wp/v2/posts", func(w http.ResponseWriter, r *http.Request) {
		requests++

		if slug := r.URL.Query().Get("slug"); slug != "" {
			var matched []wordpress.Post
			for _, p := range posts {
				if p.Slug == slug {
					matched = append(matched, p)
				}
			}
			w.Header().Set("X-WP-Total", strconv.Itoa(len(matched)))
			w.Header().Set("X-WP-TotalPages", "1")
			if matched == nil {
				matched = []wordpress.Post{}
			}
			json.NewEncoder(w).Encode(matched)
			return
		}

		// Serve posts two per page
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page == 0 {
			page = 1
		}
		start := (page - 1) * 2
		end := start + 2
		if end > len(posts) {
			end = len(posts)
		}
		if start > len(posts) {
			start = len(posts)
		}

		w.Header().Set("X-WP-Total", strconv.Itoa(len(posts)))
		w.Header().Set("X-WP-TotalPages", "2")
		json.NewEncoder(w).Encode(posts[start:end])
	})

	mux.HandleFunc("GET /wp-json/wp/v2/posts/{id}", func(w http.ResponseWriter, r *http.Request) {
		requests++
		id, _ := strconv.Atoi(r.PathValue("id"))
		for _, p := range posts {
			if p.ID == id {
				json.NewEncoder(w).Encode(p)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"code":"rest_post_invalid_id","message":"Invalid post ID.","data":{"status":404}}`))
	})

	mux.HandleFunc("GET /wp-json/wp/v2/categories", func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("X-WP-Total", "1")
		w.Header().Set("X-WP-TotalPages", "1")
		json.NewEncoder(w).Encode(terms)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &requests
}

func newTestClient(t *testing.T, serverURL string) *wordpress.Client {
	t.Helper()
	client, err := wordpress.NewClient(serverURL, zerolog.Nop(), wordpress.WithPageSize(2))
	require.NoError(t, err)
	return client
}

func TestStaticLoaderExhaustsPagination(t *testing.T) {
	server, requests := newFakeSite(t)
	l := NewStaticLoader(newTestClient(t, server.URL), zerolog.Nop())

	entries, err := l.LoadCollection(context.Background(), CollectionRequest{
		Collection: CollectionPosts,
	})
	require.NoError(t, err)

	// Full snapshot in upstream order
	require.Len(t, entries, 3)
	assert.Equal(t, "1", entries[0].ID)
	assert.Equal(t, "2", entries[1].ID)
	assert.Equal(t, "3", entries[2].ID)
	assert.Equal(t, "<p>one</p>", entries[0].Rendered)
	assert.Equal(t, 2, *requests, "snapshot must fetch every page")

	post, ok := entries[0].Data.(*wordpress.Post)
	require.True(t, ok)
	assert.Equal(t, "first", post.Slug)
}

func TestLiveLoaderSingleRequest(t *testing.T) {
	server, requests := newFakeSite(t)
	l := NewLiveLoader(newTestClient(t, server.URL), zerolog.Nop())

	entries, err := l.LoadCollection(context.Background(), CollectionRequest{
		Collection: CollectionPosts,
		Posts: &wordpress.PostListParams{
			ListParams: wordpress.ListParams{Page: 2, PerPage: 2},
		},
	})
	require.NoError(t, err)

	// Caller paging forwarded verbatim, no exhaustion
	require.Len(t, entries, 1)
	assert.Equal(t, "3", entries[0].ID)
	assert.Equal(t, 1, *requests)
}

func TestLoadEntryByID(t *testing.T) {
	server, _ := newFakeSite(t)
	l := NewStaticLoader(newTestClient(t, server.URL), zerolog.Nop())

	entry, err := l.LoadEntry(context.Background(), EntryRequest{
		Collection: CollectionPosts,
		ID:         2,
	})
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "2", entry.ID)
	assert.Equal(t, "<p>two</p>", entry.Rendered)
}

func TestLoadEntryBySlug(t *testing.T) {
	server, _ := newFakeSite(t)
	l := NewLiveLoader(newTestClient(t, server.URL), zerolog.Nop())

	entry, err := l.LoadEntry(context.Background(), EntryRequest{
		Collection: CollectionPosts,
		Slug:       "second",
	})
	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.Equal(t, "2", entry.ID)
}

func TestLoadEntryAbsent(t *testing.T) {
	server, _ := newFakeSite(t)
	l := NewStaticLoader(newTestClient(t, server.URL), zerolog.Nop())

	t.Run("unknown slug", func(t *testing.T) {
		entry, err := l.LoadEntry(context.Background(), EntryRequest{
			Collection: CollectionPosts,
			Slug:       "missing",
		})
		require.NoError(t, err)
		assert.Nil(t, entry, "absent entries are a result, not an error")
	})

	t.Run("unknown id", func(t *testing.T) {
		entry, err := l.LoadEntry(context.Background(), EntryRequest{
			Collection: CollectionPosts,
			ID:         999,
		})
		require.NoError(t, err)
		assert.Nil(t, entry)
	})
}

func TestLoadTermCollection(t *testing.T) {
	server, _ := newFakeSite(t)
	l := NewStaticLoader(newTestClient(t, server.URL), zerolog.Nop())

	entries, err := l.LoadCollection(context.Background(), CollectionRequest{
		Collection: CollectionCategories,
	})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "10", entries[0].ID)
}

func TestUnknownCollection(t *testing.T) {
	server, _ := newFakeSite(t)
	l := NewStaticLoader(newTestClient(t, server.URL), zerolog.Nop())

	_, err := l.LoadCollection(context.Background(), CollectionRequest{
		Collection: Collection("widgets"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCollection))

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, Collection("widgets"), loadErr.Collection)
}

func TestLoadCollectionUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"code":"internal_error","message":"boom","data":{"status":500}}`))
	}))
	t.Cleanup(server.Close)

	l := NewStaticLoader(newTestClient(t, server.URL), zerolog.Nop())

	_, err := l.LoadCollection(context.Background(), CollectionRequest{
		Collection: CollectionPosts,
	})
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, CollectionPosts, loadErr.Collection)
}

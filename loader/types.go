package loader

import (
	"context"

	"github.com/wpbridge/wpbridge/wordpress"
)

// Collection names a loadable content collection.
type Collection string

const (
	// CollectionPosts loads blog posts
	CollectionPosts Collection = "posts"
	// CollectionPages loads static pages
	CollectionPages Collection = "pages"
	// CollectionMedia loads media library items
	CollectionMedia Collection = "media"
	// CollectionCategories loads category terms
	CollectionCategories Collection = "categories"
	// CollectionTags loads tag terms
	CollectionTags Collection = "tags"
	// CollectionUsers loads users
	CollectionUsers Collection = "users"
)

// Collections lists every collection the loaders understand.
func Collections() []Collection {
	return []Collection{
		CollectionPosts,
		CollectionPages,
		CollectionMedia,
		CollectionCategories,
		CollectionTags,
		CollectionUsers,
	}
}

// Entry is one item of a loaded collection in the shape the host consumes:
// a string id plus the typed resource record. Rendered carries the rendered
// HTML body for content entries.
type Entry struct {
	ID       string `json:"id"`
	Data     any    `json:"data"`
	Rendered string `json:"rendered,omitempty"`
}

// CollectionRequest is a tagged request for one collection. Exactly the
// params field matching the collection is consulted; a nil field means no
// filtering.
type CollectionRequest struct {
	Collection Collection
	Posts      *wordpress.PostListParams
	Pages      *wordpress.PageListParams
	Media      *wordpress.MediaListParams
	Terms      *wordpress.TermListParams
	Users      *wordpress.UserListParams
}

// EntryRequest addresses a single entry by id or, for content collections,
// by slug. ID takes precedence when both are set.
type EntryRequest struct {
	Collection Collection
	ID         int
	Slug       string
}

// Loader shapes client output into the host's collection-loading contract.
// LoadEntry reports a missing entry as (nil, nil); errors are reserved for
// upstream or request failures.
type Loader interface {
	LoadCollection(ctx context.Context, req CollectionRequest) ([]Entry, error)
	LoadEntry(ctx context.Context, req EntryRequest) (*Entry, error)
}

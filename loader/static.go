package loader

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/wpbridge/wpbridge/wordpress"
)

// StaticLoader produces full collection snapshots for build-time consumers.
// Every list call paginates to exhaustion regardless of the paging fields in
// the request.
type StaticLoader struct {
	entrySource
	logger zerolog.Logger
}

// NewStaticLoader creates a build-time loader over the client.
func NewStaticLoader(client wordpress.ContentReader, logger zerolog.Logger) *StaticLoader {
	return &StaticLoader{
		entrySource: entrySource{client: client},
		logger:      logger,
	}
}

// LoadCollection fetches the entire collection, following upstream pagination
// until exhaustion and preserving upstream order.
func (l *StaticLoader) LoadCollection(ctx context.Context, req CollectionRequest) ([]Entry, error) {
	entries, err := l.loadAll(ctx, req)
	if err != nil {
		return nil, wrapLoadError(req.Collection, err)
	}

	l.logger.Debug().
		Str("collection", string(req.Collection)).
		Int("entries", len(entries)).
		Msg("Loaded collection snapshot")
	return entries, nil
}

func (l *StaticLoader) loadAll(ctx context.Context, req CollectionRequest) ([]Entry, error) {
	switch req.Collection {
	case CollectionPosts:
		params := wordpress.PostListParams{}
		if req.Posts != nil {
			params = *req.Posts
		}
		posts, err := l.client.ListAllPosts(ctx, params)
		if err != nil {
			return nil, err
		}
		entries := make([]Entry, 0, len(posts))
		for i := range posts {
			entries = append(entries, postEntry(&posts[i]))
		}
		return entries, nil

	case CollectionPages:
		params := wordpress.PageListParams{}
		if req.Pages != nil {
			params = *req.Pages
		}
		pages, err := l.client.ListAllPages(ctx, params)
		if err != nil {
			return nil, err
		}
		entries := make([]Entry, 0, len(pages))
		for i := range pages {
			entries = append(entries, pageEntry(&pages[i]))
		}
		return entries, nil

	case CollectionMedia:
		params := wordpress.MediaListParams{}
		if req.Media != nil {
			params = *req.Media
		}
		items, err := l.client.ListAllMedia(ctx, params)
		if err != nil {
			return nil, err
		}
		entries := make([]Entry, 0, len(items))
		for i := range items {
			entries = append(entries, mediaEntry(&items[i]))
		}
		return entries, nil

	case CollectionCategories, CollectionTags:
		taxonomy, _ := taxonomyFor(req.Collection)
		params := wordpress.TermListParams{}
		if req.Terms != nil {
			params = *req.Terms
		}
		terms, err := l.client.ListAllTerms(ctx, taxonomy, params)
		if err != nil {
			return nil, err
		}
		entries := make([]Entry, 0, len(terms))
		for i := range terms {
			entries = append(entries, termEntry(&terms[i]))
		}
		return entries, nil

	case CollectionUsers:
		params := wordpress.UserListParams{}
		if req.Users != nil {
			params = *req.Users
		}
		users, err := l.client.ListAllUsers(ctx, params)
		if err != nil {
			return nil, err
		}
		entries := make([]Entry, 0, len(users))
		for i := range users {
			entries = append(entries, userEntry(&users[i]))
		}
		return entries, nil
	}

	return nil, ErrUnknownCollection
}

// LoadEntry resolves a single entry by id or slug.
func (l *StaticLoader) LoadEntry(ctx context.Context, req EntryRequest) (*Entry, error) {
	return l.loadEntry(ctx, req)
}

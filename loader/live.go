package loader

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/wpbridge/wpbridge/wordpress"
)

// LiveLoader serves runtime requests: each call is one upstream request and
// the caller's paging fields are forwarded verbatim.
type LiveLoader struct {
	entrySource
	logger zerolog.Logger
}

// NewLiveLoader creates a runtime loader over the client.
func NewLiveLoader(client wordpress.ContentReader, logger zerolog.Logger) *LiveLoader {
	return &LiveLoader{
		entrySource: entrySource{client: client},
		logger:      logger,
	}
}

// LoadCollection fetches one page of the collection as filtered by the
// request.
func (l *LiveLoader) LoadCollection(ctx context.Context, req CollectionRequest) ([]Entry, error) {
	entries, err := l.loadPage(ctx, req)
	if err != nil {
		return nil, wrapLoadError(req.Collection, err)
	}
	return entries, nil
}

func (l *LiveLoader) loadPage(ctx context.Context, req CollectionRequest) ([]Entry, error) {
	switch req.Collection {
	case CollectionPosts:
		params := wordpress.PostListParams{}
		if req.Posts != nil {
			params = *req.Posts
		}
		posts, _, err := l.client.ListPosts(ctx, params)
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
		pages, _, err := l.client.ListPages(ctx, params)
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
		items, _, err := l.client.ListMedia(ctx, params)
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
		terms, _, err := l.client.ListTerms(ctx, taxonomy, params)
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
		users, _, err := l.client.ListUsers(ctx, params)
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
func (l *LiveLoader) LoadEntry(ctx context.Context, req EntryRequest) (*Entry, error) {
	return l.loadEntry(ctx, req)
}

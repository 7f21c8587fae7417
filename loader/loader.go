package loader

import (
	"context"
	"errors"
	"strconv"

	"github.com/wpbridge/wpbridge/wordpress"
)

// postEntry shapes a post into the host's entry contract.
func postEntry(p *wordpress.Post) Entry {
	return Entry{
		ID:       strconv.Itoa(p.ID),
		Data:     p,
		Rendered: p.Content.Rendered,
	}
}

// pageEntry shapes a page into the host's entry contract.
func pageEntry(p *wordpress.Page) Entry {
	return Entry{
		ID:       strconv.Itoa(p.ID),
		Data:     p,
		Rendered: p.Content.Rendered,
	}
}

func mediaEntry(m *wordpress.Media) Entry {
	return Entry{ID: strconv.Itoa(m.ID), Data: m}
}

func termEntry(t *wordpress.Term) Entry {
	return Entry{ID: strconv.Itoa(t.ID), Data: t}
}

func userEntry(u *wordpress.User) Entry {
	return Entry{ID: strconv.Itoa(u.ID), Data: u}
}

// taxonomyFor maps term collections onto their upstream taxonomy.
func taxonomyFor(c Collection) (wordpress.Taxonomy, bool) {
	switch c {
	case CollectionCategories:
		return wordpress.TaxonomyCategory, true
	case CollectionTags:
		return wordpress.TaxonomyTag, true
	}
	return "", false
}

// entrySource is the shared singular-lookup half of both loaders.
type entrySource struct {
	client wordpress.ContentReader
}

// loadEntry resolves a single entry by id or slug. A missing entry returns
// (nil, nil); only upstream or request failures produce an error.
func (s entrySource) loadEntry(ctx context.Context, req EntryRequest) (*Entry, error) {
	entry, err := s.fetchEntry(ctx, req)
	if err != nil {
		if errors.Is(err, wordpress.ErrNotFound) {
			return nil, nil
		}
		return nil, wrapLoadError(req.Collection, err)
	}
	return entry, nil
}

func (s entrySource) fetchEntry(ctx context.Context, req EntryRequest) (*Entry, error) {
	switch req.Collection {
	case CollectionPosts:
		var post *wordpress.Post
		var err error
		if req.ID != 0 {
			post, err = s.client.GetPost(ctx, req.ID)
		} else {
			post, err = s.client.GetPostBySlug(ctx, req.Slug)
		}
		if err != nil {
			return nil, err
		}
		entry := postEntry(post)
		return &entry, nil

	case CollectionPages:
		var page *wordpress.Page
		var err error
		if req.ID != 0 {
			page, err = s.client.GetPage(ctx, req.ID)
		} else {
			page, err = s.client.GetPageBySlug(ctx, req.Slug)
		}
		if err != nil {
			return nil, err
		}
		entry := pageEntry(page)
		return &entry, nil

	case CollectionMedia:
		media, err := s.client.GetMedia(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		entry := mediaEntry(media)
		return &entry, nil

	case CollectionCategories, CollectionTags:
		taxonomy, _ := taxonomyFor(req.Collection)
		var term *wordpress.Term
		var err error
		if req.ID != 0 {
			term, err = s.client.GetTerm(ctx, taxonomy, req.ID)
		} else {
			term, err = s.client.GetTermBySlug(ctx, taxonomy, req.Slug)
		}
		if err != nil {
			return nil, err
		}
		entry := termEntry(term)
		return &entry, nil

	case CollectionUsers:
		user, err := s.client.GetUser(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		entry := userEntry(user)
		return &entry, nil
	}

	return nil, ErrUnknownCollection
}

package wordpress

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// lookupConcurrency bounds the parallel reference lookups performed while
// building PostInfo values.
const lookupConcurrency = 3

// PostInfo is a flattened projection of a post with taxonomy and author
// references resolved to names, used for filtering and display.
type PostInfo struct {
	ID            int
	Title         string
	Slug          string
	Status        string
	Link          string
	AuthorID      int
	AuthorName    string
	Date          time.Time
	Modified      time.Time
	Sticky        bool
	Categories    []string
	Tags          []string
	FeaturedMedia int
	MediaURL      string
	Excerpt       string
}

// refIndex maps resource ids to display names for one reference lookup pass.
type refIndex struct {
	categories map[int]string
	tags       map[int]string
	users      map[int]string
	media      map[int]string
}

// buildRefIndex fetches categories, tags, users and media concurrently and
// indexes them by id. Individual lookup failures are logged and leave that
// index empty rather than failing the whole pass; users and media commonly
// require credentials the caller may not have.
func (c *Client) buildRefIndex(ctx context.Context) *refIndex {
	idx := &refIndex{
		categories: make(map[int]string),
		tags:       make(map[int]string),
		users:      make(map[int]string),
		media:      make(map[int]string),
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(lookupConcurrency)

	g.Go(func() error {
		terms, err := c.ListAllTerms(ctx, TaxonomyCategory, TermListParams{})
		if err != nil {
			c.logger.Warn().Err(err).Msg("Failed to resolve categories")
			return nil
		}
		mu.Lock()
		for _, t := range terms {
			idx.categories[t.ID] = t.Name
		}
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		terms, err := c.ListAllTerms(ctx, TaxonomyTag, TermListParams{})
		if err != nil {
			c.logger.Warn().Err(err).Msg("Failed to resolve tags")
			return nil
		}
		mu.Lock()
		for _, t := range terms {
			idx.tags[t.ID] = t.Name
		}
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		users, err := c.ListAllUsers(ctx, UserListParams{})
		if err != nil {
			c.logger.Warn().Err(err).Msg("Failed to resolve authors")
			return nil
		}
		mu.Lock()
		for _, u := range users {
			idx.users[u.ID] = u.DisplayName()
		}
		mu.Unlock()
		return nil
	})

	g.Go(func() error {
		items, err := c.ListAllMedia(ctx, MediaListParams{})
		if err != nil {
			c.logger.Warn().Err(err).Msg("Failed to resolve media")
			return nil
		}
		mu.Lock()
		for _, m := range items {
			idx.media[m.ID] = m.SourceURL
		}
		mu.Unlock()
		return nil
	})

	// Workers swallow their own errors, Wait only observes ctx cancellation.
	_ = g.Wait()
	return idx
}

// BuildPostInfos converts posts into flattened PostInfo projections, resolving
// author, category, tag and featured-media references against the origin.
func (c *Client) BuildPostInfos(ctx context.Context, posts []Post) []PostInfo {
	idx := c.buildRefIndex(ctx)

	infos := make([]PostInfo, 0, len(posts))
	for i := range posts {
		infos = append(infos, buildPostInfo(&posts[i], idx))
	}
	return infos
}

func buildPostInfo(post *Post, idx *refIndex) PostInfo {
	info := PostInfo{
		ID:            post.ID,
		Title:         post.Title.Rendered,
		Slug:          post.Slug,
		Status:        string(post.Status),
		Link:          post.Link,
		AuthorID:      post.Author,
		Date:          post.Date,
		Modified:      post.Modified,
		Sticky:        post.Sticky,
		FeaturedMedia: post.FeaturedMedia,
		Excerpt:       post.Excerpt.Rendered,
		Categories:    make([]string, 0, len(post.Categories)),
		Tags:          make([]string, 0, len(post.Tags)),
	}

	for _, id := range post.Categories {
		if name, ok := idx.categories[id]; ok {
			info.Categories = append(info.Categories, name)
		}
	}
	for _, id := range post.Tags {
		if name, ok := idx.tags[id]; ok {
			info.Tags = append(info.Tags, name)
		}
	}
	if name, ok := idx.users[post.Author]; ok {
		info.AuthorName = name
	}
	if link, ok := idx.media[post.FeaturedMedia]; ok {
		info.MediaURL = link
	}

	return info
}

package wordpress

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// PostInput holds the writable fields of a post. Zero-valued fields are left
// untouched by the origin on update.
type PostInput struct {
	Title         string `json:"title,omitempty"`
	Content       string `json:"content,omitempty"`
	Excerpt       string `json:"excerpt,omitempty"`
	Slug          string `json:"slug,omitempty"`
	Status        Status `json:"status,omitempty"`
	Author        int    `json:"author,omitempty"`
	FeaturedMedia int    `json:"featured_media,omitempty"`
	Format        string `json:"format,omitempty"`
	Sticky        *bool  `json:"sticky,omitempty"`
	Categories    []int  `json:"categories,omitempty"`
	Tags          []int  `json:"tags,omitempty"`
}

// ListPosts retrieves one page of posts matching the filter.
func (c *Client) ListPosts(ctx context.Context, params PostListParams) ([]Post, PageInfo, error) {
	values, err := encodeParams(params)
	if err != nil {
		return nil, PageInfo{}, err
	}

	var posts []Post
	info, err := c.get(ctx, "/posts", values, &posts)
	if err != nil {
		return nil, PageInfo{}, fmt.Errorf("failed to get posts: %w", err)
	}
	return posts, info, nil
}

// ListAllPosts retrieves every post matching the filter, following the
// X-WP-TotalPages header until the last page.
func (c *Client) ListAllPosts(ctx context.Context, params PostListParams) ([]Post, error) {
	if params.PerPage == 0 {
		params.PerPage = c.pageSize
	}

	var all []Post
	page := 1

	for {
		params.Page = page
		posts, info, err := c.ListPosts(ctx, params)
		if err != nil {
			return nil, err
		}
		all = append(all, posts...)

		c.logger.Debug().
			Int("page", page).
			Int("count", len(posts)).
			Int("total", len(all)).
			Msg("Retrieved posts from WordPress")

		if page >= info.TotalPages {
			break
		}
		page++
	}

	return all, nil
}

// GetPost retrieves a single post by id.
func (c *Client) GetPost(ctx context.Context, id int) (*Post, error) {
	var post Post
	if _, err := c.get(ctx, "/posts/"+strconv.Itoa(id), nil, &post); err != nil {
		return nil, fmt.Errorf("failed to get post %d: %w", id, err)
	}
	return &post, nil
}

// GetPostBySlug retrieves a single post by slug. Returns ErrNotFound when no
// post has the slug.
func (c *Client) GetPostBySlug(ctx context.Context, slug string) (*Post, error) {
	posts, _, err := c.ListPosts(ctx, PostListParams{Slug: []string{slug}})
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, fmt.Errorf("post %q: %w", slug, ErrNotFound)
	}
	return &posts[0], nil
}

// CreatePost creates a new post and returns the origin's view of it.
func (c *Client) CreatePost(ctx context.Context, input PostInput) (*Post, error) {
	var post Post
	if err := c.send(ctx, http.MethodPost, "/posts", nil, input, &post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	c.logger.Info().Int("post_id", post.ID).Str("slug", post.Slug).Msg("Created post")
	return &post, nil
}

// UpdatePost applies the set fields of input to an existing post.
func (c *Client) UpdatePost(ctx context.Context, id int, input PostInput) (*Post, error) {
	var post Post
	if err := c.send(ctx, http.MethodPost, "/posts/"+strconv.Itoa(id), nil, input, &post); err != nil {
		return nil, fmt.Errorf("failed to update post %d: %w", id, err)
	}
	return &post, nil
}

// DeletePost deletes a post. With force the post is removed permanently
// instead of being moved to trash.
func (c *Client) DeletePost(ctx context.Context, id int, force bool) error {
	params := url.Values{}
	if force {
		params.Set("force", "true")
	}
	if err := c.send(ctx, http.MethodDelete, "/posts/"+strconv.Itoa(id), params, nil, nil); err != nil {
		return fmt.Errorf("failed to delete post %d: %w", id, err)
	}

	c.logger.Info().Int("post_id", id).Bool("force", force).Msg("Deleted post")
	return nil
}

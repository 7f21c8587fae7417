package wordpress

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// PageInput holds the writable fields of a page.
type PageInput struct {
	Title         string `json:"title,omitempty"`
	Content       string `json:"content,omitempty"`
	Excerpt       string `json:"excerpt,omitempty"`
	Slug          string `json:"slug,omitempty"`
	Status        Status `json:"status,omitempty"`
	Author        int    `json:"author,omitempty"`
	Parent        int    `json:"parent,omitempty"`
	MenuOrder     *int   `json:"menu_order,omitempty"`
	FeaturedMedia int    `json:"featured_media,omitempty"`
	Template      string `json:"template,omitempty"`
}

// ListPages retrieves one page of pages matching the filter.
func (c *Client) ListPages(ctx context.Context, params PageListParams) ([]Page, PageInfo, error) {
	values, err := encodeParams(params)
	if err != nil {
		return nil, PageInfo{}, err
	}

	var pages []Page
	info, err := c.get(ctx, "/pages", values, &pages)
	if err != nil {
		return nil, PageInfo{}, fmt.Errorf("failed to get pages: %w", err)
	}
	return pages, info, nil
}

// ListAllPages retrieves every page matching the filter.
func (c *Client) ListAllPages(ctx context.Context, params PageListParams) ([]Page, error) {
	if params.PerPage == 0 {
		params.PerPage = c.pageSize
	}

	var all []Page
	page := 1

	for {
		params.Page = page
		pages, info, err := c.ListPages(ctx, params)
		if err != nil {
			return nil, err
		}
		all = append(all, pages...)

		if page >= info.TotalPages {
			break
		}
		page++
	}

	return all, nil
}

// GetPage retrieves a single page by id.
func (c *Client) GetPage(ctx context.Context, id int) (*Page, error) {
	var p Page
	if _, err := c.get(ctx, "/pages/"+strconv.Itoa(id), nil, &p); err != nil {
		return nil, fmt.Errorf("failed to get page %d: %w", id, err)
	}
	return &p, nil
}

// GetPageBySlug retrieves a single page by slug. Returns ErrNotFound when no
// page has the slug.
func (c *Client) GetPageBySlug(ctx context.Context, slug string) (*Page, error) {
	pages, _, err := c.ListPages(ctx, PageListParams{Slug: []string{slug}})
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("page %q: %w", slug, ErrNotFound)
	}
	return &pages[0], nil
}

// CreatePage creates a new page.
func (c *Client) CreatePage(ctx context.Context, input PageInput) (*Page, error) {
	var p Page
	if err := c.send(ctx, http.MethodPost, "/pages", nil, input, &p); err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	c.logger.Info().Int("page_id", p.ID).Str("slug", p.Slug).Msg("Created page")
	return &p, nil
}

// UpdatePage applies the set fields of input to an existing page.
func (c *Client) UpdatePage(ctx context.Context, id int, input PageInput) (*Page, error) {
	var p Page
	if err := c.send(ctx, http.MethodPost, "/pages/"+strconv.Itoa(id), nil, input, &p); err != nil {
		return nil, fmt.Errorf("failed to update page %d: %w", id, err)
	}
	return &p, nil
}

// DeletePage deletes a page.
func (c *Client) DeletePage(ctx context.Context, id int, force bool) error {
	params := url.Values{}
	if force {
		params.Set("force", "true")
	}
	if err := c.send(ctx, http.MethodDelete, "/pages/"+strconv.Itoa(id), params, nil, nil); err != nil {
		return fmt.Errorf("failed to delete page %d: %w", id, err)
	}
	return nil
}

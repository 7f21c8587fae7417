package wordpress

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// MediaInput holds the writable metadata fields of a media item. File upload
// itself goes through the origin's admin surface; this client only manages
// metadata.
type MediaInput struct {
	Title       string `json:"title,omitempty"`
	Caption     string `json:"caption,omitempty"`
	AltText     string `json:"alt_text,omitempty"`
	Description string `json:"description,omitempty"`
	Post        int    `json:"post,omitempty"`
}

// ListMedia retrieves one page of media items matching the filter.
func (c *Client) ListMedia(ctx context.Context, params MediaListParams) ([]Media, PageInfo, error) {
	values, err := encodeParams(params)
	if err != nil {
		return nil, PageInfo{}, err
	}

	var items []Media
	info, err := c.get(ctx, "/media", values, &items)
	if err != nil {
		return nil, PageInfo{}, fmt.Errorf("failed to get media: %w", err)
	}
	return items, info, nil
}

// ListAllMedia retrieves every media item matching the filter.
func (c *Client) ListAllMedia(ctx context.Context, params MediaListParams) ([]Media, error) {
	if params.PerPage == 0 {
		params.PerPage = c.pageSize
	}

	var all []Media
	page := 1

	for {
		params.Page = page
		items, info, err := c.ListMedia(ctx, params)
		if err != nil {
			return nil, err
		}
		all = append(all, items...)

		if page >= info.TotalPages {
			break
		}
		page++
	}

	return all, nil
}

// GetMedia retrieves a single media item by id.
func (c *Client) GetMedia(ctx context.Context, id int) (*Media, error) {
	var m Media
	if _, err := c.get(ctx, "/media/"+strconv.Itoa(id), nil, &m); err != nil {
		return nil, fmt.Errorf("failed to get media %d: %w", id, err)
	}
	return &m, nil
}

// UpdateMedia applies the set metadata fields of input to a media item.
func (c *Client) UpdateMedia(ctx context.Context, id int, input MediaInput) (*Media, error) {
	var m Media
	if err := c.send(ctx, http.MethodPost, "/media/"+strconv.Itoa(id), nil, input, &m); err != nil {
		return nil, fmt.Errorf("failed to update media %d: %w", id, err)
	}
	return &m, nil
}

// DeleteMedia deletes a media item. Media cannot be trashed, so the origin
// requires force.
func (c *Client) DeleteMedia(ctx context.Context, id int) error {
	params := url.Values{}
	params.Set("force", "true")
	if err := c.send(ctx, http.MethodDelete, "/media/"+strconv.Itoa(id), params, nil, nil); err != nil {
		return fmt.Errorf("failed to delete media %d: %w", id, err)
	}

	c.logger.Info().Int("media_id", id).Msg("Deleted media item")
	return nil
}

package wordpress

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// CommentInput holds the writable fields of a comment.
type CommentInput struct {
	Post        int    `json:"post,omitempty"`
	Parent      int    `json:"parent,omitempty"`
	Content     string `json:"content,omitempty"`
	AuthorName  string `json:"author_name,omitempty"`
	AuthorEmail string `json:"author_email,omitempty"`
	AuthorURL   string `json:"author_url,omitempty"`
}

// ListComments retrieves one page of comments matching the filter.
func (c *Client) ListComments(ctx context.Context, params CommentListParams) ([]Comment, PageInfo, error) {
	values, err := encodeParams(params)
	if err != nil {
		return nil, PageInfo{}, err
	}

	var comments []Comment
	info, err := c.get(ctx, "/comments", values, &comments)
	if err != nil {
		return nil, PageInfo{}, fmt.Errorf("failed to get comments: %w", err)
	}
	return comments, info, nil
}

// ListAllComments retrieves every comment matching the filter.
func (c *Client) ListAllComments(ctx context.Context, params CommentListParams) ([]Comment, error) {
	if params.PerPage == 0 {
		params.PerPage = c.pageSize
	}

	var all []Comment
	page := 1

	for {
		params.Page = page
		comments, info, err := c.ListComments(ctx, params)
		if err != nil {
			return nil, err
		}
		all = append(all, comments...)

		if page >= info.TotalPages {
			break
		}
		page++
	}

	return all, nil
}

// GetComment retrieves a single comment by id.
func (c *Client) GetComment(ctx context.Context, id int) (*Comment, error) {
	var comment Comment
	if _, err := c.get(ctx, "/comments/"+strconv.Itoa(id), nil, &comment); err != nil {
		return nil, fmt.Errorf("failed to get comment %d: %w", id, err)
	}
	return &comment, nil
}

// CreateComment creates a new comment.
func (c *Client) CreateComment(ctx context.Context, input CommentInput) (*Comment, error) {
	var comment Comment
	if err := c.send(ctx, http.MethodPost, "/comments", nil, input, &comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return &comment, nil
}

// DeleteComment deletes a comment.
func (c *Client) DeleteComment(ctx context.Context, id int, force bool) error {
	params := url.Values{}
	if force {
		params.Set("force", "true")
	}
	if err := c.send(ctx, http.MethodDelete, "/comments/"+strconv.Itoa(id), params, nil, nil); err != nil {
		return fmt.Errorf("failed to delete comment %d: %w", id, err)
	}
	return nil
}

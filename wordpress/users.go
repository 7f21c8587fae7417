package wordpress

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ListUsers retrieves one page of users matching the filter.
func (c *Client) ListUsers(ctx context.Context, params UserListParams) ([]User, PageInfo, error) {
	values, err := encodeParams(params)
	if err != nil {
		return nil, PageInfo{}, err
	}

	var users []User
	info, err := c.get(ctx, "/users", values, &users)
	if err != nil {
		return nil, PageInfo{}, fmt.Errorf("failed to get users: %w", err)
	}
	return users, info, nil
}

// ListAllUsers retrieves every user matching the filter.
func (c *Client) ListAllUsers(ctx context.Context, params UserListParams) ([]User, error) {
	if params.PerPage == 0 {
		params.PerPage = c.pageSize
	}

	var all []User
	page := 1

	for {
		params.Page = page
		users, info, err := c.ListUsers(ctx, params)
		if err != nil {
			return nil, err
		}
		all = append(all, users...)

		if page >= info.TotalPages {
			break
		}
		page++
	}

	return all, nil
}

// GetUser retrieves a single user by id.
func (c *Client) GetUser(ctx context.Context, id int) (*User, error) {
	var user User
	if _, err := c.get(ctx, "/users/"+strconv.Itoa(id), nil, &user); err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return &user, nil
}

// GetCurrentUser retrieves the user the configured credentials resolve to.
func (c *Client) GetCurrentUser(ctx context.Context) (*User, error) {
	return c.currentUser(ctx, "")
}

// GetCurrentUserWithCookies retrieves the user a session cookie header
// resolves to. Used by the login handshake to verify harvested cookies.
func (c *Client) GetCurrentUserWithCookies(ctx context.Context, cookies string) (*User, error) {
	if cookies == "" {
		return nil, ErrUnauthorized
	}
	return c.currentUser(ctx, cookies)
}

func (c *Client) currentUser(ctx context.Context, cookies string) (*User, error) {
	params := url.Values{}
	params.Set("context", "edit")

	body, _, err := c.doRequest(ctx, http.MethodGet, "/users/me", params, nil, cookies)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &user, nil
}

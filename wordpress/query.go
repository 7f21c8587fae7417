package wordpress

import (
	"fmt"
	"net/url"
	"time"

	"github.com/google/go-querystring/query"
)

// ListParams holds paging and ordering parameters shared by every list
// endpoint. Zero values are omitted from the query string, so an empty
// struct produces no parameters at all.
type ListParams struct {
	Context string `url:"context,omitempty"`
	Page    int    `url:"page,omitempty"`
	PerPage int    `url:"per_page,omitempty"`
	Search  string `url:"search,omitempty"`
	Order   string `url:"order,omitempty"`
	OrderBy string `url:"orderby,omitempty"`
	Include []int  `url:"include,omitempty,comma"`
	Exclude []int  `url:"exclude,omitempty,comma"`
	Embed   bool   `url:"_embed,omitempty"`
}

// PostListParams filters the posts list endpoint.
type PostListParams struct {
	ListParams
	Slug          []string   `url:"slug,omitempty,comma"`
	Status        []string   `url:"status,omitempty,comma"`
	Author        []int      `url:"author,omitempty,comma"`
	AuthorExclude []int      `url:"author_exclude,omitempty,comma"`
	Categories    []int      `url:"categories,omitempty,comma"`
	Tags          []int      `url:"tags,omitempty,comma"`
	Sticky        *bool      `url:"sticky,omitempty"`
	After         *time.Time `url:"after,omitempty"`
	Before        *time.Time `url:"before,omitempty"`
}

// PageListParams filters the pages list endpoint.
type PageListParams struct {
	ListParams
	Slug      []string `url:"slug,omitempty,comma"`
	Status    []string `url:"status,omitempty,comma"`
	Author    []int    `url:"author,omitempty,comma"`
	Parent    []int    `url:"parent,omitempty,comma"`
	MenuOrder *int     `url:"menu_order,omitempty"`
}

// MediaListParams filters the media list endpoint.
type MediaListParams struct {
	ListParams
	Slug      []string `url:"slug,omitempty,comma"`
	Author    []int    `url:"author,omitempty,comma"`
	Parent    []int    `url:"parent,omitempty,comma"`
	MediaType string   `url:"media_type,omitempty"`
	MimeType  string   `url:"mime_type,omitempty"`
}

// TermListParams filters the taxonomy term list endpoints.
type TermListParams struct {
	ListParams
	Slug      []string `url:"slug,omitempty,comma"`
	Parent    *int     `url:"parent,omitempty"`
	Post      *int     `url:"post,omitempty"`
	HideEmpty bool     `url:"hide_empty,omitempty"`
}

// UserListParams filters the users list endpoint.
type UserListParams struct {
	ListParams
	Slug  []string `url:"slug,omitempty,comma"`
	Roles []string `url:"roles,omitempty,comma"`
}

// CommentListParams filters the comments list endpoint.
type CommentListParams struct {
	ListParams
	Post   []int    `url:"post,omitempty,comma"`
	Parent []int    `url:"parent,omitempty,comma"`
	Status string   `url:"status,omitempty"`
	Author []int    `url:"author,omitempty,comma"`
	Type   string   `url:"type,omitempty"`
	Slug   []string `url:"slug,omitempty,comma"`
}

// encodeParams turns a params struct into url.Values using its url tags.
func encodeParams(params any) (url.Values, error) {
	if params == nil {
		return url.Values{}, nil
	}
	values, err := query.Values(params)
	if err != nil {
		return nil, fmt.Errorf("failed to encode query parameters: %w", err)
	}
	return values, nil
}

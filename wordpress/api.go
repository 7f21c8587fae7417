package wordpress

import (
	"context"
)

// ContentReader defines the read operations the loader adapters depend on.
type ContentReader interface {
	// ListPosts fetches a single page of posts
	ListPosts(ctx context.Context, params PostListParams) ([]Post, PageInfo, error)

	// ListAllPosts fetches all posts using pagination
	ListAllPosts(ctx context.Context, params PostListParams) ([]Post, error)

	// GetPost fetches a single post by id
	GetPost(ctx context.Context, id int) (*Post, error)

	// GetPostBySlug fetches a single post by slug
	GetPostBySlug(ctx context.Context, slug string) (*Post, error)

	// ListPages fetches a single page of pages
	ListPages(ctx context.Context, params PageListParams) ([]Page, PageInfo, error)

	// ListAllPages fetches all pages using pagination
	ListAllPages(ctx context.Context, params PageListParams) ([]Page, error)

	// GetPage fetches a single page by id
	GetPage(ctx context.Context, id int) (*Page, error)

	// GetPageBySlug fetches a single page by slug
	GetPageBySlug(ctx context.Context, slug string) (*Page, error)

	// ListMedia fetches a single page of media items
	ListMedia(ctx context.Context, params MediaListParams) ([]Media, PageInfo, error)

	// ListAllMedia fetches all media items using pagination
	ListAllMedia(ctx context.Context, params MediaListParams) ([]Media, error)

	// GetMedia fetches a single media item by id
	GetMedia(ctx context.Context, id int) (*Media, error)

	// ListTerms fetches a single page of terms of a taxonomy
	ListTerms(ctx context.Context, taxonomy Taxonomy, params TermListParams) ([]Term, PageInfo, error)

	// ListAllTerms fetches all terms of a taxonomy using pagination
	ListAllTerms(ctx context.Context, taxonomy Taxonomy, params TermListParams) ([]Term, error)

	// GetTerm fetches a single term by id
	GetTerm(ctx context.Context, taxonomy Taxonomy, id int) (*Term, error)

	// GetTermBySlug fetches a single term by slug
	GetTermBySlug(ctx context.Context, taxonomy Taxonomy, slug string) (*Term, error)

	// ListUsers fetches a single page of users
	ListUsers(ctx context.Context, params UserListParams) ([]User, PageInfo, error)

	// ListAllUsers fetches all users using pagination
	ListAllUsers(ctx context.Context, params UserListParams) ([]User, error)

	// GetUser fetches a single user by id
	GetUser(ctx context.Context, id int) (*User, error)
}

// CurrentUserFetcher verifies upstream session cookies by resolving the user
// they belong to. Implemented by Client, consumed by the auth bridge.
type CurrentUserFetcher interface {
	// GetCurrentUserWithCookies resolves the user a cookie header belongs to
	GetCurrentUserWithCookies(ctx context.Context, cookies string) (*User, error)
}

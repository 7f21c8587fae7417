// Package wordpress provides a client for the WordPress REST API.
//
// The client wraps the wp/v2 namespace with typed resource methods for posts,
// pages, media, taxonomy terms, users, comments and site settings.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: The main API client with per-resource methods
//   - Types: Domain models mirroring WordPress REST resources
//   - Query: Typed filter structs encoded into query parameters
//   - Errors: Structured error types for better error handling
//
// # Usage
//
// Create a new client with your site URL:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := wordpress.NewClient(
//		"https://example.com",
//		logger,
//		wordpress.WithBasicAuth("admin", "xxxx xxxx xxxx xxxx"),
//		wordpress.WithPageSize(100),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Fetch all published posts
//	ctx := context.Background()
//	posts, err := client.ListAllPosts(ctx, wordpress.PostListParams{
//		Status: []string{"publish"},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Pagination
//
// List methods come in two shapes: ListX fetches one page and reports the
// totals WordPress returns in the X-WP-Total/X-WP-TotalPages headers, while
// ListAllX follows those headers page by page and concatenates the results in
// upstream order.
//
// # Error Handling
//
// Failures surface as *APIError values wrapping the package sentinels, so
// callers can classify with errors.Is:
//
//	if errors.Is(err, wordpress.ErrNotFound) {
//		// absent resource
//	}
package wordpress

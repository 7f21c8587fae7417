package wordpress

import "time"

// PageInfo carries the pagination totals WordPress reports via the
// X-WP-Total and X-WP-TotalPages response headers.
type PageInfo struct {
	Total      int
	TotalPages int
}

// Rendered wraps the {"rendered": "..."} objects WordPress uses for
// title/content/excerpt fields.
type Rendered struct {
	Rendered  string `json:"rendered"`
	Protected bool   `json:"protected,omitempty"`
}

// Status represents a content entry status
type Status string

const (
	// StatusPublish indicates published content
	StatusPublish Status = "publish"
	// StatusDraft indicates draft content
	StatusDraft Status = "draft"
	// StatusPending indicates content pending review
	StatusPending Status = "pending"
	// StatusPrivate indicates private content
	StatusPrivate Status = "private"
	// StatusFuture indicates scheduled content
	StatusFuture Status = "future"
	// StatusTrash indicates trashed content
	StatusTrash Status = "trash"
)

// IsPublic reports whether content with this status is publicly visible.
func (s Status) IsPublic() bool {
	return s == StatusPublish
}

// Post represents a post resource
type Post struct {
	ID            int       `json:"id"`
	Date          time.Time `json:"date"`
	DateGMT       time.Time `json:"date_gmt"`
	Modified      time.Time `json:"modified"`
	ModifiedGMT   time.Time `json:"modified_gmt"`
	Slug          string    `json:"slug"`
	Status        Status    `json:"status"`
	Type          string    `json:"type"`
	Link          string    `json:"link"`
	Title         Rendered  `json:"title"`
	Content       Rendered  `json:"content"`
	Excerpt       Rendered  `json:"excerpt"`
	Author        int       `json:"author"`
	FeaturedMedia int       `json:"featured_media"`
	CommentStatus string    `json:"comment_status,omitempty"`
	Sticky        bool      `json:"sticky"`
	Format        string    `json:"format,omitempty"`
	Categories    []int     `json:"categories"`
	Tags          []int     `json:"tags"`
}

// Page represents a page resource
type Page struct {
	ID            int       `json:"id"`
	Date          time.Time `json:"date"`
	Modified      time.Time `json:"modified"`
	Slug          string    `json:"slug"`
	Status        Status    `json:"status"`
	Type          string    `json:"type"`
	Link          string    `json:"link"`
	Title         Rendered  `json:"title"`
	Content       Rendered  `json:"content"`
	Excerpt       Rendered  `json:"excerpt"`
	Author        int       `json:"author"`
	Parent        int       `json:"parent"`
	MenuOrder     int       `json:"menu_order"`
	FeaturedMedia int       `json:"featured_media"`
	Template      string    `json:"template,omitempty"`
}

// MediaSize describes one generated size of a media item.
type MediaSize struct {
	File      string `json:"file"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	MimeType  string `json:"mime_type"`
	SourceURL string `json:"source_url"`
}

// MediaDetails holds dimension and size metadata for a media item.
type MediaDetails struct {
	Width  int                  `json:"width"`
	Height int                  `json:"height"`
	File   string               `json:"file"`
	Sizes  map[string]MediaSize `json:"sizes"`
}

// Media represents a media library item
type Media struct {
	ID           int          `json:"id"`
	Date         time.Time    `json:"date"`
	Modified     time.Time    `json:"modified"`
	Slug         string       `json:"slug"`
	Status       Status       `json:"status"`
	Link         string       `json:"link"`
	Title        Rendered     `json:"title"`
	Author       int          `json:"author"`
	Caption      Rendered     `json:"caption"`
	AltText      string       `json:"alt_text"`
	MediaType    string       `json:"media_type"`
	MimeType     string       `json:"mime_type"`
	MediaDetails MediaDetails `json:"media_details"`
	SourceURL    string       `json:"source_url"`
	Post         int          `json:"post"`
}

// Term represents a taxonomy term (category or tag)
type Term struct {
	ID          int    `json:"id"`
	Count       int    `json:"count"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Taxonomy    string `json:"taxonomy"`
	Parent      int    `json:"parent"`
}

// User represents a user resource
type User struct {
	ID          int               `json:"id"`
	Username    string            `json:"username,omitempty"`
	Name        string            `json:"name"`
	Email       string            `json:"email,omitempty"`
	URL         string            `json:"url,omitempty"`
	Description string            `json:"description,omitempty"`
	Link        string            `json:"link"`
	Slug        string            `json:"slug"`
	Nickname    string            `json:"nickname,omitempty"`
	AvatarURLs  map[string]string `json:"avatar_urls,omitempty"`
	Roles       []string          `json:"roles,omitempty"`
}

// DisplayName returns the best available name for the user.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	if u.Nickname != "" {
		return u.Nickname
	}
	return u.Slug
}

// Comment represents a comment resource
type Comment struct {
	ID          int       `json:"id"`
	Post        int       `json:"post"`
	Parent      int       `json:"parent"`
	Author      int       `json:"author"`
	AuthorName  string    `json:"author_name"`
	AuthorEmail string    `json:"author_email,omitempty"`
	AuthorURL   string    `json:"author_url,omitempty"`
	Date        time.Time `json:"date"`
	Content     Rendered  `json:"content"`
	Link        string    `json:"link"`
	Status      string    `json:"status"`
	Type        string    `json:"type"`
}

// Settings represents the site settings resource
type Settings struct {
	Title             string `json:"title"`
	Description       string `json:"description"`
	URL               string `json:"url"`
	Email             string `json:"email,omitempty"`
	Timezone          string `json:"timezone_string,omitempty"`
	DateFormat        string `json:"date_format,omitempty"`
	TimeFormat        string `json:"time_format,omitempty"`
	Language          string `json:"language,omitempty"`
	PostsPerPage      int    `json:"posts_per_page,omitempty"`
	DefaultPingStatus string `json:"default_ping_status,omitempty"`
	ShowOnFront       string `json:"show_on_front,omitempty"`
	PageOnFront       int    `json:"page_on_front,omitempty"`
}

package wordpress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeParamsOmitsZeroValues(t *testing.T) {
	values, err := encodeParams(PostListParams{})
	require.NoError(t, err)
	assert.Empty(t, values, "zero-valued params must produce no query parameters")
}

func TestEncodeParamsSnakeCase(t *testing.T) {
	sticky := true
	after := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	values, err := encodeParams(PostListParams{
		ListParams: ListParams{
			Page:    2,
			PerPage: 25,
			OrderBy: "date",
		},
		Slug:       []string{"hello-world", "second"},
		Status:     []string{"publish"},
		Categories: []int{3, 7},
		Sticky:     &sticky,
		After:      &after,
	})
	require.NoError(t, err)

	assert.Equal(t, "2", values.Get("page"))
	assert.Equal(t, "25", values.Get("per_page"))
	assert.Equal(t, "date", values.Get("orderby"))
	assert.Equal(t, "hello-world,second", values.Get("slug"))
	assert.Equal(t, "publish", values.Get("status"))
	assert.Equal(t, "3,7", values.Get("categories"))
	assert.Equal(t, "true", values.Get("sticky"))
	assert.Equal(t, "2024-03-01T00:00:00Z", values.Get("after"))

	// Unset fields stay absent entirely
	assert.NotContains(t, values, "search")
	assert.NotContains(t, values, "tags")
	assert.NotContains(t, values, "before")
}

func TestEncodeParamsIsPure(t *testing.T) {
	params := PostListParams{
		ListParams: ListParams{Search: "golang", PerPage: 10},
		Author:     []int{1},
	}

	first, err := encodeParams(params)
	require.NoError(t, err)
	second, err := encodeParams(params)
	require.NoError(t, err)

	assert.Equal(t, first, second, "encoding must be a pure function of the input")
	assert.Equal(t, first.Encode(), second.Encode())
}

func TestEncodeParamsPerResource(t *testing.T) {
	tests := []struct {
		name   string
		params any
		key    string
		want   string
	}{
		{
			name:   "page parent",
			params: PageListParams{Parent: []int{12}},
			key:    "parent",
			want:   "12",
		},
		{
			name:   "media mime type",
			params: MediaListParams{MimeType: "image/png"},
			key:    "mime_type",
			want:   "image/png",
		},
		{
			name:   "term hide empty",
			params: TermListParams{HideEmpty: true},
			key:    "hide_empty",
			want:   "true",
		},
		{
			name:   "user roles",
			params: UserListParams{Roles: []string{"editor", "author"}},
			key:    "roles",
			want:   "editor,author",
		},
		{
			name:   "comment post",
			params: CommentListParams{Post: []int{42}},
			key:    "post",
			want:   "42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := encodeParams(tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, values.Get(tt.key))
		})
	}
}

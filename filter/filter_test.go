package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wpbridge/wpbridge/wordpress"
)

func samplePost() wordpress.PostInfo {
	return wordpress.PostInfo{
		ID:         1,
		Title:      "Release Notes for March",
		Slug:       "release-notes-march",
		Status:     "publish",
		AuthorName: "Jordan",
		Date:       time.Now().AddDate(0, 0, -10),
		Modified:   time.Now().AddDate(0, 0, -2),
		Sticky:     true,
		Categories: []string{"News", "Releases"},
		Tags:       []string{"golang"},
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name       string
		expression string
	}{
		{name: "empty", expression: ""},
		{name: "whitespace only", expression: "   "},
		{name: "syntax error", expression: "Status == "},
		{name: "non-boolean result", expression: `"just a string"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.expression)
			require.Error(t, err)

			var compErr *CompilationError
			assert.ErrorAs(t, err, &compErr)
		})
	}
}

func TestEvaluate(t *testing.T) {
	post := samplePost()

	tests := []struct {
		name       string
		expression string
		want       bool
	}{
		{name: "status match", expression: `Status == "publish"`, want: true},
		{name: "status mismatch", expression: `Status == "draft"`, want: false},
		{name: "sticky", expression: `Sticky`, want: true},
		{name: "category helper", expression: `hasCategory("news")`, want: true},
		{name: "category helper miss", expression: `hasCategory("sports")`, want: false},
		{name: "tag helper", expression: `hasTag("GoLang")`, want: true},
		{name: "author helper", expression: `authoredBy("jordan")`, want: true},
		{name: "membership", expression: `"Releases" in Categories`, want: true},
		{name: "title contains", expression: `contains(Title, "march")`, want: true},
		{name: "title startsWith", expression: `startsWith(Title, "release")`, want: true},
		{name: "date window", expression: `Date > daysAgo(30)`, want: true},
		{name: "date window miss", expression: `Date > daysAgo(5)`, want: false},
		{name: "days since modified", expression: `daysSince(Modified) <= 3`, want: true},
		{name: "combined", expression: `Status == "publish" and hasCategory("news") and not hasTag("archive")`, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Evaluate(post))
		})
	}
}

func TestApplyPreservesOrder(t *testing.T) {
	posts := []wordpress.PostInfo{
		{ID: 1, Status: "publish"},
		{ID: 2, Status: "draft"},
		{ID: 3, Status: "publish"},
	}

	f, err := Compile(`Status == "publish"`)
	require.NoError(t, err)

	matched := f.Apply(posts)
	require.Len(t, matched, 2)
	assert.Equal(t, 1, matched[0].ID)
	assert.Equal(t, 3, matched[1].ID)
}

func TestCompilerCache(t *testing.T) {
	c := NewCompiler()

	first, err := c.Compile(`Sticky`)
	require.NoError(t, err)
	second, err := c.Compile(`Sticky`)
	require.NoError(t, err)

	assert.Same(t, first, second, "identical expressions share one compiled program")
	assert.Equal(t, "Sticky", first.Expression())
}

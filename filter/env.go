package filter

import (
	"slices"
	"strings"
	"time"

	"github.com/wpbridge/wpbridge/wordpress"
)

// createHelperFunctions creates the static helper functions used during compilation
func createHelperFunctions() map[string]any {
	funcs := make(map[string]any, 16)
	addHelperFunctions(funcs)
	return funcs
}

// addHelperFunctions adds all helper functions to the provided map
func addHelperFunctions(env map[string]any) {
	// Date helpers
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["monthsAgo"] = func(months int) time.Time {
		return time.Now().AddDate(0, -months, 0)
	}
	env["yearsAgo"] = func(years int) time.Time {
		return time.Now().AddDate(-years, 0, 0)
	}
	env["parseDate"] = func(dateStr string) time.Time {
		t, _ := time.Parse("2006-01-02", dateStr)
		return t
	}
	// String helpers
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	// Current time
	env["now"] = time.Now
}

// createRuntimeEnvironment creates the runtime environment for filter evaluation
func createRuntimeEnvironment(info wordpress.PostInfo) map[string]any {
	env := make(map[string]any, 32)

	addHelperFunctions(env)

	// Entry-specific helpers using closures
	env["hasCategory"] = createHasNameFunc(info.Categories)
	env["hasTag"] = createHasNameFunc(info.Tags)
	env["authoredBy"] = createAuthoredByFunc(info.AuthorName)

	// Direct entry properties for convenience
	env["ID"] = info.ID
	env["Title"] = info.Title
	env["Slug"] = info.Slug
	env["Status"] = info.Status
	env["Link"] = info.Link
	env["Author"] = info.AuthorName
	env["Date"] = info.Date
	env["Modified"] = info.Modified
	env["Sticky"] = info.Sticky
	env["Categories"] = info.Categories
	env["Tags"] = info.Tags
	env["Excerpt"] = info.Excerpt
	env["HasMedia"] = info.FeaturedMedia != 0

	return env
}

func createHasNameFunc(names []string) func(string) bool {
	lowered := make([]string, len(names))
	for i, name := range names {
		lowered[i] = strings.ToLower(name)
	}
	return func(name string) bool {
		return slices.Contains(lowered, strings.ToLower(name))
	}
}

func createAuthoredByFunc(author string) func(string) bool {
	return func(name string) bool {
		return strings.EqualFold(author, name)
	}
}

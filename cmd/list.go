package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wpbridge/wpbridge/filter"
	"github.com/wpbridge/wpbridge/wordpress"
)

var (
	listStatus []string
	listSearch string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List posts matching the filter criteria",
	Long: `List posts from the WordPress site that match the specified filter
criteria. The upstream query narrows by status and search term; the filter
expression is applied client-side over the fetched posts.`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	listCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	listCmd.Flags().StringSliceVar(&listStatus, "status", nil, "restrict to the given statuses")
	listCmd.Flags().StringVar(&listSearch, "search", "", "upstream full-text search term")
}

func runList(cmd *cobra.Command, args []string) error {
	// Determine filter expression
	expr, err := getFilterExpression()
	if err != nil {
		return err
	}

	var postFilter *filter.PostFilter
	if expr != "" {
		postFilter, err = filter.Compile(expr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
		logger.Info().Str("filter", expr).Msg("Searching posts")
	}

	ctx := context.Background()

	posts, err := wpClient.ListAllPosts(ctx, wordpress.PostListParams{
		Status: listStatus,
		ListParams: wordpress.ListParams{
			Search: listSearch,
		},
	})
	if err != nil {
		return err
	}

	infos := wpClient.BuildPostInfos(ctx, posts)
	if postFilter != nil {
		infos = postFilter.Apply(infos)
	}

	// Display results
	if len(infos) == 0 {
		fmt.Println("No posts found matching the filter criteria.")
		return nil
	}

	fmt.Printf("\nFound %d posts:\n", len(infos))
	fmt.Println(strings.Repeat("-", 80))

	for _, info := range infos {
		fmt.Printf("• %s [%s]", info.Title, info.Status)
		if info.Sticky {
			fmt.Printf(" [STICKY]")
		}
		fmt.Println()
		if info.AuthorName != "" {
			fmt.Printf("  Author: %s\n", info.AuthorName)
		}
		if len(info.Categories) > 0 {
			fmt.Printf("  Categories: %s\n", strings.Join(info.Categories, ", "))
		}
		if len(info.Tags) > 0 {
			fmt.Printf("  Tags: %s\n", strings.Join(info.Tags, ", "))
		}
		fmt.Printf("  Published: %s\n", info.Date.Format("2006-01-02"))
	}

	return nil
}

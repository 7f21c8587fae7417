package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/wpbridge/wpbridge/loader"
)

// exportConcurrency bounds how many collections are snapshotted in parallel.
const exportConcurrency = 4

var exportDir string

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export collection snapshots to disk",
	Long: `Export the configured content collections as JSON snapshots for a
static-site build. Each collection is fully paginated and written to its own
file.`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportDir, "dir", "", "output directory (overrides export.dir)")
}

func runExport(cmd *cobra.Command, args []string) error {
	dir := cfg.Export.Dir
	if exportDir != "" {
		dir = exportDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	collections := make([]loader.Collection, 0, len(cfg.Export.Collections))
	for _, name := range cfg.Export.Collections {
		collections = append(collections, loader.Collection(name))
	}

	staticLoader := loader.NewStaticLoader(wpClient, logger)

	ctx := context.Background()
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(exportConcurrency)

	for _, collection := range collections {
		g.Go(func() error {
			entries, err := staticLoader.LoadCollection(ctx, loader.CollectionRequest{
				Collection: collection,
			})
			if err != nil {
				return err
			}

			path := filepath.Join(dir, string(collection)+".json")
			if err := writeSnapshot(path, entries); err != nil {
				return err
			}

			logger.Info().
				Str("collection", string(collection)).
				Int("entries", len(entries)).
				Str("path", path).
				Msg("Exported collection")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("Exported %d collections to %s\n", len(collections), dir)
	return nil
}

func writeSnapshot(path string, entries []loader.Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

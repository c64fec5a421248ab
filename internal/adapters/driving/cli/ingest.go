package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deepkinai/mini-research-mcp/internal/connectors/filesystem"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [path]",
	Short: "Ingest documents from a directory",
	Long: `Walks a directory tree and ingests every supported file into the
corpus. Plain text, Markdown and JSON documents are recognised.
Re-ingesting a path updates existing documents in place; document IDs
stay stable across runs.`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	dir := args[0]
	connector := filesystem.New(dir)

	count, err := ingestService.IngestAll(cmd.Context(), connector)
	if err != nil {
		return fmt.Errorf("ingesting %s: %w", dir, err)
	}

	cmd.Printf("Ingested %d documents from %s\n", count, dir)
	return nil
}

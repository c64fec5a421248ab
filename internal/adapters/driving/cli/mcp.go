package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deepkinai/mini-research-mcp/internal/adapters/driving/mcp"
	"github.com/deepkinai/mini-research-mcp/internal/connectors/filesystem"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

By default, the server communicates over stdio using JSON-RPC and can be
used with Claude Desktop and other MCP-compatible AI assistants.

Use --port to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

Use --watch to keep a directory synchronised with the corpus while the
server runs: created and modified files are re-ingested automatically.

Examples:
  # Stdio mode (default, for Claude Desktop)
  mini-research mcp serve

  # HTTP mode (for MCP Inspector, remote access)
  mini-research mcp serve --port 8080

  # Stdio mode, re-ingesting ~/notes on change
  mini-research mcp serve --watch ~/notes

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "mini-research": {
        "command": "/path/to/mini-research",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().String("watch", "", "directory to watch and re-ingest on change")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	watchDir, err := cmd.Flags().GetString("watch")
	if err != nil {
		return fmt.Errorf("getting watch flag: %w", err)
	}

	ports := &mcp.Ports{
		Search:  searchService,
		Fetch:   fetchService,
		Catalog: catalogService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	if watchDir != "" {
		if err := watchAndIngest(cmd, watchDir); err != nil {
			return err
		}
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}

// watchAndIngest ingests the directory once, then re-ingests documents
// as the connector reports changes. The watch goroutine stops when the
// command context is cancelled.
func watchAndIngest(cmd *cobra.Command, dir string) error {
	if ingestService == nil {
		return errors.New("ingest service not configured")
	}

	ctx := cmd.Context()
	connector := filesystem.New(dir)

	count, err := ingestService.IngestAll(ctx, connector)
	if err != nil {
		return fmt.Errorf("ingesting %s: %w", dir, err)
	}
	log.Info("ingested %d documents from %s", count, dir)

	updates, err := connector.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	go func() {
		for doc := range updates {
			if _, err := ingestService.Ingest(ctx, doc); err != nil {
				log.Warn("re-ingesting %s: %v", doc.URI, err)
			}
		}
	}()

	return nil
}

// Command mini-research runs the knowledge base CLI and MCP server.
package main

import (
	"os"

	"github.com/deepkinai/mini-research-mcp/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

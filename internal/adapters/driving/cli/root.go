// Package cli implements the mini-research command-line interface.
// Commands are thin: they parse flags, call the driving ports, and
// format output. Service wiring happens once in the root command's
// PersistentPreRunE.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/deepkinai/mini-research-mcp/internal/adapters/driven/config/file"
	"github.com/deepkinai/mini-research-mcp/internal/adapters/driven/embedding/ollama"
	"github.com/deepkinai/mini-research-mcp/internal/adapters/driven/index/bleve"
	"github.com/deepkinai/mini-research-mcp/internal/adapters/driven/storage/memory"
	"github.com/deepkinai/mini-research-mcp/internal/adapters/driven/storage/sqlite"
	"github.com/deepkinai/mini-research-mcp/internal/adapters/driven/vector/chromem"
	"github.com/deepkinai/mini-research-mcp/internal/core/ports/driven"
	"github.com/deepkinai/mini-research-mcp/internal/core/ports/driving"
	"github.com/deepkinai/mini-research-mcp/internal/core/services"
	"github.com/deepkinai/mini-research-mcp/internal/logger"
)

// version is the CLI version, kept in sync with the MCP server version.
const version = "0.2.0"

// Persistent flags.
var (
	verbose   bool
	configDir string
)

// Wired services, shared by all commands. Tests swap these for mocks.
var (
	log            *logger.Logger
	configStore    driven.ConfigStore
	searchService  driving.SearchService
	fetchService   driving.FetchService
	ingestService  driving.IngestService
	catalogService driving.CatalogService

	servicesWired bool
)

var rootCmd = &cobra.Command{
	Use:   "mini-research",
	Short: "Searchable knowledge base with an MCP interface",
	Long: `mini-research maintains a local document corpus with keyword and
optional semantic search, and exposes it to AI assistants through the
Model Context Protocol.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return initServices(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.mini-research)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// initServices wires the driven adapters and core services from
// configuration. It is a no-op once the services are set, so tests can
// inject mocks before executing commands.
func initServices(cmd *cobra.Command) error {
	if servicesWired {
		return nil
	}

	log = logger.New(cmd.ErrOrStderr(), verbose)

	cfg, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	configStore = cfg

	store, err := openDocumentStore(cfg)
	if err != nil {
		return err
	}

	engine, err := openSearchEngine(cfg)
	if err != nil {
		return err
	}

	// Semantic search is optional; without it the services run
	// keyword-only.
	var vectorIndex driven.VectorIndex
	var embeddingService driven.EmbeddingService
	if cfg.GetBool("embedding.enabled") {
		vec, err := chromem.NewIndex(cfg.GetString("vector.path"))
		if err != nil {
			log.Warn("vector index unavailable, using keyword search only: %v", err)
		} else {
			vectorIndex = vec
			embeddingService = ollama.NewEmbeddingService(ollama.Config{
				BaseURL:    cfg.GetString("embedding.base_url"),
				Model:      cfg.GetString("embedding.model"),
				Dimensions: cfg.GetInt("embedding.dimensions"),
			})
		}
	}

	search := services.NewSearchService(store, engine, vectorIndex, embeddingService, log)
	if n := cfg.GetInt("search.limit"); n > 0 {
		search.SetDefaultLimit(n)
	}
	if n := cfg.GetInt("search.snippet_length"); n > 0 {
		search.SetSnippetLength(n)
	}

	searchService = search
	fetchService = services.NewFetchService(store, log)
	ingestService = services.NewIngestService(store, engine, vectorIndex, embeddingService, log)
	catalogService = services.NewCatalogService(store)

	servicesWired = true
	return nil
}

func openDocumentStore(cfg driven.ConfigStore) (driven.DocumentStore, error) {
	backend := cfg.GetString("store.backend")
	switch backend {
	case "", "sqlite":
		store, err := sqlite.NewStore(cfg.GetString("data_dir"))
		if err != nil {
			return nil, fmt.Errorf("opening document store: %w", err)
		}
		return store, nil
	case "memory":
		return memory.NewDocumentStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}

func openSearchEngine(cfg driven.ConfigStore) (driven.SearchEngine, error) {
	path := cfg.GetString("index.path")
	if path == "" {
		if cfg.GetString("store.backend") == "memory" {
			return bleve.NewMemoryEngine()
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, ".mini-research", "data", "index.bleve")
	}

	engine, err := bleve.NewEngine(path)
	if err != nil {
		return nil, fmt.Errorf("opening search index: %w", err)
	}
	return engine, nil
}

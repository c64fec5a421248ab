// Package filesystem provides a corpus connector that loads documents
// from a local directory tree. Plain text, markdown, HTML, and JSON
// document files are supported; the connector can also watch the tree
// for changes and emit updated documents for re-ingestion.
package filesystem

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/deepkinai/mini-research-mcp/internal/core/domain"
	"github.com/deepkinai/mini-research-mcp/internal/core/ports/driven"
	"github.com/deepkinai/mini-research-mcp/internal/normalisers"
)

// Ensure Connector implements the interface.
var _ driven.Connector = (*Connector)(nil)

// supported file extensions, lowercase.
var supportedExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".json":     true,
}

// Connector loads documents from a directory tree.
type Connector struct {
	root    string
	watcher *fsnotify.Watcher
}

// New creates a filesystem connector rooted at the given directory.
func New(root string) *Connector {
	return &Connector{root: root}
}

// Type returns the connector type identifier.
func (c *Connector) Type() string {
	return "filesystem"
}

// Validate checks that the root exists and is a readable directory.
func (c *Connector) Validate(_ context.Context) error {
	info, err := os.Stat(c.root)
	if err != nil {
		return fmt.Errorf("corpus path %s: %w", c.root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("corpus path %s is not a directory: %w", c.root, domain.ErrInvalidInput)
	}
	return nil
}

// Load walks the tree and emits one document per supported file.
func (c *Connector) Load(ctx context.Context) (<-chan domain.Document, <-chan error) {
	docs := make(chan domain.Document)
	errs := make(chan error, 1)

	go func() {
		defer close(docs)
		defer close(errs)

		walkErr := filepath.WalkDir(c.root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !supportedExtensions[strings.ToLower(filepath.Ext(path))] {
				return nil
			}

			doc, err := parseFile(path)
			if err != nil {
				return fmt.Errorf("parse %s: %w", path, err)
			}

			select {
			case docs <- doc:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
		if walkErr != nil {
			errs <- walkErr
		}
	}()

	return docs, errs
}

// Watch emits a document whenever a supported file is created or
// modified under the root. The returned channel closes when the
// context is cancelled.
func (c *Connector) Watch(ctx context.Context) (<-chan domain.Document, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	c.watcher = watcher

	// Watch the root and every existing subdirectory.
	err = filepath.WalkDir(c.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching corpus tree: %w", err)
	}

	docs := make(chan domain.Document)
	go func() {
		defer close(docs)
		defer watcher.Close()

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
					continue
				}
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					// New directories join the watch set.
					watcher.Add(event.Name) //nolint:errcheck
					continue
				}
				if !supportedExtensions[strings.ToLower(filepath.Ext(event.Name))] {
					continue
				}

				doc, err := parseFile(event.Name)
				if err != nil {
					// Partially written files are retried on the
					// next write event.
					continue
				}

				select {
				case docs <- doc:
				case <-ctx.Done():
					return
				}

			case <-watcher.Errors:
				// Watch errors are transient; keep listening.

			case <-ctx.Done():
				return
			}
		}
	}()

	return docs, nil
}

// Close releases watcher resources.
func (c *Connector) Close() error {
	if c.watcher != nil {
		return c.watcher.Close()
	}
	return nil
}

// jsonDocument is the on-disk JSON document format.
type jsonDocument struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	Text     string            `json:"text"`
	Content  string            `json:"content"`
	URL      string            `json:"url"`
	Metadata map[string]string `json:"metadata"`
}

// parseFile converts a corpus file into a document. The document ID is
// left empty (unless supplied in a JSON file) so the ingest service
// assigns it.
func parseFile(path string) (domain.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Document{}, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	doc := domain.Document{
		URI: "file://" + abs,
		Metadata: map[string]string{
			"source":   "filesystem",
			"filename": filepath.Base(path),
		},
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		var jd jsonDocument
		if err := json.Unmarshal(data, &jd); err != nil {
			return domain.Document{}, fmt.Errorf("decoding JSON document: %w", err)
		}
		doc.ID = jd.ID
		doc.Title = jd.Title
		doc.Content = jd.Text
		if doc.Content == "" {
			doc.Content = jd.Content
		}
		doc.URL = jd.URL
		for k, v := range jd.Metadata {
			doc.Metadata[k] = v
		}
		if doc.Title == "" {
			doc.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		}
		return doc, nil
	}

	res := normalisers.Normalise(path, data)
	doc.Title = res.Title
	doc.Content = res.Text
	return doc, nil
}

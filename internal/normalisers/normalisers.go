// Package normalisers extracts a title and searchable plain text from
// raw file content. Each format knows how to find its own title and
// how to reduce markup to text; the filesystem connector selects one
// by file extension.
package normalisers

import (
	"path/filepath"
	"strings"
)

// Result is the extracted title and text of a document.
type Result struct {
	Title string
	Text  string
}

// Normalise picks a normaliser for the file at path and applies it to
// content. Unrecognised extensions fall back to plain text handling.
func Normalise(path string, content []byte) Result {
	text := string(content)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return HTML(text, path)
	case ".md", ".markdown":
		return Markdown(text, path)
	default:
		return PlainText(text, path)
	}
}

// PlainText uses the content verbatim, with the filename as title.
func PlainText(content, uri string) Result {
	return Result{
		Title: titleFromFilename(uri),
		Text:  strings.TrimSpace(content),
	}
}

// titleFromFilename derives a readable title from the file name,
// dropping the extension and separator characters.
func titleFromFilename(uri string) string {
	filename := filepath.Base(uri)
	if ext := filepath.Ext(filename); ext != "" {
		filename = strings.TrimSuffix(filename, ext)
	}
	filename = strings.ReplaceAll(filename, "_", " ")
	filename = strings.ReplaceAll(filename, "-", " ")
	return filename
}

package normalisers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalise_DispatchesByExtension(t *testing.T) {
	t.Run("html", func(t *testing.T) {
		res := Normalise("/docs/page.html", []byte("<html><head><title>Page</title></head><body><p>Body text</p></body></html>"))
		assert.Equal(t, "Page", res.Title)
		assert.Equal(t, "Body text", res.Text)
	})

	t.Run("markdown", func(t *testing.T) {
		res := Normalise("/docs/guide.md", []byte("# Guide\n\nSome **bold** prose."))
		assert.Equal(t, "Guide", res.Title)
		assert.Equal(t, "Guide\n\nSome bold prose.", res.Text)
	})

	t.Run("plain text fallback", func(t *testing.T) {
		res := Normalise("/docs/release_notes.txt", []byte("notes\n"))
		assert.Equal(t, "release notes", res.Title)
		assert.Equal(t, "notes", res.Text)
	})
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple paragraph",
			input:    "<p>Hello World</p>",
			expected: "Hello World",
		},
		{
			name:     "nested tags",
			input:    "<div><p><strong>Bold</strong> text</p></div>",
			expected: "Bold text",
		},
		{
			name:     "script removed",
			input:    "<p>Before</p><script>alert('evil');</script><p>After</p>",
			expected: "Before\nAfter",
		},
		{
			name:     "style removed",
			input:    "<style>.foo { color: red; }</style><p>Content</p>",
			expected: "Content",
		},
		{
			name:     "head removed",
			input:    "<head><meta charset='utf-8'><title>Title</title></head><body>Content</body>",
			expected: "Content",
		},
		{
			name:     "br to newline",
			input:    "Line 1<br>Line 2<br/>Line 3",
			expected: "Line 1\nLine 2\nLine 3",
		},
		{
			name:     "block elements create newlines",
			input:    "<div>Block 1</div><div>Block 2</div>",
			expected: "Block 1\nBlock 2",
		},
		{
			name:     "HTML entities decoded",
			input:    "<p>&lt;tag&gt; &amp; &quot;quotes&quot;</p>",
			expected: "<tag> & \"quotes\"",
		},
		{
			name:     "comments removed",
			input:    "<p>Before</p><!-- comment --><p>After</p>",
			expected: "Before\nAfter",
		},
		{
			name:     "list items",
			input:    "<ul><li>Item 1</li><li>Item 2</li></ul>",
			expected: "Item 1\nItem 2",
		},
		{
			name:     "svg removed",
			input:    `<p>Before</p><svg width="100"><circle cx="50"/></svg><p>After</p>`,
			expected: "Before\nAfter",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := stripHTML(tc.input)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestExtractHTMLTitle(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		uri      string
		expected string
	}{
		{
			name:     "from title tag",
			content:  "<title>My Page</title>",
			uri:      "/tmp/x.html",
			expected: "My Page",
		},
		{
			name:     "entities decoded",
			content:  "<title>Q&amp;A</title>",
			uri:      "/tmp/x.html",
			expected: "Q&A",
		},
		{
			name:     "empty title falls back to filename",
			content:  "<title>   </title>",
			uri:      "/tmp/my-page.html",
			expected: "my page",
		},
		{
			name:     "missing title falls back to filename",
			content:  "<p>no title</p>",
			uri:      "/tmp/some_doc.html",
			expected: "some doc",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, extractHTMLTitle(tc.content, tc.uri))
		})
	}
}

func TestStripMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "headings removed",
			input:    "# Title\n## Subtitle\n### Third",
			expected: "Title\nSubtitle\nThird",
		},
		{
			name:     "bold removed",
			input:    "This is **bold** text",
			expected: "This is bold text",
		},
		{
			name:     "links converted",
			input:    "Click [here](https://example.com)",
			expected: "Click here",
		},
		{
			name:     "images removed",
			input:    "See ![alt text](image.png) here",
			expected: "See  here",
		},
		{
			name:     "code blocks removed",
			input:    "Before\n```go\ncode here\n```\nAfter",
			expected: "Before\n\nAfter",
		},
		{
			name:     "inline code removed",
			input:    "Use `code` here",
			expected: "Use  here",
		},
		{
			name:     "blockquotes cleaned",
			input:    "> This is a quote",
			expected: "This is a quote",
		},
		{
			name:     "list markers removed",
			input:    "- Item 1\n- Item 2",
			expected: "Item 1\nItem 2",
		},
		{
			name:     "numbered list markers removed",
			input:    "1. First\n2. Second",
			expected: "First\nSecond",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := stripMarkdown(tc.input)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestExtractMarkdownTitle(t *testing.T) {
	t.Run("first H1 wins", func(t *testing.T) {
		title := extractMarkdownTitle("intro\n# First\n# Second", "/tmp/x.md")
		assert.Equal(t, "First", title)
	})

	t.Run("no heading falls back to filename", func(t *testing.T) {
		title := extractMarkdownTitle("just prose", "/tmp/field-notes.md")
		assert.Equal(t, "field notes", title)
	})
}

func TestTitleFromFilename(t *testing.T) {
	assert.Equal(t, "weekly report", titleFromFilename("/srv/docs/weekly_report.txt"))
	assert.Equal(t, "readme", titleFromFilename("readme"))
}

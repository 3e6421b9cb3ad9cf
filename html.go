package mdtable

import (
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// HTML renders the table as an HTML fragment. The Markdown text from
// [Table.String] is parsed with table support and passed through the HTML
// renderer, so alignment markers become text-align attributes.
func (t *Table) HTML() []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	r := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(t.String()), p, r)
}

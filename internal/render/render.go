// Package render serializes a page document tree to HTML.
package render

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/civansanli/portfolio/internal/page"
)

// HTML writes doc as a complete HTML5 document, doctype included.
func HTML(w io.Writer, doc *page.Node) error {
	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	if doc != nil {
		root.AppendChild(convert(doc))
	}
	if err := html.Render(w, root); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// String renders doc into a string.
func String(doc *page.Node) (string, error) {
	var buf bytes.Buffer
	if err := HTML(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func convert(n *page.Node) *html.Node {
	if n.IsText() {
		return &html.Node{Type: html.TextNode, Data: n.Text}
	}

	out := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}
	for _, a := range n.Attrs {
		out.Attr = append(out.Attr, html.Attribute{Key: a.Key, Val: a.Val})
	}
	out.Attr = append(out.Attr, motionAttrs(n.Motion)...)

	for _, c := range n.Children {
		out.AppendChild(convert(c))
	}
	return out
}

func motionAttrs(m *page.Motion) []html.Attribute {
	if m == nil {
		return nil
	}
	attrs := []html.Attribute{
		{Key: "data-motion", Val: m.Preset},
		{Key: "data-motion-trigger", Val: string(m.Trigger)},
	}
	if m.Duration > 0 {
		attrs = append(attrs, html.Attribute{Key: "data-motion-duration", Val: strconv.FormatInt(m.Duration.Milliseconds(), 10)})
	}
	if m.Delay > 0 {
		attrs = append(attrs, html.Attribute{Key: "data-motion-delay", Val: strconv.FormatInt(m.Delay.Milliseconds(), 10)})
	}
	return attrs
}

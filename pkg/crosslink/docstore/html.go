package docstore

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// block-level elements that end a paragraph in the extracted text.
var blockElements = map[string]struct{}{
	"p": {}, "div": {}, "section": {}, "article": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
	"li": {}, "blockquote": {}, "br": {},
}

// ExtractText renders an HTML document as plain text, dropping script and
// style content and separating block elements with blank lines so the
// paragraph splitter sees natural boundaries.
func ExtractText(r io.Reader) (string, error) {
	root, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			if n.Data == "script" || n.Data == "style" {
				return
			}
		case html.TextNode:
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode {
			if _, ok := blockElements[n.Data]; ok {
				b.WriteString("\n\n")
			}
		}
	}
	walk(root)

	return collapseBlankLines(b.String()), nil
}

func collapseBlankLines(s string) string {
	var out []string
	for _, p := range strings.Split(s, "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "\n\n")
}

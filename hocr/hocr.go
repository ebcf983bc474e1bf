package hocr

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding/charmap"

	"github.com/tsawler/tablefind/model"
)

// Document represents a parsed hOCR document.
type Document struct {
	// Title is the document title from the head section, if present.
	Title string

	// Pages are the document's pages in source order.
	Pages []Page
}

// Page is one hOCR page: its bounding box and the line-level text blocks
// found on it, in document order with sequential indices.
type Page struct {
	// Number is the 1-indexed page position in the document.
	Number int

	// BBox is the page's own bounding box, when declared.
	BBox model.Rect

	// Blocks are the page's text blocks, ready for table detection.
	Blocks []model.TextBlock
}

// blockClasses are the hOCR classes treated as one text block each.
var blockClasses = map[string]bool{
	"ocr_line":      true,
	"ocr_caption":   true,
	"ocr_textfloat": true,
	"ocr_header":    true,
}

// Parse converts raw hOCR data into a Document. Pages without a single
// recognizable text block are still reported, with no blocks.
func Parse(data []byte) (*Document, error) {
	decoded, err := decodeCharset(data)
	if err != nil {
		return nil, err
	}

	root, err := html.Parse(strings.NewReader(string(decoded)))
	if err != nil {
		return nil, fmt.Errorf("parsing hOCR: %w", err)
	}

	doc := &Document{
		Title: findTitle(root),
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, "ocr_page") {
			doc.Pages = append(doc.Pages, parsePage(n, len(doc.Pages)+1))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	if len(doc.Pages) == 0 {
		return nil, fmt.Errorf("no ocr_page elements found")
	}
	return doc, nil
}

// decodeCharset converts Latin-1 input to UTF-8 when the document's meta
// charset declares something other than UTF-8.
func decodeCharset(data []byte) ([]byte, error) {
	content := strings.ToLower(string(data))
	idx := strings.Index(content, "charset=")
	if idx < 0 {
		return data, nil
	}

	fields := strings.FieldsFunc(content[idx+len("charset="):], func(r rune) bool {
		return r == '"' || r == '\'' || r == ';' || r == '>' || r == ' '
	})
	if len(fields) == 0 || fields[0] == "utf-8" {
		return data, nil
	}
	enc := fields[0]

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", enc, err)
	}
	return decoded, nil
}

// parsePage collects the page's block-level elements in document order.
func parsePage(n *html.Node, number int) Page {
	page := Page{Number: number}

	if bbox, ok := parseBBox(attr(n, "title")); ok {
		page.BBox = bbox
	}

	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode {
			if class := blockClass(node); class != "" {
				bbox, ok := parseBBox(attr(node, "title"))
				if ok {
					page.Blocks = append(page.Blocks, model.TextBlock{
						Index: len(page.Blocks),
						Text:  nodeText(node),
						BBox:  bbox,
						Kind:  class,
					})
				}
				return
			}
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}

	return page
}

// blockClass returns the node's block-level hOCR class, or "".
func blockClass(n *html.Node) string {
	for _, class := range strings.Fields(attr(n, "class")) {
		if blockClasses[class] {
			return class
		}
	}
	return ""
}

// hasClass reports whether the node's class attribute contains name.
func hasClass(n *html.Node, name string) bool {
	for _, class := range strings.Fields(attr(n, "class")) {
		if class == name {
			return true
		}
	}
	return false
}

// parseBBox extracts "bbox x0 y0 x1 y1" from an hOCR title attribute.
func parseBBox(title string) (model.Rect, bool) {
	for _, part := range strings.Split(title, ";") {
		fields := strings.Fields(strings.TrimSpace(part))
		if len(fields) != 5 || fields[0] != "bbox" {
			continue
		}
		coords := make([]float64, 4)
		for i, f := range fields[1:] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return model.Rect{}, false
			}
			coords[i] = v
		}
		return model.NewRect(coords[0], coords[1], coords[2], coords[3]), true
	}
	return model.Rect{}, false
}

// nodeText concatenates the node's descendant text, collapsing runs of
// whitespace to single spaces.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
			sb.WriteString(" ")
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

// findTitle returns the text of the document's <title> element, if any.
func findTitle(root *html.Node) string {
	var title string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "title" && n.FirstChild != nil {
			title = strings.TrimSpace(n.FirstChild.Data)
			return
		}
		for c := n.FirstChild; c != nil && title == ""; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return title
}

// attr returns the value of the named attribute, or "".
func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

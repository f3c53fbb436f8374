package htmlutil

import (
	"bytes"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// GetText concatenates every text node under `node` in document order.
func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

// FirstText returns the text of the first child of `node`, which is the
// literal text that precedes any nested markup (footnotes, spans, etc...).
// false is returned when the node has no children.
func FirstText(node *html.Node) (string, bool) {
	if node == nil || node.FirstChild == nil {
		return "", false
	}
	return GetText(node.FirstChild), true
}

// SelectionFirstText is FirstText applied to the first node of a selection.
func SelectionFirstText(sel *goquery.Selection) (string, bool) {
	if sel.Length() == 0 {
		return "", false
	}
	return FirstText(sel.Get(0))
}

package htmlserializer

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// nodeName maps a parsed element node to its qualified name. The
// parser stores "" for HTML elements and the short tags "svg" and
// "math" for foreign content.
func nodeName(n *html.Node) Name {
	switch n.Namespace {
	case "":
		return Name{Space: NamespaceHTML, Local: n.Data}
	case "svg":
		return Name{Space: NamespaceSVG, Local: n.Data}
	case "math":
		return Name{Space: NamespaceMathML, Local: n.Data}
	default:
		return Name{Space: Namespace(n.Namespace), Local: n.Data}
	}
}

// attrName maps a parsed attribute to its qualified name. Adjusted
// foreign attributes come back from the parser under the short tags
// "xml", "xmlns", and "xlink" with the prefix stripped from the key.
func attrName(a html.Attribute) Name {
	switch a.Namespace {
	case "":
		return Name{Local: a.Key}
	case "xml":
		return Name{Space: NamespaceXML, Local: a.Key}
	case "xmlns":
		return Name{Space: NamespaceXMLNS, Local: a.Key}
	case "xlink":
		return Name{Space: NamespaceXLink, Local: a.Key}
	default:
		return Name{Space: Namespace(a.Namespace), Local: a.Key}
	}
}

// Serialize walks the tree rooted at n in document order and writes
// its HTML serialization to w. opts.Scope decides whether n itself or
// only its children are serialized.
func Serialize(w io.Writer, n *html.Node, opts Options) error {
	s := New(w, opts)
	if opts.Scope.includeNode {
		return serializeNode(s, n)
	}
	return serializeChildren(s, n)
}

func serializeNode(s *Serializer, n *html.Node) error {
	switch n.Type {
	case html.ElementNode:
		name := nodeName(n)
		var attrs []Attribute
		if len(n.Attr) > 0 {
			attrs = make([]Attribute, 0, len(n.Attr))
			for _, a := range n.Attr {
				attrs = append(attrs, Attribute{Name: attrName(a), Value: a.Val})
			}
		}
		if err := s.StartElement(name, attrs); err != nil {
			return err
		}
		if err := serializeChildren(s, n); err != nil {
			return err
		}
		return s.EndElement(name)
	case html.TextNode:
		return s.WriteText(n.Data)
	case html.CommentNode:
		return s.WriteComment(n.Data)
	case html.DoctypeNode:
		return s.WriteDoctype(n.Data)
	case html.DocumentNode:
		return serializeChildren(s, n)
	default:
		return nil
	}
}

func serializeChildren(s *Serializer, n *html.Node) error {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := serializeNode(s, c); err != nil {
			return err
		}
	}
	return nil
}

// Sanitize parses htmlStr and re-serializes the document body through
// the sanitizing serializer. Elements outside the fixed allowlist come
// back as escaped literal text; their children are still serialized.
func Sanitize(htmlStr string, opts Options) (string, error) {
	return SanitizeReader(strings.NewReader(htmlStr), opts)
}

// SanitizeReader reads HTML from r, parses it, and re-serializes the
// document body through the sanitizing serializer.
func SanitizeReader(r io.Reader, opts Options) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", err
	}

	root := findBody(doc)
	if root == nil {
		root = doc
	}

	// Only the body's children are wanted, whatever scope the caller
	// runs full serializations with.
	opts.Scope = ChildrenOnly(nil)

	var buf bytes.Buffer
	if err := Serialize(&buf, root, opts); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// html.Parse wraps content in <html><head><body>; find body.
func findBody(doc *html.Node) *html.Node {
	var find func(*html.Node) *html.Node
	find = func(n *html.Node) *html.Node {
		if n.Type == html.ElementNode && n.Namespace == "" && n.Data == "body" {
			return n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if r := find(c); r != nil {
				return r
			}
		}
		return nil
	}
	return find(doc)
}

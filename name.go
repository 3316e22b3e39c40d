package htmlserializer

// Namespace identifies the namespace part of a qualified element or
// attribute name. Values are full namespace URIs, matching what the
// golang.org/x/net/html parser exposes after foreign-content
// adjustment.
type Namespace string

// Namespaces the serializer recognizes.
const (
	NamespaceHTML   Namespace = "http://www.w3.org/1999/xhtml"
	NamespaceMathML Namespace = "http://www.w3.org/1998/Math/MathML"
	NamespaceSVG    Namespace = "http://www.w3.org/2000/svg"
	NamespaceXLink  Namespace = "http://www.w3.org/1999/xlink"
	NamespaceXML    Namespace = "http://www.w3.org/XML/1998/namespace"
	NamespaceXMLNS  Namespace = "http://www.w3.org/2000/xmlns/"
)

// Name is a qualified element or attribute name. The empty Namespace
// means "no namespace".
type Name struct {
	Space Namespace
	Local string
}

// Attribute is one attribute as supplied by the traversal driver.
// Attributes are serialized in the order given; duplicates are written
// as-is, never merged.
type Attribute struct {
	Name  Name
	Value string
}

// tagName resolves the text written for an element's tag. Namespace
// information is dropped from the output: elements outside the HTML,
// MathML, and SVG namespaces keep their local name but trigger a
// diagnostic, since the result cannot round-trip.
func (s *Serializer) tagName(name Name) string {
	switch name.Space {
	case NamespaceHTML, NamespaceMathML, NamespaceSVG:
	default:
		s.diag(DiagUnexpectedNamespace, "element %q has unexpected namespace %q", name.Local, name.Space)
	}
	return name.Local
}

// attrPrefix resolves the prefix written before an attribute's local
// name. A bare "xmlns" attribute gets no prefix so the output never
// reads "xmlns:xmlns".
func (s *Serializer) attrPrefix(name Name) string {
	switch name.Space {
	case "":
		return ""
	case NamespaceXML:
		return "xml:"
	case NamespaceXMLNS:
		if name.Local == "xmlns" {
			return ""
		}
		return "xmlns:"
	case NamespaceXLink:
		return "xlink:"
	default:
		s.diag(DiagUnknownAttrNamespace, "attribute %q has unexpected namespace %q", name.Local, name.Space)
		return "unknown_namespace:"
	}
}

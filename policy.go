package htmlserializer

// allowedTags is the fixed set of tag names permitted to appear as
// structural markup. The start and end tags of any element whose
// resolved tag text is absent from this set are escaped into literal
// text. The check is on tag text alone; namespace is deliberately
// ignored, so a foreign element sharing a local name with an allowed
// tag passes.
var allowedTags = map[string]bool{
	"p":          true,
	"br":         true,
	"strong":     true,
	"em":         true,
	"del":        true,
	"blockquote": true,
	"code":       true,
	"pre":        true,
	"h1":         true,
	"h2":         true,
	"h3":         true,
	"h4":         true,
	"h5":         true,
	"h6":         true,
	"a":          true,
	"ul":         true,
	"ol":         true,
	"li":         true,
	"hr":         true,
}

// shouldSanitize reports whether an element's tag delimiters must be
// literalized. The decision is per tag; it does not propagate to the
// element's children.
func shouldSanitize(tag string) bool {
	return !allowedTags[tag]
}

// voidElements never have children or a closing tag in valid HTML.
// Anything nested under one is suppressed from the output.
var voidElements = map[string]bool{
	"area":     true,
	"base":     true,
	"basefont": true,
	"bgsound":  true,
	"br":       true,
	"col":      true,
	"embed":    true,
	"frame":    true,
	"hr":       true,
	"img":      true,
	"input":    true,
	"keygen":   true,
	"link":     true,
	"meta":     true,
	"param":    true,
	"source":   true,
	"track":    true,
	"wbr":      true,
}

// rawTextElements hold script, style, or other literal data whose text
// children are written without escaping.
var rawTextElements = map[string]bool{
	"style":     true,
	"script":    true,
	"xmp":       true,
	"iframe":    true,
	"noembed":   true,
	"noframes":  true,
	"plaintext": true,
}

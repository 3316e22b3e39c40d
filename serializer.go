package htmlserializer

import "io"

// TraversalScope controls whether the root node's own tags are emitted
// and which element, if any, provides the escaping context for
// top-level text.
type TraversalScope struct {
	includeNode bool
	root        *Name
}

// IncludeNode serializes the root node itself along with its subtree.
func IncludeNode() TraversalScope {
	return TraversalScope{includeNode: true}
}

// ChildrenOnly serializes only the root node's children. When root is
// non-nil it names the element the children live under, so raw-text
// escaping rules apply to top-level text even though the root tag is
// never written. The zero TraversalScope is ChildrenOnly(nil).
func ChildrenOnly(root *Name) TraversalScope {
	return TraversalScope{root: root}
}

// Options configure one serialization run. They are fixed for the
// lifetime of a [Serializer].
type Options struct {
	// ScriptingEnabled controls noscript content: with scripting on it
	// is written raw like other raw-text elements, with scripting off
	// it is escaped like normal text.
	ScriptingEnabled bool

	// Scope picks whether the root node itself is serialized. The zero
	// value serializes children only.
	Scope TraversalScope

	// CreateMissingParent recovers from an event that finds the
	// context stack empty by synthesizing a parent entry and emitting
	// a diagnostic, instead of failing with [ErrMissingParent].
	CreateMissingParent bool

	// OnDiagnostic receives non-fatal diagnostics. Nil sends them to
	// the standard logger.
	OnDiagnostic func(Diagnostic)
}

// DefaultOptions returns the standard HTML serialization options:
// scripting enabled, children only, strict stack handling.
func DefaultOptions() Options {
	return Options{ScriptingEnabled: true}
}

// elemInfo is one context-stack entry: the state remembered for each
// open element.
type elemInfo struct {
	// htmlName is the element's local name when the element is in the
	// HTML namespace; text escaping under the element keys off it.
	htmlName string

	// ignoreChildren suppresses all tags produced inside the element's
	// subtree. Set for void elements, which never legitimately have
	// children, and inherited by every element opened underneath one
	// so the stack stays balanced on malformed input.
	ignoreChildren bool

	// processedFirstChild records that a child element has been
	// serialized. Tracked for formatting decisions; currently only
	// written.
	processedFirstChild bool
}

// Serializer converts tree-traversal events into HTML text on a sink.
// Events must arrive in document order; output order mirrors call
// order exactly. One instance serves one run and is not safe for
// concurrent use. The first sink error aborts the run: it is returned
// unmodified and the instance must not receive further events.
type Serializer struct {
	w     io.Writer
	opts  Options
	stack []elemInfo
}

// New returns a Serializer writing to w, its context stack seeded
// according to opts.Scope.
func New(w io.Writer, opts Options) *Serializer {
	s := &Serializer{w: w, opts: opts}
	var seed elemInfo
	if !opts.Scope.includeNode && opts.Scope.root != nil {
		seed.htmlName = s.tagName(*opts.Scope.root)
	}
	s.stack = append(s.stack, seed)
	return s
}

// parent returns the current top of the context stack. An empty stack
// means the caller closed more elements than it opened; with
// CreateMissingParent a synthetic entry is substituted under a
// diagnostic, otherwise the run fails with ErrMissingParent.
func (s *Serializer) parent() (*elemInfo, error) {
	if len(s.stack) == 0 {
		if !s.opts.CreateMissingParent {
			return nil, ErrMissingParent
		}
		s.diag(DiagMissingParent, "context stack empty, creating missing parent")
		s.stack = append(s.stack, elemInfo{})
	}
	return &s.stack[len(s.stack)-1], nil
}

// StartElement serializes an element's start tag with attrs written in
// the order given. Tags outside the allowlist are literalized into
// escaped text; void HTML elements additionally suppress everything
// until their matching EndElement.
func (s *Serializer) StartElement(name Name, attrs []Attribute) error {
	var htmlLocal string
	if name.Space == NamespaceHTML {
		htmlLocal = name.Local
	}

	top, err := s.parent()
	if err != nil {
		return err
	}
	if top.ignoreChildren {
		s.stack = append(s.stack, elemInfo{htmlName: htmlLocal, ignoreChildren: true})
		return nil
	}

	tag := s.tagName(name)
	sanitize := shouldSanitize(tag)

	if err := writeMarkup(s.w, "<", sanitize); err != nil {
		return err
	}
	if _, err := io.WriteString(s.w, tag); err != nil {
		return err
	}
	for _, attr := range attrs {
		if _, err := io.WriteString(s.w, " "); err != nil {
			return err
		}
		if _, err := io.WriteString(s.w, s.attrPrefix(attr.Name)); err != nil {
			return err
		}
		if _, err := io.WriteString(s.w, attr.Name.Local); err != nil {
			return err
		}
		if err := writeMarkup(s.w, `="`, sanitize); err != nil {
			return err
		}
		if err := writeEscaped(s.w, attr.Value, true); err != nil {
			return err
		}
		if err := writeMarkup(s.w, `"`, sanitize); err != nil {
			return err
		}
	}
	if err := writeMarkup(s.w, ">", sanitize); err != nil {
		return err
	}

	ignoreChildren := name.Space == NamespaceHTML && voidElements[name.Local]

	top.processedFirstChild = true
	s.stack = append(s.stack, elemInfo{htmlName: htmlLocal, ignoreChildren: ignoreChildren})
	return nil
}

// EndElement serializes an element's end tag. The entry pushed by the
// matching StartElement is popped; a suppressed entry produces no
// output, which is how void elements never get a closing tag.
func (s *Serializer) EndElement(name Name) error {
	var info elemInfo
	if n := len(s.stack); n > 0 {
		info = s.stack[n-1]
		s.stack = s.stack[:n-1]
	} else if s.opts.CreateMissingParent {
		s.diag(DiagMissingParent, "context stack empty, substituting missing parent")
	} else {
		return ErrMissingParent
	}
	if info.ignoreChildren {
		return nil
	}

	tag := s.tagName(name)
	sanitize := shouldSanitize(tag)

	if err := writeMarkup(s.w, "</", sanitize); err != nil {
		return err
	}
	if _, err := io.WriteString(s.w, tag); err != nil {
		return err
	}
	return writeMarkup(s.w, ">", sanitize)
}

// WriteText serializes a text node. Escaping depends on the nearest
// enclosing HTML element: raw-text elements pass text through
// untouched, noscript honors ScriptingEnabled, everything else gets
// text-mode escaping.
func (s *Serializer) WriteText(text string) error {
	top, err := s.parent()
	if err != nil {
		return err
	}

	escape := true
	switch {
	case rawTextElements[top.htmlName]:
		escape = false
	case top.htmlName == "noscript":
		escape = !s.opts.ScriptingEnabled
	}

	if escape {
		return writeEscaped(s.w, text, false)
	}
	_, err = io.WriteString(s.w, text)
	return err
}

// WriteComment serializes a comment. The text is written verbatim; the
// caller must ensure it contains no "-->".
func (s *Serializer) WriteComment(text string) error {
	if _, err := io.WriteString(s.w, "<!--"); err != nil {
		return err
	}
	if _, err := io.WriteString(s.w, text); err != nil {
		return err
	}
	_, err := io.WriteString(s.w, "-->")
	return err
}

// WriteDoctype serializes a doctype declaration with the given name.
func (s *Serializer) WriteDoctype(name string) error {
	if _, err := io.WriteString(s.w, "<!DOCTYPE "); err != nil {
		return err
	}
	if _, err := io.WriteString(s.w, name); err != nil {
		return err
	}
	_, err := io.WriteString(s.w, ">")
	return err
}

// WriteProcessingInstruction serializes a processing instruction.
// Target and data are written verbatim.
func (s *Serializer) WriteProcessingInstruction(target, data string) error {
	if _, err := io.WriteString(s.w, "<?"); err != nil {
		return err
	}
	if _, err := io.WriteString(s.w, target); err != nil {
		return err
	}
	if _, err := io.WriteString(s.w, " "); err != nil {
		return err
	}
	if _, err := io.WriteString(s.w, data); err != nil {
		return err
	}
	_, err := io.WriteString(s.w, ">")
	return err
}

// Package htmlserializer converts tree-traversal events into HTML text
// while enforcing a fixed sanitization allowlist.
//
// # Overview
//
// htmlserializer is the inverse of a parser: it receives element,
// text, comment, doctype, and processing-instruction events in
// document order — either issued directly against a [Serializer] or
// produced by walking a golang.org/x/net/html node tree — and writes a
// byte-accurate HTML serialization to an io.Writer.
//
// Elements whose tag name is outside a fixed allowlist (p, br, strong,
// em, del, blockquote, code, pre, h1–h6, a, ul, ol, li, hr) are not
// dropped: their tag delimiters are escaped so the tag appears as
// literal visible text, while their children are still serialized
// under their own independent decisions.
//
// # Serialization rules
//
// The serializer reproduces the HTML serialization algorithm:
//   - Text is escaped per context: & and U+00A0 always, < and > in
//     text content, double quotes in attribute values.
//   - Raw-text elements (script, style, xmp, iframe, noembed,
//     noframes, plaintext) pass their text through unescaped; noscript
//     follows [Options.ScriptingEnabled].
//   - Void elements (br, img, hr, ...) get no closing tag, and any
//     events malformed input nests under one are suppressed without
//     unbalancing the serializer.
//   - Attribute namespaces map to their conventional prefixes (xml:,
//     xmlns:, xlink:); unrecognized namespaces degrade to a fallback
//     prefix and a [Diagnostic] rather than an error.
//
// # Errors and diagnostics
//
// Sink write failures abort a run immediately and are returned
// unmodified. An unbalanced event sequence fails with
// [ErrMissingParent] unless [Options.CreateMissingParent] is set, in
// which case a synthetic parent context is substituted and a
// [Diagnostic] is emitted. Diagnostics go to [Options.OnDiagnostic],
// or to the standard logger when the hook is nil.
//
// # Thread safety
//
// Sanitize and Serialize are safe for concurrent use; each call builds
// its own Serializer. A single Serializer instance serves one run and
// must not be shared between goroutines.
//
// # Example
//
//	clean, err := htmlserializer.Sanitize(userInput, htmlserializer.DefaultOptions())
package htmlserializer

package htmlserializer

import (
	"fmt"
	"log"
)

// Diagnostic codes.
const (
	DiagUnexpectedNamespace  = "unexpected_namespace"
	DiagUnknownAttrNamespace = "unknown_attr_namespace"
	DiagMissingParent        = "missing_parent"
)

// Diagnostic is a non-fatal condition observed during serialization,
// such as a dropped namespace or a recovered stack underflow.
// Diagnostics never stop a run; they flag output that is lossy or
// best-effort.
type Diagnostic struct {
	Code    string
	Message string
}

func (d Diagnostic) String() string {
	return d.Code + ": " + d.Message
}

func (s *Serializer) diag(code, format string, args ...any) {
	d := Diagnostic{Code: code, Message: fmt.Sprintf(format, args...)}
	if s.opts.OnDiagnostic != nil {
		s.opts.OnDiagnostic(d)
		return
	}
	log.Printf("htmlserializer: %s", d)
}

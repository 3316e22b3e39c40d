package htmlserializer

import "errors"

// ErrMissingParent reports that an event arrived with no open element
// left on the context stack and [Options.CreateMissingParent] unset.
// It means the traversal driver issued an unbalanced event sequence;
// the serializer instance must not be used after it is returned.
var ErrMissingParent = errors.New("htmlserializer: event with no open element on the context stack")

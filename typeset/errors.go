package typeset

import (
	"errors"
	"fmt"

	"github.com/npillmayer/algotype/construct"
)

// ErrNoAlgorithm is returned if typesetting is started on a node which is
// not the root of an algorithm.
var ErrNoAlgorithm = errors.New("typeset: node is not an algorithm")

// UnknownConstructError is returned if a construct has no renderer. This
// happens for nodes of kind construct.Unknown and for algorithms nested
// inside other constructs.
type UnknownConstructError struct {
	Kind construct.Kind
	Tag  string // element name of the offending node
	Path string // location of the offending node
}

func (e *UnknownConstructError) Error() string {
	return fmt.Sprintf("typeset: unknown construct <%s> at %s", e.Tag, e.Path)
}

// DepthExceededError is returned if constructs are nested deeper than the
// configured limit.
type DepthExceededError struct {
	Depth int
	Limit int
	Path  string // location of the first node beyond the limit
}

func (e *DepthExceededError) Error() string {
	return fmt.Sprintf("typeset: nesting depth %d exceeds limit of %d at %s", e.Depth, e.Limit, e.Path)
}

// MissingAttributeError is returned for constructs lacking a required
// attribute, if strictness is set to Strict.
type MissingAttributeError struct {
	Kind      construct.Kind
	Attribute string
	Path      string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("typeset: %s is missing attribute %q at %s", e.Kind, e.Attribute, e.Path)
}

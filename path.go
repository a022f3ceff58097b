package terms

import (
	"errors"
	"strconv"
	"strings"
)

// Errors surfacing from term operations. Operations return errors wrapping one of
// these, check with errors.Is(…).
var (
	// ErrInvalidPath flags a path which does not address a child position in a term:
	// it is empty where a descent is required, or an index is 0 or exceeds the
	// number of children.
	ErrInvalidPath = errors.New("invalid path")

	// ErrUnboundVariable flags the application of a substitution to a variable
	// without a binding.
	ErrUnboundVariable = errors.New("unbound variable")
)

// Path addresses a sub-term from a root term. It is a sequence of child indices,
// one for each level of descent. Indices are 1-based:
//
//    f ( a, g ( b, c ) )
//
// [2 1] addresses b. The empty path addresses the root itself.
type Path []int

// Append returns a new path with index i appended to p. p is not modified.
func (p Path) Append(i int) Path {
	q := make(Path, len(p), len(p)+1)
	copy(q, p)
	return append(q, i)
}

// Prepend returns a new path with index i in front of p. p is not modified.
func (p Path) Prepend(i int) Path {
	q := make(Path, 1, len(p)+1)
	q[0] = i
	return append(q, p...)
}

// Pop splits off the first index of p. It returns ok = false for empty paths.
func (p Path) Pop() (head int, rest Path, ok bool) {
	if len(p) == 0 {
		return 0, nil, false
	}
	return p[0], p[1:], true
}

// IsEmpty is true for paths of length 0.
func (p Path) IsEmpty() bool {
	return len(p) == 0
}

// Equal compares two paths index by index.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// String renders a path as '[1 2 3]'.
func (p Path) String() string {
	idx := make([]string, len(p))
	for i, n := range p {
		idx[i] = strconv.Itoa(n)
	}
	return "[" + strings.Join(idx, " ") + "]"
}

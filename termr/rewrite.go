package termr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/terms"
	"github.com/npillmayer/terms/subst"
)

// FindPath locates target within root, comparing sub-terms structurally. If root
// itself equals target, the path is empty. Otherwise the children of root are
// searched from left to right, and the first child containing target determines the
// path (leftmost match wins).
//
// Returns false if target is not a sub-term of root.
func FindPath[T comparable](root, target terms.Term[T]) (terms.Path, bool) {
	if root.Equal(target) {
		return terms.Path{}, true
	}
	for i, ch := range root.Children() {
		if p, found := FindPath(ch, target); found {
			return p.Prepend(i + 1), true
		}
	}
	return nil, false
}

// Rewrite replaces the sub-term of root at path with replacement. Before insertion,
// sigma is applied to replacement.
//
// Rewrite returns a new term; root is left untouched. The resulting term shares no
// nodes with either root or replacement.
//
// Path indices are 1-based and must address an existing child position. The root
// itself cannot be replaced, i.e., the path must not be empty. For invalid paths an
// error wrapping terms.ErrInvalidPath is returned; if sigma lacks a binding for a
// variable of replacement, the error wraps terms.ErrUnboundVariable.
func Rewrite[T comparable](root terms.Term[T], path terms.Path, replacement terms.Term[T],
	sigma *subst.Substitution[T]) (terms.Term[T], error) {
	//
	r, err := sigma.Apply(replacement) // Apply always copies
	if err != nil {
		return nil, err
	}
	tracer().Debugf("rewrite %s at %s with %s", root, path, r)
	return rewriteAt(root, path, r, path)
}

// rewriteAt reconstructs node with the child at path replaced by r. full is the
// complete path, for error messages.
func rewriteAt[T comparable](node terms.Term[T], path terms.Path, r terms.Term[T],
	full terms.Path) (terms.Term[T], error) {
	//
	i, rest, ok := path.Pop()
	if !ok {
		tracer().Errorf("empty path while descending into %s", node)
		return nil, fmt.Errorf("%w: %s requires descent into %s", terms.ErrInvalidPath, full, node)
	}
	children := node.Children()
	if i < 1 || i > len(children) {
		tracer().Errorf("index %d out of range for %s", i, node)
		return nil, fmt.Errorf("%w: %s, index %d out of range for %s", terms.ErrInvalidPath,
			full, i, node)
	}
	f := node.(*terms.Function[T]) // leafs have been ruled out by range check
	args := make([]terms.Term[T], len(children))
	for j, ch := range children {
		if j == i-1 {
			continue
		}
		args[j] = ch.Clone()
	}
	if rest.IsEmpty() {
		args[i-1] = r
	} else {
		sub, err := rewriteAt(children[i-1], rest, r, full)
		if err != nil {
			return nil, err
		}
		args[i-1] = sub
	}
	return f.WithArgs(args), nil
}

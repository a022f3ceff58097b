/*
Package unify implements syntactic unification of terms.

Unification tries to find a substitution σ which makes two terms structurally
identical. The algorithm of this package is a single, non-backtracking pass over
both terms:

■ A variable unifies with anything, binding the variable to the other term.
If both terms are variables, the left one is bound.

■ Two literals unify if their values are equal.

■ Two functions unify if their names and argument counts are equal, and all of
their arguments unify pairwise, from left to right.

Please note that this is not a sound first-order unification:
there is no occurs-check, and a later binding for a variable silently replaces
an earlier one instead of being checked against it. For the purpose of
pattern-driven rewriting (see package termr) this is good enough.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package unify

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/terms"
	"github.com/npillmayer/terms/subst"
)

// tracer traces with key 'terms'.
func tracer() tracing.Trace {
	return tracing.Select("terms")
}

// Unify unifies t1 and t2, recording variable bindings in sigma. It returns true if
// unification succeeds.
//
// Bindings are recorded as unification proceeds, therefore sigma may contain
// bindings even if Unify returns false.
func Unify[T comparable](t1, t2 terms.Term[T], sigma *subst.Substitution[T]) bool {
	if v, ok := t1.(*terms.Variable[T]); ok {
		tracer().Debugf("unify: binding %s :-> %s", v.Name, t2)
		sigma.Extend(v.Name, t2)
		return true
	}
	if v, ok := t2.(*terms.Variable[T]); ok {
		tracer().Debugf("unify: binding %s :-> %s", v.Name, t1)
		sigma.Extend(v.Name, t1)
		return true
	}
	switch x := t1.(type) {
	case *terms.Literal[T]:
		if y, ok := t2.(*terms.Literal[T]); ok {
			return x.Value == y.Value
		}
	case *terms.Function[T]:
		if y, ok := t2.(*terms.Function[T]); ok {
			return unifyFunctions(x, y, sigma)
		}
	}
	return false
}

func unifyFunctions[T comparable](f, g *terms.Function[T], sigma *subst.Substitution[T]) bool {
	if f.Name != g.Name || len(f.Args) != len(g.Args) {
		tracer().Debugf("unify: %s does not match %s", f, g)
		return false
	}
	for i, a := range f.Args {
		if !Unify(a, g.Args[i], sigma) {
			return false
		}
	}
	return true
}

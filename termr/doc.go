/*
Package termr implements tools for term rewriting. It provides

■ FindPath, to locate a sub-term within a term;

■ Rewrite, to replace the sub-term at a path with a (substituted) replacement;

■ Reduce, to apply an ordered list of rewrite rules to a term.

Rewrite rules are pairs (pattern ⇒ replacement). The variables of a pattern
are bound by unifying the pattern with a sub-term (see package unify), and the
bindings are substituted into the replacement (see package subst).

A reduction is one pass over the rules. Every rule rewrites at most one sub-term,
namely the first non-variable sub-term (in pre-order) which unifies with the rule's
pattern. Rules are applied in order, each to the result of its predecessor:

    rules := []terms.Rule[bool]{
        terms.NewRule[bool](and(a, lit(false)), lit(false)),   // a && false ⇒ false
        terms.NewRule[bool](or(lit(false), a), a),             // false || a ⇒ a
    }
    r, err := termr.Reduce(t, rules)

Reduce does not iterate to a normal form. Clients wanting a normal form will call
Reduce until the term stops changing. The result of a reduction depends on the order
of rules and on the pre-order of sub-terms; there is no guarantee of confluence.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package termr

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'terms'.
func tracer() tracing.Trace {
	return tracing.Select("terms")
}

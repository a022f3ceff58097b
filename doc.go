/*
Package terms is a small symbolic-term algebra.

Terms are homogenous trees built from three kinds of nodes: variables, literals
and n-ary functions. On top of the term model, a couple of sub-packages
implement the classic operations of term rewriting:

■ subst: Package subst implements substitutions, i.e. mappings from variable
names to terms, and their application to terms.

■ unify: Package unify implements structural (syntactic) unification of terms.

■ traverse: Package traverse flattens a term into a restartable sequence of sub-terms.

■ termr: Package termr locates sub-terms, rewrites terms at paths and reduces terms
by applying ordered lists of rewrite rules.

■ termlang: Package termlang reads terms and rules from their textual representation.

The literal payload of terms is generic. A boolean algebra, for example, would use

    x := terms.Var[bool]("x")
    t := terms.Fn[bool]("&&", 2, x, terms.Lit(false))
    fmt.Println(t)          // prints '&& ( x, false )'

All operations on terms are value-semantic. Clones, substitutions and rewrites always
return new trees and never share nodes with their input.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package terms

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'terms'.
func tracer() tracing.Trace {
	return tracing.Select("terms")
}

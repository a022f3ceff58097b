/*
Package subst implements substitutions for terms.

A substitution σ is a mapping from variable names to terms:

    σ = [ a :-> or(v,w), b :-> false ]

Applying σ to a term replaces every variable of the term by its binding.
Substitutions are filled by unification (see package unify) and consumed
by term rewriting (see package termr).

Substitutions are deliberately simple: each name is bound at most once, and
re-binding a name silently overwrites the previous binding. There is no
check for consistency of bindings.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package subst

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/terms"
)

// tracer traces with key 'terms'.
func tracer() tracing.Trace {
	return tracing.Select("terms")
}

// Substitution is a mapping of variable names to terms (map-like semantics).
// The zero value is not usable, create substitutions with New.
type Substitution[T comparable] struct {
	bindings *treemap.Map // name -> terms.Term[T], sorted by name
}

// New creates an empty substitution.
func New[T comparable]() *Substitution[T] {
	return &Substitution[T]{
		bindings: treemap.NewWithStringComparator(),
	}
}

// Extend binds a variable name to a term. An existing binding for name will be
// replaced. The substitution stores a copy of t.
//
// Returns the substitution (for chaining).
func (sigma *Substitution[T]) Extend(name string, t terms.Term[T]) *Substitution[T] {
	if t == nil {
		panic(fmt.Sprintf("cannot bind variable %s to nil", name))
	}
	if old, found := sigma.bindings.Get(name); found {
		tracer().Debugf("re-binding %s, dropping %s", name, old.(terms.Term[T]))
	}
	sigma.bindings.Put(name, t.Clone())
	return sigma
}

// Lookup returns the term bound to name. If name is unbound, Lookup returns an
// error wrapping terms.ErrUnboundVariable.
//
// The term returned is the substitution's own. Clients wanting to modify it
// should clone it first.
func (sigma *Substitution[T]) Lookup(name string) (terms.Term[T], error) {
	if b, found := sigma.bindings.Get(name); found {
		return b.(terms.Term[T]), nil
	}
	tracer().Errorf("variable %s is unbound in %s", name, sigma)
	return nil, fmt.Errorf("%w: %s", terms.ErrUnboundVariable, name)
}

// IsBound is a predicate to check for a binding of name.
func (sigma *Substitution[T]) IsBound(name string) bool {
	_, found := sigma.bindings.Get(name)
	return found
}

// Size returns the number of bindings.
func (sigma *Substitution[T]) Size() int {
	return sigma.bindings.Size()
}

// Names returns the bound variable names in ascending order.
func (sigma *Substitution[T]) Names() []string {
	keys := sigma.bindings.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}

// Apply creates a new term from t, with every variable of t replaced by a copy
// of its binding: a variable yields its bound term, a literal yields a copy of
// itself, a function yields a copy with every argument substituted.
//
// Bindings are inserted as they are, i.e. variables within bound terms are not
// substituted again.
//
// If a variable of t has no binding in sigma, Apply returns an error wrapping
// terms.ErrUnboundVariable. t is never modified.
func (sigma *Substitution[T]) Apply(t terms.Term[T]) (terms.Term[T], error) {
	switch x := t.(type) {
	case *terms.Variable[T]:
		b, err := sigma.Lookup(x.Name)
		if err != nil {
			return nil, err
		}
		return b.Clone(), nil
	case *terms.Literal[T]:
		return x.Clone(), nil
	case *terms.Function[T]:
		args := make([]terms.Term[T], len(x.Args))
		for i, a := range x.Args {
			r, err := sigma.Apply(a)
			if err != nil {
				return nil, err
			}
			args[i] = r
		}
		return x.WithArgs(args), nil
	}
	panic(fmt.Sprintf("unknown term type %T", t))
}

// String renders a substitution as '[a :-> t1, b :-> t2]', sorted by name.
func (sigma *Substitution[T]) String() string {
	var b strings.Builder
	b.WriteString("[")
	it := sigma.bindings.Iterator()
	first := true
	for it.Next() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%s :-> %s", it.Key().(string), it.Value().(terms.Term[T]))
	}
	b.WriteString("]")
	return b.String()
}

// Dump prints all bindings of a substitution to the tracer, one per line.
func (sigma *Substitution[T]) Dump(level tracing.TraceLevel) {
	out := tracer().Infof
	if level == tracing.LevelDebug {
		out = tracer().Debugf
	} else if level == tracing.LevelError {
		out = tracer().Errorf
	}
	out("[")
	it := sigma.bindings.Iterator()
	for it.Next() {
		out("   %s :-> %s", it.Key().(string), it.Value().(terms.Term[T]))
	}
	out("]")
}

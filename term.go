package terms

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
)

// Kind is a category type for terms. Every term is exactly one of
// VariableKind, LiteralKind or FunctionKind; the zero value is not a kind
// of any term.
type Kind int8

// Kinds of terms. There are no other kinds and there will not be any.
const (
	VariableKind Kind = iota + 1
	LiteralKind
	FunctionKind
)

func (k Kind) String() string {
	switch k {
	case VariableKind:
		return "variable"
	case LiteralKind:
		return "literal"
	case FunctionKind:
		return "function"
	}
	return "<no kind>"
}

// Term is a node in a symbolic expression tree. The set of implementations is closed:
// clients will find one of *Variable[T], *Literal[T] or *Function[T], and may
// dispatch on Kind() or use a type switch.
//
// T is the type of literal payloads. Literals are compared with Go's == operator.
type Term[T comparable] interface {
	Kind() Kind               // capability tag for dispatching
	Children() []Term[T]      // child terms, empty for leafs
	Clone() Term[T]           // deep copy
	Equal(other Term[T]) bool // structural equality
	String() string           // minimal textual rendering
	isTerm()
}

// --- Variables -------------------------------------------------------------

// Variable is a leaf term carrying an identifier.
type Variable[T comparable] struct {
	Name string
}

// Var creates a new variable term.
func Var[T comparable](name string) *Variable[T] {
	return &Variable[T]{Name: name}
}

func (v *Variable[T]) isTerm() {}

// Kind is part of interface Term.
func (v *Variable[T]) Kind() Kind {
	return VariableKind
}

// Children is part of interface Term. Variables never have children.
func (v *Variable[T]) Children() []Term[T] {
	return nil
}

// Clone is part of interface Term.
func (v *Variable[T]) Clone() Term[T] {
	return &Variable[T]{Name: v.Name}
}

// Equal is true if other is a variable with the same name.
func (v *Variable[T]) Equal(other Term[T]) bool {
	w, ok := other.(*Variable[T])
	return ok && w != nil && v.Name == w.Name
}

func (v *Variable[T]) String() string {
	return v.Name
}

// --- Literals --------------------------------------------------------------

// Literal is a leaf term carrying a value.
type Literal[T comparable] struct {
	Value T
}

// Lit creates a new literal term.
func Lit[T comparable](value T) *Literal[T] {
	return &Literal[T]{Value: value}
}

func (l *Literal[T]) isTerm() {}

// Kind is part of interface Term.
func (l *Literal[T]) Kind() Kind {
	return LiteralKind
}

// Children is part of interface Term. Literals never have children.
func (l *Literal[T]) Children() []Term[T] {
	return nil
}

// Clone is part of interface Term.
func (l *Literal[T]) Clone() Term[T] {
	return &Literal[T]{Value: l.Value}
}

// Equal is true if other is a literal with an equal value.
func (l *Literal[T]) Equal(other Term[T]) bool {
	m, ok := other.(*Literal[T])
	return ok && m != nil && l.Value == m.Value
}

func (l *Literal[T]) String() string {
	return fmt.Sprintf("%v", l.Value)
}

// --- Functions -------------------------------------------------------------

// Function is an inner node of a term tree, i.e. a named function symbol applied to
// an ordered list of argument terms.
//
// Arity is informational only. It takes part in equality checks, but is never
// checked against the actual number of arguments.
//
// Functions should be created with Fn or Fun. Args must not contain nil; terms
// built from struct literals with nil arguments are rejected by Clone.
type Function[T comparable] struct {
	Name  string
	Arity int
	Args  []Term[T]
}

// Fn creates a new function term. Arguments must not be nil.
//
//    t := Fn[bool]("||", 2, Var[bool]("x"), Lit(true))
//
func Fn[T comparable](name string, arity int, args ...Term[T]) *Function[T] {
	checkArgs(name, args)
	f := &Function[T]{Name: name, Arity: arity}
	if len(args) > 0 {
		f.Args = make([]Term[T], len(args))
		copy(f.Args, args)
	}
	return f
}

// checkArgs panics if an argument is nil.
func checkArgs[T comparable](name string, args []Term[T]) {
	for i, a := range args {
		if a == nil {
			tracer().Errorf("function %s: argument #%d is nil", name, i+1)
			panic(fmt.Sprintf("argument #%d of function %s is nil", i+1, name))
		}
	}
}

// Fun creates a new function term with an arity matching the number of arguments.
func Fun[T comparable](name string, args ...Term[T]) *Function[T] {
	return Fn(name, len(args), args...)
}

func (f *Function[T]) isTerm() {}

// Kind is part of interface Term.
func (f *Function[T]) Kind() Kind {
	return FunctionKind
}

// Children returns the arguments of f. The slice is f's own, clients should
// treat it as read-only.
func (f *Function[T]) Children() []Term[T] {
	return f.Args
}

// Clone returns a deep copy of f. It panics if f has a nil argument.
func (f *Function[T]) Clone() Term[T] {
	checkArgs(f.Name, f.Args)
	c := &Function[T]{Name: f.Name, Arity: f.Arity}
	if len(f.Args) > 0 {
		c.Args = make([]Term[T], len(f.Args))
		for i, a := range f.Args {
			c.Args[i] = a.Clone()
		}
	}
	return c
}

// Equal is true if other is a function with equal name and arity, and with pairwise
// equal arguments.
func (f *Function[T]) Equal(other Term[T]) bool {
	g, ok := other.(*Function[T])
	if !ok || g == nil {
		return false
	}
	if f.Name != g.Name || f.Arity != g.Arity || len(f.Args) != len(g.Args) {
		return false
	}
	for i, a := range f.Args {
		if !a.Equal(g.Args[i]) {
			return false
		}
	}
	return true
}

// String renders f as 'name ( arg1, arg2 )'.
func (f *Function[T]) String() string {
	if len(f.Args) == 0 {
		return f.Name + " ( )"
	}
	var b strings.Builder
	b.WriteString(f.Name)
	b.WriteString(" ( ")
	for i, a := range f.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.String())
	}
	b.WriteString(" )")
	return b.String()
}

// WithArgs returns a shallow copy of f with its arguments replaced by args.
// Neither f nor args will be modified.
func (f *Function[T]) WithArgs(args []Term[T]) *Function[T] {
	return Fn(f.Name, f.Arity, args...)
}

// ---------------------------------------------------------------------------

// IsVariable is a predicate for variable terms.
func IsVariable[T comparable](t Term[T]) bool {
	return t != nil && t.Kind() == VariableKind
}

// IsLiteral is a predicate for literal terms.
func IsLiteral[T comparable](t Term[T]) bool {
	return t != nil && t.Kind() == LiteralKind
}

// IsFunction is a predicate for function terms.
func IsFunction[T comparable](t Term[T]) bool {
	return t != nil && t.Kind() == FunctionKind
}

// Rule is a rewrite rule, i.e. a pair (pattern, replacement).
type Rule[T comparable] struct {
	Pattern     Term[T]
	Replacement Term[T]
}

// NewRule creates a rewrite rule
//
//    pattern ⇒ replacement
//
func NewRule[T comparable](pattern, replacement Term[T]) Rule[T] {
	return Rule[T]{Pattern: pattern, Replacement: replacement}
}

func (r Rule[T]) String() string {
	return fmt.Sprintf("%s => %s", r.Pattern, r.Replacement)
}

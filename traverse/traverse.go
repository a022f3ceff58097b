/*
Package traverse implements sequences of sub-terms.

A sequence is created from a term by a single recursive pre-order walk
(visit a node, then its children from left to right). The nodes are
materialized into a list once, so a sequence is finite and stable, and it
does not depend on further walks of the tree:

          ||
        /    \
      &&      y
     /  \
    x   false

yields (|| && x false y) in pre-order, and (y false x && ||) in reverse.

Sequences are read-only. They reference the nodes of the term they have been
created from, therefore clients must not modify the term while iterating.
A sequence may be re-started at any time.

    seq := traverse.Preorder(t)
    for seq.Next() {
        fmt.Println(seq.Term())
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package traverse

import (
	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/terms"
)

// tracer traces with key 'terms'.
func tracer() tracing.Trace {
	return tracing.Select("terms")
}

// Seq is a sequence of sub-terms of a term. The cursor of a fresh sequence is
// positioned in front of the first term.
type Seq[T comparable] struct {
	nodes *arraylist.List // of terms.Term[T]
	it    arraylist.Iterator
}

// Preorder creates a sequence of all the sub-terms of t in pre-order, starting with
// t itself. A nil term results in an empty sequence.
func Preorder[T comparable](t terms.Term[T]) *Seq[T] {
	nodes := arraylist.New()
	if t != nil {
		collect(t, nodes)
	}
	tracer().Debugf("pre-order walk of %v yields %d terms", t, nodes.Size())
	return makeSeq[T](nodes)
}

// Reverse creates a sequence of all the sub-terms of t in reverse pre-order, i.e.
// t itself will be the last term of the sequence.
func Reverse[T comparable](t terms.Term[T]) *Seq[T] {
	fwd := Preorder(t)
	return makeSeq[T](reversed(fwd.nodes))
}

func makeSeq[T comparable](nodes *arraylist.List) *Seq[T] {
	return &Seq[T]{
		nodes: nodes,
		it:    nodes.Iterator(),
	}
}

func collect[T comparable](t terms.Term[T], nodes *arraylist.List) {
	nodes.Add(t)
	for _, ch := range t.Children() {
		collect(ch, nodes)
	}
}

func reversed(l *arraylist.List) *arraylist.List {
	r := arraylist.New()
	for i := l.Size() - 1; i >= 0; i-- {
		v, _ := l.Get(i)
		r.Add(v)
	}
	return r
}

// Next moves the cursor to the next term. It returns false if there is no
// next term, i.e. the sequence is exhausted.
func (seq *Seq[T]) Next() bool {
	return seq.it.Next()
}

// Prev moves the cursor to the previous term. It returns false if there is no
// previous term.
func (seq *Seq[T]) Prev() bool {
	return seq.it.Prev()
}

// Term returns the term at the cursor position, or nil if the cursor is outside
// of the sequence.
func (seq *Seq[T]) Term() terms.Term[T] {
	i := seq.it.Index()
	if i < 0 || i >= seq.nodes.Size() {
		return nil
	}
	return seq.it.Value().(terms.Term[T])
}

// Index returns the position of the cursor: -1 in front of the sequence,
// Len() behind the end.
func (seq *Seq[T]) Index() int {
	return seq.it.Index()
}

// Done is true if the cursor has moved behind the last term.
func (seq *Seq[T]) Done() bool {
	return seq.it.Index() >= seq.nodes.Size()
}

// Begin re-starts the sequence, i.e. resets the cursor to the front.
func (seq *Seq[T]) Begin() {
	seq.it.Begin()
}

// End moves the cursor behind the last term. Use Prev() to iterate backwards from there.
func (seq *Seq[T]) End() {
	seq.it.End()
}

// Len returns the number of terms in the sequence.
func (seq *Seq[T]) Len() int {
	return seq.nodes.Size()
}

// Terms returns all the terms of the sequence as a slice, without moving the cursor.
func (seq *Seq[T]) Terms() []terms.Term[T] {
	ts := make([]terms.Term[T], seq.nodes.Size())
	for i, v := range seq.nodes.Values() {
		ts[i] = v.(terms.Term[T])
	}
	return ts
}

// --- Filters ---------------------------------------------------------------

// A Filter is a predicate to select terms of a sequence.
type Filter[T comparable] func(terms.Term[T]) bool

// Where creates a new sequence, holding all the terms of seq for which filt returns
// true, in the same order. The cursor of seq is not moved.
func (seq *Seq[T]) Where(filt Filter[T]) *Seq[T] {
	nodes := arraylist.New()
	for _, v := range seq.nodes.Values() {
		if filt(v.(terms.Term[T])) {
			nodes.Add(v)
		}
	}
	return makeSeq[T](nodes)
}

// NonVariables is a filter rejecting variable terms.
func NonVariables[T comparable]() Filter[T] {
	return func(t terms.Term[T]) bool {
		return !terms.IsVariable(t)
	}
}

// Leaves is a filter which only accepts terms without children.
func Leaves[T comparable]() Filter[T] {
	return func(t terms.Term[T]) bool {
		return len(t.Children()) == 0
	}
}

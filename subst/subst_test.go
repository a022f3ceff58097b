package subst

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/terms"
)

func TestExtendAndLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "terms")
	defer teardown()
	//
	sigma := New[int]()
	sigma.Extend("x", terms.Lit(5))
	b, err := sigma.Lookup("x")
	if err != nil {
		t.Fatal(err)
	}
	if !b.Equal(terms.Lit(5)) {
		t.Errorf("expected x to be bound to 5, is %s", b)
	}
	if !sigma.IsBound("x") || sigma.IsBound("y") {
		t.Errorf("IsBound reports wrong bindings")
	}
}

func TestLookupUnbound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "terms")
	defer teardown()
	//
	sigma := New[int]()
	if _, err := sigma.Lookup("x"); !errors.Is(err, terms.ErrUnboundVariable) {
		t.Errorf("expected unbound variable error, got %v", err)
	}
}

func TestLastBindingWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "terms")
	defer teardown()
	//
	sigma := New[int]()
	sigma.Extend("x", terms.Lit(1)).Extend("x", terms.Lit(2))
	if sigma.Size() != 1 {
		t.Errorf("expected a single binding, have %d", sigma.Size())
	}
	b, _ := sigma.Lookup("x")
	if !b.Equal(terms.Lit(2)) {
		t.Errorf("expected x to be re-bound to 2, is %s", b)
	}
}

func TestExtendStoresCopy(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "terms")
	defer teardown()
	//
	lit := terms.Lit(1)
	sigma := New[int]().Extend("x", lit)
	lit.Value = 7
	b, _ := sigma.Lookup("x")
	if !b.Equal(terms.Lit(1)) {
		t.Errorf("binding changed with caller's term: %s", b)
	}
}

func TestApply(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "terms")
	defer teardown()
	//
	sigma := New[bool]()
	sigma.Extend("a", terms.Fn[bool]("||", 2, terms.Var[bool]("v"), terms.Var[bool]("w")))
	repl := terms.Fn[bool]("!", 1, terms.Var[bool]("a"))
	r, err := sigma.Apply(repl)
	if err != nil {
		t.Fatal(err)
	}
	if r.String() != "! ( || ( v, w ) )" {
		t.Errorf("unexpected result of substitution: %s", r)
	}
	if repl.String() != "! ( a )" {
		t.Errorf("substitution modified its input: %s", repl)
	}
	// bindings are not substituted recursively: v and w stay unbound
	if _, err := sigma.Apply(terms.Var[bool]("v")); !errors.Is(err, terms.ErrUnboundVariable) {
		t.Errorf("expected v to be unbound, got %v", err)
	}
}

func TestApplyCopiesBinding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "terms")
	defer teardown()
	//
	sigma := New[int]().Extend("x", terms.Fn[int]("f", 1, terms.Lit(1)))
	r1, _ := sigma.Apply(terms.Var[int]("x"))
	r1.(*terms.Function[int]).Args[0] = terms.Lit(2)
	r2, _ := sigma.Apply(terms.Var[int]("x"))
	if r2.String() != "f ( 1 )" {
		t.Errorf("applied term aliases the binding: %s", r2)
	}
}

func TestApplyUnbound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "terms")
	defer teardown()
	//
	sigma := New[int]().Extend("x", terms.Lit(1))
	_, err := sigma.Apply(terms.Fn[int]("f", 2, terms.Var[int]("x"), terms.Var[int]("y")))
	if !errors.Is(err, terms.ErrUnboundVariable) {
		t.Errorf("expected unbound variable error for y, got %v", err)
	}
}

func TestStringSorted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "terms")
	defer teardown()
	//
	sigma := New[int]()
	sigma.Extend("y", terms.Lit(2))
	sigma.Extend("x", terms.Fn[int]("f", 1, terms.Lit(1)))
	if s := sigma.String(); s != "[x :-> f ( 1 ), y :-> 2]" {
		t.Errorf("unexpected rendering of substitution: %s", s)
	}
	names := sigma.Names()
	if len(names) != 2 || names[0] != "x" || names[1] != "y" {
		t.Errorf("expected names [x y], have %v", names)
	}
	sigma.Dump(tracing.LevelDebug)
}

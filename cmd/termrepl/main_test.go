package main

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/terms"
	"github.com/npillmayer/terms/termlang"
)

func TestExecuteRuleAndReduce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "terms")
	defer teardown()
	//
	intp := newIntp[bool](termlang.Booleans{})
	if _, err := intp.Execute("rule &&(a, false) => false"); err != nil {
		t.Fatal(err)
	}
	if intp.rules.Len() != 1 {
		t.Fatalf("expected 1 rule after 'rule' command, have %d", intp.rules.Len())
	}
	if _, err := intp.Execute("reduce ||(&&(true, false), x)"); err != nil {
		t.Fatal(err)
	}
	_, r, err := intp.reduce("||(&&(true, false), x)")
	if err != nil {
		t.Fatal(err)
	}
	if r.String() != "|| ( false, x )" {
		t.Errorf("unexpected reduction result %s", r)
	}
	if _, err := intp.Execute("clear"); err != nil || intp.rules.Len() != 0 {
		t.Errorf("expected 'clear' to remove all rules, have %d", intp.rules.Len())
	}
}

func TestExecuteUnify(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "terms")
	defer teardown()
	//
	intp := newIntp[int64](termlang.Integers{})
	if _, err := intp.Execute("unify f(x) = f(5)"); err != nil {
		t.Fatal(err)
	}
	sigma, ok, err := intp.unify("f(x, g(y)) = f(1, g(2))")
	if err != nil || !ok {
		t.Fatalf("expected terms to unify, have %v", err)
	}
	x, err := sigma.Lookup("x")
	if err != nil || !x.Equal(terms.Lit(int64(1))) {
		t.Errorf("expected x :-> 1, have %s", sigma)
	}
	if _, ok, _ = intp.unify("f(1) = g(1)"); ok {
		t.Errorf("expected function name mismatch to fail")
	}
}

func TestExecuteDispatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "terms")
	defer teardown()
	//
	intp := newIntp[bool](termlang.Booleans{})
	for _, line := range []string{"help", "rules", "walk &&(x, y)", "rwalk &&(x, y)",
		"path &&(x, y) = y", "tree !(x)"} {
		if quit, err := intp.Execute(line); err != nil || quit {
			t.Errorf("command %q: quit = %v, err = %v", line, quit, err)
		}
	}
	if quit, _ := intp.Execute("quit"); !quit {
		t.Errorf("expected 'quit' to end the session")
	}
	if _, err := intp.Execute("frobnicate x"); err == nil {
		t.Errorf("expected error for unknown command")
	}
	if _, err := intp.Execute("rule &&(a, false)"); !errors.Is(err, termlang.ErrSyntax) {
		t.Errorf("expected syntax error for incomplete rule, have %v", err)
	}
}

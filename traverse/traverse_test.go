package traverse

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/terms"
)

// || ( && ( x, false ), y )
func makeTerm() terms.Term[bool] {
	return terms.Fn[bool]("||", 2,
		terms.Fn[bool]("&&", 2, terms.Var[bool]("x"), terms.Lit(false)),
		terms.Var[bool]("y"))
}

func heads(seq *Seq[bool]) string {
	var names []string
	for seq.Next() {
		switch t := seq.Term().(type) {
		case *terms.Function[bool]:
			names = append(names, t.Name)
		default:
			names = append(names, t.String())
		}
	}
	return strings.Join(names, " ")
}

func TestPreorder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "terms")
	defer teardown()
	//
	seq := Preorder(makeTerm())
	if seq.Len() != 5 {
		t.Errorf("expected 5 terms in sequence, have %d", seq.Len())
	}
	if h := heads(seq); h != "|| && x false y" {
		t.Errorf("unexpected pre-order sequence: %s", h)
	}
	if !seq.Done() {
		t.Errorf("expected sequence to be exhausted")
	}
	if seq.Term() != nil {
		t.Errorf("expected no term behind end of sequence")
	}
}

func TestReverse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "terms")
	defer teardown()
	//
	if h := heads(Reverse(makeTerm())); h != "y false x && ||" {
		t.Errorf("unexpected reverse sequence: %s", h)
	}
}

func TestLeafSequence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "terms")
	defer teardown()
	//
	seq := Preorder[bool](terms.Var[bool]("v"))
	if h := heads(seq); h != "v" {
		t.Errorf("expected a variable to yield itself, have %s", h)
	}
}

func TestRestart(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "terms")
	defer teardown()
	//
	seq := Preorder(makeTerm())
	first := heads(seq)
	seq.Begin()
	if seq.Done() {
		t.Errorf("expected restarted sequence not to be done")
	}
	if second := heads(seq); second != first {
		t.Errorf("restarted sequence differs: %s vs %s", first, second)
	}
}

func TestBackwards(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "terms")
	defer teardown()
	//
	seq := Preorder(makeTerm())
	seq.End()
	var names []string
	for seq.Prev() {
		names = append(names, seq.Term().String())
	}
	if len(names) != 5 || names[0] != "y" || names[4] != "|| ( && ( x, false ), y )" {
		t.Errorf("unexpected backwards iteration: %v", names)
	}
}

func TestSequenceReferencesNodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "terms")
	defer teardown()
	//
	term := makeTerm()
	all := Preorder(term).Terms()
	if all[0] != term {
		t.Errorf("expected first term of sequence to be the root")
	}
	if all[1] != term.Children()[0] {
		t.Errorf("expected second term of sequence to be the first child")
	}
}

func TestWhere(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "terms")
	defer teardown()
	//
	seq := Preorder(makeTerm())
	if h := heads(seq.Where(NonVariables[bool]())); h != "|| && false" {
		t.Errorf("unexpected non-variable sequence: %s", h)
	}
	if h := heads(seq.Where(Leaves[bool]())); h != "x false y" {
		t.Errorf("unexpected leaf sequence: %s", h)
	}
	if seq.Index() != -1 {
		t.Errorf("expected filtering not to move the cursor, index is %d", seq.Index())
	}
}

package termr

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/terms"
	"github.com/npillmayer/terms/subst"
	"github.com/npillmayer/terms/traverse"
	"github.com/npillmayer/terms/unify"
)

// Reduce applies rules to a term, in order. Every rule is applied to the result of
// the previous one, and every rule performs at most one rewrite: the first non-variable
// sub-term of the current term (in pre-order) which unifies with the rule's pattern
// is replaced by the rule's replacement, with the pattern's bindings substituted.
// Rules which match nowhere leave the term unchanged.
//
// If the matching sub-term is the term itself, the substituted replacement becomes
// the new term.
//
// Reduce returns a new term and never modifies t. Errors (a replacement referencing
// a variable not bound by its pattern, for example) abort the reduction, and no
// partial result is returned.
func Reduce[T comparable](t terms.Term[T], rules []terms.Rule[T]) (terms.Term[T], error) {
	current := t.Clone()
	for n, rule := range rules {
		next, fired, err := applyRule(current, rule)
		if err != nil {
			tracer().Errorf("rule #%d (%s) failed: %v", n+1, rule, err)
			return nil, err
		}
		if fired {
			tracer().Infof("rule #%d (%s) rewrites to %s", n+1, rule, next)
			current = next
		}
	}
	return current, nil
}

// applyRule performs a single rewrite of t with rule. It returns false if the rule's
// pattern does not match any sub-term of t.
//
// One substitution is used for all the sub-terms tried, as bindings are overwritten
// by every successful unification step.
func applyRule[T comparable](t terms.Term[T], rule terms.Rule[T]) (terms.Term[T], bool, error) {
	sigma := subst.New[T]()
	redexes := traverse.Preorder(t).Where(traverse.NonVariables[T]())
	for redexes.Next() {
		s := redexes.Term()
		if !unify.Unify(s, rule.Pattern, sigma) {
			continue
		}
		tracer().Debugf("%s matches pattern %s with %s", s, rule.Pattern, sigma)
		path, found := FindPath(t, s)
		if !found {
			panic(fmt.Sprintf("sub-term %s not found in %s", s, t))
		}
		if path.IsEmpty() {
			r, err := sigma.Apply(rule.Replacement)
			return r, err == nil, err
		}
		r, err := Rewrite(t, path, rule.Replacement, sigma)
		return r, err == nil, err
	}
	return t, false, nil
}

// --- Rule sets -------------------------------------------------------------

// RuleSet is an ordered list of rewrite rules.
type RuleSet[T comparable] struct {
	Name  string
	rules []terms.Rule[T]
}

// NewRuleSet creates a named rule set, initially holding rules.
func NewRuleSet[T comparable](name string, rules ...terms.Rule[T]) *RuleSet[T] {
	rs := &RuleSet[T]{Name: name}
	return rs.Add(rules...)
}

// Add appends rules to the rule set. Rules with a nil pattern or replacement are
// ignored.
//
// Returns the rule set (for chaining).
func (rs *RuleSet[T]) Add(rules ...terms.Rule[T]) *RuleSet[T] {
	for _, r := range rules {
		if r.Pattern == nil || r.Replacement == nil {
			tracer().Errorf("rule set %s: ignoring incomplete rule", rs.Name)
			continue
		}
		rs.rules = append(rs.rules, r)
	}
	return rs
}

// Rules returns the rules of rs, in order.
func (rs *RuleSet[T]) Rules() []terms.Rule[T] {
	rules := make([]terms.Rule[T], len(rs.rules))
	copy(rules, rs.rules)
	return rules
}

// Len returns the number of rules.
func (rs *RuleSet[T]) Len() int {
	return len(rs.rules)
}

// Reduce applies the rules of rs to t. See function Reduce.
func (rs *RuleSet[T]) Reduce(t terms.Term[T]) (terms.Term[T], error) {
	tracer().Debugf("rule set %s: reducing %s", rs.Name, t)
	return Reduce(t, rs.rules)
}

func (rs *RuleSet[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "rule set %s {\n", rs.Name)
	for i, r := range rs.rules {
		fmt.Fprintf(&b, "  %3d: %s\n", i+1, r)
	}
	b.WriteString("}")
	return b.String()
}

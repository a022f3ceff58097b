/*
Command termrepl is an interactive shell for experiments with term rewriting.

Users enter commands on a line each:

    rule <pattern> => <replacement>   add a rewrite rule
    rules                             list the rewrite rules
    clear                             remove all rewrite rules
    reduce <term>                     apply the rules once (one pass)
    unify <term> = <term>             unify two terms and print the substitution
    path <term> = <sub-term>          locate a sub-term
    walk <term>                       print the sub-terms in pre-order
    rwalk <term>                      print the sub-terms in reverse pre-order
    tree <term>                       display a term as a tree
    help                              print this list
    quit                              leave the shell

Flags:

    -trace  Debug|Info|Error   trace level
    -init   <file>             load rewrite rules from a file, one per line
    -domain bool|int           literal domain of terms

If configuration flag 'termrepl-print-tree' is set, results of reductions will
be displayed as trees, too.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"

	"github.com/npillmayer/terms"
	"github.com/npillmayer/terms/subst"
	"github.com/npillmayer/terms/termlang"
	"github.com/npillmayer/terms/termr"
	"github.com/npillmayer/terms/traverse"
	"github.com/npillmayer/terms/unify"
)

// tracer traces with key 'terms'.
func tracer() tracing.Trace {
	return tracing.Select("terms")
}

func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load of rewrite rules")
	domain := flag.String("domain", "bool", "Literal domain [bool|int]")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to TermREPL") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	//
	repl, err := readline.New("termr> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	switch *domain {
	case "bool":
		err = run[bool](repl, termlang.Booleans{}, *initf)
	case "int":
		err = run[int64](repl, termlang.Integers{}, *initf)
	default:
		err = fmt.Errorf("unknown literal domain: %s", *domain)
	}
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func run[T comparable](repl *readline.Instance, decoder termlang.LiteralDecoder[T], initf string) error {
	intp := newIntp(decoder)
	intp.repl = repl
	if err := intp.loadInitFile(initf); err != nil {
		return err
	}
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()
	return nil
}

// Intp is our interpreter object
type Intp[T comparable] struct {
	reader *termlang.Reader[T]
	rules  *termr.RuleSet[T]
	repl   *readline.Instance
}

func newIntp[T comparable](decoder termlang.LiteralDecoder[T]) *Intp[T] {
	return &Intp[T]{
		reader: termlang.NewReader(decoder),
		rules:  termr.NewRuleSet[T]("termrepl"),
	}
}

func (intp *Intp[T]) loadInitFile(filename string) error {
	if filename == "" {
		return nil
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return err
	}
	defer f.Close()
	rules, err := intp.reader.Rules(f)
	if err != nil {
		return fmt.Errorf("init file %s: %w", filename, err)
	}
	intp.rules.Add(rules...)
	pterm.Info.Println(fmt.Sprintf("Loaded %d rules from %s", len(rules), filename))
	return nil
}

// REPL starts interactive mode.
func (intp *Intp[T]) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Execute(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}

// Execute executes a single command line. It returns true if the user wants
// to quit.
func (intp *Intp[T]) Execute(line string) (bool, error) {
	cmd, args := line, ""
	if i := strings.IndexAny(line, " \t"); i > 0 {
		cmd, args = line[:i], strings.TrimSpace(line[i+1:])
	}
	tracer().Debugf("command %q, args %q", cmd, args)
	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		pterm.Info.Println("rule, rules, clear, reduce, unify, path, walk, rwalk, tree, quit")
	case "rule":
		rule, err := intp.reader.Rule(args)
		if err != nil {
			return false, err
		}
		intp.rules.Add(rule)
		pterm.Info.Println(fmt.Sprintf("rule #%d: %s", intp.rules.Len(), rule))
	case "rules":
		for i, r := range intp.rules.Rules() {
			pterm.Info.Println(fmt.Sprintf("%3d: %s", i+1, r))
		}
	case "clear":
		intp.rules = termr.NewRuleSet[T](intp.rules.Name)
		pterm.Info.Println("all rules removed")
	case "reduce":
		t, r, err := intp.reduce(args)
		if err != nil {
			return false, err
		}
		if r.Equal(t) {
			pterm.Info.Println(fmt.Sprintf("%s (unchanged)", r))
		} else {
			pterm.Info.Println(r.String())
		}
		if gconf.GetBool("termrepl-print-tree") {
			printTree(r)
		}
	case "unify":
		sigma, ok, err := intp.unify(args)
		if err != nil {
			return false, err
		}
		if ok {
			pterm.Info.Println(fmt.Sprintf("unifies with %s", sigma))
		} else {
			pterm.Info.Println(fmt.Sprintf("does not unify, partial bindings %s", sigma))
		}
	case "path":
		return false, intp.path(args)
	case "walk", "rwalk":
		t, err := intp.reader.Term(args)
		if err != nil {
			return false, err
		}
		seq := traverse.Preorder(t)
		if cmd == "rwalk" {
			seq = traverse.Reverse(t)
		}
		for seq.Next() {
			pterm.Info.Println(fmt.Sprintf("%3d: %s", seq.Index()+1, seq.Term()))
		}
	case "tree":
		t, err := intp.reader.Term(args)
		if err != nil {
			return false, err
		}
		printTree(t)
	default:
		return false, fmt.Errorf("unknown command: %s", cmd)
	}
	return false, nil
}

// reduce reads a term and applies the rules to it. It returns the term read and
// the result of the reduction.
func (intp *Intp[T]) reduce(args string) (terms.Term[T], terms.Term[T], error) {
	t, err := intp.reader.Term(args)
	if err != nil {
		return nil, nil, err
	}
	r, err := intp.rules.Reduce(t)
	if err != nil {
		return nil, nil, err
	}
	return t, r, nil
}

func (intp *Intp[T]) unify(args string) (*subst.Substitution[T], bool, error) {
	lhs, rhs, err := intp.reader.Equation(args)
	if err != nil {
		return nil, false, err
	}
	sigma := subst.New[T]()
	return sigma, unify.Unify(lhs, rhs, sigma), nil
}

func (intp *Intp[T]) path(args string) error {
	root, target, err := intp.reader.Equation(args)
	if err != nil {
		return err
	}
	if p, found := termr.FindPath(root, target); found {
		pterm.Info.Println(fmt.Sprintf("%s found at %s", target, p))
	} else {
		pterm.Info.Println(fmt.Sprintf("%s is not a sub-term of %s", target, root))
	}
	return nil
}

// --- Tree display ----------------------------------------------------------

func printTree[T comparable](t terms.Term[T]) {
	ll := leveledTerm(t, pterm.LeveledList{}, 0)
	tracer().Debugf("|ll| = %d, ll = %v", len(ll), ll)
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

func leveledTerm[T comparable](t terms.Term[T], ll pterm.LeveledList, level int) pterm.LeveledList {
	text := t.String()
	if f, ok := t.(*terms.Function[T]); ok {
		text = f.Name
	}
	ll = append(ll, pterm.LeveledListItem{
		Level: level,
		Text:  text,
	})
	for _, ch := range t.Children() {
		ll = leveledTerm(ch, ll, level+1)
	}
	return ll
}

package termlang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// ErrSyntax flags input which is not a well-formed term, rule or equation.
var ErrSyntax = errors.New("syntax error")

// The tokens representing literal lexemes. '=' is not an operator character,
// thus '=>' and '=' are never swallowed by an adjacent operator symbol.
var literals = []struct {
	lexeme string
	typ    TokType
}{
	{"=>", Arrow},
	{"=", Equals},
	{"(", LParen},
	{")", RParen},
	{",", Comma},
}

var lexer *lexmachine.Lexer
var lexerErr error
var lexerOnce sync.Once // monitors one-time creation of the lexer

// createLexer creates the lexmachine lexer for the term language. The DFA is
// compiled once.
func createLexer() (*lexmachine.Lexer, error) {
	lexerOnce.Do(func() {
		tracer().Debugf("Creating lexer")
		lx := lexmachine.NewLexer()
		lx.Add([]byte(`;[^\n]*\n?`), skip) // skip comments
		lx.Add([]byte(`( |\t|\n|\r)+`), skip)
		for _, lit := range literals {
			lx.Add([]byte(quoteLiteral(lit.lexeme)), makeToken(lit.typ))
		}
		lx.Add([]byte(`\"[^"]*\"`), makeToken(String))
		lx.Add([]byte(`[\+\-]?[0-9]+(\.[0-9]+)?`), makeToken(Number))
		lx.Add([]byte(`([a-z]|[A-Z]|_)([a-z]|[A-Z]|[0-9]|_)*`), makeToken(Ident))
		lx.Add([]byte(`[\+\-\*/&\|!<>\^~%\?#]+`), makeToken(Ident))
		if err := lx.Compile(); err != nil {
			tracer().Errorf("Error compiling DFA: %v", err)
			lexerErr = err
			return
		}
		lexer = lx
	})
	return lexer, lexerErr
}

// quoteLiteral escapes every character of a literal lexeme.
func quoteLiteral(lit string) string {
	return "\\" + strings.Join(strings.Split(lit, ""), "\\")
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(typ TokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(typ), string(m.Bytes), m), nil
	}
}

// scan splits input into tokens. The token list is terminated by an EOF token.
func scan(input string) ([]Token, error) {
	lx, err := createLexer()
	if err != nil {
		return nil, err
	}
	scanner, err := lx.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	var toks []Token
	for {
		tok, err, eof := scanner.Next()
		if err != nil {
			if ui, is := err.(*machines.UnconsumedInput); is {
				tracer().Errorf("scanner error at %d: %v", ui.StartTC, err)
				return nil, fmt.Errorf("%w: unexpected input at position %d", ErrSyntax, ui.StartTC)
			}
			return nil, err
		}
		if eof {
			break
		}
		t := tok.(*lexmachine.Token)
		pos := uint64(t.TC)
		toks = append(toks, Token{
			Type:   TokType(t.Type),
			Lexeme: string(t.Lexeme),
			Span:   Span{pos, pos + uint64(len(t.Lexeme))},
		})
	}
	end := uint64(len(input))
	toks = append(toks, Token{Type: EOF, Span: Span{end, end}})
	tracer().Debugf("scanned %d tokens", len(toks))
	return toks, nil
}

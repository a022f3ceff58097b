package termlang

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/terms"
)

// --- Grammar ---------------------------------------------------------------
//
// Rule       ::=  Term '=>' Term
// Equation   ::=  Term '=' Term
// Term       ::=  ident '(' Args ')'       // function
// Term       ::=  ident                    // variable or literal
// Term       ::=  number                   // literal
// Term       ::=  string                   // literal
// Args       ::=  Term { ',' Term }
// Args       ::=  ε
//
// The grammar is LL(1), thus we parse by recursive descent.

// Reader reads terms with literals of type T.
type Reader[T comparable] struct {
	decoder LiteralDecoder[T]
}

// NewReader creates a reader for terms, using a literal decoder for type T.
func NewReader[T comparable](decoder LiteralDecoder[T]) *Reader[T] {
	if decoder == nil {
		panic("literal decoder may not be nil")
	}
	return &Reader[T]{decoder: decoder}
}

// Term reads a single term from input.
func (r *Reader[T]) Term(input string) (terms.Term[T], error) {
	p, err := r.start(input)
	if err != nil {
		return nil, err
	}
	t, err := p.term()
	if err != nil {
		return nil, err
	}
	if err = p.expect(EOF); err != nil {
		return nil, err
	}
	return t, nil
}

// Rule reads a rewrite rule 'pattern => replacement' from input.
func (r *Reader[T]) Rule(input string) (terms.Rule[T], error) {
	lhs, rhs, err := r.pair(input, Arrow)
	if err != nil {
		return terms.Rule[T]{}, err
	}
	return terms.NewRule(lhs, rhs), nil
}

// Equation reads a pair of terms 'lhs = rhs' from input.
func (r *Reader[T]) Equation(input string) (terms.Term[T], terms.Term[T], error) {
	return r.pair(input, Equals)
}

// Rules reads rewrite rules, one per line. Empty lines and comment lines are skipped.
// Errors report the offending line number.
func (r *Reader[T]) Rules(input io.Reader) ([]terms.Rule[T], error) {
	var rules []terms.Rule[T]
	scanner := bufio.NewScanner(input)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		rule, err := r.Rule(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		rules = append(rules, rule)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	tracer().Infof("read %d rules", len(rules))
	return rules, nil
}

func (r *Reader[T]) pair(input string, sep TokType) (terms.Term[T], terms.Term[T], error) {
	p, err := r.start(input)
	if err != nil {
		return nil, nil, err
	}
	lhs, err := p.term()
	if err != nil {
		return nil, nil, err
	}
	if err = p.expect(sep); err != nil {
		return nil, nil, err
	}
	rhs, err := p.term()
	if err != nil {
		return nil, nil, err
	}
	if err = p.expect(EOF); err != nil {
		return nil, nil, err
	}
	return lhs, rhs, nil
}

func (r *Reader[T]) start(input string) (*parser[T], error) {
	toks, err := scan(input)
	if err != nil {
		return nil, err
	}
	return &parser[T]{toks: toks, decoder: r.decoder}, nil
}

// --- Parser ----------------------------------------------------------------

type parser[T comparable] struct {
	toks    []Token // terminated by EOF
	pos     int
	decoder LiteralDecoder[T]
}

func (p *parser[T]) peek() Token {
	return p.toks[p.pos]
}

func (p *parser[T]) next() Token {
	tok := p.toks[p.pos]
	if tok.Type != EOF {
		p.pos++
	}
	return tok
}

func (p *parser[T]) expect(tt TokType) error {
	tok := p.next()
	if tok.Type != tt {
		return p.errorf(tok, "expected %s, found %s", tt, tok)
	}
	return nil
}

func (p *parser[T]) errorf(tok Token, format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	tracer().Errorf("%s at %s", msg, tok.Span)
	return fmt.Errorf("%w at %d: %s", ErrSyntax, tok.Span.From(), msg)
}

func (p *parser[T]) term() (terms.Term[T], error) {
	tok := p.next()
	switch tok.Type {
	case Ident:
		if p.peek().Type == LParen {
			return p.function(tok)
		}
		if v, ok := p.decoder.DecodeIdent(tok.Lexeme); ok {
			return terms.Lit(v), nil
		}
		return terms.Var[T](tok.Lexeme), nil
	case Number:
		v, err := p.decoder.DecodeNumber(tok.Lexeme)
		if err != nil {
			return nil, p.errorf(tok, "%v", err)
		}
		return terms.Lit(v), nil
	case String:
		v, err := p.decoder.DecodeString(strings.Trim(tok.Lexeme, `"`))
		if err != nil {
			return nil, p.errorf(tok, "%v", err)
		}
		return terms.Lit(v), nil
	}
	return nil, p.errorf(tok, "expected term, found %s", tok)
}

func (p *parser[T]) function(name Token) (terms.Term[T], error) {
	p.next() // '('
	var args []terms.Term[T]
	if p.peek().Type == RParen {
		p.next()
		return terms.Fun(name.Lexeme, args...), nil
	}
	for {
		arg, err := p.term()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		tok := p.next()
		if tok.Type == RParen {
			break
		}
		if tok.Type != Comma {
			return nil, p.errorf(tok, "expected ',' or ')' in arguments of %s, found %s",
				name.Lexeme, tok)
		}
	}
	return terms.Fun(name.Lexeme, args...), nil
}

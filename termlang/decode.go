package termlang

import (
	"fmt"
	"strconv"
)

// LiteralDecoder converts lexemes to literal values of type T.
//
// DecodeIdent is asked for every identifier which is not the name of a function.
// Returning false makes the identifier a variable.
// DecodeNumber and DecodeString return an error if the literal domain has
// no values for numbers or for strings.
type LiteralDecoder[T comparable] interface {
	DecodeIdent(name string) (T, bool)
	DecodeNumber(lexeme string) (T, error)
	DecodeString(s string) (T, error)
}

// Booleans is a literal decoder for boolean terms. Identifiers 'true' and 'false'
// are literals.
type Booleans struct{}

var _ LiteralDecoder[bool] = Booleans{}

// DecodeIdent is part of interface LiteralDecoder.
func (Booleans) DecodeIdent(name string) (bool, bool) {
	switch name {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// DecodeNumber is part of interface LiteralDecoder.
func (Booleans) DecodeNumber(lexeme string) (bool, error) {
	return false, fmt.Errorf("numbers are not boolean literals: %s", lexeme)
}

// DecodeString is part of interface LiteralDecoder.
func (Booleans) DecodeString(s string) (bool, error) {
	return false, fmt.Errorf("strings are not boolean literals: %q", s)
}

// Integers is a literal decoder for terms over int64.
type Integers struct{}

var _ LiteralDecoder[int64] = Integers{}

// DecodeIdent is part of interface LiteralDecoder.
func (Integers) DecodeIdent(name string) (int64, bool) {
	return 0, false
}

// DecodeNumber is part of interface LiteralDecoder.
func (Integers) DecodeNumber(lexeme string) (int64, error) {
	return strconv.ParseInt(lexeme, 10, 64)
}

// DecodeString is part of interface LiteralDecoder.
func (Integers) DecodeString(s string) (int64, error) {
	return 0, fmt.Errorf("strings are not integer literals: %q", s)
}

// Strings is a literal decoder for terms over strings. Only quoted strings
// are literals.
type Strings struct{}

var _ LiteralDecoder[string] = Strings{}

// DecodeIdent is part of interface LiteralDecoder.
func (Strings) DecodeIdent(name string) (string, bool) {
	return "", false
}

// DecodeNumber is part of interface LiteralDecoder.
func (Strings) DecodeNumber(lexeme string) (string, error) {
	return "", fmt.Errorf("numbers are not string literals: %s", lexeme)
}

// DecodeString is part of interface LiteralDecoder.
func (Strings) DecodeString(s string) (string, error) {
	return s, nil
}

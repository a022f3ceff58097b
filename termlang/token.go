package termlang

import "fmt"

// TokType is a category type for a Token.
type TokType int

// Token types of the term language.
const (
	EOF TokType = iota
	Ident
	Number
	String
	LParen
	RParen
	Comma
	Arrow
	Equals
)

var tokTypeNames = []string{"<eof>", "identifier", "number", "string", "'('", "')'",
	"','", "'=>'", "'='"}

func (tt TokType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokTypeNames) {
		return tokTypeNames[tt]
	}
	return fmt.Sprintf("<token %d>", int(tt))
}

// Token represents an input token. Tokens are produced by the scanner and
// reflect terminals of the term language.
type Token struct {
	Type   TokType
	Lexeme string // lexeme as it appeared in the input
	Span   Span   // input positions covered by the token
}

func (t Token) String() string {
	if t.Type == EOF {
		return t.Type.String()
	}
	return fmt.Sprintf("%s %q", t.Type, t.Lexeme)
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input bytes. A span denotes
// a start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

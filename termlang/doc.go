/*
Package termlang reads terms and rewrite rules from text.

The textual form of terms is the one terms render to:

    || ( && ( x, false ), y )

■ Identifiers and operator symbols standing alone denote variables, unless the
literal decoder claims them as literals (e.g., 'true' and 'false' for booleans).

■ An identifier or operator symbol followed by a parenthesized, comma-separated
list of terms denotes a function. Its arity is the number of arguments.

■ Numbers and double-quoted strings denote literals, if the literal decoder
accepts them.

Rules are written as 'pattern => replacement', equations as 'lhs = rhs'.
Comments start with ';' and extend to the end of the line.

    r := termlang.NewReader[bool](termlang.Booleans{})
    rule, err := r.Rule("&& ( a, false ) => false")

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package termlang

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'terms'.
func tracer() tracing.Trace {
	return tracing.Select("terms")
}

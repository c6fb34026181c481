package argv

import "strings"

type tokenKind int

const (
	tokenLiteral tokenKind = iota
	tokenLong
	tokenShort
	tokenTerminator
)

func (k tokenKind) String() string {
	switch k {
	case tokenLong:
		return "long"
	case tokenShort:
		return "short"
	case tokenTerminator:
		return "terminator"
	default:
		return "literal"
	}
}

// token is one classified argument.
type token struct {
	kind tokenKind
	raw  string

	// long: name before '=', value after it.
	name     string
	value    string
	hasValue bool

	// short: characters after the leading '-'.
	cluster string
}

// classify maps one raw argument to a token. It is pure.
//
//	--name, --name=value  long
//	-abc                  short cluster
//	--                    terminator
//	anything else         literal ("-" and "" included)
func classify(arg string) token {
	if len(arg) > 2 && arg[0] == '-' && arg[1] == '-' {
		body := arg[2:]
		t := token{kind: tokenLong, raw: arg, name: body}
		if eq := strings.IndexByte(body, '='); eq != -1 {
			t.name = body[:eq]
			t.value = body[eq+1:]
			t.hasValue = true
		}
		if t.name != "" {
			return t
		}
		// "--=x" has no name; fall through to literal.
		return token{kind: tokenLiteral, raw: arg}
	}
	if len(arg) > 1 && arg[0] == '-' && arg[1] != '-' {
		return token{kind: tokenShort, raw: arg, cluster: arg[1:]}
	}
	if arg == "--" {
		return token{kind: tokenTerminator, raw: arg}
	}
	return token{kind: tokenLiteral, raw: arg}
}

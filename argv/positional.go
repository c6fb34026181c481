package argv

// binding is the raw text assigned to one positional spec.
type binding struct {
	spec   *PositionalSpec
	tokens []string
}

// assignPositionals maps leftover literal tokens onto positional specs in
// three passes:
//
//  1. the leading run of required single positionals takes tokens from the front;
//  2. the trailing run of required single positionals takes tokens from the back;
//  3. the remaining specs take tokens from the front in declaration order, a
//     multi-valued spec swallowing everything left.
//
// Specs that receive nothing are absent from the result. Tokens left over
// after all passes are an error naming the first surplus token.
func assignPositionals(specs []PositionalSpec, tokens []string) ([]binding, *ParseError) {
	bound := make([]*binding, len(specs))
	lo, hi := 0, len(tokens)

	missing := func(s *PositionalSpec) *ParseError {
		return newParseError(ErrorTypeMissingRequired, s.Name, "",
			"missing required argument <"+s.Name+">")
	}

	// Leading required run.
	for i := range specs {
		s := &specs[i]
		if !s.Required || s.Multiple {
			break
		}
		if lo >= hi {
			return nil, missing(s)
		}
		bound[i] = &binding{spec: s, tokens: tokens[lo : lo+1]}
		lo++
	}

	// Trailing required run.
	for i := len(specs) - 1; i >= 0; i-- {
		s := &specs[i]
		if bound[i] != nil || !s.Required || s.Multiple {
			break
		}
		if lo >= hi {
			return nil, missing(s)
		}
		bound[i] = &binding{spec: s, tokens: tokens[hi-1 : hi]}
		hi--
	}

	// Middle specs.
	for i := range specs {
		if bound[i] != nil {
			continue
		}
		s := &specs[i]
		if lo >= hi {
			if s.Required {
				return nil, missing(s)
			}
			continue
		}
		if s.Multiple {
			bound[i] = &binding{spec: s, tokens: tokens[lo:hi]}
			lo = hi
			break
		}
		bound[i] = &binding{spec: s, tokens: tokens[lo : lo+1]}
		lo++
	}

	if lo < hi {
		extra := tokens[lo]
		return nil, newParseError(ErrorTypeUnexpectedArgument, "", extra,
			"unexpected argument: "+extra)
	}

	out := make([]binding, 0, len(specs))
	for _, b := range bound {
		if b != nil {
			out = append(out, *b)
		}
	}
	return out, nil
}

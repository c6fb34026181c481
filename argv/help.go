package argv

import (
	"slices"
	"strings"
)

// formatUsage renders the single usage line:
//
//	prog -n|--name <string> [-p|--port <number = 8080>] [-v|--verbose] <src> [<dst>]
//
// Options come first, required ones before optional ones and each group
// sorted by identifier; positionals follow in declaration order.
func formatUsage(prog string, opts []OptionSpec, pos []PositionalSpec) string {
	parts := make([]string, 0, 1+len(opts)+len(pos))
	parts = append(parts, prog)

	sorted := make([]*OptionSpec, len(opts))
	for i := range opts {
		sorted[i] = &opts[i]
	}
	slices.SortStableFunc(sorted, func(a, b *OptionSpec) int {
		if a.Required != b.Required {
			if a.Required {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Name, b.Name)
	})
	for _, o := range sorted {
		parts = append(parts, wrapUsage(optionUsage(o), o.Required, o.Multiple))
	}
	for i := range pos {
		p := &pos[i]
		parts = append(parts, wrapUsage("<"+p.Name+">", p.Required, p.Multiple))
	}
	return strings.Join(parts, " ")
}

// optionUsage renders "-a|--long <kind>" without optionality brackets.
func optionUsage(o *OptionSpec) string {
	var b strings.Builder
	for _, a := range o.Aliases {
		b.WriteByte('-')
		b.WriteRune(a)
		b.WriteByte('|')
	}
	b.WriteString(CLIName(o.Name))
	if o.Kind != KindBool {
		b.WriteString(" <")
		b.WriteString(o.Kind.String())
		if o.HasDefault {
			b.WriteString(" = ")
			b.WriteString(o.Default.String())
		}
		b.WriteByte('>')
	}
	return b.String()
}

// wrapUsage applies the optionality and multiplicity brackets:
//
//	optional       [X]
//	optional, many [X]...
//	required, many X [X]...
func wrapUsage(s string, required, multiple bool) string {
	switch {
	case required && multiple:
		return s + " [" + s + "]..."
	case required:
		return s
	case multiple:
		return "[" + s + "]..."
	default:
		return "[" + s + "]"
	}
}

package argv

import (
	"slices"
	"strings"
	"unicode"
)

// CLIName derives the long-option spelling of a canonical identifier.
//
//	entryPoint  --entry-point
//	myDNSFiles  --my-dns-files
//	totalGForce --total-g-force
func CLIName(id string) string {
	return "--" + strings.Join(splitWords(id), "-")
}

func isLowerOrDigit(r rune) bool {
	return unicode.IsLower(r) || unicode.IsDigit(r)
}

// splitWords breaks an identifier on capitalization boundaries and returns
// the lowercased words. A new word starts at an upper-case letter that
// follows a lower-case letter or digit, and at the last upper-case letter of
// a run when it is followed by a lower-case letter or digit ("DNSFiles" is
// "dns", "files"). '_' and '-' separate words and are dropped.
func splitWords(id string) []string {
	runes := []rune(id)
	words := make([]string, 0, 4)
	start := -1
	flush := func(end int) {
		if start >= 0 && end > start {
			words = append(words, strings.ToLower(string(runes[start:end])))
		}
		start = -1
	}
	for i, r := range runes {
		if r == '_' || r == '-' {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
			continue
		}
		if unicode.IsUpper(r) {
			prev := runes[i-1]
			switch {
			case isLowerOrDigit(prev):
				flush(i)
				start = i
			case unicode.IsUpper(prev) && i+1 < len(runes) && isLowerOrDigit(runes[i+1]):
				flush(i)
				start = i
			}
		}
	}
	flush(len(runes))
	return words
}

// nameTable resolves long spellings and alias characters to options.
// Built once per Parser and never mutated afterwards.
type nameTable struct {
	long     map[string]*OptionSpec // keyed by spelling without the leading "--"
	short    map[rune]*OptionSpec
	spelling map[string]string // identifier -> "--spelling"
}

func newNameTable(opts []OptionSpec) (*nameTable, error) {
	t := &nameTable{
		long:     make(map[string]*OptionSpec, len(opts)),
		short:    make(map[rune]*OptionSpec, len(opts)),
		spelling: make(map[string]string, len(opts)),
	}
	for i := range opts {
		o := &opts[i]
		spelled := CLIName(o.Name)
		key := spelled[2:]
		if key == "" {
			return nil, configErrorf(RuleEmptyName, o.Name, "identifier %q has no spellable words", o.Name)
		}
		if prev, dup := t.long[key]; dup {
			return nil, configErrorf(RuleDuplicateSpelling, o.Name,
				"options %q and %q both spell %s", prev.Name, o.Name, spelled)
		}
		t.long[key] = o
		t.spelling[o.Name] = spelled

		for _, a := range o.Aliases {
			if prev, dup := t.short[a]; dup {
				return nil, configErrorf(RuleDuplicateAlias, o.Name,
					"alias -%c declared by both %q and %q", a, prev.Name, o.Name)
			}
			t.short[a] = o
		}
	}
	return t, nil
}

func (t *nameTable) lookupLong(name string) *OptionSpec { return t.long[name] }

func (t *nameTable) lookupShort(r rune) *OptionSpec { return t.short[r] }

// spellings returns every long spelling in sorted order, used for suggestions.
func (t *nameTable) spellings() []string {
	out := make([]string, 0, len(t.long))
	for key := range t.long {
		out = append(out, key)
	}
	slices.Sort(out)
	return out
}

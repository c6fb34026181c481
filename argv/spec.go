package argv

// OptionSpec declares a named option (`--long`, `-s`).
type OptionSpec struct {
	// Name is the canonical identifier; the long spelling is derived from it (see CLIName).
	Name        string
	Description string
	Kind        Kind
	Multiple    bool
	Required    bool
	Default     Value
	HasDefault  bool
	Aliases     []rune
	EnvVars     []string // consulted in order when the option is absent
}

// PositionalSpec declares a positional argument. Declaration order matters.
type PositionalSpec struct {
	Name        string
	Description string
	Kind        Kind
	Multiple    bool
	Required    bool
	Default     Value
	HasDefault  bool
}

// variable reports whether p may bind zero or several tokens.
func (p *PositionalSpec) variable() bool {
	return !p.Required || p.Multiple
}

// Condition is a named predicate evaluated against a finished ValueMap.
type Condition struct {
	Name  string
	Check func(*ValueMap) bool
}

func validateDefault(name string, kind Kind, multiple, required, hasDefault bool, def Value) error {
	if !hasDefault {
		return nil
	}
	if required {
		return configErrorf(RuleInvalidDefault, name, "required entry %q cannot declare a default", name)
	}
	if multiple {
		return configErrorf(RuleInvalidDefault, name, "multi-valued entry %q cannot declare a default", name)
	}
	if def.Kind() != kind {
		return configErrorf(RuleInvalidDefault, name, "default for %q is a %s, declared %s", name, def.Kind(), kind)
	}
	return nil
}

// validateOptions checks per-option legality. Alias and spelling uniqueness
// are enforced while the name table is built.
func validateOptions(opts []OptionSpec) error {
	for i := range opts {
		o := &opts[i]
		if o.Name == "" {
			return configErrorf(RuleEmptyName, "", "option #%d has no name", i)
		}
		if !o.Kind.valid() {
			return configErrorf(RuleInvalidKind, o.Name, "option %q has undeclared kind %d", o.Name, int(o.Kind))
		}
		for _, a := range o.Aliases {
			if a == '-' || a == '=' {
				return configErrorf(RuleInvalidAlias, o.Name, "option %q declares illegal alias %q", o.Name, a)
			}
		}
		if err := validateDefault(o.Name, o.Kind, o.Multiple, o.Required, o.HasDefault, o.Default); err != nil {
			return err
		}
	}
	return nil
}

// validatePositionals enforces the ordering rules: a leading run of required
// single positionals, then variable-length positionals (at most one of them
// multi-valued, and it must be the last variable one), then an optional
// trailing run of required single positionals.
func validatePositionals(specs []PositionalSpec) error {
	const (
		leading = iota
		middle
		trailing
	)
	phase := leading
	variadic := ""
	for i := range specs {
		s := &specs[i]
		if s.Name == "" {
			return configErrorf(RuleEmptyName, "", "positional #%d has no name", i)
		}
		if !s.Kind.valid() {
			return configErrorf(RuleInvalidKind, s.Name, "positional %q has undeclared kind %d", s.Name, int(s.Kind))
		}
		if err := validateDefault(s.Name, s.Kind, s.Multiple, s.Required, s.HasDefault, s.Default); err != nil {
			return err
		}

		switch phase {
		case leading:
			if s.variable() {
				phase = middle
			}
		case middle:
			if !s.variable() {
				phase = trailing
			}
		case trailing:
			if s.variable() {
				return configErrorf(RuleVariableAfterTrail, s.Name,
					"variable-length positional %q follows the trailing required run", s.Name)
			}
		}

		if s.Multiple {
			if variadic != "" {
				return configErrorf(RuleMultipleVariadic, s.Name,
					"positional %q is multi-valued but %q already is", s.Name, variadic)
			}
			variadic = s.Name
			continue
		}
		if variadic != "" && s.variable() {
			return configErrorf(RuleAfterVariadic, s.Name,
				"optional positional %q declared after multi-valued %q", s.Name, variadic)
		}
	}
	return nil
}

// validateNames rejects duplicated identifiers across options and positionals.
func validateNames(opts []OptionSpec, pos []PositionalSpec) error {
	seen := make(map[string]struct{}, len(opts)+len(pos))
	for i := range opts {
		if _, dup := seen[opts[i].Name]; dup {
			return configErrorf(RuleDuplicateName, opts[i].Name, "identifier %q declared twice", opts[i].Name)
		}
		seen[opts[i].Name] = struct{}{}
	}
	for i := range pos {
		if _, dup := seen[pos[i].Name]; dup {
			return configErrorf(RuleDuplicateName, pos[i].Name, "identifier %q declared twice", pos[i].Name)
		}
		seen[pos[i].Name] = struct{}{}
	}
	return nil
}

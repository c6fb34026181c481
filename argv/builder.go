package argv

import (
	argvio "github.com/dzonerzy/go-argv/io"
)

// Scalar is the set of Go types a Value can hold.
type Scalar interface {
	bool | float64 | string
}

// HelpOption is the identifier of the help option added by Builder.
const HelpOption = "help"

// Builder assembles a Parser fluently:
//
//	p, err := argv.New("cp").
//		BoolOption("recursive", "copy directories").Short('r').Back().
//		StringArg("src", "source").Required().Multiple().Back().
//		StringArg("dst", "destination").Required().Back().
//		Build()
type Builder struct {
	name        string
	options     []OptionSpec
	positionals []PositionalSpec
	conditions  []Condition

	noHelp  bool
	logger  *argvio.Logger
	suggest *int
}

// New starts a declaration for the program called name.
func New(name string) *Builder {
	return &Builder{name: name}
}

func kindOf[T Scalar]() Kind {
	var zero T
	switch any(zero).(type) {
	case bool:
		return KindBool
	case float64:
		return KindNumber
	default:
		return KindString
	}
}

func valueOf[T Scalar](v T) Value {
	switch x := any(v).(type) {
	case bool:
		return BoolValue(x)
	case float64:
		return NumberValue(x)
	default:
		return StringValue(any(v).(string))
	}
}

func addOption[T Scalar](b *Builder, name, description string) *OptionBuilder[T] {
	b.options = append(b.options, OptionSpec{Name: name, Description: description, Kind: kindOf[T]()})
	return &OptionBuilder[T]{parent: b, index: len(b.options) - 1}
}

func addArg[T Scalar](b *Builder, name, description string) *ArgBuilder[T] {
	b.positionals = append(b.positionals, PositionalSpec{Name: name, Description: description, Kind: kindOf[T]()})
	return &ArgBuilder[T]{parent: b, index: len(b.positionals) - 1}
}

// BoolOption declares a flag; presence sets it to true.
func (b *Builder) BoolOption(name, description string) *OptionBuilder[bool] {
	return addOption[bool](b, name, description)
}

// NumberOption declares an option taking a number.
func (b *Builder) NumberOption(name, description string) *OptionBuilder[float64] {
	return addOption[float64](b, name, description)
}

// StringOption declares an option taking a string.
func (b *Builder) StringOption(name, description string) *OptionBuilder[string] {
	return addOption[string](b, name, description)
}

// BoolArg declares a positional accepting 0, 1, false or true.
func (b *Builder) BoolArg(name, description string) *ArgBuilder[bool] {
	return addArg[bool](b, name, description)
}

// NumberArg declares a numeric positional.
func (b *Builder) NumberArg(name, description string) *ArgBuilder[float64] {
	return addArg[float64](b, name, description)
}

// StringArg declares a string positional.
func (b *Builder) StringArg(name, description string) *ArgBuilder[string] {
	return addArg[string](b, name, description)
}

// Condition appends a named predicate checked after a successful parse.
// The n-th condition (from zero) fails with code ConditionCodeBase+n.
func (b *Builder) Condition(name string, check func(*ValueMap) bool) *Builder {
	b.conditions = append(b.conditions, Condition{Name: name, Check: check})
	return b
}

// DisableHelp stops Build from adding the help option.
func (b *Builder) DisableHelp() *Builder {
	b.noHelp = true
	return b
}

// Logger routes parser debug traces to l.
func (b *Builder) Logger(l *argvio.Logger) *Builder {
	b.logger = l
	return b
}

// Suggestions sets the edit distance for "did you mean" hints (0 disables).
func (b *Builder) Suggestions(distance int) *Builder {
	b.suggest = &distance
	return b
}

// Build validates the declaration and returns the Parser. Unless disabled,
// a --help option (alias -h when free) is added first.
func (b *Builder) Build() (*Parser, error) {
	opts := b.options
	var parserOpts []Option

	if !b.noHelp {
		if !b.declares(HelpOption) {
			help := OptionSpec{Name: HelpOption, Description: "show usage", Kind: KindBool}
			if !b.aliasTaken('h') {
				help.Aliases = []rune{'h'}
			}
			opts = append([]OptionSpec{help}, opts...)
		}
		parserOpts = append(parserOpts, WithHelp(HelpOption))
	}
	if b.logger != nil {
		parserOpts = append(parserOpts, WithLogger(b.logger))
	}
	if b.suggest != nil {
		parserOpts = append(parserOpts, WithSuggestions(*b.suggest))
	}
	return NewParser(b.name, opts, b.positionals, b.conditions, parserOpts...)
}

// MustBuild is like Build but panics on a declaration error.
func (b *Builder) MustBuild() *Parser {
	p, err := b.Build()
	if err != nil {
		panic(err)
	}
	return p
}

func (b *Builder) declares(name string) bool {
	for i := range b.options {
		if b.options[i].Name == name {
			return true
		}
	}
	return false
}

func (b *Builder) aliasTaken(r rune) bool {
	for i := range b.options {
		for _, a := range b.options[i].Aliases {
			if a == r {
				return true
			}
		}
	}
	return false
}

// OptionBuilder refines the most recently declared option.
type OptionBuilder[T Scalar] struct {
	parent *Builder
	index  int
}

func (o *OptionBuilder[T]) spec() *OptionSpec { return &o.parent.options[o.index] }

// Short adds a single-character alias.
func (o *OptionBuilder[T]) Short(r rune) *OptionBuilder[T] {
	s := o.spec()
	s.Aliases = append(s.Aliases, r)
	return o
}

// Required makes the option mandatory.
func (o *OptionBuilder[T]) Required() *OptionBuilder[T] {
	o.spec().Required = true
	return o
}

// Multiple collects every occurrence into an ordered sequence.
func (o *OptionBuilder[T]) Multiple() *OptionBuilder[T] {
	o.spec().Multiple = true
	return o
}

// Default sets the value used when the option is absent.
func (o *OptionBuilder[T]) Default(v T) *OptionBuilder[T] {
	s := o.spec()
	s.Default = valueOf(v)
	s.HasDefault = true
	return o
}

// FromEnv lists environment variables consulted, in order, when the
// option is not given on the command line.
func (o *OptionBuilder[T]) FromEnv(vars ...string) *OptionBuilder[T] {
	s := o.spec()
	s.EnvVars = append(s.EnvVars, vars...)
	return o
}

// Key returns a typed accessor for the option's value.
func (o *OptionBuilder[T]) Key() Key[T] { return Key[T]{name: o.spec().Name} }

// Back returns to the parent builder.
func (o *OptionBuilder[T]) Back() *Builder { return o.parent }

// ArgBuilder refines the most recently declared positional.
type ArgBuilder[T Scalar] struct {
	parent *Builder
	index  int
}

func (a *ArgBuilder[T]) spec() *PositionalSpec { return &a.parent.positionals[a.index] }

// Required makes the positional mandatory.
func (a *ArgBuilder[T]) Required() *ArgBuilder[T] {
	a.spec().Required = true
	return a
}

// Multiple lets the positional take any number of tokens.
func (a *ArgBuilder[T]) Multiple() *ArgBuilder[T] {
	a.spec().Multiple = true
	return a
}

// Default sets the value used when no token is bound.
func (a *ArgBuilder[T]) Default(v T) *ArgBuilder[T] {
	s := a.spec()
	s.Default = valueOf(v)
	s.HasDefault = true
	return a
}

// Key returns a typed accessor for the positional's value.
func (a *ArgBuilder[T]) Key() Key[T] { return Key[T]{name: a.spec().Name} }

// Back returns to the parent builder.
func (a *ArgBuilder[T]) Back() *Builder { return a.parent }

// Key reads one entry of a ValueMap with its declared Go type.
type Key[T Scalar] struct {
	name string
}

// KeyOf builds a Key for an identifier declared without the Builder.
func KeyOf[T Scalar](name string) Key[T] { return Key[T]{name: name} }

func (k Key[T]) Name() string { return k.name }

// Get returns the scalar value and whether one was resolved.
func (k Key[T]) Get(m *ValueMap) (T, bool) {
	v, ok := m.Get(k.name)
	if !ok {
		var zero T
		return zero, false
	}
	t, ok := v.Any().(T)
	return t, ok
}

// Value returns the scalar value or the zero value of T.
func (k Key[T]) Value(m *ValueMap) T {
	t, _ := k.Get(m)
	return t
}

// List returns the sequence stored for a multi-valued entry.
func (k Key[T]) List(m *ValueMap) []T {
	l, _ := m.List(k.name)
	out := make([]T, 0, len(l))
	for _, v := range l {
		if t, ok := v.Any().(T); ok {
			out = append(out, t)
		}
	}
	return out
}

package argv

import (
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/dzonerzy/go-argv/internal/fuzzy"
	argvio "github.com/dzonerzy/go-argv/io"
)

const defaultSuggestDistance = 2

// Parser turns argument vectors into ValueMaps. It is immutable once built
// and safe for concurrent use.
type Parser struct {
	name        string
	options     []OptionSpec
	positionals []PositionalSpec
	conditions  []Condition
	names       *nameTable

	help            string // identifier of the help option, "" when disabled
	usage           string
	logger          *argvio.Logger
	suggestDistance int
	matcher         *fuzzy.Matcher
}

// Option configures a Parser at construction.
type Option func(*Parser)

// WithHelp designates the boolean option whose presence makes Parse return
// a *HelpRequest instead of values.
func WithHelp(name string) Option {
	return func(p *Parser) { p.help = name }
}

// WithLogger enables debug tracing of every Parse call.
func WithLogger(l *argvio.Logger) Option {
	return func(p *Parser) { p.logger = l }
}

// WithSuggestions sets the maximum edit distance used to suggest a known
// spelling for an unrecognized long option. Zero disables suggestions.
func WithSuggestions(distance int) Option {
	return func(p *Parser) { p.suggestDistance = distance }
}

// NewParser validates the declaration and returns a ready Parser. Every
// declaration problem is reported as a *ConfigError.
func NewParser(name string, opts []OptionSpec, pos []PositionalSpec, conds []Condition, options ...Option) (*Parser, error) {
	p := &Parser{
		name:            name,
		options:         cloneOptions(opts),
		positionals:     append([]PositionalSpec(nil), pos...),
		conditions:      append([]Condition(nil), conds...),
		suggestDistance: defaultSuggestDistance,
	}
	for _, o := range options {
		o(p)
	}

	if err := validateOptions(p.options); err != nil {
		return nil, err
	}
	if err := validatePositionals(p.positionals); err != nil {
		return nil, err
	}
	if err := validateNames(p.options, p.positionals); err != nil {
		return nil, err
	}
	names, err := newNameTable(p.options)
	if err != nil {
		return nil, err
	}
	p.names = names

	if p.help != "" {
		if err := p.checkHelp(); err != nil {
			return nil, err
		}
	}
	for i, c := range p.conditions {
		if c.Name == "" || c.Check == nil {
			return nil, configErrorf(RuleEmptyCondition, c.Name, "condition #%d needs a name and a predicate", i)
		}
	}
	if p.suggestDistance > 0 {
		p.matcher = fuzzy.NewMatcher(p.suggestDistance)
	}

	p.usage = formatUsage(name, p.options, p.positionals)
	return p, nil
}

func cloneOptions(opts []OptionSpec) []OptionSpec {
	out := make([]OptionSpec, len(opts))
	for i, o := range opts {
		o.Aliases = append([]rune(nil), o.Aliases...)
		o.EnvVars = append([]string(nil), o.EnvVars...)
		out[i] = o
	}
	return out
}

func (p *Parser) checkHelp() error {
	for i := range p.options {
		o := &p.options[i]
		if o.Name != p.help {
			continue
		}
		if o.Kind != KindBool || o.Multiple || o.Required {
			return configErrorf(RuleUnknownHelp, o.Name, "help option %q must be an optional single boolean", o.Name)
		}
		return nil
	}
	return configErrorf(RuleUnknownHelp, p.help, "help option %q is not declared", p.help)
}

// Name returns the program name used in the usage line.
func (p *Parser) Name() string { return p.name }

// Usage returns the one-line usage string.
func (p *Parser) Usage() string { return p.usage }

// Options returns a copy of the declared options.
func (p *Parser) Options() []OptionSpec { return cloneOptions(p.options) }

// Positionals returns a copy of the declared positionals.
func (p *Parser) Positionals() []PositionalSpec {
	return append([]PositionalSpec(nil), p.positionals...)
}

// Parse processes one argument vector (without the program name). It
// returns the values, a *HelpRequest when help was asked for, or the first
// *ParseError encountered.
func (p *Parser) Parse(args []string) (*ValueMap, error) {
	acc := newAccumulator(len(p.options) + len(p.positionals))
	literals := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		tok := classify(args[i])
		p.debugf("token %d %s %q", i, tok.kind, tok.raw)

		switch tok.kind {
		case tokenTerminator:
			literals = append(literals, args[i+1:]...)
			i = len(args)
		case tokenLiteral:
			literals = append(literals, tok.raw)
		case tokenLong:
			used, err := p.parseLong(tok, args[i+1:], acc)
			if err != nil {
				return nil, p.fail(err)
			}
			i += used
		case tokenShort:
			used, err := p.parseShort(tok, args[i+1:], acc)
			if err != nil {
				return nil, p.fail(err)
			}
			i += used
		}
	}

	if p.help != "" && acc.values.Bool(p.help) {
		p.debugf("help requested")
		return nil, &HelpRequest{Usage: p.usage}
	}

	bindings, perr := assignPositionals(p.positionals, literals)
	if perr != nil {
		return nil, p.fail(perr)
	}
	for _, b := range bindings {
		p.debugf("positional <%s> = %q", b.spec.Name, b.tokens)
		for _, raw := range b.tokens {
			v, err := coercePositional(b.spec, raw)
			if err != nil {
				return nil, p.fail(err)
			}
			acc.add(b.spec.Name, b.spec.Kind, b.spec.Multiple, v)
		}
	}
	for i := range p.positionals {
		s := &p.positionals[i]
		acc.fill(s.Name, s.Kind, s.Multiple, s.HasDefault, s.Default)
	}

	for i := range p.options {
		if err := p.resolveUnset(&p.options[i], acc); err != nil {
			return nil, p.fail(err)
		}
	}

	if err := checkConditions(p.conditions, acc.values); err != nil {
		return nil, p.fail(err)
	}
	p.debugf("parsed %d keys", len(acc.values.Keys()))
	return acc.values, nil
}

// parseLong handles --name and --name=value. It returns how many of the
// following arguments were consumed as the option's value.
func (p *Parser) parseLong(tok token, rest []string, acc *accumulator) (int, *ParseError) {
	spelled := "--" + tok.name
	opt := p.names.lookupLong(tok.name)
	if opt == nil {
		err := newParseError(ErrorTypeUnknownOption, "", tok.raw, "unknown option "+spelled)
		if s := p.suggest(tok.name); s != "" {
			err.Suggestion = "--" + s
		}
		return 0, err
	}

	if opt.Kind == KindBool {
		if tok.hasValue {
			return 0, newParseError(ErrorTypeValueNotPermitted, opt.Name, tok.raw,
				"option "+spelled+" does not take a value")
		}
		acc.add(opt.Name, opt.Kind, opt.Multiple, BoolValue(true))
		return 0, nil
	}

	raw, used := tok.value, 0
	if !tok.hasValue {
		if len(rest) == 0 {
			return 0, newParseError(ErrorTypeValueRequired, opt.Name, tok.raw,
				"option "+spelled+" requires a value")
		}
		raw, used = rest[0], 1
	}
	v, err := coerceOption(opt, spelled, raw)
	if err != nil {
		return 0, err
	}
	acc.add(opt.Name, opt.Kind, opt.Multiple, v)
	return used, nil
}

// parseShort walks a cluster such as -abc. Boolean aliases may be chained;
// the first value-taking alias takes the rest of the cluster ("-ofile",
// "-o=file") or, when nothing follows it, the next argument.
func (p *Parser) parseShort(tok token, rest []string, acc *accumulator) (int, *ParseError) {
	cluster := tok.cluster
	for i, r := range cluster {
		spelled := "-" + string(r)
		opt := p.names.lookupShort(r)
		if opt == nil {
			return 0, newParseError(ErrorTypeUnknownOption, "", tok.raw, "unknown option "+spelled)
		}
		tail := cluster[i+utf8.RuneLen(r):]

		if opt.Kind == KindBool {
			if len(tail) > 0 && tail[0] == '=' {
				return 0, newParseError(ErrorTypeValueNotPermitted, opt.Name, tok.raw,
					"option "+spelled+" does not take a value")
			}
			acc.add(opt.Name, opt.Kind, opt.Multiple, BoolValue(true))
			continue
		}

		raw, used := tail, 0
		switch {
		case tail != "":
			if tail[0] == '=' {
				raw = tail[1:]
			}
		case len(rest) > 0:
			raw, used = rest[0], 1
		default:
			return 0, newParseError(ErrorTypeValueRequired, opt.Name, tok.raw,
				"option "+spelled+" requires a value")
		}
		v, err := coerceOption(opt, spelled, raw)
		if err != nil {
			return 0, err
		}
		acc.add(opt.Name, opt.Kind, opt.Multiple, v)
		return used, nil
	}
	return 0, nil
}

// resolveUnset applies, in order, the environment, the required check and
// the default to an option that did not appear on the command line.
func (p *Parser) resolveUnset(o *OptionSpec, acc *accumulator) *ParseError {
	if acc.present(o.Name) {
		return nil
	}
	for _, env := range o.EnvVars {
		raw, ok := os.LookupEnv(env)
		if !ok {
			continue
		}
		v, err := coerceText(o.Kind, raw)
		if err != nil {
			return newParseError(ErrorTypeInvalidValue, o.Name, raw,
				"invalid "+o.Kind.String()+" value in $"+env+" for "+p.names.spelling[o.Name]+": "+strconv.Quote(raw))
		}
		p.debugf("option %s from $%s", o.Name, env)
		acc.add(o.Name, o.Kind, o.Multiple, v)
		return nil
	}
	if o.Required {
		return newParseError(ErrorTypeMissingRequired, o.Name, "",
			"missing required option "+p.names.spelling[o.Name])
	}
	if o.HasDefault {
		p.debugf("option %s defaults to %s", o.Name, o.Default)
	}
	acc.fill(o.Name, o.Kind, o.Multiple, o.HasDefault, o.Default)
	return nil
}

func (p *Parser) suggest(name string) string {
	if p.matcher == nil {
		return ""
	}
	return p.matcher.FindBest(name, p.names.spellings())
}

// fail attaches the usage line to err and traces it.
func (p *Parser) fail(err *ParseError) *ParseError {
	err.Usage = p.usage
	p.debugf("%s: %s (code %d)", err.Type, err.Message, err.Code)
	return err
}

func (p *Parser) debugf(format string, args ...any) {
	if p.logger == nil {
		return
	}
	p.logger.Debug(format, args...)
}

package argv

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents the category of a parse failure.
// Every category maps to a stable process exit code (see ExitCode).
type ErrorType string

const (
	ErrorTypeValueRequired      ErrorType = "value_required"
	ErrorTypeValueNotPermitted  ErrorType = "value_not_permitted"
	ErrorTypeInvalidValue       ErrorType = "invalid_value"
	ErrorTypeUnknownOption      ErrorType = "unknown_option"
	ErrorTypeUnexpectedArgument ErrorType = "unexpected_argument"
	ErrorTypeMissingRequired    ErrorType = "missing_required"
	ErrorTypeConditionFailed    ErrorType = "condition_failed"
)

// Exit codes. Codes 2 through 6 are reserved for structural parse failures;
// condition failures start at ConditionCodeBase and increase by one per
// declared condition.
const (
	CodeSuccess           = 0
	CodeGeneral           = 1
	CodeValueRequired     = 2
	CodeValueNotPermitted = 3
	CodeInvalidValue      = 4
	CodeUnrecognized      = 5
	CodeMissingRequired   = 6

	ConditionCodeBase = CodeMissingRequired + 1
)

// ErrHelpRequested is matched (via errors.Is) by the *HelpRequest returned
// from Parse when the help option is present.
var ErrHelpRequested = errors.New("help requested")

// HelpRequest is the control signal returned by Parse when the designated
// help option resolved true. It is not a failure: callers print Usage and
// exit successfully.
type HelpRequest struct {
	Usage string
}

func (h *HelpRequest) Error() string { return h.Usage }

// Is makes errors.Is(err, ErrHelpRequested) work.
func (h *HelpRequest) Is(target error) bool { return target == ErrHelpRequested }

// ParseError represents a failure detected while parsing one argument vector.
type ParseError struct {
	Type       ErrorType
	Message    string
	Name       string // canonical identifier of the offending option/positional/condition
	Token      string // raw token that triggered the error, if any
	Suggestion string // closest known spelling for unknown long options
	Code       int
	Usage      string
}

// Error returns the message followed by the usage line.
func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Suggestion != "" {
		b.WriteString(" (did you mean ")
		b.WriteString(e.Suggestion)
		b.WriteString("?)")
	}
	if e.Usage != "" {
		b.WriteString("\nusage: ")
		b.WriteString(e.Usage)
	}
	return b.String()
}

// ConfigError reports an illegal declaration. It is a programmer error and
// is only ever produced while constructing a Parser.
type ConfigError struct {
	Rule    string
	Name    string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("argv: invalid declaration (%s): %s", e.Rule, e.Message)
}

// Rules reported by ConfigError.
const (
	RuleEmptyName          = "empty-name"
	RuleDuplicateName      = "duplicate-name"
	RuleDuplicateSpelling  = "duplicate-spelling"
	RuleDuplicateAlias     = "duplicate-alias"
	RuleInvalidAlias       = "invalid-alias"
	RuleInvalidKind        = "invalid-kind"
	RuleInvalidDefault     = "invalid-default"
	RuleVariableAfterTrail = "variable-after-trailing-required"
	RuleMultipleVariadic   = "multiple-variadic"
	RuleAfterVariadic      = "declared-after-variadic"
	RuleUnknownHelp        = "unknown-help-option"
	RuleEmptyCondition     = "empty-condition"
)

func configErrorf(rule, name, format string, args ...any) *ConfigError {
	return &ConfigError{Rule: rule, Name: name, Message: fmt.Sprintf(format, args...)}
}

// codeFor maps a structural error type to its reserved code.
func codeFor(typ ErrorType) int {
	switch typ {
	case ErrorTypeValueRequired:
		return CodeValueRequired
	case ErrorTypeValueNotPermitted:
		return CodeValueNotPermitted
	case ErrorTypeInvalidValue:
		return CodeInvalidValue
	case ErrorTypeUnknownOption, ErrorTypeUnexpectedArgument:
		return CodeUnrecognized
	case ErrorTypeMissingRequired:
		return CodeMissingRequired
	case ErrorTypeConditionFailed:
		return ConditionCodeBase
	default:
		return CodeGeneral
	}
}

func newParseError(typ ErrorType, name, token, message string) *ParseError {
	return &ParseError{
		Type:    typ,
		Message: message,
		Name:    name,
		Token:   token,
		Code:    codeFor(typ),
	}
}

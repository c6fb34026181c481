package argv

import (
	"errors"
	"fmt"

	"github.com/fatih/color"

	argvio "github.com/dzonerzy/go-argv/io"
)

// ExitCode maps the outcome of Parse to a process exit code.
//
//	nil, *HelpRequest   CodeSuccess
//	*ParseError         its Code
//	anything else       CodeGeneral
func ExitCode(err error) int {
	if err == nil || errors.Is(err, ErrHelpRequested) {
		return CodeSuccess
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return CodeGeneral
}

// ParseOrExit parses the process arguments supplied by io. On success it
// returns the values. On a help request it prints the usage line to io.Out
// and exits with CodeSuccess; on a parse error it prints the diagnostic to
// io.Err and exits with the error's code.
func (p *Parser) ParseOrExit(io *argvio.IOManager) *ValueMap {
	values, err := p.Parse(io.Args())
	if err == nil {
		return values
	}

	var help *HelpRequest
	if errors.As(err, &help) {
		fmt.Fprintf(io.Out(), "%s %s\n", io.Style("usage:", color.Bold), help.Usage)
		io.Exit(CodeSuccess)
		return nil
	}

	var pe *ParseError
	if errors.As(err, &pe) {
		writeParseError(io, pe)
	} else {
		fmt.Fprintf(io.Err(), "%s %v\n", io.Style("error:", color.FgRed, color.Bold), err)
	}
	io.Exit(ExitCode(err))
	return nil
}

func writeParseError(io *argvio.IOManager, pe *ParseError) {
	w := io.Err()
	fmt.Fprintf(w, "%s %s\n", io.Style("error:", color.FgRed, color.Bold), pe.Message)
	if pe.Suggestion != "" {
		fmt.Fprintf(w, "  did you mean %s?\n", io.Style(pe.Suggestion, color.FgYellow))
	}
	if pe.Usage != "" {
		fmt.Fprintf(w, "%s %s\n", io.Style("usage:", color.Bold), pe.Usage)
	}
}

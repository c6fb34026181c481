package argv

import "testing"

func TestFormatUsage(t *testing.T) {
	opts := []OptionSpec{
		{Name: "verbose", Kind: KindBool, Aliases: []rune{'v'}},
		{Name: "port", Kind: KindNumber, Aliases: []rune{'p'}, HasDefault: true, Default: NumberValue(8080)},
		{Name: "tags", Kind: KindString, Multiple: true},
		{Name: "name", Kind: KindString, Required: true, Aliases: []rune{'n', 'N'}},
		{Name: "include", Kind: KindString, Required: true, Multiple: true},
		{Name: "logLevel", Kind: KindString, HasDefault: true, Default: StringValue("info")},
	}
	pos := []PositionalSpec{
		req("src"),
		opt("dst"),
		many("rest", false),
	}

	want := "prog --include <string> [--include <string>]... -n|-N|--name <string>" +
		" [--log-level <string = info>] [-p|--port <number = 8080>] [--tags <string>]... [-v|--verbose]" +
		" <src> [<dst>] [<rest>]..."
	if got := formatUsage("prog", opts, pos); got != want {
		t.Errorf("formatUsage:\n got %q\nwant %q", got, want)
	}
}

func TestFormatUsagePositionalOrder(t *testing.T) {
	pos := []PositionalSpec{req("z"), many("m", true), req("a")}
	want := "cmd <z> <m> [<m>]... <a>"
	if got := formatUsage("cmd", nil, pos); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestWrapUsage(t *testing.T) {
	tests := []struct {
		required, multiple bool
		want               string
	}{
		{false, false, "[X]"},
		{false, true, "[X]..."},
		{true, false, "X"},
		{true, true, "X [X]..."},
	}
	for _, tt := range tests {
		if got := wrapUsage("X", tt.required, tt.multiple); got != tt.want {
			t.Errorf("wrapUsage(required=%v, multiple=%v) = %q, want %q", tt.required, tt.multiple, got, tt.want)
		}
	}
}

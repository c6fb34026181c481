package argv

import (
	"errors"
	"testing"
)

func TestCLIName(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"entryPoint", "--entry-point"},
		{"myDNSFiles", "--my-dns-files"},
		{"totalGForce", "--total-g-force"},
		{"myFiles", "--my-files"},
		{"port", "--port"},
		{"HTTPServer", "--http-server"},
		{"parseJSON", "--parse-json"},
		{"URL", "--url"},
		{"v2Api", "--v2-api"},
		{"dry_run", "--dry-run"},
		{"log-level", "--log-level"},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := CLIName(tt.id); got != tt.want {
				t.Errorf("CLIName(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestCLINameRoundTrip(t *testing.T) {
	ids := []string{"entryPoint", "myDNSFiles", "totalGForce", "myFiles", "x", "maxRetries2", "useHTTP2"}
	opts := make([]OptionSpec, len(ids))
	for i, id := range ids {
		opts[i] = OptionSpec{Name: id, Kind: KindString}
	}
	table, err := newNameTable(opts)
	if err != nil {
		t.Fatalf("newNameTable: %v", err)
	}
	for _, id := range ids {
		tok := classify(CLIName(id))
		if tok.kind != tokenLong {
			t.Fatalf("%s classified as %s", CLIName(id), tok.kind)
		}
		opt := table.lookupLong(tok.name)
		if opt == nil || opt.Name != id {
			t.Errorf("%s resolved to %v, want %q", CLIName(id), opt, id)
		}
	}
}

func TestNameTableConflicts(t *testing.T) {
	tests := []struct {
		name string
		opts []OptionSpec
		rule string
	}{
		{
			name: "duplicate alias",
			opts: []OptionSpec{
				{Name: "verbose", Kind: KindBool, Aliases: []rune{'v'}},
				{Name: "version", Kind: KindBool, Aliases: []rune{'v'}},
			},
			rule: RuleDuplicateAlias,
		},
		{
			name: "same spelling",
			opts: []OptionSpec{
				{Name: "dryRun", Kind: KindBool},
				{Name: "dry_run", Kind: KindBool},
			},
			rule: RuleDuplicateSpelling,
		},
		{
			name: "no words",
			opts: []OptionSpec{{Name: "__", Kind: KindBool}},
			rule: RuleEmptyName,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newNameTable(tt.opts)
			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("err = %v, want *ConfigError", err)
			}
			if ce.Rule != tt.rule {
				t.Errorf("rule = %q, want %q", ce.Rule, tt.rule)
			}
		})
	}
}

func TestNameTableLookups(t *testing.T) {
	table, err := newNameTable([]OptionSpec{
		{Name: "output", Kind: KindString, Aliases: []rune{'o', 'O'}},
		{Name: "dryRun", Kind: KindBool},
	})
	if err != nil {
		t.Fatal(err)
	}
	if o := table.lookupShort('O'); o == nil || o.Name != "output" {
		t.Errorf("lookupShort('O') = %v", o)
	}
	if o := table.lookupShort('x'); o != nil {
		t.Errorf("lookupShort('x') = %v, want nil", o)
	}
	if o := table.lookupLong("dryRun"); o != nil {
		t.Errorf("identifier must not resolve as a spelling")
	}
	got := table.spellings()
	if len(got) != 2 || got[0] != "dry-run" || got[1] != "output" {
		t.Errorf("spellings() = %q", got)
	}
}

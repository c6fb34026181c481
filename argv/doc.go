// Package argv parses command-line arguments against a declaration of
// typed options and positionals.
//
// Supported syntax:
//
//	--name value, --name=value   long options, spelled from the identifier (entryPoint is --entry-point)
//	-n value, -nvalue, -n=value  single-character aliases
//	-abc                         clustered boolean aliases
//	--                           everything after it is positional
//
// Positionals are assigned in three passes: the leading run of required
// positionals from the front, the trailing run of required positionals
// from the back, then the remaining ones in order, a multi-valued one
// taking everything left. A declaration is therefore limited to required
// positionals, then optional or multi-valued ones (at most one
// multi-valued), then required ones again.
//
// Parse returns a *ValueMap, a *HelpRequest or a *ParseError. Only
// ParseOrExit writes output or terminates the process.
package argv

// Package args provides a Config source over pre-parsed command-line
// arguments.
//
// The engine does not parse CLI grammars itself; any argument parser
// that produces a map of option names to values can feed this source.
// The map follows the docopt result convention, so entries meaning
// "option not given" are dropped: nil values, false flags, and empty
// repeated-positional slices. Everything else, including empty strings,
// counts as specified.
//
//	cfg := args.New(map[string]any{
//	    "<name>": "Sir Robin",
//	    "-g":     nil, // flag not passed: absent, not found-as-nil
//	})
package args

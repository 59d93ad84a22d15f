// Package env provides an environment-variable Config source.
//
// The source snapshots the process environment into a flat mapping on
// the config's first lookup. Keys are the variable names, optionally
// with a common prefix stripped:
//
//	cfg := env.New(env.WithPrefix("MYAPP_"))
//	// MYAPP_PORT=8080 is addressable as key "PORT"
package env

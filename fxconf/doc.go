// Package fxconf integrates parameter loading with the Fx DI container.
//
// NewModule wraps a Loadable target in an fx.Module: the target is
// loaded when the DI graph first asks for it and supplied under a named
// tag, so several independently named configurations can coexist in one
// application.
package fxconf

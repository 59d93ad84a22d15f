package conf

import "errors"

// ErrUsage is returned for structural misuse of the declaration API, such
// as a malformed key path or a parameter naming a field that does not
// exist on the target object.
var ErrUsage = errors.New("invalid usage")

// ErrNoValueFound is returned when a parameter exhausted all of its
// getters and had no default.
var ErrNoValueFound = errors.New("no value found")

// ErrConfigLoad is returned when a config's backing source failed to
// materialize. It is never aggregated: a config that cannot load
// invalidates every parameter depending on it.
var ErrConfigLoad = errors.New("config failed to load")

// ErrKeyNotFound is returned by Config.Get for a key path that does not
// resolve to a present value.
var ErrKeyNotFound = errors.New("key not found")

// ErrApply is returned when a found value failed its apply function. The
// error message carries the originating config and key path; a malformed
// value is never treated as absent.
var ErrApply = errors.New("apply function failed")

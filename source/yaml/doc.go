// Package yaml provides a YAML file Config source.
//
// This package uses github.com/goccy/go-yaml to materialize a file into
// the nested mapping/sequence structure the engine's key paths address.
// The file is read and parsed lazily, on the config's first lookup, and
// at most once per Config instance.
//
// Usage:
//
//	cfg := yaml.New("config.yaml")
//	found, err := cfg.Exists(path)
//
// Error Handling:
//   - A missing file, a directory path, or malformed YAML surfaces as a
//     config load error on first access, distinct from a missing key
//   - Use errors.Is(err, yaml.ErrPathIsDirectory) to check for directory
//     errors
package yaml

package yaml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	conf "github.com/0xalexb/kalla-conf"

	"github.com/goccy/go-yaml"
)

// Kind is the selector tag for YAML file configs.
const Kind = "file"

// ErrPathIsDirectory is returned when the configured path points to a
// directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// ErrEmptyPath is returned when the configured path is empty.
var ErrEmptyPath = errors.New("path must not be empty")

// Options holds construction settings for a YAML file config.
type Options struct {
	// Kind overrides the default selector tag.
	Kind string
	// Name overrides the instance name; defaults to the cleaned path.
	Name string
}

// Option defines a function type for configuring a YAML file config.
type Option func(*Options)

// WithKind overrides the selector tag.
func WithKind(kind string) Option {
	return func(opts *Options) {
		opts.Kind = kind
	}
}

// WithName overrides the instance name used for selector narrowing and
// diagnostics.
func WithName(name string) Option {
	return func(opts *Options) {
		opts.Name = name
	}
}

// New creates a Config backed by the YAML file at path. The file is not
// touched until the config is first consulted.
func New(path string, opts ...Option) *conf.Config {
	cleanPath := filepath.Clean(path)

	options := Options{
		Kind: Kind,
		Name: cleanPath,
	}

	for _, apply := range opts {
		apply(&options)
	}

	return conf.New(options.Kind, &Source{path: cleanPath}, conf.WithName(options.Name))
}

// Source implements conf.Source for a YAML file. The parsed document is
// cached by the owning Config, so the file is read at most once.
type Source struct {
	path string
}

// Load reads and parses the file into a nested mapping/sequence value.
func (s *Source) Load() (any, error) {
	if s.path == "" || s.path == "." {
		return nil, ErrEmptyPath
	}

	stat, err := os.Stat(s.path)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", s.path, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", s.path, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(s.path) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", s.path, err)
	}

	var document any

	err = yaml.Unmarshal(data, &document)
	if err != nil {
		return nil, fmt.Errorf("parsing file %q: %w", s.path, err)
	}

	return document, nil
}

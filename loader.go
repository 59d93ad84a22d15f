package conf

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/0xalexb/kalla-conf/logging"

	"go.uber.org/multierr"
)

// Loadable declares the resolvable parameters of an object. The method
// is the explicit registry the loader consults; embedding a Loadable
// type inherits its declarations, and a later declaration of an already
// seen name shadows the earlier one.
type Loadable interface {
	Parameters() []*Param
}

// ConfigProvider supplies the ordered config list for an object. Sets
// are flattened in encounter order without deduplication; order decides
// priority, first being highest.
type ConfigProvider interface {
	Configs() []ConfigSet
}

// Validator defines an interface for validating a target after loading.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for filling in defaults on a target
// after loading.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Loader orchestrates one load invocation. Its state is scoped to that
// call; it holds nothing across calls.
type Loader struct {
	configs  []*Config
	explicit bool
	logger   *slog.Logger
	visited  map[any]struct{}
}

func newLoader(opts []Option) *Loader {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	loader := &Loader{
		logger:  options.Logger,
		visited: map[any]struct{}{},
	}

	if loader.logger == nil {
		loader.logger = logging.Nop()
	}

	if options.Configs != nil {
		loader.configs = Flatten(options.Configs)
		loader.explicit = true
	}

	return loader
}

// Load resolves every parameter declared by obj and assigns the results
// onto obj's struct fields by name. obj must be a non-nil pointer to a
// struct implementing Loadable. Configs come from WithConfigs when given,
// otherwise from obj's ConfigProvider.
//
// Resolution is fail-slow: every unresolvable parameter is reported in
// one aggregate error, and nothing is assigned unless all parameters
// resolve. A config materialization failure aborts immediately instead.
// Reloading re-resolves and overwrites.
func Load(obj any, opts ...Option) error {
	loader := newLoader(opts)

	_, err := loader.load(obj, loader.configs, loader.explicit)

	return err
}

// load resolves and assigns obj's parameters and returns the effective
// config list, so recursion can pass it down to children without their
// own provider.
func (l *Loader) load(obj any, inherited []*Config, explicit bool) ([]*Config, error) {
	loadable, ok := obj.(Loadable)
	if !ok {
		return nil, fmt.Errorf("%w: %T declares no parameters", ErrUsage, obj)
	}

	configs := inherited

	if !explicit {
		if provider, ok := obj.(ConfigProvider); ok {
			configs = Flatten(provider.Configs())
		}
	}

	params := dedupeParams(loadable.Parameters())
	resolved := make(map[string]any, len(params))

	var errs error

	for _, param := range params {
		value, err := param.resolve(configs)
		if err != nil {
			if errors.Is(err, ErrConfigLoad) {
				return configs, err
			}

			errs = multierr.Append(errs, err)

			continue
		}

		l.logger.Debug("parameter resolved", "target", fmt.Sprintf("%T", obj), "param", param.Name())

		resolved[param.Name()] = value
	}

	if errs != nil {
		return configs, errs
	}

	// Separate assignment pass: values only land on the object once every
	// parameter resolved.
	for _, param := range params {
		err := assignField(obj, param.Name(), resolved[param.Name()])
		if err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	if errs != nil {
		return configs, errs
	}

	if defaulter, ok := obj.(Defaulter); ok {
		if defaulter.SetDefaults() {
			l.logger.Debug("defaults applied", "target", fmt.Sprintf("%T", obj))
		}
	}

	if validator, ok := obj.(Validator); ok {
		err := validator.Validate()
		if err != nil {
			return configs, fmt.Errorf("validating %T: %w", obj, err)
		}
	}

	return configs, nil
}

// dedupeParams keeps the position of the first declaration of each name
// but the declaration of the last, so composed parameter lists shadow
// the way embedded types do.
func dedupeParams(params []*Param) []*Param {
	byName := make(map[string]int, len(params))
	deduped := make([]*Param, 0, len(params))

	for _, param := range params {
		if at, seen := byName[param.Name()]; seen {
			deduped[at] = param

			continue
		}

		byName[param.Name()] = len(deduped)
		deduped = append(deduped, param)
	}

	return deduped
}

func assignField(obj any, name string, value any) error {
	target := reflect.ValueOf(obj)
	if target.Kind() != reflect.Pointer || target.IsNil() {
		return fmt.Errorf("%w: load target %T must be a non-nil pointer to a struct", ErrUsage, obj)
	}

	structValue := target.Elem()
	if structValue.Kind() != reflect.Struct {
		return fmt.Errorf("%w: load target %T must point to a struct", ErrUsage, obj)
	}

	field := structValue.FieldByName(name)
	if !field.IsValid() {
		return fmt.Errorf("%w: parameter %q has no matching field on %T", ErrUsage, name, obj)
	}

	if !field.CanSet() {
		return fmt.Errorf("%w: parameter %q names an unexported field on %T", ErrUsage, name, obj)
	}

	if value == nil {
		field.Set(reflect.Zero(field.Type()))

		return nil
	}

	from := reflect.ValueOf(value)

	switch {
	case from.Type().AssignableTo(field.Type()):
		field.Set(from)
	case isNumericKind(from.Kind()) && isNumericKind(field.Kind()):
		field.Set(from.Convert(field.Type()))
	default:
		return fmt.Errorf("%w: parameter %q resolved to %T but field %s.%s wants %s",
			ErrUsage, name, value, structValue.Type(), name, field.Type())
	}

	return nil
}

func isNumericKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

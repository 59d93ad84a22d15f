package conf

import (
	"errors"
	"fmt"
	"reflect"

	"go.uber.org/multierr"
)

// RecursiveLoad loads obj and then descends into its exported fields,
// loading every nested Loadable it finds inside pointers, interfaces,
// addressable structs, slices, arrays, and map values. Children without
// their own ConfigProvider inherit the configs in effect for the parent.
//
// An object reachable through several paths is loaded once; already
// visited objects are treated as leaves.
func RecursiveLoad(obj any, opts ...Option) error {
	loader := newLoader(opts)

	return loader.loadRecursive(obj, loader.configs, loader.explicit)
}

// LoadCollection applies the loader to every Loadable found inside a raw
// container: a slice, array, or map, nested to any depth. Configs must be
// supplied with WithConfigs, since a bare container has no provider.
func LoadCollection(collection any, opts ...Option) error {
	loader := newLoader(opts)

	value := reflect.ValueOf(collection)

	switch value.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return loader.walk(value, loader.configs)
	default:
		return fmt.Errorf("%w: expected a slice, array, or map to traverse, not %T", ErrUsage, collection)
	}
}

func (l *Loader) loadRecursive(obj any, inherited []*Config, explicit bool) error {
	if obj == nil {
		return nil
	}

	if reflect.TypeOf(obj).Comparable() {
		if _, seen := l.visited[obj]; seen {
			return nil
		}

		l.visited[obj] = struct{}{}
	}

	var errs error

	configs := inherited

	if _, ok := obj.(Loadable); ok {
		effective, err := l.load(obj, inherited, explicit)
		configs = effective

		if err != nil {
			if errors.Is(err, ErrConfigLoad) {
				return err
			}

			errs = multierr.Append(errs, err)
		}
	}

	value := reflect.ValueOf(obj)
	if value.Kind() == reflect.Pointer && !value.IsNil() {
		value = value.Elem()
	}

	if value.Kind() != reflect.Struct {
		return errs
	}

	structType := value.Type()

	for i := 0; i < value.NumField(); i++ {
		if !structType.Field(i).IsExported() {
			continue
		}

		err := l.walk(value.Field(i), configs)
		if errors.Is(err, ErrConfigLoad) {
			return err
		}

		errs = multierr.Append(errs, err)
	}

	return errs
}

// walk recurses into loadable objects and recognized containers;
// everything else is a leaf and terminates the descent without error.
func (l *Loader) walk(value reflect.Value, configs []*Config) error {
	if !value.IsValid() {
		return nil
	}

	switch value.Kind() {
	case reflect.Interface:
		if value.IsNil() {
			return nil
		}

		if loadable, ok := value.Interface().(Loadable); ok {
			return l.loadRecursive(loadable, configs, false)
		}

		return l.walk(value.Elem(), configs)
	case reflect.Pointer:
		if value.IsNil() {
			return nil
		}

		if loadable, ok := value.Interface().(Loadable); ok {
			return l.loadRecursive(loadable, configs, false)
		}

		return nil
	case reflect.Struct:
		if value.CanAddr() {
			if loadable, ok := value.Addr().Interface().(Loadable); ok {
				return l.loadRecursive(loadable, configs, false)
			}
		}

		return nil
	case reflect.Slice, reflect.Array:
		var errs error

		for i := 0; i < value.Len(); i++ {
			err := l.walk(value.Index(i), configs)
			if errors.Is(err, ErrConfigLoad) {
				return err
			}

			errs = multierr.Append(errs, err)
		}

		return errs
	case reflect.Map:
		var errs error

		for iter := value.MapRange(); iter.Next(); {
			err := l.walk(iter.Value(), configs)
			if errors.Is(err, ErrConfigLoad) {
				return err
			}

			errs = multierr.Append(errs, err)
		}

		return errs
	default:
		return nil
	}
}

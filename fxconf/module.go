package fxconf

import (
	"errors"
	"fmt"

	conf "github.com/0xalexb/kalla-conf"

	"go.uber.org/fx"
)

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("module name must not be empty")

// ErrNilTarget is returned when a nil target is provided.
var ErrNilTarget = errors.New("target must not be nil")

// NewModule creates an Fx module that loads target's parameters and
// supplies the loaded object to DI under the given name tag. Loading
// happens lazily, when the graph first resolves the dependency; a load
// failure fails the application start.
//
// Consumers annotate with a matching param tag:
//
//	fx.Invoke(fx.Annotate(
//	    func(cfg *ServerConfig) { ... },
//	    fx.ParamTags(`name:"server"`),
//	))
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule[T conf.Loadable](name string, target T, opts ...conf.Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	if any(target) == nil {
		return fx.Error(ErrNilTarget)
	}

	return fx.Module(name,
		fx.Provide(
			fx.Annotate(
				func() (T, error) {
					err := conf.Load(target, opts...)
					if err != nil {
						return target, fmt.Errorf("loading %q: %w", name, err)
					}

					return target, nil
				},
				fx.ResultTags(fmt.Sprintf(`name:%q`, name)),
			),
		),
	)
}

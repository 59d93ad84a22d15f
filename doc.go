// Package conf resolves declared parameters from an ordered list of
// configuration sources.
//
// The package uses a declarative design with three building blocks:
//   - Config: a named, lazily materialized view over a backing Source
//   - Getter: a (selector, key path) locator yielding candidate values
//   - Param: a named field resolved from ordered getters via apply and
//     pick functions
//
// An object declares its parameters by implementing Loadable and,
// optionally, supplies its own configs by implementing ConfigProvider.
// Load resolves every declared parameter and assigns the results onto
// the object's struct fields by name. RecursiveLoad additionally descends
// into nested loadable objects and containers.
//
// # Resolution order
//
// Each parameter resolves in isolation. Its getters are consulted in
// declaration order; within one getter, configs are consulted in the
// provider's declared order. Found values pass through the apply function
// (a getter-level apply overrides the parameter's) before the pick
// function reduces them to a single result. The built-in pick policies
// are First, All, and MergeMaps.
//
// Candidate sequences are lazy: a config whose values are never consumed
// by the pick function is never materialized.
//
// # Example
//
// A typical declaration:
//
//	type Greeter struct {
//	    Name     string
//	    Greeting string
//	}
//
//	func (g *Greeter) Parameters() []*conf.Param {
//	    return []*conf.Param{
//	        conf.NewParam("Name",
//	            conf.WithGetters(conf.Key(conf.ByKind("cli"), "<name>"))),
//	        conf.NewParam("Greeting",
//	            conf.WithGetters(
//	                conf.Key(conf.ByKind("cli"), "-g"),
//	                conf.Key(conf.ByKind("file"), "greeting"),
//	            ),
//	            conf.WithDefault("Hello")),
//	    }
//	}
//
// Config adapters for environment variables, YAML files, and pre-parsed
// CLI arguments live under source/; anything satisfying the Source
// interface can back a Config.
package conf

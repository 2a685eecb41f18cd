package wikitext

import "errors"

// ErrNoModuleResolver is returned by [RenderHTML] when the tree has a module invocation
// but no [ModuleResolver] was supplied.
var ErrNoModuleResolver = errors.New("module invocation without a module resolver")

// ModuleResolver renders module invocations. It's called exactly once per visible module
// element, in document order, with the module name and the raw option string.
type ModuleResolver interface {
	Render(name, options string) (string, error)
}

// ModuleResolverFunc is an adapter to allow the use of ordinary functions as ModuleResolver.
type ModuleResolverFunc func(name, options string) (string, error)

func (f ModuleResolverFunc) Render(name, options string) (string, error) {
	return f(name, options)
}

// Condition resolves the flag of a conditional element. A nil Condition is false for
// every flag.
type Condition func(flag string) bool

func (c Condition) eval(flag string) bool {
	return c != nil && c(flag)
}

// Flags returns a Condition which is true for the listed flags only.
func Flags(flags ...string) Condition {
	set := make(map[string]bool, len(flags))
	for _, f := range flags {
		set[f] = true
	}

	return func(flag string) bool {
		return set[flag]
	}
}

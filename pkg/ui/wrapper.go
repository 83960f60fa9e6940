package ui

import (
	"github.com/a-h/templ"

	"github.com/vango-dev/setclassname/pkg/classname"
)

// SetClassName is the capability injected into wrapped components.
type SetClassName func(conditions ...classname.Condition) string

// Binder hands out class setters bound to a property map.
type Binder interface {
	Bind(props classname.Props, cfg classname.Config) SetClassName
}

// CacheBinder binds straight against a classname.Cache. It does no locking,
// so it suits single-goroutine rendering such as tests and static builds.
type CacheBinder struct {
	Cache *classname.Cache
}

// Bind returns the variadic function of the cached resolver for props and cfg.
func (b CacheBinder) Bind(props classname.Props, cfg classname.Config) SetClassName {
	return SetClassName(b.Cache.Resolver(props, cfg).Func())
}

// Render is a component that receives its props plus a bound class setter.
type Render[P any] func(props P, setClassName SetClassName) templ.Component

// WithSetClassName wraps render so that each call derives a property map from
// props, binds a class setter to it and passes both through.
func WithSetClassName[P any](binder Binder, render Render[P], cfg classname.Config) func(P) templ.Component {
	return func(props P) templ.Component {
		return render(props, binder.Bind(PropsFromStruct(props), cfg))
	}
}

package endpoints

import "reflect"

// Factory builds providers from a registry using a single scope.
// A factory lives as long as the scope it was created with.
type Factory[S any] struct {
	registry *Registry[S]
	scope    S
}

// NewFactory creates a factory bound to scope.
func NewFactory[S any](r *Registry[S], scope S) *Factory[S] {
	return &Factory[S]{
		registry: r,
		scope:    scope,
	}
}

// Provider constructs the provider registered for type t.
// It reports ok=false with no error when t is unknown, has no constructor,
// or its constructor returns a nil provider.
// Constructor errors are returned unmodified.
func (f *Factory[S]) Provider(t reflect.Type) (Provider, bool, error) {
	reg, found := f.registry.lookup(t)
	if !found || reg.ctor == nil {
		return nil, false, nil
	}

	p, err := reg.ctor(f.scope)
	if err != nil {
		return nil, false, err
	}
	if p == nil {
		return nil, false, nil
	}
	return p, true, nil
}

// ProviderOf constructs the provider registered for type T.
func ProviderOf[T Provider, S any](f *Factory[S]) (Provider, bool, error) {
	return f.Provider(reflect.TypeFor[T]())
}

package endpoints

import (
	"fmt"
	"reflect"
	"sync"
)

type registration[S any] struct {
	typ  reflect.Type
	ctor Constructor[S]
}

// Registry holds provider registrations grouped by the module (package import
// path) that declares each provider type.
type Registry[S any] struct {
	mu      sync.RWMutex
	modules map[string][]registration[S]
	index   map[reflect.Type]registration[S]
}

// NewRegistry creates an empty registry for providers built from a scope of type S.
func NewRegistry[S any]() *Registry[S] {
	return &Registry[S]{
		modules: make(map[string][]registration[S]),
		index:   make(map[reflect.Type]registration[S]),
	}
}

// Register records provider type T and its constructor.
// It panics if T is already registered.
func Register[S any, T Provider](r *Registry[S], ctor func(S) (T, error)) {
	var c Constructor[S]
	if ctor != nil {
		c = func(scope S) (Provider, error) {
			p, err := ctor(scope)
			if err != nil {
				return nil, err
			}
			if isNil(p) {
				return nil, nil
			}
			return p, nil
		}
	}
	r.add(reflect.TypeFor[T](), c)
}

// isNil reports whether p is nil or a typed nil stored in an interface.
func isNil(p any) bool {
	v := reflect.ValueOf(p)
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Declare records provider type T without a constructor.
// The factory reports such types as absent and scans skip them.
func Declare[S any, T Provider](r *Registry[S]) {
	r.add(reflect.TypeFor[T](), nil)
}

func (r *Registry[S]) add(t reflect.Type, ctor Constructor[S]) {
	module := modulePath(t)
	if module == "" {
		panic(fmt.Sprintf("endpoints: provider type %s is not declared in a package", t))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[t]; exists {
		panic(fmt.Sprintf("endpoints: provider type %s registered twice", t))
	}

	reg := registration[S]{typ: t, ctor: ctor}
	r.index[t] = reg
	r.modules[module] = append(r.modules[module], reg)
}

// Types returns the provider types registered for module in registration order.
func (r *Registry[S]) Types(module string) []reflect.Type {
	r.mu.RLock()
	defer r.mu.RUnlock()

	regs := r.modules[module]
	result := make([]reflect.Type, 0, len(regs))
	for _, reg := range regs {
		result = append(result, reg.typ)
	}
	return result
}

// Modules returns the number of modules with at least one registration.
func (r *Registry[S]) Modules() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.modules)
}

func (r *Registry[S]) lookup(t reflect.Type) (registration[S], bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.index[t]
	return reg, ok
}

// ModuleOf returns the import path of the package that declares the marker's type.
func ModuleOf(marker any) (string, error) {
	if marker == nil {
		return "", fmt.Errorf("%w: nil", ErrInvalidMarker)
	}

	t, ok := marker.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(marker)
	}

	module := modulePath(t)
	if module == "" {
		return "", fmt.Errorf("%w: %s", ErrInvalidMarker, t)
	}
	return module, nil
}

func modulePath(t reflect.Type) string {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return t.PkgPath()
}

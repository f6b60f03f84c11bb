package endpoints_test

import (
	"errors"
	"reflect"
	"slices"
	"testing"

	"github.com/JaimeStill/endpoint-providers/internal/routes"
	"github.com/JaimeStill/endpoint-providers/pkg/endpoints"
	"github.com/JaimeStill/endpoint-providers/pkg/endpoints/internal/testproviders"
	"github.com/JaimeStill/endpoint-providers/pkg/endpoints/internal/testproviders/alpha"
	"github.com/JaimeStill/endpoint-providers/pkg/endpoints/internal/testproviders/beta"
	"github.com/JaimeStill/endpoint-providers/pkg/endpoints/internal/testproviders/gamma"
	pkgroutes "github.com/JaimeStill/endpoint-providers/pkg/routes"
)

var errBoom = errors.New("constructor failed")

type failingCtor struct{}

func (failingCtor) AddEndpoints(app pkgroutes.System) error { return nil }

func newFailingCtor(*testproviders.Scope) (failingCtor, error) {
	return failingCtor{}, errBoom
}

func TestFactory_Provider_WithConstructor(t *testing.T) {
	scope := &testproviders.Scope{}
	f := endpoints.NewFactory(newRegistry(), scope)

	for _, typ := range []reflect.Type{
		reflect.TypeFor[*alpha.First](),
		reflect.TypeFor[*alpha.Second](),
		reflect.TypeFor[*beta.Only](),
	} {
		t.Run(typ.String(), func(t *testing.T) {
			p, ok, err := f.Provider(typ)
			if err != nil {
				t.Fatalf("Provider() error = %v", err)
			}
			if !ok || p == nil {
				t.Fatal("Provider() reported absent, want instance")
			}

			app := routes.New(discardLogger())
			if err := p.AddEndpoints(app); err != nil {
				t.Errorf("AddEndpoints() error = %v", err)
			}
			if len(app.Routes()) != 1 {
				t.Errorf("routes registered = %d, want 1", len(app.Routes()))
			}
		})
	}
}

func TestFactory_Provider_PassesScope(t *testing.T) {
	scope := &testproviders.Scope{}
	f := endpoints.NewFactory(newRegistry(), scope)

	if _, _, err := f.Provider(reflect.TypeFor[*beta.Only]()); err != nil {
		t.Fatalf("Provider() error = %v", err)
	}

	if len(scope.Built) != 1 || scope.Built[0] != "beta.Only" {
		t.Errorf("Built = %v, want [beta.Only]", scope.Built)
	}
}

func TestFactory_Provider_Absent(t *testing.T) {
	f := endpoints.NewFactory(newRegistry(), &testproviders.Scope{})

	tests := []struct {
		name string
		typ  reflect.Type
	}{
		{"declared without constructor", reflect.TypeFor[alpha.Unbuildable]()},
		{"never registered", reflect.TypeFor[failingCtor]()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok, err := f.Provider(tt.typ)
			if err != nil {
				t.Fatalf("Provider() error = %v, want nil", err)
			}
			if ok || p != nil {
				t.Errorf("Provider() = (%v, %v), want absent", p, ok)
			}
		})
	}
}

func TestFactory_Provider_NilFromConstructor(t *testing.T) {
	r := endpoints.NewRegistry[*testproviders.Scope]()
	gamma.Register(r)

	scope := &testproviders.Scope{}
	f := endpoints.NewFactory(r, scope)

	p, ok, err := endpoints.ProviderOf[*gamma.Disabled](f)
	if err != nil {
		t.Fatalf("Provider() error = %v, want nil", err)
	}
	if ok {
		t.Error("Provider() ok = true, want false")
	}
	if p != nil {
		t.Errorf("Provider() = %#v, want untyped nil", p)
	}

	if !slices.Equal(scope.Built, []string{"gamma.Disabled"}) {
		t.Errorf("Built = %v, want [gamma.Disabled]", scope.Built)
	}
}

func TestFactory_Provider_ConstructorErrorPassesThrough(t *testing.T) {
	r := endpoints.NewRegistry[*testproviders.Scope]()
	endpoints.Register(r, newFailingCtor)

	f := endpoints.NewFactory(r, &testproviders.Scope{})

	_, ok, err := f.Provider(reflect.TypeFor[failingCtor]())
	if err != errBoom {
		t.Errorf("Provider() error = %v, want %v unwrapped", err, errBoom)
	}
	if ok {
		t.Error("Provider() ok = true, want false")
	}
}

func TestProviderOf(t *testing.T) {
	f := endpoints.NewFactory(newRegistry(), &testproviders.Scope{})

	p, ok, err := endpoints.ProviderOf[*alpha.Second](f)
	if err != nil {
		t.Fatalf("ProviderOf() error = %v", err)
	}
	if !ok {
		t.Fatal("ProviderOf() reported absent")
	}
	if _, isSecond := p.(*alpha.Second); !isSecond {
		t.Errorf("ProviderOf() returned %T, want *alpha.Second", p)
	}

	_, ok, err = endpoints.ProviderOf[alpha.Unbuildable](f)
	if err != nil || ok {
		t.Errorf("ProviderOf[Unbuildable]() = (%v, %v), want (false, nil)", ok, err)
	}
}

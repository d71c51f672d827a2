package construct

import (
	"sort"

	"github.com/pkg/errors"
)

// Factory builds a construct of one kind from its raw configuration block.
// The factory owns schema validation; no resource is declared when the block
// is invalid.
type Factory func(scope Scope, id string, raw map[string]interface{}) (Construct, error)

// Registry maps kind discriminators to factories.
type Registry struct {
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: map[string]Factory{}}
}

func (r *Registry) Register(kind string, f Factory) error {
	if kind == "" {
		return errors.New("construct kind must not be empty")
	}
	if f == nil {
		return errors.Errorf("factory for construct kind %q is nil", kind)
	}
	if _, dup := r.factories[kind]; dup {
		return errors.Errorf("construct kind %q is already registered", kind)
	}
	r.factories[kind] = f
	return nil
}

// New builds a construct of the given kind. An unregistered kind is reported
// as an UnsupportedValueError on the type discriminator.
func (r *Registry) New(kind string, scope Scope, id string, raw map[string]interface{}) (Construct, error) {
	f, ok := r.factories[kind]
	if !ok {
		return nil, &UnsupportedValueError{Field: "type", Value: kind}
	}
	return f(scope, id, raw)
}

// Kinds returns the registered kinds in lexical order.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.factories))
	for k := range r.factories {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

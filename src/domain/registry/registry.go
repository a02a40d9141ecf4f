// Package registry maps type names to constructible type descriptors.
//
// A Registry is built once at startup from a fixed list of descriptors and is
// read-only afterwards, so it can be shared between goroutines without locking.
package registry

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"organizer/src/domain"
)

var (
	ErrNotFound          = errors.New("type not registered")
	ErrDuplicateType     = errors.New("type already registered")
	ErrInvalidDescriptor = errors.New("invalid type descriptor")
)

// DefaultNamespaces is the fallback search order used when a name is not registered as given.
var DefaultNamespaces = []string{"entities", "transfer"}

// ConvertFunc converts a live value of the descriptor's type to the requested shape.
type ConvertFunc func(reg *Registry, source any, target domain.Shape) (any, error)

// ShapeType pairs a shape with the Go type a conversion to it produces.
type ShapeType struct {
	Shape domain.Shape
	Type  reflect.Type
}

// Descriptor describes one registered type.
type Descriptor struct {
	Namespace string
	Name      string
	Type      reflect.Type
	// Shapes lists, in preference order, the representations Convert can produce.
	Shapes  []ShapeType
	Convert ConvertFunc
}

// QualifiedName returns "<namespace>.<name>", or just the name when no namespace is set.
func (d *Descriptor) QualifiedName() string {
	if d.Namespace == "" {
		return d.Name
	}
	return d.Namespace + "." + d.Name
}

// New allocates a zero value of the described type. Pointer types get a fresh pointee.
func (d *Descriptor) New() any {
	if d.Type.Kind() == reflect.Pointer {
		return reflect.New(d.Type.Elem()).Interface()
	}
	return reflect.New(d.Type).Elem().Interface()
}

// AssignableTo reports whether the described type, or one of its shapes, can be held by t.
func (d *Descriptor) AssignableTo(t reflect.Type) bool {
	if d.Type.AssignableTo(t) {
		return true
	}
	_, ok := d.ShapeFor(t)
	return ok
}

// ShapeFor returns the first shape whose result type can be held by t.
func (d *Descriptor) ShapeFor(t reflect.Type) (domain.Shape, bool) {
	for _, st := range d.Shapes {
		if st.Type.AssignableTo(t) {
			return st.Shape, true
		}
	}
	return "", false
}

// Supports reports whether shape is one Convert can produce.
func (d *Descriptor) Supports(shape domain.Shape) bool {
	for _, st := range d.Shapes {
		if st.Shape == shape {
			return true
		}
	}
	return false
}

type Registry struct {
	namespaces   []string
	entries      map[string]*Descriptor
	bySimpleName map[string]*Descriptor
	order        []string
}

// New builds an immutable registry. Descriptors are keyed by qualified name; when
// two descriptors share a simple name the first one wins the bare-name lookup.
func New(namespaces []string, descriptors ...Descriptor) (*Registry, error) {
	r := &Registry{
		namespaces:   append([]string(nil), namespaces...),
		entries:      make(map[string]*Descriptor, len(descriptors)),
		bySimpleName: make(map[string]*Descriptor, len(descriptors)),
		order:        make([]string, 0, len(descriptors)),
	}

	for i := range descriptors {
		d := descriptors[i]

		if strings.TrimSpace(d.Name) == "" || d.Type == nil {
			return nil, fmt.Errorf("registry.New - descriptor %d: %w", i, ErrInvalidDescriptor)
		}
		if len(d.Shapes) > 0 && d.Convert == nil {
			return nil, fmt.Errorf("registry.New - %s declares shapes without a converter: %w", d.QualifiedName(), ErrInvalidDescriptor)
		}

		key := d.QualifiedName()
		if _, exists := r.entries[key]; exists {
			return nil, fmt.Errorf("registry.New - %s: %w", key, ErrDuplicateType)
		}

		d.Shapes = append([]ShapeType(nil), d.Shapes...)
		stored := &d
		r.entries[key] = stored
		r.order = append(r.order, key)

		if _, taken := r.bySimpleName[d.Name]; !taken {
			r.bySimpleName[d.Name] = stored
		}
	}

	return r, nil
}

// MustNew is New for fixed descriptor lists known to be valid.
func MustNew(namespaces []string, descriptors ...Descriptor) *Registry {
	r, err := New(namespaces, descriptors...)
	if err != nil {
		panic(err)
	}
	return r
}

// Resolve looks typeName up in order: exact qualified name, each fallback
// namespace prefix, then any registered type with that simple name.
func (r *Registry) Resolve(typeName string) (*Descriptor, error) {
	if r == nil || typeName == "" {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, typeName)
	}

	// 1. match exato
	if d, ok := r.entries[typeName]; ok {
		return d, nil
	}

	// 2. namespaces conhecidos, na ordem configurada
	for _, ns := range r.namespaces {
		if d, ok := r.entries[ns+"."+typeName]; ok {
			return d, nil
		}
	}

	// 3. busca global pelo nome simples
	if d, ok := r.bySimpleName[typeName]; ok {
		return d, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrNotFound, typeName)
}

// Has reports whether typeName resolves.
func (r *Registry) Has(typeName string) bool {
	_, err := r.Resolve(typeName)
	return err == nil
}

// Namespaces returns the fallback search order.
func (r *Registry) Namespaces() []string {
	return append([]string(nil), r.namespaces...)
}

// Names returns every registered qualified name, sorted.
func (r *Registry) Names() []string {
	names := append([]string(nil), r.order...)
	sort.Strings(names)
	return names
}

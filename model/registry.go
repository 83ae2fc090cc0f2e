package model

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Registry holds a linked, immutable type graph built from a registered
// Schema. It provides indexed lookup by type name and implements the
// introspection operations the resolver consumes.
//
// A Registry is safe for concurrent use. The graph never changes after
// RegisterSchema succeeds; Reset (used in tests) swaps the whole graph.
type Registry struct {
	mu sync.RWMutex

	version string
	root    *Type

	// Pre-computed indexes (built at registration)
	typesByName map[string]*Type
	order       []string // declaration order, root first

	// Flattened method sets per interface (declared + superinterfaces)
	ifaceMethods map[string][]*Method
}

// NewRegistry returns an empty registry. Call RegisterSchema before use.
func NewRegistry() *Registry {
	return &Registry{
		typesByName:  make(map[string]*Type),
		ifaceMethods: make(map[string][]*Method),
	}
}

// Load unmarshals a schema from JSON and registers it in a new registry.
func Load(data []byte) (*Registry, error) {
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal schema: %w", err)
	}
	r := NewRegistry()
	if err := r.RegisterSchema(&s); err != nil {
		return nil, err
	}
	return r, nil
}

// LoadFile reads and registers a schema from a JSON file.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema %s: %w", path, err)
	}
	return Load(data)
}

// RegisterSchema links a schema into the registry's type graph and builds
// all lookup indexes. It replaces any previously registered schema.
func (r *Registry) RegisterSchema(s *Schema) error {
	if s == nil {
		return fmt.Errorf("schema must not be nil")
	}

	rootName := s.Root
	if rootName == "" {
		rootName = DefaultRoot
	}

	types := make(map[string]*Type, len(s.Types)+1)
	order := make([]string, 0, len(s.Types)+1)

	root := &Type{Name: rootName, Kind: KindClass}
	types[rootName] = root
	order = append(order, rootName)

	// First pass: create all types with their declared tags and methods.
	for _, decl := range s.Types {
		if decl.Name == "" {
			return fmt.Errorf("type declaration with empty name")
		}
		if _, dup := types[decl.Name]; dup {
			return fmt.Errorf("duplicate type: %s", decl.Name)
		}

		kind := decl.Kind
		if kind == "" {
			kind = KindClass
		}
		switch kind {
		case KindClass, KindInterface, KindTag:
		default:
			return fmt.Errorf("type %s: unknown kind %q", decl.Name, decl.Kind)
		}

		t := &Type{
			Name:      decl.Name,
			Kind:      kind,
			Inherited: decl.Inherited,
			Tags:      newTags(decl.Tags),
			Attrs:     append([]AttrDecl(nil), decl.Attributes...),
		}

		seen := make(map[string]bool, len(decl.Methods))
		for _, md := range decl.Methods {
			m := &Method{
				Name:   md.Name,
				Params: append([]string(nil), md.Params...),
				Tags:   newTags(md.Tags),
				Owner:  t,
			}
			if seen[m.Signature()] {
				return fmt.Errorf("type %s: duplicate method %s", t.Name, m.Signature())
			}
			seen[m.Signature()] = true
			t.Methods = append(t.Methods, m)
		}

		types[decl.Name] = t
		order = append(order, decl.Name)
	}

	// Second pass: link supertypes and interfaces.
	for _, decl := range s.Types {
		t := types[decl.Name]
		switch t.Kind {
		case KindClass:
			if decl.Extends != "" {
				sup, ok := types[decl.Extends]
				if !ok {
					return fmt.Errorf("type %s: unknown supertype %s", t.Name, decl.Extends)
				}
				if sup.Kind != KindClass {
					return fmt.Errorf("type %s: supertype %s is not a class", t.Name, decl.Extends)
				}
				t.Super = sup
			} else if t != root {
				t.Super = root
			}
			for _, name := range decl.Implements {
				ifc, ok := types[name]
				if !ok || ifc.Kind != KindInterface {
					return fmt.Errorf("type %s: unknown interface %s", t.Name, name)
				}
				t.Interfaces = append(t.Interfaces, ifc)
			}
		case KindInterface:
			if decl.Extends != "" {
				return fmt.Errorf("interface %s: use implements for superinterfaces", t.Name)
			}
			for _, name := range decl.Implements {
				ifc, ok := types[name]
				if !ok || ifc.Kind != KindInterface {
					return fmt.Errorf("interface %s: unknown superinterface %s", t.Name, name)
				}
				t.Interfaces = append(t.Interfaces, ifc)
			}
		case KindTag:
			if decl.Extends != "" || len(decl.Implements) > 0 {
				return fmt.Errorf("tag kind %s: must not extend or implement", t.Name)
			}
		}
	}

	// Reject cyclic declarations before any traversal can walk them.
	for _, name := range order {
		t := types[name]
		switch t.Kind {
		case KindClass:
			seen := make(map[string]bool)
			for cur := t; cur != nil; cur = cur.Super {
				if seen[cur.Name] {
					return fmt.Errorf("inheritance cycle involving %s", cur.Name)
				}
				seen[cur.Name] = true
			}
		case KindInterface:
			if hasInterfaceCycle(t, make(map[string]bool)) {
				return fmt.Errorf("superinterface cycle involving %s", t.Name)
			}
		}
	}

	// Validate tag kind references across the whole graph.
	for _, name := range order {
		t := types[name]
		if err := checkTagKinds(types, t.Name, t.Tags); err != nil {
			return err
		}
		for _, m := range t.Methods {
			if err := checkTagKinds(types, t.Name+"."+m.Signature(), m.Tags); err != nil {
				return err
			}
		}
	}

	// Flatten interface method sets (declared first, then superinterfaces,
	// nearest declaration wins on signature collisions).
	ifaceMethods := make(map[string][]*Method)
	for _, name := range order {
		t := types[name]
		if t.Kind == KindInterface {
			ifaceMethods[t.Name] = flattenMethods(t)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.version = s.Version
	r.root = root
	r.typesByName = types
	r.order = order
	r.ifaceMethods = ifaceMethods

	return nil
}

func newTags(decls []TagDecl) []Tag {
	if len(decls) == 0 {
		return nil
	}
	tags := make([]Tag, len(decls))
	for i, d := range decls {
		attrs := make(map[string]any, len(d.Attrs))
		for k, v := range d.Attrs {
			attrs[k] = v
		}
		tags[i] = Tag{Kind: d.Kind, attrs: attrs}
	}
	return tags
}

func checkTagKinds(types map[string]*Type, owner string, tags []Tag) error {
	for _, tg := range tags {
		kt, ok := types[tg.Kind]
		if !ok {
			return fmt.Errorf("%s: unknown tag kind %s", owner, tg.Kind)
		}
		if kt.Kind != KindTag {
			return fmt.Errorf("%s: %s is not a tag kind", owner, tg.Kind)
		}
	}
	return nil
}

func hasInterfaceCycle(t *Type, path map[string]bool) bool {
	if path[t.Name] {
		return true
	}
	path[t.Name] = true
	for _, sup := range t.Interfaces {
		if hasInterfaceCycle(sup, path) {
			return true
		}
	}
	delete(path, t.Name)
	return false
}

func flattenMethods(ifc *Type) []*Method {
	var out []*Method
	seen := make(map[string]bool)
	visited := make(map[string]bool)
	var walk func(*Type)
	walk = func(t *Type) {
		if visited[t.Name] {
			return
		}
		visited[t.Name] = true
		for _, m := range t.Methods {
			if !seen[m.Signature()] {
				seen[m.Signature()] = true
				out = append(out, m)
			}
		}
		for _, sup := range t.Interfaces {
			walk(sup)
		}
	}
	walk(ifc)
	return out
}

// Version returns the registered schema version.
func (r *Registry) Version() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}

// Type finds a type by name.
func (r *Registry) Type(name string) (*Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.typesByName[name]
	return t, ok
}

// Types returns all registered types in declaration order, root first.
func (r *Registry) Types() []*Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Type, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.typesByName[name])
	}
	return out
}

// Root returns the universal root type, or nil before registration.
func (r *Registry) Root() *Type {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.root
}

// Reset clears the registry (used for testing).
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.version = ""
	r.root = nil
	r.typesByName = make(map[string]*Type)
	r.order = nil
	r.ifaceMethods = make(map[string][]*Method)
}

package model

// Introspection operations over the linked type graph. These implement the
// collaborator contract the resolver package consumes. All of them are
// read-only views; callers must not mutate returned slices.

// TypeTags returns the tags directly declared on a type, excluding any
// contributed by inheritance.
func (r *Registry) TypeTags(t *Type) []Tag {
	return t.Tags
}

// MethodTags returns the tags directly declared on a method.
func (r *Registry) MethodTags(m *Method) []Tag {
	return m.Tags
}

// PresentTags returns the effective tag set of a type: its directly declared
// tags plus ancestor tags whose kind is inheritance-eligible. When the same
// kind appears at several levels, the nearest declaration wins.
func (r *Registry) PresentTags(t *Type) []Tag {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Tag
	seen := make(map[string]bool)
	for cur := t; cur != nil; cur = cur.Super {
		for _, tg := range cur.Tags {
			if seen[tg.Kind] {
				continue
			}
			// Ancestor tags only propagate when the kind opts in.
			if cur != t {
				kt, ok := r.typesByName[tg.Kind]
				if !ok || !kt.Inherited {
					continue
				}
			}
			seen[tg.Kind] = true
			out = append(out, tg)
		}
	}
	return out
}

// Interfaces returns the interfaces a type directly declares, in declaration
// order. Superinterfaces are not flattened here.
func (r *Registry) Interfaces(t *Type) []*Type {
	return t.Interfaces
}

// Superclass returns the supertype of t, or nil at the top of the chain.
func (r *Registry) Superclass(t *Type) *Type {
	return t.Super
}

// IsRoot reports whether t is the universal root type.
func (r *Registry) IsRoot(t *Type) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return t != nil && t == r.root
}

// InterfaceMethods returns every externally visible method of an interface,
// including those inherited from superinterfaces.
func (r *Registry) InterfaceMethods(t *Type) []*Method {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ifaceMethods[t.Name]
}

// EquivalentMethod finds a method on the candidate type sharing the name and
// parameter signature of ref. For interfaces the search covers inherited
// methods; for classes only locally declared ones. Absence is a normal miss.
func (r *Registry) EquivalentMethod(t *Type, ref *Method) (*Method, bool) {
	var candidates []*Method
	if t.Kind == KindInterface {
		candidates = r.InterfaceMethods(t)
	} else {
		candidates = t.Methods
	}
	for _, m := range candidates {
		if m.SameSignature(ref) {
			return m, true
		}
	}
	return nil, false
}

// TagKind returns the declaring type of a tag kind by name.
func (r *Registry) TagKind(name string) (*Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.typesByName[name]
	if !ok || t.Kind != KindTag {
		return nil, false
	}
	return t, true
}

package resolver

import "github.com/tagresolve/tagresolve/model"

// IsLocallyDeclared reports whether the kind appears among the type's own
// directly declared tags, excluding any contributed by inheritance.
func (r *Resolver) IsLocallyDeclared(kind, t *model.Type) (bool, error) {
	if err := checkKind(kind); err != nil {
		return false, err
	}
	if t == nil {
		return false, ErrNilType
	}
	return r.declaredLocally(kind, t), nil
}

// IsInherited reports whether the kind is present on the type only through
// an ancestor's inheritance-eligible tag: present in the effective tag set
// but not locally declared.
func (r *Resolver) IsInherited(kind, t *model.Type) (bool, error) {
	if err := checkKind(kind); err != nil {
		return false, err
	}
	if t == nil {
		return false, ErrNilType
	}
	present := false
	for _, tg := range r.intro.PresentTags(t) {
		if tg.Kind == kind.Name {
			present = true
			break
		}
	}
	return present && !r.declaredLocally(kind, t), nil
}

// DeclaringClass finds the first type in the inheritance hierarchy of t
// (including t itself) that locally declares the kind. Returns (nil, nil)
// when t is nil, the root, or no ancestor declares the kind. Interfaces are
// checked only as themselves; their hierarchies are not traversed here.
func (r *Resolver) DeclaringClass(kind, t *model.Type) (*model.Type, error) {
	if err := checkKind(kind); err != nil {
		return nil, err
	}
	for cur := t; cur != nil && !r.intro.IsRoot(cur); cur = r.intro.Superclass(cur) {
		if r.declaredLocally(kind, cur) {
			return cur, nil
		}
	}
	return nil, nil
}

// DeclaringClassForAny finds the first type in the inheritance hierarchy of
// t that locally declares at least one of the given kinds. At each level the
// kinds are tested in the caller-supplied order and the walk stops on the
// first hit. The kind set must not be empty.
func (r *Resolver) DeclaringClassForAny(kinds []*model.Type, t *model.Type) (*model.Type, error) {
	if len(kinds) == 0 {
		return nil, ErrNoKinds
	}
	for _, kind := range kinds {
		if err := checkKind(kind); err != nil {
			return nil, err
		}
	}
	for cur := t; cur != nil && !r.intro.IsRoot(cur); cur = r.intro.Superclass(cur) {
		for _, kind := range kinds {
			if r.declaredLocally(kind, cur) {
				return cur, nil
			}
		}
	}
	return nil, nil
}

func (r *Resolver) declaredLocally(kind, t *model.Type) bool {
	for _, tg := range r.intro.TypeTags(t) {
		if tg.Kind == kind.Name {
			return true
		}
	}
	return false
}

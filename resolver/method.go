package resolver

import "github.com/tagresolve/tagresolve/model"

// ResolveMethodTag resolves a tag kind for a method, walking superclasses
// and implemented interfaces when the method itself does not carry it.
//
// The search order is: the method's direct tags, then one level of
// meta-tags, then the equivalently-signed method on each interface of the
// declaring type, then each superclass in turn (its equivalent method
// first, then its interfaces), nearest ancestor first, stopping before the
// universal root. The first match wins.
//
// Returns (nil, nil) when no tag is found anywhere in the search order.
func (r *Resolver) ResolveMethodTag(m *model.Method, kind *model.Type) (*model.Tag, error) {
	if m == nil {
		return nil, ErrNilMethod
	}
	if err := checkKind(kind); err != nil {
		return nil, err
	}

	if tag := r.methodTag(m, kind); tag != nil {
		return tag, nil
	}

	cl := m.Owner
	if cl == nil {
		return nil, nil
	}
	if tag := r.searchInterfaces(m, kind, r.intro.Interfaces(cl)); tag != nil {
		return tag, nil
	}

	for {
		cl = r.intro.Superclass(cl)
		if cl == nil || r.intro.IsRoot(cl) {
			return nil, nil
		}
		if em, ok := r.intro.EquivalentMethod(cl, m); ok {
			if tag := r.methodTag(em, kind); tag != nil {
				return tag, nil
			}
		}
		if tag := r.searchInterfaces(m, kind, r.intro.Interfaces(cl)); tag != nil {
			return tag, nil
		}
	}
}

// methodTag looks the kind up on a single method: directly first, then one
// level of meta-tag indirection. A meta-tag match returns the occurrence
// attached to the intermediate kind's declaration.
func (r *Resolver) methodTag(m *model.Method, kind *model.Type) *model.Tag {
	tags := r.intro.MethodTags(m)
	for i := range tags {
		if tags[i].Kind == kind.Name {
			return &tags[i]
		}
	}
	for i := range tags {
		kt, ok := r.intro.TagKind(tags[i].Kind)
		if !ok {
			continue
		}
		kindTags := r.intro.TypeTags(kt)
		for j := range kindTags {
			if kindTags[j].Kind == kind.Name {
				return &kindTags[j]
			}
		}
	}
	return nil
}

// searchInterfaces applies methodTag to the equivalently-signed method on
// each candidate interface, in declaration order. Interfaces without any
// tagged method are skipped via the index; an interface lacking the method
// is skipped silently.
func (r *Resolver) searchInterfaces(m *model.Method, kind *model.Type, ifcs []*model.Type) *model.Tag {
	for _, ifc := range ifcs {
		if !r.ifaces.hasTaggedMethods(r.intro, ifc) {
			continue
		}
		em, ok := r.intro.EquivalentMethod(ifc, m)
		if !ok {
			continue
		}
		if tag := r.methodTag(em, kind); tag != nil {
			return tag
		}
	}
	return nil
}

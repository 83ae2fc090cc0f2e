package resolver

import "github.com/tagresolve/tagresolve/model"

// ResolveTypeTag resolves a tag kind for a type, traversing its interfaces
// and superclasses when the type itself does not carry it.
//
// The search is depth-first, first match wins:
//
//  1. a tag directly on the type
//  2. each declared interface, recursively, in declaration order
//  3. for non-tag-kind types, each direct tag's own kind, recursively
//     (unbounded meta-tag search)
//  4. the superclass, recursively, stopping before the universal root
//
// Unlike method resolution, meta-tags are followed to any depth and there
// is no equivalent-member step. A visited set keyed by type name guarantees
// termination when tag kinds meta-tag each other cyclically.
//
// Returns (nil, nil) when the chain is exhausted without a match.
func (r *Resolver) ResolveTypeTag(t, kind *model.Type) (*model.Tag, error) {
	if t == nil {
		return nil, ErrNilType
	}
	if err := checkKind(kind); err != nil {
		return nil, err
	}

	key := cacheKey{typeName: t.Name, kindName: kind.Name}
	if r.cache != nil {
		if tag, ok := r.cache.Get(key); ok {
			return tag, nil
		}
	}

	tag := r.resolveType(t, kind, make(map[string]struct{}))

	if r.cache != nil {
		r.cache.Add(key, tag)
	}
	return tag, nil
}

func (r *Resolver) resolveType(t, kind *model.Type, seen map[string]struct{}) *model.Tag {
	if _, visited := seen[t.Name]; visited {
		return nil
	}
	seen[t.Name] = struct{}{}

	tags := r.intro.TypeTags(t)
	for i := range tags {
		if tags[i].Kind == kind.Name {
			return &tags[i]
		}
	}

	for _, ifc := range r.intro.Interfaces(t) {
		if tag := r.resolveType(ifc, kind, seen); tag != nil {
			return tag
		}
	}

	if t.Kind != model.KindTag {
		for i := range tags {
			kt, ok := r.intro.TagKind(tags[i].Kind)
			if !ok {
				continue
			}
			if tag := r.resolveType(kt, kind, seen); tag != nil {
				return tag
			}
		}
	}

	super := r.intro.Superclass(t)
	if super == nil || r.intro.IsRoot(super) {
		return nil
	}
	return r.resolveType(super, kind, seen)
}

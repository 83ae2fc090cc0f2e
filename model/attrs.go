package model

// ValueAttr is the conventional attribute name for tags with a single
// unnamed element.
const ValueAttr = "value"

// Attr returns the bound value of a named attribute. The second return is
// false when the attribute is not bound on this occurrence.
func (tg Tag) Attr(name string) (any, bool) {
	v, ok := tg.attrs[name]
	return v, ok
}

// Value returns the bound value of the conventional "value" attribute.
func (tg Tag) Value() (any, bool) {
	return tg.Attr(ValueAttr)
}

// Attributes returns a snapshot of all bound attribute values.
// Returns a copy to prevent external mutation.
func (tg Tag) Attributes() map[string]any {
	out := make(map[string]any, len(tg.attrs))
	for k, v := range tg.attrs {
		out[k] = v
	}
	return out
}

// DefaultValue returns the declared default of a named attribute on a tag
// kind. The second return is false when the kind is unknown, is not a tag
// kind, or declares no default for the attribute.
func (r *Registry) DefaultValue(kind, attr string) (any, bool) {
	kt, ok := r.TagKind(kind)
	if !ok {
		return nil, false
	}
	for _, a := range kt.Attrs {
		if a.Name == attr && a.Default != nil {
			return a.Default, true
		}
	}
	return nil, false
}

// DefaultOf returns the declared default for an attribute of the kind a tag
// occurrence belongs to.
func (r *Registry) DefaultOf(tg Tag, attr string) (any, bool) {
	return r.DefaultValue(tg.Kind, attr)
}

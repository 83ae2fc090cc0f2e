// Package model provides the declarative metadata model that tag resolution
// operates on: types, methods, and the tags attached to them.
package model

// TypeKind classifies a type declared in a schema.
type TypeKind string

const (
	// KindClass is a concrete or abstract class with an optional supertype.
	KindClass TypeKind = "class"
	// KindInterface is an interface; its Implements list names superinterfaces.
	KindInterface TypeKind = "interface"
	// KindTag is a tag kind: a metadata annotation type that can be attached
	// to classes, interfaces, methods, and other tag kinds.
	KindTag TypeKind = "tag"
)

// DefaultRoot is the name of the universal root type when a schema does not
// name one. Every class without an explicit supertype extends the root.
const DefaultRoot = "Any"

// Schema is the JSON-serializable declaration of a complete metadata model.
// It is registered once into a Registry, which links it into a type graph.
type Schema struct {
	Version string     `json:"version"`        // Schema version for evolution
	Root    string     `json:"root,omitempty"` // Universal root type name (default "Any")
	Types   []TypeDecl `json:"types"`          // All type declarations
}

// TypeDecl declares a single type in a schema.
type TypeDecl struct {
	Name       string       `json:"name"`                 // Qualified type name (identity)
	Kind       TypeKind     `json:"kind,omitempty"`       // class, interface, or tag (default class)
	Extends    string       `json:"extends,omitempty"`    // Supertype name (classes only)
	Implements []string     `json:"implements,omitempty"` // Interfaces (classes) or superinterfaces (interfaces)
	Inherited  bool         `json:"inherited,omitempty"`  // Tag kinds only: propagates to subclasses
	Tags       []TagDecl    `json:"tags,omitempty"`       // Directly declared tags
	Methods    []MethodDecl `json:"methods,omitempty"`    // Declared methods
	Attributes []AttrDecl   `json:"attributes,omitempty"` // Tag kinds only: attribute declarations
}

// MethodDecl declares a method on a type. Identity within a hierarchy is the
// name plus the ordered parameter type names.
type MethodDecl struct {
	Name   string    `json:"name"`             // Method name
	Params []string  `json:"params,omitempty"` // Ordered parameter type names
	Tags   []TagDecl `json:"tags,omitempty"`   // Directly declared tags
}

// TagDecl declares an attached tag occurrence with bound attribute values.
type TagDecl struct {
	Kind  string         `json:"kind"`            // Name of the tag kind
	Attrs map[string]any `json:"attrs,omitempty"` // Bound attribute values
}

// AttrDecl declares a named attribute of a tag kind, with an optional default.
type AttrDecl struct {
	Name    string `json:"name"`
	Type    string `json:"type,omitempty"`
	Default any    `json:"default,omitempty"`
}

// Type is a linked type in a registered model. The graph is immutable once
// registered; all fields are read-only views.
type Type struct {
	Name       string     // Qualified name; types compare by name
	Kind       TypeKind   // class, interface, or tag
	Inherited  bool       // Tag kinds only: inheritance-eligible
	Super      *Type      // Supertype; nil for the root and for interfaces/tag kinds
	Interfaces []*Type    // Declared interfaces, declaration order
	Tags       []Tag      // Directly declared tags
	Methods    []*Method  // Declared methods
	Attrs      []AttrDecl // Tag kinds only: attribute declarations
}

// Method is a linked method in a registered model.
type Method struct {
	Name   string   // Method name
	Params []string // Ordered parameter type names
	Tags   []Tag    // Directly declared tags
	Owner  *Type    // Declaring type
}

// Tag is a concrete attached occurrence of a tag kind, with attribute
// values bound.
type Tag struct {
	Kind  string         // Name of the tag kind
	attrs map[string]any // Bound attribute values
}

// Signature returns the identity of a method within a hierarchy:
// its name plus the ordered parameter type list.
func (m *Method) Signature() string {
	sig := m.Name + "("
	for i, p := range m.Params {
		if i > 0 {
			sig += ","
		}
		sig += p
	}
	return sig + ")"
}

// SameSignature reports whether two methods are equivalently signed.
func (m *Method) SameSignature(other *Method) bool {
	if m.Name != other.Name || len(m.Params) != len(other.Params) {
		return false
	}
	for i := range m.Params {
		if m.Params[i] != other.Params[i] {
			return false
		}
	}
	return true
}

package resolver

import (
	"errors"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/tagresolve/tagresolve/model"
)

// Invalid-argument conditions. Everything else resolution encounters
// (no match anywhere, a candidate type lacking the method) is a normal
// outcome, not an error.
var (
	// ErrNilType signals a nil type argument.
	ErrNilType = errors.New("type must not be nil")
	// ErrNilMethod signals a nil method argument.
	ErrNilMethod = errors.New("method must not be nil")
	// ErrNilKind signals a nil tag kind argument.
	ErrNilKind = errors.New("tag kind must not be nil")
	// ErrNotTagKind signals a kind argument that is not a tag kind type.
	ErrNotTagKind = errors.New("type is not a tag kind")
	// ErrNoKinds signals an empty kind set where at least one is required.
	ErrNoKinds = errors.New("at least one tag kind is required")
)

// Introspector is the reflection collaborator the resolver consumes. The
// model.Registry implements it over a declarative schema; any other
// introspection facility can substitute its own metadata API behind the
// same contract.
//
// All lookups are read-only. EquivalentMethod reports absence through its
// boolean return; absence is normal hierarchy shape, never an error.
type Introspector interface {
	// TypeTags returns the tags directly declared on a type.
	TypeTags(t *model.Type) []model.Tag
	// MethodTags returns the tags directly declared on a method.
	MethodTags(m *model.Method) []model.Tag
	// PresentTags returns a type's effective tag set with
	// inheritance-eligible ancestor tags folded in.
	PresentTags(t *model.Type) []model.Tag
	// Interfaces returns the interfaces a type directly declares,
	// in declaration order.
	Interfaces(t *model.Type) []*model.Type
	// Superclass returns the supertype, or nil at the top of the chain.
	Superclass(t *model.Type) *model.Type
	// IsRoot reports whether t is the universal root type.
	IsRoot(t *model.Type) bool
	// InterfaceMethods returns all externally visible methods of an
	// interface, including inherited ones.
	InterfaceMethods(t *model.Type) []*model.Method
	// EquivalentMethod finds a method on a candidate type sharing the
	// reference method's name and parameter signature.
	EquivalentMethod(t *model.Type, ref *model.Method) (*model.Method, bool)
	// TagKind returns the declaring type of a tag kind by name.
	TagKind(name string) (*model.Type, bool)
}

// Resolver answers tag-applicability queries against a single model.
// Construct one per model with New; zero-value Resolvers are not usable.
type Resolver struct {
	intro  Introspector
	ifaces *interfaceIndex

	// Optional memo of type-resolution results. Sound because the model
	// is immutable; a stored nil records a resolved-negative outcome.
	cache *lru.Cache[cacheKey, *model.Tag]
}

type cacheKey struct {
	typeName string
	kindName string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithResultCache bounds and enables memoization of type-resolution
// results. Sizes below 1 leave caching disabled.
func WithResultCache(size int) Option {
	return func(r *Resolver) {
		if size < 1 {
			return
		}
		// Only errors on size < 1, which is excluded above.
		cache, err := lru.New[cacheKey, *model.Tag](size)
		if err == nil {
			r.cache = cache
		}
	}
}

// New builds a Resolver over the given introspection collaborator.
func New(intro Introspector, opts ...Option) *Resolver {
	r := &Resolver{
		intro:  intro,
		ifaces: newInterfaceIndex(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// checkKind validates a tag kind argument.
func checkKind(kind *model.Type) error {
	if kind == nil {
		return ErrNilKind
	}
	if kind.Kind != model.KindTag {
		return ErrNotTagKind
	}
	return nil
}

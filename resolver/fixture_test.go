package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tagresolve/tagresolve/model"
	"github.com/tagresolve/tagresolve/resolver"
)

// testSchema declares the hierarchy the resolver tests run against:
//
//	Base (@Audited, @Traced)            Repository (find has @Cached)
//	  └─ Store implements Repository    Versioned (@Traced) ◄─ Extended
//	       └─ MemStore                  Plain (untagged)
//
// plus meta-tagged kinds (Routed carries Traced, Stored carries Persisted
// carries Entity) and a mutually meta-tagged pair (Ping/Pong).
func testSchema() *model.Schema {
	return &model.Schema{
		Version: "1.0.0",
		Types: []model.TypeDecl{
			// Tag kinds
			{Name: "Audited", Kind: model.KindTag, Inherited: true,
				Attributes: []model.AttrDecl{{Name: "value", Type: "string", Default: "audit-log"}}},
			{Name: "Traced", Kind: model.KindTag,
				Attributes: []model.AttrDecl{{Name: "level", Type: "string", Default: "info"}}},
			{Name: "Routed", Kind: model.KindTag,
				Tags: []model.TagDecl{{Kind: "Traced", Attrs: map[string]any{"level": "routed"}}}},
			{Name: "Cached", Kind: model.KindTag,
				Attributes: []model.AttrDecl{{Name: "ttl", Type: "int", Default: 60}}},
			{Name: "Entity", Kind: model.KindTag},
			{Name: "Persisted", Kind: model.KindTag, Tags: []model.TagDecl{{Kind: "Entity"}}},
			{Name: "Stored", Kind: model.KindTag, Tags: []model.TagDecl{{Kind: "Persisted"}}},
			{Name: "Marker", Kind: model.KindTag},
			{Name: "Ping", Kind: model.KindTag, Tags: []model.TagDecl{{Kind: "Pong"}}},
			{Name: "Pong", Kind: model.KindTag, Tags: []model.TagDecl{{Kind: "Ping"}}},

			// Interfaces
			{Name: "Repository", Kind: model.KindInterface, Methods: []model.MethodDecl{
				{Name: "find", Params: []string{"string"},
					Tags: []model.TagDecl{{Kind: "Cached", Attrs: map[string]any{"ttl": 30}}}},
				{Name: "count"},
			}},
			{Name: "Plain", Kind: model.KindInterface, Methods: []model.MethodDecl{
				{Name: "noop"},
			}},
			{Name: "Versioned", Kind: model.KindInterface,
				Tags: []model.TagDecl{{Kind: "Traced", Attrs: map[string]any{"level": "iface"}}}},
			{Name: "Extended", Kind: model.KindInterface, Implements: []string{"Versioned"},
				Methods: []model.MethodDecl{{Name: "revision"}}},

			// Classes
			{Name: "Base",
				Tags: []model.TagDecl{
					{Kind: "Audited", Attrs: map[string]any{"value": "base"}},
					{Kind: "Traced", Attrs: map[string]any{"level": "base"}},
				},
				Methods: []model.MethodDecl{
					{Name: "find", Params: []string{"string"},
						Tags: []model.TagDecl{{Kind: "Traced", Attrs: map[string]any{"level": "base-find"}}}},
					{Name: "save", Params: []string{"Record"},
						Tags: []model.TagDecl{{Kind: "Routed"}}},
				}},
			{Name: "Store", Extends: "Base", Implements: []string{"Repository"},
				Methods: []model.MethodDecl{
					{Name: "find", Params: []string{"string"},
						Tags: []model.TagDecl{{Kind: "Traced", Attrs: map[string]any{"level": "store-find"}}}},
				}},
			{Name: "MemStore", Extends: "Store", Methods: []model.MethodDecl{
				{Name: "find", Params: []string{"string"}},
			}},
			{Name: "CacheClient", Implements: []string{"Repository", "Plain"},
				Methods: []model.MethodDecl{
					{Name: "find", Params: []string{"string"}},
					{Name: "flush"},
				}},
			{Name: "Client", Implements: []string{"Extended"}},
			{Name: "Router", Tags: []model.TagDecl{{Kind: "Routed"}}},
			{Name: "Document", Tags: []model.TagDecl{{Kind: "Stored"}},
				Methods: []model.MethodDecl{
					{Name: "load", Tags: []model.TagDecl{{Kind: "Stored"}}},
				}},
			{Name: "PingUser", Tags: []model.TagDecl{{Kind: "Ping"}}},
			{Name: "Orphan", Methods: []model.MethodDecl{{Name: "misc"}}},
			{Name: "Record"},
		},
	}
}

func newTestRegistry(t *testing.T) *model.Registry {
	t.Helper()
	reg := model.NewRegistry()
	require.NoError(t, reg.RegisterSchema(testSchema()))
	return reg
}

func newTestResolver(t *testing.T, opts ...resolver.Option) (*model.Registry, *resolver.Resolver) {
	t.Helper()
	reg := newTestRegistry(t)
	return reg, resolver.New(reg, opts...)
}

func typeOf(t *testing.T, reg *model.Registry, name string) *model.Type {
	t.Helper()
	typ, ok := reg.Type(name)
	require.True(t, ok, "type %s not registered", name)
	return typ
}

func kindOf(t *testing.T, reg *model.Registry, name string) *model.Type {
	t.Helper()
	kind, ok := reg.TagKind(name)
	require.True(t, ok, "tag kind %s not registered", name)
	return kind
}

func methodOf(t *testing.T, reg *model.Registry, typeName, name string, params ...string) *model.Method {
	t.Helper()
	typ := typeOf(t, reg, typeName)
	m, ok := reg.EquivalentMethod(typ, &model.Method{Name: name, Params: params})
	require.True(t, ok, "method %s not found on %s", name, typeName)
	return m
}

func attr(t *testing.T, tag *model.Tag, name string) any {
	t.Helper()
	require.NotNil(t, tag)
	v, ok := tag.Attr(name)
	require.True(t, ok, "attribute %s not bound", name)
	return v
}

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tagresolve/tagresolve/model"
	"github.com/tagresolve/tagresolve/resolver"
)

const testSchemaJSON = `{
	"version": "1.0.0",
	"types": [
		{"name": "Audited", "kind": "tag", "inherited": true,
		 "attributes": [{"name": "value", "type": "string", "default": "audit-log"}]},
		{"name": "Traced", "kind": "tag",
		 "attributes": [{"name": "level", "type": "string", "default": "info"}]},
		{"name": "Repository", "kind": "interface", "methods": [
			{"name": "find", "params": ["string"], "tags": [{"kind": "Traced", "attrs": {"level": "iface"}}]}
		]},
		{"name": "Base", "tags": [{"kind": "Audited", "attrs": {"value": "base"}}]},
		{"name": "Store", "extends": "Base", "implements": ["Repository"], "methods": [
			{"name": "find", "params": ["string"]}
		]},
		{"name": "Orphan", "methods": [{"name": "noop"}]}
	]
}`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	reg, err := model.Load([]byte(testSchemaJSON))
	require.NoError(t, err)
	return New(reg, resolver.New(reg), nil)
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(v))
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := get(t, s, "/health")

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	decode(t, rec, &body)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "1.0.0", body["version"])
}

func TestListTypes(t *testing.T) {
	s := newTestServer(t)
	rec := get(t, s, "/api/types")

	assert.Equal(t, http.StatusOK, rec.Code)
	var body []typePayload
	decode(t, rec, &body)
	require.Len(t, body, 7) // 6 declared + implicit root
	assert.Equal(t, model.DefaultRoot, body[0].Name)
}

func TestGetType(t *testing.T) {
	s := newTestServer(t)
	rec := get(t, s, "/api/types/Store")

	assert.Equal(t, http.StatusOK, rec.Code)
	var body typePayload
	decode(t, rec, &body)
	assert.Equal(t, "Store", body.Name)
	assert.Equal(t, "Base", body.Extends)
	assert.Equal(t, []string{"Repository"}, body.Implements)
	require.Len(t, body.Methods, 1)
	assert.Equal(t, "find", body.Methods[0].Name)
}

func TestGetType_Unknown(t *testing.T) {
	s := newTestServer(t)
	rec := get(t, s, "/api/types/Nope")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body errorPayload
	decode(t, rec, &body)
	assert.Contains(t, body.Error, "unknown type")
}

func TestResolveType(t *testing.T) {
	s := newTestServer(t)

	t.Run("resolved via superclass", func(t *testing.T) {
		rec := get(t, s, "/api/resolve/type?type=Store&kind=Audited")
		assert.Equal(t, http.StatusOK, rec.Code)
		var body resolvePayload
		decode(t, rec, &body)
		assert.True(t, body.Resolved)
		require.NotNil(t, body.Tag)
		assert.Equal(t, "Audited", body.Tag.Kind)
		assert.Equal(t, "base", body.Tag.Attrs["value"])
	})

	t.Run("miss is a 200", func(t *testing.T) {
		rec := get(t, s, "/api/resolve/type?type=Orphan&kind=Audited")
		assert.Equal(t, http.StatusOK, rec.Code)
		var body resolvePayload
		decode(t, rec, &body)
		assert.False(t, body.Resolved)
		assert.Nil(t, body.Tag)
	})

	t.Run("missing params", func(t *testing.T) {
		rec := get(t, s, "/api/resolve/type?type=Store")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown kind", func(t *testing.T) {
		rec := get(t, s, "/api/resolve/type?type=Store&kind=Nope")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("class name as kind", func(t *testing.T) {
		rec := get(t, s, "/api/resolve/type?type=Store&kind=Base")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestResolveMethod(t *testing.T) {
	s := newTestServer(t)

	t.Run("resolved via interface", func(t *testing.T) {
		rec := get(t, s, "/api/resolve/method?type=Store&method=find&params=string&kind=Traced")
		assert.Equal(t, http.StatusOK, rec.Code)
		var body resolvePayload
		decode(t, rec, &body)
		assert.True(t, body.Resolved)
		require.NotNil(t, body.Tag)
		assert.Equal(t, "iface", body.Tag.Attrs["level"])
	})

	t.Run("miss is a 200", func(t *testing.T) {
		rec := get(t, s, "/api/resolve/method?type=Orphan&method=noop&kind=Traced")
		assert.Equal(t, http.StatusOK, rec.Code)
		var body resolvePayload
		decode(t, rec, &body)
		assert.False(t, body.Resolved)
	})

	t.Run("unknown method", func(t *testing.T) {
		rec := get(t, s, "/api/resolve/method?type=Store&method=vanish&kind=Traced")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing method name", func(t *testing.T) {
		rec := get(t, s, "/api/resolve/method?type=Store&kind=Traced")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeclaring(t *testing.T) {
	s := newTestServer(t)

	t.Run("found on ancestor", func(t *testing.T) {
		rec := get(t, s, "/api/declaring?type=Store&kinds=Audited")
		assert.Equal(t, http.StatusOK, rec.Code)
		var body declaringPayload
		decode(t, rec, &body)
		assert.True(t, body.Resolved)
		assert.Equal(t, "Base", body.DeclaredBy)
	})

	t.Run("first matching kind wins", func(t *testing.T) {
		rec := get(t, s, "/api/declaring?type=Store&kinds=Traced,Audited")
		assert.Equal(t, http.StatusOK, rec.Code)
		var body declaringPayload
		decode(t, rec, &body)
		assert.True(t, body.Resolved)
		assert.Equal(t, "Base", body.DeclaredBy)
	})

	t.Run("not declared anywhere", func(t *testing.T) {
		rec := get(t, s, "/api/declaring?type=Orphan&kinds=Audited")
		assert.Equal(t, http.StatusOK, rec.Code)
		var body declaringPayload
		decode(t, rec, &body)
		assert.False(t, body.Resolved)
		assert.Empty(t, body.DeclaredBy)
	})

	t.Run("missing kinds", func(t *testing.T) {
		rec := get(t, s, "/api/declaring?type=Store")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown type", func(t *testing.T) {
		rec := get(t, s, "/api/declaring?type=Nope&kinds=Audited")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRequestIDHeaderPropagation(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "fixed-id")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "fixed-id", rec.Header().Get("X-Request-ID"))
}

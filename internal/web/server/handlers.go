package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/tagresolve/tagresolve/model"
	"github.com/tagresolve/tagresolve/resolver"
)

// Wire payloads. Resolution misses are 200 responses with resolved=false;
// only unknown names are 404 and malformed queries 400.

type typePayload struct {
	Name       string          `json:"name"`
	Kind       string          `json:"kind"`
	Extends    string          `json:"extends,omitempty"`
	Implements []string        `json:"implements,omitempty"`
	Inherited  bool            `json:"inherited,omitempty"`
	Tags       []tagPayload    `json:"tags,omitempty"`
	Methods    []methodPayload `json:"methods,omitempty"`
}

type methodPayload struct {
	Name   string       `json:"name"`
	Params []string     `json:"params,omitempty"`
	Tags   []tagPayload `json:"tags,omitempty"`
}

type tagPayload struct {
	Kind  string         `json:"kind"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

type resolvePayload struct {
	Resolved bool        `json:"resolved"`
	Kind     string      `json:"kind"`
	Tag      *tagPayload `json:"tag,omitempty"`
}

type declaringPayload struct {
	Resolved   bool   `json:"resolved"`
	DeclaredBy string `json:"declared_by,omitempty"`
}

type errorPayload struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": s.registry.Version(),
	})
}

func (s *Server) handleTypes(w http.ResponseWriter, r *http.Request) {
	types := s.registry.Types()
	out := make([]typePayload, 0, len(types))
	for _, t := range types {
		out = append(out, newTypePayload(t))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleType(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	t, ok := s.registry.Type(name)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown type: "+name)
		return
	}
	writeJSON(w, http.StatusOK, newTypePayload(t))
}

func (s *Server) handleResolveType(w http.ResponseWriter, r *http.Request) {
	t, kind, ok := s.lookupTypeAndKind(w, r)
	if !ok {
		return
	}
	tag, err := s.resolver.ResolveTypeTag(t, kind)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeResolution(w, kind, tag)
}

func (s *Server) handleResolveMethod(w http.ResponseWriter, r *http.Request) {
	t, kind, ok := s.lookupTypeAndKind(w, r)
	if !ok {
		return
	}
	name := r.URL.Query().Get("method")
	if name == "" {
		writeError(w, http.StatusBadRequest, "missing query parameter: method")
		return
	}
	ref := &model.Method{Name: name, Params: splitList(r.URL.Query().Get("params"))}
	m, found := s.registry.EquivalentMethod(t, ref)
	if !found {
		writeError(w, http.StatusNotFound, "unknown method: "+ref.Signature())
		return
	}
	tag, err := s.resolver.ResolveMethodTag(m, kind)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeResolution(w, kind, tag)
}

func (s *Server) handleDeclaring(w http.ResponseWriter, r *http.Request) {
	typeName := r.URL.Query().Get("type")
	if typeName == "" {
		writeError(w, http.StatusBadRequest, "missing query parameter: type")
		return
	}
	t, ok := s.registry.Type(typeName)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown type: "+typeName)
		return
	}

	kindNames := splitList(r.URL.Query().Get("kinds"))
	kinds := make([]*model.Type, 0, len(kindNames))
	for _, name := range kindNames {
		kind, found := s.registry.TagKind(name)
		if !found {
			writeError(w, http.StatusNotFound, "unknown tag kind: "+name)
			return
		}
		kinds = append(kinds, kind)
	}

	declaring, err := s.resolver.DeclaringClassForAny(kinds, t)
	if errors.Is(err, resolver.ErrNoKinds) {
		writeError(w, http.StatusBadRequest, "missing query parameter: kinds")
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	out := declaringPayload{Resolved: declaring != nil}
	if declaring != nil {
		out.DeclaredBy = declaring.Name
	}
	writeJSON(w, http.StatusOK, out)
}

// lookupTypeAndKind resolves the type and kind query parameters, writing
// the error response itself on failure.
func (s *Server) lookupTypeAndKind(w http.ResponseWriter, r *http.Request) (*model.Type, *model.Type, bool) {
	typeName := r.URL.Query().Get("type")
	kindName := r.URL.Query().Get("kind")
	if typeName == "" || kindName == "" {
		writeError(w, http.StatusBadRequest, "missing query parameter: type and kind are required")
		return nil, nil, false
	}
	t, ok := s.registry.Type(typeName)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown type: "+typeName)
		return nil, nil, false
	}
	kind, ok := s.registry.TagKind(kindName)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown tag kind: "+kindName)
		return nil, nil, false
	}
	return t, kind, true
}

func newTypePayload(t *model.Type) typePayload {
	p := typePayload{
		Name:      t.Name,
		Kind:      string(t.Kind),
		Inherited: t.Inherited,
		Tags:      newTagPayloads(t.Tags),
	}
	if t.Super != nil {
		p.Extends = t.Super.Name
	}
	for _, ifc := range t.Interfaces {
		p.Implements = append(p.Implements, ifc.Name)
	}
	for _, m := range t.Methods {
		p.Methods = append(p.Methods, methodPayload{
			Name:   m.Name,
			Params: m.Params,
			Tags:   newTagPayloads(m.Tags),
		})
	}
	return p
}

func newTagPayloads(tags []model.Tag) []tagPayload {
	if len(tags) == 0 {
		return nil
	}
	out := make([]tagPayload, len(tags))
	for i, tg := range tags {
		out[i] = tagPayload{Kind: tg.Kind, Attrs: tg.Attributes()}
	}
	return out
}

func writeResolution(w http.ResponseWriter, kind *model.Type, tag *model.Tag) {
	out := resolvePayload{Resolved: tag != nil, Kind: kind.Name}
	if tag != nil {
		out.Tag = &tagPayload{Kind: tag.Kind, Attrs: tag.Attributes()}
	}
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Encoding of these payload types cannot fail
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorPayload{Error: msg})
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

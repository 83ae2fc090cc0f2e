package resolver

import (
	"sync"

	"github.com/tagresolve/tagresolve/model"
)

// interfaceIndex records, per interface type, whether any of its methods
// carries any tag at all. It gates the expensive per-interface method scan
// during method resolution.
//
// Entries are populated lazily and never invalidated; the model is immutable
// once registered, so a memoized answer stays correct for the lifetime of
// the Resolver. The whole check-then-populate sequence runs under one lock.
// Population is a pure function of the interface, so a redundant scan would
// merely be wasted work, never corruption.
type interfaceIndex struct {
	mu     sync.Mutex
	tagged map[string]bool
}

func newInterfaceIndex() *interfaceIndex {
	return &interfaceIndex{tagged: make(map[string]bool)}
}

// hasTaggedMethods reports whether any externally visible method of the
// interface carries at least one tag of any kind, directly.
func (ix *interfaceIndex) hasTaggedMethods(intro Introspector, ifc *model.Type) bool {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if found, ok := ix.tagged[ifc.Name]; ok {
		return found
	}

	found := false
	for _, m := range intro.InterfaceMethods(ifc) {
		if len(intro.MethodTags(m)) > 0 {
			found = true
			break
		}
	}
	ix.tagged[ifc.Name] = found
	return found
}

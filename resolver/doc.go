// Package resolver implements metadata-tag resolution over a model type
// graph: given a method or a type and a target tag kind, it determines
// whether the kind applies to the element and returns the first matching
// occurrence.
//
// # Search semantics
//
// A kind can apply to an element in four ways:
//
//   - directly declared on the element
//   - through meta-tagging (a tag whose own kind carries the target kind)
//   - through the superclass chain, stopping before the universal root
//   - through declared interfaces, via the equivalently-signed method for
//     method resolution or full recursion for type resolution
//
// Method resolution searches meta-tags exactly one level deep and re-homes
// the search onto the equivalently-signed method of each candidate type;
// a candidate lacking the method is silently skipped. Type resolution
// recurses without a depth limit; a visited set guarantees termination when
// tag kinds meta-tag each other cyclically.
//
// # Outcomes
//
// "No matching tag" is an expected outcome, reported as a nil result with a
// nil error. Errors are reserved for invalid arguments: nil elements, nil or
// non-tag kinds, and an empty kind set for DeclaringClassForAny.
//
// # Concurrency
//
// A Resolver is safe for concurrent use. Resolution is a pure function of
// the immutable model; the only shared state is the interface-tag index,
// which memoizes per-interface scan results under a single lock for the
// lifetime of the Resolver, and the optional bounded result cache.
//
// Example usage:
//
//	reg, err := model.LoadFile("schema.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	res := resolver.New(reg)
//
//	kind, _ := reg.TagKind("Traced")
//	typ, _ := reg.Type("OrderService")
//	tag, err := res.ResolveTypeTag(typ, kind)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if tag == nil {
//		fmt.Println("not tagged")
//	}
package resolver

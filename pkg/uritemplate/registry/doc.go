// Package registry provides an ordered, thread-safe registry of values keyed
// by name.
//
// It backs both the template parse cache, which maps template source strings
// to parsed templates, and the link catalog, which maps relation names to
// templates. Lookups dominate both workloads, so the registry is guarded by a
// sync.RWMutex.
//
// # Basic Usage
//
//	r := registry.New[string, *uritemplate.Template]()
//	r.Register("self", uritemplate.MustParse("product/{id}"))
//
//	tmpl, ok := r.Get("self")
//
// # Lazy Parsing
//
// LoadOrCreate runs a fallible factory at most once per key. Failed
// factories store nothing, so a later call can retry with the same key:
//
//	tmpl, loaded, err := r.LoadOrCreate(src, func() (*uritemplate.Template, error) {
//	    return uritemplate.Parse(src)
//	})
//
// # Ordering
//
// Keys and Range visit entries in ascending key order so that callers
// building links or reports get deterministic output.
package registry

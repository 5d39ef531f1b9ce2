package uritemplate

import "github.com/randalmurphal/uritemplate/pkg/uritemplate/registry"

// Cache memoizes parsed templates by source string.
//
// Templates are immutable, so one parsed instance is shared by every caller.
// Parse failures are not cached. Cache is safe for concurrent use.
type Cache struct {
	templates *registry.Registry[string, *Template]
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{templates: registry.New[string, *Template]()}
}

// Parse returns the cached template for s, parsing it on first use.
func (c *Cache) Parse(s string) (*Template, error) {
	t, _, err := c.Lookup(s)
	return t, err
}

// Lookup is like Parse and also reports whether the template was already
// cached.
func (c *Cache) Lookup(s string) (t *Template, hit bool, err error) {
	return c.templates.LoadOrCreate(s, func() (*Template, error) {
		return Parse(s)
	})
}

// Len returns the number of cached templates.
func (c *Cache) Len() int {
	return c.templates.Len()
}

// Forget drops s from the cache.
func (c *Cache) Forget(s string) {
	c.templates.Delete(s)
}
